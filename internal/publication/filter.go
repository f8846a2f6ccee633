package publication

import (
	"context"
	"net/url"
	"strconv"
	"strings"
)

// All is the selector value that disables a filter.
const All = "all"

// Patent status selector values.
const (
	StatusApplication = "application"
	StatusWithdrawal  = "withdrawal"
	StatusActive      = "active"
	StatusExpired     = "expired"
)

// Query is the state of the publications page selectors. It is a value
// type: every With* method returns a new Query.
type Query struct {
	Year   string `json:"year"`   // "all", "2024", or "-2020" for 2020 and older
	Venue  string `json:"venue"`  // "all", a top venue, or a venue group
	Status string `json:"status"` // "all" or a patent status
	Search string `json:"search"` // lowercased free text, empty for none
}

// DefaultQuery returns a query with every selector set to "all".
func DefaultQuery() Query {
	return Query{Year: All, Venue: All, Status: All}
}

// ParseQuery reads selectors from URL values (year, venue, status, q).
func ParseQuery(v url.Values) Query {
	return DefaultQuery().
		WithYear(v.Get("year")).
		WithVenue(v.Get("venue")).
		WithStatus(v.Get("status")).
		WithSearch(v.Get("q"))
}

// Values encodes the non-default selectors as URL values.
func (q Query) Values() url.Values {
	v := url.Values{}
	if q.Year != All {
		v.Set("year", q.Year)
	}
	if q.Venue != All {
		v.Set("venue", q.Venue)
	}
	if q.Status != All {
		v.Set("status", q.Status)
	}
	if q.Search != "" {
		v.Set("q", q.Search)
	}
	return v
}

func normalizeSelector(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return All
	}
	return s
}

// WithYear returns q with the year selector replaced.
func (q Query) WithYear(year string) Query {
	q.Year = normalizeSelector(year)
	return q
}

// WithVenue returns q with the venue selector replaced. The status selector
// only applies to patents, so it is reset unless the venue is Patents.
func (q Query) WithVenue(venue string) Query {
	q.Venue = normalizeSelector(venue)
	if q.Venue != GroupPatents {
		q.Status = All
	}
	return q
}

// WithStatus returns q with the patent status selector replaced.
func (q Query) WithStatus(status string) Query {
	q.Status = strings.ToLower(normalizeSelector(status))
	return q
}

// WithSearch returns q with the search text replaced.
func (q Query) WithSearch(search string) Query {
	q.Search = strings.ToLower(strings.TrimSpace(search))
	return q
}

// IsDefault reports whether no selector or search text is active.
func (q Query) IsDefault() bool {
	return q == DefaultQuery()
}

// Matches reports whether p satisfies the year, venue and status selectors.
// The search text is not considered here; see Filter.
func (q Query) Matches(p Publication) bool {
	return q.matchYear(p) && q.matchVenue(p) && q.matchStatus(p)
}

func (q Query) matchYear(p Publication) bool {
	if q.Year == "" || q.Year == All {
		return true
	}
	year := YearOf(p)
	if strings.HasPrefix(q.Year, "-") {
		limit, err := strconv.Atoi(q.Year[1:])
		if err != nil {
			return false
		}
		return year <= limit
	}
	want, err := strconv.Atoi(q.Year)
	if err != nil {
		return false
	}
	return year == want
}

func (q Query) matchVenue(p Publication) bool {
	switch q.Venue {
	case "", All:
		return true
	case GroupJournals:
		return p.Type == Journal
	case GroupPatents:
		return p.Type == Patent
	case GroupOtherConferences:
		return p.Type == Conference && !IsTopVenue(p.Venue)
	}
	for _, top := range TopVenues {
		if q.Venue == top {
			return p.Venue == top || strings.Contains(p.Venue, top)
		}
	}
	// Unknown venue selectors fall through to an exact venue match.
	return p.Venue == q.Venue
}

func (q Query) matchStatus(p Publication) bool {
	if q.Status == "" || q.Status == All {
		return true
	}
	if p.Type != Patent {
		return false
	}
	s := strings.ToLower(p.Status)
	if q.Status == StatusApplication {
		return s == StatusApplication || s == StatusWithdrawal
	}
	return s == q.Status
}

// Searcher is the free-text search primitive of the data source.
type Searcher interface {
	SearchPublications(ctx context.Context, query string) ([]Publication, error)
}

// Filter narrows pubs by q. With search text, the searcher supplies the
// candidates and the same selectors are applied to its results.
func Filter(ctx context.Context, q Query, pubs []Publication, s Searcher) ([]Publication, error) {
	candidates := pubs
	if q.Search != "" && s != nil {
		found, err := s.SearchPublications(ctx, q.Search)
		if err != nil {
			return nil, err
		}
		candidates = found
	}

	out := make([]Publication, 0, len(candidates))
	for _, p := range candidates {
		if q.Matches(p) {
			out = append(out, p)
		}
	}
	return out, nil
}
