package publication

import (
	"regexp"
	"strconv"
	"strings"
)

// TopVenues are the flagship computer-vision venues with dedicated filter
// buttons. Order matters when a venue string mentions more than one.
var TopVenues = []string{"CVPR", "ECCV", "ICCV"}

// Venue groups returned by VenueGroup for non-top venues.
const (
	GroupJournals         = "Journals"
	GroupOtherConferences = "Other Conferences"
	GroupPatents          = "Patents"
	GroupOther            = "Other"
)

var yearPattern = regexp.MustCompile(`\d{4}`)

// YearFromDate extracts the first 4-digit run of a date string such as
// "2024.03.05". Returns 0 when there is none.
func YearFromDate(s string) int {
	m := yearPattern.FindString(s)
	if m == "" {
		return 0
	}
	y, _ := strconv.Atoi(m)
	return y
}

// YearOf returns the resolved year of a publication. Patents take the year of
// registration_date, then of application_date, then any pre-set year. Other
// types use their year as given.
func YearOf(p Publication) int {
	if p.Type != Patent {
		return p.Year.Int()
	}
	if y := YearFromDate(p.RegistrationDate); y != 0 {
		return y
	}
	if y := YearFromDate(p.ApplicationDate); y != 0 {
		return y
	}
	return p.Year.Int()
}

// Resolve returns a copy of pubs with every year resolved by YearOf.
func Resolve(pubs []Publication) []Publication {
	out := make([]Publication, len(pubs))
	for i, p := range pubs {
		p.Year = Year(YearOf(p))
		out[i] = p
	}
	return out
}

// TopVenueOf returns the top venue named by venue, matching exactly or by
// case-sensitive substring ("CVPR 2025" and "ECCVW" both match).
func TopVenueOf(venue string) (string, bool) {
	for _, top := range TopVenues {
		if venue == top {
			return top, true
		}
	}
	for _, top := range TopVenues {
		if strings.Contains(venue, top) {
			return top, true
		}
	}
	return "", false
}

// IsTopVenue reports whether venue matches one of TopVenues.
func IsTopVenue(venue string) bool {
	_, ok := TopVenueOf(venue)
	return ok
}

// VenueGroup classifies a publication into a venue bucket.
func VenueGroup(p Publication) string {
	if top, ok := TopVenueOf(p.Venue); ok {
		return top
	}
	switch p.Type {
	case Journal:
		return GroupJournals
	case Conference:
		return GroupOtherConferences
	case Patent:
		return GroupPatents
	default:
		return GroupOther
	}
}
