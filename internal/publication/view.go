package publication

import (
	"strconv"
	"strings"
)

// Messages shown in place of the listing.
const (
	MsgNoResults   = "No publications found matching your criteria."
	MsgLoadTitle   = "Error Loading Publications"
	MsgLoadMessage = "We're having trouble loading the publications data. Please try refreshing the page."
)

// Link is a labelled outbound link (paper, code, project page).
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// PatentMeta is a registration or application line of a patent.
type PatentMeta struct {
	Country string `json:"country,omitempty"`
	Number  string `json:"number,omitempty"`
	Date    string `json:"date,omitempty"`
}

// View is the presentation model of one publication. Empty fields are left
// out of the rendered markup.
type View struct {
	Title        string   `json:"title"`
	TitleKor     string   `json:"title_kor,omitempty"`
	Authors      string   `json:"authors,omitempty"`
	AuthorsKor   string   `json:"authors_kor,omitempty"`
	Venue        string   `json:"venue"` // venue followed by the year when known
	Presentation string   `json:"presentation,omitempty"`
	Abstract     string   `json:"abstract,omitempty"`
	Keywords     []string `json:"keywords,omitempty"`
	Links        []Link   `json:"links,omitempty"`

	Featured bool   `json:"featured,omitempty"`
	Category string `json:"category,omitempty"`
	Type     Type   `json:"type"`

	Registration *PatentMeta `json:"registration,omitempty"`
	Application  *PatentMeta `json:"application,omitempty"`
	Status       string      `json:"status,omitempty"`
}

// NewView builds the presentation model of p.
func NewView(p Publication) View {
	v := View{
		Title:        p.Title,
		TitleKor:     p.TitleKor,
		Authors:      strings.Join(p.Authors, ", "),
		AuthorsKor:   strings.Join(p.AuthorsKor, ", "),
		Venue:        venueText(p),
		Presentation: p.Presentation,
		Keywords:     p.Keywords,
		Links:        Links(p),
		Featured:     p.Featured,
		Category:     p.Category,
		Type:         p.Type,
	}

	if !p.IsPatent() {
		v.Abstract = p.Abstract
		return v
	}

	if p.RegistrationNo != "" || p.RegistrationDate != "" {
		v.Registration = &PatentMeta{Country: p.Country, Number: p.RegistrationNo, Date: p.RegistrationDate}
	}
	if p.ApplicationNo != "" || p.ApplicationDate != "" {
		v.Application = &PatentMeta{Country: p.Country, Number: p.ApplicationNo, Date: p.ApplicationDate}
	}
	v.Status = p.Status
	return v
}

func venueText(p Publication) string {
	if y := YearOf(p); y != 0 {
		return p.Venue + " " + strconv.Itoa(y)
	}
	return p.Venue
}

// Links returns the non-empty outbound links of p in display order.
// A bare "#" is a placeholder and is skipped.
func Links(p Publication) []Link {
	candidates := []Link{
		{"Paper", p.PDFURL},
		{"Supp", p.SuppURL},
		{"ArXiv", p.ArxivURL},
		{"Code", p.CodeURL},
		{"Project Page", p.ProjectURL},
	}
	var links []Link
	for _, l := range candidates {
		if l.URL == "" || l.URL == "#" {
			continue
		}
		links = append(links, l)
	}
	return links
}

// SectionView is a rendered section of the listing.
type SectionView struct {
	Key   string `json:"key"`
	Title string `json:"title"`
	Items []View `json:"items"`
}

// Listing is the presentation model of a filtered publication list.
type Listing struct {
	Sections []SectionView `json:"sections"`
	Total    int           `json:"total"`
}

// Empty reports whether the listing has no publications.
func (l Listing) Empty() bool {
	return l.Total == 0
}

// NewListing groups pubs and builds their views.
func NewListing(pubs []Publication) Listing {
	groups := Group(pubs)
	l := Listing{Sections: make([]SectionView, 0, len(groups)), Total: len(pubs)}
	for _, g := range groups {
		sv := SectionView{Key: g.Key, Title: g.Title, Items: make([]View, 0, len(g.Publications))}
		for _, p := range g.Publications {
			sv.Items = append(sv.Items, NewView(p))
		}
		l.Sections = append(l.Sections, sv)
	}
	return l
}
