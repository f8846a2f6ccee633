// Package publication defines lab publications and the classification,
// filtering and grouping used by the publications page.
package publication

// Type is the publication kind as recorded in publications.json.
type Type string

const (
	Conference Type = "conference"
	Journal    Type = "journal"
	Workshop   Type = "workshop"
	Preprint   Type = "preprint"
	Patent     Type = "patent"
)

// Publication is a single entry of publications.json.
type Publication struct {
	Title      string   `json:"title"`
	TitleKor   string   `json:"title_kor,omitempty"`
	Authors    []string `json:"authors"`
	AuthorsKor []string `json:"authors_kor,omitempty"`
	Venue      string   `json:"venue"`
	Year       Year     `json:"year,omitempty"` // Resolved from patent dates, see YearOf
	Type       Type     `json:"type"`

	Presentation string   `json:"presentation,omitempty"` // e.g. "oral", "highlight"
	Abstract     string   `json:"abstract,omitempty"`
	Keywords     []string `json:"keywords,omitempty"`

	PDFURL     string `json:"pdf_url,omitempty"`
	SuppURL    string `json:"supp_url,omitempty"`
	ArxivURL   string `json:"arxiv_url,omitempty"`
	CodeURL    string `json:"code_url,omitempty"`
	ProjectURL string `json:"project_url,omitempty"`

	Featured bool   `json:"featured,omitempty"`
	Category string `json:"category,omitempty"`

	// Patent-only fields
	ApplicationNo    string `json:"application_no,omitempty"`
	ApplicationDate  string `json:"application_date,omitempty"` // e.g. "2020.01.01"
	RegistrationNo   string `json:"registration_no,omitempty"`
	RegistrationDate string `json:"registration_date,omitempty"`
	Status           string `json:"status,omitempty"` // application, withdrawal, active, expired
	Country          string `json:"country,omitempty"`
	PatentID         string `json:"patent_id,omitempty"`
}

// IsPatent reports whether the publication is a patent.
func (p Publication) IsPatent() bool {
	return p.Type == Patent
}
