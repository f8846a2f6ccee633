package faculty

import "strings"

// DefaultIntro is shown when the intro is blank.
const DefaultIntro = "TBD."

// Section titles in page order.
const (
	SectionExperience    = "Professional Experience"
	SectionAdvisory      = "Corporate & Technical Advisories"
	SectionEducation     = "Education"
	SectionAwards        = "Honors & Awards"
	SectionPublicService = "Professional & Public Service"
	SectionAcademic      = "Academic Service"
)

// AcademicGroup is the International or Domestic part of academic service.
type AcademicGroup struct {
	Title string
	Roles []AcademicRole
}

// Page is the view model of the faculty page. Empty sections are nil.
type Page struct {
	Faculty

	Intro          string
	AcademicGroups []AcademicGroup
}

// NewPage builds the faculty page model.
func NewPage(f Faculty) Page {
	p := Page{Faculty: f, Intro: f.Intro}
	if strings.TrimSpace(p.Intro) == "" {
		p.Intro = DefaultIntro
	}
	if f.Academic != nil {
		if len(f.Academic.International) > 0 {
			p.AcademicGroups = append(p.AcademicGroups, AcademicGroup{Title: "International", Roles: f.Academic.International})
		}
		if len(f.Academic.Domestic) > 0 {
			p.AcademicGroups = append(p.AcademicGroups, AcademicGroup{Title: "Domestic", Roles: f.Academic.Domestic})
		}
	}
	return p
}

// Sections returns the titles of the non-empty sections in page order.
func (p Page) Sections() []string {
	var out []string
	add := func(title string, n int) {
		if n > 0 {
			out = append(out, title)
		}
	}
	add(SectionExperience, len(p.Experience))
	add(SectionAdvisory, len(p.Advisory))
	add(SectionEducation, len(p.Education))
	add(SectionAwards, len(p.Awards))
	add(SectionPublicService, len(p.PublicService))
	add(SectionAcademic, len(p.AcademicGroups))
	return out
}
