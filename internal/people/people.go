// Package people defines lab members and the name index used to enrich
// news pages.
package people

import "strings"

// Degree selects which degree-specific fields of a person apply.
type Degree string

const (
	PhD Degree = "phd"
	MS  Degree = "ms"
)

// Person is a single entry of people.json.
type Person struct {
	Name     string `json:"name"`
	Image    string `json:"image,omitempty"` // file name under the people image directory
	Email    string `json:"email,omitempty"`
	Website  string `json:"website,omitempty"`
	Category string `json:"category,omitempty"` // phd, ms, alumni, ...

	Major    string `json:"major,omitempty"` // legacy single-major field
	MajorPhD string `json:"major_phd,omitempty"`
	MajorMS  string `json:"major_ms,omitempty"`

	ThesisPhD    string `json:"thesis_phd,omitempty"`
	ThesisPhDKor string `json:"thesis_phd_kor,omitempty"`
	ThesisMS     string `json:"thesis_ms,omitempty"`
	ThesisMSKor  string `json:"thesis_ms_kor,omitempty"`
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// MajorFor returns the major to show for the given degree, falling back to
// the legacy field and then the other degree.
func (p Person) MajorFor(d Degree) string {
	switch d {
	case PhD:
		return firstNonEmpty(p.MajorPhD, p.Major, p.MajorMS)
	case MS:
		return firstNonEmpty(p.MajorMS, p.Major, p.MajorPhD)
	default:
		return firstNonEmpty(p.Major, p.MajorMS, p.MajorPhD)
	}
}

// ThesisFor returns the English and Korean thesis titles for the degree.
func (p Person) ThesisFor(d Degree) (en, kor string) {
	switch d {
	case PhD:
		return p.ThesisPhD, p.ThesisPhDKor
	case MS:
		return p.ThesisMS, p.ThesisMSKor
	default:
		return firstNonEmpty(p.ThesisMS, p.ThesisPhD), firstNonEmpty(p.ThesisMSKor, p.ThesisPhDKor)
	}
}

// DegreeLine returns "Ph.D in <major>" or "M.S. in <major>" for current
// students, the bare major otherwise, or "" when no major is known.
func (p Person) DegreeLine() string {
	var prefix string
	d := Degree(p.Category)
	switch d {
	case PhD:
		prefix = "Ph.D in"
	case MS:
		prefix = "M.S. in"
	default:
		d = ""
	}

	major := p.MajorFor(d)
	if major == "" {
		return ""
	}
	if prefix == "" {
		return major
	}
	return prefix + " " + major
}

// Index maps trimmed names to people.
type Index struct {
	byName map[string]Person
}

// NewIndex builds a name index. People without a name are skipped; a later
// entry with the same name replaces an earlier one.
func NewIndex(people []Person) Index {
	ix := Index{byName: make(map[string]Person, len(people))}
	for _, p := range people {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			continue
		}
		ix.byName[name] = p
	}
	return ix
}

// Lookup finds a person by exact trimmed name.
func (ix Index) Lookup(name string) (Person, bool) {
	p, ok := ix.byName[strings.TrimSpace(name)]
	return p, ok
}

// Len returns the number of indexed names.
func (ix Index) Len() int {
	return len(ix.byName)
}
