// Package faculty defines the faculty profile document and its page model.
package faculty

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/vilab/labsite/internal/publication"
)

// MsgLoadFailed replaces the page when faculty.json cannot be loaded.
const MsgLoadFailed = "Failed to load faculty information."

// Faculty is the faculty.json document.
type Faculty struct {
	Name          string `json:"name"`
	Title         string `json:"title"`
	Photo         string `json:"photo"`
	Email         string `json:"email"`
	Intro         string `json:"intro"`
	GoogleScholar string `json:"google_scholar,omitempty"`
	CV            string `json:"cv,omitempty"`

	Experience    []Experience    `json:"experience,omitempty"`
	Advisory      []Advisory      `json:"advisory,omitempty"`
	Education     []Education     `json:"education,omitempty"`
	Awards        []Award         `json:"awards,omitempty"`
	PublicService []PublicService `json:"service_professional_public,omitempty"`
	Academic      *Academic       `json:"service_academic,omitempty"`
}

// Experience is a position with optional sub-roles.
type Experience struct {
	Role    string   `json:"role"`
	Org     string   `json:"org,omitempty"`
	Period  string   `json:"period,omitempty"`
	Details []Detail `json:"details,omitempty"`
}

// Detail is a line under an experience entry. In JSON it is either a plain
// string or {role, period}.
type Detail struct {
	Role   string `json:"role"`
	Period string `json:"period,omitempty"`
}

// UnmarshalJSON accepts a string or an object.
func (d *Detail) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*d = Detail{Role: s}
		return nil
	}
	type plain Detail
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("experience detail: %w", err)
	}
	*d = Detail(p)
	return nil
}

// Advisory is a corporate or technical advisory role.
type Advisory struct {
	Role   string `json:"role"`
	Org    string `json:"org,omitempty"`
	Period string `json:"period,omitempty"`
}

// Education is a degree.
type Education struct {
	Degree string                     `json:"degree"`
	School string                     `json:"school"`
	Year   publication.FlexibleString `json:"year,omitempty"`
	Thesis string                     `json:"thesis,omitempty"`
}

// Award is an honor.
type Award struct {
	Name string                     `json:"name"`
	Year publication.FlexibleString `json:"year,omitempty"`
}

// PublicService is a professional or public service entry.
type PublicService struct {
	Name   string `json:"name"`
	Period string `json:"period,omitempty"`
}

// Academic groups academic service by scope.
type Academic struct {
	International []AcademicRole `json:"International,omitempty"`
	Domestic      []AcademicRole `json:"Domestic,omitempty"`
}

// AcademicRole is a role held at one or more organisations.
type AcademicRole struct {
	Role string  `json:"role"`
	Org  OrgList `json:"org,omitempty"`
}

// Org is an organisation of an academic role.
type Org struct {
	Name   string `json:"name"`
	Period string `json:"period,omitempty"`
}

// OrgList is either a list of names or a list of {name, period}. Inline
// reports the former; such lists are rendered comma-joined.
type OrgList struct {
	Inline bool
	Orgs   []Org
}

// UnmarshalJSON accepts a list of strings or a list of objects.
func (o *OrgList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("org list: %w", err)
	}
	*o = OrgList{}
	if len(raw) == 0 {
		return nil
	}

	first := bytes.TrimSpace(raw[0])
	if len(first) > 0 && first[0] == '"' {
		o.Inline = true
		for _, r := range raw {
			var s string
			if err := json.Unmarshal(r, &s); err != nil {
				return fmt.Errorf("org list: %w", err)
			}
			o.Orgs = append(o.Orgs, Org{Name: s})
		}
		return nil
	}

	if err := json.Unmarshal(data, &o.Orgs); err != nil {
		return fmt.Errorf("org list: %w", err)
	}
	return nil
}

// MarshalJSON writes the list back in the shape it was read in.
func (o OrgList) MarshalJSON() ([]byte, error) {
	if !o.Inline {
		if o.Orgs == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(o.Orgs)
	}
	return json.Marshal(o.Names())
}

// Names returns the organisation names.
func (o OrgList) Names() []string {
	names := make([]string, 0, len(o.Orgs))
	for _, org := range o.Orgs {
		names = append(names, org.Name)
	}
	return names
}

// Joined returns the names comma-joined.
func (o OrgList) Joined() string {
	return strings.Join(o.Names(), ", ")
}
