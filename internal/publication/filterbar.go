package publication

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultYearButtons are the year selectors shown when none are configured.
var DefaultYearButtons = []string{"2026", "2025", "2024", "2023", "2022", "2021", "-2020"}

// Button is one selector button of the filter bar.
type Button struct {
	Filter string `json:"filter"` // year, venue, status
	Value  string `json:"value"`
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

// ButtonGroup is a labelled row of mutually exclusive buttons.
type ButtonGroup struct {
	Filter  string   `json:"filter"`
	Label   string   `json:"label"`
	Buttons []Button `json:"buttons"`
	Hidden  bool     `json:"hidden,omitempty"`
}

type option struct{ value, label string }

// FilterBar builds the year, venue and status button groups for q. The
// status group is hidden unless the Patents venue is selected.
func FilterBar(q Query, yearButtons []string) []ButtonGroup {
	if len(yearButtons) == 0 {
		yearButtons = DefaultYearButtons
	}

	years := []option{{All, "All Years"}}
	for _, y := range yearButtons {
		years = append(years, option{y, y})
	}

	venues := []option{
		{All, "All Venues"},
		{"CVPR", "CVPR"},
		{"ICCV", "ICCV"},
		{"ECCV", "ECCV"},
		{GroupOtherConferences, GroupOtherConferences},
		{GroupJournals, GroupJournals},
		{GroupPatents, GroupPatents},
	}

	statuses := []option{
		{All, "All"},
		{StatusActive, "Active"},
		{StatusExpired, "Expired"},
		{StatusApplication, "Application"},
	}

	return []ButtonGroup{
		buttonGroup("year", "Filter by Year:", years, q.Year),
		buttonGroup("venue", "Filter by Venue:", venues, q.Venue),
		func() ButtonGroup {
			g := buttonGroup("status", "Filter by Status:", statuses, q.Status)
			g.Hidden = q.Venue != GroupPatents
			return g
		}(),
	}
}

func buttonGroup(filter, label string, opts []option, active string) ButtonGroup {
	g := ButtonGroup{Filter: filter, Label: label, Buttons: make([]Button, 0, len(opts))}
	matched := false
	for _, o := range opts {
		b := Button{Filter: filter, Value: o.value, Label: o.label, Active: o.value == active}
		matched = matched || b.Active
		g.Buttons = append(g.Buttons, b)
	}
	// A selector value without a button keeps "all" highlighted.
	if !matched && len(g.Buttons) > 0 {
		g.Buttons[0].Active = true
	}
	return g
}

// ValidateYearButtons checks that every year button is a year or a
// "-year" threshold.
func ValidateYearButtons(buttons []string) error {
	for _, b := range buttons {
		if _, err := strconv.Atoi(strings.TrimPrefix(b, "-")); err != nil {
			return fmt.Errorf("invalid year button %q: must be a year or -year", b)
		}
	}
	return nil
}
