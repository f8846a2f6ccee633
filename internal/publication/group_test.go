package publication

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGroup_PreprintsFirstThenYearsDescending(t *testing.T) {
	pubs := []Publication{
		{Title: "old", Type: Conference, Year: 2019},
		{Title: "pre1", Type: Preprint, Year: 2018},
		{Title: "new1", Type: Journal, Year: 2025},
		{Title: "patent", Type: Patent, RegistrationDate: "2023.01.02"},
		{Title: "new2", Type: Conference, Year: 2025},
		{Title: "pre2", Type: Preprint, Year: 2026},
	}

	got := Group(pubs)

	type section struct {
		Key    string
		Titles []string
	}
	var gotSections []section
	for _, s := range got {
		gotSections = append(gotSections, section{s.Key, titles(s.Publications)})
	}
	want := []section{
		{"preprints", []string{"pre1", "pre2"}},
		{"2025", []string{"new1", "new2"}},
		{"2023", []string{"patent"}},
		{"2019", []string{"old"}},
	}
	if diff := cmp.Diff(want, gotSections); diff != "" {
		t.Errorf("Group() mismatch (-want +got):\n%s", diff)
	}
	if got[0].Title != "Preprints" {
		t.Errorf("first section title = %q, want Preprints", got[0].Title)
	}
}

func TestGroup_EveryRecordOnce(t *testing.T) {
	pubs := samplePublications()
	sections := Group(pubs)

	count := make(map[string]int)
	total := 0
	for _, s := range sections {
		for _, p := range s.Publications {
			count[p.Title]++
			total++
		}
	}
	if total != len(pubs) {
		t.Errorf("Group() holds %d records, want %d", total, len(pubs))
	}
	for _, p := range pubs {
		if count[p.Title] != 1 {
			t.Errorf("record %q appears %d times", p.Title, count[p.Title])
		}
	}
}

func TestGroup_NoPreprintSection(t *testing.T) {
	sections := Group([]Publication{{Title: "a", Type: Journal, Year: 2020}})
	if len(sections) != 1 || sections[0].Key != "2020" {
		t.Errorf("Group() = %+v, want a single 2020 section", sections)
	}
	if got := Group(nil); len(got) != 0 {
		t.Errorf("Group(nil) = %+v, want empty", got)
	}
}
