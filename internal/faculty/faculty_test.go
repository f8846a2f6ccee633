package faculty

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const sample = `{
  "name": "Jane Doe",
  "title": "Professor",
  "photo": "../assets/images/faculty.jpg",
  "email": "jane@example.edu",
  "intro": "  ",
  "experience": [
    {"role": "Professor", "org": "Univ", "period": "2020-", "details": ["Head of lab", {"role": "Dean", "period": "2022-2024"}]}
  ],
  "education": [{"degree": "Ph.D.", "school": "MIT", "year": 2010}],
  "awards": [{"name": "Best Paper", "year": "2019"}],
  "service_academic": {
    "International": [
      {"role": "Area Chair", "org": ["CVPR 2024", "ICCV 2023"]},
      {"role": "Editor", "org": [{"name": "TPAMI", "period": "2021-"}]}
    ]
  }
}`

func decode(t *testing.T) Faculty {
	t.Helper()
	var f Faculty
	if err := json.Unmarshal([]byte(sample), &f); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return f
}

func TestDetailShapes(t *testing.T) {
	f := decode(t)
	want := []Detail{{Role: "Head of lab"}, {Role: "Dean", Period: "2022-2024"}}
	if diff := cmp.Diff(want, f.Experience[0].Details); diff != "" {
		t.Errorf("details mismatch (-want +got):\n%s", diff)
	}
}

func TestOrgListShapes(t *testing.T) {
	f := decode(t)
	roles := f.Academic.International

	if !roles[0].Org.Inline {
		t.Error("string org list not marked inline")
	}
	if got := roles[0].Org.Joined(); got != "CVPR 2024, ICCV 2023" {
		t.Errorf("Joined = %q", got)
	}
	if roles[1].Org.Inline {
		t.Error("object org list marked inline")
	}
	if diff := cmp.Diff([]Org{{Name: "TPAMI", Period: "2021-"}}, roles[1].Org.Orgs); diff != "" {
		t.Errorf("orgs mismatch (-want +got):\n%s", diff)
	}
}

func TestOrgListRoundTrip(t *testing.T) {
	for _, raw := range []string{`["A","B"]`, `[{"name":"A","period":"2020"}]`} {
		var o OrgList
		if err := json.Unmarshal([]byte(raw), &o); err != nil {
			t.Fatalf("unmarshal %s: %v", raw, err)
		}
		out, err := json.Marshal(o)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if string(out) != raw {
			t.Errorf("round trip %s = %s", raw, out)
		}
	}
}

func TestNewPage(t *testing.T) {
	p := NewPage(decode(t))

	if p.Intro != DefaultIntro {
		t.Errorf("Intro = %q, want %q", p.Intro, DefaultIntro)
	}
	if p.Education[0].Year.String() != "2010" {
		t.Errorf("numeric education year = %q", p.Education[0].Year)
	}

	want := []string{SectionExperience, SectionEducation, SectionAwards, SectionAcademic}
	if diff := cmp.Diff(want, p.Sections()); diff != "" {
		t.Errorf("sections mismatch (-want +got):\n%s", diff)
	}
	if len(p.AcademicGroups) != 1 || p.AcademicGroups[0].Title != "International" {
		t.Errorf("AcademicGroups = %+v", p.AcademicGroups)
	}
}

func TestNewPageKeepsIntro(t *testing.T) {
	p := NewPage(Faculty{Intro: "Hello"})
	if p.Intro != "Hello" {
		t.Errorf("Intro = %q", p.Intro)
	}
	if got := p.Sections(); got != nil {
		t.Errorf("Sections = %v, want none", got)
	}
}
