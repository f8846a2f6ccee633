package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vilab/labsite/internal/publication"
)

func TestResolver_PersonPhoto(t *testing.T) {
	r := NewResolver("../../assets/", "")

	if got := r.PersonPhoto("jane.jpg"); got != "../../assets/images/people/jane.jpg" {
		t.Errorf("PersonPhoto() = %q", got)
	}
	if got := r.PersonPhoto(""); got != "../../assets/images/people/student-placeholder.svg" {
		t.Errorf("PersonPhoto(\"\") = %q", got)
	}

	custom := NewResolver("/assets", "/people/")
	if got := custom.PersonPhoto("a.png"); got != "/assets/people/a.png" {
		t.Errorf("custom PersonPhoto() = %q", got)
	}
}

func TestResolver_Media(t *testing.T) {
	r := NewResolver("/assets", "")

	tests := []struct {
		file string
		kind MediaKind
		url  string
	}{
		{"research/demo.MP4", MediaVideo, "/assets/research/demo.MP4"},
		{"research/teaser.gif", MediaImage, "/assets/research/teaser.gif"},
		{"  ", MediaNone, ""},
	}

	for _, tt := range tests {
		got := r.Media(tt.file)
		if got.Kind != tt.kind || got.URL != tt.url {
			t.Errorf("Media(%q) = %+v, want kind %d url %q", tt.file, got, tt.kind, tt.url)
		}
	}
}

func TestIsRemote(t *testing.T) {
	for ref, want := range map[string]bool{
		"https://arxiv.org/abs/1": true,
		"HTTP://x":                true,
		"//cdn.example.com/a.pdf": true,
		"papers/a.pdf":            false,
		"/assets/papers/a.pdf":    false,
	} {
		if got := IsRemote(ref); got != want {
			t.Errorf("IsRemote(%q) = %v, want %v", ref, got, want)
		}
	}
}

func TestCheckPublications(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "papers"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "papers", "broken.pdf"), []byte("not a pdf"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "papers", "supp.zip"), []byte("zip"), 0644); err != nil {
		t.Fatal(err)
	}

	pubs := []publication.Publication{
		{Title: "remote", PDFURL: "https://openaccess.thecvf.com/a.pdf"},
		{Title: "local", PDFURL: "/assets/papers/broken.pdf", SuppURL: "/assets/papers/supp.zip"},
		{Title: "missing", PDFURL: "papers/missing.pdf"},
	}

	report := CheckPublications(pubs, dir, "/assets")

	if report.Remote != 1 {
		t.Errorf("Remote = %d, want 1", report.Remote)
	}
	if report.Checked != 3 {
		t.Errorf("Checked = %d, want 3", report.Checked)
	}
	if len(report.Problems) != 2 {
		t.Fatalf("Problems = %+v, want 2", report.Problems)
	}
	if report.Problems[0].Title != "local" || report.Problems[1].Reason != "file not found" {
		t.Errorf("Problems = %+v", report.Problems)
	}
	if report.OK() {
		t.Error("OK() = true with problems")
	}
}
