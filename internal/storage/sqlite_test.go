package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vilab/labsite/internal/publication"
)

func testPublications() []publication.Publication {
	return []publication.Publication{
		{
			Title:    "Diffusion Models for Depth Estimation",
			Authors:  []string{"Minji Kim", "Junho Lee"},
			Venue:    "CVPR",
			Year:     2025,
			Type:     publication.Conference,
			Keywords: []string{"depth", "generative"},
		},
		{
			Title:      "Robust Optical Flow",
			TitleKor:   "강인한 광학 흐름",
			Authors:    []string{"Sora Park"},
			AuthorsKor: []string{"박소라"},
			Venue:      "TPAMI",
			Year:       2024,
			Type:       publication.Journal,
		},
		{
			Title:            "Method for Estimating Depth",
			Authors:          []string{"Minji Kim"},
			Type:             publication.Patent,
			RegistrationDate: "2023-05-02",
			Keywords:         []string{"patent"},
		},
	}
}

func setupIndex(t *testing.T) *Index {
	t.Helper()

	ix, err := OpenIndex("")
	if err != nil {
		t.Fatalf("OpenIndex: %v", err)
	}
	t.Cleanup(func() { ix.Close() })

	n, err := ix.Rebuild(context.Background(), testPublications())
	if err != nil {
		t.Fatalf("Rebuild: %v", err)
	}
	if n != 3 {
		t.Fatalf("Rebuild indexed %d, want 3", n)
	}
	return ix
}

func titles(pubs []publication.Publication) []string {
	var out []string
	for _, p := range pubs {
		out = append(out, p.Title)
	}
	return out
}

func TestSearch(t *testing.T) {
	ix := setupIndex(t)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"title word", "diffusion", []string{"Diffusion Models for Depth Estimation"}},
		{"prefix", "estim", []string{"Diffusion Models for Depth Estimation", "Method for Estimating Depth"}},
		{"author", "kim", []string{"Diffusion Models for Depth Estimation", "Method for Estimating Depth"}},
		{"keyword", "generative", []string{"Diffusion Models for Depth Estimation"}},
		{"terms are AND-ed", "depth lee", []string{"Diffusion Models for Depth Estimation"}},
		{"korean title", "광학", []string{"Robust Optical Flow"}},
		{"korean author", "박소라", []string{"Robust Optical Flow"}},
		{"author field", "author:park", []string{"Robust Optical Flow"}},
		{"title field excludes authors", "title:kim", nil},
		{"keyword field", "keyword:patent", []string{"Method for Estimating Depth"}},
		{"uppercase", "OPTICAL", []string{"Robust Optical Flow"}},
		{"inside a word", "timat", []string{"Diffusion Models for Depth Estimation", "Method for Estimating Depth"}},
		{"korean given name", "소라", []string{"Robust Optical Flow"}},
		{"short term inside a word", "ow", []string{"Robust Optical Flow"}},
		{"short field term", "author:ee", []string{"Diffusion Models for Depth Estimation"}},
		{"underscore is literal", "o_t", nil},
		{"no match", "transformer", nil},
		{"special characters", `"flow" (robust)`, []string{"Robust Optical Flow"}},
		{"blank matches all", "   ", []string{"Diffusion Models for Depth Estimation", "Robust Optical Flow", "Method for Estimating Depth"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ix.Search(context.Background(), tt.query)
			if err != nil {
				t.Fatalf("Search(%q): %v", tt.query, err)
			}
			if diff := cmp.Diff(tt.want, titles(got)); diff != "" {
				t.Errorf("Search(%q) mismatch (-want +got):\n%s", tt.query, diff)
			}
		})
	}
}

func TestSearchReturnsFullRecords(t *testing.T) {
	ix := setupIndex(t)

	got, err := ix.Search(context.Background(), "keyword:patent")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	want := testPublications()[2:]
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("record mismatch (-want +got):\n%s", diff)
	}
}

func TestRebuildReplaces(t *testing.T) {
	ix := setupIndex(t)
	ctx := context.Background()

	if _, err := ix.Rebuild(ctx, testPublications()[:1]); err != nil {
		t.Fatalf("Rebuild: %v", err)
	}
	all, err := ix.Search(ctx, "")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("indexed %d publications, want 1", len(all))
	}
	got, err := ix.Search(ctx, "optical")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("stale record still indexed: %v", titles(got))
	}
}

func TestOpenIndexOnDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.db")
	ix, err := OpenIndex(path)
	if err != nil {
		t.Fatalf("OpenIndex: %v", err)
	}
	defer ix.Close()

	if _, err := ix.Rebuild(context.Background(), testPublications()); err != nil {
		t.Fatalf("Rebuild: %v", err)
	}
	got, err := ix.Search(context.Background(), "flow")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("len = %d, want 1", len(got))
	}
}

func TestParseTerms(t *testing.T) {
	tests := []struct {
		in   string
		want []term
	}{
		{"", nil},
		{"deep", []term{{text: "deep"}}},
		{"deep  flow", []term{{text: "deep"}, {text: "flow"}}},
		{"author:kim", []term{{column: "authors", text: "kim"}}},
		{"Title:flow", []term{{column: "title", text: "flow"}}},
		{"keyword:depth", []term{{column: "keywords", text: "depth"}}},
		{"venue:cvpr", []term{{text: "venue:cvpr"}}},
		{`say"hi`, []term{{text: `say"hi`}}},
		{`"*"`, nil},
		{"(robust)", []term{{text: "robust"}}},
		{"author:", nil},
	}
	for _, tt := range tests {
		got := parseTerms(tt.in)
		if diff := cmp.Diff(tt.want, got, cmp.AllowUnexported(term{})); diff != "" {
			t.Errorf("parseTerms(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}
