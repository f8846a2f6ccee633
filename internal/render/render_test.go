package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vilab/labsite/internal/assets"
	"github.com/vilab/labsite/internal/faculty"
	"github.com/vilab/labsite/internal/news"
	"github.com/vilab/labsite/internal/publication"
	"github.com/vilab/labsite/internal/research"
)

func newTestRenderer() *Renderer {
	return New(Options{LabName: "TESTLAB", Links: ServerLinks("/assets/")})
}

func assertContains(t *testing.T, got string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(got, w) {
			t.Errorf("output missing %q", w)
		}
	}
}

func assertNotContains(t *testing.T, got string, unwanted ...string) {
	t.Helper()
	for _, w := range unwanted {
		if strings.Contains(got, w) {
			t.Errorf("output unexpectedly contains %q", w)
		}
	}
}

func TestRichText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "   ", ""},
		{"paragraph", "hello", "<p>hello</p>\n"},
		{"emphasis", "**bold**", "<p><strong>bold</strong></p>\n"},
		{"inline html kept", "a <b>b</b>", "<p>a <b>b</b></p>\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(RichText(tt.in)); got != tt.want {
				t.Errorf("RichText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestLinks(t *testing.T) {
	s := ServerLinks("/assets/")
	if s.Assets != "/assets" || s.Publications != "/publications" {
		t.Errorf("ServerLinks = %+v", s)
	}
	st := StaticLinks("../", "../assets")
	if st.Publications != "../index.html" || st.Faculty != "../faculty.html" || st.Research != "../research.html" {
		t.Errorf("StaticLinks = %+v", st)
	}
}

func TestFilterHref(t *testing.T) {
	q := publication.DefaultQuery()
	tests := []struct {
		name string
		q    publication.Query
		b    publication.Button
		want string
	}{
		{"year", q, publication.Button{Filter: "year", Value: "2024"}, "/publications?year=2024"},
		{"all resets", q.WithYear("2024"), publication.Button{Filter: "year", Value: "all"}, "/publications"},
		{"venue", q, publication.Button{Filter: "venue", Value: "CVPR"}, "/publications?venue=CVPR"},
		{"venue clears status", q.WithVenue(publication.GroupPatents).WithStatus("active"), publication.Button{Filter: "venue", Value: "ICCV"}, "/publications?venue=ICCV"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FilterHref("/publications", tt.q, tt.b); got != tt.want {
				t.Errorf("FilterHref = %q, want %q", got, tt.want)
			}
		})
	}
}

func samplePublications() []publication.Publication {
	return []publication.Publication{
		{
			Title:    "Robust Optical Flow",
			TitleKor: "강인한 광류",
			Authors:  []string{"A. Kim", "B. Lee"},
			Venue:    "CVPR",
			Year:     2024,
			Type:     publication.Conference,
			Abstract: "We estimate flow.",
			Keywords: []string{"flow"},
			PDFURL:   "https://example.com/paper.pdf",
			CodeURL:  "#",
			Featured: true,
		},
		{
			Title:            "Camera Module",
			Venue:            "KIPO",
			Type:             publication.Patent,
			RegistrationNo:   "10-1234567",
			RegistrationDate: "2021.05.01",
			Country:          "KR",
			Status:           "active",
		},
	}
}

func TestPublicationsPage(t *testing.T) {
	pubs := samplePublications()
	q := publication.DefaultQuery()
	var buf bytes.Buffer
	err := newTestRenderer().Publications(&buf, PublicationsView{
		Query:       q,
		FilterBar:   publication.FilterBar(q, nil),
		Listing:     publication.NewListing(pubs),
		FilterLinks: true,
	})
	if err != nil {
		t.Fatalf("Publications: %v", err)
	}
	got := buf.String()
	assertContains(t, got,
		"<title>Publications | TESTLAB</title>",
		`href="/assets/css/style.css"`,
		`class="publication-filters"`,
		`class="filter-btn active" data-filter="year" data-value="all"`,
		`href="/publications?year=2024"`,
		`filter-group-status hidden`,
		`class="publication-search"`,
		`name="q"`,
		`class="publications-content"`,
		`class="publication-item featured"`,
		`<span class="publication-title-kor">강인한 광류</span>`,
		`<p class="publication-authors">A. Kim, B. Lee</p>`,
		`<strong>CVPR 2024</strong>`,
		`class="pub-link">Paper</a>`,
		"Registration (등록): <strong>KR</strong>, <strong>10-1234567</strong> (2021.05.01)",
		"Status: <strong>active</strong>",
	)
	assertNotContains(t, got, ">Code</a>")
}

func TestPublicationsPageStaticButtons(t *testing.T) {
	q := publication.DefaultQuery()
	var buf bytes.Buffer
	r := newTestRenderer().WithLinks(StaticLinks("", "assets"))
	err := r.Publications(&buf, PublicationsView{Query: q, FilterBar: publication.FilterBar(q, nil)})
	if err != nil {
		t.Fatalf("Publications: %v", err)
	}
	got := buf.String()
	assertContains(t, got, `<button type="button" class="filter-btn`, `href="faculty.html"`)
	assertNotContains(t, got, "?year=")
}

func TestPublicationList(t *testing.T) {
	tests := []struct {
		name    string
		view    PublicationsView
		want    []string
		notWant []string
	}{
		{
			name: "failed",
			view: PublicationsView{Failed: true},
			want: []string{`<div class="error-message">`, "<h3>Error Loading Publications</h3>"},
		},
		{
			name:    "empty",
			view:    PublicationsView{},
			want:    []string{`<p class="no-results">No publications found matching your criteria.</p>`},
			notWant: []string{"error-message"},
		},
		{
			name: "sections",
			view: PublicationsView{Listing: publication.NewListing(samplePublications())},
			want: []string{`class="year-title">2024</h2>`, "Robust Optical Flow"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := newTestRenderer().PublicationList(&buf, tt.view); err != nil {
				t.Fatalf("PublicationList: %v", err)
			}
			got := buf.String()
			assertContains(t, got, tt.want...)
			assertNotContains(t, got, tt.notWant...)
			assertNotContains(t, got, "<html")
		})
	}
}

func TestNewsMessage(t *testing.T) {
	var buf bytes.Buffer
	p := &news.Page{ID: "9", Message: news.MsgNotFound}
	if err := newTestRenderer().News(&buf, p); err != nil {
		t.Fatalf("News: %v", err)
	}
	assertContains(t, buf.String(), `id="news-detail"`, "<p>News not found.</p>", "<title>News | TESTLAB</title>")
}

func TestNewsPublication(t *testing.T) {
	d := &news.Detail{
		Header: news.Header{Title: "Papers accepted", Date: "March 1, 2024", Kind: news.KindPublication, Badge: "Publication"},
		Publications: &news.RelatedPublications{
			Summary: "VILAB has 1 paper accepted to CVPR 2024.",
			Items:   []publication.View{publication.NewView(samplePublications()[0])},
		},
	}
	var buf bytes.Buffer
	if err := newTestRenderer().News(&buf, &news.Page{ID: "1", Detail: d}); err != nil {
		t.Fatalf("News: %v", err)
	}
	assertContains(t, buf.String(),
		`<h1 class="news-detail-title">Papers accepted</h1>`,
		`<span class="news-detail-date">March 1, 2024</span>`,
		`class="news-detail-type news-type-publication">Publication</span>`,
		`<p class="news-publications-subtitle">VILAB has 1 paper accepted to CVPR 2024.</p>`,
		`class="news-publication-item"`,
		`target="_blank"`,
	)
}

func TestNewsPeople(t *testing.T) {
	card := news.PersonCard{Name: "Hong Gil-dong", Resolved: true, Photo: "/assets/images/people/hong.jpg", Placeholder: "/assets/images/people/placeholder.png", Major: "Ph.D. Course", Thesis: "Learning Flow", Email: "hong@example.com"}
	d := &news.Detail{
		Header: news.Header{Title: "Graduation", Kind: news.KindGraduation, Badge: "Graduation"},
		Groups: []news.PeopleGroup{
			{Key: "phd", Title: "PhD Graduates", Cards: []news.PersonCard{card}},
			{Key: "ms", Title: "Masters Graduates", Cards: []news.PersonCard{{Name: "Unknown"}}},
		},
	}
	var buf bytes.Buffer
	if err := newTestRenderer().News(&buf, &news.Page{ID: "2", Detail: d}); err != nil {
		t.Fatalf("News: %v", err)
	}
	got := buf.String()
	assertContains(t, got,
		`class="person-card graduation-person-card"`,
		`<hr class="graduation-divider">`,
		`<h2 class="category-title">PhD Graduates</h2>`,
		`<p class="person-thesis-en">Learning Flow</p>`,
		`href="mailto:hong@example.com"`,
		`<h3 class="person-name">Unknown</h3>`,
		"onerror=",
	)
	if n := strings.Count(got, `<img src=`); n != 1 {
		t.Errorf("got %d photos, want 1 (unresolved names have none)", n)
	}
}

func TestNewsPeopleMessage(t *testing.T) {
	d := &news.Detail{
		Header:        news.Header{Title: "Graduation", Kind: news.KindGraduation},
		PeopleMessage: news.MsgNoGraduates,
	}
	var buf bytes.Buffer
	if err := newTestRenderer().News(&buf, &news.Page{ID: "2", Detail: d}); err != nil {
		t.Fatalf("News: %v", err)
	}
	assertContains(t, buf.String(), "No graduated members are listed.")
}

func TestNewsGalleryAndCareer(t *testing.T) {
	award := &news.Detail{
		Header:      news.Header{Title: "Best Paper", Kind: news.KindAward, Badge: "Award"},
		Description: "Won the **best paper** award.",
		Images:      []news.Image{{Src: "/assets/award.jpg", Alt: "Best Paper"}},
		Links:       []news.Link{{Label: "Article", URL: "https://example.com/a"}},
	}
	var buf bytes.Buffer
	if err := newTestRenderer().News(&buf, &news.Page{ID: "3", Detail: award}); err != nil {
		t.Fatalf("News: %v", err)
	}
	assertContains(t, buf.String(),
		`class="award-description"><p>Won the <strong>best paper</strong> award.</p>`,
		`class="award-images-grid"`,
		`class="award-image-card"`,
		`class="award-link-chip">Article</a>`,
	)

	career := &news.Detail{
		Header: news.Header{Title: "New positions", Kind: news.KindCareer, Badge: "Career"},
		Careers: []news.CareerCard{{
			Person:       news.PersonCard{Name: "Kim", Photo: "/assets/images/people/placeholder.png", Placeholder: "/assets/images/people/placeholder.png"},
			Career:       "Assistant Professor",
			ArticleTitle: "Interview",
			ArticleURL:   "https://example.com/i",
		}},
	}
	buf.Reset()
	if err := newTestRenderer().News(&buf, &news.Page{ID: "4", Detail: career}); err != nil {
		t.Fatalf("News: %v", err)
	}
	assertContains(t, buf.String(),
		`class="person-card career-person-card"`,
		`class="career-next-block"`,
		"Appointed as",
		"Related Article:",
		`href="https://example.com/i"`,
	)
}

func TestFacultyPage(t *testing.T) {
	f := faculty.Faculty{
		Name:  "Prof. Park",
		Title: "Associate Professor",
		Email: "park@example.com",
		Experience: []faculty.Experience{{
			Role:    "Professor",
			Org:     "University",
			Period:  "2020 - Present",
			Details: []faculty.Detail{{Role: "Chair"}, {Role: "Director", Period: "2022"}},
		}},
		Awards: []faculty.Award{{Name: "Young Scientist", Year: "2021"}},
		Academic: &faculty.Academic{
			International: []faculty.AcademicRole{{Role: "Area Chair", Org: faculty.OrgList{Inline: true, Orgs: []faculty.Org{{Name: "CVPR"}, {Name: "ICCV"}}}}},
		},
	}
	p := faculty.NewPage(f)
	var buf bytes.Buffer
	if err := newTestRenderer().Faculty(&buf, &p); err != nil {
		t.Fatalf("Faculty: %v", err)
	}
	got := buf.String()
	assertContains(t, got,
		`id="faculty-container"`,
		`<p class="faculty-name">Prof. Park</p>`,
		"<p>TBD.</p>",
		"Professional Experience",
		`<li><span class="exp-detail-role">Director</span> <span class="exp-detail-period">2022</span></li>`,
		"<li>Chair</li>",
		`<span class="award-year">2021</span>`,
		`<h3 class="academic-group-title">International</h3>`,
		`<div class="academic-org-inline">CVPR, ICCV</div>`,
	)
	assertNotContains(t, got, "Education", "Google Scholar")
}

func TestFacultyFailed(t *testing.T) {
	var buf bytes.Buffer
	if err := newTestRenderer().Faculty(&buf, nil); err != nil {
		t.Fatalf("Faculty: %v", err)
	}
	assertContains(t, buf.String(), `<p class="error-message">Failed to load faculty information.</p>`)
}

func TestResearchPage(t *testing.T) {
	doc := research.Document{Categories: []research.Category{
		{
			Title: "Motion",
			Topics: []research.Topic{
				{Title: "Flow", Description: "Dense motion.", Media: "flow.mp4", MediaReference: "https://example.com/ref"},
				{Title: "Depth", Description: "Depth maps.", Image: "depth.png"},
				{Title: "Tracking", Description: "Points."},
			},
		},
		{Title: "Vision", Description: "General vision."},
	}}
	p := research.NewPage(doc, assets.NewResolver("/assets", ""))
	var buf bytes.Buffer
	if err := newTestRenderer().Research(&buf, &p); err != nil {
		t.Fatalf("Research: %v", err)
	}
	got := buf.String()
	assertContains(t, got,
		`id="research-list"`,
		`<h2 class="research-section-title">Motion</h2>`,
		`class="research-topic-video" autoplay loop muted playsinline`,
		`<img src="/assets/depth.png" alt="Depth" class="research-topic-image">`,
		`<div class="research-topic-media-placeholder">Media</div>`,
		`class="media-reference-pill">Image/Video Reference</a>`,
		`class="research-topic research-topic-single"`,
		"General vision.",
	)
}

func TestResearchFailed(t *testing.T) {
	var buf bytes.Buffer
	if err := newTestRenderer().Research(&buf, nil); err != nil {
		t.Fatalf("Research: %v", err)
	}
	assertContains(t, buf.String(), `class="research-error"`)
}
