// Package render turns page models into HTML documents and fragments.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"net/url"
	"strings"

	"github.com/vilab/labsite/internal/assets"
	"github.com/vilab/labsite/internal/faculty"
	"github.com/vilab/labsite/internal/news"
	"github.com/vilab/labsite/internal/publication"
	"github.com/vilab/labsite/internal/research"
)

var compiled = template.Must(template.New("site").Funcs(template.FuncMap{
	"rich": RichText,
	"card": func(c news.PersonCard, kind string) personCard {
		return personCard{PersonCard: c, Kind: kind}
	},
}).Parse(layoutTemplate + publicationsTemplate + publicationListTemplate +
	newsTemplate + facultyTemplate + researchTemplate))

type personCard struct {
	news.PersonCard
	Kind string
}

// Links are the hrefs of the site navigation.
type Links struct {
	Publications string
	Faculty      string
	Research     string
	Assets       string // base URL of assets, without a trailing slash
}

// ServerLinks returns the links used by the HTTP server.
func ServerLinks(assetsURL string) Links {
	return Links{
		Publications: "/publications",
		Faculty:      "/faculty",
		Research:     "/research",
		Assets:       strings.TrimRight(assetsURL, "/"),
	}
}

// StaticLinks returns the links of an exported page. prefix leads from the
// page back to the export root, e.g. "" or "../".
func StaticLinks(prefix, assetsURL string) Links {
	return Links{
		Publications: prefix + "index.html",
		Faculty:      prefix + "faculty.html",
		Research:     prefix + "research.html",
		Assets:       strings.TrimRight(assetsURL, "/"),
	}
}

// Options configures a Renderer.
type Options struct {
	LabName string
	Links   Links
}

// Renderer writes the site pages.
type Renderer struct {
	opts Options
}

// New creates a Renderer.
func New(opts Options) *Renderer {
	if opts.LabName == "" {
		opts.LabName = news.DefaultLabName
	}
	return &Renderer{opts: opts}
}

// WithLinks returns a copy of r using links.
func (r *Renderer) WithLinks(links Links) *Renderer {
	opts := r.opts
	opts.Links = links
	return &Renderer{opts: opts}
}

// Links returns the navigation links of r.
func (r *Renderer) Links() Links {
	return r.opts.Links
}

type layoutData struct {
	Title   string
	Active  string
	LabName string
	Links   Links
	Body    template.HTML
}

func (r *Renderer) page(w io.Writer, title, active, name string, data any) error {
	var buf bytes.Buffer
	if err := compiled.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("rendering %s: %w", name, err)
	}
	err := compiled.ExecuteTemplate(w, "layout", layoutData{
		Title:   title,
		Active:  active,
		LabName: r.opts.LabName,
		Links:   r.opts.Links,
		Body:    template.HTML(buf.String()),
	})
	if err != nil {
		return fmt.Errorf("rendering layout: %w", err)
	}
	return nil
}

// PublicationsView is the state of the publications page.
type PublicationsView struct {
	Query     publication.Query
	FilterBar []publication.ButtonGroup
	Listing   publication.Listing
	Failed    bool // the publication list could not be loaded

	// FilterLinks makes every filter button a link to the filtered page.
	// Exported pages have no server to filter and leave it off.
	FilterLinks bool
}

type listData struct {
	Listing     publication.Listing
	Failed      bool
	LoadTitle   string
	LoadMessage string
	NoResults   string
}

type filterButton struct {
	publication.Button
	Href string
}

type filterGroup struct {
	publication.ButtonGroup
	Buttons []filterButton
}

type publicationsData struct {
	Links  Links
	Query  publication.Query
	Groups []filterGroup
	Keep   url.Values
	List   listData
}

func newListData(v PublicationsView) listData {
	return listData{
		Listing:     v.Listing,
		Failed:      v.Failed,
		LoadTitle:   publication.MsgLoadTitle,
		LoadMessage: publication.MsgLoadMessage,
		NoResults:   publication.MsgNoResults,
	}
}

// FilterHref returns the link that applies button b on top of q.
func FilterHref(base string, q publication.Query, b publication.Button) string {
	switch b.Filter {
	case "year":
		q = q.WithYear(b.Value)
	case "venue":
		q = q.WithVenue(b.Value)
	case "status":
		q = q.WithStatus(b.Value)
	}
	if enc := q.Values().Encode(); enc != "" {
		return base + "?" + enc
	}
	return base
}

// Publications writes the full publications page.
func (r *Renderer) Publications(w io.Writer, v PublicationsView) error {
	data := publicationsData{
		Links: r.opts.Links,
		Query: v.Query,
		Keep:  v.Query.WithSearch("").Values(),
		List:  newListData(v),
	}
	for _, g := range v.FilterBar {
		fg := filterGroup{ButtonGroup: g, Buttons: make([]filterButton, 0, len(g.Buttons))}
		for _, b := range g.Buttons {
			fb := filterButton{Button: b}
			if v.FilterLinks {
				fb.Href = FilterHref(r.opts.Links.Publications, v.Query, b)
			}
			fg.Buttons = append(fg.Buttons, fb)
		}
		data.Groups = append(data.Groups, fg)
	}
	return r.page(w, "Publications", "publications", "publications", data)
}

// PublicationList writes only the listing, for replacing the content of
// .publications-content.
func (r *Renderer) PublicationList(w io.Writer, v PublicationsView) error {
	if err := compiled.ExecuteTemplate(w, "publication-list", newListData(v)); err != nil {
		return fmt.Errorf("rendering publication list: %w", err)
	}
	return nil
}

// News writes a news detail page in any state.
func (r *Renderer) News(w io.Writer, p *news.Page) error {
	title := "News"
	if p.Detail != nil && p.Detail.Header.Title != "" {
		title = p.Detail.Header.Title
	}
	return r.page(w, title, "news", "news", p)
}

type facultyData struct {
	Page    *faculty.Page
	Message string
}

// Faculty writes the faculty page. A nil page renders the load failure.
func (r *Renderer) Faculty(w io.Writer, p *faculty.Page) error {
	data := facultyData{Page: p}
	if p == nil {
		data.Message = faculty.MsgLoadFailed
	}
	return r.page(w, "Faculty", "faculty", "faculty", data)
}

type researchData struct {
	Page             *research.Page
	Message          string
	MediaPlaceholder string
	ReferenceLabel   string
}

// Research writes the research page. A nil page renders the load failure.
func (r *Renderer) Research(w io.Writer, p *research.Page) error {
	data := researchData{
		Page:             p,
		MediaPlaceholder: assets.MediaPlaceholder,
		ReferenceLabel:   research.ReferenceLabel,
	}
	if p == nil {
		data.Message = research.MsgLoadFailed
	}
	return r.page(w, "Research", "research", "research", data)
}
