// Package site assembles page models from the data source and renders
// them, both for the HTTP server and for the static export.
package site

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/vilab/labsite/internal/assets"
	"github.com/vilab/labsite/internal/faculty"
	"github.com/vilab/labsite/internal/news"
	"github.com/vilab/labsite/internal/publication"
	"github.com/vilab/labsite/internal/render"
	"github.com/vilab/labsite/internal/research"
)

// Source is the data the site reads.
type Source interface {
	news.Source
	News(ctx context.Context) ([]news.Item, error)
	Faculty(ctx context.Context) (faculty.Faculty, error)
	Research(ctx context.Context) (research.Document, error)
	SearchPublications(ctx context.Context, query string) ([]publication.Publication, error)
	FormatDate(date, style string) string
}

// Options configures a Site.
type Options struct {
	LabName        string
	AssetsURL      string
	PeopleImageDir string
	YearButtons    []string
	Links          render.Links
	Logger         *zap.Logger
}

// Site builds every page of the lab website.
type Site struct {
	src      Source
	opts     Options
	assets   assets.Resolver
	news     *news.Dispatcher
	renderer *render.Renderer
	log      *zap.Logger
}

// New creates a Site reading from src.
func New(src Source, opts Options) *Site {
	if opts.LabName == "" {
		opts.LabName = news.DefaultLabName
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Links == (render.Links{}) {
		opts.Links = render.ServerLinks(opts.AssetsURL)
	}

	resolver := assets.NewResolver(opts.AssetsURL, opts.PeopleImageDir)
	return &Site{
		src:    src,
		opts:   opts,
		assets: resolver,
		news: news.NewDispatcher(src,
			news.WithLabName(opts.LabName),
			news.WithPhotos(resolver),
			news.WithDateFormatter(src.FormatDate),
			news.WithLogger(opts.Logger),
		),
		renderer: render.New(render.Options{LabName: opts.LabName, Links: opts.Links}),
		log:      opts.Logger,
	}
}

// Relocated returns a copy of s whose asset URLs and navigation links use
// assetsURL and links, for pages written at another depth of the export.
func (s *Site) Relocated(assetsURL string, links render.Links) *Site {
	opts := s.opts
	opts.AssetsURL = assetsURL
	opts.Links = links
	return New(s.src, opts)
}

// Renderer returns the renderer of s.
func (s *Site) Renderer() *render.Renderer {
	return s.renderer
}

// PublicationsView loads and filters the publication list for q. A load or
// search failure is reported through Failed.
func (s *Site) PublicationsView(ctx context.Context, q publication.Query) render.PublicationsView {
	v := render.PublicationsView{
		Query:     q,
		FilterBar: publication.FilterBar(q, s.opts.YearButtons),
	}
	pubs, err := s.Publications(ctx, q)
	if err != nil {
		v.Failed = true
		return v
	}
	v.Listing = publication.NewListing(pubs)
	return v
}

// Publications returns the publications matching q in list order.
func (s *Site) Publications(ctx context.Context, q publication.Query) ([]publication.Publication, error) {
	pubs, err := s.src.Publications(ctx)
	if err != nil {
		s.log.Error("loading publications", zap.Error(err))
		return nil, err
	}
	out, err := publication.Filter(ctx, q, pubs, s.src)
	if err != nil {
		s.log.Error("searching publications", zap.String("query", q.Search), zap.Error(err))
		return nil, err
	}
	return out, nil
}

// NewsPage loads the detail page of the news item id.
func (s *Site) NewsPage(ctx context.Context, id string) *news.Page {
	return s.news.Load(ctx, id)
}

// NewsIDs returns the trimmed, non-empty ids of every news item.
func (s *Site) NewsIDs(ctx context.Context) ([]string, error) {
	items, err := s.src.News(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		id := strings.TrimSpace(string(it.ID))
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids, nil
}

// FacultyPage loads the faculty page, or nil when it cannot be loaded.
func (s *Site) FacultyPage(ctx context.Context) *faculty.Page {
	f, err := s.src.Faculty(ctx)
	if err != nil {
		s.log.Error("loading faculty", zap.Error(err))
		return nil
	}
	p := faculty.NewPage(f)
	return &p
}

// ResearchPage loads the research page, or nil when it cannot be loaded.
func (s *Site) ResearchPage(ctx context.Context) *research.Page {
	doc, err := s.src.Research(ctx)
	if err != nil {
		s.log.Error("loading research", zap.Error(err))
		return nil
	}
	p := research.NewPage(doc, s.assets)
	return &p
}
