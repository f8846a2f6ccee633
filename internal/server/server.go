// Package server serves the lab website over HTTP.
package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vilab/labsite/internal/export"
	"github.com/vilab/labsite/internal/news"
	"github.com/vilab/labsite/internal/publication"
	"github.com/vilab/labsite/internal/render"
	"github.com/vilab/labsite/internal/site"
)

const (
	contentHTML = "text/html; charset=utf-8"

	// DefaultShutdownTimeout bounds the graceful shutdown in Run.
	DefaultShutdownTimeout = 5 * time.Second
)

// Options configures a Server.
type Options struct {
	Addr      string
	AssetsDir string // served under AssetsURL when set
	AssetsURL string
	Logger    *zap.Logger
}

// Server routes requests to the site pages.
type Server struct {
	site   *site.Site
	opts   Options
	engine *gin.Engine
	log    *zap.Logger
}

// New creates a server for s.
func New(s *site.Site, opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	srv := &Server{
		site:   s,
		opts:   opts,
		engine: gin.New(),
		log:    opts.Logger,
	}
	srv.engine.Use(requestID(), logRequests(srv.log), gin.Recovery())
	srv.routes()
	return srv
}

func (s *Server) routes() {
	r := s.engine
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/publications")
	})
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/publications", s.publications)
	r.GET("/publications/list", s.publicationList)
	r.GET("/publications.bib", s.bibtex)
	r.GET("/news", s.newsDetail)
	r.GET("/news/:id", s.newsDetail)
	r.GET("/faculty", s.faculty)
	r.GET("/research", s.research)

	api := r.Group("/api")
	{
		api.GET("/publications", s.apiPublications)
	}

	if s.opts.AssetsDir != "" {
		r.Static(assetsPrefix(s.opts.AssetsURL), s.opts.AssetsDir)
	}
}

// assetsPrefix is the route of the static assets: the path of a local
// assets URL, or /assets when assets live elsewhere.
func assetsPrefix(assetsURL string) string {
	if strings.HasPrefix(assetsURL, "/") && len(strings.TrimRight(assetsURL, "/")) > 0 {
		return strings.TrimRight(assetsURL, "/")
	}
	return "/assets"
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on the configured address until ctx is done, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	hs := &http.Server{
		Addr:              s.opts.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", zap.String("addr", s.opts.Addr))
		errCh <- hs.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving %s: %w", s.opts.Addr, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), DefaultShutdownTimeout)
	defer cancel()
	if err := hs.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	s.log.Info("server stopped")
	return nil
}

func (s *Server) html(c *gin.Context, status int, fn func(*bytes.Buffer) error) {
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	respond(c, status, contentHTML, buf.Bytes())
}

func (s *Server) publicationsView(c *gin.Context) render.PublicationsView {
	q := publication.ParseQuery(c.Request.URL.Query())
	v := s.site.PublicationsView(c.Request.Context(), q)
	v.FilterLinks = true
	return v
}

func (s *Server) publications(c *gin.Context) {
	v := s.publicationsView(c)
	s.html(c, viewStatus(v), func(buf *bytes.Buffer) error {
		return s.site.Renderer().Publications(buf, v)
	})
}

func (s *Server) publicationList(c *gin.Context) {
	v := s.publicationsView(c)
	s.html(c, viewStatus(v), func(buf *bytes.Buffer) error {
		return s.site.Renderer().PublicationList(buf, v)
	})
}

func viewStatus(v render.PublicationsView) int {
	if v.Failed {
		return http.StatusInternalServerError
	}
	return http.StatusOK
}

// APIPublications is the body of /api/publications.
type APIPublications struct {
	Query   publication.Query   `json:"query"`
	Listing publication.Listing `json:"listing"`
}

func (s *Server) apiPublications(c *gin.Context) {
	q := publication.ParseQuery(c.Request.URL.Query())
	pubs, err := s.site.Publications(c.Request.Context(), q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": publication.MsgLoadMessage})
		return
	}
	c.JSON(http.StatusOK, APIPublications{Query: q, Listing: publication.NewListing(pubs)})
}

func (s *Server) bibtex(c *gin.Context) {
	q := publication.ParseQuery(c.Request.URL.Query())
	pubs, err := s.site.Publications(c.Request.Context(), q)
	if err != nil {
		c.String(http.StatusInternalServerError, publication.MsgLoadMessage)
		return
	}
	respond(c, http.StatusOK, "application/x-bibtex; charset=utf-8", []byte(export.ToBibTeXList(pubs)))
}

func (s *Server) newsDetail(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		id = c.Query("id")
	}
	p := s.site.NewsPage(c.Request.Context(), id)
	s.html(c, newsStatus(p), func(buf *bytes.Buffer) error {
		return s.site.Renderer().News(buf, p)
	})
}

func newsStatus(p *news.Page) int {
	switch {
	case p.State == news.Rendered:
		return http.StatusOK
	case p.Message == news.MsgInvalidID:
		return http.StatusBadRequest
	case p.Message == news.MsgNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) faculty(c *gin.Context) {
	p := s.site.FacultyPage(c.Request.Context())
	status := http.StatusOK
	if p == nil {
		status = http.StatusInternalServerError
	}
	s.html(c, status, func(buf *bytes.Buffer) error {
		return s.site.Renderer().Faculty(buf, p)
	})
}

func (s *Server) research(c *gin.Context) {
	p := s.site.ResearchPage(c.Request.Context())
	status := http.StatusOK
	if p == nil {
		status = http.StatusInternalServerError
	}
	s.html(c, status, func(buf *bytes.Buffer) error {
		return s.site.Renderer().Research(buf, p)
	})
}
