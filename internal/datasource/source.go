// Package datasource loads the site's JSON documents from a directory or a
// remote base URL and caches them in memory.
package datasource

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/vilab/labsite/internal/faculty"
	"github.com/vilab/labsite/internal/news"
	"github.com/vilab/labsite/internal/people"
	"github.com/vilab/labsite/internal/publication"
	"github.com/vilab/labsite/internal/research"
	"github.com/vilab/labsite/internal/storage"
)

// Document names.
const (
	PublicationsFile = "publications.json"
	PeopleFile       = "people.json"
	NewsFile         = "news.json"
	FacultyFile      = "faculty.json"
	ResearchFile     = "research.json"
)

// Documents lists every document the site reads.
var Documents = []string{PublicationsFile, PeopleFile, NewsFile, FacultyFile, ResearchFile}

// Source decodes and caches documents handed out by a Fetcher. It is safe
// for concurrent use.
type Source struct {
	fetcher Fetcher
	log     *zap.Logger

	mu    sync.Mutex
	cache map[string]any
	index *storage.Index
	gen   uint64 // bumped by ClearCache
}

// Option configures a Source.
type Option func(*Source)

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Source) {
		if l != nil {
			s.log = l
		}
	}
}

// NewSource creates a source reading through f.
func NewSource(f Fetcher, opts ...Option) *Source {
	s := &Source{
		fetcher: f,
		log:     zap.NewNop(),
		cache:   make(map[string]any),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// load returns the cached value of name or fetches and decodes it. Failures
// are not cached.
func load[T any](ctx context.Context, s *Source, name string, decode func([]byte) (T, error)) (T, error) {
	s.mu.Lock()
	if v, ok := s.cache[name]; ok {
		s.mu.Unlock()
		return v.(T), nil
	}
	gen := s.gen
	s.mu.Unlock()

	var zero T
	data, err := s.fetcher.Fetch(ctx, name)
	if err != nil {
		return zero, err
	}
	v, err := decode(data)
	if err != nil {
		return zero, fmt.Errorf("decoding %s: %w", name, err)
	}

	s.mu.Lock()
	if s.gen == gen {
		s.cache[name] = v
	}
	s.mu.Unlock()

	s.log.Debug("loaded document", zap.String("name", name), zap.Int("bytes", len(data)))
	return v, nil
}

// decodeList accepts a bare array or an object holding the array under key.
func decodeList[T any](data []byte, key string) ([]T, error) {
	data = bytes.TrimSpace(data)
	var out []T
	if len(data) > 0 && data[0] == '[' {
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
		}
		return out, nil
	}

	var wrapped map[string]json.RawMessage
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	raw, ok := wrapped[key]
	if !ok {
		return nil, fmt.Errorf("%w: no %q array", ErrInvalidDocument, key)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return out, nil
}

func decodeObject[T any](data []byte) (T, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return v, nil
}

// Publications returns every publication with its year resolved.
func (s *Source) Publications(ctx context.Context) ([]publication.Publication, error) {
	return load(ctx, s, PublicationsFile, func(data []byte) ([]publication.Publication, error) {
		pubs, err := decodeList[publication.Publication](data, "publications")
		if err != nil {
			return nil, err
		}
		return publication.Resolve(pubs), nil
	})
}

// People returns every lab member.
func (s *Source) People(ctx context.Context) ([]people.Person, error) {
	return load(ctx, s, PeopleFile, func(data []byte) ([]people.Person, error) {
		return decodeList[people.Person](data, "people")
	})
}

// News returns every news item.
func (s *Source) News(ctx context.Context) ([]news.Item, error) {
	return load(ctx, s, NewsFile, func(data []byte) ([]news.Item, error) {
		return decodeList[news.Item](data, "news")
	})
}

// NewsItem returns the news item with the given id, or nil when there is
// none.
func (s *Source) NewsItem(ctx context.Context, id string) (*news.Item, error) {
	items, err := s.News(ctx)
	if err != nil {
		return nil, err
	}
	id = strings.TrimSpace(id)
	for i := range items {
		if strings.TrimSpace(items[i].ID.String()) == id {
			it := items[i]
			return &it, nil
		}
	}
	return nil, nil
}

// Faculty returns the faculty profile.
func (s *Source) Faculty(ctx context.Context) (faculty.Faculty, error) {
	return load(ctx, s, FacultyFile, decodeObject[faculty.Faculty])
}

// Research returns the research categories.
func (s *Source) Research(ctx context.Context) (research.Document, error) {
	return load(ctx, s, ResearchFile, decodeObject[research.Document])
}

// PublicationYears returns the distinct resolved years, newest first.
// Unknown years are left out.
func (s *Source) PublicationYears(ctx context.Context) ([]int, error) {
	pubs, err := s.Publications(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[int]bool)
	var years []int
	for _, p := range pubs {
		y := publication.YearOf(p)
		if y == 0 || seen[y] {
			continue
		}
		seen[y] = true
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years, nil
}

// PublicationCategories returns the distinct non-empty categories in
// first-seen order.
func (s *Source) PublicationCategories(ctx context.Context) ([]string, error) {
	pubs, err := s.Publications(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var cats []string
	for _, p := range pubs {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		cats = append(cats, p.Category)
	}
	return cats, nil
}

// SearchPublications returns the publications matching query in list order.
// The full-text index is built on first use and dropped by ClearCache.
func (s *Source) SearchPublications(ctx context.Context, query string) ([]publication.Publication, error) {
	pubs, err := s.Publications(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.index == nil {
		ix, err := storage.OpenIndex("")
		if err != nil {
			return nil, fmt.Errorf("opening search index: %w", err)
		}
		n, err := ix.Rebuild(ctx, pubs)
		if err != nil {
			ix.Close()
			return nil, fmt.Errorf("building search index: %w", err)
		}
		s.log.Debug("built search index", zap.Int("publications", n))
		s.index = ix
	}
	return s.index.Search(ctx, strings.ToLower(query))
}

// FormatDate renders a content date in the given style.
func (s *Source) FormatDate(date, style string) string {
	return FormatDate(date, style)
}

// ClearCache drops every cached document and the search index.
func (s *Source) ClearCache() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache = make(map[string]any)
	s.gen++
	if s.index != nil {
		if err := s.index.Close(); err != nil {
			s.log.Warn("closing search index", zap.Error(err))
		}
		s.index = nil
	}
	s.log.Info("cache cleared")
}

// Close releases the search index.
func (s *Source) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.index == nil {
		return nil
	}
	err := s.index.Close()
	s.index = nil
	return err
}
