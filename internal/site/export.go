package site

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/vilab/labsite/internal/news"
	"github.com/vilab/labsite/internal/publication"
	"github.com/vilab/labsite/internal/render"
)

// Exported file names, relative to the output directory.
const (
	IndexFile    = "index.html"
	FacultyFile  = "faculty.html"
	ResearchFile = "research.html"
	NewsDir      = "news"
	AssetsDir    = "assets"
)

// DefaultExportWorkers bounds the pages rendered at once.
const DefaultExportWorkers = 4

// ExportOptions configures Export.
type ExportOptions struct {
	OutDir string

	// AssetsDir is copied to {OutDir}/assets when set, and pages then
	// reference assets relative to themselves.
	AssetsDir string

	// AssetsURL is used when AssetsDir is empty.
	AssetsURL string

	Workers int
}

// ExportResult lists what Export wrote.
type ExportResult struct {
	Files    []string `json:"files"`
	Assets   int      `json:"assets"`
	Warnings []string `json:"warnings,omitempty"`
}

// Export writes every page to opts.OutDir. Pages whose data fails to load
// are written with their failure message; a news list that cannot be read
// skips the news pages with a warning.
func (s *Site) Export(ctx context.Context, opts ExportOptions) (*ExportResult, error) {
	if opts.OutDir == "" {
		return nil, fmt.Errorf("export: output directory is required")
	}
	if opts.Workers <= 0 {
		opts.Workers = DefaultExportWorkers
	}
	if err := os.MkdirAll(opts.OutDir, 0755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", opts.OutDir, err)
	}

	res := &ExportResult{}
	assetsURL := opts.AssetsURL
	if opts.AssetsDir != "" {
		n, err := copyTree(opts.AssetsDir, filepath.Join(opts.OutDir, AssetsDir))
		if err != nil {
			return nil, fmt.Errorf("copying assets: %w", err)
		}
		res.Assets = n
		assetsURL = AssetsDir
	}

	root := s.Relocated(assetsURL, render.StaticLinks("", assetsURL))
	nestedAssets := relativeURL("../", assetsURL)
	nested := s.Relocated(nestedAssets, render.StaticLinks("../", nestedAssets))

	var mu sync.Mutex
	written := func(name string) {
		mu.Lock()
		res.Files = append(res.Files, name)
		mu.Unlock()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)

	page := func(name string, fn func(ctx context.Context, w io.Writer) error) {
		g.Go(func() error {
			var buf bytes.Buffer
			if err := fn(gctx, &buf); err != nil {
				return fmt.Errorf("rendering %s: %w", name, err)
			}
			if err := writeFile(filepath.Join(opts.OutDir, filepath.FromSlash(name)), buf.Bytes()); err != nil {
				return err
			}
			written(name)
			return nil
		})
	}

	page(IndexFile, func(ctx context.Context, w io.Writer) error {
		return root.Renderer().Publications(w, root.PublicationsView(ctx, publication.DefaultQuery()))
	})
	page(FacultyFile, func(ctx context.Context, w io.Writer) error {
		return root.Renderer().Faculty(w, root.FacultyPage(ctx))
	})
	page(ResearchFile, func(ctx context.Context, w io.Writer) error {
		return root.Renderer().Research(w, root.ResearchPage(ctx))
	})

	ids, err := s.NewsIDs(ctx)
	if err != nil {
		s.log.Warn("skipping news pages", zap.Error(err))
		res.Warnings = append(res.Warnings, fmt.Sprintf("news pages skipped: %v", err))
	}
	names := newsFiles(ids)
	for i, id := range ids {
		name := names[i]
		if name != NewsFile(id) {
			res.Warnings = append(res.Warnings, fmt.Sprintf("news %s: exported as %s", id, name))
		}
		page(name, func(ctx context.Context, w io.Writer) error {
			p := nested.NewsPage(ctx, id)
			if p.State != news.Rendered {
				mu.Lock()
				res.Warnings = append(res.Warnings, fmt.Sprintf("news %s: %s", id, p.Message))
				mu.Unlock()
			}
			return nested.Renderer().News(w, p)
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	sort.Strings(res.Files)
	sort.Strings(res.Warnings)
	s.log.Info("exported site",
		zap.String("dir", opts.OutDir),
		zap.Int("pages", len(res.Files)),
		zap.Int("assets", res.Assets))
	return res, nil
}

// NewsFile returns the export path of the news page id, with characters
// that cannot appear in a file name replaced.
func NewsFile(id string) string {
	clean := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, strings.TrimSpace(id))
	if clean == "." || clean == ".." {
		clean = strings.Repeat("_", len(clean))
	}
	return NewsDir + "/" + clean + ".html"
}

// newsFiles returns the export path of each id in ids. Ids that clean to
// a path already taken, ignoring case, get a numeric suffix.
func newsFiles(ids []string) []string {
	taken := make(map[string]bool, len(ids))
	names := make([]string, len(ids))
	for i, id := range ids {
		name := NewsFile(id)
		base := strings.TrimSuffix(name, ".html")
		for n := 2; taken[strings.ToLower(name)]; n++ {
			name = fmt.Sprintf("%s-%d.html", base, n)
		}
		taken[strings.ToLower(name)] = true
		names[i] = name
	}
	return names
}

// relativeURL prefixes a relative URL with prefix; absolute paths and URLs
// with a scheme are returned unchanged.
func relativeURL(prefix, u string) string {
	if u == "" || strings.HasPrefix(u, "/") || strings.Contains(u, "://") {
		return u
	}
	return prefix + u
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// copyTree copies the regular files under src into dst and returns how
// many were copied.
func copyTree(src, dst string) (int, error) {
	n := 0
	err := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if err := copyFile(path, target); err != nil {
			return err
		}
		n++
		return nil
	})
	return n, err
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
