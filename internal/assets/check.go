package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/vilab/labsite/internal/publication"
)

// Problem describes a broken asset reference.
type Problem struct {
	Title  string `json:"title"`
	Field  string `json:"field"`
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// Report summarises an asset check.
type Report struct {
	Checked  int       `json:"checked"`
	Remote   int       `json:"remote"`
	Problems []Problem `json:"problems"`
}

// OK reports whether no problems were found.
func (r Report) OK() bool {
	return len(r.Problems) == 0
}

// IsRemote reports whether ref points outside the local asset tree.
func IsRemote(ref string) bool {
	lower := strings.ToLower(ref)
	return strings.HasPrefix(lower, "http://") ||
		strings.HasPrefix(lower, "https://") ||
		strings.HasPrefix(lower, "mailto:") ||
		strings.HasPrefix(lower, "//")
}

// PDFPages opens a PDF and returns its page count.
func PDFPages(filePath string) (int, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	n := r.NumPage()
	if n < 1 {
		return 0, fmt.Errorf("no pages")
	}
	return n, nil
}

// CheckPublications verifies that local paper and supplement links exist
// under assetsDir and that PDFs among them can be opened. Remote links are
// counted but not fetched.
func CheckPublications(pubs []publication.Publication, assetsDir, assetsURL string) Report {
	var report Report
	prefix := strings.TrimRight(assetsURL, "/") + "/"

	for _, p := range pubs {
		for _, link := range publication.Links(p) {
			if IsRemote(link.URL) {
				report.Remote++
				continue
			}
			report.Checked++

			rel := strings.TrimPrefix(link.URL, prefix)
			rel = strings.TrimLeft(rel, "/")
			local := filepath.Join(assetsDir, filepath.FromSlash(rel))

			info, err := os.Stat(local)
			if err != nil {
				report.Problems = append(report.Problems, Problem{p.Title, link.Label, link.URL, "file not found"})
				continue
			}
			if info.IsDir() {
				report.Problems = append(report.Problems, Problem{p.Title, link.Label, link.URL, "is a directory"})
				continue
			}
			if strings.EqualFold(filepath.Ext(local), ".pdf") {
				if _, err := PDFPages(local); err != nil {
					report.Problems = append(report.Problems, Problem{p.Title, link.Label, link.URL, fmt.Sprintf("unreadable PDF: %v", err)})
				}
			}
		}
	}
	return report
}
