// Package goquery provides an HTML document reader for resumes saved as
// web pages. It demonstrates format pluggability beyond PDF and Word: any
// type implementing resumeparse.DocumentReader slots into the pipeline.
package goquery

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/resumeparse"
)

// Ensure Reader implements resumeparse.DocumentReader at compile time.
var _ resumeparse.DocumentReader = (*Reader)(nil)

// blockSelector lists the elements treated as one text line each.
const blockSelector = "h1, h2, h3, h4, h5, h6, p, li, td, dt, dd"

// Reader extracts text from HTML files (.html, .htm).
type Reader struct{}

// NewReader creates a new HTML Reader.
func NewReader() *Reader {
	return &Reader{}
}

// Read extracts the text of block-level elements in document order, one
// line per element, skipping elements whose trimmed text is empty.
func (r *Reader) Read(ctx context.Context, path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", resumeparse.Errorf(resumeparse.ENOTFOUND, "HTML file not found: %s", path)
	}
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".html" && ext != ".htm" {
		return "", resumeparse.Errorf(resumeparse.EUNSUPPORTED, "file is not an HTML document: %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return "", resumeparse.Errorf(resumeparse.EPARSE, "failed to open HTML file: %v", err)
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return "", resumeparse.Errorf(resumeparse.EPARSE, "failed to parse HTML file: %v", err)
	}

	doc.Find("script, style, noscript").Remove()

	var lines []string
	doc.Find(blockSelector).Each(func(_ int, sel *goquery.Selection) {
		// Skip containers that hold other block elements to avoid
		// duplicating nested text.
		if sel.Find(blockSelector).Length() > 0 {
			return
		}
		if text := strings.TrimSpace(sel.Text()); text != "" {
			lines = append(lines, collapseWhitespace(text))
		}
	})

	// Fall back to the raw body text for unstructured documents.
	if len(lines) == 0 {
		if text := strings.TrimSpace(doc.Find("body").Text()); text != "" {
			for _, line := range strings.Split(text, "\n") {
				if line = strings.TrimSpace(line); line != "" {
					lines = append(lines, collapseWhitespace(line))
				}
			}
		}
	}

	if len(lines) == 0 {
		return "", resumeparse.Errorf(resumeparse.EEMPTYDOC,
			"HTML document appears to be empty: %s", path)
	}
	return strings.Join(lines, "\n"), nil
}

// collapseWhitespace reduces runs of whitespace to single spaces.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
