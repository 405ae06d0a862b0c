// Package docx provides a Word document reader. A .docx file is a ZIP
// container holding WordprocessingML; paragraphs are read from the section
// headers first (resumes often carry the name there) and then from the
// document body.
package docx

import (
	"archive/zip"
	"context"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/resumeparse"
)

// Ensure Reader implements resumeparse.DocumentReader at compile time.
var _ resumeparse.DocumentReader = (*Reader)(nil)

// Reader extracts text from Word documents (.docx). Legacy binary .doc
// files pass the extension check but fail at decode with EPARSE.
type Reader struct{}

// NewReader creates a new Word document Reader.
func NewReader() *Reader {
	return &Reader{}
}

// Read extracts text from the Word document at path: header paragraphs of
// every section first, then body paragraphs in document order. Paragraphs
// whose trimmed text is empty are skipped; the rest are joined with a
// newline.
func (r *Reader) Read(ctx context.Context, path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", resumeparse.Errorf(resumeparse.ENOTFOUND, "Word document not found: %s", path)
	}
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".docx" && ext != ".doc" {
		return "", resumeparse.Errorf(resumeparse.EUNSUPPORTED, "file is not a Word document: %s", path)
	}

	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", resumeparse.Errorf(resumeparse.EPARSE, "failed to parse Word document: %v", err)
	}
	defer zr.Close()

	var headerFiles []*zip.File
	var docFile *zip.File
	for _, f := range zr.File {
		switch {
		case f.Name == "word/document.xml":
			docFile = f
		case strings.HasPrefix(f.Name, "word/header") && strings.HasSuffix(f.Name, ".xml"):
			headerFiles = append(headerFiles, f)
		}
	}
	if docFile == nil {
		return "", resumeparse.Errorf(resumeparse.EPARSE,
			"failed to parse Word document: word/document.xml not found in archive")
	}
	sort.Slice(headerFiles, func(i, j int) bool { return headerFiles[i].Name < headerFiles[j].Name })

	var paragraphs []string
	for _, hf := range headerFiles {
		ps, err := fileParagraphs(hf)
		if err != nil {
			return "", resumeparse.Errorf(resumeparse.EPARSE, "failed to parse Word document: %v", err)
		}
		paragraphs = append(paragraphs, ps...)
	}

	ps, err := fileParagraphs(docFile)
	if err != nil {
		return "", resumeparse.Errorf(resumeparse.EPARSE, "failed to parse Word document: %v", err)
	}
	paragraphs = append(paragraphs, ps...)

	text := strings.Join(paragraphs, "\n")
	if strings.TrimSpace(text) == "" {
		return "", resumeparse.Errorf(resumeparse.EEMPTYDOC, "Word document appears to be empty: %s", path)
	}
	return text, nil
}

// fileParagraphs extracts non-empty paragraph texts from one XML part.
func fileParagraphs(f *zip.File) ([]string, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, err
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, err
	}
	root := doc.Root()
	if root == nil {
		return nil, nil
	}

	var paragraphs []string
	for _, p := range elementsByTag(root, "p") {
		var sb strings.Builder
		for _, t := range elementsByTag(p, "t") {
			sb.WriteString(t.Text())
		}
		if text := strings.TrimSpace(sb.String()); text != "" {
			paragraphs = append(paragraphs, text)
		}
	}
	return paragraphs, nil
}

// elementsByTag returns all descendants of el with the given local tag, in
// document order. Matching ignores the namespace prefix so both <w:p> and
// unprefixed <p> are found.
func elementsByTag(el *etree.Element, tag string) []*etree.Element {
	var out []*etree.Element
	for _, child := range el.ChildElements() {
		if child.Tag == tag {
			out = append(out, child)
			continue
		}
		out = append(out, elementsByTag(child, tag)...)
	}
	return out
}
