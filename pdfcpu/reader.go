// Package pdfcpu provides a PDF document reader built on the pdfcpu
// library. Text is recovered from page content streams, which covers the
// common text-based resume PDFs; scanned image PDFs yield no text.
package pdfcpu

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"github.com/fwojciec/resumeparse"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Ensure Reader implements resumeparse.DocumentReader at compile time.
var _ resumeparse.DocumentReader = (*Reader)(nil)

// Reader extracts text from PDF files.
type Reader struct{}

// NewReader creates a new PDF Reader.
func NewReader() *Reader {
	return &Reader{}
}

// Read extracts text from every page of the PDF at path, in document order.
// Pages yielding no text are skipped; page texts are joined with a newline.
func (r *Reader) Read(ctx context.Context, path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", resumeparse.Errorf(resumeparse.ENOTFOUND, "PDF file not found: %s", path)
	}
	if strings.ToLower(filepath.Ext(path)) != ".pdf" {
		return "", resumeparse.Errorf(resumeparse.EUNSUPPORTED, "file is not a PDF: %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return "", resumeparse.Errorf(resumeparse.EPARSE, "failed to open PDF: %v", err)
	}
	defer f.Close()

	pdfCtx, err := api.ReadValidateAndOptimize(f, model.NewDefaultConfiguration())
	if err != nil {
		return "", resumeparse.Errorf(resumeparse.EPARSE, "failed to parse PDF file: %v", err)
	}

	var pages []string
	for pageNr := 1; pageNr <= pdfCtx.PageCount; pageNr++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if pageText := extractPageText(pdfCtx, pageNr); pageText != "" {
			pages = append(pages, pageText)
		}
	}

	text := strings.Join(pages, "\n")
	if strings.TrimSpace(text) == "" {
		return "", resumeparse.Errorf(resumeparse.EEMPTYDOC,
			"PDF appears to be empty or contains no extractable text: %s", path)
	}
	return text, nil
}

// extractPageText extracts text from a single page via its content stream.
func extractPageText(pdfCtx *model.Context, pageNr int) string {
	cr, err := pdfcpu.ExtractPageContent(pdfCtx, pageNr)
	if err != nil {
		return ""
	}
	data, err := io.ReadAll(cr)
	if err != nil || len(data) == 0 {
		return ""
	}
	return extractTextFromStream(data)
}

// pdfStringRe matches PDF string literals in parentheses: (text here)
var pdfStringRe = regexp.MustCompile(`\(([^)]*)\)`)

// extractTextFromStream parses PDF content stream operators for text.
// Text positioning operators (Td, TD, T*, ') become line breaks so the
// extracted text keeps the line structure the field extractors rely on.
func extractTextFromStream(data []byte) string {
	var sb strings.Builder

	for _, line := range bytes.Split(data, []byte{'\n'}) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		switch {
		// Tj / TJ operators: (text) Tj, [(text) -100 (more)] TJ
		case bytes.HasSuffix(line, []byte("Tj")), bytes.HasSuffix(line, []byte("TJ")):
			for _, m := range pdfStringRe.FindAllSubmatch(line, -1) {
				sb.WriteString(decodePDFString(m[1]))
			}

		// ' operator: move to next line and show text.
		case bytes.HasSuffix(line, []byte("'")) && bytes.Contains(line, []byte("(")):
			for _, m := range pdfStringRe.FindAllSubmatch(line, -1) {
				sb.WriteByte('\n')
				sb.WriteString(decodePDFString(m[1]))
			}

		// Td / TD / T* operators reposition the text cursor.
		case bytes.HasSuffix(line, []byte("Td")), bytes.HasSuffix(line, []byte("TD")),
			bytes.Equal(line, []byte("T*")):
			sb.WriteByte('\n')
		}
	}

	return cleanPageText(sb.String())
}

// decodePDFString handles basic PDF escape sequences.
func decodePDFString(raw []byte) string {
	var sb strings.Builder
	for i := 0; i < len(raw); i++ {
		if raw[i] != '\\' || i+1 >= len(raw) {
			sb.WriteByte(raw[i])
			continue
		}
		i++
		switch raw[i] {
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case '\\', '(', ')':
			sb.WriteByte(raw[i])
		default:
			// Octal escape, e.g. \040 for space.
			if raw[i] >= '0' && raw[i] <= '7' {
				val := int(raw[i] - '0')
				for n := 0; n < 2 && i+1 < len(raw) && raw[i+1] >= '0' && raw[i+1] <= '7'; n++ {
					i++
					val = val*8 + int(raw[i]-'0')
				}
				sb.WriteByte(byte(val))
			} else {
				sb.WriteByte(raw[i])
			}
		}
	}
	return sb.String()
}

// cleanPageText collapses runs of horizontal whitespace and drops
// non-printable characters while preserving line breaks.
func cleanPageText(text string) string {
	var sb strings.Builder
	var lines []string
	flush := func() {
		if line := strings.TrimSpace(sb.String()); line != "" {
			lines = append(lines, line)
		}
		sb.Reset()
	}

	prevSpace := false
	for _, r := range text {
		switch {
		case r == '\n' || r == '\r':
			flush()
			prevSpace = false
		case unicode.IsSpace(r):
			if !prevSpace && sb.Len() > 0 {
				sb.WriteByte(' ')
				prevSpace = true
			}
		case unicode.IsPrint(r):
			sb.WriteRune(r)
			prevSpace = false
		}
	}
	flush()

	return strings.Join(lines, "\n")
}
