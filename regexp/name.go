// Package regexp provides pattern-based field extractors. The name and
// email extractors are pure local computations; the skills extractor is a
// catalogue-based heuristic used standalone or as the fallback for the
// remote gemini extractor.
package regexp

import (
	"context"
	"regexp"
	"strings"

	"github.com/fwojciec/resumeparse"
)

// Ensure NameExtractor implements resumeparse.FieldExtractor at compile time.
var _ resumeparse.FieldExtractor = (*NameExtractor)(nil)

// unknownName is returned when no candidate line survives the heuristics.
const unknownName = "Unknown"

var (
	// 2-4 capitalized words, e.g. "John Doe", "Jane Mary Smith".
	namePattern = regexp.MustCompile(`^[A-Z][a-z]+(?:\s+[A-Z][a-z]+){1,3}$`)

	// Looser variant allowing a middle initial, e.g. "John D. Doe".
	altNamePattern = regexp.MustCompile(`^[A-Z][a-z]+(?:\s+[A-Z]\.?\s*)?(?:\s+[A-Z][a-z]+)+$`)

	// Lines that look like email addresses rather than names.
	emailLikePattern = regexp.MustCompile(`(?i)[@]|[a-zA-Z0-9._%+-]+\s*(gmail|yahoo|hotmail|outlook|mail|email)`)

	// Cleanup and rejection patterns for the fallback candidate.
	nonNameCharPattern = regexp.MustCompile(`[^\w\s.]`)
	digitRunOrDots     = regexp.MustCompile(`\d{3,}|\..*\.`)
)

// NameExtractor extracts the candidate's name from the first few lines of
// resume text. Most resumes open with the name in the header, so only the
// first 5 non-empty lines are considered.
type NameExtractor struct{}

// NewNameExtractor creates a new NameExtractor.
func NewNameExtractor() *NameExtractor {
	return &NameExtractor{}
}

// Extract returns the candidate's name, or "Unknown" if no line looks like
// a name. It never returns an error.
func (e *NameExtractor) Extract(_ context.Context, text string) (resumeparse.FieldValue, error) {
	if strings.TrimSpace(text) == "" {
		return resumeparse.TextValue(unknownName), nil
	}

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return resumeparse.TextValue(unknownName), nil
	}

	head := lines
	if len(head) > 5 {
		head = head[:5]
	}
	for _, line := range head {
		if namePattern.MatchString(line) {
			return resumeparse.TextValue(line), nil
		}
		if altNamePattern.MatchString(line) {
			return resumeparse.TextValue(line), nil
		}
	}

	// Fallback: many resumes still start with the name even when it doesn't
	// match the patterns above. Skip the first line if it looks like an
	// email address.
	candidate := lines[0]
	if emailLikePattern.MatchString(candidate) {
		if len(lines) < 2 {
			return resumeparse.TextValue(unknownName), nil
		}
		candidate = lines[1]
	}

	// Strip non-name artifacts and collapse whitespace.
	candidate = nonNameCharPattern.ReplaceAllString(candidate, " ")
	candidate = strings.Join(strings.Fields(candidate), " ")

	// Long digit runs or multiple dots indicate a phone number, email or URL.
	if digitRunOrDots.MatchString(candidate) {
		return resumeparse.TextValue(unknownName), nil
	}

	if candidate == "" || len(candidate) > 50 {
		return resumeparse.TextValue(unknownName), nil
	}
	return resumeparse.TextValue(candidate), nil
}
