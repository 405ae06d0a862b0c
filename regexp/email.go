package regexp

import (
	"context"
	"regexp"
	"strings"

	"github.com/fwojciec/resumeparse"
)

// Ensure EmailExtractor implements resumeparse.FieldExtractor at compile time.
var _ resumeparse.FieldExtractor = (*EmailExtractor)(nil)

// unknownEmail is returned when the text contains no email address.
const unknownEmail = "unknown@example.com"

// emailPattern matches a standard local-part@domain.tld address.
var emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

// EmailExtractor extracts the first email address found in resume text.
type EmailExtractor struct{}

// NewEmailExtractor creates a new EmailExtractor.
func NewEmailExtractor() *EmailExtractor {
	return &EmailExtractor{}
}

// Extract returns the first email address in left-to-right scan order, or
// the sentinel "unknown@example.com" when none is found. It never returns
// an error.
func (e *EmailExtractor) Extract(_ context.Context, text string) (resumeparse.FieldValue, error) {
	if strings.TrimSpace(text) == "" {
		return resumeparse.TextValue(unknownEmail), nil
	}
	if match := emailPattern.FindString(text); match != "" {
		return resumeparse.TextValue(match), nil
	}
	return resumeparse.TextValue(unknownEmail), nil
}
