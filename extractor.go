package resumeparse

import "context"

// Reserved field keys. A coordinator registry must contain an extractor for
// each of these; only they participate in ResumeRecord assembly.
const (
	FieldName   = "name"
	FieldEmail  = "email"
	FieldSkills = "skills"
)

// FieldValue holds the result of a single field extraction. Exactly one of
// Text or List is meaningful: Text carries scalar fields (name, email) and
// List carries sequence fields (skills).
type FieldValue struct {
	Text string
	List []string
}

// TextValue returns a FieldValue carrying a scalar string.
func TextValue(s string) FieldValue {
	return FieldValue{Text: s}
}

// ListValue returns a FieldValue carrying an ordered sequence of strings.
func ListValue(ss []string) FieldValue {
	return FieldValue{List: ss}
}

// FieldExtractor derives one named field from raw resume text. Extractors
// are pure functions of the text aside from remote-model nondeterminism:
// calling Extract twice with the same text yields the same value.
type FieldExtractor interface {
	Extract(ctx context.Context, text string) (FieldValue, error)
}

// RecordExtractor assembles a full ResumeRecord from resume text.
// The extract.Coordinator is the canonical implementation; the pipeline
// facade binds to this interface so coordinators are swappable at runtime.
type RecordExtractor interface {
	// ExtractRecord extracts all fields from text.
	// Returns EINVALID if text is empty or whitespace-only, and
	// EEXTRACTION if any field extractor fails.
	ExtractRecord(ctx context.Context, text string) (*ResumeRecord, error)
}
