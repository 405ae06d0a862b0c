// Package extract provides the extraction orchestration layer: the
// Coordinator runs field extractors over resume text and assembles the
// result record, and the Pipeline binds a document reader to a coordinator.
package extract

import (
	"context"
	"sort"
	"strings"

	"github.com/fwojciec/resumeparse"
)

// Ensure Coordinator implements resumeparse.RecordExtractor at compile time.
var _ resumeparse.RecordExtractor = (*Coordinator)(nil)

// requiredFields are the registry keys that must be present at construction.
var requiredFields = []string{
	resumeparse.FieldName,
	resumeparse.FieldEmail,
	resumeparse.FieldSkills,
}

// Coordinator orchestrates field extraction. It owns a registry mapping
// field names to extractors and runs the name, email and skills extractors
// over the same text to assemble a ResumeRecord.
//
// The registry is not safe for structural mutation (AddExtractor,
// RemoveExtractor) concurrent with an in-flight ExtractRecord call.
type Coordinator struct {
	extractors map[string]resumeparse.FieldExtractor
}

// NewCoordinator creates a Coordinator from the given registry. The registry
// must contain extractors for the reserved keys "name", "email" and
// "skills"; returns EINVALID naming the missing keys otherwise. The map is
// copied, so the caller's map can be reused.
func NewCoordinator(extractors map[string]resumeparse.FieldExtractor) (*Coordinator, error) {
	var missing []string
	for _, field := range requiredFields {
		if _, ok := extractors[field]; !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, resumeparse.Errorf(resumeparse.EINVALID,
			"missing required field extractors: %s", strings.Join(missing, ", "))
	}

	registry := make(map[string]resumeparse.FieldExtractor, len(extractors))
	for key, extractor := range extractors {
		registry[key] = extractor
	}
	return &Coordinator{extractors: registry}, nil
}

// ExtractRecord extracts all reserved fields from text and assembles a
// ResumeRecord. The name, email and skills extractors run in that fixed
// order, each over the identical input text. Any extractor failure aborts
// the whole call with EEXTRACTION; no partial record is ever returned.
func (c *Coordinator) ExtractRecord(ctx context.Context, text string) (*resumeparse.ResumeRecord, error) {
	if strings.TrimSpace(text) == "" {
		return nil, resumeparse.Errorf(resumeparse.EINVALID, "cannot extract from empty text")
	}

	name, err := c.extractors[resumeparse.FieldName].Extract(ctx, text)
	if err != nil {
		return nil, resumeparse.Errorf(resumeparse.EEXTRACTION,
			"name extraction failed: %s", resumeparse.ErrorMessage(err))
	}

	email, err := c.extractors[resumeparse.FieldEmail].Extract(ctx, text)
	if err != nil {
		return nil, resumeparse.Errorf(resumeparse.EEXTRACTION,
			"email extraction failed: %s", resumeparse.ErrorMessage(err))
	}

	skills, err := c.extractors[resumeparse.FieldSkills].Extract(ctx, text)
	if err != nil {
		return nil, resumeparse.Errorf(resumeparse.EEXTRACTION,
			"skills extraction failed: %s", resumeparse.ErrorMessage(err))
	}

	record := &resumeparse.ResumeRecord{
		Name:   name.Text,
		Email:  email.Text,
		Skills: skills.List,
	}
	if record.Skills == nil {
		record.Skills = []string{}
	}
	return record, nil
}

// AddExtractor adds or replaces the extractor for a field. Keys beyond the
// reserved three are allowed; they do not participate in record assembly
// but remain retrievable via GetExtractor.
func (c *Coordinator) AddExtractor(field string, extractor resumeparse.FieldExtractor) {
	c.extractors[field] = extractor
}

// RemoveExtractor removes the extractor for a field.
// Returns ENOTFOUND if the field is not registered.
func (c *Coordinator) RemoveExtractor(field string) error {
	if _, ok := c.extractors[field]; !ok {
		return resumeparse.Errorf(resumeparse.ENOTFOUND, "field extractor %q not found", field)
	}
	delete(c.extractors, field)
	return nil
}

// GetExtractor returns the extractor registered for a field.
// Returns ENOTFOUND if the field is not registered.
func (c *Coordinator) GetExtractor(field string) (resumeparse.FieldExtractor, error) {
	extractor, ok := c.extractors[field]
	if !ok {
		return nil, resumeparse.Errorf(resumeparse.ENOTFOUND, "field extractor %q not found", field)
	}
	return extractor, nil
}
