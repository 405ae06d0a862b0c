package mock

import (
	"context"

	"github.com/fwojciec/resumeparse"
)

var _ resumeparse.FieldExtractor = (*FieldExtractor)(nil)

// FieldExtractor is a mock implementation of resumeparse.FieldExtractor.
type FieldExtractor struct {
	ExtractFn func(ctx context.Context, text string) (resumeparse.FieldValue, error)
}

func (e *FieldExtractor) Extract(ctx context.Context, text string) (resumeparse.FieldValue, error) {
	return e.ExtractFn(ctx, text)
}

var _ resumeparse.RecordExtractor = (*RecordExtractor)(nil)

// RecordExtractor is a mock implementation of resumeparse.RecordExtractor.
type RecordExtractor struct {
	ExtractRecordFn func(ctx context.Context, text string) (*resumeparse.ResumeRecord, error)
}

func (e *RecordExtractor) ExtractRecord(ctx context.Context, text string) (*resumeparse.ResumeRecord, error) {
	return e.ExtractRecordFn(ctx, text)
}
