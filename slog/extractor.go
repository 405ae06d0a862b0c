package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/resumeparse"
)

// Ensure LoggingRecordExtractor implements resumeparse.RecordExtractor.
var _ resumeparse.RecordExtractor = (*LoggingRecordExtractor)(nil)

// LoggingRecordExtractor wraps a RecordExtractor with structured logging.
type LoggingRecordExtractor struct {
	next   resumeparse.RecordExtractor
	logger *slog.Logger
}

// NewLoggingRecordExtractor creates a new LoggingRecordExtractor.
func NewLoggingRecordExtractor(next resumeparse.RecordExtractor, logger *slog.Logger) *LoggingRecordExtractor {
	return &LoggingRecordExtractor{next: next, logger: logger}
}

// ExtractRecord delegates to the wrapped extractor, logging the extracted
// field summary and duration, or the error on failure.
func (e *LoggingRecordExtractor) ExtractRecord(ctx context.Context, text string) (*resumeparse.ResumeRecord, error) {
	begin := time.Now()
	record, err := e.next.ExtractRecord(ctx, text)
	if err != nil {
		e.logger.Error("extract", "duration", time.Since(begin), "err", err)
		return nil, err
	}
	e.logger.Info("extract", "name", record.Name, "email", record.Email,
		"skills", len(record.Skills), "duration", time.Since(begin))
	return record, nil
}
