// Package slog provides logging decorators for resumeparse interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/resumeparse"
)

// Ensure LoggingReader implements resumeparse.DocumentReader at compile time.
var _ resumeparse.DocumentReader = (*LoggingReader)(nil)

// LoggingReader wraps a DocumentReader with structured logging.
type LoggingReader struct {
	next   resumeparse.DocumentReader
	logger *slog.Logger
}

// NewLoggingReader creates a new LoggingReader.
func NewLoggingReader(next resumeparse.DocumentReader, logger *slog.Logger) *LoggingReader {
	return &LoggingReader{next: next, logger: logger}
}

// Read delegates to the wrapped reader, logging the path, extracted byte
// count and duration, or the error on failure.
func (r *LoggingReader) Read(ctx context.Context, path string) (string, error) {
	begin := time.Now()
	text, err := r.next.Read(ctx, path)
	if err != nil {
		r.logger.Error("read", "path", path, "duration", time.Since(begin), "err", err)
		return "", err
	}
	r.logger.Info("read", "path", path, "bytes", len(text), "duration", time.Since(begin))
	return text, nil
}
