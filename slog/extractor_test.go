package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/resumeparse"
	"github.com/fwojciec/resumeparse/mock"
	rpslog "github.com/fwojciec/resumeparse/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingRecordExtractor_ExtractRecord(t *testing.T) {
	t.Parallel()

	t.Run("logs extracted fields and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.RecordExtractor{
			ExtractRecordFn: func(ctx context.Context, text string) (*resumeparse.ResumeRecord, error) {
				return &resumeparse.ResumeRecord{
					Name:   "John Doe",
					Email:  "john@example.com",
					Skills: []string{"Python", "Docker"},
				}, nil
			},
		}

		extractor := rpslog.NewLoggingRecordExtractor(inner, logger)
		record, err := extractor.ExtractRecord(context.Background(), "some text")

		require.NoError(t, err)
		assert.Equal(t, "John Doe", record.Name)
		output := buf.String()
		assert.Contains(t, output, "extract")
		assert.Contains(t, output, "name=\"John Doe\"")
		assert.Contains(t, output, "email=john@example.com")
		assert.Contains(t, output, "skills=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.RecordExtractor{
			ExtractRecordFn: func(ctx context.Context, text string) (*resumeparse.ResumeRecord, error) {
				return nil, errors.New("extraction blew up")
			},
		}

		extractor := rpslog.NewLoggingRecordExtractor(inner, logger)
		_, err := extractor.ExtractRecord(context.Background(), "some text")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "extract")
		assert.Contains(t, output, "err=\"extraction blew up\"")
	})
}
