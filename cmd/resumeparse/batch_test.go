package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/resumeparse"
	main "github.com/fwojciec/resumeparse/cmd/resumeparse"
	"github.com/fwojciec/resumeparse/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("parses supported files and skips others", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeResumeFile(t, dir, "a.pdf")
		writeResumeFile(t, dir, "b.docx")
		writeResumeFile(t, dir, "notes.txt")

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Extractor: testExtractor(),
			ReaderFor: staticReaderFor("John Doe\njohn@example.com"),
		}

		cmd := &main.BatchCmd{Dir: dir, Concurrency: 2}

		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "a.pdf")
		assert.Contains(t, output, "b.docx")
		assert.NotContains(t, output, "notes.txt")
		assert.Contains(t, output, "Parsed 2 of 2 files")
	})

	t.Run("a failing file does not abort the rest", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeResumeFile(t, dir, "good.pdf")
		bad := writeResumeFile(t, dir, "bad.pdf")

		readerFor := func(string) (resumeparse.DocumentReader, error) {
			return &mock.DocumentReader{
				ReadFn: func(_ context.Context, path string) (string, error) {
					if path == bad {
						return "", resumeparse.Errorf(resumeparse.EPARSE, "failed to parse PDF file: bad xref")
					}
					return "John Doe\njohn@example.com", nil
				},
			}, nil
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Extractor: testExtractor(),
			ReaderFor: readerFor,
		}

		cmd := &main.BatchCmd{Dir: dir, Concurrency: 2}

		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "OK   "+dir+"/good.pdf")
		assert.Contains(t, output, "FAIL "+dir+"/bad.pdf")
		assert.Contains(t, output, "bad xref")
		assert.Contains(t, output, "Parsed 1 of 2 files")
	})

	t.Run("saves successful results when requested", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeResumeFile(t, dir, "a.pdf")
		writeResumeFile(t, dir, "b.pdf")

		var saved []string
		resumes := &mock.ResumeService{
			CreateResumeFn: func(_ context.Context, res *resumeparse.ParsedResume) error {
				res.ID = "res-" + res.FilePath
				saved = append(saved, res.FilePath)
				return nil
			},
		}

		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    &bytes.Buffer{},
			Extractor: testExtractor(),
			Resumes:   resumes,
			ReaderFor: staticReaderFor("John Doe\njohn@example.com"),
		}

		cmd := &main.BatchCmd{Dir: dir, Concurrency: 2, Save: true}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Len(t, saved, 2)
	})

	t.Run("reports empty directories", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Extractor: testExtractor(),
			ReaderFor: staticReaderFor(""),
		}

		cmd := &main.BatchCmd{Dir: dir, Concurrency: 2}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No resume files found")
	})

	t.Run("returns ENOTFOUND for a missing directory", func(t *testing.T) {
		t.Parallel()

		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    &bytes.Buffer{},
			Extractor: testExtractor(),
			ReaderFor: staticReaderFor(""),
		}

		cmd := &main.BatchCmd{Dir: "/nonexistent/dir", Concurrency: 2}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, resumeparse.ENOTFOUND, resumeparse.ErrorCode(err))
	})
}
