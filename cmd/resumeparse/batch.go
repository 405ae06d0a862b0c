package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/resumeparse"
	"golang.org/x/sync/errgroup"
)

// supportedExtensions lists the file extensions the batch command picks up.
var supportedExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".html": true,
	".htm":  true,
}

// batchResult holds the outcome of parsing a single file.
type batchResult struct {
	path   string
	record *resumeparse.ResumeRecord
	err    error
}

// Run executes the batch command. Files are parsed concurrently; each file
// gets its own pipeline while the extraction coordinator is shared, so a
// failure in one file never aborts the others.
func (c *BatchCmd) Run(deps *Dependencies) error {
	entries, err := os.ReadDir(c.Dir)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: cannot read directory %s\n", c.Dir)
		return resumeparse.Errorf(resumeparse.ENOTFOUND, "directory not found: %s", c.Dir)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if supportedExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			files = append(files, filepath.Join(c.Dir, entry.Name()))
		}
	}
	if len(files) == 0 {
		fmt.Fprintf(deps.Stdout, "No resume files found in %s\n", c.Dir)
		return nil
	}

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	results := make([]batchResult, len(files))
	g, _ := errgroup.WithContext(deps.Ctx)
	g.SetLimit(concurrency)

	for i, path := range files {
		g.Go(func() error {
			record, err := parseFile(deps, path)
			results[i] = batchResult{path: path, record: record, err: err}
			return nil
		})
	}
	_ = g.Wait()

	var failed int
	for _, result := range results {
		if result.err != nil {
			failed++
			fmt.Fprintf(deps.Stdout, "FAIL %s: %s\n", result.path, resumeparse.ErrorMessage(result.err))
			continue
		}

		fmt.Fprintf(deps.Stdout, "OK   %s: %s <%s> (%d skills)\n",
			result.path, result.record.Name, result.record.Email, len(result.record.Skills))

		if c.Save {
			if _, err := saveResult(deps, result.path, result.record); err != nil {
				fmt.Fprintf(deps.Stderr, "error saving %s: %s\n", result.path, resumeparse.ErrorMessage(err))
			}
		}
	}

	fmt.Fprintf(deps.Stdout, "Parsed %d of %d files\n", len(files)-failed, len(files))
	return nil
}
