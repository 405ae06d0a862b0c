package main

import (
	"fmt"

	"github.com/fwojciec/resumeparse"
	"github.com/fwojciec/resumeparse/extract"
)

// Run executes the parse command.
func (c *ParseCmd) Run(deps *Dependencies) error {
	record, err := parseFile(deps, c.Path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", resumeparse.ErrorMessage(err))
		return err
	}

	out, err := record.JSON(c.Indent)
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, out)

	if c.Save {
		id, err := saveResult(deps, c.Path, record)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", resumeparse.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Saved as %s\n", id)
	}

	return nil
}

// parseFile parses one resume file through a pipeline bound to the reader
// matching the file's extension.
func parseFile(deps *Dependencies, path string) (*resumeparse.ResumeRecord, error) {
	reader, err := deps.ReaderFor(path)
	if err != nil {
		return nil, err
	}
	pipeline := extract.NewPipeline(reader, deps.Extractor)
	return pipeline.Run(deps.Ctx, path)
}

// saveResult persists a parsing result and returns its assigned ID. The
// document is re-read so the stored result carries the source text.
func saveResult(deps *Dependencies, path string, record *resumeparse.ResumeRecord) (string, error) {
	reader, err := deps.ReaderFor(path)
	if err != nil {
		return "", err
	}
	text, err := reader.Read(deps.Ctx, path)
	if err != nil {
		return "", err
	}

	res := &resumeparse.ParsedResume{
		FilePath:   path,
		Name:       record.Name,
		Email:      record.Email,
		Skills:     record.Skills,
		SourceText: text,
	}
	if err := deps.Resumes.CreateResume(deps.Ctx, res); err != nil {
		return "", err
	}
	return res.ID, nil
}
