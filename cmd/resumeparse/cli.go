package main

import (
	"context"
	"io"

	"github.com/fwojciec/resumeparse"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `help:"Enable verbose logging." short:"v"`

	Parse  ParseCmd  `cmd:"" help:"Parse a resume file and print the extracted fields as JSON."`
	Batch  BatchCmd  `cmd:"" help:"Parse every supported resume file in a directory."`
	List   ListCmd   `cmd:"" help:"List stored parsing results."`
	Show   ShowCmd   `cmd:"" help:"Show a stored parsing result as JSON."`
	Delete DeleteCmd `cmd:"" help:"Delete a stored parsing result."`
}

// ParseCmd parses a single resume file.
type ParseCmd struct {
	Path   string `arg:"" help:"Path to a .pdf, .doc, .docx, .html or .htm resume file."`
	Indent int    `default:"2" help:"JSON indentation width."`
	Save   bool   `help:"Persist the result to the local database."`
}

// BatchCmd parses every supported resume file in a directory.
type BatchCmd struct {
	Dir         string `arg:"" help:"Directory containing resume files."`
	Concurrency int    `default:"4" help:"Number of files parsed in parallel."`
	Save        bool   `help:"Persist results to the local database."`
}

// ListCmd lists stored parsing results.
type ListCmd struct {
	Limit int `default:"50" help:"Maximum number of results to list."`
}

// ShowCmd shows one stored parsing result.
type ShowCmd struct {
	ID     string `arg:"" help:"ID of the stored result."`
	Indent int    `default:"2" help:"JSON indentation width."`
}

// DeleteCmd deletes one stored parsing result.
type DeleteCmd struct {
	ID string `arg:"" help:"ID of the stored result."`
}

// Dependencies holds the services commands run against. It is bound into
// the Kong context so command Run methods receive it.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	// Extractor assembles records from resume text.
	Extractor resumeparse.RecordExtractor

	// Resumes stores parsing results.
	Resumes resumeparse.ResumeService

	// ReaderFor selects a document reader for a file path by extension.
	ReaderFor func(path string) (resumeparse.DocumentReader, error)
}
