package resumeparse

import (
	"context"
	"time"
)

// ParsedResume represents a stored resume parsing result.
type ParsedResume struct {
	ID          string    `json:"id"`
	FilePath    string    `json:"filePath"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Skills      []string  `json:"skills"`
	SourceText  string    `json:"sourceText"`
	ContentHash string    `json:"contentHash"`
	ParsedAt    time.Time `json:"parsedAt"`
}

// Validate returns an error if the parsed resume contains invalid fields.
func (p *ParsedResume) Validate() error {
	if p.FilePath == "" {
		return Errorf(EINVALID, "parsed resume file path required")
	}
	return nil
}

// ResumeService represents a service for managing stored parsing results.
type ResumeService interface {
	// CreateResume persists a new parsing result.
	CreateResume(ctx context.Context, res *ParsedResume) error

	// FindResumeByID retrieves a parsing result by ID.
	// Returns ENOTFOUND if it does not exist.
	FindResumeByID(ctx context.Context, id string) (*ParsedResume, error)

	// FindResumes retrieves parsing results matching the filter.
	FindResumes(ctx context.Context, filter ResumeFilter) ([]*ParsedResume, error)

	// DeleteResume permanently removes a parsing result.
	// Returns ENOTFOUND if it does not exist.
	DeleteResume(ctx context.Context, id string) error
}

// ResumeFilter represents a filter for FindResumes.
type ResumeFilter struct {
	ID       *string `json:"id"`
	FilePath *string `json:"filePath"`
	Email    *string `json:"email"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
