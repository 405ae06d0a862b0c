package mock

import (
	"context"

	"github.com/fwojciec/resumeparse"
)

var _ resumeparse.ResumeService = (*ResumeService)(nil)

// ResumeService is a mock implementation of resumeparse.ResumeService.
type ResumeService struct {
	CreateResumeFn   func(ctx context.Context, res *resumeparse.ParsedResume) error
	FindResumeByIDFn func(ctx context.Context, id string) (*resumeparse.ParsedResume, error)
	FindResumesFn    func(ctx context.Context, filter resumeparse.ResumeFilter) ([]*resumeparse.ParsedResume, error)
	DeleteResumeFn   func(ctx context.Context, id string) error
}

func (s *ResumeService) CreateResume(ctx context.Context, res *resumeparse.ParsedResume) error {
	return s.CreateResumeFn(ctx, res)
}

func (s *ResumeService) FindResumeByID(ctx context.Context, id string) (*resumeparse.ParsedResume, error) {
	return s.FindResumeByIDFn(ctx, id)
}

func (s *ResumeService) FindResumes(ctx context.Context, filter resumeparse.ResumeFilter) ([]*resumeparse.ParsedResume, error) {
	return s.FindResumesFn(ctx, filter)
}

func (s *ResumeService) DeleteResume(ctx context.Context, id string) error {
	return s.DeleteResumeFn(ctx, id)
}
