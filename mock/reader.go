// Package mock provides mock implementations of resumeparse interfaces for
// testing.
package mock

import (
	"context"

	"github.com/fwojciec/resumeparse"
)

var _ resumeparse.DocumentReader = (*DocumentReader)(nil)

// DocumentReader is a mock implementation of resumeparse.DocumentReader.
type DocumentReader struct {
	ReadFn func(ctx context.Context, path string) (string, error)
}

func (r *DocumentReader) Read(ctx context.Context, path string) (string, error) {
	return r.ReadFn(ctx, path)
}
