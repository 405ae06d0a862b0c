package resumeparse

import "context"

// DocumentReader converts a resume document on disk into a plain text blob.
// Implementations are format specific (PDF, Word, HTML) and check their own
// preconditions: the path must exist and its extension must match the
// reader's format. The returned text is non-empty after trimming.
type DocumentReader interface {
	// Read extracts text from the file at path.
	// Returns ENOTFOUND if the path does not exist, EUNSUPPORTED if the
	// extension does not match the reader's format, EPARSE if the file
	// cannot be decoded, and EEMPTYDOC if no text could be extracted.
	Read(ctx context.Context, path string) (string, error)
}
