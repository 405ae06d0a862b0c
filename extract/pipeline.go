package extract

import (
	"context"
	"os"

	"github.com/fwojciec/resumeparse"
)

// Pipeline binds one document reader to one record extractor and drives the
// two-stage parse: read the file into text, then extract fields from the
// text. It is the single entry point for parsing a resume file.
//
// A Pipeline is synchronous and single-call at a time; collaborator swaps
// take effect on the next Run call.
type Pipeline struct {
	reader    resumeparse.DocumentReader
	extractor resumeparse.RecordExtractor
}

// NewPipeline creates a Pipeline bound to the given reader and extractor.
func NewPipeline(reader resumeparse.DocumentReader, extractor resumeparse.RecordExtractor) *Pipeline {
	return &Pipeline{reader: reader, extractor: extractor}
}

// Run parses the resume file at path and returns the extracted record.
// Returns ENOTFOUND if the path does not exist (checked before the reader
// runs), EREADSTAGE if the read stage fails, and EEXTRACTSTAGE if the
// extract stage fails; stage errors preserve the original cause's message.
func (p *Pipeline) Run(ctx context.Context, path string) (*resumeparse.ResumeRecord, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, resumeparse.Errorf(resumeparse.ENOTFOUND, "resume file not found: %s", path)
	}

	text, err := p.reader.Read(ctx, path)
	if err != nil {
		return nil, resumeparse.Errorf(resumeparse.EREADSTAGE,
			"failed to read file: %s", resumeparse.ErrorMessage(err))
	}

	record, err := p.extractor.ExtractRecord(ctx, text)
	if err != nil {
		return nil, resumeparse.Errorf(resumeparse.EEXTRACTSTAGE,
			"failed to extract resume data: %s", resumeparse.ErrorMessage(err))
	}

	return record, nil
}

// SetReader replaces the bound document reader for subsequent Run calls.
func (p *Pipeline) SetReader(reader resumeparse.DocumentReader) {
	p.reader = reader
}

// SetExtractor replaces the bound record extractor for subsequent Run calls.
func (p *Pipeline) SetExtractor(extractor resumeparse.RecordExtractor) {
	p.extractor = extractor
}
