package llm

import (
	"context"

	"github.com/yasboop/docextract/constants"
	"github.com/yasboop/docextract/internal/extract"
)

// ExtractRequest carries everything the AI collaborator needs for one call.
type ExtractRequest struct {
	Text         string
	DocumentType constants.DocumentType

	// ImagePath enables the multimodal path when the backing model supports
	// it and the file exists. Optional.
	ImagePath string

	// RequestID threads the caller's correlation id through client logging.
	RequestID string
}

// FieldExtractor is the boundary the pipeline depends on. The returned
// record's shape is unconstrained: it may be partial, carry extra keys, or
// be empty on failure; the merge resolver copes. The method reports which AI
// path produced the record. Implementations must respect ctx cancellation
// and deadlines.
type FieldExtractor interface {
	ExtractFields(ctx context.Context, req ExtractRequest) (extract.PartialRecord, constants.ExtractionMethod, []byte /*rawJSON*/, error)
}

// Summarizer produces a human-readable synopsis of a merged contract record.
type Summarizer interface {
	Summarize(ctx context.Context, text string, record extract.CanonicalRecord) (string, error)
}
