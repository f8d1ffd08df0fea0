package driven

import (
	"context"

	"github.com/custodia-labs/docsmd/internal/core/domain"
)

// Normaliser transforms raw documents into Markdown documents.
// Each normaliser handles specific MIME types.
type Normaliser interface {
	// SupportedMIMETypes returns the MIME types this normaliser handles.
	SupportedMIMETypes() []string

	// Priority returns the selection priority (higher = preferred).
	Priority() int

	// Normalise converts a raw document into a Markdown document.
	// Returns domain.ErrEmptyDocument when there is no body to render.
	Normalise(ctx context.Context, raw *domain.RawDocument) (*NormaliseResult, error)
}

// NormaliseResult contains the output of normalisation.
type NormaliseResult struct {
	// Document has Content set to the rendered Markdown.
	Document domain.Document
}
