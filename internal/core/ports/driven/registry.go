package driven

import (
	"context"

	"github.com/custodia-labs/docsmd/internal/core/domain"
)

// NormaliserRegistry selects the appropriate normaliser for a document.
// It keeps normalisers ordered by priority and dispatches on MIME type.
type NormaliserRegistry interface {
	// Normalise converts a raw document using the best matching normaliser.
	// Returns domain.ErrUnsupportedType if no normaliser handles the MIME type.
	Normalise(ctx context.Context, raw *domain.RawDocument) (*NormaliseResult, error)

	// Register adds a normaliser to the registry.
	Register(normaliser Normaliser)

	// SupportedMIMETypes returns all MIME types that can be normalised.
	SupportedMIMETypes() []string
}
