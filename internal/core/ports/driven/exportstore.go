package driven

import (
	"context"

	"github.com/custodia-labs/docsmd/internal/core/domain"
)

// ExportStore persists the export ledger.
type ExportStore interface {
	// Save stores or updates the record for a document.
	Save(ctx context.Context, record domain.ExportRecord) error

	// Get retrieves the record for a document.
	// Returns domain.ErrNotFound if the document was never exported.
	Get(ctx context.Context, documentID string) (*domain.ExportRecord, error)

	// List returns all records, most recent export first.
	List(ctx context.Context) ([]domain.ExportRecord, error)

	// Delete removes the record for a document.
	Delete(ctx context.Context, documentID string) error
}
