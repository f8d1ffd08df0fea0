package driving

import (
	"context"

	"github.com/custodia-labs/docsmd/internal/core/domain"
)

// ExportService converts Google Docs documents to Markdown.
type ExportService interface {
	// Convert renders a Docs API document given as JSON.
	// Returns domain.ErrEmptyDocument if the document has no body.
	Convert(ctx context.Context, documentJSON []byte) (*domain.Document, error)

	// Fetch downloads and renders a document given by ID or URL.
	Fetch(ctx context.Context, ref string) (*domain.Document, error)

	// Export fetches a document and writes it to disk, recording it in the ledger.
	Export(ctx context.Context, req domain.ExportRequest) (*domain.ExportResult, error)

	// List returns one page of Google Docs visible to the user.
	List(ctx context.Context, opts domain.ListOptions) (*domain.DocumentPage, error)

	// History returns the export ledger, most recent first.
	History(ctx context.Context) ([]domain.ExportRecord, error)
}
