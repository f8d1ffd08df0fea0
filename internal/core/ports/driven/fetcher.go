package driven

import (
	"context"

	"github.com/custodia-labs/docsmd/internal/core/domain"
)

// DocumentFetcher retrieves documents from Google Docs.
type DocumentFetcher interface {
	// Fetch retrieves a single document by ID as a raw document.
	// Returns domain.ErrNotFound if the document does not exist.
	Fetch(ctx context.Context, documentID string) (*domain.RawDocument, error)

	// List returns one page of documents visible to the user.
	List(ctx context.Context, opts domain.ListOptions) (*domain.DocumentPage, error)

	// CheckStatus verifies the credentials with a cheap API call.
	CheckStatus(ctx context.Context) error
}
