package driven

import (
	"context"

	"github.com/custodia-labs/docsmd/internal/core/domain"
)

// TokenProvider provides access tokens for authenticated API calls.
// Implementations refresh expired tokens before returning them.
type TokenProvider interface {
	// GetToken returns a valid access token.
	// Returns domain.ErrAuthRequired if nobody has signed in.
	GetToken(ctx context.Context) (string, error)

	// AuthMethod returns the authentication method.
	AuthMethod() domain.AuthMethod

	// IsAuthenticated returns true if a token is available.
	IsAuthenticated() bool
}
