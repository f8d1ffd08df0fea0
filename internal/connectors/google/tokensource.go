package google

import (
	"context"

	"golang.org/x/oauth2"

	"github.com/custodia-labs/docsmd/internal/core/ports/driven"
)

// TokenSourceAdapter adapts docsmd's TokenProvider interface to oauth2.TokenSource.
// Google API clients call Token before every request; the provider decides
// whether a refresh is due.
type TokenSourceAdapter struct {
	provider driven.TokenProvider
	ctx      context.Context
}

// NewTokenSource creates an oauth2.TokenSource from a TokenProvider.
func NewTokenSource(ctx context.Context, provider driven.TokenProvider) oauth2.TokenSource {
	return &TokenSourceAdapter{
		provider: provider,
		ctx:      ctx,
	}
}

// Token implements oauth2.TokenSource.
func (t *TokenSourceAdapter) Token() (*oauth2.Token, error) {
	accessToken, err := t.provider.GetToken(t.ctx)
	if err != nil {
		return nil, err
	}

	return &oauth2.Token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
	}, nil
}
