package auth

import (
	"context"

	"github.com/custodia-labs/docsmd/internal/core/domain"
	"github.com/custodia-labs/docsmd/internal/core/ports/driven"
)

// Ensure StaticTokenProvider implements the TokenProvider interface.
var _ driven.TokenProvider = (*StaticTokenProvider)(nil)

// StaticTokenProvider serves a fixed access token and never refreshes it.
type StaticTokenProvider struct {
	token string
}

// NewStaticTokenProvider creates a provider for an externally issued token.
func NewStaticTokenProvider(token string) *StaticTokenProvider {
	return &StaticTokenProvider{token: token}
}

// GetToken returns the token, or domain.ErrAuthRequired if it is empty.
func (p *StaticTokenProvider) GetToken(_ context.Context) (string, error) {
	if p.token == "" {
		return "", domain.ErrAuthRequired
	}
	return p.token, nil
}

// AuthMethod returns AuthMethodOAuth; the token is an OAuth access token.
func (p *StaticTokenProvider) AuthMethod() domain.AuthMethod {
	return domain.AuthMethodOAuth
}

// IsAuthenticated returns true if a token was given.
func (p *StaticTokenProvider) IsAuthenticated() bool {
	return p.token != ""
}
