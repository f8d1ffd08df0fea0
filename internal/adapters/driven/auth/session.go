package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"

	"github.com/custodia-labs/docsmd/internal/connectors/google"
	"github.com/custodia-labs/docsmd/internal/core/domain"
	"github.com/custodia-labs/docsmd/internal/core/ports/driven"
	"github.com/custodia-labs/docsmd/internal/logger"
)

// Ensure Session implements the TokenProvider interface.
var _ driven.TokenProvider = (*Session)(nil)

// refreshBuffer refreshes tokens this long before they expire.
const refreshBuffer = 5 * time.Minute

// Session is the signed-in user's OAuth2 session.
// Tokens are refreshed explicitly by EnsureFresh, which GetToken calls.
type Session struct {
	config *oauth2.Config
	tokens *TokenFile

	mu    sync.Mutex
	token *oauth2.Token
	now   func() time.Time
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithEndpoint overrides the Google OAuth2 endpoint.
func WithEndpoint(endpoint oauth2.Endpoint) SessionOption {
	return func(s *Session) {
		s.config.Endpoint = endpoint
	}
}

// NewSession creates a session for the given OAuth client.
func NewSession(clientID, clientSecret string, tokens *TokenFile, opts ...SessionOption) *Session {
	s := &Session{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			Endpoint:     googleoauth.Endpoint,
			Scopes:       google.Scopes,
		},
		tokens: tokens,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State reports how far the local setup is.
func (s *Session) State() domain.AuthState {
	if s.config.ClientID == "" || s.config.ClientSecret == "" {
		return domain.AuthNotConfigured
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.load(); err != nil {
		return domain.AuthConfigured
	}
	return domain.AuthReady
}

// AuthCodeURL returns the consent URL for a PKCE login.
// Offline access with forced consent makes Google return a refresh token.
func (s *Session) AuthCodeURL(state, verifier, redirectURL string) string {
	cfg := s.withRedirect(redirectURL)
	return cfg.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.ApprovalForce,
		oauth2.S256ChallengeOption(verifier),
	)
}

// Exchange trades an authorization code for a token and stores it.
func (s *Session) Exchange(ctx context.Context, code, verifier, redirectURL string) error {
	cfg := s.withRedirect(redirectURL)
	tok, err := cfg.Exchange(ctx, code, oauth2.VerifierOption(verifier))
	if err != nil {
		return fmt.Errorf("exchanging authorization code: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store(tok)
}

// EnsureFresh returns a token that is valid for at least the refresh
// buffer, refreshing and persisting it when needed.
func (s *Session) EnsureFresh(ctx context.Context) (*oauth2.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tok, err := s.load()
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrAuthRequired
		}
		return nil, err
	}

	if !s.needsRefresh(tok) {
		return tok, nil
	}
	if tok.RefreshToken == "" {
		return nil, fmt.Errorf("%w: token expired and no refresh token is stored", domain.ErrAuthRequired)
	}

	logger.Debug("refreshing access token (expiry %s)", tok.Expiry.Format(time.RFC3339))

	// Only the refresh token is passed so the library always refreshes.
	fresh, err := s.config.TokenSource(ctx, &oauth2.Token{RefreshToken: tok.RefreshToken}).Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTokenRefreshFailed, err)
	}
	if fresh.RefreshToken == "" {
		fresh.RefreshToken = tok.RefreshToken
	}

	if err := s.store(fresh); err != nil {
		return nil, err
	}
	return fresh, nil
}

// GetToken returns a fresh access token.
func (s *Session) GetToken(ctx context.Context) (string, error) {
	tok, err := s.EnsureFresh(ctx)
	if err != nil {
		return "", err
	}
	return tok.AccessToken, nil
}

// AuthMethod returns AuthMethodOAuth.
func (s *Session) AuthMethod() domain.AuthMethod {
	return domain.AuthMethodOAuth
}

// IsAuthenticated returns true if a token is stored.
func (s *Session) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.load()
	return err == nil
}

// Logout forgets the stored token.
func (s *Session) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = nil
	return s.tokens.Delete()
}

func (s *Session) withRedirect(redirectURL string) *oauth2.Config {
	cfg := *s.config
	cfg.RedirectURL = redirectURL
	return &cfg
}

func (s *Session) needsRefresh(tok *oauth2.Token) bool {
	if tok.AccessToken == "" {
		return true
	}
	if tok.Expiry.IsZero() {
		return false
	}
	return s.now().Add(refreshBuffer).After(tok.Expiry)
}

// load returns the cached token, reading the file on first use.
// Callers hold s.mu.
func (s *Session) load() (*oauth2.Token, error) {
	if s.token != nil {
		return s.token, nil
	}
	tok, err := s.tokens.Load()
	if err != nil {
		return nil, err
	}
	s.token = tok
	return tok, nil
}

// store persists tok and caches it. Callers hold s.mu.
func (s *Session) store(tok *oauth2.Token) error {
	if err := s.tokens.Save(tok); err != nil {
		return err
	}
	s.token = tok
	return nil
}
