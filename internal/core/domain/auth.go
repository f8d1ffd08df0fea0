package domain

// AuthMethod identifies how API calls are authenticated.
type AuthMethod string

const (
	// AuthMethodOAuth uses a user OAuth token.
	AuthMethodOAuth AuthMethod = "oauth"
	// AuthMethodNone performs unauthenticated calls.
	AuthMethodNone AuthMethod = "none"
)

// AuthState summarises the local authentication setup.
type AuthState int

const (
	// AuthNotConfigured means no client credentials are stored.
	AuthNotConfigured AuthState = iota

	// AuthConfigured means client credentials exist but nobody signed in.
	AuthConfigured

	// AuthReady means a token is available.
	AuthReady
)

// String returns a user-facing description of the state.
func (s AuthState) String() string {
	switch s {
	case AuthReady:
		return "Ready"
	case AuthConfigured:
		return "Client ID/Secret configured. Run `docsmd auth login` to sign in."
	default:
		return "Client ID/Secret not configured. Run `docsmd auth configure` first."
	}
}
