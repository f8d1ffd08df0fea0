package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/oauth2"

	"github.com/custodia-labs/docsmd/internal/core/domain"
)

// TokenFileName is the token file inside the docsmd directory.
const TokenFileName = "token.json"

// TokenFile persists an OAuth2 token as JSON, readable only by the owner.
type TokenFile struct {
	path string
}

// NewTokenFile creates a token file handle in dir.
func NewTokenFile(dir string) *TokenFile {
	return &TokenFile{path: filepath.Join(dir, TokenFileName)}
}

// Path returns the file path.
func (f *TokenFile) Path() string {
	return f.path
}

// Load reads the token. Returns domain.ErrNotFound if nobody signed in.
func (f *TokenFile) Load() (*oauth2.Token, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("reading token: %w", err)
	}

	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("decoding token %s: %w", f.path, err)
	}
	return &tok, nil
}

// Save writes the token through a temporary file so a crash never leaves
// a truncated token behind.
func (f *TokenFile) Save(tok *oauth2.Token) error {
	if tok == nil {
		return domain.ErrInvalidInput
	}

	data, err := json.MarshalIndent(tok, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding token: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0700); err != nil {
		return fmt.Errorf("creating token directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".token-*.json")
	if err != nil {
		return fmt.Errorf("creating token file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		return fmt.Errorf("securing token file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing token file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing token file: %w", err)
	}
	return os.Rename(tmp.Name(), f.path)
}

// Delete removes the token. A missing file is not an error.
func (f *TokenFile) Delete() error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing token: %w", err)
	}
	return nil
}
