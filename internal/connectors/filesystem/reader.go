package filesystem

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/docsmd/internal/core/domain"
)

// MaxFileSize is the largest document file read (50MB).
const MaxFileSize = 50 * 1024 * 1024

// ReadDocument reads a Docs API JSON file as a raw document.
func ReadDocument(path string) (*domain.RawDocument, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, path)
		}
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", domain.ErrInvalidInput, path)
	}
	if info.Size() > MaxFileSize {
		return nil, fmt.Errorf("%w: %s is larger than %d bytes", domain.ErrInvalidInput, path, MaxFileSize)
	}

	content, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return &domain.RawDocument{
		URI:      "file://" + filepath.ToSlash(abs),
		MIMEType: domain.MIMETypeGoogleDocJSON,
		Content:  content,
		Metadata: map[string]any{
			"path":          abs,
			"size":          info.Size(),
			"modified_time": info.ModTime(),
		},
	}, nil
}
