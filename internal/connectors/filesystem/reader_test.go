package filesystem

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docsmd/internal/core/domain"
)

func TestReadDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"documentId": "d"}`), 0644))

	raw, err := ReadDocument(path)
	require.NoError(t, err)

	assert.Equal(t, domain.MIMETypeGoogleDocJSON, raw.MIMEType)
	assert.Equal(t, `{"documentId": "d"}`, string(raw.Content))
	assert.True(t, strings.HasPrefix(raw.URI, "file://"))
	assert.True(t, strings.HasSuffix(raw.URI, "/doc.json"))
	assert.Equal(t, path, raw.Metadata["path"])
	assert.Equal(t, int64(19), raw.Metadata["size"])
}

func TestReadDocument_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadDocument(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = ReadDocument(dir)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
