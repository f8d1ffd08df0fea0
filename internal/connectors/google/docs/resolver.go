package docs

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/custodia-labs/docsmd/internal/core/domain"
)

var (
	documentURLPattern = regexp.MustCompile(`(?i)/document/d/([a-zA-Z0-9-_]+)`)
	documentIDPattern  = regexp.MustCompile(`^[a-zA-Z0-9-_]+$`)
)

// ParseDocumentRef extracts a document ID from a Google Docs URL or
// validates a bare document ID.
func ParseDocumentRef(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if m := documentURLPattern.FindStringSubmatch(ref); m != nil {
		return m[1], nil
	}
	if documentIDPattern.MatchString(ref) {
		return ref, nil
	}
	return "", fmt.Errorf("%w: %q is not a Google Docs URL or document ID", domain.ErrInvalidInput, ref)
}

// ResolveWebURL returns the browser URL of a document.
func ResolveWebURL(documentID string) string {
	if documentID == "" {
		return ""
	}
	return "https://docs.google.com/document/d/" + documentID + "/edit"
}
