// Package gdocs normalises Google Docs API documents into Markdown.
package gdocs

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"google.golang.org/api/docs/v1"

	docsconn "github.com/custodia-labs/docsmd/internal/connectors/google/docs"
	"github.com/custodia-labs/docsmd/internal/core/domain"
	"github.com/custodia-labs/docsmd/internal/core/ports/driven"
	"github.com/custodia-labs/docsmd/internal/markdown"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles Docs API documents serialised as JSON.
type Normaliser struct {
	now func() time.Time
}

// New creates a new Google Docs normaliser.
func New() *Normaliser {
	return &Normaliser{now: time.Now}
}

// SupportedMIMETypes returns the MIME types this normaliser handles.
func (n *Normaliser) SupportedMIMETypes() []string {
	return []string{domain.MIMETypeGoogleDocJSON}
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 95 // Connector-specific normaliser
}

// Normalise decodes the document JSON and renders it as Markdown.
func (n *Normaliser) Normalise(ctx context.Context, raw *domain.RawDocument) (*driven.NormaliseResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}
	if raw.MIMEType != "" && raw.MIMEType != domain.MIMETypeGoogleDocJSON {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedType, raw.MIMEType)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var apiDoc docs.Document
	if err := json.Unmarshal(raw.Content, &apiDoc); err != nil {
		return nil, fmt.Errorf("%w: decoding document JSON: %v", domain.ErrInvalidInput, err)
	}

	rich := docsconn.ToRichDocument(&apiDoc)
	content, ok := markdown.Convert(rich)
	if !ok {
		return nil, domain.ErrEmptyDocument
	}

	documentID := rich.DocumentID
	if documentID == "" {
		documentID = raw.DocumentID
	}
	uri := raw.URI
	if uri == "" {
		uri = docsconn.ResolveWebURL(documentID)
	}

	doc := domain.Document{
		ID:         uuid.New().String(),
		DocumentID: documentID,
		RevisionID: rich.RevisionID,
		URI:        uri,
		Title:      rich.Title,
		Content:    content,
		Metadata:   copyMetadata(raw.Metadata),
		CreatedAt:  n.now(),
	}
	doc.Metadata["mime_type"] = domain.MIMETypeGoogleDocJSON
	doc.Metadata["format"] = "markdown"

	return &driven.NormaliseResult{Document: doc}, nil
}

// copyMetadata returns a shallow copy of src, never nil.
func copyMetadata(src map[string]any) map[string]any {
	dst := make(map[string]any, len(src)+2)
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
