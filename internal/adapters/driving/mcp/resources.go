package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for docsmd resources.
	uriScheme = "docsmd://"

	mimeMarkdown = "text/markdown"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "exports",
		Name:        "exports",
		Description: "Documents exported to disk, most recent first",
		MIMEType:    "application/json",
	}, s.handleExportsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "documents/{documentId}",
		Name:        "document-markdown",
		Description: "A Google Doc rendered as Markdown",
		MIMEType:    mimeMarkdown,
	}, s.handleDocumentResource)
}

// handleExportsResource returns the export ledger.
func (s *Server) handleExportsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	records, err := s.ports.Export.History(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing exports: %w", err)
	}

	type exportInfo struct {
		DocumentID string `json:"document_id"`
		RevisionID string `json:"revision_id"`
		Title      string `json:"title"`
		Path       string `json:"path"`
		HTMLPath   string `json:"html_path,omitempty"`
		ExportedAt string `json:"exported_at"`
	}

	infos := make([]exportInfo, len(records))
	for i, r := range records {
		infos[i] = exportInfo{
			DocumentID: r.DocumentID,
			RevisionID: r.RevisionID,
			Title:      r.Title,
			Path:       r.Path,
			HTMLPath:   r.HTMLPath,
			ExportedAt: r.ExportedAt.UTC().Format(time.RFC3339),
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling exports: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleDocumentResource fetches a document and returns its Markdown.
func (s *Server) handleDocumentResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// docsmd://documents/{documentId}
	documentID := extractDocumentID(req.Params.URI)
	if documentID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	doc, err := s.ports.Export.Fetch(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("fetching document: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: mimeMarkdown,
			Text:     doc.Content,
		}},
	}, nil
}

// extractDocumentID extracts the document ID from a URI like docsmd://documents/{documentId}.
func extractDocumentID(uri string) string {
	const prefix = uriScheme + "documents/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
