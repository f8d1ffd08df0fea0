package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/docsmd/internal/core/domain"
)

const defaultListLimit = 20

// ConvertInput is the input schema for the convert_document tool.
type ConvertInput struct {
	DocumentJSON string `json:"document_json" jsonschema:"a Google Docs API document as JSON"`
}

// GetDocumentInput is the input schema for the get_document_markdown tool.
type GetDocumentInput struct {
	Document string `json:"document" jsonschema:"a Google Docs document ID or URL"`
}

// MarkdownOutput is the output schema for tools returning Markdown.
type MarkdownOutput struct {
	DocumentID string `json:"document_id"`
	RevisionID string `json:"revision_id,omitempty"`
	Title      string `json:"title"`
	URI        string `json:"uri,omitempty"`
	Markdown   string `json:"markdown"`

	// Empty is true when the document has no body to render.
	Empty bool `json:"empty,omitempty"`
}

// ListInput is the input schema for the list_documents tool.
type ListInput struct {
	Query     string `json:"query,omitempty" jsonschema:"a Drive search clause, e.g. name contains 'plan'"`
	Limit     int    `json:"limit,omitempty" jsonschema:"maximum number of documents to return (default 20)"`
	PageToken string `json:"page_token,omitempty" jsonschema:"token from a previous call to continue the listing"`
}

// ListOutput is the output schema for the list_documents tool.
type ListOutput struct {
	Documents     []DocumentOutput `json:"documents"`
	Count         int              `json:"count"`
	NextPageToken string           `json:"next_page_token,omitempty"`
}

// DocumentOutput is a single listed document.
type DocumentOutput struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	URL          string `json:"url"`
	ModifiedTime string `json:"modified_time,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "convert_document",
		Description: "Convert a Google Docs API document (JSON) to Markdown",
	}, s.handleConvert)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_document_markdown",
		Description: "Fetch a Google Doc by ID or URL and return it as Markdown",
	}, s.handleGetDocument)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_documents",
		Description: "List Google Docs visible to the signed-in user",
	}, s.handleList)
}

func (s *Server) handleConvert(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ConvertInput,
) (*mcp.CallToolResult, MarkdownOutput, error) {
	doc, err := s.ports.Export.Convert(ctx, []byte(input.DocumentJSON))
	return markdownResult(doc, err)
}

func (s *Server) handleGetDocument(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetDocumentInput,
) (*mcp.CallToolResult, MarkdownOutput, error) {
	doc, err := s.ports.Export.Fetch(ctx, input.Document)
	return markdownResult(doc, err)
}

func (s *Server) handleList(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListInput,
) (*mcp.CallToolResult, ListOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	page, err := s.ports.Export.List(ctx, domain.ListOptions{
		Query:     input.Query,
		PageSize:  int64(limit),
		PageToken: input.PageToken,
	})
	if err != nil {
		return nil, ListOutput{}, err
	}

	output := ListOutput{
		Documents:     make([]DocumentOutput, len(page.Items)),
		Count:         len(page.Items),
		NextPageToken: page.NextPageToken,
	}
	for i, ref := range page.Items {
		output.Documents[i] = DocumentOutput{
			ID:           ref.ID,
			Name:         ref.Name,
			URL:          ref.WebURL,
			ModifiedTime: ref.ModifiedTime,
		}
	}

	return nil, output, nil
}

// markdownResult maps a conversion outcome to tool output.
// An empty document is a result, not a failure.
func markdownResult(doc *domain.Document, err error) (*mcp.CallToolResult, MarkdownOutput, error) {
	if errors.Is(err, domain.ErrEmptyDocument) {
		return nil, MarkdownOutput{Empty: true}, nil
	}
	if err != nil {
		return nil, MarkdownOutput{}, err
	}

	return nil, MarkdownOutput{
		DocumentID: doc.DocumentID,
		RevisionID: doc.RevisionID,
		Title:      doc.Title,
		URI:        doc.URI,
		Markdown:   doc.Content,
	}, nil
}
