// Package mcp provides an MCP (Model Context Protocol) server adapter for docsmd.
// It lets AI assistants read Google Docs as Markdown.
package mcp

import "errors"

// ErrMissingExportService is returned when the export service is not provided.
var ErrMissingExportService = errors.New("mcp: export service is required")
