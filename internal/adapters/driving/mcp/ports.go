package mcp

import (
	"github.com/custodia-labs/docsmd/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP server.
type Ports struct {
	// Export converts, fetches and lists documents.
	Export driving.ExportService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Export == nil {
		return ErrMissingExportService
	}
	return nil
}
