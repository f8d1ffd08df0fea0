// Package domain defines the core entities for docsmd.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - RichDocument: The structured rich-text model returned by the Docs API
//   - RawDocument: Opaque bytes fetched by a connector
//   - Document: A normalised document carrying rendered Markdown
//   - ExportRecord: A ledger entry for a document written to disk
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
