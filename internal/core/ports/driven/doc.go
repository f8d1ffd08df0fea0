// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - Normaliser: Converts a fetched document into Markdown
//   - NormaliserRegistry: Selects the normaliser for a MIME type
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - DocumentFetcher: Remote access to Google Docs. Without it only offline
//     conversion is available.
//   - ExportStore: Export ledger. Without it unchanged revisions are detected
//     from the front matter of files already on disk.
//   - TokenProvider: Access tokens for the fetcher.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, connector, or normaliser package
package driven
