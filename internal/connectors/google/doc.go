// Package google provides shared infrastructure for the Google Docs connector.
//
// This package contains the pieces the docs connector builds on:
//   - TokenSource adapter to bridge docsmd's TokenProvider to oauth2.TokenSource
//   - Service factories for creating Docs and Drive API clients
//   - Error handling for common Google API errors (401, 403, 404, 429)
//   - Rate limiting to respect Google API quotas
//
// # Usage
//
//	ts := google.NewTokenSource(ctx, session)
//	docsSvc, err := google.NewDocsService(ctx, ts)
//
// # OAuth2 Scopes
//
// docsmd only reads documents:
//   - https://www.googleapis.com/auth/documents.readonly
//   - https://www.googleapis.com/auth/drive.readonly (listing documents)
package google
