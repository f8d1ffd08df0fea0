// Package connectors holds the document sources docsmd reads from:
// the Google Docs and Drive APIs (google/docs) and local Docs API JSON
// files (filesystem).
package connectors
