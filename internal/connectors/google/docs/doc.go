// Package docs is the Google Docs connector.
//
// It resolves document references, fetches documents through the Docs API,
// lists documents through the Drive API and maps API types onto the domain
// RichDocument the Markdown converter reads.
package docs
