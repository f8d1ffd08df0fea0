// Package filesystem reads Docs API documents saved as local JSON files
// and watches them for changes.
package filesystem
