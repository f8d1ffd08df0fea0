package domain

import "time"

// Document represents a normalised document.
// It is the canonical representation after conversion to Markdown.
type Document struct {
	// ID is the unique identifier for this conversion result.
	ID string

	// DocumentID is the service identifier of the source document.
	DocumentID string

	// RevisionID is the source revision the content was rendered from.
	RevisionID string

	// URI is the original location (file path, URL, etc).
	URI string

	// Title is the human-readable title.
	Title string

	// Content is the rendered Markdown, front matter included.
	Content string

	// Metadata contains arbitrary key-value pairs.
	Metadata map[string]any

	// CreatedAt is when the document was converted.
	CreatedAt time.Time
}
