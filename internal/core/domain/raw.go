package domain

// MIMETypeGoogleDocJSON is the MIME type of a Docs API document serialised as JSON.
const MIMETypeGoogleDocJSON = "application/vnd.google-apps.document+json"

// RawDocument represents opaque bytes fetched by a connector.
// It is the connector's output before normalisation.
type RawDocument struct {
	// DocumentID is the service identifier of the document.
	DocumentID string

	// URI is the original location (file path, URL, etc).
	URI string

	// MIMEType is the content type (e.g., "application/vnd.google-apps.document+json").
	MIMEType string

	// Content is the raw bytes.
	Content []byte

	// Metadata contains connector-specific key-value pairs.
	Metadata map[string]any
}
