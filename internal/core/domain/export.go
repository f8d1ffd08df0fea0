package domain

import "time"

// ExportRecord is a ledger entry for a document written to disk.
type ExportRecord struct {
	// DocumentID is the service identifier of the exported document.
	DocumentID string

	// RevisionID is the revision that was written.
	RevisionID string

	// Title is the document title at export time.
	Title string

	// Path is the Markdown file that was written.
	Path string

	// HTMLPath is the rendered HTML file, empty when HTML was not requested.
	HTMLPath string

	// ExportedAt is when the file was last written.
	ExportedAt time.Time
}

// ExportRequest describes a single export.
type ExportRequest struct {
	// Ref is a document ID or a document URL.
	Ref string

	// OutputDir is the directory the Markdown file is written to.
	OutputDir string

	// Force rewrites the file even when the revision is unchanged.
	Force bool

	// HTML also renders an HTML file next to the Markdown.
	HTML bool
}

// ExportResult reports the outcome of an export.
type ExportResult struct {
	Record ExportRecord

	// Skipped is true when the revision was already exported.
	Skipped bool
}

// DocumentRef is a lightweight reference to a remote document.
type DocumentRef struct {
	ID           string
	Name         string
	WebURL       string
	ModifiedTime string
}

// ListOptions filters a document listing.
type ListOptions struct {
	// Query is an extra Drive query clause, ANDed with the document MIME filter.
	Query string

	// PageSize is the number of results per page.
	PageSize int64

	// PageToken continues a previous listing.
	PageToken string
}

// DocumentPage is one page of a document listing.
type DocumentPage struct {
	Items         []DocumentRef
	NextPageToken string
}

// HasMore returns true if another page is available.
func (p *DocumentPage) HasMore() bool {
	return p != nil && p.NextPageToken != ""
}
