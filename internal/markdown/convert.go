package markdown

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/docsmd/internal/core/domain"
)

// Convert renders doc as Markdown with a front matter header.
// It returns ok == false when the document has no body content; that is
// "nothing to render", not a failure.
func Convert(doc *domain.RichDocument) (md string, ok bool) {
	if !doc.HasContent() {
		return "", false
	}

	var b strings.Builder
	b.WriteString(frontMatter(doc))
	b.WriteString(renderBody(doc.Body, doc.Lists))

	return Normalize(b.String()), true
}

// frontMatter emits the metadata block written ahead of the body.
// Values are written verbatim, matching what readers of existing exports expect.
func frontMatter(doc *domain.RichDocument) string {
	return fmt.Sprintf("---\ntitle: %s\ndocumentId: %s\nrevisionId: %s\n---\n",
		doc.Title, doc.DocumentID, doc.RevisionID)
}
