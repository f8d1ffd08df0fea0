package markdown

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"
)

// FrontMatter is the metadata block written at the top of every export.
type FrontMatter struct {
	Title      string `yaml:"title" json:"title"`
	DocumentID string `yaml:"documentId" json:"documentId"`
	RevisionID string `yaml:"revisionId" json:"revisionId"`
}

// ParseFrontMatter splits an exported Markdown file into its front matter
// and body. Files without front matter return a zero FrontMatter and the
// whole source as body.
func ParseFrontMatter(source []byte) (FrontMatter, []byte, error) {
	var meta FrontMatter

	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return FrontMatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	return meta, body, nil
}
