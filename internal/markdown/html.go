package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// htmlEngine is stateless and shared across calls.
var htmlEngine = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// RenderHTML renders converted Markdown to an HTML fragment. The front
// matter block is dropped before rendering.
func RenderHTML(md []byte) ([]byte, error) {
	_, body, err := ParseFrontMatter(md)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := htmlEngine.Convert(body, &buf); err != nil {
		return nil, fmt.Errorf("markdown render: %w", err)
	}
	return buf.Bytes(), nil
}
