package markdown

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/docsmd/internal/core/domain"
)

var newlineRun = regexp.MustCompile(`\n+`)

// orderedGlyphFormats are the level-0 glyph formats rendered as numbered lists.
var orderedGlyphFormats = map[string]bool{
	"[%0]": true,
	"%0.":  true,
}

const (
	orderedMarker   = "1. "
	unorderedMarker = "- "
	listIndent      = "  "
)

// renderer accumulates the Markdown of one body. It is owned by a single
// Convert call.
type renderer struct {
	buf   strings.Builder
	lists map[string]domain.ListDefinition
}

func renderBody(body *domain.Body, lists map[string]domain.ListDefinition) string {
	r := &renderer{lists: lists}
	for i := range body.Content {
		r.renderElement(&body.Content[i])
	}
	return r.buf.String()
}

func (r *renderer) renderElement(el *domain.StructuralElement) {
	if el.Table != nil && len(el.Table.Rows) > 0 {
		r.renderTable(el.Table)
	}
	if el.Paragraph != nil && el.Paragraph.Elements != nil {
		r.renderParagraph(el.Paragraph)
	}
}

// renderTable writes a blank header, a separator, then one line per row.
// Only the first row decides the column count; later rows are not reconciled.
func (r *renderer) renderTable(t *domain.Table) {
	width := len(t.Rows[0].Cells)
	r.buf.WriteString(tableRule(width, ""))
	r.buf.WriteString(tableRule(width, "-"))

	for _, row := range t.Rows {
		texts := make([]string, 0, len(row.Cells))
		for _, cell := range row.Cells {
			texts = append(texts, cellText(cell))
		}
		r.buf.WriteString("| " + strings.Join(texts, " | ") + " |\n")
	}
}

func tableRule(width int, fill string) string {
	cells := make([]string, width)
	for i := range cells {
		cells[i] = fill
	}
	return "|" + strings.Join(cells, "|") + "|\n"
}

// cellText flattens the paragraphs of a cell into one line. Every run is
// stripped of line breaks and trimmed on its own.
func cellText(cell domain.TableCell) string {
	var b strings.Builder
	for _, el := range cell.Content {
		if el.Paragraph == nil {
			continue
		}
		style := el.Paragraph.Style.NamedStyleType
		for _, te := range el.Paragraph.Elements {
			text := newlineRun.ReplaceAllString(RenderRun(te, style), "")
			b.WriteString(strings.TrimSpace(text))
		}
	}
	return b.String()
}

func (r *renderer) renderParagraph(p *domain.Paragraph) {
	style := p.Style.NamedStyleType
	listItem := p.Bullet != nil && p.Bullet.ListID != ""

	if listItem {
		r.buf.WriteString(strings.Repeat(listIndent, p.Bullet.Level()))
		r.buf.WriteString(r.listMarker(p.Bullet.ListID))
	}

	for _, el := range p.Elements {
		if el.TextRun == nil {
			continue
		}
		// A bare line break is already implied by the paragraph terminator.
		if text := runText(el.TextRun); text == "" || text == "\n" {
			continue
		}
		r.buf.WriteString(RenderRun(el, style))
	}

	if listItem {
		r.buf.WriteString("\n")
	} else {
		r.buf.WriteString("\n\n")
	}
}

func (r *renderer) listMarker(listID string) string {
	def, ok := r.lists[listID]
	if ok && orderedGlyphFormats[def.GlyphFormat()] {
		return orderedMarker
	}
	return unorderedMarker
}
