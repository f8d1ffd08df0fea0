package docs

import (
	"google.golang.org/api/docs/v1"

	"github.com/custodia-labs/docsmd/internal/core/domain"
)

// ToRichDocument maps a Docs API document onto the domain model.
// Nil API structures map to their zero values; element slices keep their
// nil-ness so a paragraph without "elements" stays distinguishable from
// one with an empty list.
func ToRichDocument(doc *docs.Document) *domain.RichDocument {
	if doc == nil {
		return nil
	}

	rich := &domain.RichDocument{
		Title:      doc.Title,
		DocumentID: doc.DocumentId,
		RevisionID: doc.RevisionId,
	}

	if doc.Body != nil {
		rich.Body = &domain.Body{Content: mapContent(doc.Body.Content)}
	}

	if len(doc.Lists) > 0 {
		rich.Lists = make(map[string]domain.ListDefinition, len(doc.Lists))
		for id, list := range doc.Lists {
			rich.Lists[id] = mapList(list)
		}
	}

	return rich
}

func mapContent(elements []*docs.StructuralElement) []domain.StructuralElement {
	if elements == nil {
		return nil
	}
	out := make([]domain.StructuralElement, 0, len(elements))
	for _, el := range elements {
		if el == nil {
			out = append(out, domain.StructuralElement{})
			continue
		}
		out = append(out, domain.StructuralElement{
			Table:     mapTable(el.Table),
			Paragraph: mapParagraph(el.Paragraph),
		})
	}
	return out
}

func mapTable(t *docs.Table) *domain.Table {
	if t == nil {
		return nil
	}
	table := &domain.Table{Rows: make([]domain.TableRow, 0, len(t.TableRows))}
	for _, row := range t.TableRows {
		var r domain.TableRow
		if row != nil {
			r.Cells = make([]domain.TableCell, 0, len(row.TableCells))
			for _, cell := range row.TableCells {
				var c domain.TableCell
				if cell != nil {
					c.Content = mapContent(cell.Content)
				}
				r.Cells = append(r.Cells, c)
			}
		}
		table.Rows = append(table.Rows, r)
	}
	return table
}

func mapParagraph(p *docs.Paragraph) *domain.Paragraph {
	if p == nil {
		return nil
	}

	para := &domain.Paragraph{}
	if p.ParagraphStyle != nil {
		para.Style.NamedStyleType = domain.NamedStyleType(p.ParagraphStyle.NamedStyleType)
	}
	if p.Bullet != nil {
		level := int(p.Bullet.NestingLevel)
		para.Bullet = &domain.Bullet{ListID: p.Bullet.ListId, NestingLevel: &level}
	}
	if p.Elements != nil {
		para.Elements = make([]domain.TextElement, 0, len(p.Elements))
		for _, el := range p.Elements {
			para.Elements = append(para.Elements, mapElement(el))
		}
	}
	return para
}

func mapElement(el *docs.ParagraphElement) domain.TextElement {
	if el == nil || el.TextRun == nil {
		return domain.TextElement{}
	}

	run := &domain.TextRun{Content: el.TextRun.Content}
	if style := el.TextRun.TextStyle; style != nil {
		run.Style.Bold = style.Bold
		run.Style.Italic = style.Italic
		if style.Link != nil {
			run.Style.Link = &domain.Link{URL: style.Link.Url}
		}
	}
	return domain.TextElement{TextRun: run}
}

func mapList(list docs.List) domain.ListDefinition {
	if list.ListProperties == nil {
		return domain.ListDefinition{}
	}
	props := &domain.ListProperties{
		NestingLevels: make([]domain.NestingLevel, 0, len(list.ListProperties.NestingLevels)),
	}
	for _, level := range list.ListProperties.NestingLevels {
		var nl domain.NestingLevel
		if level != nil {
			nl.GlyphFormat = level.GlyphFormat
		}
		props.NestingLevels = append(props.NestingLevels, nl)
	}
	return domain.ListDefinition{Properties: props}
}
