package markdown

import "github.com/custodia-labs/docsmd/internal/core/domain"

func run(text string) domain.TextElement {
	return domain.TextElement{TextRun: &domain.TextRun{Content: text}}
}

func styledRun(text string, bold, italic bool) domain.TextElement {
	return domain.TextElement{TextRun: &domain.TextRun{
		Content: text,
		Style:   domain.TextStyle{Bold: bold, Italic: italic},
	}}
}

func linkRun(text, url string) domain.TextElement {
	return domain.TextElement{TextRun: &domain.TextRun{
		Content: text,
		Style:   domain.TextStyle{Link: &domain.Link{URL: url}},
	}}
}

func para(style domain.NamedStyleType, elements ...domain.TextElement) domain.StructuralElement {
	if elements == nil {
		elements = []domain.TextElement{}
	}
	return domain.StructuralElement{Paragraph: &domain.Paragraph{
		Style:    domain.ParagraphStyle{NamedStyleType: style},
		Elements: elements,
	}}
}

func listItem(listID string, level int, elements ...domain.TextElement) domain.StructuralElement {
	el := para(domain.StyleNormalText, elements...)
	el.Paragraph.Bullet = &domain.Bullet{ListID: listID, NestingLevel: &level}
	return el
}

func table(rows ...[]string) domain.StructuralElement {
	t := &domain.Table{}
	for _, cells := range rows {
		row := domain.TableRow{}
		for _, text := range cells {
			row.Cells = append(row.Cells, domain.TableCell{
				Content: []domain.StructuralElement{para(domain.StyleNormalText, run(text+"\n"))},
			})
		}
		t.Rows = append(t.Rows, row)
	}
	return domain.StructuralElement{Table: t}
}

func glyphList(format string) domain.ListDefinition {
	return domain.ListDefinition{Properties: &domain.ListProperties{
		NestingLevels: []domain.NestingLevel{{GlyphFormat: format}},
	}}
}

func newDoc(content ...domain.StructuralElement) *domain.RichDocument {
	return &domain.RichDocument{
		Title:      "T",
		DocumentID: "D",
		RevisionID: "R",
		Body:       &domain.Body{Content: content},
		Lists: map[string]domain.ListDefinition{
			"numbered": glyphList("%0."),
			"bracket":  glyphList("[%0]"),
			"bullets":  glyphList("●"),
		},
	}
}

const header = "---\ntitle: T\ndocumentId: D\nrevisionId: R\n---\n"
