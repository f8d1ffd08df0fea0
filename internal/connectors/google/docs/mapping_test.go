package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/docs/v1"

	"github.com/custodia-labs/docsmd/internal/core/domain"
	"github.com/custodia-labs/docsmd/internal/markdown"
)

const sampleDocument = `{
  "documentId": "doc-1",
  "title": "Plan",
  "revisionId": "rev-7",
  "body": {"content": [
    {"sectionBreak": {}},
    {"paragraph": {
      "paragraphStyle": {"namedStyleType": "HEADING_1"},
      "elements": [{"textRun": {"content": "Intro\n", "textStyle": {}}}]
    }},
    {"paragraph": {
      "paragraphStyle": {"namedStyleType": "NORMAL_TEXT"},
      "elements": [
        {"textRun": {"content": "see ", "textStyle": {}}},
        {"textRun": {"content": "docs", "textStyle": {"bold": true, "link": {"url": "https://example.com"}}}},
        {"pageBreak": {}}
      ]
    }},
    {"paragraph": {
      "paragraphStyle": {"namedStyleType": "NORMAL_TEXT"},
      "bullet": {"listId": "kix.1", "nestingLevel": 1},
      "elements": [{"textRun": {"content": "nested\n", "textStyle": {}}}]
    }},
    {"paragraph": {"paragraphStyle": {"namedStyleType": "NORMAL_TEXT"}}},
    {"table": {"rows": 1, "columns": 2, "tableRows": [
      {"tableCells": [
        {"content": [{"paragraph": {"elements": [{"textRun": {"content": "a\n"}}]}}]},
        {"content": []}
      ]}
    ]}}
  ]},
  "lists": {
    "kix.1": {"listProperties": {"nestingLevels": [{"glyphFormat": "%0."}, {"glyphFormat": "%1."}]}}
  }
}`

func decode(t *testing.T, data string) *docs.Document {
	t.Helper()
	var doc docs.Document
	require.NoError(t, json.Unmarshal([]byte(data), &doc))
	return &doc
}

func TestToRichDocument(t *testing.T) {
	rich := ToRichDocument(decode(t, sampleDocument))
	require.NotNil(t, rich)

	assert.Equal(t, "Plan", rich.Title)
	assert.Equal(t, "doc-1", rich.DocumentID)
	assert.Equal(t, "rev-7", rich.RevisionID)
	require.NotNil(t, rich.Body)
	require.Len(t, rich.Body.Content, 6)

	// section break maps to an empty element
	assert.Nil(t, rich.Body.Content[0].Paragraph)
	assert.Nil(t, rich.Body.Content[0].Table)

	heading := rich.Body.Content[1].Paragraph
	require.NotNil(t, heading)
	assert.Equal(t, domain.StyleHeading1, heading.Style.NamedStyleType)

	prose := rich.Body.Content[2].Paragraph
	require.Len(t, prose.Elements, 3)
	assert.True(t, prose.Elements[1].TextRun.Style.Bold)
	assert.Equal(t, "https://example.com", prose.Elements[1].TextRun.Style.Link.URL)
	assert.Nil(t, prose.Elements[2].TextRun)

	item := rich.Body.Content[3].Paragraph
	require.NotNil(t, item.Bullet)
	assert.Equal(t, "kix.1", item.Bullet.ListID)
	assert.Equal(t, 1, item.Bullet.Level())

	// no "elements" key keeps a nil slice
	assert.Nil(t, rich.Body.Content[4].Paragraph.Elements)

	table := rich.Body.Content[5].Table
	require.NotNil(t, table)
	require.Len(t, table.Rows, 1)
	require.Len(t, table.Rows[0].Cells, 2)
	assert.Equal(t, "a\n", table.Rows[0].Cells[0].Content[0].Paragraph.Elements[0].TextRun.Content)

	assert.Equal(t, "%0.", rich.Lists["kix.1"].GlyphFormat())
}

func TestToRichDocument_Nil(t *testing.T) {
	assert.Nil(t, ToRichDocument(nil))

	rich := ToRichDocument(&docs.Document{DocumentId: "x"})
	require.NotNil(t, rich)
	assert.Nil(t, rich.Body)
	assert.False(t, rich.HasContent())
}

func TestToRichDocument_EmptyElementsKeptNonNil(t *testing.T) {
	doc := decode(t, `{"body": {"content": [{"paragraph": {"elements": []}}]}}`)

	rich := ToRichDocument(doc)

	elements := rich.Body.Content[0].Paragraph.Elements
	assert.NotNil(t, elements)
	assert.Empty(t, elements)
}

func TestToRichDocument_BulletWithoutLevel(t *testing.T) {
	doc := decode(t, `{"body": {"content": [{"paragraph": {"bullet": {"listId": "l"}, "elements": []}}]}}`)

	rich := ToRichDocument(doc)

	assert.Equal(t, 0, rich.Body.Content[0].Paragraph.Bullet.Level())
}

func TestToRichDocument_Converts(t *testing.T) {
	md, ok := markdown.Convert(ToRichDocument(decode(t, sampleDocument)))
	require.True(t, ok)

	want := "---\ntitle: Plan\ndocumentId: doc-1\nrevisionId: rev-7\n---\n" +
		"## Intro\n\n" +
		"see  **[docs]https://example.com** \n\n" +
		"  1. nested\n\n" +
		"|||\n|-|-|\n| a |  |\n\n"
	assert.Equal(t, want, md)
}
