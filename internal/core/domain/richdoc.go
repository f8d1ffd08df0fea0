package domain

// NamedStyleType is the paragraph-level named style of a rich document.
// The zero value means the document did not specify a style.
type NamedStyleType string

// Named styles understood by the Markdown renderer.
const (
	StyleUnspecified NamedStyleType = ""
	StyleNormalText  NamedStyleType = "NORMAL_TEXT"
	StyleTitle       NamedStyleType = "TITLE"
	StyleSubtitle    NamedStyleType = "SUBTITLE"
	StyleHeading1    NamedStyleType = "HEADING_1"
	StyleHeading2    NamedStyleType = "HEADING_2"
	StyleHeading3    NamedStyleType = "HEADING_3"
	StyleHeading4    NamedStyleType = "HEADING_4"
	StyleHeading5    NamedStyleType = "HEADING_5"
	StyleHeading6    NamedStyleType = "HEADING_6"
)

// HeadingLevel returns the heading level (1-6) for HEADING_n styles.
// Returns 0 for every other style.
func (s NamedStyleType) HeadingLevel() int {
	switch s {
	case StyleHeading1:
		return 1
	case StyleHeading2:
		return 2
	case StyleHeading3:
		return 3
	case StyleHeading4:
		return 4
	case StyleHeading5:
		return 5
	case StyleHeading6:
		return 6
	default:
		return 0
	}
}

// RichDocument is the structured rich-text document as returned by a
// document service. It is read-only input for conversion.
type RichDocument struct {
	// Title is the human-readable document title.
	Title string

	// DocumentID is the service identifier of the document.
	DocumentID string

	// RevisionID identifies the revision the content was read at.
	RevisionID string

	// Body holds the document content. Nil when no body was fetched.
	Body *Body

	// Lists maps list IDs to their definitions.
	Lists map[string]ListDefinition
}

// Body is the ordered body content of a document, in reading order.
type Body struct {
	Content []StructuralElement
}

// StructuralElement is one item of body or cell content.
// At most one of Table and Paragraph is set; an element with neither is skipped.
type StructuralElement struct {
	Table     *Table
	Paragraph *Paragraph
}

// Table is an ordered set of rows.
type Table struct {
	Rows []TableRow
}

// TableRow is an ordered set of cells.
type TableRow struct {
	Cells []TableCell
}

// TableCell holds nested structural content, usually paragraphs.
type TableCell struct {
	Content []StructuralElement
}

// Paragraph is a run of styled text with optional list membership.
type Paragraph struct {
	// Style is the paragraph style.
	Style ParagraphStyle

	// Bullet is set when the paragraph is a list item.
	Bullet *Bullet

	// Elements are the inline elements. A nil slice means the
	// paragraph carried no elements at all and renders nothing.
	Elements []TextElement
}

// ParagraphStyle carries the named style of a paragraph.
type ParagraphStyle struct {
	NamedStyleType NamedStyleType
}

// Bullet marks a paragraph as a list item.
type Bullet struct {
	// ListID references an entry in RichDocument.Lists.
	ListID string

	// NestingLevel is the zero-based indentation depth. Nil means 0.
	NestingLevel *int
}

// Level returns the nesting level, treating an absent level as 0.
func (b *Bullet) Level() int {
	if b == nil || b.NestingLevel == nil || *b.NestingLevel < 0 {
		return 0
	}
	return *b.NestingLevel
}

// ListDefinition describes how a list is rendered.
type ListDefinition struct {
	Properties *ListProperties
}

// ListProperties holds per-nesting-level list settings.
type ListProperties struct {
	NestingLevels []NestingLevel
}

// NestingLevel holds the settings of one list nesting level.
type NestingLevel struct {
	// GlyphFormat is the marker pattern, e.g. "%0." for numbered lists.
	GlyphFormat string
}

// GlyphFormat returns the glyph format of nesting level 0, or "" if the
// definition does not carry one.
func (l ListDefinition) GlyphFormat() string {
	if l.Properties == nil || len(l.Properties.NestingLevels) == 0 {
		return ""
	}
	return l.Properties.NestingLevels[0].GlyphFormat
}

// TextElement is one inline element of a paragraph.
type TextElement struct {
	// TextRun is nil for non-text elements (page breaks, inline objects).
	TextRun *TextRun
}

// TextRun is the smallest unit of uniformly styled text.
type TextRun struct {
	Content string
	Style   TextStyle
}

// TextStyle holds the inline style of a text run.
type TextStyle struct {
	Bold   bool
	Italic bool
	Link   *Link
}

// Link is a hyperlink target.
type Link struct {
	URL string
}

// HasContent reports whether the document has any body content to render.
func (d *RichDocument) HasContent() bool {
	return d != nil && d.Body != nil && len(d.Body.Content) > 0
}
