// Package markdown converts rich documents into Markdown.
//
// Conversion is a pure pipeline with no I/O:
//
//	RichDocument -> structural renderer -> raw buffer -> Normalize -> Markdown
//
// The structural renderer walks body content in reading order, rendering
// tables and paragraphs. Each text run goes through RenderRun, which applies
// heading, emphasis and link markers. Normalize then repairs the blank-line
// artifacts left between list items and collapses blank-line runs.
//
// A few output quirks are kept on purpose because existing consumers depend
// on them: HEADING_6 renders with seven '#', links render as "[text]url",
// and table width is taken from the first row only.
//
// Convert is safe for concurrent use on independent documents.
package markdown
