package markdown

import (
	"strings"

	"github.com/custodia-labs/docsmd/internal/core/domain"
)

// RenderRun renders one inline element under the named style of its
// paragraph. Heading styles win over emphasis; non-text elements and empty
// runs render as "".
func RenderRun(el domain.TextElement, style domain.NamedStyleType) string {
	text := runText(el.TextRun)
	if text == "" {
		return ""
	}

	switch {
	case style == domain.StyleTitle:
		return "# " + text
	case style == domain.StyleSubtitle:
		return " _" + text + "_ "
	case style.HeadingLevel() > 0:
		// HEADING_n maps to n+1 '#', so HEADING_6 yields seven.
		return strings.Repeat("#", style.HeadingLevel()+1) + " " + text
	}

	s := el.TextRun.Style
	switch {
	case s.Bold && s.Italic:
		return " **_" + text + "_** "
	case s.Italic:
		return " _" + text + "_ "
	case s.Bold:
		return " **" + text + "** "
	default:
		return text
	}
}

// runText returns the run content, with links written as "[content]url".
func runText(run *domain.TextRun) string {
	if run == nil {
		return ""
	}
	if link := run.Style.Link; link != nil && link.URL != "" {
		return "[" + run.Content + "]" + link.URL
	}
	return run.Content
}
