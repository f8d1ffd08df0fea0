package markdown

import (
	"regexp"
	"strings"
)

// blankRun matches three or more newlines separated only by whitespace.
var blankRun = regexp.MustCompile(`\n\s*\n\s*\n`)

// protectedLines is the number of leading lines never removed by the
// list-gap pass.
const protectedLines = 3

// Normalize repairs spacing artifacts in a rendered buffer:
//
//   - runs of blank lines collapse to a single blank line
//   - a blank line sitting between two list item lines is removed
//   - the text ends with exactly one blank line
//
// Normalize(Normalize(s)) == Normalize(s) for any s.
func Normalize(text string) string {
	text = blankRun.ReplaceAllString(text, "\n\n")

	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	for i, line := range lines {
		if i >= protectedLines && strings.TrimSpace(line) == "" &&
			isListLine(lineAt(lines, i-1)) && isListLine(lineAt(lines, i+1)) {
			continue
		}
		kept = append(kept, line)
	}

	text = strings.TrimRight(strings.Join(kept, "\n"), "\n") + "\n\n"
	return blankRun.ReplaceAllString(text, "\n\n")
}

func lineAt(lines []string, i int) string {
	if i < 0 || i >= len(lines) {
		return ""
	}
	return lines[i]
}

func isListLine(line string) bool {
	line = strings.TrimSpace(line)
	return strings.HasPrefix(line, orderedMarker) || strings.HasPrefix(line, unorderedMarker)
}
