package services

import (
	"strings"
	"unicode"
)

// maxFileNameLength bounds the base name written for a document.
const maxFileNameLength = 200

// FileName returns the Markdown file name for a document.
// Path separators, reserved characters and control characters become
// underscores. An unusable title falls back to the document ID.
func FileName(title, documentID string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case strings.ContainsRune(`/\:*?"<>|`, r):
			return '_'
		case unicode.IsControl(r):
			return '_'
		}
		return r
	}, title)

	name = strings.Trim(strings.TrimSpace(name), ".")
	if len([]rune(name)) > maxFileNameLength {
		name = strings.TrimSpace(string([]rune(name)[:maxFileNameLength]))
	}
	if strings.Trim(name, "_ ") == "" {
		name = documentID
	}
	if name == "" {
		name = "untitled"
	}

	return name + ".md"
}
