// Package textutil provides the text normalization step of the parsing
// pipeline plus small string helpers shared across commands.
package textutil

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	// Everything outside letters, digits and basic punctuation is stripped
	// during normalization. Contact regexes (email, linkedin) depend on
	// characters outside this set, so contact extraction runs on the
	// collapsed-only text instead.
	specialRe = regexp.MustCompile(`[^A-Za-z0-9 .,;:\-'"()]`)
)

// Normalize collapses whitespace runs and strips characters outside the
// basic-punctuation whitelist. Line breaks are preserved: the section
// segmenter and all extractors consume a line sequence, so normalization is
// applied per line. Normalize is idempotent.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		// Collapse before stripping so tabs become spaces instead of
		// vanishing; collapse again because a stripped character can leave
		// two spaces behind.
		line = whitespaceRe.ReplaceAllString(line, " ")
		line = specialRe.ReplaceAllString(line, "")
		line = whitespaceRe.ReplaceAllString(line, " ")
		lines[i] = strings.TrimSpace(line)
	}

	return strings.Join(lines, "\n")
}

// CollapseWhitespace performs only the whitespace half of normalization,
// keeping every non-whitespace character intact. It feeds the contact
// extractor, whose email and linkedin patterns need '@' and '/'.
func CollapseWhitespace(text string) string {
	if text == "" {
		return ""
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(whitespaceRe.ReplaceAllString(line, " "))
	}

	return strings.Join(lines, "\n")
}

// TruncateForLog shortens the provided string to the specified limit, appending an ellipsis when truncated.
func TruncateForLog(s string, limit int) string {
	s = strings.TrimSpace(s)
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
