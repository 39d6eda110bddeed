package utils

import (
	"regexp"
	"strings"
)

var (
	htmlTagRe = regexp.MustCompile(`</?[^>]+(>|$)`)
	spacesRe  = regexp.MustCompile(`\s+`)

	markdownEscaper = strings.NewReplacer("_", `\_`, "*", `\*`, "`", "\\`", "[", `\[`)
)

// StripHTML removes markup tags, leaving the inner text.
func StripHTML(s string) string {
	return htmlTagRe.ReplaceAllString(s, "")
}

// SquashSpaces collapses newlines and runs of whitespace, used to log SQL on one line.
func SquashSpaces(s string) string {
	return strings.TrimSpace(spacesRe.ReplaceAllString(s, " "))
}

// EscapeMarkdown escapes the characters legacy Telegram Markdown treats as entity delimiters.
func EscapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
