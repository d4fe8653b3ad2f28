package services

import (
	"regexp"
	"strings"
)

var (
	urlPattern        = regexp.MustCompile(`https?://\S+|www\.\S+`)
	nonAlphanumPattern = regexp.MustCompile(`[^a-z0-9\s]`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// NormalizeText lower-cases the input, strips URLs and non-alphanumeric
// characters, and collapses runs of whitespace into single spaces.
func NormalizeText(text string) string {
	if text == "" {
		return ""
	}

	text = strings.ToLower(text)
	text = urlPattern.ReplaceAllString(text, " ")
	text = nonAlphanumPattern.ReplaceAllString(text, "")
	text = whitespacePattern.ReplaceAllString(text, " ")

	return strings.TrimSpace(text)
}
