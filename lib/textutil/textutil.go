package textutil

import (
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// NormalizeHeader flattens a scraped column header into a single line:
// embedded line breaks and runs of whitespace become one space, and
// leading/trailing whitespace is trimmed. The cap table renders its
// headers across multiple visual lines, so the raw cell text contains
// newlines.
func NormalizeHeader(header string) string {
	header = whitespaceRegex.ReplaceAllString(header, " ")
	return strings.Trim(header, " ")
}

// CollapseWhitespace replaces every run of whitespace with a single
// space without trimming the ends.
func CollapseWhitespace(s string) string {
	return whitespaceRegex.ReplaceAllString(s, " ")
}
