// internal/extraction/textnorm/normalize.go
package textnorm

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Normalize canonicalizes a chat message before pattern matching:
// trim, lowercase, collapse whitespace runs to a single space.
// Idempotent; empty input yields an empty string.
func Normalize(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	text = strings.ToLower(text)
	return whitespaceRun.ReplaceAllString(text, " ")
}
