// internal/extraction/textnorm/titlecase.go
package textnorm

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TitleCase capitalizes each word of a captured name-like value
// ("nguyễn văn an" -> "Nguyễn Văn An"). Surrounding whitespace is dropped.
// A cases.Caser carries internal state, so a fresh one is built per call;
// worker handlers run on concurrent goroutines and must not share one.
func TitleCase(text string) string {
	return cases.Title(language.Vietnamese).String(strings.TrimSpace(text))
}
