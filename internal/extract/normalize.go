package extract

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// casers are not safe for concurrent use, so each call borrows one
var lowerPool = sync.Pool{
	New: func() any {
		c := cases.Lower(language.Und)
		return &c
	},
}

// lower applies full Unicode lower-casing
func lower(s string) string {
	if s == "" {
		return ""
	}
	c := lowerPool.Get().(*cases.Caser)
	out := c.String(s)
	lowerPool.Put(c)
	return out
}

// Normalize lower-cases text and collapses every whitespace run to a single
// space, trimming both ends
func Normalize(text string) string {
	return strings.Join(strings.Fields(lower(text)), " ")
}

// Core strips leading and trailing non-word characters from a token and
// lower-cases the remainder, e.g. "(Stupid!)" -> "stupid"
func Core(token string) string {
	return lower(strings.TrimFunc(token, func(r rune) bool { return !isWordRune(r) }))
}

// isWordRune reports whether r counts as a word character (letter, digit or underscore)
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
