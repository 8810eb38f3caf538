package grammar

import (
	"fmt"
	"unicode/utf8"
)

// ValidationError reports why a post does not conform to the grammar.
// Offset is a byte offset into the input; Line and Column are 1-based and
// Column counts runes.
type ValidationError struct {
	Message string `json:"message"`
	Offset  int    `json:"offset"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("line %d, column %d: %s", e.Line, e.Column, e.Message)
}

func newError(src string, offset int, format string, args ...any) *ValidationError {
	line, col := position(src, offset)
	return &ValidationError{
		Message: fmt.Sprintf(format, args...),
		Offset:  offset,
		Line:    line,
		Column:  col,
	}
}

// position converts a byte offset into a 1-based line and rune column
func position(src string, offset int) (line, col int) {
	if offset > len(src) {
		offset = len(src)
	}
	line, lineStart := 1, 0
	for i := 0; i < offset; i++ {
		if src[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	return line, utf8.RuneCountInString(src[lineStart:offset]) + 1
}
