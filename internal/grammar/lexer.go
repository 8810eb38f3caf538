package grammar

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const variationSelector16 = '\uFE0F'

// reserved runes never appear inside a word
const reserved = "@#$*-_/~"

var linkPrefixes = []string{"https://", "http://"}

type lexer struct {
	src string
	pos int
}

func newLexer(src string) *lexer {
	return &lexer{src: src}
}

// next returns the next token, or a *ValidationError for input that cannot
// be tokenized. Whitespace between tokens is skipped.
func (l *lexer) next() (Token, error) {
	l.skipSpace()
	if l.pos >= len(l.src) {
		return Token{Kind: EOF, Offset: l.pos}, nil
	}

	start := l.pos
	r, size := utf8.DecodeRuneInString(l.src[start:])

	switch {
	case r == utf8.RuneError && size == 1:
		return Token{}, newError(l.src, start, "invalid UTF-8 byte 0x%02X", l.src[start])
	case r == '$':
		return l.formula()
	case r == '@':
		return l.sigil(MentionToken, "mention name")
	case r == '#':
		return l.sigil(HashtagToken, "hashtag name")
	case r == '-':
		return l.single(Dash), nil
	case r == '*':
		return l.single(Star), nil
	case r == '_':
		return l.single(Underscore), nil
	case r == '~':
		return l.single(Tilde), nil
	case r == '/':
		if strings.HasPrefix(l.src[start:], "//") {
			l.pos += 2
			return Token{Kind: DoubleSlash, Text: "//", Offset: start}, nil
		}
		return Token{}, newError(l.src, start, `unexpected "/": alternate font is written //text//`)
	case l.atLink():
		return l.link(), nil
	case isEmoji(r):
		return l.emoji(), nil
	}

	return l.word()
}

func (l *lexer) skipSpace() {
	for l.pos < len(l.src) {
		r, size := utf8.DecodeRuneInString(l.src[l.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		l.pos += size
	}
}

func (l *lexer) single(kind Kind) Token {
	tok := Token{Kind: kind, Text: l.src[l.pos : l.pos+1], Offset: l.pos}
	l.pos++
	return tok
}

func (l *lexer) formula() (Token, error) {
	start := l.pos
	end := strings.IndexByte(l.src[start+1:], '$')
	if end < 0 {
		line, col := position(l.src, start)
		return Token{}, newError(l.src, len(l.src),
			`unterminated formula: "$" opened at line %d, column %d is never closed`, line, col)
	}
	if end == 0 {
		return Token{}, newError(l.src, start, "empty formula")
	}
	body := l.src[start+1 : start+1+end]
	l.pos = start + end + 2
	return Token{Kind: FormulaToken, Text: body, Offset: start}, nil
}

func (l *lexer) sigil(kind Kind, what string) (Token, error) {
	start := l.pos
	i := start + 1
	for i < len(l.src) && isNameByte(l.src[i]) {
		i++
	}
	if i == start+1 {
		return Token{}, newError(l.src, start, "%q must be followed by a %s", l.src[start:start+1], what)
	}
	l.pos = i
	return Token{Kind: kind, Text: l.src[start:i], Offset: start}, nil
}

func (l *lexer) atLink() bool {
	rest := l.src[l.pos:]
	for _, prefix := range linkPrefixes {
		if !strings.HasPrefix(rest, prefix) {
			continue
		}
		r, size := utf8.DecodeRuneInString(rest[len(prefix):])
		return size > 0 && !unicode.IsSpace(r)
	}
	return false
}

func (l *lexer) link() Token {
	start := l.pos
	for l.pos < len(l.src) {
		r, size := utf8.DecodeRuneInString(l.src[l.pos:])
		if unicode.IsSpace(r) {
			break
		}
		l.pos += size
	}
	return Token{Kind: LinkToken, Text: l.src[start:l.pos], Offset: start}
}

func (l *lexer) emoji() Token {
	start := l.pos
	_, size := utf8.DecodeRuneInString(l.src[l.pos:])
	l.pos += size
	if r, vs := utf8.DecodeRuneInString(l.src[l.pos:]); r == variationSelector16 {
		l.pos += vs
	}
	return Token{Kind: EmojiToken, Text: l.src[start:l.pos], Offset: start}
}

func (l *lexer) word() (Token, error) {
	start := l.pos
	for l.pos < len(l.src) {
		r, size := utf8.DecodeRuneInString(l.src[l.pos:])
		if !isWordRune(r, size) {
			break
		}
		l.pos += size
	}
	if l.pos == start {
		r, _ := utf8.DecodeRuneInString(l.src[start:])
		return Token{}, newError(l.src, start, "non-printable character %U", r)
	}

	text := l.src[start:l.pos]
	if isNumber(text) {
		return Token{Kind: NumberToken, Text: text, Offset: start}, nil
	}
	return Token{Kind: WordToken, Text: text, Offset: start}, nil
}

func isWordRune(r rune, size int) bool {
	if r == utf8.RuneError && size == 1 {
		return false
	}
	if unicode.IsSpace(r) || isEmoji(r) || !unicode.IsPrint(r) {
		return false
	}
	return !strings.ContainsRune(reserved, r)
}

func isNameByte(b byte) bool {
	return b == '_' || b >= '0' && b <= '9' || b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}

func isNumber(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}

// isEmoji covers misc symbols and dingbats, regional indicators and the
// pictograph blocks
func isEmoji(r rune) bool {
	return r >= 0x2600 && r <= 0x27BF ||
		r >= 0x1F1E0 && r <= 0x1F1FF ||
		r >= 0x1F300 && r <= 0x1FAFF
}
