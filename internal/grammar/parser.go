package grammar

import "strings"

// Parse validates text against the post grammar and returns its AST.
// Any returned error is a *ValidationError; the same input always yields
// the same message and position.
func Parse(text string) (*Post, error) {
	if strings.TrimSpace(text) == "" {
		return nil, newError(text, 0, "empty post")
	}

	p := &parser{src: text, lex: newLexer(text)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p.parsePost()
}

// parser is a recursive-descent parser with one token of lookahead
type parser struct {
	src string
	lex *lexer
	tok Token
}

func (p *parser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *parser) errorf(offset int, format string, args ...any) error {
	return newError(p.src, offset, format, args...)
}

func (p *parser) parsePost() (*Post, error) {
	parts, err := p.parseText()
	if err != nil {
		return nil, err
	}
	post := &Post{Text: parts}

	for p.tok.Kind == HashtagToken {
		post.Hashtags = append(post.Hashtags, p.tok.Text)
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	for p.tok.Kind == LinkToken {
		post.Links = append(post.Links, p.tok.Text)
		if err := p.advance(); err != nil {
			return nil, err
		}
	}

	switch p.tok.Kind {
	case EOF:
		return post, nil
	case HashtagToken:
		return nil, p.errorf(p.tok.Offset, "hashtag %s after links: hashtags must come before links", p.tok.Text)
	default:
		return nil, p.errorf(p.tok.Offset, "%s after the trailing hashtags and links", p.tok.Kind)
	}
}

func (p *parser) parseText() ([]Part, error) {
	if p.tok.Kind == HashtagToken || p.tok.Kind == LinkToken {
		return nil, p.errorf(p.tok.Offset, "post must start with text, found %s", p.tok.Kind)
	}

	var parts []Part
	for p.tok.Kind != EOF && p.tok.Kind != HashtagToken && p.tok.Kind != LinkToken {
		part, err := p.parsePart()
		if err != nil {
			return nil, err
		}
		parts = append(parts, part)
	}
	return parts, nil
}

func (p *parser) parsePart() (Part, error) {
	tok := p.tok
	if tok.Kind.isDelimiter() {
		return p.parseEnhancement()
	}

	var part Part
	switch tok.Kind {
	case FormulaToken:
		part = Formula{Expr: tok.Text}
	default:
		item, ok := leaf(tok)
		if !ok {
			return nil, p.errorf(tok.Offset, "unexpected %s", tok.Kind)
		}
		part = item
	}

	if err := p.advance(); err != nil {
		return nil, err
	}
	return part, nil
}

// leaf converts a word, number, mention or emoji token into an inline item
func leaf(tok Token) (InlineItem, bool) {
	switch tok.Kind {
	case WordToken:
		return Word{Text: tok.Text}, true
	case NumberToken:
		return Number{Text: tok.Text}, true
	case MentionToken:
		return Mention{Text: tok.Text}, true
	case EmojiToken:
		return Emoji{Text: tok.Text}, true
	}
	return nil, false
}

func (p *parser) parseEnhancement() (Part, error) {
	open := p.tok
	name := enhancementNames[open.Kind]
	if err := p.advance(); err != nil {
		return nil, err
	}

	var content Inline
	for {
		tok := p.tok
		if item, ok := leaf(tok); ok {
			content = append(content, item)
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}

		switch {
		case tok.Kind == open.Kind:
			if len(content) == 0 {
				return nil, p.errorf(open.Offset, "empty %s", name)
			}
			if err := p.advance(); err != nil {
				return nil, err
			}
			return enhancement(open.Kind, content), nil
		case tok.Kind == EOF:
			line, col := position(p.src, open.Offset)
			return nil, p.errorf(tok.Offset, "unterminated %s: %s opened at line %d, column %d is never closed",
				name, open.Kind, line, col)
		case tok.Kind.isDelimiter() || tok.Kind == FormulaToken:
			return nil, p.errorf(tok.Offset, "nested enhancement: %s inside %s is not allowed",
				enhancementNames[tok.Kind], name)
		default:
			return nil, p.errorf(tok.Offset, "%s inside %s: hashtags and links belong at the end of the post",
				tok.Kind, name)
		}
	}
}

func enhancement(kind Kind, content Inline) Part {
	switch kind {
	case Dash:
		return Italic{Content: content}
	case Star:
		return Bold{Content: content}
	case Underscore:
		return Underline{Content: content}
	case DoubleSlash:
		return AltFont{Content: content}
	default:
		return UpsideDown{Content: content}
	}
}
