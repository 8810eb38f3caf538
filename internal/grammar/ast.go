package grammar

// Post is a parsed post: body text followed by the optional trailing
// hashtag and link groups.
type Post struct {
	Text     []Part
	Hashtags HashtagList
	Links    LinkList
}

// HashtagList holds trailing hashtags including the leading '#'
type HashtagList []string

// LinkList holds trailing links verbatim
type LinkList []string

// Part is one element of the post body. The set of implementations is
// closed; Visitor has one method per kind.
type Part interface {
	Accept(v Visitor)
	part()
}

// InlineItem is a Part allowed inside an enhancement
type InlineItem interface {
	Part
	inlineItem()
}

// Inline is the content of an enhancement
type Inline []InlineItem

// Visitor is implemented by anything that walks a post body. Adding a part
// kind adds a method here, so every visitor must handle it to compile.
type Visitor interface {
	VisitWord(Word)
	VisitNumber(Number)
	VisitMention(Mention)
	VisitEmoji(Emoji)
	VisitItalic(Italic)
	VisitBold(Bold)
	VisitUnderline(Underline)
	VisitAltFont(AltFont)
	VisitUpsideDown(UpsideDown)
	VisitFormula(Formula)
}

type Word struct{ Text string }
type Number struct{ Text string }

// Mention includes the leading '@'
type Mention struct{ Text string }

// Emoji includes a trailing variation selector when present
type Emoji struct{ Text string }

type Italic struct{ Content Inline }
type Bold struct{ Content Inline }
type Underline struct{ Content Inline }
type AltFont struct{ Content Inline }
type UpsideDown struct{ Content Inline }

// Formula holds the raw expression between the dollar signs
type Formula struct{ Expr string }

func (w Word) Accept(v Visitor)       { v.VisitWord(w) }
func (n Number) Accept(v Visitor)     { v.VisitNumber(n) }
func (m Mention) Accept(v Visitor)    { v.VisitMention(m) }
func (e Emoji) Accept(v Visitor)      { v.VisitEmoji(e) }
func (i Italic) Accept(v Visitor)     { v.VisitItalic(i) }
func (b Bold) Accept(v Visitor)       { v.VisitBold(b) }
func (u Underline) Accept(v Visitor)  { v.VisitUnderline(u) }
func (a AltFont) Accept(v Visitor)    { v.VisitAltFont(a) }
func (u UpsideDown) Accept(v Visitor) { v.VisitUpsideDown(u) }
func (f Formula) Accept(v Visitor)    { v.VisitFormula(f) }

func (Word) part()       {}
func (Number) part()     {}
func (Mention) part()    {}
func (Emoji) part()      {}
func (Italic) part()     {}
func (Bold) part()       {}
func (Underline) part()  {}
func (AltFont) part()    {}
func (UpsideDown) part() {}
func (Formula) part()    {}

func (Word) inlineItem()    {}
func (Number) inlineItem()  {}
func (Mention) inlineItem() {}
func (Emoji) inlineItem()   {}
