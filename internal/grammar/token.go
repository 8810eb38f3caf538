package grammar

// Kind identifies a lexical token
type Kind int

const (
	EOF Kind = iota
	WordToken
	NumberToken
	MentionToken
	HashtagToken
	LinkToken
	EmojiToken
	FormulaToken
	Dash        // -
	Star        // *
	Underscore  // _
	DoubleSlash // //
	Tilde       // ~
)

var kindNames = [...]string{
	EOF:          "end of input",
	WordToken:    "word",
	NumberToken:  "number",
	MentionToken: "mention",
	HashtagToken: "hashtag",
	LinkToken:    "link",
	EmojiToken:   "emoji",
	FormulaToken: "formula",
	Dash:         `"-"`,
	Star:         `"*"`,
	Underscore:   `"_"`,
	DoubleSlash:  `"//"`,
	Tilde:        `"~"`,
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// enhancementNames maps an opening delimiter to the enhancement it starts
var enhancementNames = map[Kind]string{
	Dash:         "italic",
	Star:         "bold",
	Underscore:   "underline",
	DoubleSlash:  "alternate font",
	Tilde:        "upside-down",
	FormulaToken: "formula",
}

func (k Kind) isDelimiter() bool {
	switch k {
	case Dash, Star, Underscore, DoubleSlash, Tilde:
		return true
	}
	return false
}

// Token is a lexeme with its byte offset. For formulas Text is the raw
// expression between the dollar signs.
type Token struct {
	Kind   Kind
	Text   string
	Offset int
}
