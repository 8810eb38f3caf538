package extract

import "strings"

// Keywords holds the hate and offensive keyword sets.
// Entries are stored as cores (see Core), so membership is an exact match
// after stripping non-word characters and lower-casing.
type Keywords struct {
	hate      map[string]bool
	offensive map[string]bool
}

// NewKeywords builds keyword sets from the given lists. Blank entries are ignored.
func NewKeywords(hate, offensive []string) *Keywords {
	return &Keywords{
		hate:      buildSet(hate),
		offensive: buildSet(offensive),
	}
}

func buildSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		if core := Core(w); core != "" {
			set[core] = true
		}
	}
	return set
}

// IsHate reports whether core is a hate keyword
func (k *Keywords) IsHate(core string) bool {
	return k.hate[core]
}

// IsOffensive reports whether core is an offensive keyword
func (k *Keywords) IsOffensive(core string) bool {
	return k.offensive[core]
}

// Categorizer maps tokens to symbols
type Categorizer struct {
	keywords *Keywords
}

// NewCategorizer creates a categorizer over the given keyword sets
func NewCategorizer(keywords *Keywords) *Categorizer {
	if keywords == nil {
		keywords = NewKeywords(nil, nil)
	}
	return &Categorizer{keywords: keywords}
}

// Categorize returns the symbol for a single token.
// Links and hashtags are checked before keywords.
func (c *Categorizer) Categorize(token string) Symbol {
	lowered := lower(token)
	if strings.HasPrefix(lowered, "http") || strings.HasPrefix(lowered, "www.") {
		return Link
	}
	if strings.HasPrefix(lowered, "#") {
		return Hashtag
	}

	core := Core(lowered)
	if c.keywords.IsHate(core) {
		return Hate
	}
	if c.keywords.IsOffensive(core) {
		return Offensive
	}
	return Other
}

// CategorizeAll maps every token, preserving order
func (c *Categorizer) CategorizeAll(tokens []string) []Symbol {
	symbols := make([]Symbol, len(tokens))
	for i, t := range tokens {
		symbols[i] = c.Categorize(t)
	}
	return symbols
}
