package extract

import (
	"regexp"
	"strings"
)

// emojiClass covers the pictographic ranges recognised as emoji
const emojiClass = `[\x{2600}-\x{27BF}\x{1F1E0}-\x{1F1FF}\x{1F300}-\x{1F5FF}\x{1F600}-\x{1F64F}\x{1F680}-\x{1F6FF}\x{1F900}-\x{1F9FF}\x{1FA70}-\x{1FAFF}]`

var (
	tokenPattern = regexp.MustCompile(`https?://\S+|@[\p{L}\p{N}_]+|#[\p{L}\p{N}_]+|` + emojiClass + `|\S+`)

	urlPattern     = regexp.MustCompile(`(?i)(?:https?://|www\.)\S+`)
	hashtagPattern = regexp.MustCompile(`(?:^|[^\p{L}\p{N}_])(#[\p{L}\p{N}_]+)`)
	mentionPattern = regexp.MustCompile(`(?:^|[^\p{L}\p{N}_])(@[\p{L}\p{N}_]+)`)
	emojiPattern   = regexp.MustCompile(emojiClass)
)

// Tokenizer splits normalized text into raw tokens
type Tokenizer interface {
	Tokenize(normalized string) []string
}

// WhitespaceTokenizer splits on whitespace. It is the default strategy.
type WhitespaceTokenizer struct{}

// Tokenize splits s on whitespace runs
func (WhitespaceTokenizer) Tokenize(s string) []string {
	return strings.Fields(s)
}

// PatternTokenizer splits text into URLs, mentions, hashtags, single emoji
// and remaining non-space runs, taking the first alternative that matches
type PatternTokenizer struct{}

// Tokenize returns the pattern matches of s in order
func (PatternTokenizer) Tokenize(s string) []string {
	return tokenPattern.FindAllString(s, -1)
}

// Features is the preprocessed form of a post
type Features struct {
	Normalized string   `json:"normalized"`
	Tokens     []string `json:"tokens"`
	Mentions   []string `json:"mentions"`
	Hashtags   []string `json:"hashtags"`
	URLs       []string `json:"urls"`
	Emojis     []string `json:"emojis"`
}

// Preprocessor normalizes and tokenizes posts. An optional plug-in tokenizer
// is tried first; when it is absent or yields nothing, the whitespace
// tokenizer is used instead.
type Preprocessor struct {
	plugin   Tokenizer
	fallback Tokenizer
}

// NewPreprocessor creates a preprocessor. plugin may be nil.
func NewPreprocessor(plugin Tokenizer) *Preprocessor {
	return &Preprocessor{
		plugin:   plugin,
		fallback: WhitespaceTokenizer{},
	}
}

// Tokenize normalizes text and splits it into tokens
func (p *Preprocessor) Tokenize(text string) []string {
	return p.tokens(Normalize(text))
}

func (p *Preprocessor) tokens(normalized string) []string {
	var tokens []string
	if p.plugin != nil {
		tokens = p.plugin.Tokenize(normalized)
	}
	if len(tokens) == 0 {
		tokens = p.fallback.Tokenize(normalized)
	}
	if tokens == nil {
		tokens = []string{}
	}
	return tokens
}

// Preprocess normalizes text, tokenizes it and extracts mentions, hashtags,
// URLs and emoji from the normalized form
func (p *Preprocessor) Preprocess(text string) Features {
	normalized := Normalize(text)
	return Features{
		Normalized: normalized,
		Tokens:     p.tokens(normalized),
		Mentions:   submatches(mentionPattern, normalized),
		Hashtags:   submatches(hashtagPattern, normalized),
		URLs:       matches(urlPattern, normalized),
		Emojis:     matches(emojiPattern, normalized),
	}
}

func matches(re *regexp.Regexp, s string) []string {
	found := re.FindAllString(s, -1)
	if found == nil {
		return []string{}
	}
	return found
}

// submatches returns the first capture group of every match
func submatches(re *regexp.Regexp, s string) []string {
	found := []string{}
	for _, m := range re.FindAllStringSubmatch(s, -1) {
		found = append(found, m[1])
	}
	return found
}
