package classify

import "github.com/ppiankov/postguard/internal/extract"

// Report is the classification result for a single post
type Report struct {
	Hate      bool    `json:"hate"`
	Offensive bool    `json:"offensive"`
	Spam      bool    `json:"spam"`
	Details   Details `json:"details"`
}

// Details carries the diagnostics behind the flags
type Details struct {
	Tokens   []string         `json:"tokens"`
	Symbols  []extract.Symbol `json:"symbols"`
	Counts   Counts           `json:"counts"`
	Mentions []string         `json:"mentions,omitempty"`
	Emojis   []string         `json:"emojis,omitempty"`
}

// Counts holds the number of LINK and HASHTAG symbols
type Counts struct {
	Links    int `json:"links"`
	Hashtags int `json:"hashtags"`
}

// Violation reports whether any flag is set
func (r Report) Violation() bool {
	return r.Hate || r.Offensive || r.Spam
}

// Classifier runs the hate, offensive and spam automata over a post
type Classifier struct {
	preprocessor *extract.Preprocessor
	categorizer  *extract.Categorizer
	hate         *DFA
	offensive    *DFA
	spam         *DFA
}

// NewClassifier creates a classifier. tokenizer is an optional plug-in;
// nil selects whitespace tokenization.
func NewClassifier(keywords *extract.Keywords, tokenizer extract.Tokenizer) *Classifier {
	return &Classifier{
		preprocessor: extract.NewPreprocessor(tokenizer),
		categorizer:  extract.NewCategorizer(keywords),
		hate:         NewExistenceDFA(extract.Hate),
		offensive:    NewExistenceDFA(extract.Offensive),
		spam:         NewSpamDFA(),
	}
}

// Classify classifies a post. It never fails; empty input yields all-false
// flags and empty diagnostics.
func (c *Classifier) Classify(text string) Report {
	features := c.preprocessor.Preprocess(text)
	symbols := c.categorizer.CategorizeAll(features.Tokens)

	return Report{
		Hate:      c.hate.Run(symbols),
		Offensive: c.offensive.Run(symbols),
		Spam:      c.spam.Run(symbols),
		Details: Details{
			Tokens:   features.Tokens,
			Symbols:  symbols,
			Counts:   countSymbols(symbols),
			Mentions: features.Mentions,
			Emojis:   features.Emojis,
		},
	}
}

func countSymbols(symbols []extract.Symbol) Counts {
	var counts Counts
	for _, s := range symbols {
		switch s {
		case extract.Link:
			counts.Links++
		case extract.Hashtag:
			counts.Hashtags++
		}
	}
	return counts
}
