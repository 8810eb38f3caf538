package transform

import (
	"strings"

	"github.com/ppiankov/postguard/internal/classify"
	"github.com/ppiankov/postguard/internal/extract"
)

// Mask replaces every hate or offensive token
const Mask = "***"

// Suggestion messages, emitted in this order
const (
	SuggestHate      = "Warning: hate speech detected."
	SuggestOffensive = "Warning: offensive language detected."
	SuggestSpam      = "Notice: looks like spam (too many links/hashtags)."
)

// Result is the output of the masking transducer
type Result struct {
	TransformedText string           `json:"transformed_text"`
	MaskedTokens    []string         `json:"masked_tokens"`
	Suggestions     []string         `json:"suggestions"`
	Categories      []extract.Symbol `json:"categories"`
	OriginalTokens  []string         `json:"original_tokens"`
}

// Transformer masks flagged tokens and produces suggestions.
// It shares the classifier's tokenization and categorization, so a token is
// masked exactly when the classifier saw it as hate or offensive.
type Transformer struct {
	classifier *classify.Classifier
}

// NewTransformer creates a transformer on top of classifier
func NewTransformer(classifier *classify.Classifier) *Transformer {
	return &Transformer{classifier: classifier}
}

// Transform never fails; empty input yields empty text and empty lists
func (t *Transformer) Transform(text string) Result {
	report := t.classifier.Classify(text)
	tokens := report.Details.Tokens
	symbols := report.Details.Symbols

	out := make([]string, len(tokens))
	masked := make([]string, 0)
	for i, tok := range tokens {
		switch symbols[i] {
		case extract.Hate, extract.Offensive:
			out[i] = Mask
			masked = append(masked, strings.ToLower(tok))
		default:
			out[i] = tok
		}
	}

	return Result{
		TransformedText: strings.Join(out, " "),
		MaskedTokens:    masked,
		Suggestions:     suggestions(report),
		Categories:      symbols,
		OriginalTokens:  tokens,
	}
}

func suggestions(r classify.Report) []string {
	out := make([]string, 0, 3)
	if r.Hate {
		out = append(out, SuggestHate)
	}
	if r.Offensive {
		out = append(out, SuggestOffensive)
	}
	if r.Spam {
		out = append(out, SuggestSpam)
	}
	return out
}
