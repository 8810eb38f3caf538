package model

import (
	"github.com/ppiankov/postguard/internal/classify"
	"github.com/ppiankov/postguard/internal/transform"
)

// Classification and validation statuses
const (
	StatusViolation = "Violation"
	StatusSafe      = "Safe"
	StatusValid     = "Valid"
	StatusInvalid   = "Invalid"
)

// Analysis is the aggregated result for one post
type Analysis struct {
	OriginalPost   string           `json:"original_post"`
	Classification Classification   `json:"classification"`
	Transformation transform.Result `json:"transformation"`
	Validation     Validation       `json:"validation"`
	Preview        *string          `json:"preview"` // nil when the post is invalid
}

// Classification wraps the classifier report with a summary status
type Classification struct {
	Status  string          `json:"status"` // "Violation" or "Safe"
	Details classify.Report `json:"details"`
}

// Validation reports the grammar check
type Validation struct {
	Status string  `json:"status"` // "Valid" or "Invalid"
	Error  *string `json:"error"`
	Line   int     `json:"line,omitempty"`
	Column int     `json:"column,omitempty"`
}

// Violation reports whether the classifier flagged the post
func (a *Analysis) Violation() bool {
	return a.Classification.Status == StatusViolation
}

// Valid reports whether the post passed the grammar check
func (a *Analysis) Valid() bool {
	return a.Validation.Status == StatusValid
}
