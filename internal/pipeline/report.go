package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/ppiankov/postguard/internal/model"
)

// JSON encodes an analysis with two-space indentation
func JSON(a *model.Analysis) ([]byte, error) {
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal analysis: %w", err)
	}
	return data, nil
}

// Markdown renders a human-readable summary of an analysis
func Markdown(a *model.Analysis) string {
	var b strings.Builder
	report := a.Classification.Details

	b.WriteString("# Post analysis\n\n")
	fmt.Fprintf(&b, "**Classification:** %s\n\n", a.Classification.Status)

	var flags []string
	if report.Hate {
		flags = append(flags, "hate")
	}
	if report.Offensive {
		flags = append(flags, "offensive")
	}
	if report.Spam {
		flags = append(flags, "spam")
	}
	if len(flags) > 0 {
		fmt.Fprintf(&b, "Flags: %s\n\n", strings.Join(flags, ", "))
	}
	fmt.Fprintf(&b, "Links: %d, hashtags: %d\n\n", report.Details.Counts.Links, report.Details.Counts.Hashtags)

	b.WriteString("## Transformation\n\n")
	fmt.Fprintf(&b, "```\n%s\n```\n\n", a.Transformation.TransformedText)
	for _, s := range a.Transformation.Suggestions {
		fmt.Fprintf(&b, "- %s\n", s)
	}
	if len(a.Transformation.Suggestions) > 0 {
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "## Validation: %s\n\n", a.Validation.Status)
	if a.Validation.Error != nil {
		fmt.Fprintf(&b, "`%s`\n\n", *a.Validation.Error)
	}
	if a.Preview != nil {
		b.WriteString("## Preview\n\n")
		b.WriteString(*a.Preview)
		b.WriteString("\n")
	}

	return b.String()
}

// WriteJSON writes the JSON encoding of an analysis to path
func WriteJSON(path string, a *model.Analysis) error {
	data, err := JSON(a)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// WriteMarkdown writes the Markdown summary of an analysis to path
func WriteMarkdown(path string, a *model.Analysis) error {
	if err := os.WriteFile(path, []byte(Markdown(a)), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
