package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ppiankov/postguard/internal/model"
	"github.com/ppiankov/postguard/internal/pipeline"
)

// ErrViolation is returned by check --fail-on-violation for flagged posts
var ErrViolation = errors.New("post violates content policy")

var (
	outputFormat    string
	outJSON         string
	outMD           string
	noCache         bool
	noColor         bool
	failOnViolation bool
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [post]",
	Short: "Analyze a single post",
	Long: `Check classifies a post, masks flagged words, validates its markup
and renders a preview. The post is read from the argument, or from stdin
when no argument is given.

Example:
  postguard check "Hello *world* #intro https://example.com"
  echo "you are stupid" | postguard check --output text
  postguard check "buy now" --json report.json --md report.md`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&outputFormat, "output", "o", "", "output format: json or text (default from config)")
	checkCmd.Flags().StringVar(&outJSON, "json", "", "also write the JSON analysis to this path")
	checkCmd.Flags().StringVar(&outMD, "md", "", "also write a Markdown summary to this path")
	checkCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the analysis cache")
	checkCmd.Flags().BoolVar(&noColor, "no-color", false, "disable styled text output")
	checkCmd.Flags().BoolVar(&failOnViolation, "fail-on-violation", false, "exit non-zero when the post is flagged")
}

func runCheck(cmd *cobra.Command, args []string) error {
	post, err := readPost(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if noCache {
		cfg.Cache.Enabled = false
	}
	if noColor {
		cfg.Output.Color = false
	}
	format := cfg.Output.Format
	if outputFormat != "" {
		format = outputFormat
	}

	p := pipeline.NewPipeline(cfg, pipeline.WithLogger(logger))
	analysis := p.Process(post)

	logger.Debug("checked post",
		zap.String("classification", analysis.Classification.Status),
		zap.String("validation", analysis.Validation.Status),
	)

	if outJSON != "" {
		if err := pipeline.WriteJSON(outJSON, analysis); err != nil {
			return fmt.Errorf("render failed: %w", err)
		}
	}
	if outMD != "" {
		if err := pipeline.WriteMarkdown(outMD, analysis); err != nil {
			return fmt.Errorf("render failed: %w", err)
		}
	}

	if err := writeAnalysis(cmd.OutOrStdout(), analysis, format, cfg.Output.Color); err != nil {
		return err
	}

	if failOnViolation && analysis.Violation() {
		return ErrViolation
	}
	return nil
}

// readPost takes the post from args or, failing that, from stdin.
// A single trailing newline from stdin is dropped.
func readPost(stdin io.Reader, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read post from stdin: %w", err)
	}
	post := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(post, "\r"), nil
}

func writeAnalysis(w io.Writer, a *model.Analysis, format string, color bool) error {
	switch format {
	case model.FormatJSON:
		data, err := pipeline.JSON(a)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case model.FormatText:
		return writeText(w, a, color)
	default:
		return fmt.Errorf("unknown output format %q (want json or text)", format)
	}
}

var (
	violationBadge = lipgloss.NewStyle().Bold(true).Padding(0, 1).
			Foreground(lipgloss.Color("15")).Background(lipgloss.Color("160"))
	safeBadge = lipgloss.NewStyle().Bold(true).Padding(0, 1).
			Foreground(lipgloss.Color("15")).Background(lipgloss.Color("28"))
	labelStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

func badge(status string, ok bool, color bool) string {
	if !color {
		return "[" + status + "]"
	}
	if ok {
		return safeBadge.Render(status)
	}
	return violationBadge.Render(status)
}

func label(s string, color bool) string {
	if !color {
		return s
	}
	return labelStyle.Render(s)
}

func writeText(w io.Writer, a *model.Analysis, color bool) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", label("Classification:", color),
		badge(a.Classification.Status, !a.Violation(), color))
	fmt.Fprintf(&b, "%s %s\n", label("Transformed:", color), a.Transformation.TransformedText)
	for _, s := range a.Transformation.Suggestions {
		line := "  • " + s
		if color {
			line = mutedStyle.Render(line)
		}
		fmt.Fprintln(&b, line)
	}

	fmt.Fprintf(&b, "%s %s\n", label("Validation:", color), badge(a.Validation.Status, a.Valid(), color))
	if a.Validation.Error != nil {
		fmt.Fprintf(&b, "  %s\n", *a.Validation.Error)
	}

	if a.Preview != nil {
		preview, err := renderPreview(*a.Preview, color)
		if err != nil {
			return err
		}
		fmt.Fprintf(&b, "%s\n%s", label("Preview:", color), preview)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// renderPreview renders the Markdown preview for the terminal
func renderPreview(markdown string, color bool) (string, error) {
	style := glamour.WithAutoStyle()
	if !color {
		style = glamour.WithStandardStyle("notty")
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(80))
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := r.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("render preview: %w", err)
	}
	return out, nil
}
