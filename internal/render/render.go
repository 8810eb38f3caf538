package render

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/ppiankov/postguard/internal/grammar"
)

// Render turns a parsed post into a Markdown/HTML preview. It never fails.
func Render(post *grammar.Post) string {
	if post == nil {
		return ""
	}

	parts := make([]string, 0, len(post.Text))
	for _, part := range post.Text {
		parts = append(parts, renderPart(part))
	}

	var b strings.Builder
	b.WriteString(strings.Join(parts, " "))
	if len(post.Hashtags) > 0 {
		b.WriteString("\n\n**Hashtags:** ")
		b.WriteString(strings.Join(post.Hashtags, " "))
	}
	if len(post.Links) > 0 {
		b.WriteString("\n\n**Links:** ")
		b.WriteString(strings.Join(post.Links, " "))
	}
	return b.String()
}

func renderPart(part grammar.Part) string {
	r := &renderer{}
	part.Accept(r)
	return r.out
}

// renderer renders a single part into out
type renderer struct {
	out string
}

var _ grammar.Visitor = (*renderer)(nil)

func (r *renderer) VisitWord(w grammar.Word)       { r.out = w.Text }
func (r *renderer) VisitNumber(n grammar.Number)   { r.out = n.Text }
func (r *renderer) VisitMention(m grammar.Mention) { r.out = m.Text }
func (r *renderer) VisitEmoji(e grammar.Emoji)     { r.out = e.Text }

func (r *renderer) VisitItalic(i grammar.Italic) {
	r.out = "*" + plain(i.Content) + "*"
}

func (r *renderer) VisitBold(b grammar.Bold) {
	r.out = "**" + plain(b.Content) + "**"
}

func (r *renderer) VisitUnderline(u grammar.Underline) {
	r.out = "<u>" + plain(u.Content) + "</u>"
}

func (r *renderer) VisitAltFont(a grammar.AltFont) {
	r.out = "<span style='font-family:monospace'>" + plain(a.Content) + "</span>"
}

func (r *renderer) VisitUpsideDown(u grammar.UpsideDown) {
	r.out = UpsideDown(plain(u.Content))
}

func (r *renderer) VisitFormula(f grammar.Formula) {
	r.out = "$ " + html.EscapeString(f.Expr) + " $"
}

// plain renders inline items verbatim, separated by single spaces
func plain(items grammar.Inline) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, renderPart(item))
	}
	return strings.Join(parts, " ")
}
