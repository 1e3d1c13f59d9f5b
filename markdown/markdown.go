// Package markdown converts post bodies to HTML with a fixed, ordered list of
// regex substitutions, and derives plain-text excerpts.
//
// The converter is not a structural parser. Each rule runs over the output of
// the previous one, so later rules see HTML produced by earlier ones and the
// order of Rules is part of the output format.
package markdown

import (
	"bytes"
	"context"
	"io"
	"regexp"
	"strings"

	"github.com/a-h/templ"
)

// Rule is a single substitution step of the converter.
type Rule struct {
	Name        string
	Pattern     *regexp.Regexp
	Replacement string
}

// Rules is the conversion pipeline in execution order.
var Rules = []Rule{
	// Headings match per line, most specific marker first.
	{"h3", regexp.MustCompile(`(?m)^### (.*)$`), "<h3>${1}</h3>"},
	{"h2", regexp.MustCompile(`(?m)^## (.*)$`), "<h2>${1}</h2>"},
	{"h1", regexp.MustCompile(`(?m)^# (.*)$`), "<h1>${1}</h1>"},
	// Greedy within a line: "**a** and **b**" becomes one strong span.
	{"strong", regexp.MustCompile(`\*\*(.*)\*\*`), "<strong>${1}</strong>"},
	{"em", regexp.MustCompile(`\*(.*)\*`), "<em>${1}</em>"},
	// Images before links; both share the [..](..) shape.
	{"img", regexp.MustCompile(`!\[([^\]]*)\]\(([^)]*)\)`), `<img alt="${1}" src="${2}" />`},
	{"a", regexp.MustCompile(`\[([^\]]*)\]\(([^)]*)\)`), `<a href="${2}">${1}</a>`},
	{"code", regexp.MustCompile("`([^`]*)`"), "<code>${1}</code>"},
	{"blockquote", regexp.MustCompile(`(?m)^> (.*)$`), "<blockquote>${1}</blockquote>"},
	{"paragraph-break", regexp.MustCompile(`\n\n`), "</p><p>"},
	{"paragraph", regexp.MustCompile(`(?m)^(.*)$`), "<p>${1}</p>"},
	{"empty-paragraph", regexp.MustCompile(`<p></p>`), ""},
	// Block tags produced above must not stay wrapped in <p>.
	{"unwrap-heading", regexp.MustCompile(`<p>(<h[1-6]>.*</h[1-6]>)</p>`), "${1}"},
	{"unwrap-blockquote", regexp.MustCompile(`<p>(<blockquote>.*</blockquote>)</p>`), "${1}"},
}

// Convert renders md to HTML by applying Rules in order.
func Convert(md string) string {
	out := strings.ReplaceAll(md, "\r\n", "\n")
	for _, r := range Rules {
		out = r.Pattern.ReplaceAllString(out, r.Replacement)
	}
	return out
}

// Markdown returns a templ.Component that renders md as HTML.
func Markdown(content string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		RenderMarkdown(&buf, content)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// RenderMarkdown writes the HTML representation of md to buf.
func RenderMarkdown(buf *bytes.Buffer, md string) {
	buf.WriteString(Convert(md))
}
