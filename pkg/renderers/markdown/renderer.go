// Package markdown renders a feature list as Markdown, suitable for README
// files and llms.txt style summaries.
package markdown

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-featuregrid/pkg/feature"
	"github.com/goliatone/go-featuregrid/pkg/render"
)

// Name is the registry name of the Markdown renderer.
const Name = "markdown"

type Option func(*Renderer)

// WithIconBaseURL emits an image line per card, pointing at base + "/" + ref.
func WithIconBaseURL(base string) Option {
	return func(r *Renderer) {
		r.iconBase = strings.TrimRight(strings.TrimSpace(base), "/")
	}
}

// Renderer writes one heading and paragraph per descriptor, in order.
type Renderer struct {
	iconBase string
	strip    *bluemonday.Policy
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the renderer.
func New(options ...Option) *Renderer {
	r := &Renderer{strip: bluemonday.StrictPolicy()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/markdown; charset=utf-8"
}

// Render emits "### Title\n\nDescription\n\n" per descriptor. Heading level
// follows options.HeadingLevel; a blank description leaves only the heading.
func (r *Renderer) Render(ctx context.Context, list feature.List, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	marker := strings.Repeat("#", int(options.HeadingLevel.Normalize()))
	var buf bytes.Buffer
	for _, d := range list.Each() {
		title := escapeText(strings.TrimSpace(d.Title))
		fmt.Fprintf(&buf, "%s %s\n\n", marker, title)
		if r.iconBase != "" && !d.Icon.Empty() {
			fmt.Fprintf(&buf, "![%s](%s/%s)\n\n", title, r.iconBase, d.Icon.String())
		}
		if text := r.plainText(d.Description); text != "" {
			buf.WriteString(text)
			buf.WriteString("\n\n")
		}
	}
	return buf.Bytes(), nil
}

// markdownEscaper backslash-escapes characters that would otherwise turn a
// title into emphasis, code, links, HTML or a closing heading sequence.
var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	"*", `\*`,
	"_", `\_`,
	"#", `\#`,
	"[", `\[`,
	"]", `\]`,
	"<", `\<`,
	">", `\>`,
	"|", `\|`,
)

func escapeText(s string) string {
	return markdownEscaper.Replace(s)
}

func (r *Renderer) plainText(markup string) string {
	stripped := r.strip.Sanitize(strings.TrimSpace(markup))
	return strings.TrimSpace(html.UnescapeString(stripped))
}
