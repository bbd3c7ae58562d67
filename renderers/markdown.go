package renderers

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	highlighting "github.com/yuin/goldmark-highlighting/v2"

	"github.com/sonnes/transformime/core"
	"github.com/sonnes/transformime/dom"
)

var _ core.Renderer = (*Markdown)(nil)

// Markdown renders text/markdown with GitHub-flavored extensions and
// highlighted code fences.
type Markdown struct {
	md goldmark.Markdown
}

// NewMarkdown creates a text/markdown renderer highlighting code fences with
// the named chroma style.
func NewMarkdown(style string) *Markdown {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle(style),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(false),
				),
			),
		),
		goldmark.WithRendererOptions(
			gmhtml.WithUnsafe(), // notebook markdown routinely embeds raw HTML
		),
	)
	return &Markdown{md: md}
}

func (r *Markdown) MimeType() string { return "text/markdown" }

func (r *Markdown) Transform(_ context.Context, data any, doc *dom.Document) (*dom.Element, error) {
	src, err := textPayload(r.MimeType(), data)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return nil, fmt.Errorf("goldmark convert: %w", err)
	}

	div := doc.CreateElement("div")
	div.SetAttribute("data-mimetype", r.MimeType())
	div.SetAttribute("class", "markdown")
	div.InnerHTML = template.HTML(buf.String())
	return div, nil
}
