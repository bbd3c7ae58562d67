package renderers

import (
	"context"
	"html/template"

	"github.com/sonnes/transformime/core"
	"github.com/sonnes/transformime/dom"
)

var (
	_ core.Renderer = (*HTML)(nil)
	_ core.Renderer = (*SVG)(nil)
)

// HTML inserts text/html payloads verbatim. The payload is trusted.
type HTML struct{}

// NewHTML creates a text/html renderer.
func NewHTML() *HTML {
	return &HTML{}
}

func (r *HTML) MimeType() string { return "text/html" }

func (r *HTML) Transform(_ context.Context, data any, doc *dom.Document) (*dom.Element, error) {
	return rawMarkup(r.MimeType(), data, doc)
}

// SVG inserts image/svg+xml payloads inline.
type SVG struct{}

// NewSVG creates an image/svg+xml renderer.
func NewSVG() *SVG {
	return &SVG{}
}

func (r *SVG) MimeType() string { return "image/svg+xml" }

func (r *SVG) Transform(_ context.Context, data any, doc *dom.Document) (*dom.Element, error) {
	return rawMarkup(r.MimeType(), data, doc)
}

func rawMarkup(mimetype string, data any, doc *dom.Document) (*dom.Element, error) {
	src, err := textPayload(mimetype, data)
	if err != nil {
		return nil, err
	}
	div := doc.CreateElement("div")
	div.SetAttribute("data-mimetype", mimetype)
	div.InnerHTML = template.HTML(src)
	return div, nil
}
