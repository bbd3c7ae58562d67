package renderers

import (
	"context"
	"fmt"

	"github.com/sonnes/transformime/core"
	"github.com/sonnes/transformime/dom"
)

var _ core.Renderer = (*Text)(nil)

// Text renders text/plain as a <pre> block.
type Text struct{}

// NewText creates a text/plain renderer.
func NewText() *Text {
	return &Text{}
}

func (r *Text) MimeType() string { return "text/plain" }

// Transform never fails: payloads that are not text are formatted with %v.
func (r *Text) Transform(_ context.Context, data any, doc *dom.Document) (*dom.Element, error) {
	text, err := textPayload(r.MimeType(), data)
	if err != nil {
		text = fmt.Sprintf("%v", data)
	}
	pre := doc.CreateElement("pre")
	pre.SetAttribute("data-mimetype", r.MimeType())
	pre.TextContent = text
	return pre, nil
}
