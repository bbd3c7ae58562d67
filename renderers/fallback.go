package renderers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sonnes/transformime/core"
	"github.com/sonnes/transformime/dom"
)

var _ core.Renderer = (*DefaultRenderer)(nil)

// DefaultMimeType identifies DefaultRenderer. Nothing is expected to carry
// it; the renderer is reached through the fallback path.
const DefaultMimeType = "transformime/default"

// DefaultRenderer renders any payload as preformatted text. It is the
// default fallback and, for a bundle with no renderable representation,
// receives the whole bundle.
type DefaultRenderer struct{}

// NewDefault creates a DefaultRenderer.
func NewDefault() *DefaultRenderer {
	return &DefaultRenderer{}
}

func (r *DefaultRenderer) MimeType() string { return DefaultMimeType }

// Transform writes strings verbatim and anything else as indented JSON.
func (r *DefaultRenderer) Transform(_ context.Context, data any, doc *dom.Document) (*dom.Element, error) {
	pre := doc.CreateElement("pre")
	pre.SetAttribute("data-mimetype", r.MimeType())

	switch v := data.(type) {
	case nil:
	case string:
		pre.TextContent = v
	default:
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			pre.TextContent = fmt.Sprintf("%v", v)
		} else {
			pre.TextContent = string(out)
		}
	}
	return pre, nil
}
