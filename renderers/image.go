package renderers

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/sonnes/transformime/core"
	"github.com/sonnes/transformime/dom"
)

var _ core.Renderer = (*Image)(nil)

// Image renders a raster image as an <img> with a base64 data URI.
type Image struct {
	mimetype string
}

// NewImage creates a renderer for one raster image mimetype, e.g. image/png.
func NewImage(mimetype string) *Image {
	return &Image{mimetype: mimetype}
}

func (r *Image) MimeType() string { return r.mimetype }

// Transform accepts raw bytes, or base64 text as found in notebook bundles.
// Base64 text may contain line breaks.
func (r *Image) Transform(_ context.Context, data any, doc *dom.Document) (*dom.Element, error) {
	var encoded string
	switch v := data.(type) {
	case []byte:
		encoded = base64.StdEncoding.EncodeToString(v)
	default:
		text, err := textPayload(r.mimetype, data)
		if err != nil {
			return nil, err
		}
		encoded = strings.Join(strings.Fields(text), "")
		if _, err := base64.StdEncoding.DecodeString(encoded); err != nil {
			return nil, fmt.Errorf("%s: payload is not base64: %w", r.mimetype, err)
		}
	}
	if encoded == "" {
		return nil, fmt.Errorf("%s: empty image payload", r.mimetype)
	}

	img := doc.CreateElement("img")
	img.SetAttribute("data-mimetype", r.mimetype)
	img.SetAttribute("src", "data:"+r.mimetype+";base64,"+encoded)
	return img, nil
}
