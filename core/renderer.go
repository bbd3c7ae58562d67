// Package core defines the renderer contract, MIME bundles, the ordered
// renderer registry and the asynchronous Outcome returned by dispatch.
package core

import (
	"context"

	"github.com/sonnes/transformime/dom"
)

// Renderer turns data of exactly one MIME type into an output element.
//
// Transform may block; the dispatcher always calls it off the caller's
// goroutine. The ctx is passed through untouched.
type Renderer interface {
	MimeType() string
	Transform(ctx context.Context, data any, doc *dom.Document) (*dom.Element, error)
}

// TransformFunc is the signature of Renderer.Transform.
type TransformFunc func(ctx context.Context, data any, doc *dom.Document) (*dom.Element, error)

type funcRenderer struct {
	mimetype string
	fn       TransformFunc
}

// RendererFunc adapts fn into a Renderer for mimetype.
func RendererFunc(mimetype string, fn TransformFunc) Renderer {
	return &funcRenderer{mimetype: mimetype, fn: fn}
}

func (r *funcRenderer) MimeType() string { return r.mimetype }

func (r *funcRenderer) Transform(ctx context.Context, data any, doc *dom.Document) (*dom.Element, error) {
	return r.fn(ctx, data, doc)
}
