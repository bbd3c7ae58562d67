// Package transformime turns data, or a bundle of the same data in several
// MIME representations, into an output element by dispatching to the
// renderer registered for the chosen MIME type.
//
// Renderers are ordered least rich first. TransformRichest picks the
// richest representation a bundle offers that some renderer can handle.
// Every call returns a *core.Outcome, whether or not the renderer blocks.
package transformime

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/sonnes/transformime/core"
	"github.com/sonnes/transformime/dom"
	"github.com/sonnes/transformime/renderers"
)

// Config configures a Transformime. The zero value uses the default
// renderer set and fallback.
type Config struct {
	// Renderers in priority order, least rich first. Empty means
	// renderers.Defaults().
	Renderers []core.Renderer
	// Fallback renders bundles with no registered mimetype. Nil means
	// renderers.DefaultFallback().
	Fallback core.Renderer
	// Logger receives debug output. Nil means log.Default().
	Logger *log.Logger
}

// Transformime dispatches transforms to registered renderers. It is safe
// for concurrent use.
type Transformime struct {
	registry *core.Registry
	logger   *log.Logger
}

// New builds a Transformime from cfg.
func New(cfg Config) *Transformime {
	rs := cfg.Renderers
	if len(rs) == 0 {
		rs = renderers.Defaults()
	}
	fallback := cfg.Fallback
	if fallback == nil {
		fallback = renderers.DefaultFallback()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Transformime{
		registry: core.NewRegistry(rs, fallback),
		logger:   logger,
	}
}

// GetRenderer returns the first renderer registered for mimetype, or nil.
func (t *Transformime) GetRenderer(mimetype string) core.Renderer {
	return t.registry.GetRenderer(mimetype)
}

// Renderers returns the registered renderers in priority order.
func (t *Transformime) Renderers() []core.Renderer {
	return t.registry.Renderers()
}

// Fallback returns the fallback renderer.
func (t *Transformime) Fallback() core.Renderer {
	return t.registry.Fallback()
}

// Transform renders data with the renderer registered for mimetype. When
// none is registered the Outcome fails with a *core.NotFoundError. Errors
// from the renderer are returned unchanged.
func (t *Transformime) Transform(ctx context.Context, data any, mimetype string, doc *dom.Document) *core.Outcome {
	r := t.registry.GetRenderer(mimetype)
	if r == nil {
		t.logger.Debug("no renderer", "mimetype", mimetype)
		return core.Failed(&core.NotFoundError{MimeType: mimetype})
	}
	return t.invoke(ctx, r, data, doc)
}

// TransformRichest renders the richest representation in b. If b holds no
// registered mimetype, the fallback renderer receives the whole bundle.
func (t *Transformime) TransformRichest(ctx context.Context, b core.Bundle, doc *dom.Document) *core.Outcome {
	mimetype, ok := t.registry.SelectRichest(b)
	if !ok {
		t.logger.Debug("no registered mimetype in bundle, using fallback", "bundle", b.MimeTypes())
		return t.invoke(ctx, t.registry.Fallback(), b, doc)
	}
	t.logger.Debug("selected richest", "mimetype", mimetype, "bundle", b.MimeTypes())
	return t.Transform(ctx, b[mimetype], mimetype, doc)
}

func (t *Transformime) invoke(ctx context.Context, r core.Renderer, data any, doc *dom.Document) *core.Outcome {
	mimetype := r.MimeType()
	return core.Go(mimetype, func() (*dom.Element, error) {
		return r.Transform(ctx, data, doc)
	})
}
