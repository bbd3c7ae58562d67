package core

import "reflect"

// Registry is an ordered list of renderers plus a fallback. Order encodes
// priority: the first renderer is the least rich, the last the richest.
//
// A Registry is immutable once built and safe for concurrent use.
type Registry struct {
	renderers []Renderer
	fallback  Renderer
}

// NewRegistry copies renderers, dropping nil entries, and pairs them with
// fallback. Interfaces holding nil pointers count as nil.
func NewRegistry(renderers []Renderer, fallback Renderer) *Registry {
	rs := make([]Renderer, 0, len(renderers))
	for _, r := range renderers {
		if !isNil(r) {
			rs = append(rs, r)
		}
	}
	if isNil(fallback) {
		fallback = nil
	}
	return &Registry{renderers: rs, fallback: fallback}
}

func isNil(r Renderer) bool {
	if r == nil {
		return true
	}
	v := reflect.ValueOf(r)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// GetRenderer returns the first renderer whose mimetype equals mimetype
// exactly, or nil if none match.
func (r *Registry) GetRenderer(mimetype string) Renderer {
	for _, rnd := range r.renderers {
		if rnd.MimeType() == mimetype {
			return rnd
		}
	}
	return nil
}

// Renderers returns a copy of the registered renderers in priority order.
func (r *Registry) Renderers() []Renderer {
	out := make([]Renderer, len(r.renderers))
	copy(out, r.renderers)
	return out
}

// Fallback returns the renderer used when a bundle has no registered
// mimetype.
func (r *Registry) Fallback() Renderer {
	return r.fallback
}

// MimeTypes lists registered mimetypes in priority order. Duplicates are
// kept so the result lines up with Renderers.
func (r *Registry) MimeTypes() []string {
	out := make([]string, len(r.renderers))
	for i, rnd := range r.renderers {
		out[i] = rnd.MimeType()
	}
	return out
}

// SelectRichest returns the mimetype of the highest-priority renderer that
// has a representation in b. Every renderer is checked, so a later match
// always replaces an earlier one. Bundle keys no renderer handles are
// ignored. ok is false when nothing in b is registered.
func (r *Registry) SelectRichest(b Bundle) (mimetype string, ok bool) {
	for _, rnd := range r.renderers {
		if mt := rnd.MimeType(); b.Has(mt) {
			mimetype, ok = mt, true
		}
	}
	return mimetype, ok
}
