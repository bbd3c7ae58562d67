package core

import (
	"maps"
	"slices"
)

// Bundle holds alternative representations of one result, keyed by MIME
// type. Payload shape is renderer-defined.
type Bundle map[string]any

// Has reports whether the bundle carries a representation for mimetype.
func (b Bundle) Has(mimetype string) bool {
	_, ok := b[mimetype]
	return ok
}

// MimeTypes returns the bundle keys in sorted order.
func (b Bundle) MimeTypes() []string {
	return slices.Sorted(maps.Keys(b))
}
