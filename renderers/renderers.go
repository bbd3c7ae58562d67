// Package renderers provides the default renderer set and the default
// fallback renderer.
//
// The default set is ordered least rich first:
//
//	text/plain, application/json, text/markdown,
//	image/gif, image/jpeg, image/png, image/svg+xml, text/html
package renderers

import (
	"fmt"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2/styles"
	"github.com/sonnes/transformime/core"
)

// DefaultStyle is the chroma style used for highlighted output.
const DefaultStyle = "dracula"

// Options tunes the default renderer set.
type Options struct {
	// Style names a chroma style. Empty means DefaultStyle.
	Style string
}

func (o Options) style() string {
	if o.Style == "" {
		return DefaultStyle
	}
	return o.Style
}

// New builds a fresh default renderer set using opts.
func New(opts Options) []core.Renderer {
	return []core.Renderer{
		NewText(),
		NewJSON(opts.style()),
		NewMarkdown(opts.style()),
		NewImage("image/gif"),
		NewImage("image/jpeg"),
		NewImage("image/png"),
		NewSVG(),
		NewHTML(),
	}
}

var defaults = sync.OnceValue(func() []core.Renderer {
	return New(Options{})
})

var defaultFallback = sync.OnceValue(func() core.Renderer {
	return NewDefault()
})

// Defaults returns the process-wide default set. The renderers are shared;
// the slice is a fresh copy on every call.
func Defaults() []core.Renderer {
	d := defaults()
	out := make([]core.Renderer, len(d))
	copy(out, d)
	return out
}

// DefaultFallback returns the shared DefaultRenderer.
func DefaultFallback() core.Renderer {
	return defaultFallback()
}

// ValidStyle reports whether name is a registered chroma style.
func ValidStyle(name string) bool {
	_, ok := styles.Registry[strings.ToLower(name)]
	return ok
}

// Select picks renderers from set by mimetype, in the order given. Every
// mimetype must be present in set.
func Select(set []core.Renderer, mimetypes []string) ([]core.Renderer, error) {
	reg := core.NewRegistry(set, nil)
	out := make([]core.Renderer, 0, len(mimetypes))
	for _, mt := range mimetypes {
		r := reg.GetRenderer(mt)
		if r == nil {
			return nil, fmt.Errorf("no default renderer for mimetype %q", mt)
		}
		out = append(out, r)
	}
	return out, nil
}
