package renderers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/sonnes/transformime/core"
	"github.com/sonnes/transformime/dom"
)

var _ core.Renderer = (*JSON)(nil)

// JSON renders application/json as indented, syntax-highlighted markup.
type JSON struct {
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

// NewJSON creates an application/json renderer highlighting with the named
// chroma style. Unknown styles fall back to chroma's default.
func NewJSON(style string) *JSON {
	return &JSON{
		style:     styles.Get(strings.ToLower(style)),
		formatter: chromahtml.New(chromahtml.WithClasses(false)), // inline styles, no stylesheet needed
	}
}

func (r *JSON) MimeType() string { return "application/json" }

// Transform accepts already-decoded values or a JSON document as text. A
// string that is not valid JSON is rendered as a JSON string value.
func (r *JSON) Transform(_ context.Context, data any, doc *dom.Document) (*dom.Element, error) {
	src, err := indentJSON(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.MimeType(), err)
	}

	highlighted, err := r.highlight(src)
	if err != nil {
		// Highlighting is cosmetic; keep the indented JSON.
		pre := doc.CreateElement("pre")
		pre.SetAttribute("data-mimetype", r.MimeType())
		pre.TextContent = src
		return pre, nil
	}

	div := doc.CreateElement("div")
	div.SetAttribute("data-mimetype", r.MimeType())
	div.SetAttribute("class", "json")
	div.InnerHTML = highlighted
	return div, nil
}

func (r *JSON) highlight(src string) (template.HTML, error) {
	lexer := lexers.Get("json")
	if lexer == nil {
		return "", fmt.Errorf("no json lexer")
	}
	it, err := lexer.Tokenise(nil, src)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := r.formatter.Format(&buf, r.style, it); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

func indentJSON(data any) (string, error) {
	var raw []byte
	switch v := data.(type) {
	case string:
		if !json.Valid([]byte(v)) {
			out, err := json.Marshal(v)
			if err != nil {
				return "", fmt.Errorf("marshal payload: %w", err)
			}
			return string(out), nil
		}
		raw = []byte(v)
	case []byte:
		raw = v
	case json.RawMessage:
		raw = v
	default:
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return "", fmt.Errorf("marshal payload: %w", err)
		}
		return string(out), nil
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return "", fmt.Errorf("invalid JSON text: %w", err)
	}
	return buf.String(), nil
}
