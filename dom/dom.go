// Package dom is the render target handed to renderers: a Document that
// creates Elements, and the Element tree that renderers produce.
//
// An Element carries escaped text content or trusted inner HTML, plus
// child elements, and serializes to HTML or JSON.
package dom

import (
	"encoding/json"
	"html/template"
	"maps"
	"slices"
	"strings"
)

// Document creates elements. Renderers receive a *Document as their render
// context and must build their output through it.
type Document struct {
	// Title is informational only; renderers may ignore it.
	Title string
}

// NewDocument returns an empty Document.
func NewDocument() *Document {
	return &Document{}
}

// CreateElement returns a new element with the given tag name, owned by d.
func (d *Document) CreateElement(tag string) *Element {
	return &Element{Tag: strings.ToLower(tag), owner: d}
}

// Element is a node in the output tree.
type Element struct {
	Tag   string
	Attrs map[string]string

	// TextContent is escaped on output.
	TextContent string
	// InnerHTML is emitted verbatim and takes precedence over TextContent.
	InnerHTML template.HTML

	Children []*Element

	owner *Document
}

// OwnerDocument returns the Document that created e.
func (e *Element) OwnerDocument() *Document {
	return e.owner
}

// SetAttribute sets an attribute value.
func (e *Element) SetAttribute(name, value string) {
	if e.Attrs == nil {
		e.Attrs = make(map[string]string)
	}
	e.Attrs[name] = value
}

// GetAttribute returns the attribute value, or "" when unset.
func (e *Element) GetAttribute(name string) string {
	return e.Attrs[name]
}

// AppendChild adds child as the last child of e and returns it.
func (e *Element) AppendChild(child *Element) *Element {
	e.Children = append(e.Children, child)
	return child
}

// voidTags never have content or closing tags.
var voidTags = map[string]bool{
	"br": true, "hr": true, "img": true, "input": true, "meta": true, "link": true,
}

// HTML serializes e and its subtree. Attributes are written in sorted order
// so output is deterministic.
func (e *Element) HTML() template.HTML {
	var b strings.Builder
	e.writeHTML(&b)
	return template.HTML(b.String())
}

func (e *Element) writeHTML(b *strings.Builder) {
	b.WriteString("<" + e.Tag)
	for _, name := range slices.Sorted(maps.Keys(e.Attrs)) {
		b.WriteString(" " + name + `="` + template.HTMLEscapeString(e.Attrs[name]) + `"`)
	}
	b.WriteString(">")
	if voidTags[e.Tag] {
		return
	}

	switch {
	case e.InnerHTML != "":
		b.WriteString(string(e.InnerHTML))
	case e.TextContent != "":
		b.WriteString(template.HTMLEscapeString(e.TextContent))
	}
	for _, c := range e.Children {
		c.writeHTML(b)
	}
	b.WriteString("</" + e.Tag + ">")
}

// Text returns the concatenated text content of e and its children, without
// markup. Inner HTML is returned as-is; callers that need plain text from
// it must strip tags themselves.
func (e *Element) Text() string {
	var b strings.Builder
	switch {
	case e.InnerHTML != "":
		b.WriteString(string(e.InnerHTML))
	case e.TextContent != "":
		b.WriteString(e.TextContent)
	}
	for _, c := range e.Children {
		b.WriteString(c.Text())
	}
	return b.String()
}

type jsonElement struct {
	Tag      string            `json:"tag"`
	Attrs    map[string]string `json:"attrs,omitempty"`
	Text     string            `json:"text,omitempty"`
	HTML     string            `json:"html,omitempty"`
	Children []*Element        `json:"children,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (e *Element) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonElement{
		Tag:      e.Tag,
		Attrs:    e.Attrs,
		Text:     e.TextContent,
		HTML:     string(e.InnerHTML),
		Children: e.Children,
	})
}
