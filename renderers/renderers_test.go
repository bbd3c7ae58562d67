package renderers

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/sonnes/transformime/core"
	"github.com/sonnes/transformime/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsOrder(t *testing.T) {
	reg := core.NewRegistry(Defaults(), DefaultFallback())
	assert.Equal(t, []string{
		"text/plain",
		"application/json",
		"text/markdown",
		"image/gif",
		"image/jpeg",
		"image/png",
		"image/svg+xml",
		"text/html",
	}, reg.MimeTypes())
}

func TestDefaultsShared(t *testing.T) {
	a, b := Defaults(), Defaults()
	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Same(t, a[i], b[i], "renderer %d should be built once", i)
	}

	a[0] = nil
	assert.NotNil(t, Defaults()[0], "callers must not be able to mutate the default set")

	assert.Same(t, DefaultFallback(), DefaultFallback())
	assert.IsType(t, &DefaultRenderer{}, DefaultFallback())
}

func TestSelect(t *testing.T) {
	set := Defaults()

	got, err := Select(set, []string{"text/html", "text/plain"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "text/html", got[0].MimeType())
	assert.Equal(t, "text/plain", got[1].MimeType())

	_, err = Select(set, []string{"video/mp4"})
	assert.ErrorContains(t, err, `"video/mp4"`)
}

func TestValidStyle(t *testing.T) {
	assert.True(t, ValidStyle("dracula"))
	assert.True(t, ValidStyle("Monokai"))
	assert.False(t, ValidStyle("no-such-style"))
}

func TestText(t *testing.T) {
	doc := dom.NewDocument()
	r := NewText()

	tests := []struct {
		name string
		data any
		want string
	}{
		{"string", "hello <world>", "hello <world>"},
		{"bytes", []byte("raw"), "raw"},
		{"nbformat lines", []any{"line 1\n", "line 2"}, "line 1\nline 2"},
		{"string lines", []string{"a\n", "b"}, "a\nb"},
		{"number", 42, "42"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el, err := r.Transform(context.Background(), tt.data, doc)
			require.NoError(t, err)
			assert.Equal(t, "pre", el.Tag)
			assert.Equal(t, tt.want, el.TextContent)
			assert.Equal(t, "text/plain", el.GetAttribute("data-mimetype"))
		})
	}

	el, err := r.Transform(context.Background(), "<b>", doc)
	require.NoError(t, err)
	assert.Contains(t, string(el.HTML()), "&lt;b&gt;")
}

func TestJSON(t *testing.T) {
	doc := dom.NewDocument()
	r := NewJSON(DefaultStyle)

	t.Run("decoded value", func(t *testing.T) {
		el, err := r.Transform(context.Background(), map[string]any{"answer": 42}, doc)
		require.NoError(t, err)
		assert.Equal(t, "div", el.Tag)
		html := string(el.HTML())
		assert.Contains(t, html, "answer")
		assert.Contains(t, html, "42")
		assert.Contains(t, html, "style=", "inline chroma styles")
	})

	t.Run("json text", func(t *testing.T) {
		el, err := r.Transform(context.Background(), `{"a":[1,2]}`, doc)
		require.NoError(t, err)
		text := el.Text()
		assert.Contains(t, text, "1")
		assert.Contains(t, text, "2")
		assert.Contains(t, text, "\n", "payload is re-indented")
	})

	t.Run("invalid json bytes", func(t *testing.T) {
		_, err := r.Transform(context.Background(), []byte(`{"a":`), doc)
		assert.ErrorContains(t, err, "application/json")
	})

	t.Run("unmarshalable value", func(t *testing.T) {
		_, err := r.Transform(context.Background(), map[string]any{"ch": make(chan int)}, doc)
		assert.Error(t, err)
	})
}

func TestIndentJSON(t *testing.T) {
	tests := []struct {
		name string
		data any
		want string
	}{
		{name: "json text", data: `{"a":1}`, want: "{\n  \"a\": 1\n}"},
		{name: "decoded slice", data: []int{1}, want: "[\n  1\n]"},
		{name: "scalar string", data: "hello", want: `"hello"`},
		{name: "partial json string", data: `{"a":`, want: `"{\"a\":"`},
		{name: "numeric string", data: "42", want: "42"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := indentJSON(tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJSONScalarStringPayload(t *testing.T) {
	var b map[string]any
	require.NoError(t, json.Unmarshal([]byte(`{"application/json": "hello"}`), &b))

	el, err := NewJSON(DefaultStyle).Transform(context.Background(), b["application/json"], dom.NewDocument())
	require.NoError(t, err)
	assert.Contains(t, el.Text(), "hello")
}

func TestMarkdown(t *testing.T) {
	doc := dom.NewDocument()
	r := NewMarkdown(DefaultStyle)

	tests := []struct {
		name     string
		data     any
		contains []string
	}{
		{
			name:     "bold text",
			data:     "Hello **world**",
			contains: []string{"<strong>world</strong>"},
		},
		{
			name:     "code fence",
			data:     "```go\nfmt.Println(\"hi\")\n```",
			contains: []string{"<pre", "Println"},
		},
		{
			name:     "gfm table",
			data:     "| a | b |\n|---|---|\n| 1 | 2 |",
			contains: []string{"<table>", "<td>1</td>"},
		},
		{
			name:     "nbformat lines",
			data:     []any{"# Title\n", "\n", "body"},
			contains: []string{"<h1>Title</h1>", "<p>body</p>"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el, err := r.Transform(context.Background(), tt.data, doc)
			require.NoError(t, err)
			assert.Equal(t, "markdown", el.GetAttribute("class"))
			for _, s := range tt.contains {
				assert.Contains(t, string(el.InnerHTML), s)
			}
		})
	}

	_, err := r.Transform(context.Background(), 3.14, doc)
	assert.ErrorContains(t, err, "unsupported payload type float64")
}

func TestImage(t *testing.T) {
	doc := dom.NewDocument()
	r := NewImage("image/png")
	pixel := []byte{0x89, 'P', 'N', 'G'}
	encoded := base64.StdEncoding.EncodeToString(pixel)

	t.Run("base64 text", func(t *testing.T) {
		el, err := r.Transform(context.Background(), encoded+"\n", doc)
		require.NoError(t, err)
		assert.Equal(t, "img", el.Tag)
		assert.Equal(t, "data:image/png;base64,"+encoded, el.GetAttribute("src"))
	})

	t.Run("raw bytes", func(t *testing.T) {
		el, err := r.Transform(context.Background(), pixel, doc)
		require.NoError(t, err)
		assert.Equal(t, "data:image/png;base64,"+encoded, el.GetAttribute("src"))
	})

	t.Run("not base64", func(t *testing.T) {
		_, err := r.Transform(context.Background(), "not base64!", doc)
		assert.ErrorContains(t, err, "not base64")
	})

	t.Run("empty", func(t *testing.T) {
		_, err := r.Transform(context.Background(), "", doc)
		assert.ErrorContains(t, err, "empty image payload")
	})
}

func TestRawMarkup(t *testing.T) {
	doc := dom.NewDocument()

	el, err := NewHTML().Transform(context.Background(), "<b>bold</b>", doc)
	require.NoError(t, err)
	assert.Equal(t, `<div data-mimetype="text/html"><b>bold</b></div>`, string(el.HTML()))

	el, err = NewSVG().Transform(context.Background(), `<svg><circle r="1"/></svg>`, doc)
	require.NoError(t, err)
	assert.Contains(t, string(el.HTML()), `<svg><circle r="1"/></svg>`)

	_, err = NewHTML().Transform(context.Background(), 7, doc)
	assert.Error(t, err)
}

func TestDefaultRenderer(t *testing.T) {
	doc := dom.NewDocument()
	r := NewDefault()
	assert.Equal(t, DefaultMimeType, r.MimeType())

	tests := []struct {
		name string
		data any
		want string
	}{
		{"string", "plain", "plain"},
		{"nil", nil, ""},
		{"bundle", core.Bundle{"video/quicktime": "cat vid"}, "{\n  \"video/quicktime\": \"cat vid\"\n}"},
		{"unmarshalable", make(chan int), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el, err := r.Transform(context.Background(), tt.data, doc)
			require.NoError(t, err)
			assert.Equal(t, "pre", el.Tag)
			if tt.name == "unmarshalable" {
				assert.NotEmpty(t, el.TextContent)
				return
			}
			assert.Equal(t, tt.want, el.TextContent)
		})
	}
}
