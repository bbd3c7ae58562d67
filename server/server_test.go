package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sonnes/transformime/dom"
)

func testSections() []Section {
	doc := dom.NewDocument()
	pre := doc.CreateElement("pre")
	pre.SetAttribute("data-mimetype", "text/plain")
	pre.TextContent = "a < b"

	div := doc.CreateElement("div")
	div.SetAttribute("data-mimetype", "text/html")
	div.InnerHTML = "<table><tr><td>1</td></tr></table>"

	return []Section{
		{Label: "cell 1 · stream", MimeType: "text/plain", Element: pre},
		{Label: "cell 1 · execute_result", MimeType: "text/html", Element: div},
	}
}

func TestWritePage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePage(&buf, "demo <nb>", testSections()))

	out := buf.String()
	assert.Contains(t, out, "<title>demo &lt;nb&gt;</title>")
	assert.Contains(t, out, `<span class="badge">text/plain</span> cell 1 · stream`)
	assert.Contains(t, out, "a &lt; b</pre>")
	assert.Contains(t, out, "<table><tr><td>1</td></tr></table>")
}

func TestWritePageEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePage(&buf, "empty", nil))
	assert.Contains(t, buf.String(), "No outputs.")
}

func TestHandler(t *testing.T) {
	calls := 0
	s := &Server{
		Title: "demo",
		Source: func(ctx context.Context) ([]Section, error) {
			calls++
			return testSections(), nil
		},
	}
	h := s.Handler()

	t.Run("page", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Body.String(), "<h1>demo</h1>")
	})

	t.Run("json", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/outputs.json", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var got []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 2)
		assert.Equal(t, "text/html", got[1]["mimetype"])
	})

	t.Run("unknown path", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	assert.Equal(t, 2, calls)
}

func TestHandlerSourceError(t *testing.T) {
	s := &Server{
		Source: func(ctx context.Context) ([]Section, error) {
			return nil, errors.New("read demo.ipynb: no such file")
		},
	}

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "no such file")
}
