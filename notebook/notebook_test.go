package notebook

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sonnes/transformime/core"
)

func TestReadNotebook(t *testing.T) {
	outputs, err := ReadFile(filepath.Join("testdata", "simple.ipynb"))
	require.NoError(t, err)
	require.Len(t, outputs, 3, "empty display_data is skipped")

	t.Run("stream", func(t *testing.T) {
		o := outputs[0]
		assert.Equal(t, 1, o.Cell)
		assert.Equal(t, "stream", o.Type)
		assert.Equal(t, core.Bundle{"text/plain": "hi\nthere\n"}, o.Bundle)
	})

	t.Run("execute_result keeps every representation", func(t *testing.T) {
		o := outputs[1]
		assert.Equal(t, "execute_result", o.Type)
		assert.Equal(t, []string{"text/html", "text/plain"}, o.Bundle.MimeTypes())
		assert.Equal(t, []any{"   a\n", "0  1"}, o.Bundle["text/plain"])
	})

	t.Run("error", func(t *testing.T) {
		o := outputs[2]
		assert.Equal(t, 2, o.Cell)
		assert.Equal(t, "error", o.Type)
		text, ok := o.Bundle["text/plain"].(string)
		require.True(t, ok)
		assert.Contains(t, text, "ZeroDivisionError: division by zero")
		assert.Contains(t, text, "Traceback (most recent call last)")
	})
}

func TestReadBundles(t *testing.T) {
	outputs, err := ReadFile(filepath.Join("testdata", "bundles.json"))
	require.NoError(t, err)
	require.Len(t, outputs, 2)

	assert.Equal(t, -1, outputs[0].Cell)
	assert.Equal(t, "bundle", outputs[0].Type)
	assert.Equal(t, "**rich**", outputs[0].Bundle["text/markdown"])
	assert.True(t, outputs[1].Bundle.Has("application/zip"))
}

func TestParseSingleBundle(t *testing.T) {
	outputs, err := ParseBundles([]byte(`  {"text/plain": "x"}`))
	require.NoError(t, err)
	require.Len(t, outputs, 1)
	assert.Equal(t, core.Bundle{"text/plain": "x"}, outputs[0].Bundle)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		run  func() error
		want string
	}{
		{
			name: "bad notebook json",
			run:  func() error { _, err := ParseNotebook([]byte("{")); return err },
			want: "parse notebook",
		},
		{
			name: "old nbformat",
			run:  func() error { _, err := ParseNotebook([]byte(`{"nbformat": 3}`)); return err },
			want: "unsupported nbformat 3",
		},
		{
			name: "bad bundle array",
			run:  func() error { _, err := ParseBundles([]byte(`[1, 2]`)); return err },
			want: "parse bundles",
		},
		{
			name: "bad bundle",
			run:  func() error { _, err := ParseBundles([]byte(`"text"`)); return err },
			want: "parse bundle",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorContains(t, tt.run(), tt.want)
		})
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.ipynb"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestJoinLines(t *testing.T) {
	assert.Equal(t, "ab", joinLines([]any{"a", "b"}))
	assert.Equal(t, "s", joinLines("s"))
	assert.Equal(t, "", joinLines(nil))
}
