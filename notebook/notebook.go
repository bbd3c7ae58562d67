// Package notebook reads MIME bundles from Jupyter notebooks (nbformat 4)
// and from plain JSON bundle files.
package notebook

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sonnes/transformime/core"
)

// Output is one renderable result read from a file.
type Output struct {
	// Cell is the zero-based index of the notebook cell, or -1 for bundle
	// files.
	Cell int
	// Type is the nbformat output_type, or "bundle" for bundle files.
	Type   string
	Bundle core.Bundle
}

type rawNotebook struct {
	NBFormat int       `json:"nbformat"`
	Cells    []rawCell `json:"cells"`
}

type rawCell struct {
	CellType string      `json:"cell_type"`
	Outputs  []rawOutput `json:"outputs"`
}

type rawOutput struct {
	OutputType string         `json:"output_type"`
	Data       map[string]any `json:"data"`
	Name       string         `json:"name"`
	Text       any            `json:"text"`
	EName      string         `json:"ename"`
	EValue     string         `json:"evalue"`
	Traceback  []string       `json:"traceback"`
}

// ReadFile reads outputs from path. Files ending in .ipynb are parsed as
// notebooks; anything else as bundle JSON.
func ReadFile(path string) ([]Output, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(filepath.Ext(path), ".ipynb") {
		return ParseNotebook(data)
	}
	return ParseBundles(data)
}

// ParseNotebook extracts the outputs of every code cell, in order.
func ParseNotebook(data []byte) ([]Output, error) {
	var nb rawNotebook
	if err := json.Unmarshal(data, &nb); err != nil {
		return nil, fmt.Errorf("parse notebook: %w", err)
	}
	if nb.NBFormat != 4 {
		return nil, fmt.Errorf("unsupported nbformat %d", nb.NBFormat)
	}

	var outputs []Output
	for i, cell := range nb.Cells {
		if cell.CellType != "code" {
			continue
		}
		for _, raw := range cell.Outputs {
			b := outputBundle(raw)
			if b == nil {
				continue
			}
			outputs = append(outputs, Output{Cell: i, Type: raw.OutputType, Bundle: b})
		}
	}
	return outputs, nil
}

// outputBundle maps an nbformat output onto a bundle. Unknown output types
// yield nil.
func outputBundle(o rawOutput) core.Bundle {
	switch o.OutputType {
	case "display_data", "execute_result":
		if len(o.Data) == 0 {
			return nil
		}
		return core.Bundle(o.Data)
	case "stream":
		return core.Bundle{"text/plain": joinLines(o.Text)}
	case "error":
		text := o.EName + ": " + o.EValue
		if len(o.Traceback) > 0 {
			text += "\n" + strings.Join(o.Traceback, "\n")
		}
		return core.Bundle{"text/plain": text}
	default:
		return nil
	}
}

// joinLines flattens nbformat multi-line strings, which may be stored as a
// single string or as an array of lines.
func joinLines(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case []any:
		var b strings.Builder
		for _, line := range val {
			if s, ok := line.(string); ok {
				b.WriteString(s)
			}
		}
		return b.String()
	default:
		return ""
	}
}

// ParseBundles reads a single bundle object or an array of bundles.
func ParseBundles(data []byte) ([]Output, error) {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		var bundles []core.Bundle
		if err := json.Unmarshal(data, &bundles); err != nil {
			return nil, fmt.Errorf("parse bundles: %w", err)
		}
		outputs := make([]Output, len(bundles))
		for i, b := range bundles {
			outputs[i] = Output{Cell: -1, Type: "bundle", Bundle: b}
		}
		return outputs, nil
	}

	var b core.Bundle
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parse bundle: %w", err)
	}
	return []Output{{Cell: -1, Type: "bundle", Bundle: b}}, nil
}
