// Package terminal prints rendered elements as ANSI-colored cards.
package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"

	"github.com/sonnes/transformime/dom"
)

const (
	defaultWidth    = 100
	defaultMaxLines = 40
)

// Renderer prints elements to a terminal.
type Renderer struct {
	// Width overrides terminal width detection. Zero means auto-detect.
	Width int
	// MaxLines caps the lines printed per element. Zero means 40; negative
	// means no limit.
	MaxLines int
}

// New creates a terminal Renderer.
func New() *Renderer {
	return &Renderer{}
}

// Render writes one card for el. label is shown next to the mimetype badge
// and may be empty.
func (r *Renderer) Render(w io.Writer, label string, el *dom.Element) error {
	width := r.termWidth()
	contentWidth := max(width-4, 40)

	writeSeparator(w, width)

	header := " " + badgeStyle(mimetypeOf(el)).Render(strings.ToUpper(mimetypeOf(el)))
	if label != "" {
		header += "    " + styleMeta.Render(label)
	}
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}

	lines := strings.Split(plainText(el), "\n")
	limit := r.maxLines()
	hidden := 0
	if limit > 0 && len(lines) > limit {
		hidden = len(lines) - limit
		lines = lines[:limit]
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, "  "+truncate(line, contentWidth)); err != nil {
			return err
		}
	}
	if hidden > 0 {
		more := fmt.Sprintf("… %s more lines", formatNumber(hidden))
		if _, err := fmt.Fprintln(w, "  "+styleMore.Render(more)); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) termWidth() int {
	if r.Width > 0 {
		return r.Width
	}
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		return w
	}
	return defaultWidth
}

func (r *Renderer) maxLines() int {
	if r.MaxLines == 0 {
		return defaultMaxLines
	}
	return r.MaxLines
}

// mimetypeOf reads the mimetype renderers stamp on their root element,
// falling back to the tag name.
func mimetypeOf(el *dom.Element) string {
	if el == nil {
		return "empty"
	}
	if mt := el.GetAttribute("data-mimetype"); mt != "" {
		return mt
	}
	return el.Tag
}

func writeSeparator(w io.Writer, width int) {
	n := min(width, 72)
	fmt.Fprintln(w)
	fmt.Fprintln(w, styleSeparator.Render(strings.Repeat("─", n)))
}

// truncate shortens a single line to maxWidth cells, appending "...".
func truncate(s string, maxWidth int) string {
	if maxWidth < 4 {
		maxWidth = 4
	}
	s = strings.TrimRight(s, " \t\r")
	if lipgloss.Width(s) <= maxWidth {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+3 > maxWidth {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}

func formatNumber(n int) string {
	if n < 0 {
		return "-" + formatNumber(-n)
	}
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	return formatNumber(n/1000) + "," + fmt.Sprintf("%03d", n%1000)
}
