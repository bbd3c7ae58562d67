package terminal

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Badge colors by mimetype family.
	colorText   = lipgloss.AdaptiveColor{Light: "#2563eb", Dark: "#60a5fa"} // blue
	colorMarkup = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34d399"} // emerald
	colorData   = lipgloss.AdaptiveColor{Light: "#d97706", Dark: "#fbbf24"} // amber
	colorImage  = lipgloss.AdaptiveColor{Light: "#7c3aed", Dark: "#a78bfa"} // purple
	colorOther  = lipgloss.AdaptiveColor{Light: "#64748b", Dark: "#94a3b8"} // slate

	colorDim = lipgloss.AdaptiveColor{Light: "#94a3b8", Dark: "#64748b"}
)

var (
	styleMeta      = lipgloss.NewStyle().Foreground(colorDim)
	styleSeparator = lipgloss.NewStyle().Foreground(colorDim)
	styleMore      = lipgloss.NewStyle().Foreground(colorDim).Italic(true)
)

func badgeStyle(mimetype string) lipgloss.Style {
	s := lipgloss.NewStyle().Bold(true)
	switch {
	case mimetype == "text/plain":
		return s.Foreground(colorText)
	case mimetype == "text/html", mimetype == "text/markdown", mimetype == "image/svg+xml":
		return s.Foreground(colorMarkup)
	case mimetype == "application/json", strings.HasSuffix(mimetype, "+json"):
		return s.Foreground(colorData)
	case strings.HasPrefix(mimetype, "image/"):
		return s.Foreground(colorImage)
	default:
		return s.Foreground(colorOther)
	}
}
