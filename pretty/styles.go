package pretty

import "github.com/charmbracelet/lipgloss"

// Named text styles used by the reporter for severity markers and labels.
// Styles resolve through lipgloss so the palette adapts to light and dark
// backgrounds the same way the dashboard themes do.

const (
	StyleInfo      = "info"
	StyleWarning   = "warning"
	StyleError     = "error"
	StyleLabel     = "label"
	StyleMuted     = "muted"
	StyleHighlight = "highlight"
)

var (
	namedStyles  map[string]lipgloss.Style
	stylesActive bool
)

func setupStyles(active bool) {
	stylesActive = active
	namedStyles = map[string]lipgloss.Style{
		StyleInfo:      lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Dark: "#82aaff", Light: "#2e7de9"}),
		StyleWarning:   lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Dark: "#ffcb6b", Light: "#8c6c3e"}),
		StyleError:     lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Dark: "#ff5370", Light: "#f52a65"}),
		StyleLabel:     lipgloss.NewStyle().Bold(true),
		StyleMuted:     lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Dark: "#697098", Light: "#8990a3"}),
		StyleHighlight: lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Dark: "#89ddff", Light: "#007197"}),
	}
}

// Format renders text in the named style. Unknown style names and disabled
// color output both yield the text unchanged, so callers never need to guard.
func Format(text, styleName string) string {
	if !stylesActive || Colorless || Disabled {
		return text
	}
	style, ok := namedStyles[styleName]
	if !ok {
		return text
	}
	return style.Render(text)
}
