package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// RenderBar renders a proportional bar of the given width for value/max.
func RenderBar(value, max, width int) string {
	if max <= 0 || width <= 0 {
		return ""
	}
	filled := value * width / max
	if filled > width {
		filled = width
	}
	if value > 0 && filled == 0 {
		filled = 1
	}
	return StyleBlue.Render(strings.Repeat("█", filled)) +
		StyleDim.Render(strings.Repeat("░", width-filled))
}

// Pct renders a conversion percentage, or a dash when none applies.
func Pct(pct *float64) string {
	if pct == nil {
		return Dim("—")
	}
	return StyleFg.Render(fmt.Sprintf("%.1f%%", *pct))
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// Coords renders a latitude/longitude pair with accuracy.
func Coords(lat, lng, accuracyM float64) string {
	return StyleFg.Render(fmt.Sprintf("%.4f, %.4f", lat, lng)) +
		Dim(fmt.Sprintf(" (±%.0fm)", accuracyM))
}
