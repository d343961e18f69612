package formatter

import (
	"strings"

	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/safety"
)

// SafetyStatus is the render-ready snapshot of the tracker.
type SafetyStatus struct {
	Active        bool
	Reason        string
	HasPermission bool
	Location      *safety.Position
}

// FormatSafety renders the safety-mode panel.
func FormatSafety(status SafetyStatus) string {
	var b strings.Builder

	switch {
	case status.Active && status.HasPermission:
		b.WriteString(StyleGreen.Render("● SAFETY MODE ON") + Dim(" — location tracking live") + "\n")
	case status.Active:
		b.WriteString(StyleYellow.Render("▲ SAFETY MODE ARMED") + Dim(" — no location permission") + "\n")
	default:
		b.WriteString(StyleDim.Render("○ Safety mode off") + "\n")
	}

	if status.Reason != "" {
		b.WriteString(Dim("Reason: ") + StyleFg.Render(status.Reason) + "\n")
	}
	if status.Location != nil {
		b.WriteString(Dim("Last fix: ") + Coords(status.Location.Lat, status.Location.Lng, status.Location.AccuracyM) + "\n")
	}

	return RenderBox("Safety", b.String())
}
