package formatter

import (
	"strings"

	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/session"
)

// FormatSession renders the session status panel.
func FormatSession(snap session.Snapshot) string {
	var b strings.Builder

	switch {
	case snap.DemoMode:
		b.WriteString(StyleYellow.Render("▲ DEMO MODE") + Dim(" — synthetic agent identity") + "\n")
	case snap.Authenticated:
		b.WriteString(StyleGreen.Render("● Signed in") + "\n")
	default:
		b.WriteString(StyleDim.Render("○ Signed out") + "\n")
	}

	if snap.User != nil {
		b.WriteString(Bold(snap.User.Name))
		if snap.User.Email != "" {
			b.WriteString(Dim(" <" + snap.User.Email + ">"))
		}
		b.WriteString("\n")
	}
	b.WriteString(Dim("Role: ") + RoleBadge(snap.Role) + "\n")

	return RenderBox("Session", b.String())
}
