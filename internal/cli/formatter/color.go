package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// TemperatureIndicator returns a colored urgency indicator such as "● HOT".
func TemperatureIndicator(temp domain.Temperature) string {
	switch temp {
	case domain.TempHot:
		return StyleRed.Render("● HOT")
	case domain.TempWarm:
		return StyleYellow.Render("● WARM")
	case domain.TempCold:
		return StyleBlue.Render("● COLD")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// StagePill returns a colored pipeline-stage indicator.
func StagePill(stage domain.Stage) string {
	switch stage {
	case domain.StageNew:
		return StyleBlue.Render("○ New")
	case domain.StageContacted:
		return StyleFg.Render("◐ Contacted")
	case domain.StageQualified:
		return StyleYellow.Render("● Qualified")
	case domain.StageProposal:
		return StylePurple.Render("● Proposal")
	case domain.StageWon:
		return StyleGreen.Render("✔ Won")
	default:
		return StyleDim.Render(string(stage))
	}
}

// LiveBadge marks whether a view was built from live cached data or from the
// bundled samples.
func LiveBadge(live bool) string {
	if live {
		return StyleGreen.Render("● Live data")
	}
	return StyleDim.Render("○ Sample data")
}

// RoleBadge returns a styled label for the active role.
func RoleBadge(role domain.Role) string {
	switch role {
	case domain.RoleAgent:
		return StylePurple.Render("AGENT")
	case domain.RoleClientBuyer:
		return StyleBlue.Render("BUYER")
	case domain.RoleClientSeller:
		return StyleYellow.Render("SELLER")
	default:
		return StyleDim.Render(strings.ToUpper(string(role)))
	}
}

// TrustScore colors a vendor's trust score by band.
func TrustScore(score int) string {
	text := fmt.Sprintf("%d", score)
	switch {
	case score >= 90:
		return StyleGreen.Render(text)
	case score >= 70:
		return StyleYellow.Render(text)
	default:
		return StyleRed.Render(text)
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
