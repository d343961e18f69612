package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/contract"
	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/domain"
)

// swatchStyle builds a foreground style from a breakdown slice's hex color.
func swatchStyle(hex string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}

// FormatLeadList renders the lead table with the live-data badge.
func FormatLeadList(resp *contract.LeadListResponse) string {
	var b strings.Builder

	headers := []string{"ID", "NAME", "TEMP", "STAGE", "SOURCE", "ACTIVITY"}
	rows := make([][]string, 0, len(resp.Leads))
	for _, l := range resp.Leads {
		rows = append(rows, []string{
			TruncID(l.ID),
			Bold(l.Name),
			TemperatureIndicator(l.Temperature),
			StagePill(l.Stage),
			StyleFg.Render(l.Source),
			Dim(l.LastActivity),
		})
	}
	b.WriteString(RenderTable(headers, rows))

	b.WriteString("\n")
	if len(resp.Leads) != resp.Total {
		b.WriteString(Dim(fmt.Sprintf("%d of %d leads  ", len(resp.Leads), resp.Total)))
	}
	b.WriteString(LiveBadge(resp.Live) + "\n")

	return b.String()
}

// FormatLead renders one lead in detail.
func FormatLead(l *domain.Lead) string {
	var b strings.Builder

	b.WriteString(Bold(l.Name) + "  " + TemperatureIndicator(l.Temperature) + "\n\n")

	write := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(fmt.Sprintf("%s %s\n", Dim(fmt.Sprintf("%-10s", label)), StyleFg.Render(value)))
	}
	b.WriteString(fmt.Sprintf("%s %s\n", Dim(fmt.Sprintf("%-10s", "Stage")), StagePill(l.Stage)))
	write("Score", fmt.Sprintf("%d", l.Score))
	write("Phone", l.Phone)
	write("Email", l.Email)
	write("Source", l.Source)
	write("Budget", l.Budget)
	write("Address", l.PropertyAddress)
	write("Activity", l.LastActivity)
	if l.Notes != "" {
		b.WriteString("\n" + Dim(l.Notes) + "\n")
	}

	return RenderBox("Lead", b.String())
}
