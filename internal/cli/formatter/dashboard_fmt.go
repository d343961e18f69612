package formatter

import (
	"fmt"
	"strings"

	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/contract"
)

const funnelBarWidth = 24

// FormatDashboard renders the agent dashboard: temperature summary, pipeline,
// conversion funnel, and source breakdown.
func FormatDashboard(resp *contract.DashboardResponse) string {
	var b strings.Builder

	hot := StyleRed.Render(fmt.Sprintf("%d Hot", resp.Temperature.Hot))
	warm := StyleYellow.Render(fmt.Sprintf("%d Warm", resp.Temperature.Warm))
	cold := StyleBlue.Render(fmt.Sprintf("%d Cold", resp.Temperature.Cold))
	b.WriteString(fmt.Sprintf("%s, %s, %s %s\n\n", hot, warm, cold,
		Dim(fmt.Sprintf("of %d leads", resp.Temperature.Total))))

	b.WriteString(Header("Pipeline") + "\n")
	rows := make([][]string, 0, len(resp.Pipeline))
	for _, g := range resp.Pipeline {
		count := fmt.Sprintf("%d", g.Count)
		if g.Count == 0 {
			count = Dim("0")
		}
		rows = append(rows, []string{StagePill(g.Stage), count})
	}
	b.WriteString(RenderTable([]string{"STAGE", "LEADS"}, rows))
	b.WriteString("\n")

	b.WriteString(Header("Conversion Funnel") + "\n")
	maxValue := 0
	for _, f := range resp.Funnel {
		if f.Value > maxValue {
			maxValue = f.Value
		}
	}
	for _, f := range resp.Funnel {
		b.WriteString(fmt.Sprintf("%-10s %s %3d  %s\n",
			f.Label, RenderBar(f.Value, maxValue, funnelBarWidth), f.Value, Pct(f.ConversionPct)))
	}
	b.WriteString("\n")

	b.WriteString(Header("Lead Sources") + "\n")
	srcRows := make([][]string, 0, len(resp.Sources))
	for _, s := range resp.Sources {
		swatch := swatchStyle(s.Color).Render("■")
		srcRows = append(srcRows, []string{swatch + " " + StyleFg.Render(s.Label), fmt.Sprintf("%d", s.Count)})
	}
	b.WriteString(RenderTable([]string{"SOURCE", "LEADS"}, srcRows))
	b.WriteString("\n")

	b.WriteString(LiveBadge(resp.Live) + "\n")

	return RenderBox("Dashboard", b.String())
}
