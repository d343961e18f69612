package insights

import (
	"sort"

	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/domain"
)

// SourceSlice is one entry of the lead-source breakdown.
type SourceSlice struct {
	Label string
	Count int
	Color string // hex color for chart/legend rendering
}

// sourceColors assigns fixed colors to well-known source labels.
var sourceColors = map[string]string{
	"Website":      "#83a598",
	"Referral":     "#8ec07c",
	"Zillow":       "#83769c",
	"Social Media": "#d3869b",
	"Open House":   "#fabd2f",
	"Sign Call":    "#fe8019",
}

// fallbackPalette colors unknown labels, cycling by the label's position
// among the unknowns so assignment stays deterministic.
var fallbackPalette = []string{"#fb4934", "#b8bb26", "#689d6a", "#a89984"}

// SourceBreakdown counts leads per source label, sorted by count descending.
// Equal counts keep first-encountered insertion order, so the sort must stay
// stable. Counts always sum to len(leads).
func SourceBreakdown(leads []domain.Lead) []SourceSlice {
	counts := make(map[string]int)
	var order []string
	for _, l := range leads {
		if _, seen := counts[l.Source]; !seen {
			order = append(order, l.Source)
		}
		counts[l.Source]++
	}

	slices := make([]SourceSlice, 0, len(order))
	unknowns := 0
	for _, label := range order {
		color, ok := sourceColors[label]
		if !ok {
			color = fallbackPalette[unknowns%len(fallbackPalette)]
			unknowns++
		}
		slices = append(slices, SourceSlice{Label: label, Count: counts[label], Color: color})
	}

	sort.SliceStable(slices, func(i, j int) bool {
		return slices[i].Count > slices[j].Count
	})
	return slices
}
