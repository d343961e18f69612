package insights

import "math"

// FunnelCounts holds the absolute volume at each conversion step.
type FunnelCounts struct {
	Leads    int
	Showings int
	Offers   int
	Closings int
}

// FunnelStage is one rendered step of the conversion funnel. ConversionPct is
// the percentage of the previous stage's volume, rounded to one decimal; it
// is nil for the first stage and whenever the previous stage is zero, so the
// UI renders a dash instead of a misleading number.
type FunnelStage struct {
	Label         string
	Value         int
	ConversionPct *float64
}

// BuildFunnel derives the ordered stage list with conversion percentages.
// Division by zero never occurs: a zero predecessor yields a nil percentage.
func BuildFunnel(counts FunnelCounts) []FunnelStage {
	steps := []struct {
		label string
		value int
	}{
		{"Leads", counts.Leads},
		{"Showings", counts.Showings},
		{"Offers", counts.Offers},
		{"Closings", counts.Closings},
	}

	stages := make([]FunnelStage, 0, len(steps))
	for i, step := range steps {
		stage := FunnelStage{Label: step.label, Value: step.value}
		if i > 0 && steps[i-1].value > 0 {
			pct := round1(float64(step.value) / float64(steps[i-1].value) * 100)
			stage.ConversionPct = &pct
		}
		stages = append(stages, stage)
	}
	return stages
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
