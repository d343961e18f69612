package insights

import "github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/domain"

// TemperatureCounts summarizes a lead list by urgency bucket.
type TemperatureCounts struct {
	Hot  int
	Warm int
	Cold int
}

// Total returns the number of leads counted.
func (c TemperatureCounts) Total() int {
	return c.Hot + c.Warm + c.Cold
}

// CountByTemperature tallies normalized leads into hot/warm/cold buckets.
func CountByTemperature(leads []domain.Lead) TemperatureCounts {
	var counts TemperatureCounts
	for _, l := range leads {
		switch l.Temperature {
		case domain.TempHot:
			counts.Hot++
		case domain.TempWarm:
			counts.Warm++
		default:
			counts.Cold++
		}
	}
	return counts
}
