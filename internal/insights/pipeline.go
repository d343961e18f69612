package insights

import "github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/domain"

// StageGroup holds the leads sitting at one pipeline stage.
type StageGroup struct {
	Stage domain.Stage
	Leads []domain.Lead
}

// GroupByStage buckets leads by stage in the given order. Every requested
// stage appears in the result, with an empty (non-nil) slice when no lead
// sits there. Leads keep their input order within a group.
func GroupByStage(leads []domain.Lead, stages []domain.Stage) []StageGroup {
	byStage := make(map[domain.Stage][]domain.Lead, len(stages))
	for _, s := range stages {
		byStage[s] = []domain.Lead{}
	}
	for _, l := range leads {
		if _, ok := byStage[l.Stage]; ok {
			byStage[l.Stage] = append(byStage[l.Stage], l)
		}
	}

	groups := make([]StageGroup, 0, len(stages))
	for _, s := range stages {
		groups = append(groups, StageGroup{Stage: s, Leads: byStage[s]})
	}
	return groups
}
