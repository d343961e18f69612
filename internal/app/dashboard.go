package app

import (
	"time"

	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/domain"
)

type DashboardRequest struct {
	Now *time.Time
}

func NewDashboardRequest() DashboardRequest {
	return DashboardRequest{}
}

type TemperatureSummaryView struct {
	Hot   int
	Warm  int
	Cold  int
	Total int
}

type StageGroupView struct {
	Stage domain.Stage
	Count int
	Leads []domain.Lead
}

type SourceSliceView struct {
	Label string
	Count int
	Color string
}

type FunnelStageView struct {
	Label string
	Value int
	// ConversionPct is nil for the first stage and whenever the
	// predecessor count is zero.
	ConversionPct *float64
}

type DashboardResponse struct {
	GeneratedAt time.Time
	Temperature TemperatureSummaryView
	Pipeline    []StageGroupView
	Sources     []SourceSliceView
	Funnel      []FunnelStageView
	Live        bool
	TotalLeads  int
}
