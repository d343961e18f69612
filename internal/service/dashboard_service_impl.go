package service

import (
	"context"
	"fmt"

	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/app"
	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/domain"
	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/fallback"
	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/insights"
	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/repository"
	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/sample"
)

type dashboardService struct {
	leads repository.LeadRepo
}

func NewDashboardService(leads repository.LeadRepo) DashboardService {
	return &dashboardService{leads: leads}
}

func (s *dashboardService) Build(ctx context.Context, req app.DashboardRequest) (*app.DashboardResponse, error) {
	now := resolveNow(req.Now)

	cached, err := s.leads.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading leads: %w", err)
	}

	resolved := fallback.Resolve(cached, sample.Leads(now))
	leads := normalizeLeads(resolved.Data, now)

	counts := insights.CountByTemperature(leads)
	groups := insights.GroupByStage(leads, domain.PipelineStages)
	sources := insights.SourceBreakdown(leads)
	funnel := insights.BuildFunnel(funnelCountsFromStages(groups))

	pipeline := make([]app.StageGroupView, 0, len(groups))
	for _, g := range groups {
		pipeline = append(pipeline, app.StageGroupView{
			Stage: g.Stage,
			Count: len(g.Leads),
			Leads: g.Leads,
		})
	}

	sourceViews := make([]app.SourceSliceView, 0, len(sources))
	for _, src := range sources {
		sourceViews = append(sourceViews, app.SourceSliceView{
			Label: src.Label,
			Count: src.Count,
			Color: src.Color,
		})
	}

	funnelViews := make([]app.FunnelStageView, 0, len(funnel))
	for _, f := range funnel {
		funnelViews = append(funnelViews, app.FunnelStageView{
			Label:         f.Label,
			Value:         f.Value,
			ConversionPct: f.ConversionPct,
		})
	}

	return &app.DashboardResponse{
		GeneratedAt: now,
		Temperature: app.TemperatureSummaryView{
			Hot:   counts.Hot,
			Warm:  counts.Warm,
			Cold:  counts.Cold,
			Total: counts.Total(),
		},
		Pipeline:   pipeline,
		Sources:    sourceViews,
		Funnel:     funnelViews,
		Live:       resolved.IsLive,
		TotalLeads: len(leads),
	}, nil
}
