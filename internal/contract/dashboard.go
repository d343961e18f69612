package contract

import "github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/app"

type DashboardRequest = app.DashboardRequest

func NewDashboardRequest() DashboardRequest {
	return app.NewDashboardRequest()
}

type TemperatureSummaryView = app.TemperatureSummaryView

type StageGroupView = app.StageGroupView

type SourceSliceView = app.SourceSliceView

type FunnelStageView = app.FunnelStageView

type DashboardResponse = app.DashboardResponse
