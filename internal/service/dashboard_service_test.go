package service

import (
	"context"
	"testing"

	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/contract"
	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/domain"
	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/repository"
	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDashboardFixture(t *testing.T) (DashboardService, repository.LeadRepo) {
	t.Helper()
	repo := repository.NewSQLiteLeadRepo(testutil.NewTestDB(t))
	return NewDashboardService(repo), repo
}

func dashboardRequest() contract.DashboardRequest {
	req := contract.NewDashboardRequest()
	req.Now = &testutil.TestNow
	return req
}

func TestDashboard_SampleFallback(t *testing.T) {
	svc, _ := newDashboardFixture(t)

	resp, err := svc.Build(context.Background(), dashboardRequest())
	require.NoError(t, err)

	assert.False(t, resp.Live)
	assert.Equal(t, resp.TotalLeads, resp.Temperature.Total)
	assert.Len(t, resp.Pipeline, len(domain.PipelineStages), "every stage renders, empty or not")
	assert.NotEmpty(t, resp.Sources)
	require.Len(t, resp.Funnel, 4)
	assert.Nil(t, resp.Funnel[0].ConversionPct, "first stage never shows a percentage")
}

func TestDashboard_DerivedFunnel(t *testing.T) {
	svc, repo := newDashboardFixture(t)
	ctx := context.Background()

	statuses := []string{"new", "new", "qualified", "proposal", "won"}
	for i, status := range statuses {
		lead := testutil.NewTestLead("Lead X", testutil.WithStatus(status))
		lead.FirstName = string(rune('A' + i))
		require.NoError(t, repo.Create(ctx, lead))
	}

	resp, err := svc.Build(ctx, dashboardRequest())
	require.NoError(t, err)
	require.True(t, resp.Live)

	require.Len(t, resp.Funnel, 4)
	assert.Equal(t, 5, resp.Funnel[0].Value, "all leads enter the funnel")
	assert.Equal(t, 3, resp.Funnel[1].Value, "qualified and beyond count as showings")
	assert.Equal(t, 2, resp.Funnel[2].Value, "proposal and won count as offers")
	assert.Equal(t, 1, resp.Funnel[3].Value)

	require.NotNil(t, resp.Funnel[1].ConversionPct)
	assert.InDelta(t, 60.0, *resp.Funnel[1].ConversionPct, 0.01)
	require.NotNil(t, resp.Funnel[2].ConversionPct)
	assert.InDelta(t, 66.7, *resp.Funnel[2].ConversionPct, 0.01)
	require.NotNil(t, resp.Funnel[3].ConversionPct)
	assert.InDelta(t, 50.0, *resp.Funnel[3].ConversionPct, 0.01)
}

func TestDashboard_PipelineCountsMatchLeads(t *testing.T) {
	svc, repo := newDashboardFixture(t)
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, testutil.NewTestLead("Dana Whitfield", testutil.WithStatus("contacted"))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestLead("Marcus Cole", testutil.WithStatus("contacted"))))

	resp, err := svc.Build(ctx, dashboardRequest())
	require.NoError(t, err)

	var contacted *contract.StageGroupView
	total := 0
	for i := range resp.Pipeline {
		total += resp.Pipeline[i].Count
		if resp.Pipeline[i].Stage == domain.StageContacted {
			contacted = &resp.Pipeline[i]
		}
	}
	require.NotNil(t, contacted)
	assert.Equal(t, 2, contacted.Count)
	assert.Len(t, contacted.Leads, 2)
	assert.Equal(t, resp.TotalLeads, total)
}
