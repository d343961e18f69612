package service

import (
	"context"
	"errors"
	"testing"

	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/app"
	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/contract"
	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/domain"
	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/repository"
	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLeadFixture(t *testing.T) (LeadService, repository.LeadRepo) {
	t.Helper()
	repo := repository.NewSQLiteLeadRepo(testutil.NewTestDB(t))
	return NewLeadService(repo), repo
}

func listRequest() contract.LeadListRequest {
	req := contract.NewLeadListRequest()
	req.Now = &testutil.TestNow
	return req
}

func TestLeadList_EmptyCacheFallsBackToSamples(t *testing.T) {
	svc, _ := newLeadFixture(t)

	resp, err := svc.List(context.Background(), listRequest())
	require.NoError(t, err)

	assert.False(t, resp.Live)
	assert.NotEmpty(t, resp.Leads, "samples keep the screen populated")
	for _, l := range resp.Leads {
		assert.NotEmpty(t, l.Name)
		assert.Contains(t, domain.PipelineStages, l.Stage)
	}
}

func TestLeadList_CachedDataIsLive(t *testing.T) {
	svc, repo := newLeadFixture(t)
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, testutil.NewTestLead("Dana Whitfield", testutil.WithStatus("qualified"))))

	resp, err := svc.List(ctx, listRequest())
	require.NoError(t, err)

	assert.True(t, resp.Live)
	require.Len(t, resp.Leads, 1)
	assert.Equal(t, "Dana Whitfield", resp.Leads[0].Name)
	assert.Equal(t, domain.StageQualified, resp.Leads[0].Stage)
	assert.Equal(t, "1 day ago", resp.Leads[0].LastActivity)
}

func TestLeadList_Filters(t *testing.T) {
	svc, repo := newLeadFixture(t)
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, testutil.NewTestLead("Hot Lead", testutil.WithScore(90))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestLead("Cold Lead", testutil.WithScore(10), testutil.WithSource("popup_modal"))))

	t.Run("by temperature", func(t *testing.T) {
		req := listRequest()
		hot := domain.TempHot
		req.Temperature = &hot

		resp, err := svc.List(ctx, req)
		require.NoError(t, err)
		require.Len(t, resp.Leads, 1)
		assert.Equal(t, "Hot Lead", resp.Leads[0].Name)
		assert.Equal(t, 2, resp.Total, "total counts the unfiltered list")
	})

	t.Run("by source alias", func(t *testing.T) {
		req := listRequest()
		req.Source = "popup_modal"

		resp, err := svc.List(ctx, req)
		require.NoError(t, err)
		require.Len(t, resp.Leads, 1)
		assert.Equal(t, "Website", resp.Leads[0].Source, "filter matches the folded alias")
	})

	t.Run("by stage", func(t *testing.T) {
		req := listRequest()
		stage := domain.StageNew
		req.Stage = &stage

		resp, err := svc.List(ctx, req)
		require.NoError(t, err)
		assert.Len(t, resp.Leads, 2)
	})
}

func TestLeadGetByID_NotFound(t *testing.T) {
	svc, _ := newLeadFixture(t)
	_, err := svc.GetByID(context.Background(), "missing")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestLeadCreate(t *testing.T) {
	svc, repo := newLeadFixture(t)
	ctx := context.Background()

	req := contract.LeadCreateRequest{
		Now:       &testutil.TestNow,
		FirstName: "Jordan",
		LastName:  "Blake",
		Phone:     "5125550123",
		Source:    "website",
	}
	lead, err := svc.Create(ctx, req)
	require.NoError(t, err)

	_, uuidErr := uuid.Parse(lead.ID)
	require.NoError(t, uuidErr)
	assert.Equal(t, "Jordan Blake", lead.Name)
	assert.Equal(t, "(512) 555-0123", lead.Phone)
	assert.Equal(t, "Website", lead.Source)
	assert.Equal(t, domain.StageNew, lead.Stage, "missing status defaults to new")
	assert.Equal(t, "Today", lead.LastActivity)

	stored, err := repo.GetByID(ctx, lead.ID)
	require.NoError(t, err)
	assert.Equal(t, "new", stored.Status)
}

func TestLeadCreate_Validation(t *testing.T) {
	svc, _ := newLeadFixture(t)
	ctx := context.Background()

	t.Run("no identity", func(t *testing.T) {
		_, err := svc.Create(ctx, contract.LeadCreateRequest{Budget: "$500k"})
		var inputErr *app.InputError
		require.True(t, errors.As(err, &inputErr))
		assert.Equal(t, app.InputErrMissingField, inputErr.Code)
	})

	t.Run("score out of range", func(t *testing.T) {
		score := 150
		_, err := svc.Create(ctx, contract.LeadCreateRequest{FirstName: "A", UrgencyScore: &score})
		var inputErr *app.InputError
		require.True(t, errors.As(err, &inputErr))
		assert.Equal(t, app.InputErrInvalidValue, inputErr.Code)
		assert.Equal(t, "urgency_score", inputErr.Field)
	})
}
