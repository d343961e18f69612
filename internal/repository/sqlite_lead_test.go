package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/db"
	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/domain"
	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeadRepo_CreateAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteLeadRepo(database)
	ctx := context.Background()

	lead := testutil.NewTestLead("Dana Reyes", testutil.WithScore(82), testutil.WithStatus("qualified"))
	require.NoError(t, repo.Create(ctx, lead))

	got, err := repo.GetByID(ctx, lead.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dana", got.FirstName)
	assert.Equal(t, "Reyes", got.LastName)
	require.NotNil(t, got.UrgencyScore)
	assert.Equal(t, 82, *got.UrgencyScore)
	assert.Equal(t, "qualified", got.Status)
	assert.Equal(t, lead.CreatedAt.UTC(), got.CreatedAt.UTC())
}

func TestLeadRepo_NilScoreRoundTrips(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteLeadRepo(database)
	ctx := context.Background()

	lead := testutil.NewTestLead("No Score")
	require.Nil(t, lead.UrgencyScore)
	require.NoError(t, repo.Create(ctx, lead))

	got, err := repo.GetByID(ctx, lead.ID)
	require.NoError(t, err)
	assert.Nil(t, got.UrgencyScore, "absent score must stay absent, not become 0")
}

func TestLeadRepo_GetMissing(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteLeadRepo(database)

	_, err := repo.GetByID(context.Background(), "nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestLeadRepo_ReplaceAll(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteLeadRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestLead("Old Lead")))

	fresh := []domain.RawLead{
		*testutil.NewTestLead("New One"),
		*testutil.NewTestLead("New Two"),
	}
	require.NoError(t, repo.ReplaceAll(ctx, fresh))

	listed, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, listed, 2)
	for _, l := range listed {
		assert.NotEqual(t, "Old", l.FirstName)
	}
}

func TestLeadRepo_ReplaceAllInTxRollsBack(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteLeadRepo(database)
	uow := testutil.NewTestUoW(database)
	ctx := context.Background()

	keeper := testutil.NewTestLead("Keeper")
	require.NoError(t, repo.Create(ctx, keeper))

	boom := errors.New("boom")
	err := uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txRepo := NewSQLiteLeadRepo(tx)
		if err := txRepo.ReplaceAll(ctx, []domain.RawLead{*testutil.NewTestLead("Doomed")}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	listed, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, keeper.ID, listed[0].ID, "failed sync must leave the cache untouched")
}
