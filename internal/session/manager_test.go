package session

import (
	"context"
	"errors"
	"testing"

	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/domain"
	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/repository"
	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClient is a canned remote.Client for session tests.
type stubClient struct {
	user        *domain.User
	userErr     error
	signOutErr  error
	signOutHits int
}

func (s *stubClient) CurrentUser(context.Context) (*domain.User, error) {
	return s.user, s.userErr
}

func (s *stubClient) FetchLeads(context.Context) ([]domain.RawLead, error) {
	return nil, nil
}

func (s *stubClient) FetchVendors(context.Context) ([]domain.Vendor, error) {
	return nil, nil
}

func (s *stubClient) SignOut(context.Context) error {
	s.signOutHits++
	return s.signOutErr
}

func newTestManager(t *testing.T, client *stubClient) *Manager {
	t.Helper()
	database := testutil.NewTestDB(t)
	return NewManager(client, repository.NewSQLiteSettingsRepo(database))
}

func agentUser() *domain.User {
	return &domain.User{ID: "u1", Name: "Morgan Reyes", Email: "morgan@example.com", Role: domain.RoleAgent}
}

func clientUser() *domain.User {
	return &domain.User{ID: "u2", Name: "Pat Chen", Email: "pat@example.com", Role: domain.RoleClientBuyer}
}

func TestInitialState(t *testing.T) {
	m := newTestManager(t, &stubClient{})

	assert.True(t, m.Loading())
	assert.False(t, m.IsAuthenticated())
	assert.Equal(t, domain.RoleClientBuyer, m.Role())
	assert.False(t, m.ShouldRedirectToLogin(), "redirect is suppressed while the user fetch is pending")
}

func TestRefreshUser_Anonymous(t *testing.T) {
	m := newTestManager(t, &stubClient{})

	require.NoError(t, m.RefreshUser(context.Background()))
	assert.False(t, m.Loading())
	assert.False(t, m.IsAuthenticated())
	assert.True(t, m.ShouldRedirectToLogin())
}

func TestRefreshUser_TransportFailureSettlesLoading(t *testing.T) {
	m := newTestManager(t, &stubClient{userErr: errors.New("connection refused")})

	err := m.RefreshUser(context.Background())
	require.Error(t, err)
	assert.False(t, m.Loading(), "a dead backend must not leave callers stuck in loading")
}

func TestRoleAutoAssignment(t *testing.T) {
	tests := []struct {
		name     string
		user     *domain.User
		wantRole domain.Role
	}{
		{"agent backend role maps to agent", agentUser(), domain.RoleAgent},
		{"buyer backend role maps to client_buyer", clientUser(), domain.RoleClientBuyer},
		{
			"seller backend role still maps to client_buyer",
			&domain.User{ID: "u3", Role: domain.RoleClientSeller},
			domain.RoleClientBuyer,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestManager(t, &stubClient{})
			m.ApplyUser(tt.user)
			assert.Equal(t, tt.wantRole, m.Role())
			assert.True(t, m.IsAuthenticated())
		})
	}
}

func TestApplyUser_OverridesManualRoleSwitch(t *testing.T) {
	m := newTestManager(t, &stubClient{})
	m.ApplyUser(agentUser())

	require.NoError(t, m.SetRole(domain.RoleClientSeller))
	assert.Equal(t, domain.RoleClientSeller, m.Role(), "manual switch holds until the next apply")

	// A refetch re-runs the auto-assignment effect and undoes the switch.
	m.ApplyUser(agentUser())
	assert.Equal(t, domain.RoleAgent, m.Role())
}

func TestApplyUser_NilKeepsRole(t *testing.T) {
	m := newTestManager(t, &stubClient{})
	require.NoError(t, m.SetRole(domain.RoleClientSeller))

	m.ApplyUser(nil)
	assert.Equal(t, domain.RoleClientSeller, m.Role())
	assert.False(t, m.IsAuthenticated())
}

func TestSetRole_RejectsUnknown(t *testing.T) {
	m := newTestManager(t, &stubClient{})
	require.Error(t, m.SetRole(domain.Role("superadmin")))
	assert.Equal(t, domain.RoleClientBuyer, m.Role())
}

func TestDemoMode(t *testing.T) {
	m := newTestManager(t, &stubClient{})
	m.ApplyUser(clientUser())

	m.EnterDemo()
	assert.Equal(t, domain.RoleAgent, m.Role())
	assert.True(t, m.IsAuthenticated())

	effective := m.EffectiveUser()
	require.NotNil(t, effective)
	assert.Equal(t, "demo-agent", effective.ID, "demo identity masks the real user system-wide")

	m.ExitDemo()
	assert.Equal(t, domain.RoleClientBuyer, m.Role())
	assert.Equal(t, "u2", m.EffectiveUser().ID, "real user resurfaces after demo exit")
}

func TestExitDemo_WithoutRealUser(t *testing.T) {
	m := newTestManager(t, &stubClient{})
	m.ApplyUser(nil)

	m.EnterDemo()
	m.ExitDemo()
	assert.False(t, m.IsAuthenticated())
	assert.Nil(t, m.EffectiveUser())
	assert.True(t, m.ShouldRedirectToLogin())
}

func TestSignOut_ClearsStateAndRefetches(t *testing.T) {
	client := &stubClient{user: agentUser()}
	m := newTestManager(t, client)
	require.NoError(t, m.RefreshUser(context.Background()))
	m.EnterDemo()

	// Backend now reports anonymous, as a real logout would.
	client.user = nil
	require.NoError(t, m.SignOut(context.Background()))

	assert.Equal(t, 1, client.signOutHits)
	snap := m.Snapshot()
	assert.False(t, snap.Authenticated)
	assert.False(t, snap.DemoMode)
	assert.Equal(t, domain.RoleClientBuyer, snap.Role)
}

func TestSignOut_ToleratesLogoutFailure(t *testing.T) {
	client := &stubClient{user: agentUser(), signOutErr: errors.New("backend unavailable")}
	m := newTestManager(t, client)
	require.NoError(t, m.RefreshUser(context.Background()))

	client.user = nil
	client.userErr = nil
	require.NoError(t, m.SignOut(context.Background()))
	assert.False(t, m.IsAuthenticated(), "local teardown proceeds even when logout fails")
}

func TestGuideFlag(t *testing.T) {
	m := newTestManager(t, &stubClient{})
	ctx := context.Background()

	show, err := m.ShouldShowGuide(ctx)
	require.NoError(t, err)
	assert.True(t, show, "first ever session shows the guide")

	show, err = m.ShouldShowGuide(ctx)
	require.NoError(t, err)
	assert.False(t, show, "checked at most once per session")

	require.NoError(t, m.MarkGuideSeen(ctx))

	// A fresh session against the same store sees the persisted flag.
	m2 := NewManager(&stubClient{}, m.settings)
	show, err = m2.ShouldShowGuide(ctx)
	require.NoError(t, err)
	assert.False(t, show)
}

func TestOpenFlags(t *testing.T) {
	m := newTestManager(t, &stubClient{})

	m.SetDrawerOpen(true)
	m.SetChatOpen(true)
	drawer, assistant, chat := m.OpenFlags()
	assert.True(t, drawer)
	assert.False(t, assistant)
	assert.True(t, chat)
}
