package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/domain"
	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/remote"
	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/repository"
)

// Snapshot is a point-in-time view of the session state for rendering.
type Snapshot struct {
	Authenticated bool
	DemoMode      bool
	Loading       bool
	Role          domain.Role
	User          *domain.User
}

// Manager owns the session/role state machine: the authenticated user, demo
// mode, the active role, and the transient UI open-flags. All methods are
// safe for concurrent use.
//
// Role assignment is reactive: every time a real user is applied, the role is
// recomputed from the user's backend role, overriding any manual switch made
// since the previous apply. Only real client users can hold a manually chosen
// buyer/seller role across refetches.
type Manager struct {
	mu sync.Mutex

	client   remote.Client
	settings repository.SettingsRepo

	user     *domain.User
	role     domain.Role
	demoMode bool
	loading  bool

	drawerOpen    bool
	assistantOpen bool
	chatOpen      bool

	guideChecked bool
}

// NewManager creates a Manager in the unauthenticated state with the role
// defaulted to client_buyer. The loading flag starts true so that redirect
// checks stay suppressed until the first user fetch settles.
func NewManager(client remote.Client, settings repository.SettingsRepo) *Manager {
	return &Manager{
		client:   client,
		settings: settings,
		role:     domain.RoleClientBuyer,
		loading:  true,
	}
}

// RefreshUser fetches the current user from the backend and applies it. An
// anonymous session applies a nil user; a transport failure also settles the
// loading flag so callers do not redirect-loop on a dead backend.
func (m *Manager) RefreshUser(ctx context.Context) error {
	user, err := m.client.CurrentUser(ctx)
	m.ApplyUser(user)
	if err != nil {
		return fmt.Errorf("fetching current user: %w", err)
	}
	return nil
}

// ApplyUser commits a fetched user object and runs the role auto-assignment
// effect: agents get the agent role, every other real user gets client_buyer.
// A nil user leaves the role untouched. This always clears the loading flag.
func (m *Manager) ApplyUser(user *domain.User) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.user = user
	m.loading = false
	if user == nil {
		return
	}
	if user.Role == domain.RoleAgent {
		m.role = domain.RoleAgent
	} else {
		m.role = domain.RoleClientBuyer
	}
}

// EnterDemo switches to demo mode and forces the agent role. The real user,
// if any, is retained underneath but hidden from EffectiveUser.
func (m *Manager) EnterDemo() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.demoMode = true
	m.role = domain.RoleAgent
}

// ExitDemo clears demo mode and resets the role to client_buyer. A real
// session underneath is not restored here; its role comes back on the next
// ApplyUser.
func (m *Manager) ExitDemo() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.demoMode = false
	m.role = domain.RoleClientBuyer
}

// SignOut tears down the session. The backend logout call is best-effort:
// local state is cleared and the user refetched regardless of its outcome.
func (m *Manager) SignOut(ctx context.Context) error {
	_ = m.client.SignOut(ctx)

	m.mu.Lock()
	m.demoMode = false
	m.user = nil
	m.role = domain.RoleClientBuyer
	m.guideChecked = false
	m.mu.Unlock()

	return m.RefreshUser(ctx)
}

// SetRole manually switches the active role. The switch holds until the next
// ApplyUser recomputes the role from the real user.
func (m *Manager) SetRole(role domain.Role) error {
	if !domain.ValidRoles[string(role)] {
		return fmt.Errorf("unknown role %q", role)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.role = role
	return nil
}

// EffectiveUser returns the identity the rest of the app should see: the
// synthetic demo agent while demo mode is on, otherwise the real user (which
// may be nil).
func (m *Manager) EffectiveUser() *domain.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.demoMode {
		return domain.DemoUser()
	}
	return m.user
}

// IsAuthenticated reports whether any session, demo or real, is active.
func (m *Manager) IsAuthenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.demoMode || m.user != nil
}

// Role returns the active role.
func (m *Manager) Role() domain.Role {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.role
}

// Loading reports whether the initial user fetch is still outstanding.
func (m *Manager) Loading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}

// ShouldRedirectToLogin reports whether an auth-gated surface should bounce
// to sign-in. Suppressed while the user fetch is pending so a slow backend
// does not cause a flash redirect.
func (m *Manager) ShouldRedirectToLogin() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return !m.loading && !m.demoMode && m.user == nil
}

// Snapshot returns the current state for rendering.
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	user := m.user
	if m.demoMode {
		user = domain.DemoUser()
	}
	return Snapshot{
		Authenticated: m.demoMode || m.user != nil,
		DemoMode:      m.demoMode,
		Loading:       m.loading,
		Role:          m.role,
		User:          user,
	}
}

// ShouldShowGuide reports whether the welcome guide should be shown. The
// persisted flag is consulted at most once per session; once this returns
// true the guide is considered handled and MarkGuideSeen should follow.
func (m *Manager) ShouldShowGuide(ctx context.Context) (bool, error) {
	m.mu.Lock()
	if m.guideChecked {
		m.mu.Unlock()
		return false, nil
	}
	m.guideChecked = true
	m.mu.Unlock()

	value, err := m.settings.Get(ctx, repository.SettingGuideSeen)
	if errors.Is(err, repository.ErrNotFound) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading guide flag: %w", err)
	}
	return value != "true", nil
}

// MarkGuideSeen persists that the welcome guide has been shown.
func (m *Manager) MarkGuideSeen(ctx context.Context) error {
	if err := m.settings.Set(ctx, repository.SettingGuideSeen, "true"); err != nil {
		return fmt.Errorf("persisting guide flag: %w", err)
	}
	return nil
}

// SetDrawerOpen toggles the navigation drawer flag.
func (m *Manager) SetDrawerOpen(open bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drawerOpen = open
}

// SetAssistantOpen toggles the assistant panel flag.
func (m *Manager) SetAssistantOpen(open bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.assistantOpen = open
}

// SetChatOpen toggles the chat panel flag.
func (m *Manager) SetChatOpen(open bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.chatOpen = open
}

// OpenFlags returns the drawer, assistant, and chat open-flags.
func (m *Manager) OpenFlags() (drawer, assistant, chat bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.drawerOpen, m.assistantOpen, m.chatOpen
}
