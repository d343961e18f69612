package safety

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/repository"
)

// Tracker owns the safety-mode state machine: a persisted active flag, a
// transient reason, the last known position, and at most one live tracking
// subscription. The subscription handle never leaves the tracker; every exit
// path (Stop, Toggle off, Close) releases it.
type Tracker struct {
	mu sync.Mutex

	geo      Geolocator
	settings repository.SettingsRepo

	active        bool
	reason        string
	hasPermission bool
	current       *Position
	sub           Subscription
}

// NewTracker creates an inactive Tracker. Call Resume to restore a safety
// mode that was active when the previous process exited.
func NewTracker(geo Geolocator, settings repository.SettingsRepo) *Tracker {
	return &Tracker{geo: geo, settings: settings}
}

// Resume restores the persisted active flag and, if it was set, brings
// tracking back up. Meant to run once at startup.
func (t *Tracker) Resume(ctx context.Context) error {
	value, err := t.settings.Get(ctx, repository.SettingSafetyMode)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading safety flag: %w", err)
	}
	if value != "true" {
		return nil
	}
	return t.Start(ctx, "")
}

// Start arms safety mode. The active flag is persisted immediately, before
// permission is confirmed, so a restart mid-prompt still restores the armed
// state. A second Start while a subscription is live is a no-op. Permission
// denial is not an error: the mode stays armed without reporting, and
// HasPermission tells the UI so.
func (t *Tracker) Start(ctx context.Context, reason string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.settings.Set(ctx, repository.SettingSafetyMode, "true"); err != nil {
		return fmt.Errorf("persisting safety flag: %w", err)
	}
	t.active = true
	if reason != "" {
		t.reason = reason
	}

	if t.sub != nil {
		return nil
	}

	granted, err := t.geo.RequestPermission(ctx)
	if err != nil || !granted {
		t.hasPermission = false
		return nil
	}
	t.hasPermission = true

	if pos, err := t.geo.CurrentPosition(ctx); err == nil {
		t.current = &pos
	}

	sub, err := t.geo.Watch(ctx, t.record)
	if err != nil {
		return fmt.Errorf("starting location watch: %w", err)
	}
	t.sub = sub
	return nil
}

// Stop disarms safety mode: the subscription is torn down unconditionally,
// the reason is cleared, and the flag is persisted off.
func (t *Tracker) Stop(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.sub != nil {
		t.sub.Stop()
		t.sub = nil
	}
	t.active = false
	t.reason = ""

	if err := t.settings.Set(ctx, repository.SettingSafetyMode, "false"); err != nil {
		return fmt.Errorf("persisting safety flag: %w", err)
	}
	return nil
}

// Toggle stops safety mode when active, otherwise starts it with reason.
func (t *Tracker) Toggle(ctx context.Context, reason string) error {
	t.mu.Lock()
	active := t.active
	t.mu.Unlock()

	if active {
		return t.Stop(ctx)
	}
	return t.Start(ctx, reason)
}

// Close releases the tracking subscription without touching the persisted
// flag, so a process exit while armed resumes tracking on the next start.
func (t *Tracker) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.sub != nil {
		t.sub.Stop()
		t.sub = nil
	}
}

// RefreshLocation performs a one-shot position fetch, requesting permission
// first if needed. It returns nil on any failure: denied, unavailable, or
// timed out.
func (t *Tracker) RefreshLocation(ctx context.Context) *Position {
	granted, err := t.geo.CheckPermission(ctx)
	if err != nil {
		return nil
	}
	if !granted {
		granted, err = t.geo.RequestPermission(ctx)
		if err != nil || !granted {
			t.mu.Lock()
			t.hasPermission = false
			t.mu.Unlock()
			return nil
		}
	}

	pos, err := t.geo.CurrentPosition(ctx)
	if err != nil {
		return nil
	}

	t.mu.Lock()
	t.hasPermission = true
	t.current = &pos
	t.mu.Unlock()
	return &pos
}

// Active reports whether safety mode is armed.
func (t *Tracker) Active() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}

// Reason returns the transient reason supplied when the mode was armed.
func (t *Tracker) Reason() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.reason
}

// HasPermission reports whether the last permission interaction succeeded.
// Armed-without-permission means the mode is on but no data flows.
func (t *Tracker) HasPermission() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.hasPermission
}

// CurrentLocation returns a copy of the last known position, or nil when no
// fix has arrived yet.
func (t *Tracker) CurrentLocation() *Position {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.current == nil {
		return nil
	}
	pos := *t.current
	return &pos
}

// record is the watch callback. Fixes that race a teardown are dropped.
func (t *Tracker) record(pos Position) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.sub == nil {
		return
	}
	t.current = &pos
}
