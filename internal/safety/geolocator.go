package safety

import (
	"context"
	"time"
)

// Position is a single location fix.
type Position struct {
	Lat       float64
	Lng       float64
	AccuracyM float64
	At        time.Time
}

// Subscription is a live continuous-tracking handle. Stop must be safe to
// call more than once.
type Subscription interface {
	Stop()
}

// Geolocator abstracts the platform location provider so the tracker logic
// runs unchanged against a real OS API or a fixed development source.
type Geolocator interface {
	// CheckPermission reports whether location access is already granted,
	// without prompting.
	CheckPermission(ctx context.Context) (bool, error)

	// RequestPermission prompts for location access and reports the result.
	RequestPermission(ctx context.Context) (bool, error)

	// CurrentPosition returns a one-shot fix.
	CurrentPosition(ctx context.Context) (Position, error)

	// Watch begins continuous tracking, invoking fn on every fix until the
	// returned subscription is stopped. fn may be called from another
	// goroutine.
	Watch(ctx context.Context, fn func(Position)) (Subscription, error)
}
