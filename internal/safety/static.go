package safety

import (
	"context"
	"sync"
	"time"
)

// StaticGeolocator is a development Geolocator that replays a fixed position
// on an interval. It always grants permission.
type StaticGeolocator struct {
	Pos      Position
	Interval time.Duration
}

// NewStaticGeolocator returns a StaticGeolocator centered on downtown Austin,
// ticking every two seconds.
func NewStaticGeolocator() *StaticGeolocator {
	return &StaticGeolocator{
		Pos:      Position{Lat: 30.2672, Lng: -97.7431, AccuracyM: 15},
		Interval: 2 * time.Second,
	}
}

func (g *StaticGeolocator) CheckPermission(context.Context) (bool, error) {
	return true, nil
}

func (g *StaticGeolocator) RequestPermission(context.Context) (bool, error) {
	return true, nil
}

func (g *StaticGeolocator) CurrentPosition(context.Context) (Position, error) {
	pos := g.Pos
	pos.At = time.Now()
	return pos, nil
}

func (g *StaticGeolocator) Watch(ctx context.Context, fn func(Position)) (Subscription, error) {
	sub := &staticSubscription{done: make(chan struct{})}
	go func() {
		ticker := time.NewTicker(g.Interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				pos := g.Pos
				pos.At = time.Now()
				fn(pos)
			case <-sub.done:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
	return sub, nil
}

type staticSubscription struct {
	once sync.Once
	done chan struct{}
}

func (s *staticSubscription) Stop() {
	s.once.Do(func() { close(s.done) })
}
