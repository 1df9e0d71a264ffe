// Package dashboard drives the periodic refresh cycle and owns top-level
// resilience: no failure below this boundary may terminate the process.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"spacewx/internal/logger"
	"spacewx/internal/models"
)

// Fetcher is the data capability invoked once per cycle.
type Fetcher interface {
	FetchAll(ctx context.Context, start, end time.Time) models.Snapshot
}

// Options configures the refresh loop.
type Options struct {
	// RefreshInterval is the pause between clean cycles.
	RefreshInterval time.Duration
	// RecoveryInterval is the shorter pause after a failed cycle.
	RecoveryInterval time.Duration
	// EventWindowDays is the date range requested from the event feeds.
	EventWindowDays int
	// Size reports the frame dimensions; defaults to the terminal size.
	Size func() (int, int)
}

// Dashboard runs the fetch-build-render loop. All panel state is local to
// a cycle: each tick fetches fresh, builds a complete frame, and hands it
// to the renderer in a single call, so a viewer never sees a frame mixing
// two cycles.
type Dashboard struct {
	fetcher          Fetcher
	renderer         Renderer
	refreshInterval  time.Duration
	recoveryInterval time.Duration
	eventWindowDays  int
	size             func() (int, int)
	now              func() time.Time
	log              *logger.Logger
}

// New creates a dashboard instance
func New(fetcher Fetcher, renderer Renderer, opts Options) *Dashboard {
	if opts.RefreshInterval <= 0 {
		opts.RefreshInterval = 180 * time.Second
	}
	if opts.RecoveryInterval <= 0 {
		opts.RecoveryInterval = 30 * time.Second
	}
	if opts.EventWindowDays <= 0 {
		opts.EventWindowDays = 7
	}
	if opts.Size == nil {
		opts.Size = TerminalSize
	}

	return &Dashboard{
		fetcher:          fetcher,
		renderer:         renderer,
		refreshInterval:  opts.RefreshInterval,
		recoveryInterval: opts.RecoveryInterval,
		eventWindowDays:  opts.EventWindowDays,
		size:             opts.Size,
		now:              func() time.Time { return time.Now().UTC() },
		log:              logger.Global().WithComponent("dashboard"),
	}
}

// Run drives the refresh loop until ctx is cancelled. A failed cycle is
// reported and retried after the recovery pause; cancellation is observed
// at every suspension point and exits cleanly with a closing message.
func (d *Dashboard) Run(ctx context.Context) error {
	d.renderer.Start()
	defer d.renderer.Stop("Dashboard closed.")

	for {
		delay := d.refreshInterval
		if _, err := d.cycle(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			d.log.Error("refresh cycle failed", err)
			delay = d.recoveryInterval
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
		}
	}
}

// RunOnce performs a single fetch-and-render cycle and returns the
// snapshot it displayed.
func (d *Dashboard) RunOnce(ctx context.Context) (models.Snapshot, error) {
	return d.cycle(ctx)
}

// cycle fetches every feed, builds the frame, and renders it. Panics
// anywhere in the cycle are recovered here so a single bad cycle can
// never take the process down.
func (d *Dashboard) cycle(ctx context.Context) (snap models.Snapshot, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("refresh cycle panicked: %v", r)
		}
	}()

	end := d.now()
	start := end.AddDate(0, 0, -d.eventWindowDays)

	snap = d.fetcher.FetchAll(ctx, start, end)
	if ctx.Err() != nil {
		return snap, ctx.Err()
	}

	w, h := d.size()
	d.renderer.Render(BuildFrame(snap, w, h))
	return snap, nil
}
