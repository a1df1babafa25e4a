package watch

import (
	"sync"
	"time"
)

// DefaultDebounceDuration coalesces editor save bursts.
const DefaultDebounceDuration = 200 * time.Millisecond

// Debouncer runs the last triggered function once the duration has passed
// without another trigger.
type Debouncer struct {
	duration time.Duration
	mu       sync.Mutex
	timer    *time.Timer
}

// NewDebouncer returns a debouncer; a non-positive d uses the default.
func NewDebouncer(d time.Duration) *Debouncer {
	if d <= 0 {
		d = DefaultDebounceDuration
	}
	return &Debouncer{duration: d}
}

// Trigger (re)starts the quiet period and replaces the pending function.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.duration, fn)
}

// Cancel drops the pending function, if any.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Duration returns the quiet period.
func (d *Debouncer) Duration() time.Duration { return d.duration }
