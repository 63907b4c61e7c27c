package usecase

import (
	"sync"
	"time"
)

// DebounceDelay is the quiet period a keystroke burst must observe
// before a suggestion lookup fires.
const DebounceDelay = 300 * time.Millisecond

// Debouncer coalesces rapid triggers: only the function passed to the
// last Trigger within the delay window runs. Session-scoped, for API
// consumers driving the suggestion endpoint from an input stream; it is
// not part of the HTTP wiring.
type Debouncer struct {
	delay time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DebounceDelay
	}
	return &Debouncer{delay: delay}
}

func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancels any pending trigger. Safe to call on teardown even when
// nothing is scheduled.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
