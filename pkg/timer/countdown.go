// Package timer implements the meditation countdown. The remaining time is
// always computed from the absolute end instant, never from a decremented
// counter, so time spent suspended in the background is accounted for on the
// next sync.
package timer

import (
	"math"
	"time"
)

// Countdown tracks one run of the timer. It holds only transient run-state;
// the recorded session lives in the journal from the moment the run starts.
type Countdown struct {
	durationSec int
	running     bool
	startedAt   time.Time
	endsAt      time.Time
}

// New builds a countdown for the given length in seconds.
func New(durationSec int) *Countdown {
	if durationSec < 0 {
		durationSec = 0
	}
	return &Countdown{durationSec: durationSec}
}

// DurationSec returns the configured length.
func (c *Countdown) DurationSec() int {
	return c.durationSec
}

// Running reports whether a run is in progress.
func (c *Countdown) Running() bool {
	return c.running
}

// Start begins a run at the given instant. Starting a running countdown is a
// no-op.
func (c *Countdown) Start(now time.Time) {
	if c.running {
		return
	}
	c.running = true
	c.startedAt = now
	c.endsAt = now.Add(time.Duration(c.durationSec) * time.Second)
}

// Reset cancels the run and restores the full duration. It touches only
// run-state: a session recorded at start stays recorded.
func (c *Countdown) Reset() {
	c.running = false
	c.startedAt = time.Time{}
	c.endsAt = time.Time{}
}

// Remaining returns the seconds left at the given instant, rounded up.
func (c *Countdown) Remaining(now time.Time) int {
	if !c.running {
		return c.durationSec
	}
	left := int(math.Ceil(c.endsAt.Sub(now).Seconds()))
	if left < 0 {
		return 0
	}
	return left
}

// Progress returns completion in [0, 1] for the given instant.
func (c *Countdown) Progress(now time.Time) float64 {
	if c.durationSec <= 0 {
		return 0
	}
	done := 1 - float64(c.Remaining(now))/float64(c.durationSec)
	if done < 0 {
		return 0
	}
	if done > 1 {
		return 1
	}
	return done
}

// Sync recomputes remaining time from the end instant and reports whether the
// run just finished. Finishing stops the countdown, so the signal fires
// exactly once per run even when Sync is called again.
func (c *Countdown) Sync(now time.Time) (remaining int, finished bool) {
	if !c.running {
		return c.durationSec, false
	}
	remaining = c.Remaining(now)
	if remaining > 0 {
		return remaining, false
	}
	c.Reset()
	return 0, true
}
