// Package timer implements the countdown with its three-phase styling and
// one-shot completion signal.
package timer

import "haloboard.dev/internal/config"

// Phase classifies the remaining time for presentation.
type Phase int

const (
	PhaseIdle     Phase = iota // nothing loaded
	PhaseNormal                // loaded or running, plenty of time
	PhaseUrgent                // last ten seconds
	PhaseCritical              // last few seconds, pulsing
)

// Countdown is the kiosk countdown timer. State is not persisted; it dies
// with the process.
type Countdown struct {
	remaining int
	running   bool
}

// New returns a cleared countdown.
func New() *Countdown {
	return &Countdown{}
}

// Remaining returns seconds left.
func (c *Countdown) Remaining() int { return c.remaining }

// Running reports whether the countdown is ticking.
func (c *Countdown) Running() bool { return c.running }

// AddTime increases remaining time while stopped. A running countdown's
// duration is immutable; the call is ignored and reports false.
func (c *Countdown) AddTime(seconds int) bool {
	if c.running || seconds <= 0 {
		return false
	}
	c.remaining += seconds
	return true
}

// Start begins ticking. No-op with nothing loaded.
func (c *Countdown) Start() {
	if c.remaining > 0 {
		c.running = true
	}
}

// Pause stops ticking, preserving remaining time.
func (c *Countdown) Pause() {
	c.running = false
}

// Clear stops ticking and zeroes the countdown.
func (c *Countdown) Clear() {
	c.running = false
	c.remaining = 0
}

// Tick advances one second. Returns true exactly once per run, on the tick
// that reaches zero; the countdown is then cleared and stopped.
func (c *Countdown) Tick() (completed bool) {
	if !c.running {
		return false
	}
	c.remaining--
	if c.remaining <= 0 {
		c.remaining = 0
		c.running = false
		return true
	}
	return false
}

// Phase returns the presentation phase for the current remaining time.
func (c *Countdown) Phase() Phase {
	switch {
	case c.remaining == 0:
		return PhaseIdle
	case c.remaining <= config.CriticalThreshold:
		return PhaseCritical
	case c.remaining <= config.UrgentThreshold:
		return PhaseUrgent
	}
	return PhaseNormal
}
