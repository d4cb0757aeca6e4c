// Package idle tracks user presence and decides when the display dims.
package idle

import "time"

// State is the presence state of the display.
type State int

const (
	Active State = iota
	Dimmed
)

func (s State) String() string {
	if s == Dimmed {
		return "DIMMED"
	}
	return "ACTIVE"
}

// Tracker transitions between Active and Dimmed based on interaction
// recency. It holds no timers of its own; the shell feeds it heartbeat
// ticks and interaction events.
type Tracker struct {
	dimAfter func() time.Duration

	lastInteraction time.Time
	state           State
}

// NewTracker creates a tracker in the Active state. dimAfter is consulted
// at every reset so a settings change takes effect on the next interaction
// without rescaling an in-flight countdown.
func NewTracker(now time.Time, dimAfter func() time.Duration) *Tracker {
	return &Tracker{
		dimAfter:        dimAfter,
		lastInteraction: now,
		state:           Active,
	}
}

// State returns the current presence state.
func (t *Tracker) State() State { return t.state }

// LastInteraction returns when the user was last seen.
func (t *Tracker) LastInteraction() time.Time { return t.lastInteraction }

// Touch records an interaction. Returns true when this wakes a dimmed
// display.
func (t *Tracker) Touch(now time.Time) bool {
	t.lastInteraction = now
	if t.state == Dimmed {
		t.state = Active
		return true
	}
	return false
}

// Tick re-checks the countdown. Returns true when the display just dimmed.
func (t *Tracker) Tick(now time.Time) bool {
	if t.state == Dimmed {
		return false
	}
	if now.Sub(t.lastInteraction) >= t.dimAfter() {
		t.state = Dimmed
		return true
	}
	return false
}
