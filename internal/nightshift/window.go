// Package nightshift evaluates the warm tint time window. Evaluation is a
// pure function of the clock and configuration so re-running it on every
// heartbeat cycle is free of side effects.
package nightshift

import (
	"time"

	"haloboard.dev/internal/config"
)

// Result describes the tint to apply after an evaluation.
type Result struct {
	Active bool
	Warmth float64 // overlay opacity, 0..1, zero when inactive
}

// InWindow reports whether now falls inside the [start, end) window, all in
// minutes of day. A window whose start is after its end crosses midnight:
// it is active when now >= start or now < end.
func InWindow(now, start, end int) bool {
	if start > end {
		return now >= start || now < end
	}
	return now >= start && now < end
}

// Evaluate computes the tint for the given wall-clock time.
func Evaluate(ns config.NightShiftConfig, now time.Time) Result {
	if !ns.Enabled {
		return Result{}
	}

	start, err := config.ParseClock(ns.StartTime)
	if err != nil {
		return Result{}
	}
	end, err := config.ParseClock(ns.EndTime)
	if err != nil {
		return Result{}
	}

	minutes := now.Hour()*60 + now.Minute()
	if !InWindow(minutes, start, end) {
		return Result{}
	}
	return Result{Active: true, Warmth: ns.Warmth}
}
