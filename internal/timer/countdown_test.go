package timer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFullRunCompletesExactlyOnce(t *testing.T) {
	c := New()
	require.True(t, c.AddTime(60))
	c.Start()
	require.True(t, c.Running())

	completions := 0
	for i := 0; i < 60; i++ {
		if c.Tick() {
			completions++
		}
	}

	require.Equal(t, 1, completions)
	require.Zero(t, c.Remaining())
	require.False(t, c.Running())
	require.Equal(t, PhaseIdle, c.Phase())

	// Ticking a finished countdown never re-fires.
	require.False(t, c.Tick())
}

func TestAddTimeRejectedWhileRunning(t *testing.T) {
	c := New()
	c.AddTime(30)
	c.Start()

	require.False(t, c.AddTime(60))
	require.Equal(t, 30, c.Remaining())

	c.Pause()
	require.True(t, c.AddTime(60))
	require.Equal(t, 90, c.Remaining())
}

func TestStartWithNothingLoadedIsNoop(t *testing.T) {
	c := New()
	c.Start()
	require.False(t, c.Running())
}

func TestPausePreservesRemaining(t *testing.T) {
	c := New()
	c.AddTime(10)
	c.Start()
	c.Tick()
	c.Pause()

	require.Equal(t, 9, c.Remaining())
	require.False(t, c.Running())
	require.False(t, c.Tick())
	require.Equal(t, 9, c.Remaining())
}

func TestClearStopsAndZeroes(t *testing.T) {
	c := New()
	c.AddTime(120)
	c.Start()
	c.Clear()

	require.Zero(t, c.Remaining())
	require.False(t, c.Running())
}

func TestPhaseThresholds(t *testing.T) {
	c := New()
	c.AddTime(15)
	c.Start()

	require.Equal(t, PhaseNormal, c.Phase())

	for c.Remaining() > 10 {
		c.Tick()
	}
	require.Equal(t, PhaseUrgent, c.Phase())

	for c.Remaining() > 3 {
		c.Tick()
	}
	require.Equal(t, PhaseCritical, c.Phase())
}

func TestAddTimeIgnoresNonPositive(t *testing.T) {
	c := New()
	require.False(t, c.AddTime(0))
	require.False(t, c.AddTime(-5))
	require.Zero(t, c.Remaining())
}
