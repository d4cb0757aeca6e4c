package shell

import (
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"haloboard.dev/internal/config"
	"haloboard.dev/internal/flash"
	"haloboard.dev/internal/idle"
)

func testModel(t *testing.T) AppModel {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	store, err := config.Open(t.TempDir(), log)
	require.NoError(t, err)
	return New(store, log, false)
}

func step(t *testing.T, m AppModel, msg tea.Msg) AppModel {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(AppModel)
}

func pressKey(t *testing.T, m AppModel, r rune) AppModel {
	t.Helper()
	return step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

func TestHeartbeatCompletesCountdown(t *testing.T) {
	m := testModel(t)

	require.True(t, m.AddTime(60))
	m.StartTimer()

	now := time.Now()
	for i := 0; i < 60; i++ {
		m = step(t, m, HeartbeatMsg(now.Add(time.Duration(i)*time.Second)))
	}

	require.Zero(t, m.shared.countdown.Remaining())
	require.False(t, m.shared.countdown.Running())
}

func TestAddTimeRejectedWhileRunning(t *testing.T) {
	m := testModel(t)
	m.AddTime(30)
	m.StartTimer()

	require.False(t, m.AddTime(60))
	require.Equal(t, 30, m.shared.countdown.Remaining())
}

func TestUpdateSettingPersists(t *testing.T) {
	m := testModel(t)

	require.NoError(t, m.UpdateSetting(config.SettingDimAfter, 60))

	// A fresh load of the persisted document carries the change.
	fresh := m.shared.store.Load()
	require.Equal(t, 60, fresh.Display.DimAfter)
}

func TestUpdateSettingRejectedLeavesDocument(t *testing.T) {
	m := testModel(t)
	before := m.Snapshot()

	require.Error(t, m.UpdateSetting(config.SettingBrightness, 400))
	require.Equal(t, before, m.Snapshot())
	require.Equal(t, before, m.shared.store.Load())
}

func TestHeartbeatDimsIdleDisplay(t *testing.T) {
	m := testModel(t)
	require.Equal(t, idle.Active, m.shared.idle.State())

	timeout := time.Duration(m.Snapshot().Display.DimAfter) * time.Second
	m = step(t, m, HeartbeatMsg(time.Now().Add(timeout+time.Second)))
	require.Equal(t, idle.Dimmed, m.shared.idle.State())

	// Any key wakes the display; the waking key is not a command.
	m = pressKey(t, m, 'q')
	require.Equal(t, idle.Active, m.shared.idle.State())
}

func TestNightShiftAppliedOnSettingsChange(t *testing.T) {
	m := testModel(t)
	require.False(t, m.shared.tint.Active)

	require.NoError(t, m.UpdateSetting(config.SettingNightShiftStart, "00:00"))
	require.NoError(t, m.UpdateSetting(config.SettingNightShiftEnd, "23:59"))
	require.NoError(t, m.UpdateSetting(config.SettingNightShiftEnabled, true))

	require.True(t, m.shared.tint.Active)
	require.Equal(t, m.Snapshot().Display.NightShift.Warmth, m.shared.tint.Warmth)
}

func TestFlashUpdateAnnouncedOnScreen(t *testing.T) {
	m := testModel(t)
	m = step(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m = pressKey(t, m, 'x') // skip boot

	m = step(t, m, flash.UpdateMsg{FileName: "update1.js", DetectedAt: time.Now()})

	require.Equal(t, 1, m.shared.registry.Count())
	require.Contains(t, m.View(), "update1.js")
}

func TestSettingsOverlayAdjustsAndPersists(t *testing.T) {
	m := testModel(t)
	m = step(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m = pressKey(t, m, 'x') // skip boot
	m = pressKey(t, m, 's')
	require.True(t, m.settingsOpen)

	// Cursor starts on Brightness; step it down once.
	before := m.Snapshot().Display.Brightness
	m = step(t, m, tea.KeyMsg{Type: tea.KeyLeft})

	require.Equal(t, before-5, m.Snapshot().Display.Brightness)
	require.Equal(t, before-5, m.shared.store.Load().Display.Brightness)
}

func TestFrameRingAverages(t *testing.T) {
	r := NewFrameRing(4)
	require.Zero(t, r.Avg())

	for i := 0; i < 6; i++ {
		r.Push(10 * time.Millisecond)
	}
	require.Equal(t, 4, r.Len())
	require.Equal(t, 10*time.Millisecond, r.Avg())
}
