package shell

import (
	"fmt"
	"math"

	tea "github.com/charmbracelet/bubbletea"

	"haloboard.dev/internal/config"
)

// Timezones offered by left/right cycling. Anything else can be typed in
// edit mode; the setter validates against the zone database either way.
var timezoneChoices = []string{
	"Local", "UTC", "America/New_York", "America/Los_Angeles",
	"Europe/London", "Europe/Berlin", "Asia/Tokyo", "Australia/Sydney",
}

func (m AppModel) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		return m.handleEditKey(msg)
	}

	switch msg.String() {
	case "esc", "s", "S", "q":
		m.settingsOpen = false
		m.settingsErr = ""

	case "up", "k":
		if m.settingsCursor > 0 {
			m.settingsCursor--
		}
		m.settingsErr = ""

	case "down", "j":
		if m.settingsCursor < len(config.All)-1 {
			m.settingsCursor++
		}
		m.settingsErr = ""

	case "left", "h":
		m.adjustCurrent(-1)

	case "right", "l":
		m.adjustCurrent(+1)

	case "enter":
		s := config.All[m.settingsCursor]
		if isTextSetting(s) {
			m.editing = true
			m.editBuffer = ""
			m.settingsErr = ""
		} else {
			m.adjustCurrent(+1)
		}
	}

	return m, nil
}

func (m AppModel) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		s := config.All[m.settingsCursor]
		if err := m.UpdateSetting(s, m.editBuffer); err != nil {
			m.settingsErr = err.Error()
		} else {
			m.editing = false
			m.editBuffer = ""
			m.settingsErr = ""
		}

	case tea.KeyEsc:
		m.editing = false
		m.editBuffer = ""
		m.settingsErr = ""

	case tea.KeyBackspace:
		if len(m.editBuffer) > 0 {
			m.editBuffer = m.editBuffer[:len(m.editBuffer)-1]
		}

	case tea.KeyRunes:
		m.editBuffer += string(msg.Runes)
	}

	return m, nil
}

// adjustCurrent steps the cursor row's value and persists the change.
// Validation failures surface on the overlay's error line.
func (m *AppModel) adjustCurrent(dir int) {
	s := config.All[m.settingsCursor]
	value, ok := nextValue(s, m.shared.cfg, dir)
	if !ok {
		return
	}
	if err := m.UpdateSetting(s, value); err != nil {
		m.settingsErr = err.Error()
		return
	}
	m.settingsErr = ""
}

// nextValue computes the stepped value for a setting. Text settings that
// need free entry report ok=false and are handled in edit mode instead.
func nextValue(s config.Setting, cfg config.Config, dir int) (any, bool) {
	switch s {
	case config.SettingBrightness:
		return clampInt(cfg.Display.Brightness+dir*5, 0, 100), true
	case config.SettingDimAfter:
		return clampInt(cfg.Display.DimAfter+dir*15, 15, 3600), true
	case config.SettingNightShiftEnabled:
		return !cfg.Display.NightShift.Enabled, true
	case config.SettingNightShiftStart:
		return stepClock(cfg.Display.NightShift.StartTime, dir*15), true
	case config.SettingNightShiftEnd:
		return stepClock(cfg.Display.NightShift.EndTime, dir*15), true
	case config.SettingNightShiftWarmth:
		v := math.Round((cfg.Display.NightShift.Warmth+float64(dir)*0.05)*100) / 100
		return math.Max(0, math.Min(1, v)), true
	case config.SettingTimeFormat:
		if cfg.Time.Format == "24h" {
			return "12h", true
		}
		return "24h", true
	case config.SettingTimezone:
		return cycleChoice(timezoneChoices, cfg.Time.Timezone, dir), true
	case config.SettingAnimIntensity:
		return cycleChoice([]string{"low", "medium", "high"}, cfg.Animations.Intensity, dir), true
	case config.SettingSpringPhysics:
		return !cfg.Animations.SpringPhysics, true
	case config.SettingDurationMultiplier:
		v := math.Round((cfg.Animations.DurationMultiplier+float64(dir)*0.25)*100) / 100
		return math.Max(0.25, v), true
	case config.SettingHapticFeedback:
		return !cfg.Features.HapticFeedback, true
	case config.SettingDevTools:
		return !cfg.Features.DevTools, true
	case config.SettingPerfMonitor:
		return !cfg.Features.PerformanceMonitor, true
	}
	return nil, false
}

// isTextSetting reports whether enter opens free text entry for s.
func isTextSetting(s config.Setting) bool {
	switch s {
	case config.SettingNightShiftStart, config.SettingNightShiftEnd, config.SettingTimezone:
		return true
	}
	return false
}

func (m AppModel) editIndicator() string {
	if m.editing {
		return m.editBuffer
	}
	return ""
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// stepClock shifts an "HH:MM" value by delta minutes, wrapping at midnight.
func stepClock(clock string, delta int) string {
	minutes, err := config.ParseClock(clock)
	if err != nil {
		minutes = 0
	}
	minutes = ((minutes+delta)%1440 + 1440) % 1440
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func cycleChoice(choices []string, current string, dir int) string {
	idx := 0
	for i, c := range choices {
		if c == current {
			idx = i
			break
		}
	}
	idx = ((idx+dir)%len(choices) + len(choices)) % len(choices)
	return choices[idx]
}
