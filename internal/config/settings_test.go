package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplyValidValues(t *testing.T) {
	cfg := Defaults()

	require.NoError(t, SettingBrightness.Apply(&cfg, 55))
	require.Equal(t, 55, cfg.Display.Brightness)

	require.NoError(t, SettingDimAfter.Apply(&cfg, 60))
	require.Equal(t, 60, cfg.Display.DimAfter)

	require.NoError(t, SettingNightShiftEnabled.Apply(&cfg, true))
	require.True(t, cfg.Display.NightShift.Enabled)

	require.NoError(t, SettingNightShiftStart.Apply(&cfg, "21:30"))
	require.Equal(t, "21:30", cfg.Display.NightShift.StartTime)

	require.NoError(t, SettingNightShiftWarmth.Apply(&cfg, 0.8))
	require.Equal(t, 0.8, cfg.Display.NightShift.Warmth)

	require.NoError(t, SettingTimeFormat.Apply(&cfg, "12h"))
	require.Equal(t, "12h", cfg.Time.Format)

	require.NoError(t, SettingTimezone.Apply(&cfg, "UTC"))
	require.Equal(t, "UTC", cfg.Time.Timezone)

	require.NoError(t, SettingAnimIntensity.Apply(&cfg, "high"))
	require.Equal(t, "high", cfg.Animations.Intensity)
}

func TestApplyRejectsOutOfRange(t *testing.T) {
	cfg := Defaults()
	orig := cfg

	require.Error(t, SettingBrightness.Apply(&cfg, 150))
	require.Error(t, SettingBrightness.Apply(&cfg, -1))
	require.Error(t, SettingDimAfter.Apply(&cfg, 0))
	require.Error(t, SettingNightShiftWarmth.Apply(&cfg, 1.5))
	require.Error(t, SettingNightShiftStart.Apply(&cfg, "25:00"))
	require.Error(t, SettingNightShiftEnd.Apply(&cfg, "7pm"))
	require.Error(t, SettingTimeFormat.Apply(&cfg, "13h"))
	require.Error(t, SettingTimezone.Apply(&cfg, "Mars/Olympus"))
	require.Error(t, SettingAnimIntensity.Apply(&cfg, "extreme"))
	require.Error(t, SettingDurationMultiplier.Apply(&cfg, 0.0))

	// A rejected value never touches the document.
	require.Equal(t, orig, cfg)
}

func TestApplyRejectsWrongType(t *testing.T) {
	cfg := Defaults()
	require.Error(t, SettingBrightness.Apply(&cfg, true))
	require.Error(t, SettingNightShiftEnabled.Apply(&cfg, "yes"))
	require.Error(t, SettingTimezone.Apply(&cfg, 7))
}

func TestParseClock(t *testing.T) {
	minutes, err := ParseClock("22:00")
	require.NoError(t, err)
	require.Equal(t, 22*60, minutes)

	minutes, err = ParseClock("00:00")
	require.NoError(t, err)
	require.Equal(t, 0, minutes)

	_, err = ParseClock("24:01")
	require.Error(t, err)
	_, err = ParseClock("noonish")
	require.Error(t, err)
}

func TestSettingNamesCoverAll(t *testing.T) {
	cfg := Defaults()
	for _, s := range All {
		require.NotEmpty(t, s.Name())
		require.NotEmpty(t, s.Value(cfg))
	}
}
