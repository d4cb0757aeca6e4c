package config

import (
	"fmt"
	"strconv"
	"time"
)

// Setting identifies a single settable field of the document. Each value
// carries its own validated setter; there is no dotted-path traversal.
type Setting int

const (
	SettingBrightness Setting = iota
	SettingDimAfter
	SettingNightShiftEnabled
	SettingNightShiftStart
	SettingNightShiftEnd
	SettingNightShiftWarmth
	SettingTimeFormat
	SettingTimezone
	SettingAnimIntensity
	SettingSpringPhysics
	SettingDurationMultiplier
	SettingHapticFeedback
	SettingDevTools
	SettingPerfMonitor
)

// All lists every setting in overlay display order.
var All = []Setting{
	SettingBrightness,
	SettingDimAfter,
	SettingNightShiftEnabled,
	SettingNightShiftStart,
	SettingNightShiftEnd,
	SettingNightShiftWarmth,
	SettingTimeFormat,
	SettingTimezone,
	SettingAnimIntensity,
	SettingSpringPhysics,
	SettingDurationMultiplier,
	SettingHapticFeedback,
	SettingDevTools,
	SettingPerfMonitor,
}

var settingNames = map[Setting]string{
	SettingBrightness:         "Brightness",
	SettingDimAfter:           "Dim after",
	SettingNightShiftEnabled:  "Night shift",
	SettingNightShiftStart:    "Night shift start",
	SettingNightShiftEnd:      "Night shift end",
	SettingNightShiftWarmth:   "Night shift warmth",
	SettingTimeFormat:         "Clock format",
	SettingTimezone:           "Timezone",
	SettingAnimIntensity:      "Animation intensity",
	SettingSpringPhysics:      "Spring physics",
	SettingDurationMultiplier: "Animation speed",
	SettingHapticFeedback:     "Haptic feedback",
	SettingDevTools:           "Dev tools",
	SettingPerfMonitor:        "Performance monitor",
}

// Name returns the human-readable label for the settings overlay.
func (s Setting) Name() string { return settingNames[s] }

// Value formats the current value of this setting for display.
func (s Setting) Value(cfg Config) string {
	switch s {
	case SettingBrightness:
		return fmt.Sprintf("%d%%", cfg.Display.Brightness)
	case SettingDimAfter:
		return fmt.Sprintf("%ds", cfg.Display.DimAfter)
	case SettingNightShiftEnabled:
		return onOff(cfg.Display.NightShift.Enabled)
	case SettingNightShiftStart:
		return cfg.Display.NightShift.StartTime
	case SettingNightShiftEnd:
		return cfg.Display.NightShift.EndTime
	case SettingNightShiftWarmth:
		return fmt.Sprintf("%.0f%%", cfg.Display.NightShift.Warmth*100)
	case SettingTimeFormat:
		return cfg.Time.Format
	case SettingTimezone:
		return cfg.Time.Timezone
	case SettingAnimIntensity:
		return cfg.Animations.Intensity
	case SettingSpringPhysics:
		return onOff(cfg.Animations.SpringPhysics)
	case SettingDurationMultiplier:
		return fmt.Sprintf("%.2fx", cfg.Animations.DurationMultiplier)
	case SettingHapticFeedback:
		return onOff(cfg.Features.HapticFeedback)
	case SettingDevTools:
		return onOff(cfg.Features.DevTools)
	case SettingPerfMonitor:
		return onOff(cfg.Features.PerformanceMonitor)
	}
	return ""
}

// Apply validates value and writes it into cfg. The document is untouched
// when validation fails.
func (s Setting) Apply(cfg *Config, value any) error {
	switch s {
	case SettingBrightness:
		n, err := intValue(value)
		if err != nil {
			return err
		}
		if n < 0 || n > 100 {
			return fmt.Errorf("brightness %d out of range 0..100", n)
		}
		cfg.Display.Brightness = n
	case SettingDimAfter:
		n, err := intValue(value)
		if err != nil {
			return err
		}
		if n <= 0 {
			return fmt.Errorf("dim timeout must be positive, got %d", n)
		}
		cfg.Display.DimAfter = n
	case SettingNightShiftEnabled:
		b, err := boolValue(value)
		if err != nil {
			return err
		}
		cfg.Display.NightShift.Enabled = b
	case SettingNightShiftStart:
		t, err := clockValue(value)
		if err != nil {
			return err
		}
		cfg.Display.NightShift.StartTime = t
	case SettingNightShiftEnd:
		t, err := clockValue(value)
		if err != nil {
			return err
		}
		cfg.Display.NightShift.EndTime = t
	case SettingNightShiftWarmth:
		f, err := floatValue(value)
		if err != nil {
			return err
		}
		if f < 0 || f > 1 {
			return fmt.Errorf("warmth %.2f out of range 0..1", f)
		}
		cfg.Display.NightShift.Warmth = f
	case SettingTimeFormat:
		v, err := stringValue(value)
		if err != nil {
			return err
		}
		if v != "12h" && v != "24h" {
			return fmt.Errorf("clock format %q, want 12h or 24h", v)
		}
		cfg.Time.Format = v
	case SettingTimezone:
		v, err := stringValue(value)
		if err != nil {
			return err
		}
		if _, err := time.LoadLocation(v); err != nil {
			return fmt.Errorf("unknown timezone %q", v)
		}
		cfg.Time.Timezone = v
	case SettingAnimIntensity:
		v, err := stringValue(value)
		if err != nil {
			return err
		}
		switch v {
		case "low", "medium", "high":
		default:
			return fmt.Errorf("intensity %q, want low, medium or high", v)
		}
		cfg.Animations.Intensity = v
	case SettingSpringPhysics:
		b, err := boolValue(value)
		if err != nil {
			return err
		}
		cfg.Animations.SpringPhysics = b
	case SettingDurationMultiplier:
		f, err := floatValue(value)
		if err != nil {
			return err
		}
		if f <= 0 {
			return fmt.Errorf("duration multiplier must be positive, got %.2f", f)
		}
		cfg.Animations.DurationMultiplier = f
	case SettingHapticFeedback:
		b, err := boolValue(value)
		if err != nil {
			return err
		}
		cfg.Features.HapticFeedback = b
	case SettingDevTools:
		b, err := boolValue(value)
		if err != nil {
			return err
		}
		cfg.Features.DevTools = b
	case SettingPerfMonitor:
		b, err := boolValue(value)
		if err != nil {
			return err
		}
		cfg.Features.PerformanceMonitor = b
	default:
		return fmt.Errorf("unknown setting %d", s)
	}
	return nil
}

// ParseClock validates an "HH:MM" string and returns minutes of day.
func ParseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("bad clock time %q: %w", s, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func intValue(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case float64:
		return int(n), nil
	case string:
		return strconv.Atoi(n)
	}
	return 0, fmt.Errorf("expected integer, got %T", v)
}

func floatValue(v any) (float64, error) {
	switch f := v.(type) {
	case float64:
		return f, nil
	case int:
		return float64(f), nil
	case string:
		return strconv.ParseFloat(f, 64)
	}
	return 0, fmt.Errorf("expected number, got %T", v)
}

func boolValue(v any) (bool, error) {
	if b, ok := v.(bool); ok {
		return b, nil
	}
	return false, fmt.Errorf("expected bool, got %T", v)
}

func stringValue(v any) (string, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	return "", fmt.Errorf("expected string, got %T", v)
}

func clockValue(v any) (string, error) {
	s, err := stringValue(v)
	if err != nil {
		return "", err
	}
	if _, err := ParseClock(s); err != nil {
		return "", err
	}
	return s, nil
}
