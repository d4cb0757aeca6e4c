package config

// SchemaVersion is the settings document schema version. Bump on any field
// addition so older documents get repaired by the default-fill pass.
const SchemaVersion = "2.1.0"

// Config is the persisted settings document. Every field is always populated
// after Load; readers never need to nil-check nested sections.
type Config struct {
	Version    string           `json:"version"`
	Display    DisplayConfig    `json:"display"`
	Time       TimeConfig       `json:"time"`
	Animations AnimationsConfig `json:"animations"`
	Features   FeaturesConfig   `json:"features"`
}

// DisplayConfig controls brightness, idle dimming and the night shift tint.
type DisplayConfig struct {
	Brightness int              `json:"brightness"` // 0..100
	DimAfter   int              `json:"dimAfter"`   // seconds of inactivity before dimming
	NightShift NightShiftConfig `json:"nightShift"`
}

// NightShiftConfig describes the warm tint window.
type NightShiftConfig struct {
	Enabled   bool    `json:"enabled"`
	StartTime string  `json:"startTime"` // "HH:MM"
	EndTime   string  `json:"endTime"`   // "HH:MM"
	Warmth    float64 `json:"warmth"`    // 0..1 overlay opacity
}

// TimeConfig controls the clock face.
type TimeConfig struct {
	Format   string `json:"format"`   // "12h" or "24h"
	Timezone string `json:"timezone"` // IANA zone name
}

// AnimationsConfig tunes transition behavior.
type AnimationsConfig struct {
	Intensity          string  `json:"intensity"` // "low", "medium", "high"
	SpringPhysics      bool    `json:"springPhysics"`
	DurationMultiplier float64 `json:"durationMultiplier"`
}

// FeaturesConfig gates optional shell features.
type FeaturesConfig struct {
	HapticFeedback     bool `json:"hapticFeedback"`
	DevTools           bool `json:"devTools"`
	PerformanceMonitor bool `json:"performanceMonitor"`
}

// Defaults returns a fully-populated default document.
func Defaults() Config {
	return Config{
		Version: SchemaVersion,
		Display: DisplayConfig{
			Brightness: 100,
			DimAfter:   120,
			NightShift: NightShiftConfig{
				Enabled:   false,
				StartTime: "22:00",
				EndTime:   "07:00",
				Warmth:    0.3,
			},
		},
		Time: TimeConfig{
			Format:   "24h",
			Timezone: "Local",
		},
		Animations: AnimationsConfig{
			Intensity:          "medium",
			SpringPhysics:      true,
			DurationMultiplier: 1.0,
		},
		Features: FeaturesConfig{
			HapticFeedback:     false,
			DevTools:           false,
			PerformanceMonitor: false,
		},
	}
}
