package config

import "time"

const (
	// Heartbeat drives idle, night shift and the countdown from one tick.
	HeartbeatInterval = 1 * time.Second
	NightShiftEvery   = 60 // heartbeats between night shift re-evaluations

	// Frame tick for boot animation and the critical-phase pulse.
	TargetFPS = 15

	// Countdown styling thresholds
	UrgentThreshold   = 10 // seconds remaining
	CriticalThreshold = 3

	// Flash updates
	FlashPollInterval = 2 * time.Second
	FlashExtension    = ".js"
	ProcessedDirName  = "processed"

	// First-run directory layout under the data dir
	ModulesDirName = "modules"
	FlashDirName   = "flash"
	ConfigDirName  = "config"
	SettingsFile   = "settings.json"
	LogFile        = "haloboard.log"

	// App
	AppName    = "HALOBOARD"
	AppVersion = "2.1"
)
