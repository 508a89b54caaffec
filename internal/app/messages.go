package app

import (
	"time"

	"chaoswatch.karkala.dev/internal/config"
)

// FrameMsg triggers a display repaint.
type FrameMsg time.Time

// WakeMsg triggers one simulation update (the device "wake").
type WakeMsg time.Time

// SettingsMsg carries reloaded settings from the config watcher.
type SettingsMsg struct {
	Settings config.Settings
}
