package config

import "time"

const (
	// Simulation cadence
	WakeUpIntervalMinutes = 0.5 / 60.0 // Wake cadence in minutes (one tick per 0.5s)

	// Lorenz trajectory
	LorenzPointsPerUpdate = 5            // Points appended to the trajectory per wake tick
	LorenzMaxPoints       = 500          // Trajectory buffer capacity
	LorenzRotationSpeed   = 0.0523598776 // Projection rotation per update in radians (3 degrees)

	// Astronomy
	TimezoneOffsetHours = 1       // Hours from UTC; Amsterdam (CET), 2 for CEST
	Latitude            = 52.3676 // Degrees, positive = North
	Longitude           = 4.9041  // Degrees, positive = East

	// Display
	AspectRatio = 0.5 // Terminal char aspect correction (chars are ~2:1 tall)
	TargetFPS   = 30  // Target frames per second

	// GIF export (matches the e-ink demo tool)
	ExportFrames        = 30  // Frames per exported animation
	ExportPointsPerStep = 50  // Integration points per exported frame
	ExportFrameSize     = 200 // Square frame edge in pixels
	ExportFrameDelay    = 100 * time.Millisecond

	// App
	AppName    = "CHAOSWATCH"
	AppVersion = "1.0"
)

// WakeInterval converts a wake cadence in minutes to a duration.
func WakeInterval(minutes float64) time.Duration {
	return time.Duration(minutes * float64(time.Minute))
}
