package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Settings holds the runtime-overridable subset of the configuration.
// Zero-value fields fall back to the compiled-in constants via Defaults.
type Settings struct {
	WakeUpMinutes  float64 `yaml:"wake_up_minutes"`
	PointsPerTick  int     `yaml:"points_per_tick"`
	MaxPoints      int     `yaml:"max_points"`
	RotationSpeed  float64 `yaml:"rotation_speed"`
	TimezoneOffset int     `yaml:"timezone_offset_hours"`
	Latitude       float64 `yaml:"latitude"`
	Longitude      float64 `yaml:"longitude"`
}

// Defaults returns settings matching the compiled-in constants.
func Defaults() Settings {
	return Settings{
		WakeUpMinutes:  WakeUpIntervalMinutes,
		PointsPerTick:  LorenzPointsPerUpdate,
		MaxPoints:      LorenzMaxPoints,
		RotationSpeed:  LorenzRotationSpeed,
		TimezoneOffset: TimezoneOffsetHours,
		Latitude:       Latitude,
		Longitude:      Longitude,
	}
}

// Load builds settings from defaults, then an optional YAML file, then
// environment variables. Later sources win. The result is validated.
func Load(path string) (Settings, error) {
	s := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return s, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &s); err != nil {
			return s, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	s.applyEnv()

	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

func (s *Settings) applyEnv() {
	if v, ok := lookupFloat("CHAOSWATCH_LATITUDE"); ok {
		s.Latitude = v
	}
	if v, ok := lookupFloat("CHAOSWATCH_LONGITUDE"); ok {
		s.Longitude = v
	}
	if v, ok := lookupInt("CHAOSWATCH_TZ_OFFSET"); ok {
		s.TimezoneOffset = v
	}
	if v, ok := lookupInt("CHAOSWATCH_MAX_POINTS"); ok {
		s.MaxPoints = v
	}
	if v, ok := lookupFloat("CHAOSWATCH_ROTATION_SPEED"); ok {
		s.RotationSpeed = v
	}
}

// Overrides carries command-line values that outrank every other source,
// including file reloads. Nil fields leave the setting untouched.
type Overrides struct {
	Latitude       *float64
	Longitude      *float64
	TimezoneOffset *int
}

// Apply returns s with the non-nil overrides substituted.
func (o Overrides) Apply(s Settings) Settings {
	if o.Latitude != nil {
		s.Latitude = *o.Latitude
	}
	if o.Longitude != nil {
		s.Longitude = *o.Longitude
	}
	if o.TimezoneOffset != nil {
		s.TimezoneOffset = *o.TimezoneOffset
	}
	return s
}

// Validate checks every field against its physical range.
func (s Settings) Validate() error {
	if s.WakeUpMinutes <= 0 {
		return fmt.Errorf("wake_up_minutes must be positive, got %g", s.WakeUpMinutes)
	}
	if s.PointsPerTick <= 0 {
		return fmt.Errorf("points_per_tick must be positive, got %d", s.PointsPerTick)
	}
	if s.MaxPoints <= 0 {
		return fmt.Errorf("max_points must be positive, got %d", s.MaxPoints)
	}
	if s.PointsPerTick > s.MaxPoints {
		return fmt.Errorf("points_per_tick (%d) exceeds max_points (%d)", s.PointsPerTick, s.MaxPoints)
	}
	if s.Latitude < -90 || s.Latitude > 90 {
		return fmt.Errorf("latitude out of range [-90, 90]: %g", s.Latitude)
	}
	if s.Longitude < -180 || s.Longitude > 180 {
		return fmt.Errorf("longitude out of range [-180, 180]: %g", s.Longitude)
	}
	if s.TimezoneOffset < -12 || s.TimezoneOffset > 14 {
		return fmt.Errorf("timezone_offset_hours out of range [-12, 14]: %d", s.TimezoneOffset)
	}
	return nil
}

func lookupFloat(key string) (float64, bool) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func lookupInt(key string) (int, bool) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
