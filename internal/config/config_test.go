package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The compiled-in constants are the baseline the rest of the program
// assumes; pin their exact values.
func TestConstants(t *testing.T) {
	assert.InDelta(t, 0.5/60.0, WakeUpIntervalMinutes, 1e-12)
	assert.Equal(t, 5, LorenzPointsPerUpdate)
	assert.Equal(t, 500, LorenzMaxPoints)
	assert.InDelta(t, 0.0523598776, LorenzRotationSpeed, 1e-12)
	assert.Equal(t, 1, TimezoneOffsetHours)
	assert.InDelta(t, 52.3676, Latitude, 1e-9)
	assert.InDelta(t, 4.9041, Longitude, 1e-9)
}

func TestWakeInterval(t *testing.T) {
	d := WakeInterval(WakeUpIntervalMinutes)
	assert.Equal(t, int64(500), d.Milliseconds())
}

func TestDefaultsMatchConstants(t *testing.T) {
	s := Defaults()
	assert.InDelta(t, WakeUpIntervalMinutes, s.WakeUpMinutes, 1e-12)
	assert.Equal(t, LorenzPointsPerUpdate, s.PointsPerTick)
	assert.Equal(t, LorenzMaxPoints, s.MaxPoints)
	assert.InDelta(t, LorenzRotationSpeed, s.RotationSpeed, 1e-12)
	assert.Equal(t, TimezoneOffsetHours, s.TimezoneOffset)
	assert.InDelta(t, Latitude, s.Latitude, 1e-9)
	assert.InDelta(t, Longitude, s.Longitude, 1e-9)
	assert.NoError(t, s.Validate())
}

func TestLoadYAMLOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chaoswatch.yaml")
	data := []byte("latitude: 35.6764\nlongitude: 139.65\ntimezone_offset_hours: 9\nmax_points: 300\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.InDelta(t, 35.6764, s.Latitude, 1e-9)
	assert.InDelta(t, 139.65, s.Longitude, 1e-9)
	assert.Equal(t, 9, s.TimezoneOffset)
	assert.Equal(t, 300, s.MaxPoints)
	// Untouched fields keep their defaults.
	assert.Equal(t, LorenzPointsPerUpdate, s.PointsPerTick)
}

func TestLoadEnvWinsOverFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chaoswatch.yaml")
	require.NoError(t, os.WriteFile(path, []byte("latitude: 10.0\n"), 0o644))

	t.Setenv("CHAOSWATCH_LATITUDE", "-33.8688")
	s, err := Load(path)
	require.NoError(t, err)
	assert.InDelta(t, -33.8688, s.Latitude, 1e-9)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestOverridesApply(t *testing.T) {
	lat := -33.8688
	tz := 10
	ov := Overrides{Latitude: &lat, TimezoneOffset: &tz}

	s := ov.Apply(Defaults())
	assert.InDelta(t, -33.8688, s.Latitude, 1e-9)
	assert.Equal(t, 10, s.TimezoneOffset)
	// Nil fields stay untouched.
	assert.InDelta(t, Longitude, s.Longitude, 1e-9)
}

func TestOverridesEmptyIsIdentity(t *testing.T) {
	s := Defaults()
	assert.Equal(t, s, Overrides{}.Apply(s))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr bool
	}{
		{"defaults valid", func(s *Settings) {}, false},
		{"latitude too high", func(s *Settings) { s.Latitude = 91 }, true},
		{"latitude too low", func(s *Settings) { s.Latitude = -91 }, true},
		{"longitude out of range", func(s *Settings) { s.Longitude = 181 }, true},
		{"timezone out of range", func(s *Settings) { s.TimezoneOffset = 15 }, true},
		{"zero wake interval", func(s *Settings) { s.WakeUpMinutes = 0 }, true},
		{"negative max points", func(s *Settings) { s.MaxPoints = -1 }, true},
		{"points per tick over capacity", func(s *Settings) { s.PointsPerTick = 600 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Defaults()
			tt.mutate(&s)
			err := s.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
