package app

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"chaoswatch.karkala.dev/internal/config"
)

func settings() config.Settings {
	s := config.Defaults()
	s.PointsPerTick = 5
	return s
}

func TestWakeAdvancesSimulation(t *testing.T) {
	m := New(settings())

	next, _ := m.Update(WakeMsg(time.Now()))
	m = next.(Model)

	if got := m.shared.sim.PointCount(); got != 5 {
		t.Errorf("PointCount after wake = %d, want 5", got)
	}
}

func TestPauseStopsSimulation(t *testing.T) {
	m := New(settings())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = next.(Model)
	next, _ = m.Update(WakeMsg(time.Now()))
	m = next.(Model)

	if got := m.shared.sim.PointCount(); got != 0 {
		t.Errorf("PointCount while paused = %d, want 0", got)
	}

	// Space again resumes.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = next.(Model)
	next, _ = m.Update(WakeMsg(time.Now()))
	m = next.(Model)
	if got := m.shared.sim.PointCount(); got != 5 {
		t.Errorf("PointCount after resume = %d, want 5", got)
	}
}

func TestResetKey(t *testing.T) {
	m := New(settings())
	m.shared.sim.Advance(50)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = next.(Model)

	if got := m.shared.sim.PointCount(); got != 0 {
		t.Errorf("PointCount after reset = %d, want 0", got)
	}
}

func TestRotationSpeedKeys(t *testing.T) {
	m := New(settings())
	base := m.shared.sim.RotationSpeed()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'+'}})
	m = next.(Model)
	if got := m.shared.sim.RotationSpeed(); got <= base {
		t.Errorf("speed after '+' = %g, want > %g", got, base)
	}

	// '-' floors at zero.
	for i := 0; i < 50; i++ {
		next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'-'}})
		m = next.(Model)
	}
	if got := m.shared.sim.RotationSpeed(); got != 0 {
		t.Errorf("speed floored at %g, want 0", got)
	}
}

func TestSettingsReload(t *testing.T) {
	m := New(settings())

	s := config.Defaults()
	s.Latitude = -33.8688
	s.RotationSpeed = 0.2

	next, _ := m.Update(SettingsMsg{Settings: s})
	m = next.(Model)

	if m.settings.Latitude != -33.8688 {
		t.Errorf("Latitude = %g, want -33.8688", m.settings.Latitude)
	}
	if got := m.shared.sim.RotationSpeed(); got != 0.2 {
		t.Errorf("RotationSpeed = %g, want 0.2", got)
	}
}

func TestSettingsReloadResizesTrajectory(t *testing.T) {
	m := New(settings())
	m.shared.sim.Advance(200)

	s := config.Defaults()
	s.MaxPoints = 100

	next, _ := m.Update(SettingsMsg{Settings: s})
	m = next.(Model)

	if got := m.shared.sim.Capacity(); got != 100 {
		t.Errorf("Capacity after reload = %d, want 100", got)
	}
	if got := m.shared.sim.PointCount(); got != 100 {
		t.Errorf("PointCount after shrink = %d, want 100", got)
	}
}

func TestViewBeforeSize(t *testing.T) {
	m := New(settings())
	if m.View() == "" {
		t.Error("zero-size view should render a placeholder")
	}
}

func TestViewAfterSize(t *testing.T) {
	m := New(settings())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)
	next, _ = m.Update(WakeMsg(time.Now()))
	m = next.(Model)
	next, _ = m.Update(FrameMsg(time.Now()))
	m = next.(Model)

	if m.View() == "" {
		t.Error("sized view rendered empty")
	}
}
