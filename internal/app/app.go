package app

import (
	"context"
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"chaoswatch.karkala.dev/internal/astro"
	"chaoswatch.karkala.dev/internal/config"
	"chaoswatch.karkala.dev/internal/log"
	"chaoswatch.karkala.dev/internal/lorenz"
	"chaoswatch.karkala.dev/internal/render"
	"chaoswatch.karkala.dev/internal/ui"
)

// rotation speed adjustment per +/- keypress, radians per update
const rotationStep = 0.01

// shared holds state shared between the Bubble Tea model copies and main.go.
// Because Bubble Tea uses value receivers, pointer fields ensure all copies
// see the same underlying data.
type shared struct {
	sim     *lorenz.Simulator
	watcher *config.Watcher
	cancel  context.CancelFunc
}

// Model is the root Bubble Tea model for the watch face.
type Model struct {
	width  int
	height int

	running  bool
	settings config.Settings

	shared *shared

	// Cached per-frame snapshot
	points   []lorenz.Point
	rotation float64
	now      time.Time
	moon     astro.MoonInfo
	sun      astro.SunTimes
}

// New creates a Model around a fresh simulator.
func New(settings config.Settings) Model {
	now := time.Now()
	return Model{
		running:  true,
		settings: settings,
		now:      now,
		moon:     astro.MoonPhase(now),
		sun:      astro.SunriseSunset(now, settings.Latitude, settings.Longitude, settings.TimezoneOffset),
		shared: &shared{
			sim: lorenz.NewSimulator(settings.MaxPoints, settings.RotationSpeed),
		},
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		frameCmd(),
		wakeCmd(m.settings.WakeUpMinutes),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case FrameMsg:
		m.points, _, m.rotation = m.shared.sim.Snapshot()
		m.now = time.Now()
		return m, frameCmd()

	case WakeMsg:
		if m.running {
			m.shared.sim.Advance(m.settings.PointsPerTick)
		}
		m.moon = astro.MoonPhase(m.now)
		m.sun = astro.SunriseSunset(m.now, m.settings.Latitude, m.settings.Longitude, m.settings.TimezoneOffset)
		return m, wakeCmd(m.settings.WakeUpMinutes)

	case SettingsMsg:
		m.settings = msg.Settings
		m.shared.sim.SetRotationSpeed(msg.Settings.RotationSpeed)
		m.shared.sim.SetCapacity(msg.Settings.MaxPoints)
		m.sun = astro.SunriseSunset(m.now, m.settings.Latitude, m.settings.Longitude, m.settings.TimezoneOffset)
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "Q", "ctrl+c":
		m.stopWatcher()
		return m, tea.Quit

	case " ":
		m.running = !m.running

	case "r", "R":
		m.shared.sim.Reset()

	case "+", "=":
		m.shared.sim.SetRotationSpeed(m.shared.sim.RotationSpeed() + rotationStep)

	case "-", "_":
		speed := m.shared.sim.RotationSpeed() - rotationStep
		if speed < 0 {
			speed = 0
		}
		m.shared.sim.SetRotationSpeed(speed)
	}

	return m, nil
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing watch face..."
	}

	menuH := 1
	statusH := 1
	bodyH := m.height - menuH - statusH
	if bodyH < 5 {
		bodyH = 5
	}

	faceW := m.width * 3 / 4
	if faceW < 30 {
		faceW = 30
	}
	astroW := m.width - faceW
	if astroW < 20 {
		astroW = 20
		faceW = m.width - astroW
	}

	menuBar := ui.RenderMenuBar(m.width, m.now, m.running)

	innerW := faceW - 4
	innerH := bodyH - 2
	if innerW < 10 {
		innerW = 10
	}
	if innerH < 5 {
		innerH = 5
	}
	frame := render.TerminalFrame(innerW, innerH, m.points, m.rotation)
	facePanel := ui.RenderFacePanel(faceW, bodyH, frame)

	astroPanel := ui.RenderAstroPanel(astroW, bodyH, m.moon, m.sun)

	statusBar := ui.RenderStatusBar(m.width, m.running,
		m.shared.sim.PointCount(), m.shared.sim.Capacity(),
		m.rotation*180/math.Pi, m.settings.Latitude, m.settings.Longitude)

	return ui.ComposeLayout(menuBar, facePanel, astroPanel, statusBar)
}

// StartWatcher begins config-file watching and forwards reloads into the
// program, re-applying command-line overrides so flags keep outranking the
// file. Must be called before p.Run(). A missing path disables watching.
func (m *Model) StartWatcher(p *tea.Program, path string, ov config.Overrides) error {
	if path == "" {
		return nil
	}
	w, err := config.NewWatcher(path)
	if err != nil {
		return err
	}
	m.shared.watcher = w

	ctx, cancel := context.WithCancel(context.Background())
	m.shared.cancel = cancel

	go w.Run(ctx)
	go func() {
		for s := range w.Updates() {
			p.Send(SettingsMsg{Settings: ov.Apply(s)})
		}
	}()

	logger := log.WithComponent("app")
	logger.Info().Str("path", path).Msg("watching config file")
	return nil
}

func (m *Model) stopWatcher() {
	if m.shared.cancel != nil {
		m.shared.cancel()
	}
}

func frameCmd() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(config.TargetFPS), func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

func wakeCmd(minutes float64) tea.Cmd {
	return tea.Tick(config.WakeInterval(minutes), func(t time.Time) tea.Msg {
		return WakeMsg(t)
	})
}
