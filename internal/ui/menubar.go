package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"chaoswatch.karkala.dev/internal/config"
)

// RenderMenuBar renders the top menu bar with key hints and the clock.
func RenderMenuBar(width int, now time.Time, running bool) string {
	title := fmt.Sprintf(" %s v%s ", config.AppName, config.AppVersion)

	keys := []struct{ key, label string }{
		{"Space", "pause"},
		{"R", "eset"},
		{"+/-", "spin"},
		{"Q", "uit"},
	}

	menu := ""
	for _, k := range keys {
		menu += "  " + StyleMenuKey.Render("["+k.key+"]") + StyleMenuLabel.Render(k.label)
	}

	status := ""
	if running {
		status = StyleStatusRunning.Render("RUNNING")
	} else {
		status = StyleStatusPaused.Render("PAUSED")
	}

	clock := StyleClock.Render(now.Format("15:04")) +
		StyleMenuLabel.Render(now.Format(" Mon 02 Jan"))

	left := StyleMenuKey.Render(title) + menu
	right := status + "  " + clock + " "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	padding := ""
	for i := 0; i < gap; i++ {
		padding += " "
	}

	return StyleMenuBar.Width(width).Render(left + padding + right)
}
