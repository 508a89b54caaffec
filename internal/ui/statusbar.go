package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, running bool, points, capacity int, rotationDeg, lat, lon float64) string {
	status := ""
	if running {
		status = StyleStatusRunning.Render("[RUNNING]")
	} else {
		status = StyleStatusPaused.Render("[PAUSED]")
	}

	info := fmt.Sprintf(" Points: %d/%d  Rotation: %ddeg  Observer: %.4f, %.4f",
		points, capacity, int(rotationDeg), lat, lon)

	content := status + StyleStatusBar.Foreground(ColorGreen).Render(info)

	gap := width - lipgloss.Width(content)
	if gap < 0 {
		gap = 0
	}
	padding := ""
	for i := 0; i < gap; i++ {
		padding += " "
	}

	return StyleStatusBar.Width(width).Render(content + padding)
}
