package ui

import "github.com/charmbracelet/lipgloss"

// ComposeLayout joins the face panel and astro panel horizontally,
// with menu bar on top and status bar on bottom.
func ComposeLayout(menuBar, facePanel, astroPanel, statusBar string) string {
	middle := lipgloss.JoinHorizontal(lipgloss.Top, facePanel, astroPanel)
	return lipgloss.JoinVertical(lipgloss.Left, menuBar, middle, statusBar)
}
