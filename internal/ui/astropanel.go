package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"chaoswatch.karkala.dev/internal/astro"
)

// RenderAstroPanel renders the side panel with moon phase and sun times.
func RenderAstroPanel(width, height int, moon astro.MoonInfo, sun astro.SunTimes) string {
	inner := width - 4
	if inner < 10 {
		inner = 10
	}

	var lines []string
	lines = append(lines, StylePanelTitle.Render("ASTRONOMY"))
	lines = append(lines, "")

	glyph := StyleMoonGlyph.Render(moon.Phase.Glyph())
	lines = append(lines, centerLine(glyph, inner))
	lines = append(lines, centerLine(StyleAstroValue.Render(moon.Phase.String()), inner))
	lines = append(lines, "")

	lines = append(lines, astroRow("Illum", fmt.Sprintf("%3.0f%%", moon.Illumination*100), inner))
	lines = append(lines, astroRow("Age", fmt.Sprintf("%.1f d", moon.Age), inner))
	lines = append(lines, "")

	switch {
	case sun.PolarDay:
		lines = append(lines, astroRow("Sun", "up all day", inner))
	case sun.PolarNight:
		lines = append(lines, astroRow("Sun", "down all day", inner))
	default:
		lines = append(lines, astroRow("Rise", sun.Sunrise.Format("15:04"), inner))
		lines = append(lines, astroRow("Set", sun.Sunset.Format("15:04"), inner))
	}

	content := strings.Join(lines, "\n")
	return StylePanelBorder.Width(width - 2).Height(height - 2).Render(content)
}

func astroRow(label, value string, width int) string {
	l := StyleAstroLabel.Render(label)
	v := StyleAstroValue.Render(value)
	gap := width - lipgloss.Width(l) - lipgloss.Width(v)
	if gap < 1 {
		gap = 1
	}
	return " " + l + strings.Repeat(" ", gap-1) + v
}

func centerLine(s string, width int) string {
	pad := (width - lipgloss.Width(s)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + s
}
