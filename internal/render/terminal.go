package render

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"chaoswatch.karkala.dev/internal/config"
	"chaoswatch.karkala.dev/internal/lorenz"
)

var (
	colorHead   = lipgloss.Color("#00FF41")
	colorRecent = lipgloss.Color("#00CC33")
	colorMid    = lipgloss.Color("#008F11")
	colorOld    = lipgloss.Color("#004A0A")

	styleHead   = lipgloss.NewStyle().Foreground(colorHead).Bold(true)
	styleRecent = lipgloss.NewStyle().Foreground(colorRecent)
	styleMid    = lipgloss.NewStyle().Foreground(colorMid)
	styleOld    = lipgloss.NewStyle().Foreground(colorOld)
)

// trail cell ages, newest to oldest
const (
	ageHead = iota
	ageRecent
	ageMid
	ageOld
	ageEmpty
)

// TerminalFrame paints the trajectory into a width×height cell grid and
// returns it as a styled string. Older points render dimmer so the
// attractor appears to fade behind its head.
func TerminalFrame(width, height int, points []lorenz.Point, rotation float64) string {
	if width < 10 || height < 5 {
		return ""
	}

	frame := Frame{
		Width:       width,
		Height:      height,
		Margin:      1,
		AspectRatio: config.AspectRatio,
	}
	screen := Fit(points, rotation, frame)

	// Paint newest last so the head always wins a contested cell.
	grid := make([][]uint8, height)
	for i := range grid {
		grid[i] = make([]uint8, width)
		for j := range grid[i] {
			grid[i][j] = ageEmpty
		}
	}

	n := len(screen)
	for i, sp := range screen {
		col := int(math.Round(sp.X))
		row := int(math.Round(sp.Y))
		if col < 0 || col >= width || row < 0 || row >= height {
			continue
		}
		age := trailAge(i, n)
		if age < grid[row][col] {
			grid[row][col] = age
		}
	}

	var sb strings.Builder
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			switch grid[row][col] {
			case ageHead:
				sb.WriteString(styleHead.Render("@"))
			case ageRecent:
				sb.WriteString(styleRecent.Render("*"))
			case ageMid:
				sb.WriteString(styleMid.Render("+"))
			case ageOld:
				sb.WriteString(styleOld.Render("."))
			default:
				sb.WriteByte(' ')
			}
		}
		if row < height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// trailAge buckets point index i of n into an age class; the last point
// is the head.
func trailAge(i, n int) uint8 {
	if i == n-1 {
		return ageHead
	}
	frac := float64(i) / float64(n)
	switch {
	case frac > 0.75:
		return ageRecent
	case frac > 0.4:
		return ageMid
	default:
		return ageOld
	}
}
