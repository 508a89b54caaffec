// Package render projects the Lorenz trajectory into screen space and
// paints it, either as a styled terminal frame or as a grayscale raster
// for GIF export.
package render

import (
	"math"

	"chaoswatch.karkala.dev/internal/lorenz"
)

// minRange guards the autoscale against a degenerate (nearly collinear)
// point cloud.
const minRange = 0.1

// ScreenPoint is a projected trajectory point in cell/pixel coordinates.
type ScreenPoint struct {
	X, Y float64
}

// Project rotates p around the Y axis by angle and drops the depth
// coordinate.
func Project(p lorenz.Point, angle float64) (x, y float64) {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return p.X*cos - p.Z*sin, p.Y
}

// Frame describes the target drawing area. AspectRatio compensates for
// non-square cells; use 1.0 for pixel rasters.
type Frame struct {
	Width       int
	Height      int
	Margin      int
	AspectRatio float64
}

// Fit projects every trajectory point at the given rotation angle and
// autoscales the cloud into the frame: centered, uniformly scaled, and
// clamped to the margins.
func Fit(points []lorenz.Point, angle float64, f Frame) []ScreenPoint {
	if len(points) == 0 {
		return nil
	}

	projected := make([]ScreenPoint, len(points))
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for i, p := range points {
		x, y := Project(p, angle)
		projected[i] = ScreenPoint{X: x, Y: y}
		minX = math.Min(minX, x)
		maxX = math.Max(maxX, x)
		minY = math.Min(minY, y)
		maxY = math.Max(maxY, y)
	}

	rangeX := math.Max(maxX-minX, minRange)
	rangeY := math.Max(maxY-minY, minRange)

	aspect := f.AspectRatio
	if aspect <= 0 {
		aspect = 1.0
	}

	availW := float64(f.Width - 2*f.Margin)
	availH := float64(f.Height-2*f.Margin) / aspect
	scale := math.Min(availW/rangeX, availH/rangeY)

	centerX := (minX + maxX) / 2
	centerY := (minY + maxY) / 2
	midW := float64(f.Width) / 2
	midH := float64(f.Height) / 2

	lo := float64(f.Margin)
	hiX := float64(f.Width - 1 - f.Margin)
	hiY := float64(f.Height - 1 - f.Margin)

	for i := range projected {
		sx := (projected[i].X-centerX)*scale + midW
		sy := (projected[i].Y-centerY)*scale*aspect + midH
		projected[i].X = clamp(sx, lo, hiX)
		projected[i].Y = clamp(sy, lo, hiY)
	}
	return projected
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
