package render

import (
	"image"
	"image/color"
	"math"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"chaoswatch.karkala.dev/internal/lorenz"
)

// Raster paint matches the e-ink target: white background, black ink.
var (
	inkWhite = color.Gray{Y: 255}
	inkBlack = color.Gray{Y: 0}
)

// RasterFrame paints the trajectory into a size×size grayscale image.
// Trail points get a 3×3 stamp, the head a 5×5 stamp. When clock is
// non-zero, HH:MM and DD/MM chrome is drawn in the top corners.
func RasterFrame(size int, points []lorenz.Point, rotation float64, clock time.Time) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, size, size))
	for i := range img.Pix {
		img.Pix[i] = inkWhite.Y
	}

	frame := Frame{
		Width:       size,
		Height:      size,
		Margin:      size / 40,
		AspectRatio: 1.0,
	}
	screen := Fit(points, rotation, frame)

	for i, sp := range screen {
		r := 1 // 3×3
		if i == len(screen)-1 {
			r = 2 // 5×5 head
		}
		stamp(img, int(math.Round(sp.X)), int(math.Round(sp.Y)), r)
	}

	if !clock.IsZero() {
		drawLabel(img, 5, 13, clock.Format("15:04"))
		date := clock.Format("02/01")
		drawLabel(img, size-5-textWidth(date), 13, date)
	}

	return img
}

func stamp(img *image.Gray, cx, cy, r int) {
	b := img.Bounds()
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			x, y := cx+dx, cy+dy
			if x >= b.Min.X && x < b.Max.X && y >= b.Min.Y && y < b.Max.Y {
				img.SetGray(x, y, inkBlack)
			}
		}
	}
}

func drawLabel(img *image.Gray, x, y int, s string) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(inkBlack),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func textWidth(s string) int {
	return len(s) * basicfont.Face7x13.Advance
}
