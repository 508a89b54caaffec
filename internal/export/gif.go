// Package export writes the watch face animation as a GIF, in the format
// of an e-ink preview: monochrome frames at 10 FPS.
package export

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"os"
	"time"

	"chaoswatch.karkala.dev/internal/config"
	"chaoswatch.karkala.dev/internal/log"
	"chaoswatch.karkala.dev/internal/lorenz"
	"chaoswatch.karkala.dev/internal/render"
)

// Options controls the exported animation.
type Options struct {
	Path          string
	Frames        int
	Size          int
	PointsPerStep int
	Clock         time.Time // chrome timestamp; zero disables chrome
}

// grayPalette is the 1-bit palette of the e-ink target.
var grayPalette = color.Palette{color.Gray{Y: 255}, color.Gray{Y: 0}}

// WriteGIF simulates the attractor and encodes the animation to opts.Path.
func WriteGIF(sim *lorenz.Simulator, opts Options) error {
	logger := log.WithComponent("export")

	if opts.Frames <= 0 {
		opts.Frames = config.ExportFrames
	}
	if opts.Size <= 0 {
		opts.Size = config.ExportFrameSize
	}
	if opts.PointsPerStep <= 0 {
		opts.PointsPerStep = config.ExportPointsPerStep
	}

	anim := &gif.GIF{LoopCount: 0}
	delay := int(config.ExportFrameDelay / (10 * time.Millisecond))

	for i := 0; i < opts.Frames; i++ {
		sim.Advance(opts.PointsPerStep)
		points, _, rotation := sim.Snapshot()

		gray := render.RasterFrame(opts.Size, points, rotation, opts.Clock)
		anim.Image = append(anim.Image, quantize(gray))
		anim.Delay = append(anim.Delay, delay)

		logger.Debug().Int("frame", i+1).Int("frames", opts.Frames).Msg("frame rendered")
	}

	f, err := os.Create(opts.Path)
	if err != nil {
		return fmt.Errorf("create %s: %w", opts.Path, err)
	}
	defer f.Close()

	if err := gif.EncodeAll(f, anim); err != nil {
		return fmt.Errorf("encode gif: %w", err)
	}
	logger.Info().Str("path", opts.Path).Int("frames", opts.Frames).Msg("animation written")
	return nil
}

// quantize maps the grayscale frame onto the 1-bit palette.
func quantize(src *image.Gray) *image.Paletted {
	b := src.Bounds()
	dst := image.NewPaletted(b, grayPalette)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if src.GrayAt(x, y).Y < 128 {
				dst.SetColorIndex(x, y, 1)
			}
		}
	}
	return dst
}
