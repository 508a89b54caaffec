package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"chaoswatch.karkala.dev/internal/app"
	"chaoswatch.karkala.dev/internal/config"
	"chaoswatch.karkala.dev/internal/export"
	"chaoswatch.karkala.dev/internal/log"
	"chaoswatch.karkala.dev/internal/lorenz"
)

var (
	flagConfig string
	flagLat    float64
	flagLon    float64
	flagTz     int

	flagOut    string
	flagFrames int
	flagSize   int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "chaoswatch",
		Short: "Chaoswatch - Lorenz attractor watch face for the terminal",
		Long: `Chaoswatch renders a rotating Lorenz attractor as a watch face,
with moon phase and sunrise/sunset readouts for a configured location.

Settings come from compiled-in defaults, an optional YAML file (--config,
reloaded live on change), and CHAOSWATCH_* environment variables.`,
		RunE: runFace,
	}

	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to YAML settings file")
	rootCmd.PersistentFlags().Float64Var(&flagLat, "lat", 0, "Observer latitude in degrees (overrides config)")
	rootCmd.PersistentFlags().Float64Var(&flagLon, "lon", 0, "Observer longitude in degrees (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagTz, "tz", 99, "UTC offset in hours (overrides config)")

	gifCmd := &cobra.Command{
		Use:   "gif",
		Short: "Export the watch face animation as a GIF",
		RunE:  runGif,
	}
	gifCmd.Flags().StringVarP(&flagOut, "out", "o", "chaoswatch.gif", "Output file path")
	gifCmd.Flags().IntVar(&flagFrames, "frames", config.ExportFrames, "Number of frames")
	gifCmd.Flags().IntVar(&flagSize, "size", config.ExportFrameSize, "Frame edge in pixels")
	rootCmd.AddCommand(gifCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func flagOverrides(cmd *cobra.Command) config.Overrides {
	var ov config.Overrides
	if cmd.Flags().Changed("lat") || cmd.InheritedFlags().Changed("lat") {
		ov.Latitude = &flagLat
	}
	if cmd.Flags().Changed("lon") || cmd.InheritedFlags().Changed("lon") {
		ov.Longitude = &flagLon
	}
	if flagTz != 99 {
		ov.TimezoneOffset = &flagTz
	}
	return ov
}

func loadSettings(cmd *cobra.Command) (config.Settings, config.Overrides, error) {
	ov := flagOverrides(cmd)
	s, err := config.Load(flagConfig)
	if err != nil {
		return s, ov, err
	}
	s = ov.Apply(s)
	if err := s.Validate(); err != nil {
		return s, ov, err
	}
	return s, ov, nil
}

func runFace(cmd *cobra.Command, args []string) error {
	log.Configure(log.Config{})

	settings, overrides, err := loadSettings(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	model := app.New(settings)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithFPS(config.TargetFPS),
	)

	if err := model.StartWatcher(p, flagConfig, overrides); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: config watching disabled: %v\n", err)
	}

	_, err = p.Run()
	return err
}

func runGif(cmd *cobra.Command, args []string) error {
	log.Configure(log.Config{Output: os.Stderr})

	settings, _, err := loadSettings(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	sim := lorenz.NewSimulator(settings.MaxPoints, settings.RotationSpeed)
	return export.WriteGIF(sim, export.Options{
		Path:   flagOut,
		Frames: flagFrames,
		Size:   flagSize,
		Clock:  time.Now(),
	})
}
