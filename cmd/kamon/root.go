package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/jbeda/geom"
	"github.com/pppp606/kamon"
	"github.com/pppp606/kamon/internal/config"
	"github.com/pppp606/kamon/internal/logging"
	"github.com/pppp606/kamon/pkg/domain"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "kamon",
	Short: "Kamon is a compass-and-straightedge construction engine",
	Long:  `Kamon lets you place line segments and compass arcs, divide them into equal parts, and walk the edit history, from an interactive terminal or over HTTP.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "kamon.yaml", "Path to the configuration file")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		level = slog.LevelDebug
	}
	return logging.New(level)
}

func benchOptions(cfg config.Config, logger *slog.Logger) []kamon.Option {
	return []kamon.Option{
		kamon.WithLogger(logger),
		kamon.WithDivisionPresets(cfg.Division.Presets),
		kamon.WithHitThreshold(cfg.Division.HitThreshold),
		kamon.WithMarkerStyle(domain.MarkerStyle{
			Color: cfg.Marker.Color,
			Size:  cfg.Marker.Size,
		}),
	}
}

func canvasBounds(cfg config.Config) geom.Rect {
	return geom.Rect{
		Min: domain.Pt(0, 0),
		Max: domain.Pt(cfg.Canvas.Width, cfg.Canvas.Height),
	}
}
