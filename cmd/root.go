// Package cmd provides CLI commands for the planforge application.
package cmd

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/veltaire/planforge/core/config"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "planforge",
	Short: "Planforge - AI-agent deployment blueprint generation",
	Long: `Planforge turns a company's business profile and automation opportunities
into validated AI-agent deployment blueprints: a digital team, human oversight
checkpoints, a phased rollout timeline, and KPI projections.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to planforge config file")
}

func Execute() error {
	return rootCmd.Execute()
}

// loadConfig builds the config manager, loads the file if present, and
// returns it alongside a logger honoring the configured level and format.
func loadConfig() (*config.Manager, *slog.Logger, error) {
	manager := config.NewManager(configPath)
	if err := manager.Load(); err != nil {
		return nil, nil, err
	}

	cfg := manager.Get()
	logger := buildLogger(cfg.Logging)
	slog.SetDefault(logger)

	return manager, logger, nil
}

func buildLogger(lc config.LoggingConfig) *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(lc.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if strings.EqualFold(lc.Format, "json") {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}
