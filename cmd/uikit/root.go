// Package main provides the CLI entrypoint for uikit.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/uikit/internal/config"
	"github.com/jmylchreest/uikit/internal/style"
)

// Build-time variables (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Global configuration and state
var (
	cfg        *config.Config
	globalOpts struct {
		verbose    bool
		configPath string
	}
	logger *slog.Logger
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "uikit",
	Short: "Web component toolkit and popover positioning engine",
	Long: `uikit hosts a small web component toolkit (buttons, button groups,
radio groups and dropdowns) on an in-memory element tree.

Dropdown panels are placed by the popover engine, which picks a side of the
trigger with enough room, sizes the panel and follows scroll and resize.

Running uikit without a subcommand launches the terminal playground.`,
	Version:      fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger()

		var err error
		cfg, err = config.LoadConfig(globalOpts.configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		style.SetDefault(style.NewCache(cfg.Styles.CacheCapacity, logger))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logStyleCache(getLogger(), style.Default())
	},
	// Default to the playground when no subcommand is provided
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(cmd, args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.verbose, "verbose", "v", false,
		"Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&globalOpts.configPath, "config", "",
		"Path to config file (default: ~/.config/uikit/config.toml)")
}

// setupLogger configures the global slog logger.
func setupLogger() {
	level := slog.LevelWarn
	if globalOpts.verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Log to stderr so stdout is clean for output
	handler := slog.NewTextHandler(os.Stderr, opts)
	logger = slog.New(handler)
	slog.SetDefault(logger)
}

// logStyleCache reports the stylesheet cache occupancy at debug level.
func logStyleCache(logger *slog.Logger, c *style.Cache) {
	logger.Debug("style cache",
		"sheets", c.Len(),
		"capacity", c.Capacity(),
		"evictions", c.Evictions(),
	)
}

// getConfig returns the global config instance.
func getConfig() *config.Config {
	if cfg == nil {
		return config.DefaultConfig()
	}
	return cfg
}

// getLogger returns the global logger.
func getLogger() *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}

func main() {
	Execute()
}
