package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/uikit/internal/config"
)

var configOpts struct {
	init  bool
	force bool
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or initialise the configuration",
	Long: `Print the effective configuration as TOML.

With --init, write the default configuration to the config path instead.
An existing file is left alone unless --force is given.

Examples:
  # Show the effective configuration
  uikit config

  # Write a fresh config file
  uikit config --init --force`,
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.Flags().BoolVar(&configOpts.init, "init", false,
		"Write the default configuration to the config path")
	configCmd.Flags().BoolVar(&configOpts.force, "force", false,
		"Overwrite an existing config file (with --init)")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if !configOpts.init {
		return writeConfig(os.Stdout, getConfig())
	}

	path := globalOpts.configPath
	if path == "" {
		path = config.ConfigPath()
	}
	if err := initConfig(path, configOpts.force); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}

func writeConfig(w io.Writer, c *config.Config) error {
	data, err := c.Marshal()
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// initConfig writes the default configuration to path.
func initConfig(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists: %s (use --force to overwrite)", path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to stat config file: %w", err)
		}
	}
	if err := config.DefaultConfig().Save(path); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}
