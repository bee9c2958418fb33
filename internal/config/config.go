// Package config handles configuration file loading and parsing.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/jmylchreest/uikit/internal/popover"
)

// Default configuration values.
const (
	DefaultPrefix        = "ui"
	DefaultIconPath      = "../icons"
	DefaultBreakpointSM  = "640px"
	DefaultBreakpointMD  = "768px"
	DefaultBreakpointLG  = "1024px"
	DefaultCacheCapacity = 256
	DefaultTheme         = "default"
)

// Validation errors.
var (
	ErrUnknownPlacement = errors.New("unknown placement")
	ErrUnknownWidthMode = errors.New("unknown popover width mode")
	ErrEmptyPrefix      = errors.New("prefix must not be empty")
)

// Config represents the uikit configuration.
type Config struct {
	Prefix      string            `toml:"prefix"`
	IconPath    string            `toml:"icon_path"`
	Breakpoints BreakpointsConfig `toml:"breakpoints"`
	Popover     PopoverConfig     `toml:"popover"`
	Styles      StylesConfig      `toml:"styles"`
	TUI         TUIConfig         `toml:"tui"`
}

// BreakpointsConfig holds the responsive breakpoints as CSS lengths.
type BreakpointsConfig struct {
	SM string `toml:"sm"`
	MD string `toml:"md"`
	LG string `toml:"lg"`
}

// PopoverConfig holds the default options for dropdown panels.
type PopoverConfig struct {
	Placement    string  `toml:"placement"`     // top, right, bottom, bottom-end, left
	Flip         bool    `toml:"flip"`          // Fall back to the opposite side when short of room
	AutoUpdate   bool    `toml:"auto_update"`   // Follow scroll/resize and close on outside clicks
	Offset       float64 `toml:"offset"`        // Gap between trigger and panel in px
	PopoverWidth string  `toml:"popover_width"` // trigger-width, include-previous-sibling, auto
}

// StylesConfig holds stylesheet cache and theme settings.
type StylesConfig struct {
	CacheCapacity int    `toml:"cache_capacity"` // 0 or less = unbounded
	ThemesDir     string `toml:"themes_dir"`     // Empty = $XDG_CONFIG_HOME/uikit/themes
	Theme         string `toml:"theme"`
}

// TUIConfig holds playground settings.
type TUIConfig struct {
	ShowHelp bool `toml:"show_help"`
	Mouse    bool `toml:"mouse"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	opts := popover.DefaultOptions()
	return &Config{
		Prefix:   DefaultPrefix,
		IconPath: DefaultIconPath,
		Breakpoints: BreakpointsConfig{
			SM: DefaultBreakpointSM,
			MD: DefaultBreakpointMD,
			LG: DefaultBreakpointLG,
		},
		Popover: PopoverConfig{
			Placement:    string(opts.Placement),
			Flip:         opts.Flip,
			AutoUpdate:   opts.AutoUpdate,
			Offset:       opts.Offset,
			PopoverWidth: string(opts.PopoverWidth),
		},
		Styles: StylesConfig{
			CacheCapacity: DefaultCacheCapacity,
			Theme:         DefaultTheme,
		},
		TUI: TUIConfig{
			ShowHelp: true,
			Mouse:    true,
		},
	}
}

// ConfigPath returns the path to the config file.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config.
func ConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "uikit", "config.toml")
}

// ThemesPath returns the user themes directory: the configured one, or
// "themes" next to the config file.
func (c *Config) ThemesPath() string {
	if c.Styles.ThemesDir != "" {
		return expandPath(c.Styles.ThemesDir)
	}
	path := ConfigPath()
	if path == "" {
		return ""
	}
	return filepath.Join(filepath.Dir(path), "themes")
}

// LoadConfig loads configuration from the specified path.
// If path is empty, uses the default config path.
// Returns default config if file doesn't exist.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	// Start with defaults, then overlay with file contents
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the specified path.
// Creates parent directories if needed.
func (c *Config) Save(path string) error {
	if path == "" {
		path = ConfigPath()
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := c.Marshal()
	if err != nil {
		return err
	}

	// Write atomically via temp file
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return os.Rename(tmpPath, path)
}

// Marshal encodes the configuration as TOML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// Partial is a configuration update. Nil fields are left unchanged;
// non-nil sections replace the whole section.
type Partial struct {
	Prefix      *string
	IconPath    *string
	Breakpoints *BreakpointsConfig
	Popover     *PopoverConfig
	Styles      *StylesConfig
	TUI         *TUIConfig
}

// Update applies p on top of c.
func (c *Config) Update(p Partial) {
	if p.Prefix != nil {
		c.Prefix = *p.Prefix
	}
	if p.IconPath != nil {
		c.IconPath = *p.IconPath
	}
	if p.Breakpoints != nil {
		c.Breakpoints = *p.Breakpoints
	}
	if p.Popover != nil {
		c.Popover = *p.Popover
	}
	if p.Styles != nil {
		c.Styles = *p.Styles
	}
	if p.TUI != nil {
		c.TUI = *p.TUI
	}
}

// Breakpoint returns the breakpoint named sm, md or lg, or "" for any
// other name.
func (c *Config) Breakpoint(name string) string {
	switch name {
	case "sm":
		return c.Breakpoints.SM
	case "md":
		return c.Breakpoints.MD
	case "lg":
		return c.Breakpoints.LG
	default:
		return ""
	}
}

// MediaRanges lists the ranges MediaQuery understands.
func MediaRanges() []string {
	return []string{"smUp", "smDown", "mdOnly", "mdUp", "mdDown", "lgUp", "lgDown"}
}

// MediaQuery returns the media query condition for a named range. The lg
// ranges keep their historical "1" prefix, so the default lgUp is
// "(width >= 11024px)".
func (c *Config) MediaQuery(rng string) (string, bool) {
	sm, md, lg := c.Breakpoints.SM, c.Breakpoints.MD, c.Breakpoints.LG
	switch rng {
	case "smUp":
		return "(width >= " + sm + ")", true
	case "smDown":
		return "(width < " + sm + ")", true
	case "mdOnly":
		return "(" + sm + " <= width <= " + lg + ")", true
	case "mdUp":
		return "(width >= " + md + ")", true
	case "mdDown":
		return "(width < " + md + ")", true
	case "lgUp":
		return "(width >= 1" + lg + ")", true
	case "lgDown":
		return "(width < 1" + lg + ")", true
	default:
		return "", false
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Prefix) == "" {
		return ErrEmptyPrefix
	}
	if !popover.Placement(c.Popover.Placement).Valid() {
		return fmt.Errorf("%w %q, must be one of: %v", ErrUnknownPlacement, c.Popover.Placement, popover.ValidPlacements())
	}
	validWidth := false
	for _, m := range popover.ValidWidthModes() {
		if c.Popover.PopoverWidth == string(m) {
			validWidth = true
			break
		}
	}
	if !validWidth {
		return fmt.Errorf("%w %q, must be one of: %v", ErrUnknownWidthMode, c.Popover.PopoverWidth, popover.ValidWidthModes())
	}
	if c.Popover.Offset < 0 {
		return fmt.Errorf("offset must not be negative, got %v", c.Popover.Offset)
	}
	return nil
}

// Options converts the section into engine options. Values are passed
// through unvalidated.
func (p PopoverConfig) Options() popover.Options {
	return popover.Options{
		Placement:    popover.Placement(p.Placement),
		Flip:         p.Flip,
		AutoUpdate:   p.AutoUpdate,
		Offset:       p.Offset,
		PopoverWidth: popover.WidthMode(p.PopoverWidth),
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
