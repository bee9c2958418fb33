package popover

import "log/slog"

// Placement selects the side of the trigger the panel is placed on.
type Placement string

const (
	PlacementTop       Placement = "top"
	PlacementRight     Placement = "right"
	PlacementBottom    Placement = "bottom"
	PlacementBottomEnd Placement = "bottom-end"
	PlacementLeft      Placement = "left"
)

// ValidPlacements returns all recognized placements.
func ValidPlacements() []Placement {
	return []Placement{PlacementTop, PlacementRight, PlacementBottom, PlacementBottomEnd, PlacementLeft}
}

// Valid reports whether p is a recognized placement.
func (p Placement) Valid() bool {
	for _, v := range ValidPlacements() {
		if p == v {
			return true
		}
	}
	return false
}

// WidthMode controls how the panel width is derived.
type WidthMode string

const (
	// WidthTrigger forces the panel to the trigger's width.
	WidthTrigger WidthMode = "trigger-width"
	// WidthIncludePreviousSibling widens the panel by the width of the
	// shadow host's previous sibling, for adjoining control groups.
	WidthIncludePreviousSibling WidthMode = "include-previous-sibling"
	// WidthAuto leaves the panel width untouched. Any unrecognized mode
	// behaves the same way.
	WidthAuto WidthMode = "auto"
)

// ValidWidthModes returns all recognized width modes.
func ValidWidthModes() []WidthMode {
	return []WidthMode{WidthTrigger, WidthIncludePreviousSibling, WidthAuto}
}

// Options configures a Popover. The zero value is not the default; start
// from DefaultOptions.
type Options struct {
	Placement    Placement
	Flip         bool
	AutoUpdate   bool
	Offset       float64
	PopoverWidth WidthMode
}

// DefaultOptions returns the default configuration.
func DefaultOptions() Options {
	return Options{
		Placement:    PlacementBottom,
		Flip:         true,
		AutoUpdate:   true,
		Offset:       0,
		PopoverWidth: WidthTrigger,
	}
}

type settings struct {
	Options
	logger *slog.Logger
}

// Option configures a Popover at construction.
type Option func(*settings)

// WithOptions replaces every option with o.
func WithOptions(o Options) Option {
	return func(s *settings) {
		s.Options = o
	}
}

// WithPlacement sets the placement.
func WithPlacement(p Placement) Option {
	return func(s *settings) {
		s.Placement = p
	}
}

// WithFlip enables or disables falling back to the opposite side when the
// preferred side has no room.
func WithFlip(flip bool) Option {
	return func(s *settings) {
		s.Flip = flip
	}
}

// WithAutoUpdate enables or disables window scroll/resize/click tracking
// while open.
func WithAutoUpdate(auto bool) Option {
	return func(s *settings) {
		s.AutoUpdate = auto
	}
}

// WithOffset sets the gap between trigger and panel. It is also the
// thickness of the hover bridge.
func WithOffset(offset float64) Option {
	return func(s *settings) {
		s.Offset = offset
	}
}

// WithPopoverWidth sets the width mode.
func WithPopoverWidth(mode WidthMode) Option {
	return func(s *settings) {
		s.PopoverWidth = mode
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}
