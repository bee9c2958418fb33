package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/uikit/internal/components"
	"github.com/jmylchreest/uikit/internal/config"
	"github.com/jmylchreest/uikit/internal/dom"
	"github.com/jmylchreest/uikit/internal/geom"
	"github.com/jmylchreest/uikit/internal/popover"
	"github.com/jmylchreest/uikit/internal/style"
)

var placeOpts struct {
	PlaceRequest
	format string
}

// PlaceRequest describes a trigger, a panel and a viewport to place the
// panel in.
type PlaceRequest struct {
	Trigger      geom.Rect
	PanelWidth   float64
	PanelHeight  float64
	Viewport     geom.Size
	Placement    string
	Offset       float64
	PopoverWidth string
	Flip         bool
	AutoUpdate   bool
	SiblingWidth float64 // 0 = no sibling before the dropdown
	Separated    bool
}

// Rect is a rectangle in output form.
type Rect struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	W float64 `json:"width" yaml:"width"`
	H float64 `json:"height" yaml:"height"`
}

// PlaceResult is the outcome of one positioning pass.
type PlaceResult struct {
	Placement    string            `json:"placement" yaml:"placement"`
	PopoverWidth string            `json:"popover_width" yaml:"popover_width"`
	Open         bool              `json:"open" yaml:"open"`
	Panel        map[string]string `json:"panel" yaml:"panel"`
	Bridge       map[string]string `json:"bridge,omitempty" yaml:"bridge,omitempty"`
	Rect         Rect              `json:"rect" yaml:"rect"`
}

var placeCmd = &cobra.Command{
	Use:   "place",
	Short: "Compute a panel placement",
	Long: `Place a dropdown panel next to a trigger and print the resulting inline
styles and the panel's viewport rectangle.

Examples:
  # Default placement of a 120x60 panel under an 80x20 trigger
  uikit place

  # Trigger near the bottom edge: the panel flips above
  uikit place --trigger-y 180

  # Span a 40px sibling button in a separated group, as YAML
  uikit place --placement bottom-end --width-mode include-previous-sibling \
    --sibling-width 40 --separated --format yaml`,
	RunE: runPlace,
}

func init() {
	rootCmd.AddCommand(placeCmd)

	f := placeCmd.Flags()
	f.Float64Var(&placeOpts.Trigger.X, "trigger-x", 20, "Trigger left edge")
	f.Float64Var(&placeOpts.Trigger.Y, "trigger-y", 20, "Trigger top edge")
	f.Float64Var(&placeOpts.Trigger.W, "trigger-width", 80, "Trigger width")
	f.Float64Var(&placeOpts.Trigger.H, "trigger-height", 20, "Trigger height")
	f.Float64Var(&placeOpts.PanelWidth, "panel-width", 120, "Natural panel width")
	f.Float64Var(&placeOpts.PanelHeight, "panel-height", 60, "Natural panel height")
	f.Float64Var(&placeOpts.Viewport.W, "viewport-width", 300, "Viewport width")
	f.Float64Var(&placeOpts.Viewport.H, "viewport-height", 200, "Viewport height")
	f.StringVar(&placeOpts.Placement, "placement", "",
		"Placement (top, right, bottom, bottom-end, left; default from config)")
	f.Float64Var(&placeOpts.Offset, "offset", 0, "Gap between trigger and panel (default from config)")
	f.StringVar(&placeOpts.PopoverWidth, "width-mode", "",
		"Width mode (trigger-width, include-previous-sibling, auto; default from config)")
	f.BoolVar(&placeOpts.Flip, "flip", true, "Fall back to the opposite side when short of room")
	f.Float64Var(&placeOpts.SiblingWidth, "sibling-width", 0, "Width of a button before the dropdown (0 = none)")
	f.BoolVar(&placeOpts.Separated, "separated", false, "Separate the button group members")
	f.StringVarP(&placeOpts.format, "format", "f", "plain", "Output format (plain, json, yaml)")
}

func runPlace(cmd *cobra.Command, args []string) error {
	req := withConfigDefaults(placeOpts.PlaceRequest, getConfig().Popover, cmd.Flags().Changed)

	result, err := Place(req, getLogger())
	if err != nil {
		return err
	}
	return writePlaceResult(os.Stdout, result, placeOpts.format)
}

// withConfigDefaults fills the popover settings the user did not pass on
// the command line from the configuration.
func withConfigDefaults(req PlaceRequest, popoverCfg config.PopoverConfig, changed func(flag string) bool) PlaceRequest {
	if req.Placement == "" {
		req.Placement = popoverCfg.Placement
	}
	if req.PopoverWidth == "" {
		req.PopoverWidth = popoverCfg.PopoverWidth
	}
	if !changed("offset") {
		req.Offset = popoverCfg.Offset
	}
	if !changed("flip") {
		req.Flip = popoverCfg.Flip
	}
	req.AutoUpdate = popoverCfg.AutoUpdate
	return req
}

// Place builds a button group holding an optional sibling button and a
// dropdown laid out as req describes, opens the dropdown and reports where
// the panel ended up.
func Place(req PlaceRequest, logger *slog.Logger) (*PlaceResult, error) {
	if !popover.Placement(req.Placement).Valid() {
		return nil, fmt.Errorf("%w %q, must be one of: %v", config.ErrUnknownPlacement, req.Placement, popover.ValidPlacements())
	}
	if !validWidthMode(req.PopoverWidth) {
		return nil, fmt.Errorf("%w %q, must be one of: %v", config.ErrUnknownWidthMode, req.PopoverWidth, popover.ValidWidthModes())
	}

	window := dom.NewWindow(req.Viewport.W, req.Viewport.H, logger)
	kit := components.NewKit(components.DefaultPrefix, window, style.NewDocument(nil), logger)
	kit.Popover = popover.Options{
		Placement:    popover.Placement(req.Placement),
		Flip:         req.Flip,
		AutoUpdate:   req.AutoUpdate,
		Offset:       req.Offset,
		PopoverWidth: popover.WidthMode(req.PopoverWidth),
	}

	group, err := kit.ButtonGroup(req.Separated)
	if err != nil {
		return nil, fmt.Errorf("failed to create button group: %w", err)
	}
	if req.SiblingWidth > 0 {
		sibling, err := kit.Button("", "")
		if err != nil {
			return nil, fmt.Errorf("failed to create sibling button: %w", err)
		}
		sibling.Host.SetBox(geom.NewRect(req.Trigger.X-req.SiblingWidth, req.Trigger.Y, req.SiblingWidth, req.Trigger.H))
		group.Add(sibling.Host)
	}

	dropdown, err := kit.Dropdown("")
	if err != nil {
		return nil, fmt.Errorf("failed to create dropdown: %w", err)
	}
	defer dropdown.Close()
	group.Add(dropdown.Host)

	dropdown.Host.SetBox(req.Trigger)
	dropdown.TriggerContainer().SetBox(req.Trigger)
	dropdown.Trigger().Host.SetBox(req.Trigger)
	dropdown.Panel().SetBox(geom.NewRect(req.Trigger.X, req.Trigger.Bottom(), req.PanelWidth, req.PanelHeight))

	dropdown.Open()

	panel := dropdown.Panel()
	r := panel.BoundingClientRect()
	result := &PlaceResult{
		Placement:    req.Placement,
		PopoverWidth: req.PopoverWidth,
		Open:         dropdown.IsOpen(),
		Panel:        styleMap(panel.Style),
		Rect:         Rect{X: r.X, Y: r.Y, W: r.W, H: r.H},
	}
	if bridge := styleMap(dropdown.Popover().Bridge().Style); len(bridge) > 1 {
		result.Bridge = bridge
	}
	return result, nil
}

func validWidthMode(mode string) bool {
	for _, m := range popover.ValidWidthModes() {
		if string(m) == mode {
			return true
		}
	}
	return false
}

func styleMap(s *dom.Style) map[string]string {
	out := make(map[string]string)
	for _, prop := range s.Properties() {
		out[prop] = s.Get(prop)
	}
	return out
}

// writePlaceResult writes result in the given format.
func writePlaceResult(w io.Writer, result *PlaceResult, format string) error {
	switch strings.ToLower(format) {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	case "yaml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(result); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return encoder.Close()
	case "plain", "":
		fmt.Fprintf(w, "placement: %s\n", result.Placement)
		fmt.Fprintf(w, "width:     %s\n", result.PopoverWidth)
		fmt.Fprintf(w, "open:      %t\n", result.Open)
		fmt.Fprintf(w, "panel:     %s\n", styleString(result.Panel))
		if result.Bridge != nil {
			fmt.Fprintf(w, "bridge:    %s\n", styleString(result.Bridge))
		}
		fmt.Fprintf(w, "rect:      x=%g y=%g width=%g height=%g\n",
			result.Rect.X, result.Rect.Y, result.Rect.W, result.Rect.H)
		return nil
	default:
		return fmt.Errorf("unknown format %q, must be one of: plain, json, yaml", format)
	}
}

func styleString(m map[string]string) string {
	s := dom.NewStyle()
	for _, prop := range slices.Sorted(maps.Keys(m)) {
		s.Set(prop, m[prop])
	}
	return s.String()
}
