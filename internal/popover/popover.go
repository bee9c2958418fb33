// Package popover positions a floating panel relative to a trigger element.
//
// A Popover owns the show/hide lifecycle of one trigger and panel pair. Each
// positioning pass reads the trigger rectangle, the panel size and the
// viewport size fresh, picks a side from a fixed placement table, and writes
// offsets relative to the trigger's own coordinate space. While open it can
// follow window scroll and resize events and close on outside clicks.
//
// A Popover also owns a hover bridge: an invisible element appended to the
// trigger that fills the offset gap so pointer-driven menus stay open while
// the cursor travels from trigger to panel.
package popover

import (
	"log/slog"

	"github.com/jmylchreest/uikit/internal/dom"
	"github.com/jmylchreest/uikit/internal/geom"
)

// Window is the viewport and event source a Popover tracks.
type Window interface {
	Viewport() geom.Size
	AddEventListener(kind dom.EventKind, h dom.Handler) dom.ListenerID
	RemoveEventListener(id dom.ListenerID) bool
}

// State is a snapshot of a Popover's lifecycle state.
type State struct {
	Open          bool
	Subscriptions int
	Destroyed     bool

	// BridgeClipPercent is the narrow-edge proportion of the hover bridge
	// clip-path from the last positioning pass, in percent.
	BridgeClipPercent float64
}

// Popover positions one panel against one trigger. It is not safe for
// concurrent use.
type Popover struct {
	trigger *dom.Element
	panel   *dom.Element
	window  Window
	opts    Options
	logger  *slog.Logger

	bridge        *dom.Element
	open          bool
	subscriptions []dom.ListenerID
	destroyed     bool
	clipPercent   float64
}

// New binds a panel to a trigger and appends the hover bridge to the
// trigger. The panel is not measured until the first positioning pass.
func New(trigger, panel *dom.Element, window Window, opts ...Option) *Popover {
	s := settings{Options: DefaultOptions()}
	for _, opt := range opts {
		opt(&s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}

	bridge := dom.NewElement("div")
	bridge.SetAttribute("part", "hover-bridge")
	bridge.Style.Set("position", "absolute")
	trigger.AppendChild(bridge)

	return &Popover{
		trigger: trigger,
		panel:   panel,
		window:  window,
		opts:    s.Options,
		logger:  s.logger,
		bridge:  bridge,
	}
}

// Options returns the configuration the Popover was built with.
func (p *Popover) Options() Options { return p.opts }

// Bridge returns the hover bridge element.
func (p *Popover) Bridge() *dom.Element { return p.bridge }

// Panel returns the positioned panel element.
func (p *Popover) Panel() *dom.Element { return p.panel }

// State returns a snapshot of the lifecycle state.
func (p *Popover) State() State {
	return State{
		Open:              p.open,
		Subscriptions:     len(p.subscriptions),
		Destroyed:         p.destroyed,
		BridgeClipPercent: p.clipPercent,
	}
}

// IsOpen reports whether the panel is displayed.
func (p *Popover) IsOpen() bool {
	return p.panel.Style.Get("display") == dom.DisplayBlock
}

// Show displays the panel, positions it and, with AutoUpdate, starts
// tracking the window. Showing an open panel repositions it without
// subscribing again.
func (p *Popover) Show() {
	if p.destroyed {
		p.logger.Debug("popover: show after destroy ignored")
		return
	}
	p.panel.Style.Set("display", dom.DisplayBlock)
	p.UpdatePosition()
	if p.opts.AutoUpdate && len(p.subscriptions) == 0 {
		p.subscriptions = append(p.subscriptions,
			p.window.AddEventListener(dom.EventScroll, p.onViewportChange),
			p.window.AddEventListener(dom.EventResize, p.onViewportChange),
			p.window.AddEventListener(dom.EventClick, p.handleClickOutside),
		)
	}
	p.open = true
}

// Hide hides the panel and stops window tracking. Hiding a closed panel is
// harmless.
func (p *Popover) Hide() {
	if p.destroyed {
		return
	}
	p.panel.Style.Set("display", dom.DisplayNone)
	p.unsubscribe()
	p.open = false
}

// Toggle flips the open state. The triggering event is cancelled and
// stopped so the same click does not reach the outside-click handler.
func (p *Popover) Toggle(ev *dom.Event) {
	if ev != nil {
		ev.PreventDefault()
		ev.StopPropagation()
	}
	if p.IsOpen() {
		p.Hide()
		return
	}
	p.Show()
}

// Destroy hides the panel, drops all window listeners and removes the hover
// bridge from the trigger. Every later call on the Popover is a no-op.
func (p *Popover) Destroy() {
	if p.destroyed {
		return
	}
	p.Hide()
	p.trigger.RemoveChild(p.bridge)
	p.destroyed = true
}

func (p *Popover) unsubscribe() {
	for _, id := range p.subscriptions {
		p.window.RemoveEventListener(id)
	}
	p.subscriptions = nil
}

func (p *Popover) onViewportChange(*dom.Event) {
	p.UpdatePosition()
}

// handleClickOutside closes the panel for clicks that land neither inside
// the panel nor on the trigger container itself.
func (p *Popover) handleClickOutside(ev *dom.Event) {
	if ev.PathIncludes(p.panel) || ev.Target == p.trigger {
		return
	}
	p.Hide()
}
