package components

import (
	"log/slog"
	"strconv"

	"github.com/jmylchreest/uikit/internal/dom"
	"github.com/jmylchreest/uikit/internal/element"
	"github.com/jmylchreest/uikit/internal/popover"
	"github.com/jmylchreest/uikit/internal/style"
	"github.com/jmylchreest/uikit/internal/template"
)

// dropdownMarkup takes the button tag twice.
var dropdownMarkup = []string{`
<div part="trigger-container" style="position: relative; display: inline-block">
	<`, ` part="trigger" variant="primary" aria-haspopup="menu"></`, `>
	<div part="panel" role="menu" style="position: absolute; display: none; z-index: 10"><slot></slot></div>
</div>
`}

var dropdownStyles = []string{`
:host {
	display: inline-block;
}

[part=panel] {
	background: var(--ui-color-surface);
	border: 1px solid var(--ui-border-color-2);
	border-radius: var(--ui-border-radius-1);
	box-sizing: border-box;
}

[part=hover-bridge] {
	background: transparent;
}
`}

var dropdownAttributes = element.CreateAttributes(map[element.AttrType][]string{
	element.AttrProperty: {"placement", "offset", "popover-width", "flip", "auto-update", "label"},
})

// DropdownConfig configures NewDropdown.
type DropdownConfig struct {
	Label     string
	ButtonTag string
	Window    popover.Window
	Defaults  popover.Options
	Logger    *slog.Logger
}

// Dropdown is a button that toggles a panel of items. It is the toolkit's
// caller of the popover engine.
type Dropdown struct {
	*element.Base

	trigger  *Button
	window   popover.Window
	defaults popover.Options
	popover  *popover.Popover
	closed   bool
}

// NewDropdown upgrades host to a dropdown. Attribute values on host
// override cfg.Defaults; changing one later rebuilds the popover.
func NewDropdown(host *dom.Element, cfg DropdownConfig) (*Dropdown, error) {
	if cfg.ButtonTag == "" {
		cfg.ButtonTag = DefaultPrefix + "-button"
	}
	if cfg.Defaults == (popover.Options{}) {
		cfg.Defaults = popover.DefaultOptions()
	}
	markup := template.Interpolate(dropdownMarkup, cfg.ButtonTag, cfg.ButtonTag)
	base, err := element.NewBase(host, markup, dropdownAttributes, cfg.Logger, style.CSS(dropdownStyles))
	if err != nil {
		return nil, err
	}

	buttonHost := base.Refs.Part("trigger")
	label := cfg.Label
	if label == "" {
		label = host.Attr("label")
	}
	buttonHost.SetTextContent(label)

	trigger, err := NewButton(buttonHost, cfg.Logger)
	if err != nil {
		return nil, err
	}

	d := &Dropdown{
		Base:     base,
		trigger:  trigger,
		window:   cfg.Window,
		defaults: cfg.Defaults,
	}
	d.build()

	callbacks := map[string]element.ChangeFunc{
		"label": func(_, v string) { d.trigger.Host.SetTextContent(v) },
	}
	for _, spec := range dropdownAttributes.Specs() {
		if _, ok := callbacks[spec.Attribute]; !ok {
			callbacks[spec.Attribute] = func(_, _ string) { d.rebuild() }
		}
	}
	if err := d.Observe(callbacks); err != nil {
		return nil, err
	}

	panelID := "panel-" + dom.NewID()
	d.Panel().SetAttribute("id", panelID)
	buttonHost.SetAttribute("aria-controls", panelID)

	d.Handlers[dom.EventClick] = d.onTriggerClick
	d.Listen(buttonHost, dom.EventClick)
	return d, nil
}

// Trigger returns the trigger button.
func (d *Dropdown) Trigger() *Button { return d.trigger }

// TriggerContainer returns the element the panel is positioned against.
func (d *Dropdown) TriggerContainer() *dom.Element { return d.Refs.Part("triggerContainer") }

// Panel returns the panel element.
func (d *Dropdown) Panel() *dom.Element { return d.Refs.Part("panel") }

// Popover returns the current popover.
func (d *Dropdown) Popover() *popover.Popover { return d.popover }

// AddItem appends el to the panel.
func (d *Dropdown) AddItem(el *dom.Element) {
	d.Panel().AppendChild(el)
}

// Options returns the effective popover options.
func (d *Dropdown) Options() popover.Options {
	return d.optionsFromAttributes()
}

// IsOpen reports whether the panel is shown.
func (d *Dropdown) IsOpen() bool { return d.popover.IsOpen() }

// Open shows the panel.
func (d *Dropdown) Open() { d.popover.Show() }

// Hide hides the panel.
func (d *Dropdown) Hide() { d.popover.Hide() }

// Close releases the dropdown: the popover is destroyed and listeners are
// removed. It is safe to call more than once.
func (d *Dropdown) Close() {
	if d.closed {
		return
	}
	d.closed = true
	d.popover.Destroy()
	d.trigger.Disconnect()
	d.Disconnect()
}

func (d *Dropdown) onTriggerClick(ev *dom.Event) {
	if d.closed || d.trigger.Disabled() {
		return
	}
	d.popover.Toggle(ev)
}

func (d *Dropdown) build() {
	d.popover = popover.New(d.TriggerContainer(), d.Panel(), d.window,
		popover.WithOptions(d.optionsFromAttributes()),
		popover.WithLogger(d.Logger()),
	)
}

func (d *Dropdown) rebuild() {
	if d.closed {
		return
	}
	open := d.popover.IsOpen()
	d.popover.Destroy()
	d.build()
	if open {
		d.popover.Show()
	}
}

// optionsFromAttributes overlays non-empty host attributes on the defaults.
// Values that do not parse are ignored.
func (d *Dropdown) optionsFromAttributes() popover.Options {
	opts := d.defaults
	set := element.StripFalsy(map[string]any{
		"placement":     d.String("placement"),
		"offset":        d.String("offset"),
		"popover-width": d.String("popoverWidth"),
		"flip":          d.String("flip"),
		"auto-update":   d.String("autoUpdate"),
	})

	if v, ok := set["placement"]; ok {
		opts.Placement = popover.Placement(v.(string))
	}
	if v, ok := set["popover-width"]; ok {
		opts.PopoverWidth = popover.WidthMode(v.(string))
	}
	if v, ok := set["offset"]; ok {
		if f, err := strconv.ParseFloat(v.(string), 64); err == nil {
			opts.Offset = f
		}
	}
	if v, ok := set["flip"]; ok {
		if b, err := strconv.ParseBool(v.(string)); err == nil {
			opts.Flip = b
		}
	}
	if v, ok := set["auto-update"]; ok {
		if b, err := strconv.ParseBool(v.(string)); err == nil {
			opts.AutoUpdate = b
		}
	}
	return opts
}
