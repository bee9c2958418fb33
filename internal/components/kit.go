// Package components implements the toolkit's elements on top of the
// element base: radios and radio groups, buttons, button groups and the
// dropdown that drives the popover engine.
package components

import (
	"log/slog"

	"github.com/jmylchreest/uikit/internal/dom"
	"github.com/jmylchreest/uikit/internal/popover"
	"github.com/jmylchreest/uikit/internal/style"
)

// DefaultPrefix is the tag prefix used when none is configured.
const DefaultPrefix = "ui"

// Kit creates components that share a tag prefix, a document, a window and
// default popover options.
type Kit struct {
	Prefix   string
	Document *style.Document
	Window   *dom.Window
	Popover  popover.Options
	Logger   *slog.Logger
}

// NewKit creates a kit with default popover options. An empty prefix uses
// DefaultPrefix; a nil document uses the default cache.
func NewKit(prefix string, window *dom.Window, document *style.Document, logger *slog.Logger) *Kit {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	if document == nil {
		document = style.NewDocument(nil)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Kit{
		Prefix:   prefix,
		Document: document,
		Window:   window,
		Popover:  popover.DefaultOptions(),
		Logger:   logger,
	}
}

// Tag returns the prefixed tag for a component name, "ui-button" for
// "button" with the default prefix.
func (k *Kit) Tag(name string) string {
	return k.Prefix + "-" + name
}

// Radio creates a radio with value and label.
func (k *Kit) Radio(value, label string) (*Radio, error) {
	host := dom.NewElement(k.Tag("radio"))
	host.SetAttribute("value", value)
	host.SetTextContent(label)
	return NewRadio(host, k.Logger)
}

// RadioGroup creates an empty radio group.
func (k *Kit) RadioGroup(name, label string) (*RadioGroup, error) {
	host := dom.NewElement(k.Tag("radio-group"))
	host.SetAttribute("name", name)
	g, err := NewRadioGroup(host, k.Tag("radio"), k.Logger)
	if err != nil {
		return nil, err
	}
	if label != "" {
		g.SetLabel(label)
	}
	return g, nil
}

// Button creates a button with a text label.
func (k *Kit) Button(label, variant string) (*Button, error) {
	host := dom.NewElement(k.Tag("button"))
	host.SetTextContent(label)
	if variant != "" {
		host.SetAttribute("variant", variant)
	}
	return NewButton(host, k.Logger)
}

// ButtonGroup creates a button group.
func (k *Kit) ButtonGroup(separated bool) (*ButtonGroup, error) {
	host := dom.NewElement(k.Tag("button-group"))
	host.ToggleAttribute("separated", separated)
	return NewButtonGroup(host, k.Prefix, k.Document, k.Logger)
}

// Dropdown creates a dropdown whose trigger shows label.
func (k *Kit) Dropdown(label string) (*Dropdown, error) {
	host := dom.NewElement(k.Tag("dropdown"))
	return NewDropdown(host, DropdownConfig{
		Label:     label,
		ButtonTag: k.Tag("button"),
		Window:    k.Window,
		Defaults:  k.Popover,
		Logger:    k.Logger,
	})
}
