package components

import (
	"log/slog"

	"github.com/jmylchreest/uikit/internal/dom"
	"github.com/jmylchreest/uikit/internal/element"
	"github.com/jmylchreest/uikit/internal/style"
)

// SeparatedGap is the gap between members of a separated button group.
const SeparatedGap = "2px"

const buttonGroupMarkup = `<slot></slot>`

var buttonGroupStyles = []string{`
:host {
	display: inline-flex;
}

:host([separated]) {
	gap: `, `;
}
`}

// groupGlobalStyles joins adjoining buttons of an unseparated group. The
// values are the prefix, repeated for each selector that names a tag.
var groupGlobalStyles = []string{`
`, `-button-group:not([separated]) {
	> `, `-dropdown:first-child > `, `-button::part(button),
	> `, `-button:first-child::part(button) {
		border-top-right-radius: 0;
		border-bottom-right-radius: 0;
	}

	> `, `-dropdown:last-child > `, `-button::part(button),
	> `, `-button:last-child::part(button) {
		border-top-left-radius: 0;
		border-bottom-left-radius: 0;
	}

	> `, `-dropdown:not(:first-child, :last-child) > `, `-button::part(button),
	> `, `-button:not(:first-child, :last-child)::part(button) {
		border-radius: 0;
		border-right: 1px solid var(--ui-color-primary-300);
		border-left: 1px solid var(--ui-color-primary-300);
	}
}
`}

var buttonGroupAttributes = element.CreateAttributes(map[element.AttrType][]string{
	element.AttrBoolean: {"separated"},
})

// ButtonGroup lays out buttons and dropdowns inline. A separated group
// keeps a small gap between its members; dropdown panels read that gap to
// size themselves across the group.
type ButtonGroup struct {
	*element.Base
}

// NewButtonGroup upgrades host to a button group and adopts the group's
// document-level styles once per document.
func NewButtonGroup(host *dom.Element, prefix string, document *style.Document, logger *slog.Logger) (*ButtonGroup, error) {
	base, err := element.NewBase(host, buttonGroupMarkup, buttonGroupAttributes, logger, style.CSS(buttonGroupStyles, SeparatedGap))
	if err != nil {
		return nil, err
	}

	if document != nil {
		if document.AddGlobal(GroupGlobalCSS(prefix)) {
			base.Logger().Debug("adopted button group styles")
		}
	}

	g := &ButtonGroup{Base: base}
	if err := g.OnChange("separated", func(_, _ string) { g.applyGap() }); err != nil {
		return nil, err
	}
	g.applyGap()
	return g, nil
}

// GroupGlobalCSS returns the document-level button group styles for prefix.
func GroupGlobalCSS(prefix string) string {
	values := make([]any, len(groupGlobalStyles)-1)
	for i := range values {
		values[i] = prefix
	}
	return style.Interpolate(groupGlobalStyles, values...)
}

// Separated reports whether the group keeps gaps between members.
func (g *ButtonGroup) Separated() bool { return g.Bool("separated") }

// SetSeparated toggles the gap between members.
func (g *ButtonGroup) SetSeparated(on bool) { g.SetBool("separated", on) }

// Add appends members to the group.
func (g *ButtonGroup) Add(members ...*dom.Element) {
	for _, m := range members {
		g.Host.AppendChild(m)
	}
}

func (g *ButtonGroup) applyGap() {
	if g.Separated() {
		g.Host.Computed["gap"] = SeparatedGap
		return
	}
	delete(g.Host.Computed, "gap")
}
