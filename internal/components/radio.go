package components

import (
	"log/slog"

	"github.com/jmylchreest/uikit/internal/dom"
	"github.com/jmylchreest/uikit/internal/element"
	"github.com/jmylchreest/uikit/internal/style"
)

// ValueMissingMessage is shown when a radio group has no selection.
const ValueMissingMessage = "Please select an option."

const radioMarkup = `
<span part="circle"></span>
<slot part="label"></slot>
`

var radioStyles = []string{`
:host {
	display: inline-flex;
	align-items: center;
	gap: var(--ui-space-3);
	outline: none;
	cursor: pointer;
}

:host(:focus) [part=circle] {
	outline: var(--ui-focus-ring);
	outline-offset: var(--ui-focus-ring-offset);
}

:host([checked]) [part=circle] {
	width: var(--ui-space-6);
	height: var(--ui-space-6);
	border-radius: 50%;
	box-shadow: inset 0 0 0 5px var(--ui-color-primary-500);
}

:host(:not([checked])) [part=circle] {
	width: var(--ui-space-6);
	height: var(--ui-space-6);
	border-radius: 50%;
	box-shadow: inset 0 0 0 1px var(--ui-border-color-2);
}
`}

var radioAttributes = element.CreateAttributes(map[element.AttrType][]string{
	element.AttrBoolean:  {"checked"},
	element.AttrProperty: {"value"},
})

// Radio is a single option of a RadioGroup. Activating it by click or
// Space emits a bubbling ui-change; the group decides the selection.
type Radio struct {
	*element.Base
}

// NewRadio upgrades host to a radio.
func NewRadio(host *dom.Element, logger *slog.Logger) (*Radio, error) {
	base, err := element.NewBase(host, radioMarkup, radioAttributes, logger, style.CSS(radioStyles))
	if err != nil {
		return nil, err
	}
	host.SetAttribute("role", "radio")

	r := &Radio{Base: base}
	r.Handlers[dom.EventClick] = r.onClick
	r.Handlers[dom.EventKeydown] = r.onKeydown
	r.Listen(host, dom.EventClick, dom.EventKeydown)
	return r, nil
}

// Checked reports whether the radio is selected.
func (r *Radio) Checked() bool { return r.Bool("checked") }

// Value returns the radio's value.
func (r *Radio) Value() string { return r.String("value") }

func (r *Radio) onClick(ev *dom.Event) {
	ev.PreventDefault()
	r.Emit(dom.EventUIChange)
}

func (r *Radio) onKeydown(ev *dom.Event) {
	if ev.Key != " " {
		return
	}
	ev.PreventDefault()
	r.Emit(dom.EventUIChange)
}
