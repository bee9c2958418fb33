package components

import (
	"log/slog"
	"strings"

	"github.com/jmylchreest/uikit/internal/dom"
	"github.com/jmylchreest/uikit/internal/element"
	"github.com/jmylchreest/uikit/internal/style"
)

const radioGroupMarkup = `
<fieldset role="radiogroup" aria-labelledby="label" aria-describedby="label error">
	<label id="label" part="label">
		<slot name="label"></slot>
	</label>
	<div id="help" part="help">
		<slot name="help"></slot>
	</div>
	<div part="radios-container">
		<slot></slot>
	</div>
	<div id="error" part="error">
		<slot name="error"></slot>
	</div>
</fieldset>
`

var radioGroupStyles = []string{`
:host {
	display: block;
}

:host([orientation=vertical]) [part=radios-container] {
	flex-direction: column;
}

[part=radios-container] {
	display: flex;
	gap: var(--ui-space-3);
}

fieldset {
	border: none;
	margin: 0;
	padding: 0;
	outline: none;
}
`}

var radioGroupAttributes = element.CreateAttributes(map[element.AttrType][]string{
	element.AttrBoolean:  {"disabled", "required"},
	element.AttrProperty: {"value", "name", "error", "label", "help", "orientation"},
})

// arrowDirection maps arrow keys to a step through the radios.
var arrowDirection = map[string]int{
	"ArrowDown":  1,
	"ArrowRight": 1,
	"ArrowUp":    -1,
	"ArrowLeft":  -1,
}

// RadioGroup manages selection, keyboard navigation and validity for the
// radios among its light-tree descendants.
type RadioGroup struct {
	*element.Base

	radioTag  string
	valid     bool
	formValue string
}

// NewRadioGroup upgrades host to a radio group. radioTag names the radio
// elements it manages.
func NewRadioGroup(host *dom.Element, radioTag string, logger *slog.Logger) (*RadioGroup, error) {
	base, err := element.NewBase(host, radioGroupMarkup, radioGroupAttributes, logger, style.CSS(radioGroupStyles))
	if err != nil {
		return nil, err
	}

	g := &RadioGroup{Base: base, radioTag: radioTag, valid: true}
	err = g.Observe(map[string]element.ChangeFunc{
		"label": g.slotText("label"),
		"help":  g.slotText("help"),
		"error": g.slotText("error"),
	})
	if err != nil {
		return nil, err
	}
	g.assignIDs()

	g.Handlers[dom.EventUIChange] = g.onUIChange
	g.Handlers[dom.EventKeydown] = g.onKeydown
	g.Listen(host, dom.EventUIChange, dom.EventKeydown)
	return g, nil
}

// assignIDs gives the label, help and error boxes ids unique to this group
// and points the fieldset's ARIA references at them.
func (g *RadioGroup) assignIDs() {
	suffix := "-" + strings.ToLower(dom.NewID())
	ids := make(map[string]string, 3)
	for _, part := range []string{"label", "help", "error"} {
		if el := g.Refs.Part(part); el != nil {
			ids[part] = part + suffix
			el.SetAttribute("id", ids[part])
		}
	}
	if fieldset := g.Shadow.QuerySelector("fieldset"); fieldset != nil {
		fieldset.SetAttribute("aria-labelledby", ids["label"])
		fieldset.SetAttribute("aria-describedby", ids["label"]+" "+ids["error"])
	}
}

func (g *RadioGroup) slotText(name string) element.ChangeFunc {
	return func(_, newValue string) {
		if slot := g.Refs.Slot(name); slot != nil {
			slot.SetTextContent(newValue)
		}
	}
}

// Add appends radios and refreshes the roving tabindex.
func (g *RadioGroup) Add(radios ...*Radio) {
	for _, r := range radios {
		g.Host.AppendChild(r.Host)
	}
	g.InitRadios()
}

// Radios returns the managed radio elements in document order.
func (g *RadioGroup) Radios() []*dom.Element {
	return g.Host.QuerySelectorAll(g.radioTag)
}

// InitRadios makes the checked radio, or the first one, the only radio
// reachable by tab.
func (g *RadioGroup) InitRadios() {
	radios := g.Radios()
	var selected *dom.Element
	for _, r := range radios {
		if r.HasAttribute("checked") {
			selected = r
			break
		}
	}
	for i, r := range radios {
		if r == selected || (selected == nil && i == 0) {
			r.SetAttribute("tabindex", "0")
		} else {
			r.SetAttribute("tabindex", "-1")
		}
	}
}

// Name returns the form field name.
func (g *RadioGroup) Name() string { return g.String("name") }

// Value returns the selected value.
func (g *RadioGroup) Value() string { return g.String("value") }

// FormValue returns the value last submitted to the form.
func (g *RadioGroup) FormValue() string { return g.formValue }

// ErrorText returns the current error text.
func (g *RadioGroup) ErrorText() string { return g.String("error") }

// SetLabel sets the label text.
func (g *RadioGroup) SetLabel(s string) { g.SetString("label", s) }

// SetHelp sets the help text.
func (g *RadioGroup) SetHelp(s string) { g.SetString("help", s) }

// SetError sets the error text.
func (g *RadioGroup) SetError(s string) { g.SetString("error", s) }

func (g *RadioGroup) onUIChange(ev *dom.Event) {
	if g.Bool("disabled") {
		return
	}
	g.Select(ev.Target)
	g.UpdateValidity()
}

func (g *RadioGroup) onKeydown(ev *dom.Event) {
	if g.Bool("disabled") {
		return
	}
	step, ok := arrowDirection[ev.Key]
	if !ok {
		return
	}
	radios := g.Radios()
	current := -1
	for i, r := range radios {
		if r == ev.Target {
			current = i
			break
		}
	}
	if current == -1 {
		return
	}
	n := len(radios)
	g.Select(radios[(current+step+n)%n])
}

// Select checks target, unchecks every other radio and moves focus and the
// tab stop to target. Targets that are not managed radios uncheck all.
func (g *RadioGroup) Select(target *dom.Element) {
	for _, r := range g.Radios() {
		if r != target {
			r.RemoveAttribute("checked")
			r.SetAttribute("tabindex", "-1")
			continue
		}
		value := r.Attr("value")
		g.SetString("value", value)
		g.formValue = value
		r.SetAttribute("checked", "")
		r.SetAttribute("tabindex", "0")
		r.Focus()
	}
}

// UpdateValidity recomputes validity from the current selection and
// reflects it in the error slot and ARIA attributes.
func (g *RadioGroup) UpdateValidity() bool {
	radios := g.Radios()
	valid := false
	for _, r := range radios {
		if r.HasAttribute("checked") {
			valid = true
			break
		}
	}
	g.valid = valid

	errorSlot := g.Refs.Slot("error")
	errorBox := g.Refs.ID("error")

	var first *dom.Element
	if len(radios) > 0 {
		first = radios[0]
	}

	if !valid {
		g.SetError(ValueMissingMessage)
		if errorSlot != nil {
			errorSlot.SetTextContent(ValueMissingMessage)
		}
		if errorBox != nil {
			errorBox.SetAttribute("role", "alert")
			errorBox.SetAttribute("aria-live", "polite")
		}
		if first != nil {
			first.SetAttribute("aria-invalid", "true")
			first.SetAttribute("aria-required", "true")
			first.Focus()
		}
		g.Logger().Debug("radio group invalid", "name", g.Name())
		return false
	}

	if first != nil {
		first.RemoveAttribute("aria-invalid")
		first.RemoveAttribute("aria-required")
	}
	if errorSlot != nil {
		errorSlot.SetTextContent("")
	}
	return true
}

// CheckValidity reports validity without touching the error state. A
// required group is invalid until something is checked.
func (g *RadioGroup) CheckValidity() bool {
	if !g.valid {
		return false
	}
	if !g.Bool("required") {
		return true
	}
	for _, r := range g.Radios() {
		if r.HasAttribute("checked") {
			return true
		}
	}
	return false
}

// ReportValidity updates the visible validity state.
func (g *RadioGroup) ReportValidity() bool {
	return g.UpdateValidity()
}

// Reset clears the selection and any error.
func (g *RadioGroup) Reset() {
	for _, r := range g.Radios() {
		r.RemoveAttribute("checked")
		r.RemoveAttribute("aria-invalid")
		r.RemoveAttribute("aria-required")
	}
	g.Host.RemoveAttribute("value")
	g.Host.RemoveAttribute("error")
	if slot := g.Refs.Slot("error"); slot != nil {
		slot.SetTextContent("")
	}
	g.formValue = ""
	g.valid = true
	g.InitRadios()
}

// Focus focuses the radio holding the tab stop.
func (g *RadioGroup) Focus() {
	if r := g.Host.QuerySelector(g.radioTag + `[tabindex="0"]`); r != nil {
		r.Focus()
	}
}
