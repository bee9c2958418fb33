package components

import (
	"log/slog"

	"github.com/jmylchreest/uikit/internal/dom"
	"github.com/jmylchreest/uikit/internal/element"
	"github.com/jmylchreest/uikit/internal/style"
)

// Button types.
const (
	ButtonTypeButton = "button"
	ButtonTypeSubmit = "submit"
	ButtonTypeReset  = "reset"
)

const buttonMarkup = `
<button id="button" part="button">
	<slot name="start"></slot>
	<div part="label"><slot></slot></div>
	<slot name="end"></slot>
	<svg id="loading-icon" width="24" height="24" viewBox="0 0 24 24" style="display: none"><path d="M12,1A11,11,0,1,0,23,12,11,11,0,0,0,12,1Zm0,19a8,8,0,1,1,8-8A8,8,0,0,1,12,20Z" opacity=".25"/></svg>
</button>
`

var buttonStyles = []string{`
:host {
	display: inline-block;
}

:host([loading])::part(button) {
	background-color: lightgray;
	color: rgba(0, 0, 0, 0.5);
}

:host([variant])::part(button):focus {
	outline: var(--ui-focus-ring);
	outline-offset: var(--ui-focus-ring-offset);
}

:host([size="small"])::part(button) {
	font-size: var(--ui-font-size-0);
	line-height: var(--ui-line-height);
	min-height: var(--ui-space-8);
}

:host(:not([size]))::part(button),
:host([size="medium"])::part(button) {
	min-height: var(--ui-space-9);
	font-size: var(--ui-font-size-1);
	line-height: var(--ui-line-height);
}

:host([size="large"])::part(button) {
	font-size: var(--ui-font-size-2);
	line-height: var(--ui-line-height);
}

:host([variant="primary"])::part(button) {
	background-color: var(--ui-color-primary-500);
	color: white;
}

:host([variant="success"])::part(button) {
	background-color: var(--ui-color-green-600);
	color: white;
}

:host([variant="danger"])::part(button) {
	background-color: var(--ui-color-red-600);
	color: white;
}

:host([variant="info"])::part(button) {
	background-color: var(--ui-color-blue-600);
	color: white;
}

:host([variant="warning"])::part(button) {
	background-color: var(--ui-color-orange-600);
	color: white;
}

:host([variant])::part(button) {
	display: inline-flex;
	align-items: center;
	border: none;
	padding-block: 0.55ch;
	padding-inline: 1.2ch;
	border-radius: var(--ui-border-radius-1);
	cursor: pointer;
}

:host([disabled])::part(button) {
	background-color: #ccc;
	color: rgba(0, 0, 0, 0.5);
	cursor: not-allowed;
}

#loading-icon {
	position: absolute;
	display: none;
	top: 50%;
	left: 50%;
	transform: translate(-50%, -50%);
}
`}

var buttonAttributes = element.CreateAttributes(map[element.AttrType][]string{
	element.AttrBoolean:  {"loading", "disabled"},
	element.AttrProperty: {"type", "button-aria-label", "variant", "size"},
})

// Button emits ui-click when activated. Submit and reset buttons also act
// on their form.
type Button struct {
	*element.Base

	form *Form
}

// NewButton upgrades host to a button.
func NewButton(host *dom.Element, logger *slog.Logger) (*Button, error) {
	base, err := element.NewBase(host, buttonMarkup, buttonAttributes, logger, style.CSS(buttonStyles))
	if err != nil {
		return nil, err
	}

	b := &Button{Base: base}
	err = b.Observe(map[string]element.ChangeFunc{
		"loading": func(_, _ string) { b.loadingChanged() },
		"type":    func(_, _ string) { b.typeChanged() },
		"button-aria-label": func(_, v string) {
			b.inner().SetAttribute("aria-label", v)
		},
	})
	if err != nil {
		return nil, err
	}

	b.typeChanged()
	b.loadingChanged()
	if label := b.String("buttonAriaLabel"); label != "" {
		b.inner().SetAttribute("aria-label", label)
	}

	b.Handlers[dom.EventClick] = b.onClick
	b.Listen(host, dom.EventClick)
	return b, nil
}

func (b *Button) inner() *dom.Element { return b.Refs.ID("button") }

// SetForm associates the button with a form.
func (b *Button) SetForm(f *Form) { b.form = f }

// Form returns the associated form, or nil.
func (b *Button) Form() *Form { return b.form }

// Type returns the button type, "button" when unset.
func (b *Button) Type() string {
	if t := b.String("type"); t != "" {
		return t
	}
	return ButtonTypeButton
}

// Loading reports whether the button shows its loading state.
func (b *Button) Loading() bool { return b.Bool("loading") }

// SetLoading toggles the loading state.
func (b *Button) SetLoading(on bool) { b.SetBool("loading", on) }

// Disabled reports whether the button is disabled.
func (b *Button) Disabled() bool { return b.Bool("disabled") }

// SetDisabled toggles the disabled state.
func (b *Button) SetDisabled(on bool) { b.SetBool("disabled", on) }

func (b *Button) onClick(ev *dom.Event) {
	if b.Disabled() || b.Loading() {
		return
	}
	if !ev.PathIncludes(b.Host) {
		return
	}
	b.Host.DispatchEvent(dom.NewEvent(dom.EventUIClick, b.Host))

	switch b.Type() {
	case ButtonTypeSubmit:
		b.submit()
	case ButtonTypeReset:
		if b.form != nil {
			b.form.Reset()
		}
	}
}

func (b *Button) submit() {
	if b.form == nil {
		return
	}
	b.Host.DispatchEvent(dom.NewBubblingEvent(dom.EventSubmitted, b.Host))
	b.form.Submit()
	b.Host.Focus()
}

func (b *Button) loadingChanged() {
	icon := b.Refs.ID("loadingIcon")
	if icon == nil {
		return
	}
	if !b.Loading() {
		icon.Style.Set("display", dom.DisplayNone)
		return
	}
	icon.Style.Set("display", dom.DisplayBlock)
	if icon.Attr("name") == "" {
		icon.SetAttribute("name", "loading")
	}
}

func (b *Button) typeChanged() {
	b.inner().SetAttribute("type", b.Type())
}
