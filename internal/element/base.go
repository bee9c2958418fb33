package element

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/jmylchreest/uikit/internal/dom"
	"github.com/jmylchreest/uikit/internal/style"
	"github.com/jmylchreest/uikit/internal/template"
)

// ChangeFunc is called when an observed attribute changes. newValue is ""
// when the attribute was removed.
type ChangeFunc func(oldValue, newValue string)

// Handlers maps event kinds to handlers. Kinds without an entry are ignored.
type Handlers map[dom.EventKind]func(*dom.Event)

// HandleEvent routes ev to the handler registered for its kind.
func (h Handlers) HandleEvent(ev *dom.Event) {
	if fn, ok := h[ev.Kind]; ok && fn != nil {
		fn(ev)
	}
}

// Base is embedded by components. It owns the host element, its shadow
// root and the stamped template.
type Base struct {
	Reflector

	Host   *dom.Element
	Shadow *dom.Element
	Refs   template.Refs
	Attrs  Attributes

	Handlers Handlers

	logger    *slog.Logger
	sheets    []*style.Sheet
	callbacks map[string]ChangeFunc
	listeners []registration
}

type registration struct {
	target *dom.Element
	id     dom.ListenerID
}

// NewBase attaches a shadow root to host, stamps markup into it and starts
// routing attribute changes. Sheets are adopted by the shadow root in the
// order given.
func NewBase(host *dom.Element, markup string, attrs Attributes, logger *slog.Logger, sheets ...*style.Sheet) (*Base, error) {
	if logger == nil {
		logger = slog.Default()
	}

	frag, err := template.HTML([]string{markup})
	if err != nil {
		return nil, fmt.Errorf("failed to stamp %s template: %w", host.Tag, err)
	}

	b := &Base{
		Reflector: NewReflector(host, attrs),
		Host:      host,
		Shadow:    host.AttachShadow(),
		Attrs:     attrs,
		Handlers:  make(Handlers),
		logger:    logger.With("element", host.Tag),
		sheets:    sheets,
		callbacks: make(map[string]ChangeFunc),
	}
	b.Shadow.AppendChild(frag.CloneNode(true))
	b.Refs = template.GetRefs(b.Shadow)

	host.ObserveAttributes(b.AttributeChanged)
	return b, nil
}

// Logger returns the element's logger.
func (b *Base) Logger() *slog.Logger { return b.logger }

// AdoptedStyleSheets returns the sheets adopted by the shadow root.
func (b *Base) AdoptedStyleSheets() []*style.Sheet {
	out := make([]*style.Sheet, len(b.sheets))
	copy(out, b.sheets)
	return out
}

// OnChange registers fn for changes to an observed attribute, replacing any
// earlier callback. Unobserved attributes are rejected.
func (b *Base) OnChange(attribute string, fn ChangeFunc) error {
	if _, ok := b.Attrs.Lookup(attribute); !ok {
		return fmt.Errorf("attribute %q is not observed by %s", attribute, b.Host.Tag)
	}
	b.callbacks[attribute] = fn
	return nil
}

// Observe registers callbacks for several attributes. Every valid
// registration is kept; the errors of the others are joined.
func (b *Base) Observe(fns map[string]ChangeFunc) error {
	var errs []error
	for attribute, fn := range fns {
		if err := b.OnChange(attribute, fn); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// AttributeChanged routes a host attribute change to its callback.
func (b *Base) AttributeChanged(name, oldValue, newValue string, removed bool) {
	spec, ok := b.Attrs.Lookup(name)
	if !ok {
		return
	}
	fn, ok := b.callbacks[name]
	if !ok {
		return
	}
	b.logger.Debug("attribute changed", "callback", spec.CallbackName, "old", oldValue, "new", newValue, "removed", removed)
	fn(oldValue, newValue)
}

// Listen registers the Handlers table on target for kinds. Registrations
// are released by Disconnect.
func (b *Base) Listen(target *dom.Element, kinds ...dom.EventKind) {
	for _, kind := range kinds {
		if _, ok := b.Handlers[kind]; !ok {
			b.logger.Debug("no handler for event", "event", kind, "handler", HandlerName(kind))
		}
		id := target.AddEventListener(kind, b.Handlers.HandleEvent)
		b.listeners = append(b.listeners, registration{target: target, id: id})
	}
}

// Emit dispatches a bubbling event of kind from the host.
func (b *Base) Emit(kind dom.EventKind) bool {
	return b.Host.DispatchEvent(dom.NewBubblingEvent(kind, b.Host))
}

// Disconnect removes every listener registered through Listen.
func (b *Base) Disconnect() {
	for _, r := range b.listeners {
		r.target.RemoveEventListener(r.id)
	}
	b.listeners = nil
}

func isZero(v any) bool {
	if v == nil {
		return true
	}
	return reflect.ValueOf(v).IsZero()
}
