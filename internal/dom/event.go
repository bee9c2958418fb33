package dom

// EventKind identifies an event type.
type EventKind string

// Event kinds dispatched by hosts and components.
const (
	EventClick     EventKind = "click"
	EventScroll    EventKind = "scroll"
	EventResize    EventKind = "resize"
	EventKeydown   EventKind = "keydown"
	EventFocus     EventKind = "focus"
	EventUIChange  EventKind = "ui-change"
	EventUIClick   EventKind = "ui-click"
	EventSubmitted EventKind = "submitted"
	EventReset     EventKind = "reset"
)

// ListenerID identifies a registered listener so it can be removed.
type ListenerID uint64

// Handler receives dispatched events.
type Handler func(ev *Event)

type listener struct {
	id      ListenerID
	kind    EventKind
	handler Handler
}

// Event is a dispatched event.
type Event struct {
	Kind    EventKind
	Target  *Element
	Key     string
	Bubbles bool

	// X, Y carry pointer coordinates for click events.
	X, Y float64

	currentTarget      *Element
	defaultPrevented   bool
	propagationStopped bool
}

// NewEvent creates an event of the given kind aimed at target.
func NewEvent(kind EventKind, target *Element) *Event {
	return &Event{Kind: kind, Target: target}
}

// NewBubblingEvent creates an event that bubbles along the composed path.
func NewBubblingEvent(kind EventKind, target *Element) *Event {
	return &Event{Kind: kind, Target: target, Bubbles: true}
}

// PreventDefault marks the event's default action as cancelled.
func (e *Event) PreventDefault() { e.defaultPrevented = true }

// DefaultPrevented reports whether PreventDefault was called.
func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }

// StopPropagation stops delivery to further elements and to the window.
func (e *Event) StopPropagation() { e.propagationStopped = true }

// PropagationStopped reports whether StopPropagation was called.
func (e *Event) PropagationStopped() bool { return e.propagationStopped }

// CurrentTarget is the element whose listener is running.
func (e *Event) CurrentTarget() *Element { return e.currentTarget }

// ComposedPath returns the target followed by its ancestors, crossing
// shadow root boundaries into their hosts.
func (e *Event) ComposedPath() []*Element {
	var path []*Element
	for n := e.Target; n != nil; n = n.composedParent() {
		path = append(path, n)
	}
	return path
}

// PathIncludes reports whether el is on the event's composed path.
func (e *Event) PathIncludes(el *Element) bool {
	for _, n := range e.ComposedPath() {
		if n == el {
			return true
		}
	}
	return false
}
