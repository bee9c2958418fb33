package dom

import (
	"log/slog"

	"github.com/jmylchreest/uikit/internal/geom"
)

// Window is the top-level event target and viewport of an element tree.
// It is not safe for concurrent use; hosts drive it from one goroutine.
type Window struct {
	logger    *slog.Logger
	size      geom.Size
	nextID    ListenerID
	listeners []listener
}

// NewWindow creates a window with the given viewport size.
func NewWindow(width, height float64, logger *slog.Logger) *Window {
	if logger == nil {
		logger = slog.Default()
	}
	return &Window{
		logger: logger,
		size:   geom.Size{W: width, H: height},
	}
}

// Viewport returns the viewport size (innerWidth, innerHeight).
func (w *Window) Viewport() geom.Size {
	return w.size
}

// Resize sets the viewport size and dispatches a resize event.
func (w *Window) Resize(width, height float64) {
	w.size = geom.Size{W: width, H: height}
	w.Dispatch(NewEvent(EventResize, nil))
}

// AddEventListener registers a window-level listener.
func (w *Window) AddEventListener(kind EventKind, h Handler) ListenerID {
	w.nextID++
	w.listeners = append(w.listeners, listener{id: w.nextID, kind: kind, handler: h})
	return w.nextID
}

// RemoveEventListener unregisters a listener. Removing an unknown id is a
// no-op and returns false.
func (w *Window) RemoveEventListener(id ListenerID) bool {
	for i, l := range w.listeners {
		if l.id == id {
			w.listeners = append(w.listeners[:i], w.listeners[i+1:]...)
			return true
		}
	}
	return false
}

// ListenerCount returns the number of listeners registered for kind.
func (w *Window) ListenerCount(kind EventKind) int {
	n := 0
	for _, l := range w.listeners {
		if l.kind == kind {
			n++
		}
	}
	return n
}

// Dispatch delivers an event. When the event has a target it first runs
// through the target's composed path; window listeners run last unless
// propagation was stopped. Listeners removed during dispatch are skipped.
func (w *Window) Dispatch(ev *Event) {
	if ev.Target != nil {
		ev.Target.DispatchEvent(ev)
		if ev.propagationStopped {
			return
		}
	}

	snapshot := make([]listener, len(w.listeners))
	copy(snapshot, w.listeners)

	ev.currentTarget = nil
	for _, l := range snapshot {
		if l.kind != ev.Kind || !w.registered(l.id) {
			continue
		}
		l.handler(ev)
	}
}

func (w *Window) registered(id ListenerID) bool {
	for _, l := range w.listeners {
		if l.id == id {
			return true
		}
	}
	return false
}
