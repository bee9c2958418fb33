package dom

import (
	"strings"

	"github.com/jmylchreest/uikit/internal/geom"
)

// Tags of the synthetic node kinds.
const (
	TagShadowRoot = "#shadow-root"
	TagFragment   = "#fragment"
	TagText       = "#text"
)

// AttributeObserver is notified when an attribute changes. removed is true
// when the attribute no longer exists; newValue is then "".
type AttributeObserver func(name, oldValue, newValue string, removed bool)

// Element is a node in the tree. Shadow roots, fragments and text nodes
// are elements with the synthetic tags above.
type Element struct {
	Tag string

	// Text is the data of a text node. On other elements it is text set
	// with SetTextContent, rendered before any children.
	Text string

	Style *Style

	// Computed holds resolved style values a host or component supplies,
	// for example "gap" on a separated button group.
	Computed map[string]string

	attrs     map[string]string
	attrOrder []string

	parent   *Element
	children []*Element

	shadow *Element
	host   *Element

	box    geom.Rect
	active *Element

	nextID    ListenerID
	listeners []listener
	observers []AttributeObserver
}

// NewElement creates a detached element.
func NewElement(tag string) *Element {
	return &Element{
		Tag:      strings.ToLower(tag),
		Style:    NewStyle(),
		Computed: make(map[string]string),
		attrs:    make(map[string]string),
	}
}

// NewFragment creates an empty fragment node.
func NewFragment() *Element {
	return NewElement(TagFragment)
}

// NewText creates a detached text node.
func NewText(data string) *Element {
	t := NewElement(TagText)
	t.Text = data
	return t
}

// IsShadowRoot reports whether the node is a shadow root.
func (e *Element) IsShadowRoot() bool { return e.Tag == TagShadowRoot }

// IsFragment reports whether the node is a fragment.
func (e *Element) IsFragment() bool { return e.Tag == TagFragment }

// IsText reports whether the node is a text node.
func (e *Element) IsText() bool { return e.Tag == TagText }

// Attributes

// SetAttribute sets an attribute value and notifies observers.
func (e *Element) SetAttribute(name, value string) {
	old, had := e.attrs[name]
	if !had {
		e.attrOrder = append(e.attrOrder, name)
	}
	e.attrs[name] = value
	if had && old == value {
		return
	}
	e.notify(name, old, value, false)
}

// GetAttribute returns an attribute value and whether it is present.
func (e *Element) GetAttribute(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// Attr returns an attribute value, or "" when absent.
func (e *Element) Attr(name string) string {
	return e.attrs[name]
}

// HasAttribute reports whether an attribute is present.
func (e *Element) HasAttribute(name string) bool {
	_, ok := e.attrs[name]
	return ok
}

// RemoveAttribute deletes an attribute and notifies observers.
func (e *Element) RemoveAttribute(name string) {
	old, had := e.attrs[name]
	if !had {
		return
	}
	delete(e.attrs, name)
	for i, n := range e.attrOrder {
		if n == name {
			e.attrOrder = append(e.attrOrder[:i], e.attrOrder[i+1:]...)
			break
		}
	}
	e.notify(name, old, "", true)
}

// ToggleAttribute adds an empty attribute when on, removes it otherwise.
func (e *Element) ToggleAttribute(name string, on bool) {
	if on {
		if !e.HasAttribute(name) {
			e.SetAttribute(name, "")
		}
		return
	}
	e.RemoveAttribute(name)
}

// AttributeNames returns attribute names in insertion order.
func (e *Element) AttributeNames() []string {
	out := make([]string, len(e.attrOrder))
	copy(out, e.attrOrder)
	return out
}

// ObserveAttributes registers an attribute change observer.
func (e *Element) ObserveAttributes(fn AttributeObserver) {
	e.observers = append(e.observers, fn)
}

func (e *Element) notify(name, old, value string, removed bool) {
	for _, fn := range e.observers {
		fn(name, old, value, removed)
	}
}

// Tree

// AppendChild appends child, detaching it from any previous parent.
// Appending a fragment moves the fragment's children instead.
func (e *Element) AppendChild(child *Element) *Element {
	if child.IsFragment() {
		for _, c := range child.ChildNodes() {
			e.AppendChild(c)
		}
		return child
	}
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = e
	e.children = append(e.children, child)
	return child
}

// RemoveChild detaches child. It returns false when child is not a child
// of e.
func (e *Element) RemoveChild(child *Element) bool {
	for i, c := range e.children {
		if c == child {
			e.children = append(e.children[:i], e.children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

// Remove detaches the element from its parent.
func (e *Element) Remove() {
	if e.parent != nil {
		e.parent.RemoveChild(e)
	}
}

// Children returns the element children, skipping text nodes.
func (e *Element) Children() []*Element {
	out := make([]*Element, 0, len(e.children))
	for _, c := range e.children {
		if !c.IsText() {
			out = append(out, c)
		}
	}
	return out
}

// ChildNodes returns a copy of the child list, text nodes included.
func (e *Element) ChildNodes() []*Element {
	out := make([]*Element, len(e.children))
	copy(out, e.children)
	return out
}

// ParentNode returns the parent, which may be a shadow root or fragment.
func (e *Element) ParentNode() *Element { return e.parent }

// ParentElement returns the parent when it is a regular element.
func (e *Element) ParentElement() *Element {
	if e.parent == nil || e.parent.IsShadowRoot() || e.parent.IsFragment() {
		return nil
	}
	return e.parent
}

// PreviousElementSibling returns the sibling before e, if any.
func (e *Element) PreviousElementSibling() *Element {
	if e.parent == nil {
		return nil
	}
	var prev *Element
	for _, c := range e.parent.children {
		if c == e {
			return prev
		}
		if !c.IsText() {
			prev = c
		}
	}
	return nil
}

// NextElementSibling returns the sibling after e, if any.
func (e *Element) NextElementSibling() *Element {
	if e.parent == nil {
		return nil
	}
	found := false
	for _, c := range e.parent.children {
		if found && !c.IsText() {
			return c
		}
		if c == e {
			found = true
		}
	}
	return nil
}

// Contains reports whether other is e or a light-tree descendant of e.
func (e *Element) Contains(other *Element) bool {
	for n := other; n != nil; n = n.parent {
		if n == e {
			return true
		}
	}
	return false
}

// Shadow DOM

// AttachShadow creates and returns the element's shadow root. Calling it
// again returns the existing root.
func (e *Element) AttachShadow() *Element {
	if e.shadow == nil {
		root := NewElement(TagShadowRoot)
		root.host = e
		e.shadow = root
	}
	return e.shadow
}

// ShadowRoot returns the attached shadow root, or nil.
func (e *Element) ShadowRoot() *Element { return e.shadow }

// Host returns the host element of a shadow root, or nil for other nodes.
func (e *Element) Host() *Element { return e.host }

// RootNode returns the topmost ancestor in e's own tree: a shadow root when
// e lives inside one, otherwise the top of the light tree.
func (e *Element) RootNode() *Element {
	n := e
	for n.parent != nil {
		n = n.parent
	}
	return n
}

// composedParent steps from a shadow root to its host.
func (e *Element) composedParent() *Element {
	if e.parent != nil {
		return e.parent
	}
	return e.host
}

// ComposedParentElement returns the nearest regular element above e,
// crossing shadow roots.
func (e *Element) ComposedParentElement() *Element {
	for n := e.composedParent(); n != nil; n = n.composedParent() {
		if !n.IsShadowRoot() && !n.IsFragment() {
			return n
		}
	}
	return nil
}

// Text

// TextContent returns the concatenated text of e and its descendants.
func (e *Element) TextContent() string {
	var b strings.Builder
	b.WriteString(e.Text)
	for _, c := range e.children {
		b.WriteString(c.TextContent())
	}
	return b.String()
}

// SetTextContent replaces all children with text.
func (e *Element) SetTextContent(text string) {
	for _, c := range e.children {
		c.parent = nil
	}
	e.children = nil
	e.Text = text
}

// Focus

// Focus makes e the active element of its composed tree and dispatches a
// focus event.
func (e *Element) Focus() {
	top := e
	for n := e.composedParent(); n != nil; n = n.composedParent() {
		top = n
	}
	top.active = e
	e.DispatchEvent(NewEvent(EventFocus, e))
}

// ActiveElement returns the focused element of e's composed tree.
func (e *Element) ActiveElement() *Element {
	top := e
	for n := e.composedParent(); n != nil; n = n.composedParent() {
		top = n
	}
	return top.active
}

// Events

// AddEventListener registers an element-level listener.
func (e *Element) AddEventListener(kind EventKind, h Handler) ListenerID {
	e.nextID++
	e.listeners = append(e.listeners, listener{id: e.nextID, kind: kind, handler: h})
	return e.nextID
}

// RemoveEventListener unregisters an element-level listener.
func (e *Element) RemoveEventListener(id ListenerID) bool {
	for i, l := range e.listeners {
		if l.id == id {
			e.listeners = append(e.listeners[:i], e.listeners[i+1:]...)
			return true
		}
	}
	return false
}

// DispatchEvent delivers ev to e and, for bubbling events, to each node on
// the composed path until propagation stops. It returns false when the
// default action was prevented.
func (e *Element) DispatchEvent(ev *Event) bool {
	if ev.Target == nil {
		ev.Target = e
	}
	for _, n := range ev.ComposedPath() {
		n.invoke(ev)
		if ev.propagationStopped || !ev.Bubbles {
			break
		}
	}
	return !ev.defaultPrevented
}

func (e *Element) invoke(ev *Event) {
	snapshot := make([]listener, len(e.listeners))
	copy(snapshot, e.listeners)
	ev.currentTarget = e
	for _, l := range snapshot {
		if l.kind == ev.Kind {
			l.handler(ev)
		}
	}
}

// CloneNode copies the element. Deep clones copy descendants. Listeners,
// observers and shadow roots are not copied.
func (e *Element) CloneNode(deep bool) *Element {
	c := NewElement(e.Tag)
	c.Text = e.Text
	c.Style = e.Style.clone()
	for k, v := range e.Computed {
		c.Computed[k] = v
	}
	for _, name := range e.attrOrder {
		c.attrs[name] = e.attrs[name]
		c.attrOrder = append(c.attrOrder, name)
	}
	c.box = e.box
	if deep {
		for _, child := range e.children {
			c.AppendChild(child.CloneNode(true))
		}
	}
	return c
}
