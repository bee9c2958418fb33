package dom

import "github.com/jmylchreest/uikit/internal/geom"

// SetBox assigns the element's laid-out box in viewport coordinates.
// Hosts call this after measuring; elements positioned through inline
// top/left/right styles derive their box from their container instead.
func (e *Element) SetBox(r geom.Rect) { e.box = r }

// Box returns the box assigned by the host.
func (e *Element) Box() geom.Rect { return e.box }

// Hidden reports whether e or any composed ancestor has display:none.
func (e *Element) Hidden() bool {
	for n := e; n != nil; n = n.composedParent() {
		if n.Style.Get("display") == DisplayNone {
			return true
		}
	}
	return false
}

func (e *Element) positioned() bool {
	return e.Style.Has("top") || e.Style.Has("left") || e.Style.Has("right")
}

// OffsetWidth returns the rendered width: 0 when hidden, the inline width
// when set, otherwise the host-assigned box width.
func (e *Element) OffsetWidth() float64 {
	if e.Hidden() {
		return 0
	}
	if w, ok := e.Style.Px("width"); ok {
		return w
	}
	return e.box.W
}

// OffsetHeight returns the rendered height, with the same rules as
// OffsetWidth.
func (e *Element) OffsetHeight() float64 {
	if e.Hidden() {
		return 0
	}
	if h, ok := e.Style.Px("height"); ok {
		return h
	}
	return e.box.H
}

// OffsetTop returns the top offset relative to the containing element.
func (e *Element) OffsetTop() float64 {
	if e.Hidden() {
		return 0
	}
	if top, ok := e.Style.Px("top"); ok {
		return top
	}
	if cb := e.ComposedParentElement(); cb != nil {
		return e.box.Y - cb.BoundingClientRect().Y
	}
	return e.box.Y
}

// OffsetLeft returns the left offset relative to the containing element.
// A right-anchored element resolves against the container's width.
func (e *Element) OffsetLeft() float64 {
	if e.Hidden() {
		return 0
	}
	if left, ok := e.Style.Px("left"); ok {
		return left
	}
	cb := e.ComposedParentElement()
	if right, ok := e.Style.Px("right"); ok && cb != nil {
		return cb.BoundingClientRect().W - right - e.OffsetWidth()
	}
	if cb != nil {
		return e.box.X - cb.BoundingClientRect().X
	}
	return e.box.X
}

// BoundingClientRect returns the element's box in viewport coordinates.
// Hidden elements report a zero rectangle.
func (e *Element) BoundingClientRect() geom.Rect {
	if e.Hidden() {
		return geom.Rect{}
	}
	if !e.positioned() {
		r := e.box
		r.W = e.OffsetWidth()
		r.H = e.OffsetHeight()
		return r
	}
	var origin geom.Rect
	if cb := e.ComposedParentElement(); cb != nil {
		origin = cb.BoundingClientRect()
	}
	return geom.Rect{
		X: origin.X + e.OffsetLeft(),
		Y: origin.Y + e.OffsetTop(),
		W: e.OffsetWidth(),
		H: e.OffsetHeight(),
	}
}

// HitTest returns the deepest visible element under (x, y), searching
// shadow trees before light children and later siblings before earlier
// ones. It returns nil when nothing is hit.
func HitTest(root *Element, x, y float64) *Element {
	if root == nil || root.Hidden() {
		return nil
	}
	if sr := root.shadow; sr != nil {
		if hit := hitChildren(sr, x, y); hit != nil {
			return hit
		}
	}
	if hit := hitChildren(root, x, y); hit != nil {
		return hit
	}
	if root.IsShadowRoot() || root.IsFragment() {
		return nil
	}
	if root.BoundingClientRect().Contains(x, y) {
		return root
	}
	return nil
}

func hitChildren(parent *Element, x, y float64) *Element {
	for i := len(parent.children) - 1; i >= 0; i-- {
		if parent.children[i].IsText() {
			continue
		}
		if hit := HitTest(parent.children[i], x, y); hit != nil {
			return hit
		}
	}
	return nil
}
