// Package geom provides the rectangle and size types shared by the element
// tree and the positioning engine.
package geom

// Size is a width/height pair.
type Size struct {
	W, H float64
}

// Rect is an axis-aligned box. X, Y is the top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect creates a rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() float64 { return r.Y }

// Left returns the x-coordinate of the left edge.
func (r Rect) Left() float64 { return r.X }

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Size returns the dimensions of the rectangle.
func (r Rect) Size() Size { return Size{W: r.W, H: r.H} }

// Contains reports whether the point (x, y) lies inside the rectangle.
// The right and bottom edges are exclusive.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Translate returns the rectangle moved by dx, dy.
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}
