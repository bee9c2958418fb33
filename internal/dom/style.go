package dom

import (
	"strconv"
	"strings"
)

// Display values used by the toolkit.
const (
	DisplayBlock = "block"
	DisplayNone  = "none"
)

// Style is an element's inline style declaration. Property order is kept
// so String renders deterministically.
type Style struct {
	props map[string]string
	order []string
}

// NewStyle returns an empty style declaration.
func NewStyle() *Style {
	return &Style{props: make(map[string]string)}
}

// Set assigns a property. An empty value removes it.
func (s *Style) Set(prop, value string) {
	if value == "" {
		s.Remove(prop)
		return
	}
	if _, ok := s.props[prop]; !ok {
		s.order = append(s.order, prop)
	}
	s.props[prop] = value
}

// Get returns a property value, or "" when unset.
func (s *Style) Get(prop string) string {
	return s.props[prop]
}

// Has reports whether a property is set.
func (s *Style) Has(prop string) bool {
	_, ok := s.props[prop]
	return ok
}

// Remove deletes a property.
func (s *Style) Remove(prop string) {
	if _, ok := s.props[prop]; !ok {
		return
	}
	delete(s.props, prop)
	for i, p := range s.order {
		if p == prop {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// SetPx assigns a pixel length such as "12px" or "-4.5px".
func (s *Style) SetPx(prop string, v float64) {
	s.Set(prop, FormatPx(v))
}

// Px returns a pixel length property as a number.
func (s *Style) Px(prop string) (float64, bool) {
	v, ok := s.props[prop]
	if !ok {
		return 0, false
	}
	return ParsePx(v)
}

// Properties returns the set property names in assignment order.
func (s *Style) Properties() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// String renders the declaration as CSS text.
func (s *Style) String() string {
	var b strings.Builder
	for i, p := range s.order {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(p)
		b.WriteString(": ")
		b.WriteString(s.props[p])
		b.WriteString(";")
	}
	return b.String()
}

func (s *Style) clone() *Style {
	c := NewStyle()
	for _, p := range s.order {
		c.Set(p, s.props[p])
	}
	return c
}

// FormatPx formats a number as a CSS pixel length.
func FormatPx(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}

// ParsePx parses a CSS pixel length ("12px", "12", " -3.5px ").
func ParsePx(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "px")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
