package tui

import (
	"github.com/jmylchreest/uikit/internal/components"
	"github.com/jmylchreest/uikit/internal/dom"
)

// Paint draws the scene onto c. Open panels are painted last.
func (s *Scene) Paint(c *Canvas) {
	groupY := s.Group.Host.BoundingClientRect().Y
	c.Text(marginX, groupY-2, "Button group", ClassMuted)
	paintButton(c, s.Save, "")
	paintButton(c, s.Dropdown.Trigger(), " ▾")

	g := s.Sizes.Host.BoundingClientRect()
	label := s.Sizes.String("label")
	if s.Sizes.Bool("required") {
		label += " *"
	}
	c.Text(g.X, g.Y, label, ClassMuted)
	for _, r := range s.Sizes.Radios() {
		paintRadio(c, r)
	}
	if msg := s.sizeError(); msg != "" {
		c.Text(g.X, g.Bottom()-1, msg, ClassError)
	}
	paintButton(c, s.Submit, "")
	paintButton(c, s.Reset, "")

	if s.Dropdown.IsOpen() {
		c.Fill(s.Dropdown.Panel().BoundingClientRect(), ClassPanel)
		for _, item := range s.Items {
			r := item.BoundingClientRect()
			c.Text(r.X+1, r.Y, item.TextContent(), ClassPanel)
		}
	}
}

func paintButton(c *Canvas, b *components.Button, suffix string) {
	r := b.Host.BoundingClientRect()
	text := b.Host.TextContent()
	if b.Loading() {
		text = "…"
	}

	class := ClassButton
	switch {
	case b.Disabled():
		class = ClassDisabled
	case b.String("variant") == "primary":
		class = ClassPrimary
	}
	c.Fill(r, class)
	c.Text(r.X, r.Y, "[ "+text+suffix+" ]", class)
}

func paintRadio(c *Canvas, host *dom.Element) {
	r := host.BoundingClientRect()
	mark, class := "( ) ", ClassText
	if host.HasAttribute("checked") {
		mark, class = "(•) ", ClassSelected
	}
	if host.Attr("aria-invalid") == "true" {
		class = ClassError
	}
	c.Text(r.X, r.Y, mark+host.TextContent(), class)
}
