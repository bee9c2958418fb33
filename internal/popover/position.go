package popover

import (
	"strconv"

	"github.com/jmylchreest/uikit/internal/dom"
)

// room holds the four room predicates of one positioning pass.
type room struct {
	below, above, right, left bool
}

// UpdatePosition recomputes the panel and hover bridge geometry. It only
// writes style properties on the panel and the bridge. A hidden panel
// measures as zero-sized, so callers should display it (off-screen if
// needed) before relying on size-dependent branches.
func (p *Popover) UpdatePosition() {
	if p.destroyed {
		return
	}

	tr := p.trigger.BoundingClientRect()
	vp := p.window.Viewport()
	off := p.opts.Offset
	panelW := p.panel.OffsetWidth()
	panelH := p.panel.OffsetHeight()

	r := room{
		below: vp.H-tr.Bottom() >= panelH,
		above: tr.Top() >= panelH,
		right: vp.W-tr.Right()-off >= panelW,
		left:  tr.Left() >= panelW,
	}

	style := p.panel.Style
	sibling := p.previousSibling()

	switch p.opts.Placement {
	case PlacementTop:
		if p.keep(r.above, r.below) {
			style.SetPx("top", -p.panel.OffsetHeight())
		} else {
			style.SetPx("top", tr.H)
		}

	case PlacementRight:
		style.SetPx("top", 0)
		if p.keep(r.right, r.left) {
			style.SetPx("left", tr.W+off)
		} else {
			style.SetPx("left", -(p.panel.OffsetWidth() + off))
		}

	case PlacementBottom:
		p.placeBelow(r, tr.H)

	case PlacementBottomEnd:
		if p.opts.PopoverWidth == WidthIncludePreviousSibling && sibling != nil {
			siblingW := sibling.OffsetWidth() + p.separatedGap()
			style.SetPx("width", tr.W+siblingW)
			style.SetPx("left", -siblingW)
		}
		p.placeBelow(r, tr.H)

		bw := p.panel.OffsetWidth()
		p.clipPercent = percentOf(tr.W, bw)
		p.bridge.Style.SetPx("width", bw)
		p.bridge.Style.SetPx("height", off)
		p.bridge.Style.SetPx("top", -off)
		p.bridge.Style.Set("left", style.Get("left"))
		p.bridge.Style.Set("clip-path",
			"polygon(0 0, 100% 0, 100% 100%, "+formatPercent(p.clipPercent)+" 100%)")

	case PlacementLeft:
		style.SetPx("top", 0)
		if p.keep(r.left, r.right) {
			style.SetPx("right", tr.W+off)
		} else {
			style.SetPx("right", -(p.panel.OffsetWidth() + off))
		}

		bh := p.panel.OffsetHeight()
		p.clipPercent = percentOf(tr.H, bh)
		p.bridge.Style.SetPx("width", off)
		p.bridge.Style.SetPx("height", bh)
		p.bridge.Style.SetPx("top", p.panel.OffsetTop())
		p.bridge.Style.SetPx("left", p.panel.OffsetLeft()+p.panel.OffsetWidth())
		p.bridge.Style.Set("clip-path",
			"polygon(0 0, 100% 0, 100% "+formatPercent(p.clipPercent)+", 0 100%)")

	default:
		p.logger.Debug("popover: unknown placement, position unchanged", "placement", p.opts.Placement)
	}

	switch p.opts.PopoverWidth {
	case WidthTrigger:
		style.SetPx("width", tr.W)
	case WidthIncludePreviousSibling:
		if sibling != nil && p.opts.Placement != PlacementBottomEnd {
			style.SetPx("width", tr.W+sibling.OffsetWidth())
		}
	}
}

// placeBelow applies the shared vertical rule of bottom and bottom-end.
func (p *Popover) placeBelow(r room, triggerH float64) {
	if p.keep(r.below, r.above) {
		p.panel.Style.SetPx("top", triggerH+p.opts.Offset)
		return
	}
	p.panel.Style.SetPx("top", -(p.panel.OffsetHeight() + p.opts.Offset))
}

// keep reports whether the preferred side is used. With Flip the panel
// falls back only when the preferred side lacks room and the opposite side
// has it; without Flip the preferred side always wins.
func (p *Popover) keep(preferred, opposite bool) bool {
	if !p.opts.Flip {
		return true
	}
	return preferred || !opposite
}

// previousSibling returns the element before the panel's shadow host.
func (p *Popover) previousSibling() *dom.Element {
	host := p.panel.RootNode().Host()
	if host == nil {
		return nil
	}
	return host.PreviousElementSibling()
}

// separatedGap returns the gap of a host parent marked "separated".
func (p *Popover) separatedGap() float64 {
	host := p.panel.RootNode().Host()
	if host == nil {
		return 0
	}
	parent := host.ParentElement()
	if parent == nil || !parent.HasAttribute("separated") {
		return 0
	}
	gap, ok := dom.ParsePx(parent.Computed["gap"])
	if !ok {
		return 0
	}
	return gap
}

// percentOf returns part/whole in percent, or 0 for an empty whole.
func percentOf(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	return part / whole * 100
}

func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}
