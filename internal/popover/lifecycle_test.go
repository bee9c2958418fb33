package popover

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/uikit/internal/dom"
	"github.com/jmylchreest/uikit/internal/geom"
)

func defaultFixture() *fixture {
	return newFixture(geom.Size{W: 200, H: 100}, geom.NewRect(10, 10, 30, 20), geom.Size{W: 60, H: 50})
}

func windowListeners(w *dom.Window) int {
	return w.ListenerCount(dom.EventScroll) + w.ListenerCount(dom.EventResize) + w.ListenerCount(dom.EventClick)
}

func TestIsOpen_Lifecycle(t *testing.T) {
	f := defaultFixture()
	p := f.popover()

	assert.False(t, p.IsOpen(), "closed after construction")
	p.Show()
	assert.True(t, p.IsOpen())
	assert.Equal(t, dom.DisplayBlock, f.panel.Style.Get("display"))
	p.Hide()
	assert.False(t, p.IsOpen())
	assert.Equal(t, dom.DisplayNone, f.panel.Style.Get("display"))

	p.Toggle(nil)
	assert.True(t, p.IsOpen())
	p.Toggle(nil)
	assert.False(t, p.IsOpen())
}

func TestShow_SubscribesOnce(t *testing.T) {
	f := defaultFixture()
	p := f.popover()

	p.Show()
	p.Show()

	assert.Equal(t, 1, f.win.ListenerCount(dom.EventScroll))
	assert.Equal(t, 1, f.win.ListenerCount(dom.EventResize))
	assert.Equal(t, 1, f.win.ListenerCount(dom.EventClick))
	assert.Equal(t, State{Open: true, Subscriptions: 3}, p.State())
}

func TestShow_WithoutAutoUpdate(t *testing.T) {
	f := defaultFixture()
	p := f.popover(WithAutoUpdate(false))

	p.Show()
	assert.True(t, p.IsOpen())
	assert.Zero(t, windowListeners(f.win))

	f.win.Dispatch(dom.NewBubblingEvent(dom.EventClick, f.body))
	assert.True(t, p.IsOpen(), "no outside-click tracking without auto update")
}

func TestAutoUpdate_RepositionsOnViewportEvents(t *testing.T) {
	f := defaultFixture()
	p := f.popover(WithPlacement(PlacementBottom))
	p.Show()
	assert.Equal(t, 20.0, px(t, f.panel.Style, "top"))

	f.trigger.SetBox(geom.NewRect(10, 70, 30, 20))
	f.win.Dispatch(dom.NewEvent(dom.EventScroll, nil))
	assert.Equal(t, -50.0, px(t, f.panel.Style, "top"))

	f.trigger.SetBox(geom.NewRect(10, 10, 30, 20))
	f.win.Resize(200, 100)
	assert.Equal(t, 20.0, px(t, f.panel.Style, "top"))
}

func TestHide_DetachesListeners(t *testing.T) {
	f := defaultFixture()
	p := f.popover(WithPlacement(PlacementBottom))
	p.Show()
	p.Hide()

	assert.Zero(t, windowListeners(f.win))
	before := f.panel.Style.String()
	bridgeBefore := p.Bridge().Style.String()

	f.trigger.SetBox(geom.NewRect(10, 70, 30, 20))
	f.win.Dispatch(dom.NewEvent(dom.EventScroll, nil))
	f.win.Resize(300, 300)
	f.win.Dispatch(dom.NewBubblingEvent(dom.EventClick, f.body))

	assert.Equal(t, before, f.panel.Style.String())
	assert.Equal(t, bridgeBefore, p.Bridge().Style.String())
}

func TestHide_WhenClosedIsHarmless(t *testing.T) {
	f := defaultFixture()
	p := f.popover()

	require.NotPanics(t, p.Hide)
	require.NotPanics(t, p.Hide)
	assert.False(t, p.IsOpen())
	assert.Zero(t, windowListeners(f.win))
}

func TestOutsideClick(t *testing.T) {
	tests := []struct {
		name     string
		target   func(f *fixture) *dom.Element
		wantOpen bool
	}{
		{"outside_closes", func(f *fixture) *dom.Element { return f.body.AppendChild(dom.NewElement("p")) }, false},
		{"body_closes", func(f *fixture) *dom.Element { return f.body }, false},
		{"trigger_container_stays", func(f *fixture) *dom.Element { return f.trigger }, true},
		{"panel_stays", func(f *fixture) *dom.Element { return f.panel }, true},
		{"inside_panel_stays", func(f *fixture) *dom.Element { return f.panel.AppendChild(dom.NewElement("a")) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := defaultFixture()
			p := f.popover()
			p.Show()

			f.win.Dispatch(dom.NewBubblingEvent(dom.EventClick, tt.target(f)))
			assert.Equal(t, tt.wantOpen, p.IsOpen())
			if !tt.wantOpen {
				assert.Zero(t, windowListeners(f.win))
			}
		})
	}
}

func TestOutsideClick_CrossesShadowBoundary(t *testing.T) {
	f, _ := groupFixture(false)
	item := f.panel.AppendChild(dom.NewElement("ui-button"))
	itemShadow := item.AttachShadow()
	inner := itemShadow.AppendChild(dom.NewElement("button"))

	p := f.popover()
	p.Show()

	f.win.Dispatch(dom.NewBubblingEvent(dom.EventClick, inner))
	assert.True(t, p.IsOpen(), "clicks inside nested shadow trees are inside the panel")
}

func TestToggle_StopsEventReachingOutsideHandler(t *testing.T) {
	f := defaultFixture()
	button := f.body.AppendChild(dom.NewElement("ui-button"))
	p := f.popover()
	button.AddEventListener(dom.EventClick, p.Toggle)

	ev := dom.NewBubblingEvent(dom.EventClick, button)
	f.win.Dispatch(ev)
	assert.True(t, p.IsOpen(), "opening click must not close the panel again")
	assert.True(t, ev.DefaultPrevented())
	assert.True(t, ev.PropagationStopped())

	f.win.Dispatch(dom.NewBubblingEvent(dom.EventClick, button))
	assert.False(t, p.IsOpen())
	assert.Zero(t, windowListeners(f.win))
}

func TestDestroy(t *testing.T) {
	f := defaultFixture()
	p := f.popover()
	p.Show()

	p.Destroy()
	assert.False(t, p.IsOpen())
	assert.Zero(t, windowListeners(f.win))
	assert.NotContains(t, f.trigger.Children(), p.Bridge())
	assert.True(t, p.State().Destroyed)

	p.Show()
	p.Toggle(nil)
	p.UpdatePosition()
	p.Destroy()
	assert.False(t, p.IsOpen())
	assert.Zero(t, windowListeners(f.win))
}

func TestInstancesAreIndependent(t *testing.T) {
	f := defaultFixture()
	other := dom.NewElement("div")
	f.body.AppendChild(other)
	otherPanel := other.AppendChild(dom.NewElement("div"))

	a := f.popover()
	b := New(other, otherPanel, f.win)
	a.Show()
	b.Show()
	assert.Equal(t, 2, f.win.ListenerCount(dom.EventClick))

	a.Hide()
	assert.Equal(t, 1, f.win.ListenerCount(dom.EventClick))
	assert.True(t, b.IsOpen())
}
