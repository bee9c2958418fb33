package tui

import (
	"fmt"
	"log/slog"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jmylchreest/uikit/internal/components"
	"github.com/jmylchreest/uikit/internal/dom"
	"github.com/jmylchreest/uikit/internal/geom"
	"github.com/jmylchreest/uikit/internal/popover"
)

// Scene layout, in cells.
const (
	marginX    = 2
	groupRow   = 8
	formRow    = 12
	maxScroll  = 20
	menuOffset = 3
)

// MenuItems are the entries of the playground dropdown.
var MenuItems = []string{"Duplicate", "Archive", "Move to…", "Delete"}

// Sizes are the radio values and labels of the playground form.
var Sizes = [][2]string{{"s", "Small"}, {"m", "Medium"}, {"l", "Large"}}

// Scene is the element tree hosted by the playground: a button group
// holding a button and a dropdown, and a form with a required radio group.
// Cell coordinates are used as pixels.
type Scene struct {
	kit    *components.Kit
	window *dom.Window
	logger *slog.Logger

	Root     *dom.Element
	Group    *components.ButtonGroup
	Save     *components.Button
	Dropdown *components.Dropdown
	Items    []*dom.Element

	FormHost *dom.Element
	Form     *components.Form
	Sizes    *components.RadioGroup
	Submit   *components.Button
	Reset    *components.Button

	scrollY float64
	status  string
}

// NewScene builds the element tree with kit. The kit's window is the
// scene's viewport.
func NewScene(kit *components.Kit) (*Scene, error) {
	s := &Scene{
		kit:    kit,
		window: kit.Window,
		logger: kit.Logger,
		Root:   dom.NewElement("body"),
	}

	var err error
	if s.Group, err = kit.ButtonGroup(false); err != nil {
		return nil, fmt.Errorf("failed to create button group: %w", err)
	}
	if s.Save, err = kit.Button("Save", "primary"); err != nil {
		return nil, fmt.Errorf("failed to create button: %w", err)
	}
	if s.Dropdown, err = kit.Dropdown("Options"); err != nil {
		return nil, fmt.Errorf("failed to create dropdown: %w", err)
	}
	s.Group.Add(s.Save.Host, s.Dropdown.Host)

	s.Save.Host.AddEventListener(dom.EventUIClick, func(*dom.Event) {
		s.status = "ui-click: Save"
	})

	for _, label := range MenuItems {
		item := dom.NewElement("div")
		item.SetAttribute("role", "menuitem")
		item.SetTextContent(label)
		item.AddEventListener(dom.EventClick, func(*dom.Event) {
			s.status = "menu: " + label
			s.Dropdown.Hide()
		})
		s.Dropdown.AddItem(item)
		s.Items = append(s.Items, item)
	}

	if err := s.buildForm(); err != nil {
		return nil, err
	}

	s.Root.AppendChild(s.Group.Host)
	s.Root.AppendChild(s.FormHost)

	vp := s.window.Viewport()
	s.Root.SetBox(geom.NewRect(0, 0, vp.W, vp.H))
	s.Layout()
	return s, nil
}

func (s *Scene) buildForm() error {
	s.FormHost = dom.NewElement("form")
	s.Form = components.NewForm(s.FormHost, s.logger)
	s.Form.OnSubmit = func(values map[string]string) {
		s.status = "submitted: " + formatValues(values)
	}
	s.FormHost.AddEventListener(dom.EventReset, func(*dom.Event) {
		s.status = "form reset"
	})

	var err error
	if s.Sizes, err = s.kit.RadioGroup("size", "Size"); err != nil {
		return fmt.Errorf("failed to create radio group: %w", err)
	}
	s.Sizes.SetBool("required", true)
	for _, size := range Sizes {
		r, err := s.kit.Radio(size[0], size[1])
		if err != nil {
			return fmt.Errorf("failed to create radio %s: %w", size[0], err)
		}
		s.Sizes.Add(r)
	}

	if s.Submit, err = s.kit.Button("Submit", "primary"); err != nil {
		return fmt.Errorf("failed to create submit button: %w", err)
	}
	s.Submit.Host.SetAttribute("type", components.ButtonTypeSubmit)
	s.Submit.SetForm(s.Form)

	if s.Reset, err = s.kit.Button("Reset", ""); err != nil {
		return fmt.Errorf("failed to create reset button: %w", err)
	}
	s.Reset.Host.SetAttribute("type", components.ButtonTypeReset)
	s.Reset.SetForm(s.Form)

	s.Form.Add(s.Sizes)
	s.FormHost.AppendChild(s.Sizes.Host)
	s.FormHost.AppendChild(s.Submit.Host)
	s.FormHost.AppendChild(s.Reset.Host)
	return nil
}

// Status returns the last thing that happened in the scene.
func (s *Scene) Status() string { return s.status }

// ScrollY returns the current scroll offset.
func (s *Scene) ScrollY() float64 { return s.scrollY }

// Layout assigns boxes to every element from the current scroll offset.
func (s *Scene) Layout() {
	y := groupRow - s.scrollY
	x := float64(marginX)

	gap := 0.0
	if s.Group.Separated() {
		gap, _ = dom.ParsePx(s.Group.Host.Computed["gap"])
	}

	saveW := buttonWidth(s.Save.Host)
	s.Save.Host.SetBox(geom.NewRect(x, y, saveW, 1))
	x += saveW + gap

	trigger := geom.NewRect(x, y, triggerWidth(s.Dropdown.Trigger().Host), 1)
	s.Dropdown.Host.SetBox(trigger)
	s.Dropdown.TriggerContainer().SetBox(trigger)
	s.Dropdown.Trigger().Host.SetBox(trigger)
	s.Group.Host.SetBox(geom.NewRect(marginX, y, trigger.Right()-marginX, 1))

	// Static position of the absolutely positioned panel.
	panelW := 0
	for _, item := range s.Items {
		panelW = max(panelW, lipgloss.Width(item.TextContent())+2)
	}
	s.Dropdown.Panel().SetBox(geom.NewRect(trigger.X, trigger.Bottom(), float64(panelW), float64(len(s.Items))))
	s.layoutItems()

	// Form: label row, one row per radio, error row, buttons row.
	y = formRow - s.scrollY
	radios := s.Sizes.Radios()
	groupW := 0.0
	for i, r := range radios {
		w := float64(lipgloss.Width(r.TextContent()) + 4)
		groupW = max(groupW, w)
		r.SetBox(geom.NewRect(marginX, y+1+float64(i), w, 1))
	}
	s.Sizes.Host.SetBox(geom.NewRect(marginX, y, max(groupW, 24), float64(len(radios)+2)))

	row := y + float64(len(radios)) + 3
	submitW := buttonWidth(s.Submit.Host)
	s.Submit.Host.SetBox(geom.NewRect(marginX, row, submitW, 1))
	s.Reset.Host.SetBox(geom.NewRect(marginX+submitW+1, row, buttonWidth(s.Reset.Host), 1))
	s.FormHost.SetBox(geom.NewRect(marginX, y, max(groupW, 24), row-y+1))
}

// layoutItems stacks the menu items inside the panel's current rectangle.
func (s *Scene) layoutItems() {
	r := s.Dropdown.Panel().BoundingClientRect()
	for i, item := range s.Items {
		item.SetBox(geom.NewRect(r.X, r.Y+float64(i), r.W, 1))
	}
}

// refresh re-runs layout and repositions an open panel.
func (s *Scene) refresh() {
	s.Layout()
	if s.Dropdown.IsOpen() {
		s.Dropdown.Popover().UpdatePosition()
	}
	s.layoutItems()
}

// Click dispatches a click at (x, y) to the element under the pointer,
// or to the root when nothing is hit, and then to the window.
func (s *Scene) Click(x, y float64) *dom.Element {
	target := dom.HitTest(s.Root, x, y)
	if target == nil {
		target = s.Root
	}
	ev := dom.NewBubblingEvent(dom.EventClick, target)
	ev.X, ev.Y = x, y
	s.logger.Debug("click", "x", x, "y", y, "target", target.Tag)
	s.window.Dispatch(ev)
	s.layoutItems()
	return target
}

// ClickElement clicks the centre of el.
func (s *Scene) ClickElement(el *dom.Element) *dom.Element {
	r := el.BoundingClientRect()
	return s.Click(math.Floor(r.X+r.W/2), math.Floor(r.Y+r.H/2))
}

// Scroll shifts the content by delta rows and dispatches scroll.
func (s *Scene) Scroll(delta float64) {
	next := min(max(s.scrollY+delta, 0), maxScroll)
	if next == s.scrollY {
		return
	}
	s.scrollY = next
	s.Layout()
	s.window.Dispatch(dom.NewEvent(dom.EventScroll, nil))
	s.layoutItems()
}

// Resize changes the viewport and dispatches resize.
func (s *Scene) Resize(width, height float64) {
	s.Root.SetBox(geom.NewRect(0, 0, width, height))
	s.window.Resize(width, height)
	s.layoutItems()
}

// ToggleMenu clicks the dropdown trigger.
func (s *Scene) ToggleMenu() {
	s.ClickElement(s.Dropdown.Trigger().Host)
}

// CyclePlacement moves the dropdown to the next placement.
func (s *Scene) CyclePlacement() popover.Placement {
	placements := popover.ValidPlacements()
	next := placements[(slices.Index(placements, s.Dropdown.Options().Placement)+1)%len(placements)]
	s.clearPanelPosition()
	s.Dropdown.Host.SetAttribute("placement", string(next))
	s.layoutItems()
	s.status = "placement: " + string(next)
	return next
}

// CycleWidth moves the dropdown to the next width mode.
func (s *Scene) CycleWidth() popover.WidthMode {
	modes := popover.ValidWidthModes()
	next := modes[(slices.Index(modes, s.Dropdown.Options().PopoverWidth)+1)%len(modes)]
	s.Dropdown.Panel().Style.Remove("width")
	s.Dropdown.Host.SetAttribute("popover-width", string(next))
	s.layoutItems()
	s.status = "width: " + string(next)
	return next
}

// ToggleFlip toggles the dropdown's flip option.
func (s *Scene) ToggleFlip() bool {
	flip := !s.Dropdown.Options().Flip
	s.Dropdown.Host.SetAttribute("flip", strconv.FormatBool(flip))
	s.layoutItems()
	s.status = "flip: " + strconv.FormatBool(flip)
	return flip
}

// CycleOffset steps the dropdown offset through 0, 1 and 2.
func (s *Scene) CycleOffset() float64 {
	next := math.Mod(s.Dropdown.Options().Offset+1, menuOffset)
	s.clearPanelPosition()
	s.Dropdown.Host.SetAttribute("offset", strconv.FormatFloat(next, 'f', -1, 64))
	s.layoutItems()
	s.status = "offset: " + strconv.FormatFloat(next, 'f', -1, 64)
	return next
}

// ToggleSeparated toggles the gap between the group's members.
func (s *Scene) ToggleSeparated() bool {
	on := !s.Group.Separated()
	s.Group.SetSeparated(on)
	s.refresh()
	s.status = "separated: " + strconv.FormatBool(on)
	return on
}

// MoveSelection sends an arrow key to the radio holding the tab stop.
func (s *Scene) MoveSelection(key string) {
	target := s.Sizes.Host.QuerySelector(s.kit.Tag("radio") + `[tabindex="0"]`)
	if target == nil {
		return
	}
	ev := dom.NewBubblingEvent(dom.EventKeydown, target)
	ev.Key = key
	target.DispatchEvent(ev)
	if s.sizeError() != "" {
		s.Sizes.UpdateValidity()
	}
	if v := s.Sizes.Value(); v != "" {
		s.status = "size: " + v
	}
}

// sizeError returns the error text shown by the radio group.
func (s *Scene) sizeError() string {
	if slot := s.Sizes.Refs.Slot("error"); slot != nil {
		return slot.TextContent()
	}
	return ""
}

// Close releases the dropdown's subscriptions.
func (s *Scene) Close() {
	s.Dropdown.Close()
}

// clearPanelPosition drops inline offsets so that a new placement starts
// from the static position.
func (s *Scene) clearPanelPosition() {
	for _, prop := range []string{"top", "left", "right"} {
		s.Dropdown.Panel().Style.Remove(prop)
	}
}

func buttonWidth(host *dom.Element) float64 {
	return float64(lipgloss.Width(host.TextContent()) + 4)
}

func triggerWidth(host *dom.Element) float64 {
	return buttonWidth(host) + 2
}

func formatValues(values map[string]string) string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + values[k]
	}
	return strings.Join(parts, " ")
}
