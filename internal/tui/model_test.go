package tui

import (
	"slices"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/uikit/internal/components"
	"github.com/jmylchreest/uikit/internal/config"
	"github.com/jmylchreest/uikit/internal/dom"
	"github.com/jmylchreest/uikit/internal/style"
)

func newModel(t *testing.T) (Model, *style.Document, *dom.Window) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	window := dom.NewWindow(80, 24, nil)
	document := style.NewDocument(style.NewCache(16, nil))
	kit := components.NewKit("ui", window, document, nil)
	scene, err := NewScene(kit)
	require.NoError(t, err)
	t.Cleanup(scene.Close)

	theme, err := style.LoadTheme("default", "")
	require.NoError(t, err)
	document.AddGlobal(theme.CSS)

	m := New(config.DefaultConfig(), scene, document, theme, nil)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(Model), document, window
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_WindowSize(t *testing.T) {
	m, _, window := newModel(t)

	assert.True(t, m.ready)
	assert.Equal(t, 80.0, window.Viewport().W)
	assert.Equal(t, float64(m.canvasHeight()), window.Viewport().H)
	assert.Less(t, m.canvasHeight(), 24)
}

func TestModel_KeyTogglesMenu(t *testing.T) {
	m, _, _ := newModel(t)

	updated, _ := m.Update(runes("o"))
	m = updated.(Model)
	assert.True(t, m.Scene().Dropdown.IsOpen())

	updated, _ = m.Update(runes("o"))
	m = updated.(Model)
	assert.False(t, m.Scene().Dropdown.IsOpen())
}

func TestModel_MouseClick(t *testing.T) {
	m, _, _ := newModel(t)

	// The canvas starts one row below the header.
	updated, _ := m.Update(tea.MouseMsg{X: 16, Y: 9, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = updated.(Model)
	assert.True(t, m.Scene().Dropdown.IsOpen())

	updated, _ = m.Update(tea.MouseMsg{X: 70, Y: 15, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = updated.(Model)
	assert.False(t, m.Scene().Dropdown.IsOpen())

	// Releases are ignored.
	updated, _ = m.Update(tea.MouseMsg{X: 16, Y: 9, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m = updated.(Model)
	assert.False(t, m.Scene().Dropdown.IsOpen())
}

func TestModel_MouseDisabled(t *testing.T) {
	m, _, _ := newModel(t)
	m.cfg.TUI.Mouse = false

	updated, _ := m.Update(tea.MouseMsg{X: 16, Y: 9, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = updated.(Model)
	assert.False(t, m.Scene().Dropdown.IsOpen())
}

func TestModel_Wheel(t *testing.T) {
	m, _, _ := newModel(t)

	updated, _ := m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	m = updated.(Model)
	assert.Equal(t, 1.0, m.Scene().ScrollY())

	updated, _ = m.Update(runes("k"))
	m = updated.(Model)
	assert.Equal(t, 0.0, m.Scene().ScrollY())
}

func TestModel_HelpResizesCanvas(t *testing.T) {
	m, _, window := newModel(t)
	before := window.Viewport().H

	updated, _ := m.Update(runes("?"))
	m = updated.(Model)
	assert.True(t, m.help.ShowAll)
	assert.Less(t, window.Viewport().H, before)
}

func TestModel_NextTheme(t *testing.T) {
	m, document, _ := newModel(t)
	before := document.AdoptedStyleSheets()
	themeIndex := slices.IndexFunc(before, func(s *style.Sheet) bool { return s.Hash == m.sheet })
	require.GreaterOrEqual(t, themeIndex, 0)

	updated, cmd := m.Update(runes("t"))
	m = updated.(Model)
	require.NotNil(t, cmd)
	assert.Equal(t, "contrast", m.theme.Name)

	sheets := document.AdoptedStyleSheets()
	require.Len(t, sheets, len(before))
	assert.Equal(t, style.Hash(m.theme.CSS), sheets[themeIndex].Hash)
	assert.Equal(t, sheets[themeIndex].Hash, m.sheet)

	msg := cmd()
	assert.Equal(t, statusMsg{text: "theme: contrast"}, msg)
}

func TestModel_ThemeChanged(t *testing.T) {
	m, _, _ := newModel(t)
	css := ":root { --ui-color-primary-500: #ff0000; }"

	updated, cmd := m.Update(themeChangedMsg{name: "mine", css: css})
	m = updated.(Model)
	assert.Equal(t, style.Hash(css), m.sheet)
	require.NotNil(t, cmd)
	assert.Equal(t, statusMsg{text: "theme reloaded: mine"}, cmd())
}

func TestModel_Status(t *testing.T) {
	m, _, _ := newModel(t)

	updated, cmd := m.Update(statusMsg{text: "boom", isErr: true})
	m = updated.(Model)
	assert.NotNil(t, cmd)
	assert.Contains(t, m.View(), "boom")

	updated, _ = m.Update(clearStatusMsg{})
	m = updated.(Model)
	assert.Empty(t, m.statusMsg)
}

func TestModel_View(t *testing.T) {
	m, _, _ := newModel(t)

	view := m.View()
	assert.Contains(t, view, "uikit playground")
	assert.Contains(t, view, "placement=bottom")
	assert.Contains(t, view, "theme=default")
	assert.Contains(t, view, "[ Save ]")

	updated, _ := m.Update(runes("p"))
	m = updated.(Model)
	assert.Contains(t, m.View(), "placement=bottom-end")
}

func TestModel_Quit(t *testing.T) {
	m, _, _ := newModel(t)

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestModel_NotReady(t *testing.T) {
	m := New(nil, nil, nil, nil, nil)
	assert.Equal(t, "Initializing...", m.View())
}
