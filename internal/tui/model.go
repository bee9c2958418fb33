// Package tui provides the BubbleTea-based component playground. The
// element tree is laid out on terminal cells; mouse and keyboard input is
// dispatched to it as dom events.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jmylchreest/uikit/internal/components"
	"github.com/jmylchreest/uikit/internal/config"
	"github.com/jmylchreest/uikit/internal/dom"
	"github.com/jmylchreest/uikit/internal/style"
)

// headerRows is the number of rows above the canvas.
const headerRows = 1

// Model is the playground model.
type Model struct {
	cfg    *config.Config
	logger *slog.Logger

	scene    *Scene
	document *style.Document
	theme    *style.Theme
	sheet    string // hash of the adopted theme sheet
	watcher  *style.Watcher
	palette  Palette

	help help.Model
	keys KeyMap

	width  int
	height int
	ready  bool

	statusMsg string
	statusErr bool
}

type statusMsg struct {
	text  string
	isErr bool
}

type clearStatusMsg struct{}

// themeChangedMsg carries a reloaded theme's CSS from the watcher.
type themeChangedMsg struct {
	name string
	css  string
}

// New creates the playground model. The scene's viewport is resized on the
// first WindowSizeMsg.
func New(cfg *config.Config, scene *Scene, document *style.Document, theme *style.Theme, logger *slog.Logger) Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}

	h := help.New()

	m := Model{
		cfg:      cfg,
		logger:   logger,
		scene:    scene,
		document: document,
		theme:    theme,
		help:     h,
		keys:     DefaultKeyMap(),
		palette:  NewPalette(nil),
	}
	if theme != nil {
		m.palette = NewPalette(theme.Tokens())
		m.sheet = style.Hash(theme.CSS)
	}
	return m
}

// Scene returns the hosted scene.
func (m Model) Scene() *Scene { return m.scene }

// Init initializes the TUI.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.help.Width = msg.Width
		m.scene.Resize(float64(m.width), float64(m.canvasHeight()))
		return m, nil

	case themeChangedMsg:
		m.palette = NewPalette(style.Tokens(msg.css))
		m.sheet = style.Hash(msg.css)
		return m, m.setStatus("theme reloaded: "+msg.name, false)

	case statusMsg:
		m.statusMsg = msg.text
		m.statusErr = msg.isErr
		return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg {
			return clearStatusMsg{}
		})

	case clearStatusMsg:
		m.statusMsg = ""
		m.statusErr = false
		return m, nil
	}

	return m, nil
}

func (m Model) setStatus(text string, isErr bool) tea.Cmd {
	return func() tea.Msg {
		return statusMsg{text: text, isErr: isErr}
	}
}

// handleKey handles key presses.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.scene

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		if m.ready {
			s.Resize(float64(m.width), float64(m.canvasHeight()))
		}
	case key.Matches(msg, m.keys.Toggle):
		s.ToggleMenu()
	case key.Matches(msg, m.keys.Placement):
		s.CyclePlacement()
	case key.Matches(msg, m.keys.Width):
		s.CycleWidth()
	case key.Matches(msg, m.keys.Flip):
		s.ToggleFlip()
	case key.Matches(msg, m.keys.Offset):
		s.CycleOffset()
	case key.Matches(msg, m.keys.Separated):
		s.ToggleSeparated()
	case key.Matches(msg, m.keys.Prev):
		s.MoveSelection("ArrowLeft")
	case key.Matches(msg, m.keys.Next):
		s.MoveSelection("ArrowRight")
	case key.Matches(msg, m.keys.Submit):
		s.ClickElement(s.Submit.Host)
	case key.Matches(msg, m.keys.Reset):
		s.ClickElement(s.Reset.Host)
	case key.Matches(msg, m.keys.ScrollUp):
		s.Scroll(-1)
	case key.Matches(msg, m.keys.ScrollDown):
		s.Scroll(1)
	case key.Matches(msg, m.keys.Theme):
		return m.nextTheme()
	}
	return m, nil
}

// handleMouse turns left presses into clicks and wheel motion into scroll.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.cfg.TUI.Mouse || msg.Action != tea.MouseActionPress {
		return m, nil
	}
	switch msg.Button {
	case tea.MouseButtonLeft:
		y := msg.Y - headerRows
		if y < 0 || y >= m.canvasHeight() {
			return m, nil
		}
		m.scene.Click(float64(msg.X), float64(y))
	case tea.MouseButtonWheelUp:
		m.scene.Scroll(-1)
	case tea.MouseButtonWheelDown:
		m.scene.Scroll(1)
	}
	return m, nil
}

// nextTheme adopts the next bundled theme in place of the current one.
func (m Model) nextTheme() (tea.Model, tea.Cmd) {
	names := style.ListEmbeddedThemes()
	if len(names) == 0 {
		return m, nil
	}
	current := ""
	if m.theme != nil {
		current = m.theme.Name
	}
	name := names[(slices.Index(names, current)+1)%len(names)]

	theme, err := style.LoadTheme(name, m.cfg.ThemesPath())
	if err != nil {
		return m, m.setStatus("Theme failed: "+err.Error(), true)
	}
	if m.watcher != nil {
		if err := m.watcher.Stop(); err != nil {
			m.logger.Debug("failed to stop theme watcher", "error", err)
		}
		m.watcher = nil
	}

	m.theme = theme
	if m.document != nil {
		m.sheet = m.document.Replace(m.sheet, theme.CSS).Hash
	}
	m.palette = NewPalette(theme.Tokens())
	return m, m.setStatus("theme: "+name, false)
}

// canvasHeight returns the rows left for the scene between the header and
// the footer.
func (m Model) canvasHeight() int {
	footer := 1 + lipgloss.Height(m.helpView())
	return max(m.height-headerRows-footer, 0)
}

// helpView renders the key help. With show_help off only the expanded
// view is shown.
func (m Model) helpView() string {
	if !m.cfg.TUI.ShowHelp && !m.help.ShowAll {
		return ""
	}
	return m.help.View(m.keys)
}

// View renders the TUI.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	opts := m.scene.Dropdown.Options()
	themeName := ""
	if m.theme != nil {
		themeName = m.theme.Name
	}
	summary := fmt.Sprintf("placement=%s width=%s flip=%t offset=%g theme=%s",
		opts.Placement, opts.PopoverWidth, opts.Flip, opts.Offset, themeName)
	header := m.palette.Header.Render("uikit playground") + " " +
		m.palette.Style(ClassMuted).Render(summary)

	canvas := NewCanvas(m.width, m.canvasHeight())
	m.scene.Paint(canvas)

	status := m.palette.Status.Render(m.scene.Status())
	if m.statusMsg != "" {
		statusStyle := m.palette.Status
		if m.statusErr {
			statusStyle = m.palette.Err
		}
		status = statusStyle.Render(m.statusMsg)
	}

	return header + "\n" + canvas.Render(m.palette) + "\n" + status + "\n" + m.helpView()
}

// RunOptions configures the TUI.
type RunOptions struct {
	Config *config.Config
	Logger *slog.Logger
}

// Run starts the playground and blocks until it exits.
func Run(ctx context.Context, opts RunOptions) error {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	window := dom.NewWindow(80, 24, logger)
	document := style.NewDocument(style.Default())
	kit := components.NewKit(cfg.Prefix, window, document, logger)
	kit.Popover = cfg.Popover.Options()

	scene, err := NewScene(kit)
	if err != nil {
		return err
	}
	defer scene.Close()

	theme, err := style.LoadTheme(cfg.Styles.Theme, cfg.ThemesPath())
	if err != nil {
		return fmt.Errorf("failed to load theme: %w", err)
	}
	watcher, err := style.NewWatcher(theme, document, logger)
	if err != nil {
		return fmt.Errorf("failed to create theme watcher: %w", err)
	}
	defer func() { _ = watcher.Stop() }()

	m := New(cfg, scene, document, theme, logger)
	m.watcher = watcher

	progOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if cfg.TUI.Mouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(m, progOpts...)

	watcher.OnChange(func(t *style.Theme) {
		p.Send(themeChangedMsg{name: t.Name, css: t.CSS})
	})
	if err := watcher.Start(ctx); err != nil {
		logger.Warn("failed to watch theme", "path", theme.Path, "error", err)
	}

	_, err = p.Run()
	return err
}
