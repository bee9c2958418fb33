package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jmylchreest/uikit/internal/geom"
)

// Class selects the style of a canvas cell.
type Class uint8

const (
	ClassBlank Class = iota
	ClassText
	ClassMuted
	ClassButton
	ClassPrimary
	ClassDisabled
	ClassPanel
	ClassSelected
	ClassError
)

// Canvas is a grid of styled cells.
type Canvas struct {
	width, height int
	runes         [][]rune
	classes       [][]Class
}

// NewCanvas creates a blank canvas.
func NewCanvas(width, height int) *Canvas {
	width, height = max(width, 0), max(height, 0)
	c := &Canvas{
		width:   width,
		height:  height,
		runes:   make([][]rune, height),
		classes: make([][]Class, height),
	}
	for y := range height {
		c.runes[y] = []rune(strings.Repeat(" ", width))
		c.classes[y] = make([]Class, width)
	}
	return c
}

// Width returns the canvas width in cells.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in cells.
func (c *Canvas) Height() int { return c.height }

// Fill paints r with blanks of class. Cells outside the canvas are
// dropped.
func (c *Canvas) Fill(r geom.Rect, class Class) {
	x0, y0 := cell(r.X), cell(r.Y)
	x1, y1 := cell(r.Right()), cell(r.Bottom())
	for y := max(y0, 0); y < min(y1, c.height); y++ {
		for x := max(x0, 0); x < min(x1, c.width); x++ {
			c.runes[y][x] = ' '
			c.classes[y][x] = class
		}
	}
}

// Text writes s starting at (x, y), clipped to the canvas.
func (c *Canvas) Text(x, y float64, s string, class Class) {
	row := cell(y)
	if row < 0 || row >= c.height {
		return
	}
	col := cell(x)
	for _, r := range s {
		if col >= c.width {
			return
		}
		if col >= 0 {
			c.runes[row][col] = r
			c.classes[row][col] = class
		}
		col++
	}
}

// Line returns row y as plain text.
func (c *Canvas) Line(y int) string {
	if y < 0 || y >= c.height {
		return ""
	}
	return string(c.runes[y])
}

// ClassAt returns the class of the cell at (x, y).
func (c *Canvas) ClassAt(x, y int) Class {
	if y < 0 || y >= c.height || x < 0 || x >= c.width {
		return ClassBlank
	}
	return c.classes[y][x]
}

// String returns the canvas as plain text.
func (c *Canvas) String() string {
	lines := make([]string, c.height)
	for y := range c.height {
		lines[y] = c.Line(y)
	}
	return strings.Join(lines, "\n")
}

// Render returns the canvas with runs of equal class styled by p.
func (c *Canvas) Render(p Palette) string {
	lines := make([]string, c.height)
	for y := range c.height {
		var b strings.Builder
		start := 0
		for x := 1; x <= c.width; x++ {
			if x < c.width && c.classes[y][x] == c.classes[y][start] {
				continue
			}
			b.WriteString(p.Style(c.classes[y][start]).Render(string(c.runes[y][start:x])))
			start = x
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}

func cell(v float64) int {
	return int(math.Round(v))
}

// Palette maps cell classes to styles derived from theme tokens.
type Palette struct {
	styles map[Class]lipgloss.Style
	Header lipgloss.Style
	Status lipgloss.Style
	Err    lipgloss.Style
}

// NewPalette builds a palette from design tokens such as
// --ui-color-primary-500. Missing or non-hex tokens use ANSI fallbacks.
func NewPalette(tokens map[string]string) Palette {
	color := func(name, fallback string) lipgloss.Color {
		if v, ok := tokens[name]; ok && strings.HasPrefix(v, "#") {
			return lipgloss.Color(v)
		}
		return lipgloss.Color(fallback)
	}

	primary := color("--ui-color-primary-500", "12")
	primaryLight := color("--ui-color-primary-300", "14")
	surface := color("--ui-color-surface", "0")
	text := color("--ui-color-text", "15")
	border := color("--ui-border-color-2", "8")
	danger := color("--ui-color-red-600", "9")

	return Palette{
		styles: map[Class]lipgloss.Style{
			ClassBlank:    lipgloss.NewStyle(),
			ClassText:     lipgloss.NewStyle().Foreground(text),
			ClassMuted:    lipgloss.NewStyle().Foreground(border),
			ClassButton:   lipgloss.NewStyle().Foreground(text).Background(border),
			ClassPrimary:  lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(primary).Bold(true),
			ClassDisabled: lipgloss.NewStyle().Foreground(border).Faint(true),
			ClassPanel:    lipgloss.NewStyle().Foreground(text).Background(surface),
			ClassSelected: lipgloss.NewStyle().Foreground(primary).Bold(true),
			ClassError:    lipgloss.NewStyle().Foreground(danger),
		},
		Header: lipgloss.NewStyle().Bold(true).Foreground(primary).Padding(0, 1),
		Status: lipgloss.NewStyle().Foreground(primaryLight),
		Err:    lipgloss.NewStyle().Foreground(danger),
	}
}

// Style returns the style of class.
func (p Palette) Style(class Class) lipgloss.Style {
	if s, ok := p.styles[class]; ok {
		return s
	}
	return lipgloss.NewStyle()
}
