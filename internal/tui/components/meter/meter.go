package meter

import (
	"image/color"
	"math"
	"strconv"
	"strings"

	drawille "github.com/exrook/drawille-go"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/lyra/internal/tui/theme"
)

const (
	// each braille cell is 2 dots wide and 4 dots tall
	dotsPerCellX = 2
	dotsPerCellY = 4

	emptyBraille = "\u2800"
	fullBraille  = "\u28FF"
)

// Meter is a horizontal braille bar filled to Value out of Max.
type Meter struct {
	Value   *float64 // nil = no data
	Max     float64
	Width   int // in cells
	Label   string
	Color   color.Color
	BgColor color.Color
}

type Option func(*Meter)

func WithWidth(cells int) Option {
	return func(m *Meter) { m.Width = cells }
}

func WithBgColor(c color.Color) Option {
	return func(m *Meter) { m.BgColor = c }
}

func New(value *float64, max float64, label string, c color.Color, opts ...Option) Meter {
	m := Meter{
		Value:   value,
		Max:     max,
		Width:   24,
		Label:   label,
		Color:   c,
		BgColor: theme.ColorBgLight,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Fraction is Value/Max clamped to [0, 1]; zero without data.
func (m Meter) Fraction() float64 {
	if m.Value == nil || m.Max <= 0 {
		return 0
	}
	return min(max(*m.Value/m.Max, 0), 1)
}

// Bar returns the unstyled filled and empty segments of the bar.
func (m Meter) Bar() (filled string, empty string) {
	width := max(m.Width, 1)
	dots := int(m.Fraction()*float64(width*dotsPerCellX) + 0.5)

	canvas := drawille.NewCanvas()
	for x := range dots {
		for y := range dotsPerCellY {
			canvas.Set(x, y)
		}
	}

	var row []rune
	if dots > 0 {
		rows := canvas.Rows(0, 0, dots, dotsPerCellY)
		if len(rows) > 0 {
			row = []rune(strings.TrimRight(rows[0], " "+emptyBraille))
		}
	}

	fullCells := len(row)
	if fullCells > width {
		row = row[:width]
		fullCells = width
	}

	return string(row), strings.Repeat(fullBraille, width-fullCells)
}

func (m Meter) Render() string {
	filled, empty := m.Bar()

	bar := lipgloss.NewStyle().Foreground(m.Color).Render(filled) +
		lipgloss.NewStyle().Foreground(m.BgColor).Render(empty)

	value := "--"
	if m.Value != nil {
		value = formatPercent(m.Fraction() * 100)
	}

	label := lipgloss.NewStyle().Foreground(theme.ColorDim).Render(m.Label)
	valueText := lipgloss.NewStyle().Foreground(theme.ColorWhite).Bold(true).Render(value)

	return lipgloss.JoinHorizontal(lipgloss.Center, label, " ", bar, " ", valueText)
}

func formatPercent(p float64) string {
	return strconv.FormatFloat(math.Round(p*10)/10, 'f', -1, 64) + "%"
}
