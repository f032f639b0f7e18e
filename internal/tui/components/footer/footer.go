package footer

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/lyra/internal/tui/theme"
)

type Hint struct {
	Key  string
	Desc string
}

type Footer struct {
	hints        []Hint
	rightContent string
	width        int
	padding      int
}

func New(hints []Hint, rightContent string, width int) Footer {
	return Footer{
		hints:        hints,
		rightContent: rightContent,
		width:        width,
		padding:      2,
	}
}

func (f Footer) Render() string {
	leftContent := f.leftContent()
	if hints := f.hintsContent(); hints != "" {
		leftContent += "  " + hints
	}

	leftWidth := lipgloss.Width(leftContent)
	rightWidth := lipgloss.Width(f.rightContent)
	spacerWidth := max(f.width-leftWidth-rightWidth-(f.padding*2), 1)

	return lipgloss.NewStyle().
		PaddingLeft(f.padding).
		PaddingRight(f.padding).
		Render(leftContent + strings.Repeat(" ", spacerWidth) + f.rightContent)
}

var (
	keyStyle  = lipgloss.NewStyle().Foreground(theme.ColorAccent).Bold(true)
	descStyle = lipgloss.NewStyle().Foreground(theme.ColorDim)
)

func (f Footer) hintsContent() string {
	parts := make([]string, 0, len(f.hints))
	for _, h := range f.hints {
		parts = append(parts, keyStyle.Render(h.Key)+" "+descStyle.Render(h.Desc))
	}
	return strings.Join(parts, descStyle.Render(" · "))
}
