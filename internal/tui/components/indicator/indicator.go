package indicator

import (
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/lyra/internal/tui/theme"
)

const statusDot = "●"

// Indicator shows whether the dashboard is talking to the backend.
type Indicator struct {
	Checked   bool
	Connected bool
	// Host is shown next to the status when connected.
	Host string
}

func (i Indicator) Render() string {
	if !i.Checked {
		return lipgloss.NewStyle().
			Foreground(theme.ColorBgLight).
			Render(statusDot + " checking...")
	}

	if i.Connected {
		label := statusDot + " connected"
		if i.Host != "" {
			label += " to " + i.Host
		}
		return lipgloss.NewStyle().
			Foreground(theme.ColorSuccess).
			Render(label)
	}

	return lipgloss.NewStyle().
		Foreground(theme.ColorDanger).
		Render(statusDot + " not connected")
}
