package toast

import (
	"image/color"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"github.com/garrettladley/lyra/internal/dashboard"
	"github.com/garrettladley/lyra/internal/tui/theme"
)

const maxWidth = 60

// Stack renders the newest toasts last, at most limit of them.
func Stack(notes []dashboard.Notification, limit int) string {
	if len(notes) == 0 {
		return ""
	}
	if limit > 0 && len(notes) > limit {
		notes = notes[len(notes)-limit:]
	}

	rendered := make([]string, 0, len(notes))
	for _, n := range notes {
		rendered = append(rendered, Render(n))
	}
	return lipgloss.JoinVertical(lipgloss.Right, rendered...)
}

func Render(n dashboard.Notification) string {
	c := kindColor(n.Kind)
	msg := runewidth.Truncate(n.Message, maxWidth, "…")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(c).
		Foreground(theme.ColorWhite).
		Padding(0, 1).
		Render(icon(n.Kind) + " " + msg)
}

func kindColor(k dashboard.NotificationKind) color.Color {
	switch k {
	case dashboard.NotificationSuccess:
		return theme.ColorSuccess
	case dashboard.NotificationError:
		return theme.ColorDanger
	default:
		return theme.ColorInfo
	}
}

func icon(k dashboard.NotificationKind) string {
	switch k {
	case dashboard.NotificationSuccess:
		return "✓"
	case dashboard.NotificationError:
		return "✗"
	default:
		return "i"
	}
}
