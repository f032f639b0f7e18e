package splash

import (
	"time"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/lyra/internal/tui/theme"
)

const Duration = 1500 * time.Millisecond

const Logo = `
 ██╗     ██╗   ██╗██████╗  █████╗
 ██║     ╚██╗ ██╔╝██╔══██╗██╔══██╗
 ██║      ╚████╔╝ ██████╔╝███████║
 ██║       ╚██╔╝  ██╔══██╗██╔══██║
 ███████╗   ██║   ██║  ██║██║  ██║
 ╚══════╝   ╚═╝   ╚═╝  ╚═╝╚═╝  ╚═╝`

type TickMsg struct{}

func LogoView(t theme.Theme) string {
	return t.TextAccent().Render(Logo)
}

func View(t theme.Theme, width, height int) string {
	tagline := t.Muted().Render("content scheduling, from the terminal")
	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, LogoView(t), "", tagline),
	)
}
