package onboarding

import (
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/lyra/internal/tui/page/splash"
	"github.com/garrettladley/lyra/internal/tui/theme"
)

type Phase uint

const (
	PhaseConnecting Phase = iota
	PhaseNoToken
	PhaseError
)

type State struct {
	Phase    Phase
	ErrorMsg string
	APIURL   string
}

func View(t theme.Theme, state State, width, height int) string {
	var content string

	switch state.Phase {
	case PhaseConnecting:
		content = connectingView(t, state.APIURL)
	case PhaseNoToken:
		content = noTokenView(t)
	case PhaseError:
		content = errorView(t, state.ErrorMsg)
	}

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		content,
	)
}

var (
	subtitleStyle = lipgloss.NewStyle().Foreground(theme.ColorWhite)
	hintStyle     = lipgloss.NewStyle().Foreground(theme.ColorDim)
	commandStyle  = lipgloss.NewStyle().
			Foreground(theme.ColorBgDark).
			Background(theme.ColorAccent).
			Padding(0, 2).
			Bold(true)
)

func noTokenView(t theme.Theme) string {
	title := t.Title().Render("Log in to Lyra")
	subtitle := subtitleStyle.Render("No auth token found. Log in from another terminal:")
	command := commandStyle.Render("lyra auth login --username <you>")
	hint := hintStyle.Render("Press r to retry, or q to quit")

	return lipgloss.JoinVertical(
		lipgloss.Center,
		splash.LogoView(t),
		"",
		"",
		title,
		"",
		subtitle,
		"",
		command,
		"",
		"",
		hint,
	)
}

func connectingView(t theme.Theme, apiURL string) string {
	title := t.Title().Render("Connecting...")
	subtitle := subtitleStyle.Render("Loading your dashboard")
	hint := hintStyle.Render(apiURL)

	return lipgloss.JoinVertical(
		lipgloss.Center,
		splash.LogoView(t),
		"",
		"",
		title,
		"",
		subtitle,
		"",
		hint,
	)
}

func errorView(t theme.Theme, errorMsg string) string {
	titleStyle := lipgloss.NewStyle().
		Foreground(theme.ColorDanger).
		Bold(true)

	errorStyle := lipgloss.NewStyle().
		Foreground(theme.ColorDanger)

	title := titleStyle.Render("Failed to load enhanced dashboard")
	subtitle := subtitleStyle.Render("Check the API URL and your token")
	errorText := errorStyle.Render(errorMsg)
	hint := hintStyle.Render("Press r to retry, or q to quit")

	return lipgloss.JoinVertical(
		lipgloss.Center,
		splash.LogoView(t),
		"",
		"",
		title,
		"",
		subtitle,
		"",
		errorText,
		"",
		hint,
	)
}
