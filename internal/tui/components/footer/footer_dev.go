//go:build !release

package footer

import (
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/lyra/internal/tui/theme"
	"github.com/garrettladley/lyra/internal/version"
)

var devVersionStyle = lipgloss.NewStyle().Foreground(theme.ColorDim)

func (f Footer) leftContent() string {
	return devVersionStyle.Render(versionLabel(version.Get()))
}

// versionLabel tags local and dirty builds.
func versionLabel(v string) string {
	if version.IsDevelopment(v) {
		return v + " (dev)"
	}
	return v
}
