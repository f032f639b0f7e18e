package theme

import "charm.land/lipgloss/v2"

var (
	ColorBlack = lipgloss.Color("#000000")
	ColorWhite = lipgloss.Color("#FFFFFF")
	ColorDim   = lipgloss.Color("#666666")
)

var (
	ColorAccent  = lipgloss.Color("#B388FF") // brand, highlights, selection
	ColorSuccess = lipgloss.Color("#16EC06") // success toasts, connected
	ColorWarning = lipgloss.Color("#FFDE00") // posts due soon
	ColorDanger  = lipgloss.Color("#FF0026") // errors, urgent posts
	ColorInfo    = lipgloss.Color("#67AEE6") // info toasts, neutral data
)

var (
	ColorBgDark  = lipgloss.Color("#14111A") // app background
	ColorBgLight = lipgloss.Color("#2A2433") // panels, unfilled meter
)

var platformColors = map[string]string{
	"twitter":   "#1DA1F2",
	"x":         "#E7E9EA",
	"linkedin":  "#0A66C2",
	"instagram": "#E1306C",
	"facebook":  "#1877F2",
	"tiktok":    "#25F4EE",
	"threads":   "#C7C7C7",
}
