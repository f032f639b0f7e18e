package tui

import "github.com/garrettladley/lyra/internal/tui/components/footer"

const (
	keyQuit     = "q"
	keyCtrlC    = "ctrl+c"
	keyGenerate = "g"
	keyApproval = "a"
	keyRefresh  = "r"
	keyUp       = "up"
	keyUpAlt    = "k"
	keyDown     = "down"
	keyDownAlt  = "j"
	keyApprove  = "enter"
	keyYes      = "y"
	keyEdit     = "e"
	keyView     = "v"
	keyClose    = "esc"
	keyDismiss  = "x"
)

var dashboardHints = []footer.Hint{
	{Key: keyGenerate, Desc: "generate"},
	{Key: keyApproval, Desc: "approvals"},
	{Key: keyRefresh, Desc: "refresh"},
	{Key: keyDismiss, Desc: "dismiss"},
	{Key: keyQuit, Desc: "quit"},
}

var modalHints = []footer.Hint{
	{Key: "↑/↓", Desc: "select"},
	{Key: keyApprove, Desc: "approve"},
	{Key: keyEdit, Desc: "edit"},
	{Key: keyView, Desc: "view"},
	{Key: keyClose, Desc: "close"},
}
