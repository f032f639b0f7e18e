package tui

type TokenStatusMsg struct {
	HasToken bool
}

type DashboardInitMsg struct {
	Err error
}

// PageChangedMsg is sent whenever the dashboard page was written to.
type PageChangedMsg struct{}

// ToastTickMsg drives toast expiry.
type ToastTickMsg struct{}

// ActionDoneMsg follows every dashboard operation run from a key press.
type ActionDoneMsg struct {
	Action string
}
