package tui

import (
	"context"
	"errors"
	"net/url"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/lyra/internal/dashboard"
	"github.com/garrettladley/lyra/internal/tui/components/footer"
	"github.com/garrettladley/lyra/internal/tui/page/onboarding"
	pagedash "github.com/garrettladley/lyra/internal/tui/page/dashboard"
	"github.com/garrettladley/lyra/internal/tui/page/splash"
	"github.com/garrettladley/lyra/internal/tui/theme"
)

var _ tea.Model = (*Model)(nil)

type page uint

const (
	splashPage page = iota
	onboardingPage
	dashboardPage
)

type state struct {
	splashDone bool
	// next is where the splash hands off once it expires.
	next       page
	onboarding onboarding.State
	dashboard  pagedash.State
}

type Model struct {
	ready          bool
	page           page
	viewportWidth  int
	viewportHeight int
	theme          theme.Theme
	state          state
	snap           dashboard.Snapshot
	deps           Deps
}

func New(deps Deps) Model {
	if deps.Ctx == nil {
		deps.Ctx = context.Background()
	}
	m := Model{
		page:  splashPage,
		theme: theme.New(),
		deps:  deps,
		state: state{
			next: onboardingPage,
			onboarding: onboarding.State{
				Phase:  onboarding.PhaseConnecting,
				APIURL: deps.APIURL,
			},
		},
	}
	m.state.dashboard.Indicator.Host = hostOf(deps.APIURL)
	if deps.Dashboard != nil {
		m.state.dashboard.DaysAhead = deps.Dashboard.DaysAhead()
		m.snap = deps.Dashboard.Page().Snapshot()
	}
	return m
}

func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		splashTickCmd(),
		toastTickCmd(),
		checkTokenCmd(m.deps.Ctx, m.deps.TokenChecker),
	}
	if m.deps.Dashboard != nil {
		cmds = append(cmds, ListenPageCmd(m.deps.Ctx, m.deps.Dashboard.Page().Changes()))
	}
	return tea.Batch(cmds...)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewportWidth = msg.Width
		m.viewportHeight = msg.Height
		m.ready = true

	case tea.KeyMsg:
		return m, m.handleKey(msg.String())

	case splash.TickMsg:
		m.state.splashDone = true
		m.page = m.state.next

	case TokenStatusMsg:
		if !msg.HasToken || m.deps.Dashboard == nil {
			m.state.dashboard.Indicator.Checked = true
			m.state.onboarding.Phase = onboarding.PhaseNoToken
			m.goTo(onboardingPage)
			return m, nil
		}
		m.state.onboarding.Phase = onboarding.PhaseConnecting
		return m, initDashboardCmd(m.deps.Ctx, m.deps.Dashboard)

	case DashboardInitMsg:
		m.state.dashboard.Indicator.Checked = true
		m.state.dashboard.Indicator.Connected = msg.Err == nil
		switch {
		case msg.Err == nil:
			m.goTo(dashboardPage)
		case errors.Is(msg.Err, dashboard.ErrNoToken):
			m.state.onboarding.Phase = onboarding.PhaseNoToken
			m.goTo(onboardingPage)
		default:
			m.state.onboarding.Phase = onboarding.PhaseError
			m.state.onboarding.ErrorMsg = msg.Err.Error()
			m.goTo(onboardingPage)
		}
		m.refreshSnapshot()

	case PageChangedMsg:
		m.refreshSnapshot()
		return m, ListenPageCmd(m.deps.Ctx, m.deps.Dashboard.Page().Changes())

	case ToastTickMsg:
		if m.deps.Dashboard != nil && m.deps.Dashboard.Page().Prune() {
			m.refreshSnapshot()
		}
		return m, toastTickCmd()

	case ActionDoneMsg:
		m.refreshSnapshot()
	}

	return m, nil
}

func (m *Model) goTo(p page) {
	m.state.next = p
	if m.state.splashDone {
		m.page = p
	}
}

func (m *Model) refreshSnapshot() {
	if m.deps.Dashboard == nil {
		return
	}
	m.snap = m.deps.Dashboard.Page().Snapshot()
	m.state.dashboard.Clamp(m.snap)
}

func (m *Model) handleKey(key string) tea.Cmd {
	switch key {
	case keyQuit, keyCtrlC:
		if m.deps.Dashboard != nil {
			m.deps.Dashboard.Destroy()
		}
		return tea.Quit
	}

	switch m.page {
	case onboardingPage:
		if key == keyRefresh && m.state.onboarding.Phase != onboarding.PhaseConnecting {
			m.state.onboarding.Phase = onboarding.PhaseConnecting
			return checkTokenCmd(m.deps.Ctx, m.deps.TokenChecker)
		}
	case dashboardPage:
		return m.handleDashboardKey(key)
	}
	return nil
}

func (m *Model) handleDashboardKey(key string) tea.Cmd {
	d := m.deps.Dashboard
	if d == nil {
		return nil
	}

	if key == keyDismiss {
		if notes := m.snap.Notifications; len(notes) > 0 {
			d.Page().DismissNotification(notes[len(notes)-1].ID)
		}
		return nil
	}

	if m.snap.OpenModals[dashboard.ElementApprovalsModal] {
		switch key {
		case keyUp, keyUpAlt:
			m.state.dashboard.Selected--
			m.state.dashboard.Clamp(m.snap)
		case keyDown, keyDownAlt:
			m.state.dashboard.Selected++
			m.state.dashboard.Clamp(m.snap)
		case keyApprove, keyYes:
			if id, ok := m.state.dashboard.SelectedID(m.snap); ok {
				return actionCmd(m.deps.Ctx, "approve", func(ctx context.Context) {
					d.ApproveContent(ctx, id)
				})
			}
		case keyEdit:
			if id, ok := m.state.dashboard.SelectedID(m.snap); ok {
				d.EditContent(id)
			}
		case keyView:
			if id, ok := m.state.dashboard.SelectedID(m.snap); ok {
				d.ViewFullContent(id)
			}
		case keyClose:
			d.CloseModal(dashboard.ElementApprovalsModal)
			m.state.dashboard.Selected = 0
		}
		return nil
	}

	switch key {
	case keyGenerate:
		return actionCmd(m.deps.Ctx, "generate", func(ctx context.Context) {
			d.Click(ctx, dashboard.ElementGenerateButton)
		})
	case keyApproval:
		return actionCmd(m.deps.Ctx, "approvals", func(ctx context.Context) {
			d.Click(ctx, dashboard.ElementApprovalsButton)
		})
	case keyRefresh:
		return actionCmd(m.deps.Ctx, "refresh", d.RefreshAll)
	}
	return nil
}

func (m *Model) View() tea.View {
	view := tea.NewView("")
	view.AltScreen = true

	if m.page == splashPage {
		view.BackgroundColor = theme.ColorBlack
	} else {
		view.BackgroundColor = m.theme.Background()
	}

	if !m.ready {
		return view
	}

	var content string
	switch m.page {
	case splashPage:
		content = splash.View(m.theme, m.viewportWidth, m.viewportHeight)
	case onboardingPage:
		content = onboarding.View(m.theme, m.state.onboarding, m.viewportWidth, m.viewportHeight)
	case dashboardPage:
		hints := dashboardHints
		if m.snap.OpenModals[dashboard.ElementApprovalsModal] {
			hints = modalHints
		}
		body := pagedash.View(m.theme, m.state.dashboard, m.snap, m.viewportWidth)
		foot := footer.New(hints, pagedash.AuthIndicatorView(m.state.dashboard), m.viewportWidth).Render()
		gap := max(m.viewportHeight-lipgloss.Height(body)-lipgloss.Height(foot), 0)
		content = body + strings.Repeat("\n", gap+1) + foot
	}

	view.SetContent(content)
	return view
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}
