package tui

import (
	"context"
	"testing"

	"github.com/garrettladley/lyra/internal/dashboard"
	"github.com/garrettladley/lyra/internal/tui/page/onboarding"
	"github.com/garrettladley/lyra/internal/tui/page/splash"
)

type staticChecker bool

func (s staticChecker) HasToken(context.Context) bool { return bool(s) }

func newModel(t *testing.T, hasToken bool) (*Model, *dashboard.Page) {
	t.Helper()
	page := dashboard.NewPage(dashboard.AllElements())
	d := dashboard.New(page, nil, nil)
	d.SetupEventHandlers()
	m := New(Deps{
		Ctx:          t.Context(),
		Dashboard:    d,
		TokenChecker: staticChecker(hasToken),
		APIURL:       "http://localhost:8000",
	})
	return &m, page
}

func TestModel_NoTokenShowsOnboardingAfterSplash(t *testing.T) {
	t.Parallel()

	m, _ := newModel(t, false)
	m.Update(TokenStatusMsg{HasToken: false})

	if m.page != splashPage {
		t.Fatalf("page = %v, want splash until the tick", m.page)
	}

	m.Update(splash.TickMsg{})
	if m.page != onboardingPage {
		t.Fatalf("page = %v, want onboarding", m.page)
	}
	if m.state.onboarding.Phase != onboarding.PhaseNoToken {
		t.Errorf("phase = %v, want no token", m.state.onboarding.Phase)
	}
	if !m.state.dashboard.Indicator.Checked {
		t.Error("indicator should be checked")
	}
}

func TestModel_InitResult(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		err       error
		wantPage  page
		wantPhase onboarding.Phase
	}{
		{name: "success", wantPage: dashboardPage, wantPhase: onboarding.PhaseConnecting},
		{name: "no token", err: dashboard.ErrNoToken, wantPage: onboardingPage, wantPhase: onboarding.PhaseNoToken},
		{name: "failure", err: context.DeadlineExceeded, wantPage: onboardingPage, wantPhase: onboarding.PhaseError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, _ := newModel(t, true)
			m.Update(splash.TickMsg{})
			m.Update(DashboardInitMsg{Err: tt.err})

			if m.page != tt.wantPage {
				t.Errorf("page = %v, want %v", m.page, tt.wantPage)
			}
			if m.state.onboarding.Phase != tt.wantPhase {
				t.Errorf("phase = %v, want %v", m.state.onboarding.Phase, tt.wantPhase)
			}
			if got := m.state.dashboard.Indicator.Connected; got != (tt.err == nil) {
				t.Errorf("connected = %v", got)
			}
		})
	}
}

func TestModel_ModalKeys(t *testing.T) {
	t.Parallel()

	m, page := newModel(t, true)
	m.Update(splash.TickMsg{})
	m.Update(DashboardInitMsg{})

	page.ShowModal(dashboard.ElementApprovalsModal)
	m.Update(PageChangedMsg{})

	if cmd := m.handleKey(keyClose); cmd != nil {
		t.Error("closing the modal should not schedule work")
	}
	if page.IsModalOpen(dashboard.ElementApprovalsModal) {
		t.Error("modal should be closed after esc")
	}
}

func TestModel_DismissToast(t *testing.T) {
	t.Parallel()

	m, page := newModel(t, true)
	m.Update(splash.TickMsg{})
	m.Update(DashboardInitMsg{})

	page.ShowNotification("first", dashboard.NotificationInfo)
	page.ShowNotification("second", dashboard.NotificationInfo)
	m.Update(PageChangedMsg{})

	m.handleKey(keyDismiss)

	notes := page.Notifications()
	if len(notes) != 1 || notes[0].Message != "first" {
		t.Errorf("notifications = %+v, want only the first", notes)
	}
}

func TestHostOf(t *testing.T) {
	t.Parallel()

	if got := hostOf("https://api.lyra.dev:8443/v1"); got != "api.lyra.dev:8443" {
		t.Errorf("hostOf = %q", got)
	}
	if got := hostOf("::"); got != "" {
		t.Errorf("hostOf(invalid) = %q, want empty", got)
	}
}

func TestModel_TickerWindowFromDashboard(t *testing.T) {
	t.Parallel()

	m, _ := newModel(t, true)
	if got := m.state.dashboard.DaysAhead; got != dashboard.DefaultDaysAhead {
		t.Errorf("DaysAhead = %d, want %d", got, dashboard.DefaultDaysAhead)
	}
}
