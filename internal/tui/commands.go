package tui

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/garrettladley/lyra/internal/dashboard"
	"github.com/garrettladley/lyra/internal/tui/page/splash"
	"github.com/garrettladley/lyra/internal/xslog"
)

const toastTick = time.Second

func splashTickCmd() tea.Cmd {
	return tea.Tick(splash.Duration, func(time.Time) tea.Msg {
		return splash.TickMsg{}
	})
}

func toastTickCmd() tea.Cmd {
	return tea.Tick(toastTick, func(time.Time) tea.Msg {
		return ToastTickMsg{}
	})
}

func checkTokenCmd(ctx context.Context, checker TokenChecker) tea.Cmd {
	return func() tea.Msg {
		if checker == nil {
			return TokenStatusMsg{}
		}
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return TokenStatusMsg{HasToken: checker.HasToken(ctx)}
	}
}

func initDashboardCmd(ctx context.Context, d *dashboard.Dashboard) tea.Cmd {
	return func() tea.Msg {
		return DashboardInitMsg{Err: d.AutoInit(ctx)}
	}
}

// ListenPageCmd waits for the next page change. It must be re-issued after
// each PageChangedMsg to keep listening.
func ListenPageCmd(ctx context.Context, changes <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-changes:
			return PageChangedMsg{}
		case <-ctx.Done():
			return nil
		}
	}
}

func actionCmd(ctx context.Context, name string, fn func(ctx context.Context)) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		fn(ctx)
		xslog.FromContext(ctx).DebugContext(ctx, "dashboard action finished",
			xslog.Operation(name),
			xslog.Duration(time.Since(start)),
		)
		return ActionDoneMsg{Action: name}
	}
}
