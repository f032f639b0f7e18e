package main

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/garrettladley/lyra/internal/dashboard"
	"github.com/garrettladley/lyra/internal/scheduler"
	"github.com/garrettladley/lyra/internal/tui"
	"github.com/garrettladley/lyra/internal/xslog"
)

func runTUI(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := newApp(ctx, true)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	sched := scheduler.New(a.logger)
	sched.Start()
	defer func() { _ = sched.Stop(ctx) }()

	page := dashboard.NewPage(dashboard.ParseElements(a.cfg.Widgets))
	d := dashboard.New(page, a.tokens, sched,
		dashboard.WithBaseURL(a.cfg.APIURL),
		dashboard.WithRefreshInterval(a.cfg.RefreshInterval),
		dashboard.WithCountdownInterval(a.cfg.CountdownInterval),
		dashboard.WithDaysAhead(a.cfg.DaysAhead),
		dashboard.WithRequestTimeout(a.cfg.RequestTimeout),
		dashboard.WithSessionID(a.sessionID),
		dashboard.WithLogger(a.logger),
	)
	defer d.Destroy()

	ctx = xslog.WithLogger(ctx, a.logger)

	model := tui.New(tui.Deps{
		Ctx:          ctx,
		Logger:       a.logger,
		Dashboard:    d,
		TokenChecker: a.tokens,
		APIURL:       a.cfg.APIURL,
	})

	p := tea.NewProgram(&model, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	return nil
}
