package main

import (
	"fmt"
	"io"
	"strconv"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/garrettladley/lyra/internal/client/lyra"
	"github.com/garrettladley/lyra/internal/dashboard"
	"github.com/garrettladley/lyra/internal/tui/theme"
)

func statusCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Print the dashboard widgets once",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := newApp(ctx, false)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			if !cmd.Flags().Changed("days") {
				days = a.cfg.DaysAhead
			}

			client, err := a.authedClient(ctx)
			if err != nil {
				return err
			}

			var (
				widgets   *lyra.WidgetsResponse
				ticker    *lyra.CalendarTickerResponse
				approvals *lyra.PendingApprovalsResponse
			)

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() (err error) {
				widgets, err = client.Dashboard.Widgets(gctx)
				return err
			})
			g.Go(func() (err error) {
				ticker, err = client.Dashboard.CalendarTicker(gctx, days)
				return err
			})
			g.Go(func() (err error) {
				approvals, err = client.Actions.PendingApprovals(gctx)
				return err
			})
			if err := g.Wait(); err != nil {
				return fmt.Errorf("failed to fetch dashboard: %w", err)
			}

			printStatus(cmd.OutOrStdout(), widgets.Widgets, ticker, approvals, days)
			return nil
		},
	}

	cmd.Flags().IntVarP(&days, "days", "d", 7, "days ahead for the calendar ticker")

	return cmd
}

func printStatus(w io.Writer, widgets lyra.Widgets, ticker *lyra.CalendarTickerResponse, approvals *lyra.PendingApprovalsResponse, days int) {
	t := theme.New()
	heading := t.Title()

	stats := widgets.ContentStats
	counters := newTable().
		Headers("TOTAL", "THIS WEEK", "APPROVED", "RATE", "PENDING", "PLATFORMS").
		Row(
			formatNumber(stats.TotalGenerated),
			formatNumber(stats.ThisWeek),
			formatNumber(stats.Approved),
			formatNumber(stats.ApprovalRate)+"%",
			formatNumber(widgets.QuickStats.PendingApproval),
			formatNumber(widgets.QuickStats.PlatformsActive),
		)
	_, _ = lipgloss.Fprintln(w, heading.Render("Content"))
	_, _ = lipgloss.Fprintln(w, counters.Render())

	_, _ = lipgloss.Fprintln(w, heading.Render("Upcoming"))
	if len(ticker.TickerItems) == 0 {
		_, _ = lipgloss.Fprintln(w, t.Muted().Render(dashboard.TickerPlaceholder(days)))
	} else {
		upcoming := newTable().Headers("PLATFORM", "IN", "PREVIEW")
		for _, item := range ticker.TickerItems {
			upcoming.Row(item.Platform, item.Countdown.String(), item.ContentPreview)
		}
		_, _ = lipgloss.Fprintln(w, upcoming.Render())
	}

	_, _ = lipgloss.Fprintln(w, heading.Render("Pending approvals ("+formatNumber(approvals.TotalPending)+")"))
	if len(approvals.PendingApprovals) == 0 {
		_, _ = lipgloss.Fprintln(w, t.Muted().Render(dashboard.PlaceholderNoPending))
		return
	}
	pending := newTable().Headers("ID", "PLATFORM", "TYPE", "CREATED", "PREVIEW")
	for _, item := range approvals.PendingApprovals {
		pending.Row(
			strconv.FormatInt(item.ID, 10),
			item.Platform,
			item.ContentType,
			item.CreatedAt.Local().Format("2006-01-02"),
			item.ContentPreview,
		)
	}
	_, _ = lipgloss.Fprintln(w, pending.Render())
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func newTable() *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.ColorBgLight)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Foreground(theme.ColorAccent).Bold(true).Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
}
