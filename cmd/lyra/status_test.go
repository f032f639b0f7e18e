package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/garrettladley/lyra/internal/client/lyra"
	"github.com/garrettladley/lyra/internal/dashboard"
)

func TestPrintStatus(t *testing.T) {
	t.Parallel()

	widgets := lyra.Widgets{
		ContentStats: lyra.ContentStats{TotalGenerated: 128, ThisWeek: 9, Approved: 100, ApprovalRate: 78.1},
		QuickStats:   lyra.QuickStats{PendingApproval: 3, PlatformsActive: 4},
	}
	ticker := &lyra.CalendarTickerResponse{
		TickerItems: []lyra.TickerItem{{
			Platform:       "twitter",
			ContentPreview: "launch thread",
			Countdown:      lyra.Countdown{Days: 1, Hours: 2, Minutes: 3, TotalMinutes: 1563},
		}},
	}
	approvals := &lyra.PendingApprovalsResponse{
		PendingApprovals: []lyra.PendingApproval{{
			ID:             42,
			Platform:       "linkedin",
			ContentType:    "post",
			CreatedAt:      lyra.Timestamp{Time: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)},
			ContentPreview: "quarterly update",
		}},
		TotalPending: 1,
	}

	var buf bytes.Buffer
	printStatus(&buf, widgets, ticker, approvals, 7)
	out := buf.String()

	for _, want := range []string{"128", "78.1%", "twitter", "1d 2h 3m", "Pending approvals (1)", "42", "quarterly update"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintStatus_Empty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printStatus(&buf, lyra.Widgets{}, &lyra.CalendarTickerResponse{}, &lyra.PendingApprovalsResponse{}, 3)
	out := buf.String()

	for _, want := range []string{dashboard.TickerPlaceholder(3), dashboard.PlaceholderNoPending} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
