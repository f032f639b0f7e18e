package dashboard

import (
	"strconv"
	"strings"
	"time"

	"github.com/garrettladley/lyra/internal/client/lyra"
)

const (
	PlaceholderNoUpcoming = "No upcoming posts scheduled"
	PlaceholderNoPending  = "All content approved! No pending items."
)

// TickerPlaceholder is shown when no posts fall inside the ticker window.
func TickerPlaceholder(daysAhead int) string {
	return "No upcoming posts in the next " + strconv.Itoa(daysAhead) + " days"
}

type Urgency uint8

const (
	UrgencyNone Urgency = iota
	UrgencySoon
	UrgencyUrgent
)

func (u Urgency) String() string {
	switch u {
	case UrgencySoon:
		return "soon"
	case UrgencyUrgent:
		return "urgent"
	default:
		return ""
	}
}

const (
	urgentHours   = 2
	urgentMinutes = 60
	soonMinutes   = 360
)

func TickerUrgency(totalMinutes int64) Urgency {
	switch {
	case totalMinutes < urgentMinutes:
		return UrgencyUrgent
	case totalMinutes < soonMinutes:
		return UrgencySoon
	default:
		return UrgencyNone
	}
}

type UpcomingEntry struct {
	// Platform is the raw platform key; Badge is its upper-cased label.
	Platform  string
	Badge     string
	Remaining string
	Days      string
	Urgent    bool
}

type UpcomingView struct {
	Entries     []UpcomingEntry
	Placeholder string
}

func (v UpcomingView) Empty() bool { return len(v.Entries) == 0 }

func renderUpcoming(posts []lyra.UpcomingPost) UpcomingView {
	if len(posts) == 0 {
		return UpcomingView{Placeholder: PlaceholderNoUpcoming}
	}

	entries := make([]UpcomingEntry, 0, len(posts))
	for _, p := range posts {
		entries = append(entries, UpcomingEntry{
			Platform:  p.Platform,
			Badge:     strings.ToUpper(p.Platform),
			Remaining: formatNumber(p.HoursUntil) + "h remaining",
			Days:      formatNumber(p.DaysUntil) + " days",
			Urgent:    p.HoursUntil < urgentHours,
		})
	}
	return UpcomingView{Entries: entries}
}

type TickerEntry struct {
	Platform  string
	Preview   string
	Countdown string
	NextPost  bool
	Urgency   Urgency
}

type TickerView struct {
	Entries     []TickerEntry
	Placeholder string
}

func (v TickerView) Empty() bool { return len(v.Entries) == 0 }

func renderTicker(items []lyra.TickerItem, next *lyra.TickerItem, daysAhead int) TickerView {
	if len(items) == 0 {
		return TickerView{Placeholder: TickerPlaceholder(daysAhead)}
	}

	entries := make([]TickerEntry, 0, len(items))
	for i, item := range items {
		entries = append(entries, TickerEntry{
			Platform:  item.Platform,
			Preview:   item.ContentPreview,
			Countdown: item.Countdown.String(),
			NextPost:  i == 0 && next != nil,
			Urgency:   TickerUrgency(item.Countdown.TotalMinutes),
		})
	}
	return TickerView{Entries: entries}
}

type ApprovalEntry struct {
	ID          int64
	Platform    string
	ContentType string
	Created     string
	Preview     string
}

type ApprovalsView struct {
	Entries     []ApprovalEntry
	Placeholder string
}

func (v ApprovalsView) Empty() bool { return len(v.Entries) == 0 }

func renderApprovals(items []lyra.PendingApproval, loc *time.Location) ApprovalsView {
	if len(items) == 0 {
		return ApprovalsView{Placeholder: PlaceholderNoPending}
	}

	entries := make([]ApprovalEntry, 0, len(items))
	for _, item := range items {
		var created string
		if !item.CreatedAt.IsZero() {
			created = item.CreatedAt.In(loc).Format(time.DateOnly)
		}
		entries = append(entries, ApprovalEntry{
			ID:          item.ID,
			Platform:    item.Platform,
			ContentType: item.ContentType,
			Created:     created,
			Preview:     item.ContentPreview,
		})
	}
	return ApprovalsView{Entries: entries}
}

// formatNumber prints whole numbers without a fraction, like a JS template literal.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatPercent(f float64) string {
	return formatNumber(f) + "%"
}
