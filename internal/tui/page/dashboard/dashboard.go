package dashboard

import (
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	lyradash "github.com/garrettladley/lyra/internal/dashboard"
	"github.com/garrettladley/lyra/internal/tui/components/indicator"
	"github.com/garrettladley/lyra/internal/tui/components/meter"
	"github.com/garrettladley/lyra/internal/tui/components/toast"
	"github.com/garrettladley/lyra/internal/tui/theme"
)

const (
	previewWidth = 36
	maxToasts    = 3
)

type State struct {
	Indicator indicator.Indicator
	// Selected indexes the approvals list while the modal is open.
	Selected int
	// DaysAhead is the ticker window shown in the calendar title.
	DaysAhead int
}

// Clamp keeps Selected inside the approvals list.
func (s *State) Clamp(snap lyradash.Snapshot) {
	n := len(snap.Approvals.Entries)
	switch {
	case n == 0:
		s.Selected = 0
	case s.Selected >= n:
		s.Selected = n - 1
	case s.Selected < 0:
		s.Selected = 0
	}
}

// SelectedID returns the content id under the cursor.
func (s State) SelectedID(snap lyradash.Snapshot) (int64, bool) {
	entries := snap.Approvals.Entries
	if s.Selected < 0 || s.Selected >= len(entries) {
		return 0, false
	}
	return entries[s.Selected].ID, true
}

func View(t theme.Theme, state State, snap lyradash.Snapshot, width int) string {
	sections := []string{header(t, snap, width)}

	if toasts := toast.Stack(snap.Notifications, maxToasts); toasts != "" {
		sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Right, toasts))
	}

	if snap.OpenModals[lyradash.ElementApprovalsModal] {
		sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, approvalsModal(t, state, snap)))
	} else {
		if row := counters(t, snap); row != "" {
			sections = append(sections, row)
		}
		if m := approvalMeter(snap); m != "" {
			sections = append(sections, m)
		}
		sections = append(sections, panels(t, state, snap, width))
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(
		lipgloss.JoinVertical(lipgloss.Left, sections...),
	)
}

func AuthIndicatorView(state State) string {
	return state.Indicator.Render()
}

func header(t theme.Theme, snap lyradash.Snapshot, width int) string {
	title := t.Title().Render("LYRA DASHBOARD")

	var buttons []string
	for _, b := range []struct {
		id  lyradash.ElementID
		key string
	}{
		{lyradash.ElementGenerateButton, "g"},
		{lyradash.ElementApprovalsButton, "a"},
	} {
		btn, ok := snap.Buttons[b.id]
		if !ok {
			continue
		}
		buttons = append(buttons, button(btn, b.key))
	}

	right := strings.Join(buttons, " ")
	gap := max(width-4-lipgloss.Width(title)-lipgloss.Width(right), 1)
	return title + strings.Repeat(" ", gap) + right
}

func button(b lyradash.Button, key string) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ColorBgDark).
		Background(theme.ColorAccent).
		Padding(0, 1).
		Bold(true)
	if b.Disabled {
		style = style.Background(theme.ColorBgLight).Foreground(theme.ColorDim)
	}
	return style.Render("[" + key + "] " + b.Label)
}

var counterLabels = map[lyradash.ElementID]string{
	lyradash.ElementTotalContent:    "TOTAL",
	lyradash.ElementThisWeek:        "THIS WEEK",
	lyradash.ElementApprovedContent: "APPROVED",
	lyradash.ElementApprovalRate:    "APPROVAL RATE",
	lyradash.ElementPendingCount:    "PENDING",
	lyradash.ElementPlatformsActive: "PLATFORMS",
}

func counters(t theme.Theme, snap lyradash.Snapshot) string {
	var boxes []string
	for _, id := range lyradash.Counters() {
		if !snap.Has(id) {
			continue
		}
		value := snap.Text[id]
		if value == "" {
			value = "--"
		}
		boxes = append(boxes, t.Panel().Width(17).Render(
			lipgloss.JoinVertical(lipgloss.Left,
				t.Muted().Render(counterLabels[id]),
				lipgloss.NewStyle().Foreground(theme.ColorWhite).Bold(true).Render(value),
			),
		))
	}
	if len(boxes) == 0 {
		return ""
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

func approvalMeter(snap lyradash.Snapshot) string {
	if !snap.Has(lyradash.ElementApprovalRate) {
		return ""
	}

	var value *float64
	if rate, err := strconv.ParseFloat(strings.TrimSuffix(snap.Text[lyradash.ElementApprovalRate], "%"), 64); err == nil {
		value = &rate
	}

	return meter.New(value, 100, "approval", theme.ColorSuccess, meter.WithWidth(40)).Render()
}

func panels(t theme.Theme, state State, snap lyradash.Snapshot, width int) string {
	var cols []string
	panelWidth := max((width-8)/2, 30)

	if snap.Has(lyradash.ElementUpcomingPosts) {
		cols = append(cols, t.Panel().Width(panelWidth).Render(upcoming(t, snap.Upcoming)))
	}
	if snap.Has(lyradash.ElementCalendarTicker) {
		cols = append(cols, t.Panel().Width(panelWidth).Render(ticker(t, snap.Ticker, state.DaysAhead)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func upcoming(t theme.Theme, v lyradash.UpcomingView) string {
	lines := []string{t.Title().Render("Upcoming posts"), ""}
	if v.Empty() {
		placeholder := v.Placeholder
		if placeholder == "" {
			placeholder = "Loading..."
		}
		return strings.Join(append(lines, t.Muted().Render(placeholder)), "\n")
	}

	for _, e := range v.Entries {
		remaining := lipgloss.NewStyle().Foreground(theme.ColorWhite)
		if e.Urgent {
			remaining = remaining.Foreground(theme.ColorDanger).Bold(true)
		}
		lines = append(lines, t.Badge(e.Platform, e.Badge)+"  "+
			remaining.Render(e.Remaining)+"  "+
			t.Muted().Render(e.Days))
	}
	return strings.Join(lines, "\n")
}

func ticker(t theme.Theme, v lyradash.TickerView, daysAhead int) string {
	title := "Calendar"
	if daysAhead > 0 {
		title += " · next " + strconv.Itoa(daysAhead) + " days"
	}
	lines := []string{t.Title().Render(title), ""}
	if v.Empty() {
		placeholder := v.Placeholder
		if placeholder == "" {
			placeholder = "Loading..."
		}
		return strings.Join(append(lines, t.Muted().Render(placeholder)), "\n")
	}

	for _, e := range v.Entries {
		marker := "  "
		if e.NextPost {
			marker = t.TextAccent().Render("▶ ")
		}

		countdown := lipgloss.NewStyle().Foreground(theme.ColorWhite)
		switch e.Urgency {
		case lyradash.UrgencyUrgent:
			countdown = countdown.Foreground(theme.ColorDanger).Bold(true)
		case lyradash.UrgencySoon:
			countdown = countdown.Foreground(theme.ColorWarning)
		}

		lines = append(lines, marker+t.Badge(e.Platform, e.Platform)+"  "+
			countdown.Render(e.Countdown)+"  "+
			t.Muted().Render(Truncate(e.Preview, previewWidth)))
	}
	return strings.Join(lines, "\n")
}

func approvalsModal(t theme.Theme, state State, snap lyradash.Snapshot) string {
	lines := []string{t.Title().Render("Pending approvals"), ""}

	v := snap.Approvals
	if v.Empty() {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.ColorSuccess).Render(v.Placeholder))
	}
	for i, e := range v.Entries {
		cursor := "  "
		row := lipgloss.NewStyle()
		if i == state.Selected {
			cursor = t.TextAccent().Render("› ")
			row = row.Background(theme.ColorBgLight)
		}
		lines = append(lines,
			cursor+row.Render("#"+strconv.FormatInt(e.ID, 10)+"  ")+
				t.Badge(e.Platform, e.Platform)+"  "+
				t.Muted().Render(e.ContentType+"  "+e.Created),
			"    "+Truncate(e.Preview, previewWidth+20),
		)
	}

	lines = append(lines, "", t.Muted().Render("enter approve · e edit · v view full · esc close"))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.ColorAccent).
		Padding(1, 2).
		Render(strings.Join(lines, "\n"))
}

// Truncate shortens s to width terminal cells.
func Truncate(s string, width int) string {
	s = strings.Join(strings.Fields(s), " ")
	return runewidth.Truncate(s, width, "…")
}
