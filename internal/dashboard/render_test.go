package dashboard

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/garrettladley/lyra/internal/client/lyra"
)

func TestRenderUpcoming(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		posts []lyra.UpcomingPost
		want  UpcomingView
	}{
		{
			name: "empty",
			want: UpcomingView{Placeholder: PlaceholderNoUpcoming},
		},
		{
			name: "urgency boundary",
			posts: []lyra.UpcomingPost{
				{Platform: "twitter", HoursUntil: 1.5, DaysUntil: 0},
				{Platform: "instagram", HoursUntil: 2, DaysUntil: 0},
				{Platform: "linkedin", HoursUntil: 49, DaysUntil: 2},
			},
			want: UpcomingView{Entries: []UpcomingEntry{
				{Platform: "twitter", Badge: "TWITTER", Remaining: "1.5h remaining", Days: "0 days", Urgent: true},
				{Platform: "instagram", Badge: "INSTAGRAM", Remaining: "2h remaining", Days: "0 days"},
				{Platform: "linkedin", Badge: "LINKEDIN", Remaining: "49h remaining", Days: "2 days"},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if diff := cmp.Diff(tt.want, renderUpcoming(tt.posts)); diff != "" {
				t.Errorf("renderUpcoming() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTickerUrgency(t *testing.T) {
	t.Parallel()

	tests := []struct {
		minutes int64
		want    Urgency
	}{
		{minutes: 0, want: UrgencyUrgent},
		{minutes: 59, want: UrgencyUrgent},
		{minutes: 60, want: UrgencySoon},
		{minutes: 359, want: UrgencySoon},
		{minutes: 360, want: UrgencyNone},
		{minutes: 10_000, want: UrgencyNone},
	}

	for _, tt := range tests {
		if got := TickerUrgency(tt.minutes); got != tt.want {
			t.Errorf("TickerUrgency(%d) = %v, want %v", tt.minutes, got, tt.want)
		}
	}
}

func TestRenderTicker_NextPost(t *testing.T) {
	t.Parallel()

	items := []lyra.TickerItem{
		{Platform: "twitter", ContentPreview: "a", Countdown: lyra.Countdown{Days: 1, Hours: 2, Minutes: 3, TotalMinutes: 1563}},
		{Platform: "linkedin", ContentPreview: "b", Countdown: lyra.Countdown{Days: 2, TotalMinutes: 2880}},
	}

	withNext := renderTicker(items, &items[0], 7)
	if !withNext.Entries[0].NextPost || withNext.Entries[1].NextPost {
		t.Errorf("with next_post: flags = (%v, %v), want (true, false)",
			withNext.Entries[0].NextPost, withNext.Entries[1].NextPost)
	}
	if got := withNext.Entries[0].Countdown; got != "1d 2h 3m" {
		t.Errorf("Countdown = %q, want 1d 2h 3m", got)
	}

	withoutNext := renderTicker(items, nil, 7)
	for i, e := range withoutNext.Entries {
		if e.NextPost {
			t.Errorf("without next_post: entry %d flagged", i)
		}
	}
}

func TestRenderTicker_Empty(t *testing.T) {
	t.Parallel()

	if got := renderTicker(nil, nil, 7).Placeholder; got != "No upcoming posts in the next 7 days" {
		t.Errorf("placeholder = %q", got)
	}
	if got := renderTicker(nil, nil, 14).Placeholder; got != "No upcoming posts in the next 14 days" {
		t.Errorf("placeholder = %q", got)
	}
}

func TestRenderApprovals_LocalDate(t *testing.T) {
	t.Parallel()

	items := []lyra.PendingApproval{{
		ID:        1,
		CreatedAt: lyra.Timestamp{Time: time.Date(2025, 2, 10, 23, 30, 0, 0, time.UTC)},
	}}

	tokyo := time.FixedZone("JST", 9*60*60)
	if got := renderApprovals(items, tokyo).Entries[0].Created; got != "2025-02-11" {
		t.Errorf("Created = %q, want 2025-02-11", got)
	}
	if got := renderApprovals(items, time.UTC).Entries[0].Created; got != "2025-02-10" {
		t.Errorf("Created = %q, want 2025-02-10", got)
	}
}

func TestFormatPercent(t *testing.T) {
	t.Parallel()

	tests := map[float64]string{
		0:     "0%",
		100:   "100%",
		71.4:  "71.4%",
		33.33: "33.33%",
	}
	for in, want := range tests {
		if got := formatPercent(in); got != want {
			t.Errorf("formatPercent(%v) = %q, want %q", in, got, want)
		}
	}
}
