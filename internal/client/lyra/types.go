package lyra

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	go_json "github.com/goccy/go-json"
)

type WidgetsResponse struct {
	Widgets Widgets `json:"widgets"`
}

type Widgets struct {
	ContentStats  ContentStats   `json:"content_stats"`
	QuickStats    QuickStats     `json:"quick_stats"`
	UpcomingPosts []UpcomingPost `json:"upcoming_posts"`
}

// Counts are floats: the backend computes some of them and may send fractions.
type ContentStats struct {
	TotalGenerated float64 `json:"total_generated"`
	ThisWeek       float64 `json:"this_week"`
	Approved       float64 `json:"approved"`
	ApprovalRate   float64 `json:"approval_rate"`
}

type QuickStats struct {
	PendingApproval float64 `json:"pending_approval"`
	PlatformsActive float64 `json:"platforms_active"`
}

type UpcomingPost struct {
	Platform   string  `json:"platform"`
	HoursUntil float64 `json:"hours_until"`
	DaysUntil  float64 `json:"days_until"`
}

type CalendarTickerResponse struct {
	TickerItems   []TickerItem `json:"ticker_items"`
	NextPost      *TickerItem  `json:"next_post"`
	TotalUpcoming float64      `json:"total_upcoming"`
}

type TickerItem struct {
	Platform       string     `json:"platform"`
	ContentPreview string     `json:"content_preview"`
	Countdown      Countdown  `json:"countdown"`
	ScheduledDate  *Timestamp `json:"scheduled_date,omitempty"`
}

type Countdown struct {
	Days         int64 `json:"days"`
	Hours        int64 `json:"hours"`
	Minutes      int64 `json:"minutes"`
	TotalMinutes int64 `json:"total_minutes"`
}

// String formats the countdown as "Xd Yh Zm".
func (c Countdown) String() string {
	return strconv.FormatInt(c.Days, 10) + "d " +
		strconv.FormatInt(c.Hours, 10) + "h " +
		strconv.FormatInt(c.Minutes, 10) + "m"
}

const GenerateSuccessMessage = "Content generated successfully"

type GenerateContentResponse struct {
	Message        string `json:"message"`
	Platform       string `json:"platform"`
	ContentPreview string `json:"content_preview"`
}

func (r *GenerateContentResponse) Succeeded() bool {
	return r.Message == GenerateSuccessMessage
}

type PendingApprovalsResponse struct {
	PendingApprovals []PendingApproval `json:"pending_approvals"`
	TotalPending     float64           `json:"total_pending"`
}

type PendingApproval struct {
	ID             int64     `json:"id"`
	Platform       string    `json:"platform"`
	ContentType    string    `json:"content_type"`
	CreatedAt      Timestamp `json:"created_at"`
	ContentPreview string    `json:"content_preview"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Timestamp accepts RFC 3339 as well as the zone-less ISO 8601 that Python's
// datetime.isoformat produces; zone-less values are read as UTC.
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	time.DateOnly,
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := go_json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("timestamp: unrecognized format %q", s)
}
