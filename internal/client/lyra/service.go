package lyra

import (
	"context"

	"golang.org/x/oauth2"
)

type DashboardService interface {
	Widgets(ctx context.Context) (*WidgetsResponse, error)
	CalendarTicker(ctx context.Context, daysAhead int) (*CalendarTickerResponse, error)
}

type ActionService interface {
	GenerateContent(ctx context.Context) (*GenerateContentResponse, error)
	PendingApprovals(ctx context.Context) (*PendingApprovalsResponse, error)
}

type ContentService interface {
	Approve(ctx context.Context, id int64) error
}

type AuthService interface {
	Login(ctx context.Context, username string, password string) (*oauth2.Token, error)
}
