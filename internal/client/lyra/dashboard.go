package lyra

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

type dashboardService struct {
	client *Client
}

func (s *dashboardService) Widgets(ctx context.Context) (*WidgetsResponse, error) {
	const route = "/dashboard/widgets"

	var widgets WidgetsResponse
	if err := s.client.do(ctx, request{method: http.MethodGet, path: route}, &widgets); err != nil {
		return nil, err
	}
	return &widgets, nil
}

func (s *dashboardService) CalendarTicker(ctx context.Context, daysAhead int) (*CalendarTickerResponse, error) {
	const route = "/dashboard/calendar-ticker"

	query := url.Values{}
	query.Set("days_ahead", strconv.Itoa(daysAhead))

	var ticker CalendarTickerResponse
	if err := s.client.do(ctx, request{method: http.MethodGet, path: route, query: query}, &ticker); err != nil {
		return nil, err
	}
	return &ticker, nil
}
