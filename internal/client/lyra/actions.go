package lyra

import (
	"context"
	"net/http"
)

type actionService struct {
	client *Client
}

func (s *actionService) GenerateContent(ctx context.Context) (*GenerateContentResponse, error) {
	const route = "/dashboard/quick-actions/generate-content"

	var result GenerateContentResponse
	if err := s.client.do(ctx, request{method: http.MethodPost, path: route}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *actionService) PendingApprovals(ctx context.Context) (*PendingApprovalsResponse, error) {
	const route = "/dashboard/quick-actions/pending-approvals"

	var approvals PendingApprovalsResponse
	if err := s.client.do(ctx, request{method: http.MethodGet, path: route}, &approvals); err != nil {
		return nil, err
	}
	return &approvals, nil
}
