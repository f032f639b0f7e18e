package lyra

import (
	"context"
	"net/http"
	"strconv"
)

type contentService struct {
	client *Client
}

// Approve ignores the response body; any 2xx counts as approved.
func (s *contentService) Approve(ctx context.Context, id int64) error {
	route := "/dashboard/content/" + strconv.FormatInt(id, 10) + "/approve"
	return s.client.do(ctx, request{method: http.MethodPut, path: route}, nil)
}
