package xhttp

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/garrettladley/lyra/internal/version"
	"github.com/garrettladley/lyra/internal/xcontext"
)

type lyraTransport struct {
	base http.RoundTripper
}

var _ http.RoundTripper = (*lyraTransport)(nil)

func (t *lyraTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	requestID, ok := xcontext.RequestID(req.Context())
	if !ok {
		requestID = uuid.NewString()
	}

	req.Header.Set(UserAgent, version.UserAgent())
	req.Header.Set(version.Header, version.Get())
	req.Header.Set(XRequestID, requestID)

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("failed to perform round trip: %w", err)
	}
	return resp, nil
}

// WrapTransport adds the standard lyra headers to base, or to
// http.DefaultTransport when base is nil.
func WrapTransport(base http.RoundTripper) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return &lyraTransport{base: base}
}
