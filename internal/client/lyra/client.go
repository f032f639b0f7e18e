package lyra

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	go_json "github.com/goccy/go-json"
	"golang.org/x/oauth2"

	"github.com/garrettladley/lyra/internal/xcontext"
	"github.com/garrettladley/lyra/internal/xhttp"
	"github.com/garrettladley/lyra/internal/xslog"
)

const DefaultBaseURL = "http://localhost:8000"

type Client struct {
	Dashboard DashboardService
	Actions   ActionService
	Content   ContentService
	Auth      AuthService

	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// New builds a client. A nil tokenSource sends no Authorization header.
func New(tokenSource oauth2.TokenSource, opts ...Option) *Client {
	cfg := &clientConfig{
		baseURL:     DefaultBaseURL,
		tokenSource: tokenSource,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	transport := &lyraTransport{
		base:        xhttp.WrapTransport(cfg.transport),
		tokenSource: cfg.tokenSource,
		sessionID:   cfg.sessionID,
	}

	c := &Client{
		baseURL:    strings.TrimRight(cfg.baseURL, "/"),
		httpClient: &http.Client{Transport: transport, Timeout: cfg.timeout},
		logger:     cfg.logger,
	}

	c.Dashboard = &dashboardService{client: c}
	c.Actions = &actionService{client: c}
	c.Content = &contentService{client: c}
	c.Auth = &authService{client: c}

	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

type clientConfig struct {
	baseURL     string
	tokenSource oauth2.TokenSource
	logger      *slog.Logger
	sessionID   string
	timeout     time.Duration
	transport   http.RoundTripper
}

type Option func(*clientConfig)

func WithBaseURL(baseURL string) Option {
	return func(cfg *clientConfig) { cfg.baseURL = baseURL }
}

func WithSessionID(sessionID string) Option {
	return func(cfg *clientConfig) { cfg.sessionID = sessionID }
}

func WithLogger(logger *slog.Logger) Option {
	return func(cfg *clientConfig) { cfg.logger = logger }
}

func WithTimeout(d time.Duration) Option {
	return func(cfg *clientConfig) { cfg.timeout = d }
}

// WithTransport replaces http.DefaultTransport underneath the lyra headers.
func WithTransport(rt http.RoundTripper) Option {
	return func(cfg *clientConfig) { cfg.transport = rt }
}

type request struct {
	method string
	path   string
	query  url.Values
	form   url.Values
}

func (c *Client) do(ctx context.Context, r request, result any) error {
	u := c.baseURL + r.path
	if len(r.query) > 0 {
		u += "?" + r.query.Encode()
	}

	var body io.Reader
	if r.form != nil {
		body = strings.NewReader(r.form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, r.method, u, body)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if r.form != nil {
		req.Header.Set(xhttp.ContentType, xhttp.FormURLEncoded)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.DebugContext(ctx, "lyra request failed",
			xslog.RequestGroup(req),
			xslog.ErrorGroup(err),
		)
		return fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.DebugContext(ctx, "lyra request",
		xslog.RequestGroup(req),
		xslog.ResponseGroup(resp.StatusCode, time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		attrs := []any{
			xslog.HTTPStatus(resp.StatusCode),
			xslog.RequestID(req.Header.Get(xhttp.XRequestID)),
		}
		if op, ok := xcontext.Operation(ctx); ok {
			attrs = append(attrs, xslog.Operation(op))
		}
		c.logger.WarnContext(ctx, "lyra api error", attrs...)
		return parseAPIError(resp)
	}

	if result != nil && resp.StatusCode != http.StatusNoContent {
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("reading response: %w", err)
		}
		if err := go_json.NewDecoder(bytes.NewReader(body)).Decode(result); err != nil {
			return fmt.Errorf("decoding response: %w\nbody: %s", err, string(body))
		}
	}

	return nil
}

type lyraTransport struct {
	base        http.RoundTripper
	tokenSource oauth2.TokenSource
	sessionID   string
}

var _ http.RoundTripper = (*lyraTransport)(nil)

func (t *lyraTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.tokenSource != nil {
		token, err := t.tokenSource.Token()
		if err != nil {
			return nil, fmt.Errorf("getting token: %w", err)
		}
		xhttp.SetRequestHeaderBearer(req, token.AccessToken)
	}

	xhttp.SetRequestHeaderJSON(req)
	if t.sessionID != "" {
		xhttp.SetRequestHeaderSessionID(req, t.sessionID)
	}

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("round trip: %w", err)
	}
	return resp, nil
}
