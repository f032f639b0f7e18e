package dashboard

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/garrettladley/lyra/internal/scheduler"
)

const (
	routeWidgets   = "GET /dashboard/widgets"
	routeTicker    = "GET /dashboard/calendar-ticker"
	routeGenerate  = "POST /dashboard/quick-actions/generate-content"
	routeApprovals = "GET /dashboard/quick-actions/pending-approvals"
)

type response struct {
	status int
	body   string
}

// fakeBackend serves canned responses and records every request it sees.
type fakeBackend struct {
	t   *testing.T
	srv *httptest.Server

	mu        sync.Mutex
	responses map[string]response
	calls     []string
	queries   []string
	auth      []string
	hooks     map[string]func(r *http.Request)
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()

	b := &fakeBackend{
		t: t,
		responses: map[string]response{
			routeWidgets:   {http.StatusOK, widgetsJSON},
			routeTicker:    {http.StatusOK, tickerJSON},
			routeGenerate:  {http.StatusOK, generateJSON},
			routeApprovals: {http.StatusOK, approvalsJSON},
		},
		hooks: make(map[string]func(r *http.Request)),
	}
	b.srv = httptest.NewServer(http.HandlerFunc(b.serve))
	t.Cleanup(b.srv.Close)
	return b
}

func (b *fakeBackend) serve(w http.ResponseWriter, r *http.Request) {
	key := r.Method + " " + r.URL.Path

	b.mu.Lock()
	b.calls = append(b.calls, key)
	b.queries = append(b.queries, r.URL.RawQuery)
	b.auth = append(b.auth, r.Header.Get("Authorization"))
	resp, ok := b.responses[key]
	hook := b.hooks[key]
	b.mu.Unlock()

	if hook != nil {
		hook(r)
	}

	if !ok {
		if r.Method == http.MethodPut {
			resp = response{http.StatusOK, `{"message":"Content approved"}`}
		} else {
			resp = response{http.StatusNotFound, `{"detail":"Not Found"}`}
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.status)
	_, _ = io.WriteString(w, resp.body)
}

func (b *fakeBackend) respond(route string, status int, body string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.responses[route] = response{status, body}
}

func (b *fakeBackend) onRequest(route string, hook func(r *http.Request)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.hooks[route] = hook
}

func (b *fakeBackend) Calls() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.calls...)
}

func (b *fakeBackend) Queries() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.queries...)
}

func (b *fakeBackend) Auth() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.auth...)
}

func (b *fakeBackend) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls, b.queries, b.auth = nil, nil, nil
}

// fakeScheduler records timers instead of running them; Fire runs one by name.
type fakeScheduler struct {
	mu        sync.Mutex
	last      scheduler.Handle
	jobs      map[scheduler.Handle]fakeJob
	cancelled []scheduler.Handle
}

type fakeJob struct {
	name     string
	interval time.Duration
	job      scheduler.Job
}

func newFakeScheduler() *fakeScheduler {
	return &fakeScheduler{jobs: make(map[scheduler.Handle]fakeJob)}
}

func (s *fakeScheduler) Every(name string, interval time.Duration, job scheduler.Job) scheduler.Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last++
	s.jobs[s.last] = fakeJob{name: name, interval: interval, job: job}
	return s.last
}

func (s *fakeScheduler) Cancel(h scheduler.Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.jobs, h)
	s.cancelled = append(s.cancelled, h)
}

func (s *fakeScheduler) Active() map[string]time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]time.Duration, len(s.jobs))
	for _, j := range s.jobs {
		out[j.name] = j.interval
	}
	return out
}

func (s *fakeScheduler) Cancelled() []scheduler.Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]scheduler.Handle(nil), s.cancelled...)
}

func (s *fakeScheduler) Fire(ctx context.Context, name string) bool {
	s.mu.Lock()
	var job scheduler.Job
	for _, j := range s.jobs {
		if j.name == name {
			job = j.job
		}
	}
	s.mu.Unlock()

	if job == nil {
		return false
	}
	job(ctx)
	return true
}

type staticTokens struct {
	token string
	err   error
}

func (s staticTokens) Load(context.Context) (string, error) {
	return s.token, s.err
}

type fixture struct {
	backend *fakeBackend
	sched   *fakeScheduler
	page    *Page
	dash    *Dashboard
}

func newFixture(t *testing.T, elements []ElementID, tokens TokenLoader) *fixture {
	t.Helper()

	backend := newFakeBackend(t)
	sched := newFakeScheduler()
	page := NewPage(elements, WithLocation(time.UTC))
	dash := New(page, tokens, sched,
		WithBaseURL(backend.srv.URL),
		WithLogger(slog.New(slog.DiscardHandler)),
		WithRequestTimeout(5*time.Second),
	)

	return &fixture{backend: backend, sched: sched, page: page, dash: dash}
}

// initialized returns a fixture whose dashboard has completed Init.
func initialized(t *testing.T, elements []ElementID) *fixture {
	t.Helper()

	f := newFixture(t, elements, nil)
	if err := f.dash.Init(context.Background(), "tok"); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	f.backend.Reset()
	return f
}

func notificationMessages(p *Page) []string {
	notes := p.Notifications()
	out := make([]string, 0, len(notes))
	for _, n := range notes {
		out = append(out, n.Message)
	}
	return out
}

const widgetsJSON = `{"widgets":{
	"content_stats":{"total_generated":42,"this_week":7,"approved":30,"approval_rate":71.4},
	"quick_stats":{"pending_approval":3,"platforms_active":2},
	"upcoming_posts":[
		{"platform":"twitter","hours_until":1,"days_until":0},
		{"platform":"linkedin","hours_until":30,"days_until":1}
	]
}}`

const tickerJSON = `{
	"ticker_items":[
		{"platform":"twitter","content_preview":"Launch day","countdown":{"days":0,"hours":0,"minutes":45,"total_minutes":45}},
		{"platform":"linkedin","content_preview":"Hiring","countdown":{"days":0,"hours":5,"minutes":0,"total_minutes":300}}
	],
	"next_post":{"platform":"twitter","content_preview":"Launch day","countdown":{"days":0,"hours":0,"minutes":45,"total_minutes":45}},
	"total_upcoming":2
}`

const generateJSON = `{"message":"Content generated successfully","platform":"twitter","content_preview":"Big news"}`

const approvalsJSON = `{
	"pending_approvals":[
		{"id":5,"platform":"twitter","content_type":"post","created_at":"2025-02-10T08:00:00","content_preview":"Draft"}
	],
	"total_pending":1
}`
