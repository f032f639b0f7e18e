package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/sync/errgroup"

	"github.com/garrettladley/lyra/internal/client/lyra"
	"github.com/garrettladley/lyra/internal/scheduler"
	"github.com/garrettladley/lyra/internal/xcontext"
	"github.com/garrettladley/lyra/internal/xslog"
)

var (
	ErrNoToken        = errors.New("no auth token found")
	ErrNotInitialized = errors.New("dashboard not initialized")
	ErrNoContainer    = errors.New("page has no dashboard container")
	ErrNoScheduler    = errors.New("no scheduler configured")
)

const (
	DefaultRefreshInterval   = 5 * time.Minute
	DefaultCountdownInterval = time.Minute
	DefaultDaysAhead         = 7
)

const (
	timerRefresh   = "widgets-refresh"
	timerCountdown = "countdown-refresh"
)

const (
	msgInitialized     = "Enhanced dashboard loaded! All systems ready."
	msgInitFailed      = "Failed to load enhanced dashboard. Please refresh the page."
	msgWidgetsFailed   = "Failed to load dashboard statistics"
	msgTickerFailed    = "Failed to load upcoming posts"
	msgGenerateFailed  = "Content generation failed. Please try again."
	msgApprovalsFailed = "Failed to load pending approvals"
	msgApproved        = "Content approved successfully!"
	msgApproveFailed   = "Failed to approve content"
)

type Scheduler interface {
	Every(name string, interval time.Duration, job scheduler.Job) scheduler.Handle
	Cancel(h scheduler.Handle)
}

type TokenLoader interface {
	Load(ctx context.Context) (string, error)
}

// Dashboard keeps a Page in sync with the backend. Every operation reports
// failures through logs and toasts; none of them return backend errors.
type Dashboard struct {
	page   *Page
	tokens TokenLoader
	sched  Scheduler
	logger *slog.Logger
	cfg    config

	mu             sync.Mutex
	token          string
	api            *lyra.Client
	refreshTimer   scheduler.Handle
	countdownTimer scheduler.Handle
	initialized    bool
	handlers       map[ElementID]func(context.Context)
	closers        map[ElementID]bool

	widgetsSeq   sequence
	tickerSeq    sequence
	approvalsSeq sequence
}

type config struct {
	baseURL           string
	refreshInterval   time.Duration
	countdownInterval time.Duration
	daysAhead         int
	requestTimeout    time.Duration
	sessionID         string
	transport         http.RoundTripper
}

type Option func(*Dashboard)

func WithBaseURL(baseURL string) Option {
	return func(d *Dashboard) { d.cfg.baseURL = baseURL }
}

func WithRefreshInterval(interval time.Duration) Option {
	return func(d *Dashboard) { d.cfg.refreshInterval = interval }
}

func WithCountdownInterval(interval time.Duration) Option {
	return func(d *Dashboard) { d.cfg.countdownInterval = interval }
}

func WithDaysAhead(days int) Option {
	return func(d *Dashboard) { d.cfg.daysAhead = days }
}

func WithRequestTimeout(timeout time.Duration) Option {
	return func(d *Dashboard) { d.cfg.requestTimeout = timeout }
}

func WithSessionID(sessionID string) Option {
	return func(d *Dashboard) { d.cfg.sessionID = sessionID }
}

func WithTransport(rt http.RoundTripper) Option {
	return func(d *Dashboard) { d.cfg.transport = rt }
}

func WithLogger(logger *slog.Logger) Option {
	return func(d *Dashboard) { d.logger = logger }
}

func New(page *Page, tokens TokenLoader, sched Scheduler, opts ...Option) *Dashboard {
	d := &Dashboard{
		page:   page,
		tokens: tokens,
		sched:  sched,
		logger: slog.Default(),
		cfg: config{
			baseURL:           lyra.DefaultBaseURL,
			refreshInterval:   DefaultRefreshInterval,
			countdownInterval: DefaultCountdownInterval,
			daysAhead:         DefaultDaysAhead,
		},
		handlers: make(map[ElementID]func(context.Context)),
		closers:  make(map[ElementID]bool),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Dashboard) Page() *Page {
	return d.page
}

func (d *Dashboard) DaysAhead() int {
	return d.cfg.daysAhead
}

// Init uses token, falling back to the token store. Without a token it
// returns ErrNoToken and touches nothing.
func (d *Dashboard) Init(ctx context.Context, token string) (err error) {
	d.logger.InfoContext(ctx, "initializing dashboard")

	if token == "" {
		token = d.storedToken(ctx)
	}
	if token == "" {
		d.logger.WarnContext(ctx, "no auth token found; log in to use the dashboard")
		return ErrNoToken
	}

	d.mu.Lock()
	d.token = token
	d.api = d.newClient(token)
	d.mu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			d.logger.ErrorContext(ctx, "panic during dashboard init", xslog.ErrorAny(r), xslog.Stack())
			err = fmt.Errorf("initializing dashboard: %v", r)
		}
		if err != nil {
			d.logger.ErrorContext(ctx, "failed to initialize dashboard", xslog.Error(err))
			d.page.ShowNotification(msgInitFailed, NotificationError)
		}
	}()

	d.LoadDashboardWidgets(ctx)
	d.LoadCalendarTicker(ctx, d.cfg.daysAhead)

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("initializing dashboard: %w", err)
	}

	d.SetupEventHandlers()

	if err := d.StartAutoRefresh(); err != nil {
		return fmt.Errorf("starting auto refresh: %w", err)
	}

	d.mu.Lock()
	d.initialized = true
	d.mu.Unlock()

	d.logger.InfoContext(ctx, "dashboard initialized")
	d.page.ShowNotification(msgInitialized, NotificationSuccess)
	return nil
}

// AutoInit initializes only when the page hosts the dashboard and a token is stored.
func (d *Dashboard) AutoInit(ctx context.Context) error {
	if !d.page.Has(ElementContainer) {
		return ErrNoContainer
	}
	token := d.storedToken(ctx)
	if token == "" {
		return ErrNoToken
	}
	return d.Init(ctx, token)
}

func (d *Dashboard) storedToken(ctx context.Context) string {
	if d.tokens == nil {
		return ""
	}
	token, err := d.tokens.Load(ctx)
	if err != nil {
		d.logger.DebugContext(ctx, "no stored token", xslog.Error(err))
		return ""
	}
	return token
}

func (d *Dashboard) newClient(token string) *lyra.Client {
	opts := []lyra.Option{
		lyra.WithBaseURL(d.cfg.baseURL),
		lyra.WithLogger(d.logger),
		lyra.WithTimeout(d.cfg.requestTimeout),
	}
	if d.cfg.sessionID != "" {
		opts = append(opts, lyra.WithSessionID(d.cfg.sessionID))
	}
	if d.cfg.transport != nil {
		opts = append(opts, lyra.WithTransport(d.cfg.transport))
	}
	return lyra.New(oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}), opts...)
}

func (d *Dashboard) client() (*lyra.Client, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.api == nil {
		return nil, ErrNotInitialized
	}
	return d.api, nil
}

func (d *Dashboard) Initialized() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.initialized
}

func (d *Dashboard) fail(ctx context.Context, msg string, toast string, err error, attrs ...any) {
	d.logger.ErrorContext(ctx, msg, append([]any{xslog.Error(err)}, attrs...)...)
	d.page.ShowNotification(toast, NotificationError)
}

func (d *Dashboard) LoadDashboardWidgets(ctx context.Context) {
	ctx = xcontext.WithOperation(ctx, "widgets")
	api, err := d.client()
	if err != nil {
		d.fail(ctx, "failed to load dashboard widgets", msgWidgetsFailed, err)
		return
	}

	seq := d.widgetsSeq.next()
	resp, err := api.Dashboard.Widgets(ctx)
	if err != nil {
		d.fail(ctx, "failed to load dashboard widgets", msgWidgetsFailed, err, xslog.Seq(seq))
		return
	}

	w := resp.Widgets
	applied := d.widgetsSeq.apply(seq, func() {
		d.page.UpdateElement(ElementTotalContent, formatNumber(w.ContentStats.TotalGenerated))
		d.page.UpdateElement(ElementThisWeek, formatNumber(w.ContentStats.ThisWeek))
		d.page.UpdateElement(ElementApprovedContent, formatNumber(w.ContentStats.Approved))
		d.page.UpdateElement(ElementApprovalRate, formatPercent(w.ContentStats.ApprovalRate))
		d.page.UpdateElement(ElementPendingCount, formatNumber(w.QuickStats.PendingApproval))
		d.page.UpdateElement(ElementPlatformsActive, formatNumber(w.QuickStats.PlatformsActive))
		d.page.UpdateUpcomingPosts(w.UpcomingPosts)
	})
	if !applied {
		d.logger.DebugContext(ctx, "dropped stale widgets response", xslog.Seq(seq))
		return
	}

	d.logger.DebugContext(ctx, "dashboard widgets updated", xslog.Seq(seq))
}

func (d *Dashboard) LoadCalendarTicker(ctx context.Context, daysAhead int) {
	ctx = xcontext.WithOperation(ctx, "calendar-ticker")
	api, err := d.client()
	if err != nil {
		d.fail(ctx, "failed to load calendar ticker", msgTickerFailed, err)
		return
	}

	seq := d.tickerSeq.next()
	resp, err := api.Dashboard.CalendarTicker(ctx, daysAhead)
	if err != nil {
		d.fail(ctx, "failed to load calendar ticker", msgTickerFailed, err, xslog.Seq(seq), xslog.DaysAhead(daysAhead))
		return
	}

	applied := d.tickerSeq.apply(seq, func() {
		d.page.UpdateCalendarTicker(resp.TickerItems, resp.NextPost, daysAhead)
	})
	if !applied {
		d.logger.DebugContext(ctx, "dropped stale ticker response", xslog.Seq(seq))
		return
	}

	d.logger.DebugContext(ctx, "calendar ticker updated",
		xslog.Count(int(resp.TotalUpcoming)),
		xslog.Seq(seq),
	)
}

// UpdateCountdownTimers reloads the ticker; countdowns are computed server side.
func (d *Dashboard) UpdateCountdownTimers(ctx context.Context) {
	d.LoadCalendarTicker(ctx, d.cfg.daysAhead)
}

// RefreshAll reloads every widget concurrently, including the approvals
// list when its modal is open.
func (d *Dashboard) RefreshAll(ctx context.Context) {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		d.LoadDashboardWidgets(ctx)
		return nil
	})
	g.Go(func() error {
		d.LoadCalendarTicker(ctx, d.cfg.daysAhead)
		return nil
	})
	if d.page.IsModalOpen(ElementApprovalsModal) {
		g.Go(func() error {
			d.LoadPendingApprovals(ctx)
			return nil
		})
	}

	_ = g.Wait()
}

func (d *Dashboard) QuickGenerateContent(ctx context.Context) {
	button, ok := d.page.Button(ElementGenerateButton)
	if !ok {
		return
	}

	api, err := d.client()
	if err != nil {
		d.fail(ctx, "quick generation failed", msgGenerateFailed, err)
		return
	}

	if !d.page.claimButton(ElementGenerateButton, LabelGenerating) {
		d.logger.DebugContext(ctx, "generation already in progress")
		return
	}
	defer d.page.releaseButton(ElementGenerateButton, button.Label)

	resp, err := api.Actions.GenerateContent(xcontext.WithOperation(ctx, "generate-content"))
	if err != nil {
		d.fail(ctx, "quick generation failed", msgGenerateFailed, err)
		return
	}

	if resp.Succeeded() {
		d.page.ShowNotification(
			"New "+resp.Platform+" content generated! Preview: "+resp.ContentPreview,
			NotificationSuccess,
		)

		d.LoadDashboardWidgets(ctx)

		if d.page.IsModalOpen(ElementApprovalsModal) {
			d.LoadPendingApprovals(ctx)
		}
	}

	d.logger.InfoContext(ctx, "content generated",
		xslog.Platform(resp.Platform),
		slog.String("message", resp.Message),
	)
}

func (d *Dashboard) LoadPendingApprovals(ctx context.Context) {
	ctx = xcontext.WithOperation(ctx, "pending-approvals")
	api, err := d.client()
	if err != nil {
		d.fail(ctx, "failed to load pending approvals", msgApprovalsFailed, err)
		return
	}

	seq := d.approvalsSeq.next()
	resp, err := api.Actions.PendingApprovals(ctx)
	if err != nil {
		d.fail(ctx, "failed to load pending approvals", msgApprovalsFailed, err, xslog.Seq(seq))
		return
	}

	applied := d.approvalsSeq.apply(seq, func() {
		d.page.UpdateElement(ElementPendingCount, formatNumber(resp.TotalPending))
		d.page.UpdatePendingApprovalsList(resp.PendingApprovals)
		d.page.ShowModal(ElementApprovalsModal)
	})
	if !applied {
		d.logger.DebugContext(ctx, "dropped stale approvals response", xslog.Seq(seq))
		return
	}

	d.logger.DebugContext(ctx, "pending approvals loaded", xslog.Count(int(resp.TotalPending)))
}

func (d *Dashboard) ApproveContent(ctx context.Context, id int64) {
	api, err := d.client()
	if err != nil {
		d.fail(ctx, "failed to approve content", msgApproveFailed, err, xslog.ContentID(id))
		return
	}

	if err := api.Content.Approve(xcontext.WithOperation(ctx, "approve"), id); err != nil {
		d.fail(ctx, "failed to approve content", msgApproveFailed, err, xslog.ContentID(id))
		return
	}

	d.logger.InfoContext(ctx, "content approved", xslog.ContentID(id))
	d.page.ShowNotification(msgApproved, NotificationSuccess)

	d.LoadPendingApprovals(ctx)
	d.LoadDashboardWidgets(ctx)
}

func (d *Dashboard) EditContent(id int64) {
	d.logger.Info("editing content", xslog.ContentID(id))
	d.page.ShowNotification("Opening content editor for item #"+strconv.FormatInt(id, 10)+"...", NotificationInfo)
}

func (d *Dashboard) ViewFullContent(id int64) {
	d.logger.Info("viewing content", xslog.ContentID(id))
	d.page.ShowNotification("Opening full preview for content #"+strconv.FormatInt(id, 10)+"...", NotificationInfo)
}

// SetupEventHandlers binds the buttons and modal close actions that exist on the page.
func (d *Dashboard) SetupEventHandlers() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.page.Has(ElementGenerateButton) {
		d.handlers[ElementGenerateButton] = d.QuickGenerateContent
	}
	if d.page.Has(ElementApprovalsButton) {
		d.handlers[ElementApprovalsButton] = d.LoadPendingApprovals
	}
	for _, id := range d.page.Modals() {
		d.closers[id] = true
	}

	d.logger.Debug("event handlers set up", xslog.Count(len(d.handlers)+len(d.closers)))
}

// Click dispatches a press on id. Unbound elements and disabled buttons ignore it.
func (d *Dashboard) Click(ctx context.Context, id ElementID) {
	d.mu.Lock()
	handler, ok := d.handlers[id]
	d.mu.Unlock()
	if !ok {
		return
	}

	if b, ok := d.page.Button(id); ok && b.Disabled {
		d.logger.DebugContext(ctx, "ignored click on disabled button", xslog.Element(string(id)))
		return
	}

	handler(ctx)
}

func (d *Dashboard) CloseModal(id ElementID) {
	d.mu.Lock()
	bound := d.closers[id]
	d.mu.Unlock()
	if bound {
		d.page.HideModal(id)
	}
}

// StartAutoRefresh schedules the widget and countdown timers, replacing any
// pair that is already running.
func (d *Dashboard) StartAutoRefresh() error {
	if d.sched == nil {
		return ErrNoScheduler
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopLocked()

	d.refreshTimer = d.sched.Every(timerRefresh, d.cfg.refreshInterval, func(ctx context.Context) {
		xslog.FromContext(ctx).DebugContext(ctx, "auto-refreshing dashboard")
		d.LoadDashboardWidgets(ctx)
	})
	d.countdownTimer = d.sched.Every(timerCountdown, d.cfg.countdownInterval, d.UpdateCountdownTimers)

	d.logger.Debug("auto-refresh timers started",
		xslog.Interval(d.cfg.refreshInterval),
		slog.Duration("countdown_interval", d.cfg.countdownInterval),
	)
	return nil
}

func (d *Dashboard) StopAutoRefresh() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()
}

func (d *Dashboard) stopLocked() {
	if d.sched == nil {
		return
	}
	if d.refreshTimer != 0 {
		d.sched.Cancel(d.refreshTimer)
		d.refreshTimer = 0
	}
	if d.countdownTimer != 0 {
		d.sched.Cancel(d.countdownTimer)
		d.countdownTimer = 0
	}
}

// Timers returns the live refresh and countdown handles; zero means stopped.
func (d *Dashboard) Timers() (refresh scheduler.Handle, countdown scheduler.Handle) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.refreshTimer, d.countdownTimer
}

func (d *Dashboard) Destroy() {
	d.StopAutoRefresh()

	d.mu.Lock()
	d.initialized = false
	d.mu.Unlock()

	d.logger.Info("dashboard cleaned up")
}
