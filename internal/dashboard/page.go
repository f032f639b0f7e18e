package dashboard

import (
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/garrettladley/lyra/internal/client/lyra"
)

// NotificationTTL is how long a toast stays visible.
const NotificationTTL = 5 * time.Second

type NotificationKind uint8

const (
	NotificationInfo NotificationKind = iota
	NotificationSuccess
	NotificationError
)

func (k NotificationKind) String() string {
	switch k {
	case NotificationSuccess:
		return "success"
	case NotificationError:
		return "error"
	default:
		return "info"
	}
}

type Notification struct {
	ID        uint64
	Message   string
	Kind      NotificationKind
	CreatedAt time.Time
}

type Button struct {
	Label    string
	Disabled bool
}

// Page is the view model the dashboard renders into. Writes that target an
// element the page was not built with are dropped. Safe for concurrent use.
type Page struct {
	mu sync.RWMutex

	present   map[ElementID]struct{}
	text      map[ElementID]string
	buttons   map[ElementID]Button
	open      map[ElementID]bool
	upcoming  UpcomingView
	ticker    TickerView
	approvals ApprovalsView

	notifications []Notification
	lastNoteID    uint64

	now      func() time.Time
	location *time.Location
	changes  chan struct{}
}

type PageOption func(*Page)

// WithClock replaces time.Now for toast timestamps and expiry.
func WithClock(now func() time.Time) PageOption {
	return func(p *Page) { p.now = now }
}

// WithLocation sets the zone approval dates are shown in.
func WithLocation(loc *time.Location) PageOption {
	return func(p *Page) { p.location = loc }
}

func NewPage(elements []ElementID, opts ...PageOption) *Page {
	p := &Page{
		present:  make(map[ElementID]struct{}, len(elements)),
		text:     make(map[ElementID]string),
		buttons:  make(map[ElementID]Button),
		open:     make(map[ElementID]bool),
		now:      time.Now,
		location: time.Local,
		changes:  make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(p)
	}

	for _, id := range elements {
		p.present[id] = struct{}{}
		if id.IsButton() {
			p.buttons[id] = Button{Label: defaultLabel(id)}
		}
		if id.IsModal() {
			p.open[id] = false
		}
	}
	return p
}

// Changes receives a value after any visible mutation. Signals coalesce.
func (p *Page) Changes() <-chan struct{} {
	return p.changes
}

func (p *Page) notify() {
	select {
	case p.changes <- struct{}{}:
	default:
	}
}

func (p *Page) Has(id ElementID) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.has(id)
}

func (p *Page) has(id ElementID) bool {
	_, ok := p.present[id]
	return ok
}

func (p *Page) UpdateElement(id ElementID, content string) {
	p.mu.Lock()
	if !p.has(id) {
		p.mu.Unlock()
		return
	}
	if id.IsButton() {
		b := p.buttons[id]
		b.Label = content
		p.buttons[id] = b
	} else {
		p.text[id] = content
	}
	p.mu.Unlock()
	p.notify()
}

func (p *Page) Text(id ElementID) string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.text[id]
}

func (p *Page) Button(id ElementID) (Button, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	b, ok := p.buttons[id]
	return b, ok
}

// claimButton disables an enabled button and relabels it. It reports false
// when the button is absent or already disabled.
func (p *Page) claimButton(id ElementID, label string) bool {
	p.mu.Lock()
	b, ok := p.buttons[id]
	if !ok || b.Disabled {
		p.mu.Unlock()
		return false
	}
	p.buttons[id] = Button{Label: label, Disabled: true}
	p.mu.Unlock()
	p.notify()
	return true
}

func (p *Page) releaseButton(id ElementID, label string) {
	p.mu.Lock()
	if _, ok := p.buttons[id]; !ok {
		p.mu.Unlock()
		return
	}
	p.buttons[id] = Button{Label: label}
	p.mu.Unlock()
	p.notify()
}

func (p *Page) UpdateUpcomingPosts(posts []lyra.UpcomingPost) {
	view := renderUpcoming(posts)

	p.mu.Lock()
	if !p.has(ElementUpcomingPosts) {
		p.mu.Unlock()
		return
	}
	p.upcoming = view
	p.mu.Unlock()
	p.notify()
}

func (p *Page) UpdateCalendarTicker(items []lyra.TickerItem, next *lyra.TickerItem, daysAhead int) {
	view := renderTicker(items, next, daysAhead)

	p.mu.Lock()
	if !p.has(ElementCalendarTicker) {
		p.mu.Unlock()
		return
	}
	p.ticker = view
	p.mu.Unlock()
	p.notify()
}

func (p *Page) UpdatePendingApprovalsList(items []lyra.PendingApproval) {
	p.mu.Lock()
	if !p.has(ElementApprovalsList) {
		p.mu.Unlock()
		return
	}
	p.approvals = renderApprovals(items, p.location)
	p.mu.Unlock()
	p.notify()
}

func (p *Page) ShowModal(id ElementID) {
	p.setModal(id, true)
}

func (p *Page) HideModal(id ElementID) {
	p.setModal(id, false)
}

func (p *Page) setModal(id ElementID, open bool) {
	p.mu.Lock()
	if _, ok := p.open[id]; !ok || !p.has(id) {
		p.mu.Unlock()
		return
	}
	p.open[id] = open
	p.mu.Unlock()
	p.notify()
}

func (p *Page) IsModalOpen(id ElementID) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.open[id]
}

// Modals returns the modal elements present on the page.
func (p *Page) Modals() []ElementID {
	p.mu.RLock()
	defer p.mu.RUnlock()
	ids := slices.Collect(maps.Keys(p.open))
	slices.Sort(ids)
	return ids
}

// ShowNotification appends a toast. The toast container always exists.
func (p *Page) ShowNotification(message string, kind NotificationKind) Notification {
	p.mu.Lock()
	p.pruneLocked()
	p.lastNoteID++
	n := Notification{
		ID:        p.lastNoteID,
		Message:   message,
		Kind:      kind,
		CreatedAt: p.now(),
	}
	p.notifications = append(p.notifications, n)
	p.mu.Unlock()
	p.notify()
	return n
}

func (p *Page) DismissNotification(id uint64) {
	p.mu.Lock()
	before := len(p.notifications)
	p.notifications = slices.DeleteFunc(p.notifications, func(n Notification) bool { return n.ID == id })
	changed := len(p.notifications) != before
	p.mu.Unlock()
	if changed {
		p.notify()
	}
}

// Notifications returns the toasts that have not yet expired, oldest first.
func (p *Page) Notifications() []Notification {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.visibleLocked()
}

// Prune drops expired toasts and reports whether any were removed.
func (p *Page) Prune() bool {
	p.mu.Lock()
	removed := p.pruneLocked()
	p.mu.Unlock()
	if removed {
		p.notify()
	}
	return removed
}

func (p *Page) pruneLocked() bool {
	before := len(p.notifications)
	p.notifications = p.visibleLocked()
	return len(p.notifications) != before
}

func (p *Page) visibleLocked() []Notification {
	now := p.now()
	out := make([]Notification, 0, len(p.notifications))
	for _, n := range p.notifications {
		if now.Sub(n.CreatedAt) < NotificationTTL {
			out = append(out, n)
		}
	}
	return out
}

type Snapshot struct {
	Present       map[ElementID]bool
	Text          map[ElementID]string
	Buttons       map[ElementID]Button
	OpenModals    map[ElementID]bool
	Upcoming      UpcomingView
	Ticker        TickerView
	Approvals     ApprovalsView
	Notifications []Notification
}

// Snapshot copies the page for a renderer.
func (p *Page) Snapshot() Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()

	present := make(map[ElementID]bool, len(p.present))
	for id := range p.present {
		present[id] = true
	}

	return Snapshot{
		Present:       present,
		Text:          maps.Clone(p.text),
		Buttons:       maps.Clone(p.buttons),
		OpenModals:    maps.Clone(p.open),
		Upcoming:      cloneUpcoming(p.upcoming),
		Ticker:        cloneTicker(p.ticker),
		Approvals:     cloneApprovals(p.approvals),
		Notifications: p.visibleLocked(),
	}
}

func (s Snapshot) Has(id ElementID) bool {
	return s.Present[id]
}

func cloneUpcoming(v UpcomingView) UpcomingView {
	v.Entries = slices.Clone(v.Entries)
	return v
}

func cloneTicker(v TickerView) TickerView {
	v.Entries = slices.Clone(v.Entries)
	return v
}

func cloneApprovals(v ApprovalsView) ApprovalsView {
	v.Entries = slices.Clone(v.Entries)
	return v
}
