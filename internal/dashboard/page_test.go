package dashboard

import (
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/garrettladley/lyra/internal/client/lyra"
)

func TestPage_AbsentElements(t *testing.T) {
	t.Parallel()

	p := NewPage([]ElementID{ElementTotalContent})

	p.UpdateElement(ElementThisWeek, "7")
	p.UpdateUpcomingPosts([]lyra.UpcomingPost{{Platform: "x"}})
	p.UpdateCalendarTicker([]lyra.TickerItem{{Platform: "x"}}, nil, 7)
	p.UpdatePendingApprovalsList([]lyra.PendingApproval{{ID: 1}})
	p.ShowModal(ElementApprovalsModal)

	snap := p.Snapshot()
	if len(snap.Text) != 0 {
		t.Errorf("Text = %v, want empty", snap.Text)
	}
	if !snap.Upcoming.Empty() || !snap.Ticker.Empty() || !snap.Approvals.Empty() {
		t.Error("absent list elements were rendered")
	}
	if p.IsModalOpen(ElementApprovalsModal) {
		t.Error("absent modal reported open")
	}
	if _, ok := p.Button(ElementGenerateButton); ok {
		t.Error("absent button reported present")
	}

	p.UpdateElement(ElementTotalContent, "42")
	if got := p.Text(ElementTotalContent); got != "42" {
		t.Errorf("Text() = %q, want 42", got)
	}
}

func TestPage_Modals(t *testing.T) {
	t.Parallel()

	p := NewPage(AllElements())

	if diff := cmp.Diff([]ElementID{ElementApprovalsModal}, p.Modals()); diff != "" {
		t.Errorf("Modals() mismatch (-want +got):\n%s", diff)
	}

	p.ShowModal(ElementApprovalsModal)
	if !p.IsModalOpen(ElementApprovalsModal) {
		t.Error("modal closed after ShowModal")
	}
	p.HideModal(ElementApprovalsModal)
	if p.IsModalOpen(ElementApprovalsModal) {
		t.Error("modal open after HideModal")
	}

	p.ShowModal(ElementTotalContent)
	if p.IsModalOpen(ElementTotalContent) {
		t.Error("non-modal element opened")
	}
}

func TestPage_NotificationExpiry(t *testing.T) {
	t.Parallel()

	var (
		mu  sync.Mutex
		now = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	)
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}
	advance := func(d time.Duration) {
		mu.Lock()
		defer mu.Unlock()
		now = now.Add(d)
	}

	p := NewPage(AllElements(), WithClock(clock))

	first := p.ShowNotification("first", NotificationInfo)
	advance(3 * time.Second)
	p.ShowNotification("second", NotificationError)

	if got := len(p.Notifications()); got != 2 {
		t.Fatalf("len(Notifications()) = %d, want 2", got)
	}

	advance(2 * time.Second)
	got := p.Notifications()
	if len(got) != 1 || got[0].Message != "second" {
		t.Fatalf("Notifications() = %+v, want only second", got)
	}

	if !p.Prune() {
		t.Error("Prune() = false, want the expired toast removed")
	}
	if p.Prune() {
		t.Error("second Prune() = true")
	}

	p.DismissNotification(first.ID)
	p.DismissNotification(got[0].ID)
	if n := len(p.Notifications()); n != 0 {
		t.Errorf("len(Notifications()) = %d after dismiss, want 0", n)
	}
}

func TestPage_Changes(t *testing.T) {
	t.Parallel()

	p := NewPage(AllElements())

	select {
	case <-p.Changes():
		t.Fatal("change signalled before any write")
	default:
	}

	p.UpdateElement(ElementTotalContent, "1")
	p.UpdateElement(ElementTotalContent, "2")

	select {
	case <-p.Changes():
	default:
		t.Fatal("no change signalled after write")
	}

	select {
	case <-p.Changes():
		t.Fatal("signals did not coalesce")
	default:
	}
}

func TestPage_ClaimButton(t *testing.T) {
	t.Parallel()

	p := NewPage(AllElements())

	if !p.claimButton(ElementGenerateButton, LabelGenerating) {
		t.Fatal("first claim failed")
	}
	if p.claimButton(ElementGenerateButton, LabelGenerating) {
		t.Fatal("second claim succeeded on a disabled button")
	}

	p.releaseButton(ElementGenerateButton, LabelGenerate)
	b, _ := p.Button(ElementGenerateButton)
	if diff := cmp.Diff(Button{Label: LabelGenerate}, b); diff != "" {
		t.Errorf("button mismatch (-want +got):\n%s", diff)
	}
}

func TestSequence(t *testing.T) {
	t.Parallel()

	var s sequence
	older, newer := s.next(), s.next()

	var applied []uint64
	if !s.apply(newer, func() { applied = append(applied, newer) }) {
		t.Error("newer response rejected")
	}
	if s.apply(older, func() { applied = append(applied, older) }) {
		t.Error("older response applied after newer")
	}
	if s.apply(newer, func() {}) {
		t.Error("same response applied twice")
	}
	if diff := cmp.Diff([]uint64{newer}, applied); diff != "" {
		t.Errorf("applied mismatch (-want +got):\n%s", diff)
	}
}
