package toast

import (
	"strings"
	"testing"

	"github.com/garrettladley/lyra/internal/dashboard"
)

func TestStack(t *testing.T) {
	t.Parallel()

	notes := []dashboard.Notification{
		{ID: 1, Message: "oldest", Kind: dashboard.NotificationInfo},
		{ID: 2, Message: "middle", Kind: dashboard.NotificationError},
		{ID: 3, Message: "newest", Kind: dashboard.NotificationSuccess},
	}

	got := Stack(notes, 2)
	if strings.Contains(got, "oldest") {
		t.Errorf("Stack() kept a toast past the limit:\n%s", got)
	}
	if !strings.Contains(got, "middle") || !strings.Contains(got, "newest") {
		t.Errorf("Stack() dropped a recent toast:\n%s", got)
	}
	if strings.Index(got, "middle") > strings.Index(got, "newest") {
		t.Errorf("Stack() order wrong:\n%s", got)
	}

	if Stack(nil, 3) != "" {
		t.Error("Stack(nil) not empty")
	}
}

func TestRender_Truncates(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("x", 200)
	got := Render(dashboard.Notification{Message: long})
	if strings.Contains(got, long) {
		t.Error("Render() did not truncate a long message")
	}
	if !strings.Contains(got, "…") {
		t.Error("Render() missing ellipsis")
	}
}
