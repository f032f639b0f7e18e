package migrations

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	_ "github.com/mattn/go-sqlite3"
)

func TestFiles(t *testing.T) {
	t.Parallel()

	for _, d := range []Dialect{SQLite, Postgres} {
		files, err := Files(d)
		if err != nil {
			t.Fatalf("Files(%s) error = %v", d.dir, err)
		}
		if diff := cmp.Diff([]string{"001_kv.sql"}, files); diff != "" {
			t.Errorf("Files(%s) mismatch (-want +got):\n%s", d.dir, diff)
		}
	}
}

func TestApplySQLite_Idempotent(t *testing.T) {
	t.Parallel()

	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "lyra.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	for range 2 {
		if err := ApplySQLite(ctx, db); err != nil {
			t.Fatalf("ApplySQLite() error = %v", err)
		}
	}

	var applied int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM migrations_history").Scan(&applied); err != nil {
		t.Fatal(err)
	}
	if applied != 1 {
		t.Errorf("migrations_history rows = %d, want 1", applied)
	}

	if _, err := db.ExecContext(ctx, "INSERT INTO kv (key, value) VALUES ('k', 'v')"); err != nil {
		t.Errorf("kv table not usable: %v", err)
	}
}
