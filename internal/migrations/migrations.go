package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed sql/sqlite/*.sql sql/postgres/*.sql
var migrationsFS embed.FS

type Dialect struct {
	dir          string
	historyTable string
	appliedQuery string
	recordQuery  string
}

var (
	SQLite = Dialect{
		dir: "sql/sqlite",
		historyTable: `
			CREATE TABLE IF NOT EXISTS migrations_history (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				name TEXT NOT NULL UNIQUE,
				applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
			)`,
		appliedQuery: "SELECT COUNT(*) FROM migrations_history WHERE name = ?",
		recordQuery:  "INSERT INTO migrations_history (name) VALUES (?)",
	}
	Postgres = Dialect{
		dir: "sql/postgres",
		historyTable: `
			CREATE TABLE IF NOT EXISTS lyra_migrations_history (
				id SERIAL PRIMARY KEY,
				name TEXT NOT NULL UNIQUE,
				applied_at TIMESTAMPTZ DEFAULT NOW()
			)`,
		appliedQuery: "SELECT COUNT(*) FROM lyra_migrations_history WHERE name = $1",
		recordQuery:  "INSERT INTO lyra_migrations_history (name) VALUES ($1)",
	}
)

// Executor is the slice of a database handle the migrator needs.
type Executor interface {
	Exec(ctx context.Context, query string, args ...any) error
	Count(ctx context.Context, query string, args ...any) (int, error)
}

func ApplySQLite(ctx context.Context, db *sql.DB) error {
	return Apply(ctx, sqlExecutor{db: db}, SQLite)
}

func ApplyPostgres(ctx context.Context, pool *pgxpool.Pool) error {
	return Apply(ctx, pgxExecutor{pool: pool}, Postgres)
}

func Apply(ctx context.Context, db Executor, d Dialect) error {
	if err := db.Exec(ctx, d.historyTable); err != nil {
		return fmt.Errorf("creating migrations history table: %w", err)
	}

	files, err := Files(d)
	if err != nil {
		return err
	}

	for _, filename := range files {
		count, err := db.Count(ctx, d.appliedQuery, filename)
		if err != nil {
			return fmt.Errorf("checking if migration applied: %w", err)
		}
		if count > 0 {
			continue
		}

		content, err := fs.ReadFile(migrationsFS, path.Join(d.dir, filename))
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", filename, err)
		}

		for stmt := range strings.SplitSeq(string(content), ";") {
			stmt = strings.TrimSpace(stmt)
			if stmt == "" {
				continue
			}
			if err := db.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("failed to execute migration %s: %w", filename, err)
			}
		}

		if err := db.Exec(ctx, d.recordQuery, filename); err != nil {
			return fmt.Errorf("recording migration: %w", err)
		}
	}

	return nil
}

// Files returns the dialect's migration file names in apply order.
func Files(d Dialect) ([]string, error) {
	entries, err := fs.ReadDir(migrationsFS, d.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations directory: %w", err)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		files = append(files, entry.Name())
	}
	sort.Strings(files)
	return files, nil
}

type sqlExecutor struct {
	db *sql.DB
}

func (e sqlExecutor) Exec(ctx context.Context, query string, args ...any) error {
	_, err := e.db.ExecContext(ctx, query, args...)
	return err
}

func (e sqlExecutor) Count(ctx context.Context, query string, args ...any) (int, error) {
	var n int
	err := e.db.QueryRowContext(ctx, query, args...).Scan(&n)
	return n, err
}

type pgxExecutor struct {
	pool *pgxpool.Pool
}

func (e pgxExecutor) Exec(ctx context.Context, query string, args ...any) error {
	_, err := e.pool.Exec(ctx, query, args...)
	return err
}

func (e pgxExecutor) Count(ctx context.Context, query string, args ...any) (int, error) {
	var n int
	err := e.pool.QueryRow(ctx, query, args...).Scan(&n)
	return n, err
}
