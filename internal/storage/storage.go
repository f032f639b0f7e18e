package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var ErrNotFound = errors.New("key not found")

// KeyAuthToken is the key the dashboard token lives under in every backend.
const KeyAuthToken = "authToken"

type Store interface {
	// Get returns ErrNotFound when key has no value.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	// Delete is a no-op for a missing key.
	Delete(ctx context.Context, key string) error
	Close() error
}

const (
	schemeMemory     = "memory"
	schemeSQLite     = "sqlite"
	schemeRedis      = "redis"
	schemeRedisTLS   = "rediss"
	schemePostgres   = "postgres"
	schemePostgreSQL = "postgresql"
)

// Open picks a backend from the DSN scheme. A DSN without a scheme is a sqlite file path.
func Open(ctx context.Context, dsn string) (Store, error) {
	switch scheme := Scheme(dsn); scheme {
	case schemeMemory:
		return NewMemoryStore(), nil
	case schemeSQLite:
		return OpenSQLite(ctx, strings.TrimPrefix(strings.TrimPrefix(dsn, schemeSQLite+"://"), schemeSQLite+":"))
	case schemeRedis, schemeRedisTLS:
		return OpenRedis(ctx, dsn)
	case schemePostgres, schemePostgreSQL:
		return OpenPostgres(ctx, dsn)
	default:
		return nil, fmt.Errorf("unsupported store scheme %q", scheme)
	}
}

func Scheme(dsn string) string {
	scheme, _, found := strings.Cut(dsn, ":")
	if !found || len(scheme) <= 1 {
		// bare paths, including windows drive letters
		return schemeSQLite
	}
	return strings.ToLower(scheme)
}
