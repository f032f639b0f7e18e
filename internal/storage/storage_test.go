package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func TestScheme(t *testing.T) {
	t.Parallel()

	tests := []struct {
		dsn  string
		want string
	}{
		{dsn: "/home/me/.config/lyra/lyra.db", want: "sqlite"},
		{dsn: "lyra.db", want: "sqlite"},
		{dsn: `C:\lyra\lyra.db`, want: "sqlite"},
		{dsn: "sqlite:///tmp/lyra.db", want: "sqlite"},
		{dsn: "memory://", want: "memory"},
		{dsn: "redis://localhost:6379/0", want: "redis"},
		{dsn: "rediss://cache.example.com:6380", want: "rediss"},
		{dsn: "postgres://lyra@localhost/lyra", want: "postgres"},
		{dsn: "POSTGRESQL://lyra@localhost/lyra", want: "postgresql"},
	}

	for _, tt := range tests {
		t.Run(tt.dsn, func(t *testing.T) {
			t.Parallel()
			if got := Scheme(tt.dsn); got != tt.want {
				t.Errorf("Scheme(%q) = %q, want %q", tt.dsn, got, tt.want)
			}
		})
	}
}

func TestOpen_Unsupported(t *testing.T) {
	t.Parallel()

	if _, err := Open(context.Background(), "mongodb://localhost"); err == nil {
		t.Fatal("Open() error = nil, want unsupported scheme")
	}
}

func TestStores(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		open func(t *testing.T) Store
	}{
		{
			name: "memory",
			open: func(t *testing.T) Store {
				return NewMemoryStore()
			},
		},
		{
			name: "sqlite",
			open: func(t *testing.T) Store {
				s, err := Open(context.Background(), filepath.Join(t.TempDir(), "nested", "lyra.db"))
				if err != nil {
					t.Fatalf("Open() error = %v", err)
				}
				return s
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()
			s := tt.open(t)
			t.Cleanup(func() { _ = s.Close() })

			if _, err := s.Get(ctx, KeyAuthToken); !errors.Is(err, ErrNotFound) {
				t.Fatalf("Get() on empty store error = %v, want ErrNotFound", err)
			}

			if err := s.Set(ctx, KeyAuthToken, "first"); err != nil {
				t.Fatalf("Set() error = %v", err)
			}
			if err := s.Set(ctx, KeyAuthToken, "second"); err != nil {
				t.Fatalf("Set() overwrite error = %v", err)
			}

			got, err := s.Get(ctx, KeyAuthToken)
			if err != nil {
				t.Fatalf("Get() error = %v", err)
			}
			if got != "second" {
				t.Errorf("Get() = %q, want %q", got, "second")
			}

			if err := s.Delete(ctx, KeyAuthToken); err != nil {
				t.Fatalf("Delete() error = %v", err)
			}
			if err := s.Delete(ctx, KeyAuthToken); err != nil {
				t.Fatalf("Delete() missing key error = %v", err)
			}
			if _, err := s.Get(ctx, KeyAuthToken); !errors.Is(err, ErrNotFound) {
				t.Errorf("Get() after Delete error = %v, want ErrNotFound", err)
			}
		})
	}
}
