package paths

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFiles(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	want := filepath.Join(home, ".config", "lyra")

	dir, err := EnsureDir()
	if err != nil {
		t.Fatalf("EnsureDir() error = %v", err)
	}
	if dir != want {
		t.Errorf("EnsureDir() = %q, want %q", dir, want)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Fatalf("expected %q to exist as a directory, err = %v", dir, err)
	}

	tests := []struct {
		name string
		fn   func() (string, error)
		want string
	}{
		{name: "db", fn: DB, want: filepath.Join(want, "lyra.db")},
		{name: "log", fn: LogFile, want: filepath.Join(want, "lyra.log")},
		{name: "config", fn: ConfigFile, want: filepath.Join(want, "config.yaml")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn()
			if err != nil {
				t.Fatalf("error = %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
