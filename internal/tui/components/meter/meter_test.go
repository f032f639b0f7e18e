package meter

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/garrettladley/lyra/internal/tui/theme"
)

func ptr(f float64) *float64 { return &f }

func TestFraction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value *float64
		max   float64
		want  float64
	}{
		{name: "no data", value: nil, max: 100, want: 0},
		{name: "zero max", value: ptr(50), max: 0, want: 0},
		{name: "half", value: ptr(50), max: 100, want: 0.5},
		{name: "over", value: ptr(140), max: 100, want: 1},
		{name: "negative", value: ptr(-3), max: 100, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := New(tt.value, tt.max, "RATE", theme.ColorSuccess)
			if got := m.Fraction(); got != tt.want {
				t.Errorf("Fraction() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		value      *float64
		width      int
		wantFull   int
		wantFilled int // cells in the filled segment, partial included
	}{
		{name: "empty", value: ptr(0), width: 10, wantFull: 0, wantFilled: 0},
		{name: "no data", value: nil, width: 10, wantFull: 0, wantFilled: 0},
		{name: "half", value: ptr(50), width: 10, wantFull: 5, wantFilled: 5},
		{name: "full", value: ptr(100), width: 10, wantFull: 10, wantFilled: 10},
		{name: "partial cell", value: ptr(25), width: 10, wantFull: 2, wantFilled: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := New(tt.value, 100, "RATE", theme.ColorSuccess, WithWidth(tt.width))
			filled, empty := m.Bar()

			if got := strings.Count(filled, fullBraille); got != tt.wantFull {
				t.Errorf("full cells = %d, want %d (bar %q)", got, tt.wantFull, filled)
			}
			if got := utf8.RuneCountInString(filled); got != tt.wantFilled {
				t.Errorf("filled cells = %d, want %d (bar %q)", got, tt.wantFilled, filled)
			}
			if got := utf8.RuneCountInString(filled) + utf8.RuneCountInString(empty); got != tt.width {
				t.Errorf("total width = %d, want %d", got, tt.width)
			}
		})
	}
}

func TestFormatPercent(t *testing.T) {
	t.Parallel()

	tests := map[float64]string{
		0:      "0%",
		71.4:   "71.4%",
		66.666: "66.7%",
		100:    "100%",
	}
	for in, want := range tests {
		if got := formatPercent(in); got != want {
			t.Errorf("formatPercent(%v) = %q, want %q", in, got, want)
		}
	}
}
