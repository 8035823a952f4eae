package tui

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"short unchanged", "Reading", 20, "Reading"},
		{"exact length unchanged", "Email", 5, "Email"},
		{"long ascii", "Reading documentation", 10, "Reading d…"},
		{"multibyte kept whole", "Médiathèque après-midi", 10, "Médiathèq…"},
		{"cjk", "日本語の勉強をする", 5, "日本語の…"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.in, tt.n)
			if got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("truncate(%q, %d) produced invalid UTF-8: %q", tt.in, tt.n, got)
			}
		})
	}
}

func TestProgressBarClampsAtFull(t *testing.T) {
	bar := progressBar(250, 10)
	if !strings.Contains(bar, strings.Repeat("█", 10)) {
		t.Errorf("overfull bar should render fully filled, got %q", bar)
	}
	if strings.Contains(bar, "░") {
		t.Errorf("overfull bar should carry no empty cells, got %q", bar)
	}
}
