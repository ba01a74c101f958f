package tui

import (
	"slices"
	"testing"
	"unicode/utf8"
)

func TestActivityHistory_Wraps(t *testing.T) {
	t.Parallel()
	h := NewActivityHistory(3)
	for v := 1; v <= 5; v++ {
		h.Push(v)
	}
	if h.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", h.Len())
	}
	if got := h.Slice(); !slices.Equal(got, []int{3, 4, 5}) {
		t.Errorf("Slice() = %v, want [3 4 5]", got)
	}

	h.Reset()
	if h.Len() != 0 || len(h.Slice()) != 0 {
		t.Error("Reset() did not empty the history")
	}
}

func TestActivityHistory_ZeroCapacity(t *testing.T) {
	t.Parallel()
	h := NewActivityHistory(0)
	h.Push(7)
	h.Push(8)
	if got := h.Slice(); !slices.Equal(got, []int{8}) {
		t.Errorf("Slice() = %v, want [8]", got)
	}
}

func TestActivityHistory_Sparkline(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		samples []int
		width   int
		want    string
	}{
		{"empty", nil, 10, ""},
		{"idle", []int{0, 0, 0}, 10, "▁▁▁"},
		{"peak is full block", []int{0, 4, 8}, 10, "▁▅█"},
		{"truncated to width", []int{8, 8, 0, 8}, 2, "▁█"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h := NewActivityHistory(8)
			for _, v := range tt.samples {
				h.Push(v)
			}
			got := h.Sparkline(tt.width)
			if got != tt.want {
				t.Errorf("Sparkline() = %q, want %q", got, tt.want)
			}
			if n := utf8.RuneCountInString(got); tt.width > 0 && n > tt.width {
				t.Errorf("Sparkline() has %d cells, wider than %d", n, tt.width)
			}
		})
	}
}
