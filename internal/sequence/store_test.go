package sequence

import (
	"errors"
	"testing"

	apperrors "github.com/agbru/partviz/internal/errors"
)

// expectPrecondition runs fn and fails unless it panics with a PreconditionError.
func expectPrecondition(t *testing.T, op string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("%s: expected panic", op)
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("%s: panic payload %T is not an error", op, r)
		}
		var perr apperrors.PreconditionError
		if !errors.As(err, &perr) {
			t.Fatalf("%s: expected PreconditionError, got %v", op, err)
		}
		if perr.Op != op {
			t.Errorf("expected Op %q, got %q", op, perr.Op)
		}
	}()
	fn()
}

func TestNewCopiesInput(t *testing.T) {
	t.Parallel()
	input := []int{4, 2, 8}
	s := New(input)
	input[0] = 99

	if s.Get(0) != 4 {
		t.Errorf("store should own a copy of its input, got %d", s.Get(0))
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
}

func TestSwap(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		i, j      int
		want      []int
		wantSwaps uint64
	}{
		{"distinct slots", 0, 2, []int{8, 2, 4}, 1},
		{"self swap is a no-op", 1, 1, []int{4, 2, 8}, 0},
		{"reversed arguments", 2, 0, []int{8, 2, 4}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := New([]int{4, 2, 8})
			s.Swap(tt.i, tt.j)

			got := s.Snapshot()
			for k := range tt.want {
				if got[k] != tt.want[k] {
					t.Fatalf("after Swap(%d,%d) got %v, want %v", tt.i, tt.j, got, tt.want)
				}
			}
			if s.Swaps() != tt.wantSwaps {
				t.Errorf("Swaps() = %d, want %d", s.Swaps(), tt.wantSwaps)
			}
		})
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	t.Parallel()
	s := New([]int{1, 2})
	snap := s.Snapshot()
	snap[0] = 42
	if s.Get(0) != 1 {
		t.Error("mutating a snapshot must not affect the store")
	}
}

func TestPreconditions(t *testing.T) {
	t.Parallel()
	s := New([]int{1, 2, 3})

	expectPrecondition(t, "sequence.New", func() { New(nil) })
	expectPrecondition(t, "sequence.Get", func() { s.Get(3) })
	expectPrecondition(t, "sequence.Get", func() { s.Get(-1) })
	expectPrecondition(t, "sequence.Swap", func() { s.Swap(0, 7) })
}

func TestIsPermutation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		a, b []int
		want bool
	}{
		{"same order", []int{1, 2, 3}, []int{1, 2, 3}, true},
		{"shuffled", []int{4, 2, 8, 3}, []int{2, 3, 4, 8}, true},
		{"duplicates preserved", []int{5, 5, 1}, []int{1, 5, 5}, true},
		{"duplicate count differs", []int{5, 5, 1}, []int{1, 1, 5}, false},
		{"length differs", []int{1}, []int{1, 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsPermutation(tt.a, tt.b); got != tt.want {
				t.Errorf("IsPermutation(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
