// Package sequence owns the mutable array sorted by one run.
//
// A Store is a permutation of its original input at every point in time:
// the only mutator is Swap. Index violations are programmer errors and panic
// with an apperrors.PreconditionError.
package sequence

import (
	"slices"

	apperrors "github.com/agbru/partviz/internal/errors"
)

// Store is the in-memory sequence of keys for a single run.
// A Store is not safe for concurrent mutation; each run owns its own.
type Store struct {
	keys  []int
	swaps uint64
}

// New creates a Store holding a copy of keys.
// An empty input violates the store's precondition and panics.
func New(keys []int) *Store {
	if len(keys) == 0 {
		apperrors.Preconditionf("sequence.New", "input must contain at least one key")
	}
	return &Store{keys: slices.Clone(keys)}
}

// Len returns the number of keys.
func (s *Store) Len() int { return len(s.keys) }

// Get returns the key at index i.
func (s *Store) Get(i int) int {
	s.check("sequence.Get", i)
	return s.keys[i]
}

// Swap exchanges the keys at i and j. Swapping a slot with itself is a no-op
// and is not counted.
func (s *Store) Swap(i, j int) {
	s.check("sequence.Swap", i)
	s.check("sequence.Swap", j)
	if i == j {
		return
	}
	s.keys[i], s.keys[j] = s.keys[j], s.keys[i]
	s.swaps++
}

// Swaps returns the number of effective swaps performed so far.
func (s *Store) Swaps() uint64 { return s.swaps }

// Snapshot returns a copy of the current keys.
func (s *Store) Snapshot() []int { return slices.Clone(s.keys) }

func (s *Store) check(op string, i int) {
	if i < 0 || i >= len(s.keys) {
		apperrors.Preconditionf(op, "index %d out of range [0,%d)", i, len(s.keys))
	}
}

// IsSorted reports whether keys are in non-decreasing order.
func IsSorted(keys []int) bool {
	return slices.IsSorted(keys)
}

// IsPermutation reports whether a and b hold the same multiset of keys.
func IsPermutation(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[int]int, len(a))
	for _, k := range a {
		counts[k]++
	}
	for _, k := range b {
		counts[k]--
		if counts[k] < 0 {
			return false
		}
	}
	return true
}
