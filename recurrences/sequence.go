package recurrences

import (
	"errors"
	"fmt"
)

var ErrNegativeIndex = errors.New("sequence index is negative")

// Sequence produces an infinite memoized integer sequence one element at a
// time. Each step computes the element at the next position from the
// elements already produced, appends it to the memo, and returns it.
//
// The memo is owned exclusively by the Sequence, grows append only, and its
// entries are never modified after insertion. Already produced positions
// may therefore be read concurrently with a single producer advancing the
// sequence, but a Sequence must not be shared between producers; use
// independent instances instead. Restarting means constructing a fresh
// Sequence.
//
// For element types with reference semantics (*big.Int), returned values
// alias the memo entries and must not be modified by the caller.
type Sequence[T any] struct {
	memo []T
	next func(memo []T) T
}

// Next computes the element at position Len(), appends it to the memo, and
// returns it.
func (s *Sequence[T]) Next() T {
	v := s.next(s.memo)
	s.memo = append(s.memo, v)
	return v
}

// Len returns the count of elements produced so far.
func (s *Sequence[T]) Len() int {
	return len(s.memo)
}

// Value returns the element at position n, advancing the sequence through n
// first if it has not been produced yet. Negative n is rejected with
// ErrNegativeIndex; no other failure is possible.
func (s *Sequence[T]) Value(n int) (T, error) {
	if n < 0 {
		var zero T
		return zero, fmt.Errorf("%w: %d", ErrNegativeIndex, n)
	}
	for len(s.memo) <= n {
		s.Next()
	}
	return s.memo[n], nil
}
