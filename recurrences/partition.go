package recurrences

import "math/big"

// Partitions returns the partition counting sequence p(0), p(1), p(2), ...
// over *big.Int, the canonical exact instantiation.
//
//	p(0)=1, p(1)=1, p(2)=2, p(3)=3, p(4)=5, p(5)=7, ... p(10)=42, ...
func Partitions() *Sequence[*big.Int] {
	return NewPartitionSequence[*big.Int](BigArith{})
}

// NewPartitionSequence returns the partition counting sequence over the
// element type supported by arith. With a fixed width instantiation the
// values are correct only while they fit the element type; p(n) grows
// sub-exponentially, so int64 overflows before n reaches 500.
func NewPartitionSequence[T any](arith Arithmetic[T]) *Sequence[T] {
	rec := &partitionRecurrence[T]{
		arith: arith,
		gen:   PentagonalNumbers[int](),
	}
	// Drop the leading pentagonal 0. Its term would read the memo at n-0,
	// which is not a smaller sub problem.
	rec.gen.Next()
	return &Sequence[T]{next: rec.next}
}

// partitionRecurrence carries the engine state that outlives a single step:
// the increasing run of pentagonal numbers already generated, with the
// leading 0 dropped.
type partitionRecurrence[T any] struct {
	arith Arithmetic[T]
	gen   *PentagonalIterator[int]
	pents []int
}

// next computes p(n) for n = len(memo). For every pentagonal number g <= n
// the memo is read at n-g; g >= 1 here, so each index read is strictly
// smaller than n and the lookup is total when the sequence is produced in
// order.
func (r *partitionRecurrence[T]) next(memo []T) T {
	n := len(memo)
	if n == 0 {
		return r.arith.One()
	}

	// The pentagonal run is strictly increasing, so the terms for n are a
	// prefix of it. Extend the run until it passes n.
	for len(r.pents) == 0 || r.pents[len(r.pents)-1] <= n {
		r.pents = append(r.pents, r.gen.Next())
	}

	sum := r.arith.Zero()
	for i, g := range r.pents {
		if g > n {
			break
		}
		if PairSign(i) > 0 {
			sum = r.arith.Add(sum, memo[n-g])
		} else {
			sum = r.arith.Sub(sum, memo[n-g])
		}
	}
	return sum
}
