package recurrences

import "math/big"

// Factorials returns the factorial sequence 0!, 1!, 2!, ... over *big.Int.
func Factorials() *Sequence[*big.Int] {
	return NewFactorialSequence[*big.Int](BigArith{})
}

// NewFactorialSequence returns the factorial sequence over the element type
// supported by arith.
func NewFactorialSequence[T any](arith Arithmetic[T]) *Sequence[T] {
	return &Sequence[T]{next: func(memo []T) T {
		n := len(memo)
		if n == 0 {
			return arith.One()
		}
		return arith.MulInt(memo[n-1], int64(n))
	}}
}
