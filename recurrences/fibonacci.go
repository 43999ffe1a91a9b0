package recurrences

import "math/big"

// Fibonaccis returns the Fibonacci sequence F(0)=0, F(1)=1, F(n)=F(n-1)+F(n-2)
// over *big.Int.
func Fibonaccis() *Sequence[*big.Int] {
	return NewFibonacciSequence[*big.Int](BigArith{})
}

// NewFibonacciSequence returns the Fibonacci sequence over the element type
// supported by arith.
func NewFibonacciSequence[T any](arith Arithmetic[T]) *Sequence[T] {
	return &Sequence[T]{next: func(memo []T) T {
		switch n := len(memo); n {
		case 0:
			return arith.Zero()
		case 1:
			return arith.One()
		default:
			return arith.Add(memo[n-1], memo[n-2])
		}
	}}
}
