package recurrences

import "math/big"

// Signed constrains the integral types usable as sequence elements and
// pentagonal indices. Unsigned types are excluded because the index
// sequence needs the negative half line.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Arithmetic supplies the exact operations a Sequence performs on its
// element type: the two base case constants, addition, subtraction, and
// multiplication by a small machine integer.
//
// Implementations must return fresh values rather than mutating their
// operands. Sequence memo entries are never modified after insertion.
type Arithmetic[T any] interface {
	Zero() T
	One() T
	Add(a, b T) T
	Sub(a, b T) T
	MulInt(a T, m int64) T
}

// BigArith instantiates sequences over *big.Int. This is the canonical
// choice: values stay exact no matter how far the sequence is extended.
type BigArith struct{}

func (BigArith) Zero() *big.Int { return new(big.Int) }
func (BigArith) One() *big.Int  { return big.NewInt(1) }

func (BigArith) Add(a, b *big.Int) *big.Int { return new(big.Int).Add(a, b) }
func (BigArith) Sub(a, b *big.Int) *big.Int { return new(big.Int).Sub(a, b) }

func (BigArith) MulInt(a *big.Int, m int64) *big.Int {
	return new(big.Int).Mul(a, big.NewInt(m))
}

// NativeArith instantiates sequences over a fixed width integer type.
// Values wrap silently once they exceed the range of T; a caller choosing a
// native type accepts that limitation.
type NativeArith[T Signed] struct{}

func (NativeArith[T]) Zero() T { var zero T; return zero }
func (NativeArith[T]) One() T  { return 1 }

func (NativeArith[T]) Add(a, b T) T { return a + b }
func (NativeArith[T]) Sub(a, b T) T { return a - b }

func (NativeArith[T]) MulInt(a T, m int64) T { return a * T(m) }
