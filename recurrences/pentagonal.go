package recurrences

// PentagonalIndex returns the element at position i of the generalized
// pentagonal index order
//
//	0, 1, -1, 2, -2, 3, -3, ...
//
// Position 0 holds 0, and for m >= 1 positions 2m-1 and 2m hold m and -m.
func PentagonalIndex[T Signed](i int) T {
	m := T((i + 1) / 2)
	if i%2 == 0 {
		return -m
	}
	return m
}

// Pentagonal returns the generalized pentagonal number g(k) = (3k^2 - k)/2.
//
// k(3k-1) is a product of opposite parity factors, so the division by 2 is
// exact for every integer k, and g(k) >= 0 for every k. Over the index
// order produced by PentagonalIndices the results are
//
//	0, 1, 2, 5, 7, 12, 15, 22, 26, 35, ...
//
// which is strictly increasing after the leading 0.
func Pentagonal[T Signed](k T) T {
	return (3*k*k - k) / 2
}

// IndexIterator produces the generalized pentagonal index order. The zero
// value is ready to use and starts at position 0.
type IndexIterator[T Signed] struct {
	pos int
}

// PentagonalIndices returns an iterator over 0, 1, -1, 2, -2, ... The
// sequence is infinite; restart by constructing a fresh iterator.
func PentagonalIndices[T Signed]() *IndexIterator[T] {
	return &IndexIterator[T]{}
}

// Next returns the index at the iterator's current position and advances.
func (it *IndexIterator[T]) Next() T {
	k := PentagonalIndex[T](it.pos)
	it.pos++
	return k
}

// PentagonalIterator produces the generalized pentagonal numbers in the
// canonical interleaved index order. The zero value is ready to use.
type PentagonalIterator[T Signed] struct {
	indices IndexIterator[T]
}

// PentagonalNumbers returns an iterator over 0, 1, 2, 5, 7, 12, ... The
// sequence is infinite; restart by constructing a fresh iterator.
func PentagonalNumbers[T Signed]() *PentagonalIterator[T] {
	return &PentagonalIterator[T]{}
}

// Next returns the pentagonal number at the iterator's current position and
// advances.
func (it *PentagonalIterator[T]) Next() T {
	return Pentagonal(it.indices.Next())
}
