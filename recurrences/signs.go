package recurrences

// The pentagonal recurrence consumes its terms two at a time with the sign
// pattern +, +, -, -, +, +, -, -, ... starting with a positive pair. This
// is the (-1)^(k+1) factor of the recurrence after the indices k and -k are
// interleaved into a single order.

// PairSign returns +1 or -1 for the recurrence term at 0-based position i:
// positive when i/2 is even, negative otherwise.
func PairSign(i int) int {
	if (i/2)%2 == 0 {
		return 1
	}
	return -1
}

// ApplyPairSigns returns a copy of terms with the pair sign pattern
// applied. An empty input yields an empty output, and an odd length input
// leaves the final unpaired element with the sign its pair group would have
// carried.
func ApplyPairSigns[T Signed](terms []T) []T {
	signed := make([]T, len(terms))
	for i, v := range terms {
		if PairSign(i) < 0 {
			v = -v
		}
		signed[i] = v
	}
	return signed
}
