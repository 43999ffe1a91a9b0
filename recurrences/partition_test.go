package recurrences

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartitionsKnownValues(t *testing.T) {
	type args struct {
		n int
	}
	tests := []struct {
		name string
		args args
		want int64
	}{
		{name: "p(0) is 1", args: args{n: 0}, want: 1},
		{name: "p(1) is 1", args: args{n: 1}, want: 1},
		{name: "p(2) is 2", args: args{n: 2}, want: 2},
		{name: "p(3) is 3", args: args{n: 3}, want: 3},
		{name: "p(4) is 5", args: args{n: 4}, want: 5},
		{name: "p(5) is 7", args: args{n: 5}, want: 7},
		{name: "p(10) is 42", args: args{n: 10}, want: 42},
		{name: "p(20) is 627", args: args{n: 20}, want: 627},
		{name: "p(100) is 190569292", args: args{n: 100}, want: 190569292},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Partitions()
			got, err := s.Value(tt.args.n)
			require.NoError(t, err)
			if got.Cmp(big.NewInt(tt.want)) != 0 {
				t.Errorf("p(%d) = %v, want %v", tt.args.n, got, tt.want)
			}
		})
	}
}

// TestPartitionsMonotone checks p(n+1) >= p(n) >= 1 over a modest range.
func TestPartitionsMonotone(t *testing.T) {
	one := big.NewInt(1)

	s := Partitions()
	prev := s.Next()
	require.Zero(t, prev.Cmp(one), "p(0) must be 1")

	for n := 1; n <= 300; n++ {
		got := s.Next()
		if got.Cmp(one) < 0 {
			t.Fatalf("p(%d) = %v, below 1", n, got)
		}
		if got.Cmp(prev) < 0 {
			t.Fatalf("p(%d) = %v, below p(%d) = %v", n, got, n-1, prev)
		}
		prev = got
	}
}

func TestPartitionsDeterministic(t *testing.T) {
	s1 := Partitions()
	s2 := Partitions()

	for n := 0; n <= 80; n++ {
		v1 := s1.Next()
		v2, err := s2.Value(n)
		require.NoError(t, err)
		assert.Zero(t, v1.Cmp(v2), "fresh engines disagree at n=%d", n)

		// repeated access on the same instance returns the cached entry
		again, err := s2.Value(n)
		require.NoError(t, err)
		assert.Zero(t, v2.Cmp(again), "repeated access disagrees at n=%d", n)
	}

	assert.Equal(t, 81, s1.Len())
	assert.Equal(t, 81, s2.Len())
}

func TestPartitionsNegativeIndex(t *testing.T) {
	s := Partitions()
	_, err := s.Value(-1)
	require.ErrorIs(t, err, ErrNegativeIndex)

	// the rejected request must not have advanced the sequence
	assert.Equal(t, 0, s.Len())
}

// TestPartitionsNativeInstantiation checks the fixed width instantiation
// agrees with the canonical big.Int one while the values are small enough
// to fit.
func TestPartitionsNativeInstantiation(t *testing.T) {
	sBig := Partitions()
	sNative := NewPartitionSequence[int64](NativeArith[int64]{})

	for n := 0; n <= 60; n++ {
		want := sBig.Next()
		got := sNative.Next()
		if want.Cmp(big.NewInt(got)) != 0 {
			t.Errorf("native p(%d) = %d, want %v", n, got, want)
		}
	}
}

// referencePartitions recomputes p(0..max) over an explicit map memo,
// assembling each step from the layers the engine composes: the pentagonal
// iterator with its leading 0 dropped, the prefix of pentagonal numbers
// g <= n, the memo lookups at n-g, and ApplyPairSigns over the looked up
// values. It asserts the memo discipline directly: every key read while
// computing p(n) was inserted at a strictly smaller index.
func referencePartitions(t *testing.T, max int) []int64 {
	t.Helper()

	memo := map[int]int64{0: 1}
	values := []int64{1}

	for n := 1; n <= max; n++ {
		gens := PentagonalNumbers[int]()
		gens.Next() // drop the leading 0

		var offsets []int
		for g := gens.Next(); g <= n; g = gens.Next() {
			offsets = append(offsets, g)
		}

		looked := make([]int64, len(offsets))
		for i, g := range offsets {
			require.Less(t, n-g, n, "memo read at or above the value under construction")
			pv, ok := memo[n-g]
			require.True(t, ok, "memo missing entry %d while computing p(%d)", n-g, n)
			looked[i] = pv
		}

		var sum int64
		for _, v := range ApplyPairSigns(looked) {
			sum += v
		}
		memo[n] = sum
		values = append(values, sum)
	}
	return values
}

func TestPartitionsAgainstReference(t *testing.T) {
	want := referencePartitions(t, 50)

	s := Partitions()
	for n, pv := range want {
		got := s.Next()
		if got.Cmp(big.NewInt(pv)) != 0 {
			t.Errorf("p(%d) = %v, want %d", n, got, pv)
		}
	}
}

func TestSequencePrefixStringer(t *testing.T) {
	s := Partitions()
	got := sequencePrefixStringer(s, 6, ", ")
	assert.Equal(t, "1, 1, 2, 3, 5, 7", got)
}

func BenchmarkPartitions(b *testing.B) {
	for _, size := range []int{100, 1000} {
		b.Run(fmt.Sprintf("first %d", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				s := Partitions()
				for j := 0; j < size; j++ {
					s.Next()
				}
			}
		})
	}
}
