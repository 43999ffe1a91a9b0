package recurrences

/*

# Motivation

This package computes classical integer recurrences as lazily extended,
memoized sequences of exact values. The centre piece is the partition
counting function p(n) - the number of ways to write n as a sum of positive
integers, disregarding order - computed through Euler's pentagonal number
recurrence. Callers that need p(0), p(1), ... p(k) incrementally, as
combinatorics and number theory tooling typically does, reuse all prior work
on every step instead of recomputing from scratch.

# The pentagonal number recurrence

Euler's pentagonal number theorem gives

	p(n) = sum over k != 0 of (-1)^(k+1) * p(n - g(k))

where g(k) = (3k^2 - k)/2 is the generalized pentagonal number for the
integer index k, and terms with n - g(k) < 0 are omitted. Taking the indices
in the interleaved order

	0, 1, -1, 2, -2, 3, -3, ...

the numbers g(k) come out in increasing order

	0, 1, 2, 5, 7, 12, 15, 22, 26, 35, ...

and the alternating (-1)^(k+1) factor becomes the pair pattern

	+, +, -, -, +, +, -, -, ...

over consecutive terms. So to compute p(n) we walk the increasing pentagonal
numbers (dropping the leading 0, whose term would just duplicate p(n)), stop
at the first one exceeding n, look each remaining g up in the memo as
p(n - g), and fold the looked up values with the pair signs. Because every
g in the walk is at least 1, every memo index read is strictly smaller than
n, so producing the sequence in increasing n order keeps every lookup total
by construction. Each step reads O(sqrt n) memo entries, since g(k) grows
quadratically in k.

# Structure of the package

Three layers, each depending only on the one below:

 1. The generalized pentagonal index order (PentagonalIndex,
    PentagonalIndices).
 2. The generalized pentagonal numbers over that order (Pentagonal,
    PentagonalNumbers).
 3. The memoized recurrence engine (Sequence, NewPartitionSequence) with the
    pair sign fold (PairSign, ApplyPairSigns).

A Sequence owns its memo table exclusively. The table is append only,
entries are never modified after insertion, and restarting a sequence means
constructing a fresh one. Arithmetic is exact: the canonical instantiation
works over *big.Int (Partitions), and a native fixed width instantiation is
available for callers who accept wrap around (NewPartitionSequence with
NativeArith).

The sibling recurrences in this package (Fibonaccis, Factorials) are built
on the same engine so that both instantiations get exercised beyond the
partition case.

# References

  - OEIS A000041 (partition numbers) https://oeis.org/A000041
  - OEIS A001318 (generalized pentagonal numbers) https://oeis.org/A001318
  - https://en.wikipedia.org/wiki/Pentagonal_number_theorem
*/
