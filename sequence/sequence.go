// Package sequence builds the integer sequences the benchmark runs over
// and implements the running-sum transforms applied to them.
package sequence

// DefaultSize is the number of elements used when no size is configured.
const DefaultSize = 10_000

// Build returns a sequence of n elements, each set to 1.
// A non-positive n yields an empty sequence.
func Build(n int) []int64 {
	if n < 0 {
		n = 0
	}

	seq := make([]int64, n)
	for i := range seq {
		seq[i] = 1
	}

	return seq
}

// PrefixSum replaces every element with the sum of itself and all
// elements before it. Each step depends on the previous one, so the
// pass is strictly sequential. Overflow wraps.
func PrefixSum(seq []int64) {
	for i := 1; i < len(seq); i++ {
		seq[i] += seq[i-1]
	}
}

// CumSum returns the running sum of seq in a newly allocated slice.
// seq itself is left unchanged.
func CumSum(seq []int64) []int64 {
	out := make([]int64, len(seq))

	var acc int64
	for i, v := range seq {
		acc += v
		out[i] = acc
	}

	return out
}
