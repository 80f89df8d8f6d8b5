// Package rowgen - candidate-slice rotation helper.
package rowgen

// rotateLeft returns cands rotated left by k positions: the element at
// index k becomes the first element of the result and the prefix wraps
// to the back. k must lie in [0, len(cands)]; both k == 0 and
// k == len(cands) are identity rotations and return the input slice
// unchanged (no allocation).
//
// The input is never mutated; a non-trivial rotation allocates one slice
// of the same length.
//
// Complexity: O(n) time, O(n) space for 0 < k < n; O(1) otherwise.
func rotateLeft[C any](cands []C, k int) []C {
	n := len(cands)
	if k == 0 || k == n {
		return cands
	}

	out := make([]C, 0, n)
	out = append(out, cands[k:]...)
	out = append(out, cands[:k]...)

	return out
}
