// Package rowgen - the random-violated separation oracle.
package rowgen

import "math/rand"

// RandomViolated builds a separation oracle that scans from a uniformly
// random starting point: it is FirstViolatedReordered with a random
// left-rotation as the reorder transform.
//
// On every invocation the transform draws an offset uniformly from
// [0, len(pool)] — both bounds inclusive, so the identity rotation
// (offset 0 or len) stays reachable — and rotates the fresh pool left by
// that offset before the first-violated scan. Over many invocations no
// region of the candidate space is systematically favored, while each
// single invocation keeps first-violated's early-termination cost.
//
// The generator is owned by the returned oracle and advances on every
// invocation: sequential calls consume one stream in order, they are not
// independent draws from a fresh engine. Passing rng == nil selects the
// package's fixed deterministic stream (seed policy of rngFromSeed), so
// unseeded runs are reproducible.
//
// Edge case: an empty pool makes the draw degenerate to offset 0, the
// rotation a no-op, and the oracle correctly reports false.
//
// Returns ErrNilGetCandidates / ErrNilHowViolated / ErrNilAddViolated if
// the corresponding callable is nil.
func RandomViolated[C, M any](
	get GetCandidates[C],
	how HowViolated[C, M],
	add AddViolated[C],
	rng *rand.Rand,
) (Oracle, error) {
	g := rng
	if g == nil {
		g = defaultRNG()
	}

	return FirstViolatedReordered(get, how, add, randomRotate[C](g))
}

// randomRotate builds the reorder transform behind RandomViolated:
// rotate left by a uniform offset in [0, len(cands)] drawn from g.
// The transform captures g and mutates its state on every call.
func randomRotate[C any](g *rand.Rand) ReorderCandidates[C] {
	return func(cands []C) []C {
		// Intn(n+1) realizes the inclusive [0, n] draw; n == 0 yields
		// offset 0 without arithmetic faults.
		return rotateLeft(cands, g.Intn(len(cands)+1))
	}
}
