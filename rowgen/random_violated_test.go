// Package rowgen_test - unit tests for the random-violated separation
// oracle: fixed-seed determinism, stream consumption across invocations,
// start-point spread, and the empty-pool edge case.
package rowgen_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cutplane/rowgen"
)

// scanRecorder builds a RandomViolated oracle over n never-violated
// candidates and returns the oracle plus a pointer to the probe log, so
// tests can observe the exact (rotated) scan order of each invocation.
func scanRecorder(t *testing.T, n int, rng *rand.Rand) (rowgen.Oracle, *[]int) {
	t.Helper()

	cands := make([]int, n)
	for i := range cands {
		cands[i] = i
	}
	probed := new([]int)
	oracle, err := rowgen.RandomViolated(
		func() []int { return cands },
		func(c int) (struct{}, bool) {
			*probed = append(*probed, c)

			return struct{}{}, false
		},
		func(int) error { return nil },
		rng,
	)
	require.NoError(t, err)

	return oracle, probed
}

// TestRandomViolated_FixedSeedReproducible: two oracles seeded identically
// must produce identical scan orders across a whole sequence of
// invocations, not just the first one.
func TestRandomViolated_FixedSeedReproducible(t *testing.T) {
	oracleA, probedA := scanRecorder(t, 5, rand.New(rand.NewSource(42)))
	oracleB, probedB := scanRecorder(t, 5, rand.New(rand.NewSource(42)))

	for i := 0; i < 10; i++ {
		addedA, errA := oracleA()
		addedB, errB := oracleB()
		require.NoError(t, errA)
		require.NoError(t, errB)
		require.False(t, addedA)
		require.False(t, addedB)
	}
	require.Equal(t, *probedA, *probedB, "same seed must replay the same rotations")
	require.Len(t, *probedA, 50, "10 full scans over 5 candidates")
}

// TestRandomViolated_RotationIsValid: every invocation's scan is a left
// rotation of the pool — all candidates exactly once, in cyclic order.
func TestRandomViolated_RotationIsValid(t *testing.T) {
	const n = 7
	oracle, probed := scanRecorder(t, n, rand.New(rand.NewSource(1)))

	for i := 0; i < 20; i++ {
		*probed = (*probed)[:0]
		_, err := oracle()
		require.NoError(t, err)
		require.Len(t, *probed, n, "exhausted scan probes every candidate once")

		start := (*probed)[0]
		for j, c := range *probed {
			require.Equal(t, (start+j)%n, c, "invocation %d: scan must be a cyclic rotation", i)
		}
	}
}

// TestRandomViolated_StreamAdvances: the oracle owns one generator whose
// state advances per invocation — sequential calls are not identical
// draws from a fresh engine. With 5 candidates the offset lives in the
// inclusive range [0,5], so over enough invocations more than one
// starting point must appear.
func TestRandomViolated_StreamAdvances(t *testing.T) {
	const n = 5
	oracle, probed := scanRecorder(t, n, rand.New(rand.NewSource(7)))

	starts := make(map[int]int, n)
	for i := 0; i < 200; i++ {
		*probed = (*probed)[:0]
		_, err := oracle()
		require.NoError(t, err)
		starts[(*probed)[0]]++
	}

	require.Greater(t, len(starts), 1, "a stuck rotation offset means the stream is not advancing")
	// Every candidate should have led at least one scan by now: 200 draws
	// over 6 offsets leave a ~4e-16 chance of missing any given start.
	require.Len(t, starts, n, "every candidate should appear as a starting point")
}

// TestRandomViolated_NilRNGDeterministicDefault: a nil generator selects
// the package's fixed stream, so two nil-rng oracles behave identically.
func TestRandomViolated_NilRNGDeterministicDefault(t *testing.T) {
	oracleA, probedA := scanRecorder(t, 5, nil)
	oracleB, probedB := scanRecorder(t, 5, nil)

	for i := 0; i < 5; i++ {
		_, errA := oracleA()
		_, errB := oracleB()
		require.NoError(t, errA)
		require.NoError(t, errB)
	}
	require.Equal(t, *probedA, *probedB, "nil rng must fall back to the deterministic default stream")
}

// TestRandomViolated_EmptyPool: zero candidates degrade the offset draw
// to 0 and the oracle reports false without probing or committing.
func TestRandomViolated_EmptyPool(t *testing.T) {
	probes, adds := 0, 0
	oracle, err := rowgen.RandomViolated(
		pool(),
		func(int) (struct{}, bool) { probes++; return struct{}{}, true },
		func(int) error { adds++; return nil },
		rand.New(rand.NewSource(3)),
	)
	require.NoError(t, err)

	added, err := oracle()
	require.NoError(t, err)
	require.False(t, added)
	require.Zero(t, probes)
	require.Zero(t, adds)
}

// TestRandomViolated_CommitsFirstInRotatedOrder: with a known seed the
// rotation offset is predictable, and the oracle must commit the first
// violated candidate of the rotated order, honoring the short-circuit.
func TestRandomViolated_CommitsFirstInRotatedOrder(t *testing.T) {
	const n = 5
	seed := int64(42)

	// Replay the draw the oracle will make: one Intn(n+1) on a fresh
	// generator with the same seed.
	offset := rand.New(rand.NewSource(seed)).Intn(n + 1)
	wantFirst := offset % n // rotation by n is the identity

	var committed int
	oracle, err := rowgen.RandomViolated(
		pool(0, 1, 2, 3, 4),
		func(c int) (struct{}, bool) { return struct{}{}, true }, // everything violated
		func(c int) error { committed = c; return nil },
		rand.New(rand.NewSource(seed)),
	)
	require.NoError(t, err)

	added, err := oracle()
	require.NoError(t, err)
	require.True(t, added)
	require.Equal(t, wantFirst, committed)
}

func TestRandomViolated_NilCallables(t *testing.T) {
	how := func(c int) (int, bool) { return c, true }
	add := func(int) error { return nil }

	_, err := rowgen.RandomViolated[int, int](nil, how, add, nil)
	require.ErrorIs(t, err, rowgen.ErrNilGetCandidates)
}
