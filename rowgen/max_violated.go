// Package rowgen - the max-violated separation oracle.
package rowgen

import "cmp"

// MaxViolated builds a separation oracle that scans the whole candidate
// pool and commits the single most-violated candidate, using the natural
// less-than ordering of the measure type.
//
// Scan policy:
//
//   - Every candidate is measured exactly once per invocation: O(|pool|)
//     calls to how per call to the oracle.
//   - Candidates reporting "not violated" (ok == false) are skipped.
//   - Among violated candidates, the running best is replaced only when
//     the comparator says best < candidate. Ties therefore keep the
//     first-encountered candidate; later equal measures never win.
//   - If at least one violated candidate exists, the best one is committed
//     via add and the oracle reports true; otherwise it reports false and
//     nothing is mutated.
//
// An empty pool yields false without calling how or add.
//
// Rationale: the steepest cut typically shrinks the relaxation fastest,
// so max-violated trades a full scan per round for fewer LP re-solves.
//
// Returns ErrNilGetCandidates / ErrNilHowViolated / ErrNilAddViolated if
// the corresponding callable is nil.
func MaxViolated[C any, M cmp.Ordered](
	get GetCandidates[C],
	how HowViolated[C, M],
	add AddViolated[C],
) (Oracle, error) {
	return MaxViolatedFunc(get, how, add, func(a, b M) bool { return a < b })
}

// MaxViolatedFunc is MaxViolated with an explicit strict-weak-ordering
// comparator over measures: less(a, b) must report whether a orders
// strictly before b. Use it when the measure type has no natural order
// or when "most violated" is not plain less-than (e.g. compare absolute
// slack, or order lexicographically).
//
// The tie-break contract is part of the API: the running best is replaced
// iff less(best, cand) is true, so among equal-measure candidates the
// first encountered wins.
func MaxViolatedFunc[C, M any](
	get GetCandidates[C],
	how HowViolated[C, M],
	add AddViolated[C],
	less CompareHow[M],
) (Oracle, error) {
	// 1) Validate configuration; a nil callable is a wiring bug, caught here
	//    rather than as a panic mid-solve.
	if get == nil {
		return nil, ErrNilGetCandidates
	}
	if how == nil {
		return nil, ErrNilHowViolated
	}
	if add == nil {
		return nil, ErrNilAddViolated
	}
	if less == nil {
		return nil, ErrNilCompareHow
	}

	// 2) The oracle closure. All state (best measure, best candidate) is
	//    local to one invocation; nothing survives between calls.
	return func() (bool, error) {
		var (
			best     M
			bestCand C
			found    bool
		)

		// 2a) One full pass over a fresh candidate pool.
		for _, cand := range get() {
			measure, ok := how(cand)
			if !ok {
				continue // not violated, never competes
			}
			// 2b) First violated candidate seeds the running best; after
			//     that, only a strictly greater measure may replace it.
			if !found || less(best, measure) {
				best = measure
				bestCand = cand
				found = true
			}
		}

		// 2c) Nothing violated: the current solution separates cleanly.
		if !found {
			return false, nil
		}

		// 2d) Commit exactly one row.
		if err := add(bestCand); err != nil {
			return false, err
		}

		return true, nil
	}, nil
}
