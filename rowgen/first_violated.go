// Package rowgen - the first-violated separation oracle.
package rowgen

// FirstViolated builds a separation oracle that scans the candidate pool
// in enumeration order and commits the first violated candidate it meets.
//
// Scan policy:
//
//   - Candidates are probed in the order get() produced them.
//   - The scan short-circuits: on the first candidate whose violation test
//     reports ok == true, that candidate is committed via add, the oracle
//     reports true, and no further candidate is probed.
//   - If the scan exhausts the pool, the oracle reports false and nothing
//     is mutated. An empty pool yields false without calling how or add.
//
// Cost: O(k) violation tests, where k is the position of the first
// violated candidate — strictly cheaper than MaxViolated when violations
// are common, at the price of committing a possibly shallow cut.
//
// Returns ErrNilGetCandidates / ErrNilHowViolated / ErrNilAddViolated if
// the corresponding callable is nil.
func FirstViolated[C, M any](
	get GetCandidates[C],
	how HowViolated[C, M],
	add AddViolated[C],
) (Oracle, error) {
	return FirstViolatedReordered(get, how, add, identityReorder[C])
}

// FirstViolatedReordered is FirstViolated with an explicit transform
// applied to the candidate pool before each scan. The transform must
// return a permutation of its input; it runs once per oracle invocation,
// on the fresh pool produced by get. RandomViolated is exactly this
// oracle with a random left-rotation as the transform.
func FirstViolatedReordered[C, M any](
	get GetCandidates[C],
	how HowViolated[C, M],
	add AddViolated[C],
	reorder ReorderCandidates[C],
) (Oracle, error) {
	// 1) Validate configuration.
	if get == nil {
		return nil, ErrNilGetCandidates
	}
	if how == nil {
		return nil, ErrNilHowViolated
	}
	if add == nil {
		return nil, ErrNilAddViolated
	}
	if reorder == nil {
		return nil, ErrNilReorder
	}

	// 2) The oracle closure: enumerate, reorder, scan, short-circuit.
	return func() (bool, error) {
		for _, cand := range reorder(get()) {
			if _, ok := how(cand); !ok {
				continue
			}
			if err := add(cand); err != nil {
				return false, err
			}

			return true, nil
		}

		return false, nil
	}, nil
}

// identityReorder is the default transform: scan in enumeration order.
func identityReorder[C any](cands []C) []C { return cands }
