// Package rowgen provides a precise, allocation-light implementation of
// row generation (the cutting-plane method) for linear programs whose
// constraint family is too large — or too implicit — to enumerate upfront.
//
// Overview:
//
//   - Run solves a relaxed LP with few rows, asks a separation oracle
//     whether the current optimum violates any constraint of the full
//     family, adds one violated row if so, and re-solves. It iterates
//     until the relaxed optimum satisfies everything (a true optimum of
//     the full LP) or the engine reports infeasible/unbounded.
//   - Three interchangeable oracle policies are provided: MaxViolated
//     (full scan, commit the steepest cut), FirstViolated (short-circuit
//     on the first violation found) and RandomViolated (first-violated
//     from a uniformly random starting point in the scan order).
//
// When to use:
//
//   - LPs with exponentially many rows reachable through a separation
//     procedure: subtour elimination, knapsack-cover cuts, dual LPs of
//     combinatorial relaxations, column generation's row-space twin.
//   - Any fixed LP engine you can drive through a () -> status callable:
//     the loop never touches the model, only your callables do.
//
// Key design points:
//
//   - The entire boundary is functional. You supply GetCandidates,
//     HowViolated and AddViolated; the oracle constructors hand back a
//     zero-argument Oracle; Run consumes any Oracle and a SolveLP.
//   - Candidate and measure types are generic (C, M); the library never
//     inspects them beyond the callables and comparator you provide.
//   - An oracle adds at most one row per invocation; only Run re-solves.
//     Row addition and re-solve therefore strictly alternate.
//   - MaxViolated's tie-break is deliberate and stable: among candidates
//     of equal measure, the first encountered wins (the running best is
//     replaced only when the comparator orders it strictly below the
//     challenger). Code may rely on this.
//   - RandomViolated owns its generator and consumes one stream across
//     invocations; a nil generator selects a fixed deterministic seed so
//     default runs are reproducible.
//
// Complexity per loop round:
//
//   - MaxViolated:    O(|pool|) violation tests, always.
//   - FirstViolated:  O(k) violation tests, k = position of the first
//     violated candidate in (reordered) scan order.
//   - RandomViolated: O(k) tests after an O(n) rotation.
//
// Error handling (sentinel errors):
//
//   - ErrNilSolveLP / ErrNilOracle: Run given a nil callable.
//   - ErrNilGetCandidates / ErrNilHowViolated / ErrNilAddViolated /
//     ErrNilCompareHow / ErrNilReorder: oracle constructor given a nil
//     callable.
//   - ErrRoundLimit: the optional WithMaxRounds cap was hit with
//     violations still outstanding.
//   - Errors returned by your callables are never swallowed or retried:
//     they abort the loop and propagate, wrapped with round context.
//
// Non-optimal solve statuses are not errors: Run returns lp.Infeasible
// or lp.Unbounded with a nil error, and callers branch on the status.
//
// Thread safety:
//
//   - Everything here is single-threaded and synchronous. The shared LP
//     model is mutated only through AddViolated, only after an optimal
//     solve. Run one loop per LP model; do not share a model or an
//     oracle across concurrent loops without external synchronization.
//   - Cancellation is not a loop concept: bound execution time from
//     inside SolveLP or GetCandidates by returning an error.
//
// See also:
//
//   - lp.Status: the minimal solver verdict vocabulary Run branches on.
package rowgen
