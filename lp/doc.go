// Package lp defines the shared vocabulary between a linear-programming
// engine and the row-generation machinery built on top of it.
//
// Overview:
//
//   - The rowgen package never inspects an LP model directly: it drives an
//     opaque solve callable and reads back a Status. This package owns that
//     Status type so that external LP bindings (GLPK wrappers, pure-Go
//     simplex implementations, remote solver RPCs…) and rowgen agree on a
//     tiny, stable contract.
//   - Status deliberately mirrors the classic solver result set: Optimal,
//     Infeasible, Unbounded, plus Undefined for a solve that never produced
//     a verdict (interrupted, failed, or simply not run yet).
//
// Design notes:
//
//   - Status is a plain int enum with Undefined as the zero value, so a
//     forgotten assignment reads as "no verdict" rather than as a bogus
//     success.
//   - The set is intentionally minimal. Engines with richer status spaces
//     (feasible-but-not-proven-optimal, iteration limit hit, numerical
//     trouble…) should map everything that is not a certified optimum to
//     one of the non-Optimal values; row generation only ever branches on
//     "optimal, keep separating" versus "anything else, stop".
//
// See also:
//
//   - rowgen.Run: the loop consuming Status via the SolveLP contract.
package lp
