// Package rowgen - the row-generation (cutting-plane) loop.
//
// Run drives an opaque LP engine and a separation oracle until the relaxed
// LP's optimum satisfies every constraint the oracle can produce, or the
// engine reports a terminal (non-optimal) verdict.
package rowgen

import (
	"fmt"

	"github.com/katalvlaran/cutplane/lp"
)

// Run finds an extreme-point solution of a large or implicitly-defined LP
// by row generation: solve the relaxed LP, ask the oracle whether the
// current solution violates any constraint of the full family, add one
// violated row if so, and re-solve. The loop body is exactly
//
//	do { status = solve() } while (status == Optimal && tryAdd())
//
// so the LP is solved at least once, a row is only ever added after an
// optimal solve, and row addition and re-solve strictly alternate.
//
// Returns:
//
//   - lp.Optimal when the relaxed optimum violates no remaining candidate;
//     if the oracle is exact (reports false only when no violation exists),
//     this is a true optimum of the full constraint set.
//   - lp.Infeasible / lp.Unbounded as soon as the engine reports them:
//     terminal verdicts, never retried.
//   - lp.Undefined together with a non-nil error when solve or tryAdd
//     fails; callable errors propagate unchanged (wrapped with round
//     context), nothing is recovered locally.
//   - the last solve status together with ErrRoundLimit when the
//     WithMaxRounds cap is hit with violations still outstanding.
//
// Preconditions and validation (in order):
//  1. solve must be non-nil (ErrNilSolveLP).
//  2. tryAdd must be non-nil (ErrNilOracle).
//
// Options customization:
//
//   - WithLogger(l):    per-round debug logging, termination info event.
//   - WithMaxRounds(n): abort with ErrRoundLimit after n solves (0 = off).
//
// Complexity: one solve plus one oracle invocation per round; with a
// finite candidate pool and monotone violation tests the loop performs at
// most (number of addable constraints + 1) rounds.
func Run(solve SolveLP, tryAdd Oracle, opts ...Option) (lp.Status, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the two callables up front; nil would otherwise surface
	//    as a confusing panic from inside the loop.
	if solve == nil {
		return lp.Undefined, ErrNilSolveLP
	}
	if tryAdd == nil {
		return lp.Undefined, ErrNilOracle
	}

	log := cfg.Logger

	// 3) The do/while loop. round counts completed solves (1-based).
	var (
		status lp.Status
		added  bool
		err    error
		round  int
	)
	for {
		round++

		// 3a) Enforce the optional solve cap before spending another solve.
		if cfg.MaxRounds > 0 && round > cfg.MaxRounds {
			log.Info().Int("rounds", cfg.MaxRounds).Str("status", status.String()).
				Msg("row generation aborted: round limit")

			return status, fmt.Errorf("%w: %d rounds", ErrRoundLimit, cfg.MaxRounds)
		}

		// 3b) (Re)optimize the current LP.
		status, err = solve()
		if err != nil {
			return lp.Undefined, fmt.Errorf("rowgen: solve (round %d): %w", round, err)
		}

		// 3c) Terminal verdict: propagate immediately, never consult the
		//     oracle. Infeasible/unbounded are outcomes, not errors.
		if !status.IsOptimal() {
			log.Info().Int("round", round).Str("status", status.String()).
				Msg("row generation stopped: non-optimal solve")

			return status, nil
		}

		// 3d) Ask the oracle for one violated constraint.
		added, err = tryAdd()
		if err != nil {
			return lp.Undefined, fmt.Errorf("rowgen: separation (round %d): %w", round, err)
		}
		log.Debug().Int("round", round).Bool("row_added", added).Msg("row generation round")

		// 3e) No violation left: the relaxed optimum is a true optimum.
		if !added {
			log.Info().Int("rounds", round).Msg("row generation converged")

			return status, nil
		}
	}
}
