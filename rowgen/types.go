// Package rowgen defines the callable contracts, configuration options
// and sentinel errors for the row-generation loop and its separation
// oracles.
//
// The entire boundary of this package is functional: callers hand in a
// handful of small callables (solve the LP, enumerate candidate rows,
// measure violation, commit a row) and get back an Oracle plus a loop
// that drives them to convergence. There is no model type, no file
// format and no CLI here.
//
// Errors (sentinel):
//
//	– ErrNilSolveLP       if Run is given a nil solve callable.
//	– ErrNilOracle        if Run is given a nil try-add-violated callable.
//	– ErrNilGetCandidates if an oracle constructor is given a nil enumerator.
//	– ErrNilHowViolated   if an oracle constructor is given a nil violation test.
//	– ErrNilAddViolated   if an oracle constructor is given a nil row-adder.
//	– ErrNilCompareHow    if MaxViolatedFunc is given a nil comparator.
//	– ErrNilReorder       if FirstViolatedReordered is given a nil transform.
//	– ErrRoundLimit       if WithMaxRounds(n) is set and the loop would exceed n solves.
package rowgen

import (
	"errors"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/cutplane/lp"
)

// Sentinel errors returned by Run and the oracle constructors.
var (
	// ErrNilSolveLP indicates that a nil SolveLP callable was passed to Run.
	ErrNilSolveLP = errors.New("rowgen: solve callable is nil")

	// ErrNilOracle indicates that a nil Oracle callable was passed to Run.
	ErrNilOracle = errors.New("rowgen: oracle callable is nil")

	// ErrNilGetCandidates indicates a nil candidate enumerator.
	ErrNilGetCandidates = errors.New("rowgen: candidate enumerator is nil")

	// ErrNilHowViolated indicates a nil violation test.
	ErrNilHowViolated = errors.New("rowgen: violation test is nil")

	// ErrNilAddViolated indicates a nil row-adder.
	ErrNilAddViolated = errors.New("rowgen: row-adder is nil")

	// ErrNilCompareHow indicates a nil violation-measure comparator.
	ErrNilCompareHow = errors.New("rowgen: measure comparator is nil")

	// ErrNilReorder indicates a nil candidate reorder transform.
	ErrNilReorder = errors.New("rowgen: reorder transform is nil")

	// ErrRoundLimit indicates that the loop hit the WithMaxRounds cap
	// before the oracle ran out of violated constraints.
	ErrRoundLimit = errors.New("rowgen: solve round limit exceeded")
)

// SolveLP (re)optimizes the current LP model and reports the verdict.
// Provided by the external LP engine; invoked once per loop round.
// A non-nil error aborts the loop immediately and propagates unchanged.
type SolveLP func() (lp.Status, error)

// Oracle attempts to find one violated constraint and add it to the LP.
// It reports true if a row was added (the loop must re-solve) and false
// if every candidate satisfies its constraint (the relaxed optimum is a
// true optimum). An Oracle performs at most one addition per call.
//
// Oracles built by this package (MaxViolated, FirstViolated,
// RandomViolated) satisfy this contract; callers may also supply their own.
type Oracle func() (bool, error)

// GetCandidates produces the finite candidate-constraint pool for one
// oracle invocation. It is called fresh on every invocation and may
// recompute the pool each time; oracles never retain candidates across
// calls. C is the caller's opaque candidate type (a row template, a cut
// family member, an index…).
type GetCandidates[C any] func() []C

// HowViolated measures how much the current LP solution violates the
// candidate's constraint. ok=false means "not violated" (the measure is
// then ignored). M is the caller's measure type; it only needs to be
// comparable under the oracle's comparator.
type HowViolated[C, M any] func(cand C) (measure M, ok bool)

// AddViolated commits the candidate's constraint as a new row of the
// shared LP model. It is the only callable through which the oracles
// mutate external state. A non-nil error propagates unchanged through
// the Oracle to the loop's caller.
type AddViolated[C any] func(cand C) error

// CompareHow is a strict weak ordering over violation measures:
// CompareHow(a, b) reports whether a orders strictly before b
// ("a is less violated than b" for the default less-than ordering).
type CompareHow[M any] func(a, b M) bool

// ReorderCandidates transforms the candidate pool before a first-violated
// scan. It must return a permutation of its input (same elements, any
// order); it may reorder in place and return its argument.
type ReorderCandidates[C any] func(cands []C) []C

// Options configures the Run loop.
//
// Logger    – structured logger for per-round progress; disabled by default.
// MaxRounds – optional cap on the number of LP solves; 0 means unlimited.
type Options struct {
	Logger    zerolog.Logger // Per-round progress logging (default: zerolog.Nop()).
	MaxRounds int            // Maximum number of solve rounds; 0 = unlimited.
}

// Option represents a functional option for configuring Run.
type Option func(*Options)

// WithLogger installs a zerolog logger that receives one debug event per
// solve round (round number, status, whether a row was added) and one
// info event on termination. The default logger is zerolog.Nop().
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithMaxRounds caps the number of LP solves the loop may perform.
// When the cap is reached with violated constraints still outstanding,
// Run returns the last status together with ErrRoundLimit.
// Must pass a non-negative value; negative values panic at option time.
// Default (if not set) is 0: no cap, run to convergence.
func WithMaxRounds(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic("rowgen: WithMaxRounds requires n >= 0")
		}
		o.MaxRounds = n
	}
}

// DefaultOptions returns an Options struct initialized with the defaults
// Run assumes when no functional options are supplied.
//
// Defaults:
//   - Logger:    zerolog.Nop() (no logging).
//   - MaxRounds: 0 (unlimited; loop runs until convergence or a
//     non-optimal status).
func DefaultOptions() Options {
	return Options{
		Logger:    zerolog.Nop(),
		MaxRounds: 0,
	}
}

// defaultRNG returns the generator RandomViolated falls back to when the
// caller passes rng == nil: the package's fixed deterministic stream.
func defaultRNG() *rand.Rand {
	return rngFromSeed(0)
}
