// Package lp - LP solve status enum shared by solver bindings and rowgen.
package lp

import "strconv"

// Status is the outcome of a single (re)optimization of an LP model.
//
// The zero value is Undefined: "the solver produced no verdict". External
// engines map their native status sets onto these four values; the
// row-generation loop treats everything except Optimal as terminal.
type Status int

const (
	// Undefined means the solve did not complete or was never attempted.
	Undefined Status = iota

	// Optimal means the solver certified an optimal solution for the
	// current (possibly still relaxed) constraint set.
	Optimal

	// Infeasible means the current constraint set admits no solution.
	Infeasible

	// Unbounded means the objective is unbounded over the current
	// feasible region.
	Unbounded
)

// statusNames maps each Status to its canonical lower-case name.
// Kept in declaration order; String falls back for out-of-range values.
var statusNames = [...]string{
	Undefined:  "undefined",
	Optimal:    "optimal",
	Infeasible: "infeasible",
	Unbounded:  "unbounded",
}

// String returns the canonical name of the status ("optimal", "infeasible",
// "unbounded", "undefined"). Unknown values render as "status(<n>)" so a
// corrupted status is visible in logs instead of silently aliasing a real one.
func (s Status) String() string {
	if s >= 0 && int(s) < len(statusNames) {
		return statusNames[s]
	}

	return "status(" + strconv.Itoa(int(s)) + ")"
}

// IsOptimal reports whether the status certifies an optimum for the
// constraint set the solver was given. This is the single predicate the
// row-generation loop branches on.
func (s Status) IsOptimal() bool { return s == Optimal }
