// Package cutplane is a small, focused toolkit for solving large or
// implicitly-defined linear programs by row generation (the cutting-plane
// method) — start from a relaxation with few rows, separate, add one
// violated constraint, re-solve, repeat.
//
// 🚀 What is cutplane?
//
//	A generic, engine-agnostic library that brings together:
//		• The row-generation loop: solve/separate alternation to convergence
//		• Max-violated oracle: full scan, commit the steepest cut
//		• First-violated oracle: short-circuit on the first violation
//		• Random-violated oracle: first-violated from a random start point
//		• A tiny shared Status vocabulary any LP engine can map onto
//
// ✨ Why choose cutplane?
//
//   - Engine-agnostic – drive GLPK bindings, a pure-Go simplex, or an RPC
//     solver through one () -> status callable
//   - Generic – candidate and measure types are yours; the library only
//     touches them through the callables you supply
//   - Deterministic by default – the randomized oracle falls back to a
//     fixed seed, so unseeded runs reproduce
//   - Observable – opt-in structured logging of every solve round
//
// Under the hood, everything is organized under two subpackages:
//
//	lp/     — the Status enum shared between solver bindings and the loop
//	rowgen/ — the loop (Run) and the three separation-oracle constructors
//
// Quick sketch:
//
//	relax ──solve──▶ optimal? ──separate──▶ violated row? ──add──▶ re-solve
//	                    │                        │
//	              no: report status        no: true optimum
//
// Dive into the package docs and examples/ for complete wirings, and
// rowgen/doc.go for the policy trade-offs between the three oracles.
//
//	go get github.com/katalvlaran/cutplane
package cutplane
