// SPDX-License-Identifier: MIT
//
// Package solver is a randomized generate-and-test optimizer over a small set
// of numeric unknowns.
//
// A problem is described once through a Builder:
//
//   - unknowns: names the ValueDomain assigns on every attempt, in
//     registration order;
//   - variables: derived quantities, pure functions of the unknowns;
//   - constraints: predicates over (unknowns, variables); one failing
//     predicate discards the whole attempt;
//   - a score function over (unknowns, variables).
//
// Build validates the description and freezes it into a SimpleSolver. Max and
// Min then repeat: draw a full assignment, recompute variables, test every
// constraint, score. The first passing attempt, and every strict improvement
// after it, becomes the new best and refunds one iteration, so the budget only
// burns down on failing or non-improving attempts.
//
// Errors:
//
//   - ErrInvalidConfig (and its children ErrNoScoreFunction, ErrNoValueDomain,
//     ErrNoUnknowns, ErrBadIterations, ErrDomainSize): the solver was built or
//     called incorrectly. Returned before any search work, except
//     ErrDomainSize which surfaces on the first bad draw.
//   - ErrNoValidScore: the budget ran out without a single passing attempt.
//
// Determinism: domains own a *rand.Rand. Seed 0 maps to a fixed default seed,
// so two solvers built with the same seed and the same description return the
// same Result. Neither domains nor solvers are safe for concurrent use.
package solver
