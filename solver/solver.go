// SPDX-License-Identifier: MIT
//
// File: solver.go
// Role: the frozen solver and its generate-and-test search loop.

package solver

import (
	"maps"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// Solver searches for the best-scoring assignment.
type Solver[T Number] interface {
	Max(maxIterations int) (Result[T], error)
	Min(maxIterations int) (Result[T], error)
}

var _ Solver[int] = (*SimpleSolver[int])(nil)

// Result is the best attempt found by a search.
type Result[T Number] struct {
	// Score of the best attempt.
	Score T
	// Assignment maps every unknown to its value in the best attempt.
	Assignment map[string]T
	// Variables holds the derived values of the best attempt.
	Variables map[string]T
	// Iterations counts attempts made, refunded ones included.
	Iterations int
}

// SimpleSolver is an immutable problem description produced by Builder.Build.
// It is not safe for concurrent use: searches draw from the shared domain.
type SimpleSolver[T Number] struct {
	log         *zap.Logger
	unknowns    []string
	domain      ValueDomain[T]
	variables   []namedVariable[T]
	constraints []namedConstraint[T]
	score       ScoreFunc[T]
}

// Unknowns returns the unknown names in registration order.
func (s *SimpleSolver[T]) Unknowns() []string {
	return append([]string(nil), s.unknowns...)
}

// VariableNames returns the variable names in registration order.
func (s *SimpleSolver[T]) VariableNames() []string {
	out := make([]string, len(s.variables))
	for i, v := range s.variables {
		out[i] = v.name
	}

	return out
}

// ConstraintNames returns the constraint names in registration order.
func (s *SimpleSolver[T]) ConstraintNames() []string {
	out := make([]string, len(s.constraints))
	for i, c := range s.constraints {
		out[i] = c.name
	}

	return out
}

// Max returns the highest-scoring passing attempt.
//
// Errors:
//   - ErrBadIterations : maxIterations <= 0.
//   - ErrDomainSize    : the domain returned the wrong number of values.
//   - ErrNoValidScore  : no attempt passed every constraint.
func (s *SimpleSolver[T]) Max(maxIterations int) (Result[T], error) {
	return s.search("max", maxIterations, func(candidate, best T) bool { return candidate > best })
}

// Min returns the lowest-scoring passing attempt. Errors as for Max.
func (s *SimpleSolver[T]) Min(maxIterations int) (Result[T], error) {
	return s.search("min", maxIterations, func(candidate, best T) bool { return candidate < best })
}

// search runs generate-and-test. Each attempt costs one iteration and a new
// best refunds it, so the loop ends once maxIterations attempts have failed or
// not improved. There is no cap on refunds.
func (s *SimpleSolver[T]) search(objective string, maxIterations int, improves func(candidate, best T) bool) (Result[T], error) {
	if maxIterations <= 0 {
		return Result[T]{}, errors.Wrapf(ErrBadIterations, "got %d", maxIterations)
	}

	var (
		best      Result[T]
		found     bool
		attempts  int
		remaining = maxIterations
		unknowns  = make(map[string]T, len(s.unknowns))
		variables = make(map[string]T, len(s.variables))
	)
	for remaining > 0 {
		remaining--
		attempts++

		values := s.domain.RandomValues(len(s.unknowns))
		if len(values) != len(s.unknowns) {
			return Result[T]{}, errors.Wrapf(ErrDomainSize, "want %d, got %d", len(s.unknowns), len(values))
		}
		for i, name := range s.unknowns {
			unknowns[name] = values[i]
		}
		for _, v := range s.variables {
			variables[v.name] = v.fn(unknowns)
		}
		if !s.satisfied(unknowns, variables) {
			continue
		}

		score := s.score(unknowns, variables)
		if found && !improves(score, best.Score) {
			continue
		}
		found = true
		best.Score = score
		best.Assignment = maps.Clone(unknowns)
		best.Variables = maps.Clone(variables)
		remaining++
		s.log.Debug("new best",
			zap.String("objective", objective),
			zap.Int("attempt", attempts),
			zap.Any("score", score),
		)
	}

	if !found {
		return Result[T]{}, errors.WithHint(
			errors.Wrapf(ErrNoValidScore, "%s over %d attempts", objective, attempts),
			"the constraints may be unsatisfiable for this domain; try a larger iteration budget",
		)
	}
	best.Iterations = attempts

	return best, nil
}

// satisfied reports whether every constraint accepts the attempt.
func (s *SimpleSolver[T]) satisfied(unknowns, variables map[string]T) bool {
	for _, c := range s.constraints {
		if !c.fn(unknowns, variables) {
			return false
		}
	}

	return true
}
