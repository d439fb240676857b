// SPDX-License-Identifier: MIT
//
// File: builder.go
// Role: mutable problem description, frozen by Build into a SimpleSolver.
// Policy:
//   - First registration wins for unknowns, variables and constraints; later
//     ones with the same name are ignored and logged at debug level.
//   - nil functions and nil options are programmer errors and panic.

package solver

import (
	"go.uber.org/zap"
	"golang.org/x/exp/constraints"
)

// Number is the value set the solver can compare and score.
type Number interface {
	constraints.Integer | constraints.Float
}

// VariableFunc derives a value from the current unknowns.
// The map is reused between attempts; do not retain it.
type VariableFunc[T Number] func(unknowns map[string]T) T

// ConstraintFunc accepts or rejects an attempt.
type ConstraintFunc[T Number] func(unknowns, variables map[string]T) bool

// ScoreFunc scores an attempt that passed every constraint.
type ScoreFunc[T Number] func(unknowns, variables map[string]T) T

// Option customizes a Builder.
type Option func(*builderConfig)

type builderConfig struct {
	log *zap.Logger
}

// WithLogger routes debug events (improvements, ignored duplicates) to l.
// Panics on nil; the default is zap.NewNop().
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("solver: WithLogger(nil)")
	}
	return func(c *builderConfig) {
		c.log = l
	}
}

type namedVariable[T Number] struct {
	name string
	fn   VariableFunc[T]
}

type namedConstraint[T Number] struct {
	name string
	fn   ConstraintFunc[T]
}

// Builder collects a problem description. The zero value is not usable; call NewBuilder.
type Builder[T Number] struct {
	log         *zap.Logger
	unknowns    []string
	domain      ValueDomain[T]
	variables   []namedVariable[T]
	constraints []namedConstraint[T]
	score       ScoreFunc[T]
	seen        map[registration]struct{}
}

// registration keys the first-wins bookkeeping; each kind has its own namespace.
type registration struct {
	kind, name string
}

// NewBuilder returns an empty Builder.
func NewBuilder[T Number](opts ...Option) *Builder[T] {
	c := builderConfig{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&c)
	}

	return &Builder[T]{
		log:  c.log,
		seen: make(map[registration]struct{}),
	}
}

// AddUnknown registers an unknown assigned by the domain on every attempt.
func (b *Builder[T]) AddUnknown(name string) *Builder[T] {
	if !b.claim("unknown", name) {
		return b
	}
	b.unknowns = append(b.unknowns, name)

	return b
}

// SetValueDomain sets the domain; the last call wins.
func (b *Builder[T]) SetValueDomain(d ValueDomain[T]) *Builder[T] {
	b.domain = d

	return b
}

// AddVariable registers a derived quantity. Panics on nil fn.
func (b *Builder[T]) AddVariable(name string, fn VariableFunc[T]) *Builder[T] {
	if fn == nil {
		panic("solver: AddVariable(" + name + ", nil)")
	}
	if !b.claim("variable", name) {
		return b
	}
	b.variables = append(b.variables, namedVariable[T]{name: name, fn: fn})

	return b
}

// AddConstraint registers a predicate every accepted attempt must satisfy.
// Panics on nil fn.
func (b *Builder[T]) AddConstraint(name string, fn ConstraintFunc[T]) *Builder[T] {
	if fn == nil {
		panic("solver: AddConstraint(" + name + ", nil)")
	}
	if !b.claim("constraint", name) {
		return b
	}
	b.constraints = append(b.constraints, namedConstraint[T]{name: name, fn: fn})

	return b
}

// SetScoreFunction sets the objective; the last call wins.
func (b *Builder[T]) SetScoreFunction(fn ScoreFunc[T]) *Builder[T] {
	b.score = fn

	return b
}

// Build validates the description and freezes it.
//
// Errors (all match ErrInvalidConfig):
//   - ErrNoScoreFunction
//   - ErrNoValueDomain
//   - ErrNoUnknowns
func (b *Builder[T]) Build() (*SimpleSolver[T], error) {
	switch {
	case b.score == nil:
		return nil, ErrNoScoreFunction
	case b.domain == nil:
		return nil, ErrNoValueDomain
	case len(b.unknowns) == 0:
		return nil, ErrNoUnknowns
	}

	return &SimpleSolver[T]{
		log:         b.log,
		unknowns:    append([]string(nil), b.unknowns...),
		domain:      b.domain,
		variables:   append([]namedVariable[T](nil), b.variables...),
		constraints: append([]namedConstraint[T](nil), b.constraints...),
		score:       b.score,
	}, nil
}

// claim reports whether name is new for kind, recording it if so.
func (b *Builder[T]) claim(kind, name string) bool {
	key := registration{kind: kind, name: name}
	if _, taken := b.seen[key]; taken {
		b.log.Debug("ignoring duplicate registration", zap.String("kind", kind), zap.String("name", name))
		return false
	}
	b.seen[key] = struct{}{}

	return true
}
