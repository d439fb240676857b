// SPDX-License-Identifier: MIT

package input

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlath-aoc/solver"
)

// Problem formats.
const (
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// TotalVariable names the derived sum of all unknowns.
const TotalVariable = "total"

// ErrInvalidProblem indicates a problem that parses but cannot be solved as stated.
var ErrInvalidProblem = errors.New("input: invalid problem")

// Problem splits Budget between Unknowns and scores the split by
// Σ weight·value. With Exact the values must use the whole budget.
type Problem struct {
	Budget   int       `yaml:"budget" toml:"budget"`
	Exact    bool      `yaml:"exact" toml:"exact"`
	Unknowns []Unknown `yaml:"unknowns" toml:"unknowns"`
}

// Unknown is one share of the budget.
type Unknown struct {
	Name   string `yaml:"name" toml:"name"`
	Weight int    `yaml:"weight" toml:"weight"`
	Min    int    `yaml:"min" toml:"min"`
	// Max is optional; nil means bounded by the budget only.
	Max *int `yaml:"max,omitempty" toml:"max,omitempty"`
}

// FormatFor picks the problem format from a file extension; YAML unless .toml.
func FormatFor(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}

	return FormatYAML
}

// ParseProblem decodes and validates a problem. Unknown fields are rejected.
func ParseProblem(r io.Reader, format string) (*Problem, error) {
	var p Problem
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
			return nil, errors.Wrapf(ErrSyntax, "decode yaml problem: %v", err)
		}
	case FormatTOML:
		dec := toml.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&p); err != nil {
			return nil, errors.Wrapf(ErrSyntax, "decode toml problem: %v", err)
		}
	default:
		return nil, errors.Wrapf(ErrSyntax, "unknown problem format %q", format)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &p, nil
}

// Validate checks the budget, names and bounds.
func (p *Problem) Validate() error {
	if p.Budget < 0 {
		return errors.Wrapf(ErrInvalidProblem, "budget %d is negative", p.Budget)
	}
	if len(p.Unknowns) == 0 {
		return errors.Wrap(ErrInvalidProblem, "no unknowns")
	}
	seen := make(map[string]bool, len(p.Unknowns))
	for i, u := range p.Unknowns {
		switch {
		case u.Name == "":
			return errors.Wrapf(ErrInvalidProblem, "unknown #%d has no name", i+1)
		case seen[u.Name]:
			return errors.Wrapf(ErrInvalidProblem, "unknown %q listed twice", u.Name)
		case u.Min < 0:
			return errors.Wrapf(ErrInvalidProblem, "unknown %q: min %d is negative", u.Name, u.Min)
		case u.Max != nil && *u.Max < u.Min:
			return errors.Wrapf(ErrInvalidProblem, "unknown %q: max %d below min %d", u.Name, *u.Max, u.Min)
		}
		seen[u.Name] = true
	}

	return nil
}

// Solver builds a solver for p whose domain is seeded with seed.
//
// Registered in order: one unknown per entry, the TotalVariable variable, a
// "bounds:<name>" constraint per unknown with a non-zero min or a max, and a
// "budget" constraint when Exact.
func (p *Problem) Solver(seed int64, opts ...solver.Option) (*solver.SimpleSolver[int], error) {
	domainOpts := []solver.DomainOption{solver.WithSeed(seed)}
	if p.Exact {
		domainOpts = append(domainOpts, solver.WithExactSum())
	}

	b := solver.NewBuilder[int](opts...).
		SetValueDomain(solver.NewRangedDomain(p.Budget, domainOpts...))
	for _, u := range p.Unknowns {
		b.AddUnknown(u.Name)
	}
	b.AddVariable(TotalVariable, func(unknowns map[string]int) int {
		total := 0
		for _, v := range unknowns {
			total += v
		}
		return total
	})
	for _, u := range p.Unknowns {
		if u.Min == 0 && u.Max == nil {
			continue
		}
		name, lo, hi := u.Name, u.Min, u.Max
		b.AddConstraint("bounds:"+name, func(unknowns, _ map[string]int) bool {
			x := unknowns[name]
			return x >= lo && (hi == nil || x <= *hi)
		})
	}
	if p.Exact {
		budget := p.Budget
		b.AddConstraint("budget", func(_, variables map[string]int) bool {
			return variables[TotalVariable] == budget
		})
	}
	weights := make(map[string]int, len(p.Unknowns))
	for _, u := range p.Unknowns {
		weights[u.Name] = u.Weight
	}
	b.SetScoreFunction(func(unknowns, _ map[string]int) int {
		score := 0
		for name, v := range unknowns {
			score += weights[name] * v
		}
		return score
	})

	s, err := b.Build()
	if err != nil {
		return nil, errors.Wrap(err, "input: build solver")
	}

	return s, nil
}
