// SPDX-License-Identifier: MIT

package solver

import (
	"github.com/cockroachdb/errors"
)

// ErrInvalidConfig is the parent of every configuration error. Match it with
// errors.Is to tell programming errors apart from ErrNoValidScore.
var ErrInvalidConfig = errors.New("solver: invalid configuration")

var (
	// ErrNoScoreFunction indicates SetScoreFunction was never called.
	ErrNoScoreFunction = configError("no score function")

	// ErrNoValueDomain indicates SetValueDomain was never called.
	ErrNoValueDomain = configError("no value domain")

	// ErrNoUnknowns indicates no unknown was registered.
	ErrNoUnknowns = configError("no unknowns")

	// ErrBadIterations indicates a non-positive iteration budget.
	ErrBadIterations = configError("iteration budget must be positive")

	// ErrDomainSize indicates the domain returned a value count different from
	// the number of unknowns.
	ErrDomainSize = configError("value domain returned wrong number of values")
)

// ErrNoValidScore indicates no attempt satisfied every constraint within the budget.
var ErrNoValidScore = errors.New("solver: no valid score found")

// configError returns a sentinel wrapping ErrInvalidConfig.
func configError(msg string) error {
	return errors.Wrap(ErrInvalidConfig, msg)
}
