// SPDX-License-Identifier: MIT

package cli

import (
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlath-aoc/internal/input"
	"github.com/katalvlaran/lvlath-aoc/solver"
)

// Objectives accepted by --objective.
const (
	ObjectiveMax = "max"
	ObjectiveMin = "min"
)

// ErrBadObjective indicates --objective is neither max nor min.
var ErrBadObjective = errors.New("cli: objective must be max or min")

func newSolveCmd(a *app) *cobra.Command {
	var path, objective string
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Split a budget between weighted unknowns",
		Long: `Reads a problem (YAML, or TOML for *.toml files):

  budget: 100
  exact: true
  unknowns:
    - {name: sprinkles, weight: 2}
    - {name: butterscotch, weight: 5, max: 40}

and searches for the assignment with the best score Σ weight·value.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runSolve(cmd, path, objective)
		},
	}
	cmd.Flags().StringVarP(&path, "problem", "p", "", `problem file, "-" for stdin (read as YAML)`)
	_ = cmd.MarkFlagRequired("problem")
	cmd.Flags().StringVarP(&objective, "objective", "o", ObjectiveMax, "max or min")
	cmd.Flags().IntP("iterations", "n", 0, "iteration budget (refunded on every improvement)")
	cmd.Flags().Int64("seed", 0, "random seed, 0 for the fixed default")

	return cmd
}

func (a *app) runSolve(cmd *cobra.Command, path, objective string) error {
	if objective != ObjectiveMax && objective != ObjectiveMin {
		return errors.Wrapf(ErrBadObjective, "got %q", objective)
	}

	r, _, closeFn, err := openInput(cmd, path)
	if err != nil {
		return err
	}
	defer closeFn()

	p, err := input.ParseProblem(r, input.FormatFor(path))
	if err != nil {
		return errors.Wrapf(err, "cli: parse %s", path)
	}
	s, err := p.Solver(a.cfg.Solver.Seed, solver.WithLogger(a.log.Named("solver")))
	if err != nil {
		return err
	}

	run := s.Max
	if objective == ObjectiveMin {
		run = s.Min
	}
	res, err := run(a.cfg.Solver.Iterations)
	if err != nil {
		return err
	}
	a.log.Info("search finished",
		zap.String("objective", objective),
		zap.Int("score", res.Score),
		zap.Int("attempts", res.Iterations),
	)

	return render(cmd.OutOrStdout(), a.cfg.Output.Format, newSolveReport(p, objective, res))
}

type solveReport struct {
	Objective  string         `yaml:"objective"`
	Score      int            `yaml:"score"`
	Iterations int            `yaml:"iterations"`
	Assignment map[string]int `yaml:"assignment"`
	Variables  map[string]int `yaml:"variables"`

	problem *input.Problem
}

func newSolveReport(p *input.Problem, objective string, res solver.Result[int]) *solveReport {
	return &solveReport{
		Objective:  objective,
		Score:      res.Score,
		Iterations: res.Iterations,
		Assignment: res.Assignment,
		Variables:  res.Variables,
		problem:    p,
	}
}

func (r *solveReport) header() []string { return []string{"Unknown", "Weight", "Value"} }

func (r *solveReport) rows() [][]string {
	out := make([][]string, len(r.problem.Unknowns))
	for i, u := range r.problem.Unknowns {
		out[i] = []string{u.Name, strconv.Itoa(u.Weight), strconv.Itoa(r.Assignment[u.Name])}
	}

	return out
}

func (r *solveReport) summary() []string {
	return []string{
		"Objective: " + r.Objective,
		"Score: " + strconv.Itoa(r.Score),
		"Attempts: " + strconv.Itoa(r.Iterations),
	}
}
