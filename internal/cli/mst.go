// SPDX-License-Identifier: MIT

package cli

import (
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlath-aoc/core"
	"github.com/katalvlaran/lvlath-aoc/internal/input"
	"github.com/katalvlaran/lvlath-aoc/prim_kruskal"
)

func newMSTCmd(a *app) *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "mst",
		Short: "Build a spanning tree from an edge list",
		Long: `Reads "A B weight" lines (weight optional, '#' starts a comment) as an
undirected graph and prints a spanning tree, or a forest when the graph is
disconnected. Unweighted edges never enter the tree.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runMST(cmd, path)
		},
	}
	cmd.Flags().StringVarP(&path, "input", "i", "", `edge list file, "-" for stdin`)
	_ = cmd.MarkFlagRequired("input")
	cmd.Flags().StringP("method", "m", "", "kruskal-min, kruskal-max or prim")

	return cmd
}

func (a *app) runMST(cmd *cobra.Command, path string) error {
	r, name, closeFn, err := openInput(cmd, path)
	if err != nil {
		return err
	}
	defer closeFn()

	g, err := input.ParseEdgeList(r, name)
	if err != nil {
		return errors.Wrapf(err, "cli: parse %s", path)
	}

	method := a.cfg.MST.Method
	opts := prim_kruskal.MSTOptions[int]{Method: method}
	if method == prim_kruskal.MethodPrim {
		opts = prim_kruskal.PrimOptions(math.MinInt, math.MaxInt)
	}
	tree, err := prim_kruskal.Compute(g, opts)
	if err != nil {
		return err
	}

	rep := newMSTReport(g, method, tree)
	stats := g.Stats()
	a.log.Info("spanning tree built",
		zap.String("graph", stats.Name),
		zap.String("method", method),
		zap.Int("vertices", stats.VertexCount),
		zap.Int("edges", stats.EdgeCount),
		zap.Int("weighted_edges", stats.WeightedEdgeCount),
		zap.Int("tree_edges", len(tree)),
		zap.Int("total", rep.Total),
	)

	return render(cmd.OutOrStdout(), a.cfg.Output.Format, rep)
}

type mstReport struct {
	Graph     string    `yaml:"graph"`
	Method    string    `yaml:"method"`
	Vertices  int       `yaml:"vertices"`
	Connected bool      `yaml:"connected"`
	Total     int       `yaml:"total"`
	Edges     []edgeRow `yaml:"edges"`
}

type edgeRow struct {
	Source string `yaml:"source"`
	Target string `yaml:"target"`
	Weight int    `yaml:"weight"`
}

func newMSTReport(g *core.Graph[string, int], method string, tree []*core.Edge[int]) *mstReport {
	rep := &mstReport{
		Graph:     g.Name(),
		Method:    method,
		Vertices:  g.Size(),
		Connected: g.Size() <= 1 || len(tree) == g.Size()-1,
		Total:     prim_kruskal.TotalWeight(tree),
		Edges:     make([]edgeRow, 0, len(tree)),
	}
	for _, e := range tree {
		w, _ := e.Weight()
		rep.Edges = append(rep.Edges, edgeRow{Source: e.Source(), Target: e.Target(), Weight: w})
	}

	return rep
}

func (r *mstReport) header() []string { return []string{"Source", "Target", "Weight"} }

func (r *mstReport) rows() [][]string {
	out := make([][]string, len(r.Edges))
	for i, e := range r.Edges {
		out[i] = []string{e.Source, e.Target, strconv.Itoa(e.Weight)}
	}

	return out
}

func (r *mstReport) summary() []string {
	lines := []string{
		"Method: " + r.Method,
		"Total: " + strconv.Itoa(r.Total),
	}
	if !r.Connected {
		lines = append(lines, "Graph is disconnected: result is a spanning forest")
	}

	return lines
}

// openInput opens path, or stdin for "-". The name is the file's base name.
func openInput(cmd *cobra.Command, path string) (io.Reader, string, func(), error) {
	if path == "-" {
		return cmd.InOrStdin(), "stdin", func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, "", nil, errors.Wrap(err, "cli: open input")
	}

	return f, filepath.Base(path), func() { _ = f.Close() }, nil
}
