// SPDX-License-Identifier: MIT

// Package input parses the lvlath-aoc command inputs: whitespace separated
// edge lists for the mst command and composition problems for solve.
package input

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvlath-aoc/core"
)

// ErrSyntax indicates a malformed input line or document.
var ErrSyntax = errors.New("input: syntax error")

// ErrDuplicateEdge indicates the same unordered pair appears twice.
var ErrDuplicateEdge = errors.New("input: duplicate edge")

// ParseEdgeList reads lines of the form "A B 5" into an undirected graph
// named name. The weight column is optional; edges without it are unweighted.
// Blank lines and lines starting with '#' are skipped. Vertices are created
// on first mention.
func ParseEdgeList(r io.Reader, name string) (*core.Graph[string, int], error) {
	g := core.NewGraph[string, int](name)
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 && len(fields) != 3 {
			return nil, errors.Wrapf(ErrSyntax, "line %d: want \"A B [weight]\", got %d fields", lineNo, len(fields))
		}
		a, b := fields[0], fields[1]
		var opts []core.EdgeOption[int]
		if len(fields) == 3 {
			w, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, errors.Wrapf(ErrSyntax, "line %d: weight %q is not an integer", lineNo, fields[2])
			}
			opts = append(opts, core.WithWeight(w))
		}

		g.AddVertexID(a)
		g.AddVertexID(b)
		if !g.AddUndirectedEdge(a, b, opts...) {
			return nil, errors.Wrapf(ErrDuplicateEdge, "line %d: %s %s", lineNo, a, b)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "input: read edge list")
	}

	return g, nil
}
