// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlath-aoc/internal/config"
)

// report is anything a command prints: a table plus summary lines in text
// mode, the value itself in YAML mode.
type report interface {
	header() []string
	rows() [][]string
	summary() []string
}

// render writes r to w in the given format.
func render(w io.Writer, format string, r report) error {
	if format == config.FormatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return errors.Wrap(err, "cli: encode yaml")
		}
		return errors.Wrap(enc.Close(), "cli: encode yaml")
	}

	if rows := r.rows(); len(rows) > 0 {
		data := append(pterm.TableData{r.header()}, rows...)
		table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
		if err != nil {
			return errors.Wrap(err, "cli: render table")
		}
		if _, err = fmt.Fprintln(w, table); err != nil {
			return errors.Wrap(err, "cli: write table")
		}
	}
	for _, line := range r.summary() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return errors.Wrap(err, "cli: write summary")
		}
	}

	return nil
}
