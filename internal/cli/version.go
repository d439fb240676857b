// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"runtime"

	"github.com/Masterminds/semver/v3"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X .../internal/cli.Version=v1.2.3".
var Version = "dev"

// ErrVersionMismatch indicates the binary does not satisfy --satisfies.
var ErrVersionMismatch = errors.New("cli: version does not satisfy constraint")

func newVersionCmd() *cobra.Command {
	var constraint string
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long: `Prints the version. With --satisfies, also fails unless the version
matches a semver constraint such as ">= 1.2, < 2".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "lvlath-aoc %s (%s %s/%s)\n",
				Version, runtime.Version(), runtime.GOOS, runtime.GOARCH); err != nil {
				return err
			}
			if constraint == "" {
				return nil
			}

			return checkVersion(Version, constraint)
		},
	}
	cmd.Flags().StringVar(&constraint, "satisfies", "", "semver constraint the version must match")

	return cmd
}

// checkVersion reports whether version matches constraint.
func checkVersion(version, constraint string) error {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return errors.Wrapf(err, "cli: parse constraint %q", constraint)
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return errors.WithHint(
			errors.Wrapf(ErrVersionMismatch, "%q is not a semantic version", version),
			"development builds carry no version; build with -ldflags to set one",
		)
	}
	if !c.Check(v) {
		return errors.Wrapf(ErrVersionMismatch, "%s vs %q", v, constraint)
	}

	return nil
}
