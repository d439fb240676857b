// SPDX-License-Identifier: MIT

// Package cli wires the lvlath-aoc commands: mst, solve and version.
package cli

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlath-aoc/internal/config"
	"github.com/katalvlaran/lvlath-aoc/internal/logger"
)

// flagKeys maps command-line flags to the config keys they override.
var flagKeys = map[string]string{
	"log-level":  "log.level",
	"log-json":   "log.json",
	"format":     "output.format",
	"method":     "mst.method",
	"iterations": "solver.iterations",
	"seed":       "solver.seed",
}

// app holds state shared by every command of one invocation.
type app struct {
	configFile string
	cfg        *config.Config
	log        *zap.Logger
}

// NewRootCmd returns a fresh command tree.
func NewRootCmd() *cobra.Command {
	a := &app{log: logger.Nop()}

	root := &cobra.Command{
		Use:   "lvlath-aoc",
		Short: "Spanning trees and randomized composition search for puzzle inputs",
		Long: `lvlath-aoc runs the graph and solver packages against input files.

Available commands:
  mst     - build a minimum or maximum spanning tree from an edge list
  solve   - split a budget between weighted unknowns
  version - print build information

Examples:
  lvlath-aoc mst -i towns.txt --method prim
  lvlath-aoc solve -p cookies.yaml --objective max --iterations 50000
  LVLATH_AOC_OUTPUT_FORMAT=yaml lvlath-aoc mst -i towns.txt`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) { _ = a.log.Sync() },
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (default ./lvlath-aoc.yaml or $HOME/.config/lvlath-aoc/lvlath-aoc.yaml)")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.Bool("log-json", false, "log as JSON")
	flags.StringP("format", "f", "", "output format: text or yaml")

	root.AddCommand(newMSTCmd(a), newSolveCmd(a), newVersionCmd())

	return root
}

// setup loads configuration and the logger before a command runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	v, err := config.New(a.configFile)
	if err != nil {
		return err
	}
	if err = bindFlags(cmd, v); err != nil {
		return err
	}
	if a.cfg, err = config.Load(v); err != nil {
		return err
	}
	if a.log, err = logger.New(a.cfg.Log.Level, a.cfg.Log.JSON); err != nil {
		return err
	}
	a.log.Debug("configuration loaded",
		zap.String("config_file", v.ConfigFileUsed()),
		zap.Any("settings", a.cfg),
	)

	return nil
}

// bindFlags binds every flag of cmd that has a config key.
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	for name, key := range flagKeys {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return errors.Wrapf(err, "cli: bind --%s", name)
		}
	}

	return nil
}
