// SPDX-License-Identifier: MIT

// Command lvlath-aoc runs spanning-tree and solver jobs from input files.
package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlath-aoc/internal/cli"
	"github.com/katalvlaran/lvlath-aoc/internal/logger"
)

func main() {
	err := cli.NewRootCmd().Execute()
	if err == nil {
		return
	}

	log, lerr := logger.New(logger.DefaultLevel, false)
	if lerr != nil {
		fmt.Fprintf(os.Stderr, "lvlath-aoc: %v\n", err)
		os.Exit(1)
	}
	fields := []zap.Field{zap.Error(err)}
	if hint := errors.FlattenHints(err); hint != "" {
		fields = append(fields, zap.String("hint", hint))
	}
	log.Error("lvlath-aoc failed", fields...)
	_ = log.Sync()
	os.Exit(1)
}
