// SPDX-License-Identifier: MIT

// Package logger builds the zap logger used by the lvlath-aoc command.
// Library packages never log on their own; they accept a *zap.Logger.
package logger

import (
	"os"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultLevel is used when no level is configured.
const DefaultLevel = "info"

// ErrBadLevel indicates an unrecognised level name.
var ErrBadLevel = errors.New("logger: unknown level")

// ParseLevel maps "debug", "info", "warn", "error" (and zap's other names) to
// a level. An empty string means DefaultLevel.
func ParseLevel(name string) (zapcore.Level, error) {
	if name == "" {
		name = DefaultLevel
	}
	lvl, err := zapcore.ParseLevel(name)
	if err != nil {
		return zapcore.InfoLevel, errors.WithHint(
			errors.Wrapf(ErrBadLevel, "%q", name),
			"use one of debug, info, warn, error",
		)
	}

	return lvl, nil
}

// New returns a logger at the given level. JSON output uses zap's production
// config; otherwise a console encoder writes to stderr.
func New(level string, jsonOutput bool) (*zap.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	if jsonOutput {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(lvl)
		l, err := config.Build()
		if err != nil {
			return nil, errors.Wrap(err, "logger: build json config")
		}
		return l, nil
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	encoderConfig.TimeKey = ""

	return zap.New(
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderConfig),
			zapcore.Lock(os.Stderr),
			lvl,
		),
	), nil
}

// Nop returns a logger that discards everything.
func Nop() *zap.Logger {
	return zap.NewNop()
}
