// SPDX-License-Identifier: MIT

// Package config loads lvlath-aoc settings with viper.
//
// Precedence, highest first: command-line flags bound with BindPFlag,
// LVLATH_AOC_* environment variables, the config file, SetDefaults.
package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvlath-aoc/internal/logger"
	"github.com/katalvlaran/lvlath-aoc/prim_kruskal"
)

// EnvPrefix prefixes every environment override, e.g. LVLATH_AOC_LOG_LEVEL.
const EnvPrefix = "LVLATH_AOC"

// FileName is the config file base name searched for without --config.
const FileName = "lvlath-aoc"

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// ErrInvalid indicates a setting outside its accepted values.
var ErrInvalid = errors.New("config: invalid setting")

// Config is the unmarshalled configuration.
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Solver SolverConfig `mapstructure:"solver"`
	MST    MSTConfig    `mapstructure:"mst"`
	Output OutputConfig `mapstructure:"output"`
}

// LogConfig configures internal/logger.
type LogConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

// SolverConfig configures the solve command.
type SolverConfig struct {
	Iterations int   `mapstructure:"iterations"`
	Seed       int64 `mapstructure:"seed"`
}

// MSTConfig configures the mst command.
type MSTConfig struct {
	Method string `mapstructure:"method"`
}

// OutputConfig selects how results are printed.
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// SetDefaults registers the default for every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.level", logger.DefaultLevel)
	v.SetDefault("log.json", false)

	v.SetDefault("solver.iterations", 10000)
	v.SetDefault("solver.seed", 0) // 0 selects the solver's fixed default seed

	v.SetDefault("mst.method", prim_kruskal.MethodKruskalMin)

	v.SetDefault("output.format", FormatText)
}

// New returns a viper instance with defaults and environment binding.
// With configFile set, that file must exist; otherwise lvlath-aoc.{yaml,toml,...}
// is looked up in the working directory and $HOME/.config/lvlath-aoc, and a
// missing file is not an error.
func New(configFile string) (*viper.Viper, error) {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "config: read %s", configFile)
		}
		return v, nil
	}

	v.SetConfigName(FileName)
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", FileName))
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "config: read")
		}
	}

	return v, nil
}

// Load unmarshals v and validates the result.
func Load(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, errors.Wrap(err, "config: unmarshal")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// Validate checks every enumerated or bounded setting.
func (c *Config) Validate() error {
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrapf(ErrInvalid, "log.level: %v", err)
	}
	if c.Solver.Iterations <= 0 {
		return errors.Wrapf(ErrInvalid, "solver.iterations must be positive, got %d", c.Solver.Iterations)
	}
	if !slices.Contains(prim_kruskal.Methods(), c.MST.Method) {
		return errors.WithHintf(
			errors.Wrapf(ErrInvalid, "mst.method %q", c.MST.Method),
			"valid methods: %s", strings.Join(prim_kruskal.Methods(), ", "),
		)
	}
	if c.Output.Format != FormatText && c.Output.Format != FormatYAML {
		return errors.Wrapf(ErrInvalid, "output.format %q, want %s or %s", c.Output.Format, FormatText, FormatYAML)
	}

	return nil
}
