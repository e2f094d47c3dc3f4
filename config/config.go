// SPDX-License-Identifier: MIT

// Package config loads dapfront settings from a TOML file, DAPFRONT_*
// environment variables and command-line flags, in increasing priority,
// and validates the result.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/dapfront/dap"
	"github.com/katalvlaran/dapfront/dataset"
	"github.com/katalvlaran/dapfront/logging"
	"github.com/katalvlaran/dapfront/pareto"
)

// EnvPrefix prefixes every environment override, e.g. DAPFRONT_EXPERIMENT_COUNT.
const EnvPrefix = "DAPFRONT"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the full dapfront configuration.
type Config struct {
	Log        logging.Config   `mapstructure:"log"        toml:"log"`
	Data       DataConfig       `mapstructure:"data"       toml:"data"`
	Experiment ExperimentConfig `mapstructure:"experiment" toml:"experiment"`
	Solver     SolverConfig     `mapstructure:"solver"     toml:"solver"`
}

// DataConfig locates inputs and outputs.
type DataConfig struct {
	Instances string `mapstructure:"instances" toml:"instances" validate:"required"` // YAML instances
	Results   string `mapstructure:"results"   toml:"results"   validate:"required"` // store root
	Plots     string `mapstructure:"plots"     toml:"plots"     validate:"required"`
	Metrics   string `mapstructure:"metrics"   toml:"metrics"`                       // textfile; empty disables
}

// ExperimentConfig selects the instance grid.
type ExperimentConfig struct {
	Sizes      []int    `mapstructure:"sizes"      toml:"sizes"      validate:"required,min=1,dive,min=1"`
	Strategies []string `mapstructure:"strategies" toml:"strategies" validate:"required,min=1,dive,strategy"`
	Count      int      `mapstructure:"count"      toml:"count"      validate:"min=1"`
	Seed       int64    `mapstructure:"seed"       toml:"seed"`
	Workers    int      `mapstructure:"workers"    toml:"workers"    validate:"min=0"` // 0: one per CPU
}

// SolverConfig tunes the DAP solver and the frontier orientation.
type SolverConfig struct {
	Scale     int64  `mapstructure:"scale"     toml:"scale"     validate:"min=1"`
	Cost      string `mapstructure:"cost"      toml:"cost"      validate:"direction"`
	Diversity string `mapstructure:"diversity" toml:"diversity" validate:"direction"`
}

// flagKeys maps command-line flag names onto configuration keys.
var flagKeys = map[string]string{
	"log-level":  "log.level",
	"log-format": "log.format",
	"log-file":   "log.file",
	"instances":  "data.instances",
	"results":    "data.results",
	"plots":      "data.plots",
	"metrics":    "data.metrics",
	"sizes":      "experiment.sizes",
	"divs":       "experiment.strategies",
	"count":      "experiment.count",
	"seed":       "experiment.seed",
	"workers":    "experiment.workers",
	"scale":      "solver.scale",
	"cost":       "solver.cost",
	"diversity":  "solver.diversity",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age", 7)
	v.SetDefault("log.compress", false)

	v.SetDefault("data.instances", "data")
	v.SetDefault("data.results", ".")
	v.SetDefault("data.plots", "plots")
	v.SetDefault("data.metrics", "")

	v.SetDefault("experiment.sizes", []int{4, 8, 16})
	v.SetDefault("experiment.strategies", []string{"disjoint", "distance", "uniform", "random"})
	v.SetDefault("experiment.count", 10)
	v.SetDefault("experiment.seed", 1)
	v.SetDefault("experiment.workers", 0)

	v.SetDefault("solver.scale", 1)
	v.SetDefault("solver.cost", "max")
	v.SetDefault("solver.diversity", "max")
}

// Load reads path (skipped when empty), applies environment overrides and
// the flags in fs that were set explicitly, then validates.
func Load(path string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("config: bind --%s: %w", name, err)
				}
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

func newValidator() *validator.Validate {
	val := validator.New()
	_ = val.RegisterValidation("strategy", func(fl validator.FieldLevel) bool {
		_, err := dataset.ParseStrategy(fl.Field().String())
		return err == nil
	})
	_ = val.RegisterValidation("direction", func(fl validator.FieldLevel) bool {
		_, err := pareto.ParseDirection(fl.Field().String())
		return err == nil
	})

	return val
}

// Validate checks every field constraint.
func (c *Config) Validate() error {
	if err := newValidator().Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// Strategies returns the parsed strategy list.
func (c *Config) Strategies() ([]dataset.Strategy, error) {
	out := make([]dataset.Strategy, 0, len(c.Experiment.Strategies))
	for _, s := range c.Experiment.Strategies {
		st, err := dataset.ParseStrategy(s)
		if err != nil {
			return nil, err
		}
		out = append(out, st)
	}

	return out, nil
}

// ParetoOptions translates the solver section into pareto.Options.
func (c *Config) ParetoOptions() (pareto.Options, error) {
	o := pareto.DefaultOptions()
	var err error
	if o.Cost, err = pareto.ParseDirection(c.Solver.Cost); err != nil {
		return o, err
	}
	if o.Diversity, err = pareto.ParseDirection(c.Solver.Diversity); err != nil {
		return o, err
	}
	o.Solver = dap.Options{Scale: c.Solver.Scale}

	return o, nil
}
