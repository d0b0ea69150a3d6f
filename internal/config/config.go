// Package config resolves the lovogen CLI configuration.
//
// Resolution order (later wins): Default() → TOML file → LOVOGEN_* environment
// variables → command-line flags (applied by the caller).
package config

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/katalvlaran/lovogen/models"
	"github.com/katalvlaran/lovogen/synth"
	"github.com/sethvargo/go-envconfig"
	"go.uber.org/zap/zapcore"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "LOVOGEN_"

// ErrInvalidConfig is returned by Load and Validate for unusable settings.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds every knob of a generate run.
type Config struct {
	Model    string  `toml:"model" env:"MODEL, overwrite"`
	Points   int     `toml:"points" env:"POINTS, overwrite"`
	Trusted  int     `toml:"trusted" env:"TRUSTED, overwrite"`
	Seed     int64   `toml:"seed" env:"SEED, overwrite"`
	XMin     float64 `toml:"xmin" env:"XMIN, overwrite"`
	XMax     float64 `toml:"xmax" env:"XMAX, overwrite"`
	Std      float64 `toml:"std" env:"STD, overwrite"`
	OutTimes float64 `toml:"out_times" env:"OUT_TIMES, overwrite"`
	// Theta fixes the solution; empty means drawn.
	Theta []float64 `toml:"theta" env:"THETA, overwrite"`

	Cluster Cluster `toml:"cluster" env:", prefix=CLUSTER_"`

	DataPath     string `toml:"data_path" env:"DATA_PATH, overwrite"`
	SolutionPath string `toml:"solution_path" env:"SOLUTION_PATH, overwrite"`
	LogLevel     string `toml:"log_level" env:"LOG_LEVEL, overwrite"`
}

// Cluster configures clustered outliers.
type Cluster struct {
	Enabled bool    `toml:"enabled" env:"ENABLED, overwrite"`
	Lo      float64 `toml:"lo" env:"LO, overwrite"`
	Hi      float64 `toml:"hi" env:"HI, overwrite"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Model:        models.Linear,
		Points:       100,
		Trusted:      90,
		XMin:         synth.DefaultXMin,
		XMax:         synth.DefaultXMax,
		Std:          synth.DefaultStd,
		OutTimes:     synth.DefaultOutTimes,
		DataPath:     "data.txt",
		SolutionPath: "sol.txt",
		LogLevel:     "info",
	}
}

// Load resolves Default, then the TOML file at path (skipped when empty),
// then environment variables from lookuper (nil means the process
// environment). The result is not validated.
func Load(ctx context.Context, path string, lookuper envconfig.Lookuper) (Config, error) {
	cfg := Default()
	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return cfg, fmt.Errorf("config: unknown keys %s in %s: %w", strings.Join(keys, ", "), path, ErrInvalidConfig)
		}
	}

	if lookuper == nil {
		lookuper = envconfig.OsLookuper()
	}
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: envconfig.PrefixLookuper(EnvPrefix, lookuper),
	}); err != nil {
		return cfg, fmt.Errorf("config: environment: %w", err)
	}

	return cfg, nil
}

// Validate checks the configuration against the model registry and the
// generator preconditions.
func (c Config) Validate() error {
	m, err := models.Lookup(c.Model)
	if err != nil {
		return fmt.Errorf("config: model: %v: %w", err, ErrInvalidConfig)
	}
	if c.Points < 1 {
		return fmt.Errorf("config: points=%d < 1: %w", c.Points, ErrInvalidConfig)
	}
	if !finite(c.XMin, c.XMax) {
		return fmt.Errorf("config: xmin=%g and xmax=%g must be finite: %w", c.XMin, c.XMax, ErrInvalidConfig)
	}
	if c.XMin > c.XMax {
		return fmt.Errorf("config: xmin=%g > xmax=%g: %w", c.XMin, c.XMax, ErrInvalidConfig)
	}
	if !(c.Std > 0) || !(c.OutTimes > 0) || !finite(c.Std, c.OutTimes) {
		return fmt.Errorf("config: std=%g and out_times=%g must be finite and > 0: %w", c.Std, c.OutTimes, ErrInvalidConfig)
	}
	if len(c.Theta) > 0 && len(c.Theta) != m.Arity {
		return fmt.Errorf("config: %d theta values for %s (arity %d): %w", len(c.Theta), m.Name, m.Arity, ErrInvalidConfig)
	}
	if c.Cluster.Enabled {
		if !finite(c.Cluster.Lo, c.Cluster.Hi) {
			return fmt.Errorf("config: cluster [%g, %g] must be finite: %w", c.Cluster.Lo, c.Cluster.Hi, ErrInvalidConfig)
		}
		domain := synth.Interval{Lo: c.XMin, Hi: c.XMax}
		if !domain.Contains(synth.Interval{Lo: c.Cluster.Lo, Hi: c.Cluster.Hi}) {
			return fmt.Errorf("config: cluster [%g, %g] not inside [%g, %g]: %w",
				c.Cluster.Lo, c.Cluster.Hi, c.XMin, c.XMax, ErrInvalidConfig)
		}
	}
	if c.DataPath == "" || c.SolutionPath == "" {
		return fmt.Errorf("config: data and solution paths are required: %w", ErrInvalidConfig)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: log level %q: %w", c.LogLevel, ErrInvalidConfig)
	}

	return nil
}

// SynthOptions translates the generator knobs into synth options.
// It assumes Validate has passed.
func (c Config) SynthOptions() []synth.Option {
	opts := []synth.Option{
		synth.WithInterval(c.XMin, c.XMax),
		synth.WithStd(c.Std),
		synth.WithOutTimes(c.OutTimes),
	}
	if c.Seed != 0 {
		opts = append(opts, synth.WithSeed(c.Seed))
	}
	if len(c.Theta) > 0 {
		opts = append(opts, synth.WithTheta(c.Theta))
	}

	return opts
}

// finite reports whether every value is neither NaN nor ±Inf.
func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
