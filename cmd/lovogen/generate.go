package main

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lovogen/internal/config"
	"github.com/katalvlaran/lovogen/internal/logging"
	"github.com/katalvlaran/lovogen/models"
	"github.com/katalvlaran/lovogen/problem"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func generateCmd(a *app) *cobra.Command {
	var (
		cfgPath string
		flagCfg = config.Default()
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "generate a data file and its solution file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Context(), cfgPath, a.env)
			if err != nil {
				return err
			}
			overlayFlags(cmd.Flags(), &cfg, flagCfg)
			if err = cfg.Validate(); err != nil {
				return err
			}

			logger, err := logging.New(cfg.LogLevel, a.logOut)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			return runGenerate(logging.WithLogger(cmd.Context(), logger), cmd, a, cfg)
		},
	}

	f := cmd.Flags()
	f.StringVar(&cfgPath, "config", "", "TOML configuration file")
	f.StringVar(&flagCfg.Model, "model", flagCfg.Model, "model name (see `lovogen models`)")
	f.IntVar(&flagCfg.Points, "np", flagCfg.Points, "number of points")
	f.IntVar(&flagCfg.Trusted, "p", flagCfg.Trusted, "number of trusted points")
	f.Int64Var(&flagCfg.Seed, "seed", 0, "RNG seed (0: non-reproducible)")
	f.Float64Var(&flagCfg.XMin, "xmin", flagCfg.XMin, "domain lower bound")
	f.Float64Var(&flagCfg.XMax, "xmax", flagCfg.XMax, "domain upper bound")
	f.Float64Var(&flagCfg.Std, "std", flagCfg.Std, "measurement noise standard deviation")
	f.Float64Var(&flagCfg.OutTimes, "out-times", flagCfg.OutTimes, "outlier magnitude multiplier")
	f.Float64SliceVar(&flagCfg.Theta, "theta", nil, "fixed solution (comma separated)")
	f.BoolVar(&flagCfg.Cluster.Enabled, "clustered", false, "cluster all outliers in [cluster-lo, cluster-hi]")
	f.Float64Var(&flagCfg.Cluster.Lo, "cluster-lo", 0, "cluster lower bound")
	f.Float64Var(&flagCfg.Cluster.Hi, "cluster-hi", 0, "cluster upper bound")
	f.StringVar(&flagCfg.DataPath, "dat", flagCfg.DataPath, "data file path")
	f.StringVar(&flagCfg.SolutionPath, "sol", flagCfg.SolutionPath, "solution file path")
	f.StringVar(&flagCfg.LogLevel, "log-level", flagCfg.LogLevel, "debug, info, warn or error")

	return cmd
}

// overlayFlags copies explicitly set flags over the loaded configuration.
func overlayFlags(fs *pflag.FlagSet, cfg *config.Config, from config.Config) {
	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "model":
			cfg.Model = from.Model
		case "np":
			cfg.Points = from.Points
		case "p":
			cfg.Trusted = from.Trusted
		case "seed":
			cfg.Seed = from.Seed
		case "xmin":
			cfg.XMin = from.XMin
		case "xmax":
			cfg.XMax = from.XMax
		case "std":
			cfg.Std = from.Std
		case "out-times":
			cfg.OutTimes = from.OutTimes
		case "theta":
			cfg.Theta = from.Theta
		case "clustered":
			cfg.Cluster.Enabled = from.Cluster.Enabled
		case "cluster-lo":
			cfg.Cluster.Lo = from.Cluster.Lo
		case "cluster-hi":
			cfg.Cluster.Hi = from.Cluster.Hi
		case "dat":
			cfg.DataPath = from.DataPath
		case "sol":
			cfg.SolutionPath = from.SolutionPath
		case "log-level":
			cfg.LogLevel = from.LogLevel
		}
	})
}

// runGenerate writes the problem described by a validated cfg.
func runGenerate(ctx context.Context, cmd *cobra.Command, a *app, cfg config.Config) error {
	logger := logging.FromContext(ctx)
	m, err := models.Lookup(cfg.Model)
	if err != nil {
		return err
	}

	opts := []problem.Option{problem.WithSynth(cfg.SynthOptions()...)}
	if cfg.Cluster.Enabled {
		opts = append(opts, problem.WithCluster(cfg.Cluster.Lo, cfg.Cluster.Hi))
	}
	logger.Debugw("generating",
		"model", m.Name, "np", cfg.Points, "p", cfg.Trusted, "seed", cfg.Seed,
		"xmin", cfg.XMin, "xmax", cfg.XMax, "clustered", cfg.Cluster.Enabled)

	res, err := problem.WriteProblemFiles(a.fs, cfg.DataPath, cfg.SolutionPath, m, cfg.Points, cfg.Trusted, opts...)
	if err != nil {
		return err
	}
	logger.Infow("problem written",
		"model", m.Name, "data", cfg.DataPath, "solution", cfg.SolutionPath,
		"points", cfg.Points, "outliers", len(res.Outliers), "theta", res.Theta)
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", cfg.DataPath, cfg.SolutionPath)

	return nil
}
