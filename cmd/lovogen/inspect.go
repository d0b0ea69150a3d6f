package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/katalvlaran/lovogen/models"
	"github.com/katalvlaran/lovogen/problem"
	"github.com/montanaflynn/stats"
	"github.com/spf13/cobra"
)

func modelsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "list the registered models",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tARITY\tEXPRESSION")
			for _, m := range models.All() {
				fmt.Fprintf(tw, "%s\t%d\t%s\n", m.Name, m.Arity, m.Expr)
			}
			return tw.Flush()
		},
	}
}

func inspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect DATFILE [SOLFILE]",
		Short: "summarize a generated data file (and its solution)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var solPath string
			if len(args) == 2 {
				solPath = args[1]
			}
			data, sol, err := problem.ReadProblem(a.fs, args[0], solPath)
			if err != nil {
				return err
			}

			return summarize(cmd.OutOrStdout(), data, sol)
		},
	}
}

// summarize prints point counts and y statistics split by outlier flag.
func summarize(w io.Writer, data *problem.Data, sol *problem.Solution) error {
	var trusted, outliers stats.Float64Data
	for i, y := range data.Y {
		if data.Outlier[i] {
			outliers = append(outliers, y)
		} else {
			trusted = append(trusted, y)
		}
	}

	fmt.Fprintf(w, "points:   %d\n", len(data.Y))
	fmt.Fprintf(w, "outliers: %d\n", len(outliers))
	if len(data.X) > 0 {
		fmt.Fprintf(w, "x range:  [%g, %g]\n", data.X[0], data.X[len(data.X)-1])
	}
	for _, group := range []struct {
		name string
		ys   stats.Float64Data
	}{{"trusted", trusted}, {"outlier", outliers}} {
		if len(group.ys) == 0 {
			continue
		}
		mean, err := group.ys.Mean()
		if err != nil {
			return err
		}
		median, err := group.ys.Median()
		if err != nil {
			return err
		}
		sd, err := group.ys.StandardDeviation()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s y:  mean=%.6g median=%.6g sd=%.6g\n", group.name, mean, median, sd)
	}
	if sol != nil {
		fmt.Fprintf(w, "theta:    %v\n", sol.Theta)
		fmt.Fprintf(w, "model:    %s\n", sol.Expr)
	}

	return nil
}
