// Command lovogen writes synthetic curve-fitting / LOVO test problems.
//
//	lovogen generate --model logistic --np 100 --p 90 --seed 7
//	lovogen generate --config run.toml --clustered --cluster-lo 2 --cluster-hi 4
//	lovogen models
//	lovogen inspect data.txt sol.txt
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sethvargo/go-envconfig"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// app carries the process dependencies so tests can swap them.
type app struct {
	fs     afero.Fs
	out    io.Writer
	logOut io.Writer
	env    envconfig.Lookuper
}

func main() {
	a := &app{
		fs:     afero.NewOsFs(),
		out:    os.Stdout,
		logOut: os.Stderr,
		env:    envconfig.OsLookuper(),
	}
	if err := newRootCmd(a).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "lovogen",
		Short:         "generate noisy test problems for curve-fitting and LOVO solvers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(a.out)
	root.AddCommand(generateCmd(a), modelsCmd(a), inspectCmd(a))

	return root
}
