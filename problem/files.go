// SPDX-License-Identifier: MIT

package problem

import (
	"bytes"
	"fmt"
	"os"

	"github.com/katalvlaran/lovogen/models"
	"github.com/katalvlaran/lovogen/synth"
	"github.com/spf13/afero"
)

// filePerm is the mode of created problem files.
const filePerm os.FileMode = 0o644

// Option customizes WriteProblemFiles.
type Option func(*writeConfig)

type writeConfig struct {
	cluster  *synth.Interval
	synthOps []synth.Option
}

// WithCluster confines all outliers to [lo, hi] (clustered generation).
// Nesting in the domain is checked at generation time.
func WithCluster(lo, hi float64) Option {
	return func(c *writeConfig) {
		c.cluster = &synth.Interval{Lo: lo, Hi: hi}
	}
}

// WithSynth forwards generator options (interval, θ, std, seed, ...).
func WithSynth(opts ...synth.Option) Option {
	return func(c *writeConfig) {
		c.synthOps = append(c.synthOps, opts...)
	}
}

// WriteProblemFiles generates np points of m (np−p outliers) and writes the
// data file to datPath and the solution file to solPath on fs. It returns the
// generated result so callers can log or inspect it.
func WriteProblemFiles(fs afero.Fs, datPath, solPath string, m models.Model, np, p int, opts ...Option) (*synth.Result, error) {
	var cfg writeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	var (
		res *synth.Result
		err error
	)
	if cfg.cluster != nil {
		res, err = synth.GenerateClustered(m.Func, m.Arity, np, p, *cfg.cluster, cfg.synthOps...)
	} else {
		res, err = synth.Generate(m.Func, m.Arity, np, p, cfg.synthOps...)
	}
	if err != nil {
		return nil, fmt.Errorf("WriteProblemFiles(%s): %w", m.Name, err)
	}
	if err = WriteProblem(fs, datPath, solPath, res, m.Expr); err != nil {
		return nil, err
	}

	return res, nil
}

// WriteProblem writes an already generated result to the two files.
func WriteProblem(fs afero.Fs, datPath, solPath string, res *synth.Result, expr string) error {
	var buf bytes.Buffer
	if err := WriteData(&buf, res.Block, res.Outliers); err != nil {
		return err
	}
	if err := afero.WriteFile(fs, datPath, buf.Bytes(), filePerm); err != nil {
		return fmt.Errorf("WriteProblem: data file: %w", err)
	}

	buf.Reset()
	if err := WriteSolution(&buf, res.Theta, expr); err != nil {
		return err
	}
	if err := afero.WriteFile(fs, solPath, buf.Bytes(), filePerm); err != nil {
		return fmt.Errorf("WriteProblem: solution file: %w", err)
	}

	return nil
}

// ReadProblem reads a data file and, when solPath is not empty, a solution file.
func ReadProblem(fs afero.Fs, datPath, solPath string) (*Data, *Solution, error) {
	f, err := fs.Open(datPath)
	if err != nil {
		return nil, nil, fmt.Errorf("ReadProblem: %w", err)
	}
	defer f.Close()
	data, err := ReadData(f)
	if err != nil {
		return nil, nil, err
	}
	if solPath == "" {
		return data, nil, nil
	}

	g, err := fs.Open(solPath)
	if err != nil {
		return nil, nil, fmt.Errorf("ReadProblem: %w", err)
	}
	defer g.Close()
	sol, err := ReadSolution(g)
	if err != nil {
		return nil, nil, err
	}

	return data, sol, nil
}
