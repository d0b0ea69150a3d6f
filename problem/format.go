// SPDX-License-Identifier: MIT

package problem

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lovogen/synth"
	"gonum.org/v1/gonum/mat"
)

// ErrMalformed indicates a solution or data file that does not follow the
// documented layout.
var ErrMalformed = errors.New("problem: malformed file")

// DataDim is the domain dimension recorded on line 1 of every data file.
const DataDim = 1

// dataRowFormat is the layout of one data row: x, y, outlier flag.
const dataRowFormat = "%20.15f %20.15f %1d\n"

// Solution is the parsed content of a solution file.
type Solution struct {
	Theta []float64
	Expr  string
}

// Data is the parsed content of a data file.
type Data struct {
	Dim     int
	X       []float64
	Y       []float64
	Outlier []bool
}

// Outliers returns the 1-based rows flagged as outliers, ascending.
func (d *Data) Outliers() []int {
	var rows []int
	for i, o := range d.Outlier {
		if o {
			rows = append(rows, i+1)
		}
	}

	return rows
}

// WriteSolution writes n, θ and the model text on three lines.
func WriteSolution(w io.Writer, theta []float64, expr string) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", len(theta))
	for i, v := range theta {
		if i > 0 {
			bw.WriteByte(' ')
		}
		bw.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	bw.WriteByte('\n')
	bw.WriteString(expr)
	bw.WriteByte('\n')

	return bw.Flush()
}

// WriteData writes the dimension line followed by one row per block row.
// block must have at least the x and y columns; outliers are 1-based rows.
func WriteData(w io.Writer, block mat.Matrix, outliers []int) error {
	rows, cols := block.Dims()
	if cols <= synth.ColY {
		return fmt.Errorf("WriteData: block has %d columns: %w", cols, synth.ErrDimensionMismatch)
	}
	flag := make([]int, rows)
	for _, k := range outliers {
		if k < 1 || k > rows {
			return fmt.Errorf("WriteData: outlier row %d outside [1, %d]: %w", k, rows, synth.ErrInvalidArgument)
		}
		flag[k-1] = 1
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", DataDim)
	for i := 0; i < rows; i++ {
		fmt.Fprintf(bw, dataRowFormat, block.At(i, synth.ColX), block.At(i, synth.ColY), flag[i])
	}

	return bw.Flush()
}

// ReadSolution parses a solution file.
func ReadSolution(r io.Reader) (*Solution, error) {
	sc := bufio.NewScanner(r)
	lines := make([]string, 0, 3)
	for len(lines) < 3 && sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ReadSolution: %w", err)
	}
	if len(lines) < 2 {
		return nil, fmt.Errorf("ReadSolution: %d lines: %w", len(lines), ErrMalformed)
	}

	n, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil || n < 0 {
		return nil, fmt.Errorf("ReadSolution: bad parameter count %q: %w", lines[0], ErrMalformed)
	}
	fields := strings.Fields(lines[1])
	if len(fields) != n {
		return nil, fmt.Errorf("ReadSolution: %d values for n=%d: %w", len(fields), n, ErrMalformed)
	}
	sol := &Solution{Theta: make([]float64, n)}
	for i, f := range fields {
		if sol.Theta[i], err = strconv.ParseFloat(f, 64); err != nil {
			return nil, fmt.Errorf("ReadSolution: value %d: %v: %w", i+1, err, ErrMalformed)
		}
	}
	if len(lines) == 3 {
		sol.Expr = lines[2]
	}

	return sol, nil
}

// ReadData parses a data file.
func ReadData(r io.Reader) (*Data, error) {
	sc := bufio.NewScanner(r)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("ReadData: %w", err)
		}
		return nil, fmt.Errorf("ReadData: empty input: %w", ErrMalformed)
	}
	dim, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
	if err != nil || dim < 1 {
		return nil, fmt.Errorf("ReadData: bad dimension %q: %w", sc.Text(), ErrMalformed)
	}

	d := &Data{Dim: dim}
	var x, y float64
	for line := 2; sc.Scan(); line++ {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != dim+2 {
			return nil, fmt.Errorf("ReadData: line %d has %d fields: %w", line, len(fields), ErrMalformed)
		}
		if x, err = strconv.ParseFloat(fields[0], 64); err != nil {
			return nil, fmt.Errorf("ReadData: line %d: %v: %w", line, err, ErrMalformed)
		}
		if y, err = strconv.ParseFloat(fields[dim], 64); err != nil {
			return nil, fmt.Errorf("ReadData: line %d: %v: %w", line, err, ErrMalformed)
		}
		flag := fields[dim+1]
		if flag != "0" && flag != "1" {
			return nil, fmt.Errorf("ReadData: line %d: flag %q: %w", line, flag, ErrMalformed)
		}
		d.X = append(d.X, x)
		d.Y = append(d.Y, y)
		d.Outlier = append(d.Outlier, flag == "1")
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("ReadData: %w", err)
	}

	return d, nil
}
