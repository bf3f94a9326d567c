// Package tracking reads sampled player data and derives kinematic and
// physiological quantities from it.
package tracking

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// ErrMalformed indicates a line that could not be parsed.
var ErrMalformed = errors.New("tracking: malformed line")

// Read parses whitespace-delimited numeric columns, one sample per line,
// and returns one slice per column. Blank lines are skipped and columns
// beyond cols are ignored. Any short or non-numeric line fails the whole
// read.
func Read(r io.Reader, cols int) ([][]float64, error) {
	if cols < 1 {
		return nil, fmt.Errorf("column count must be positive, got %d", cols)
	}

	out := make([][]float64, cols)
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < cols {
			return nil, fmt.Errorf("%w: line %d has %d columns, want %d", ErrMalformed, line, len(fields), cols)
		}
		for j := 0; j < cols; j++ {
			v, err := strconv.ParseFloat(fields[j], 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: line %d column %d: %q", ErrMalformed, line, j+1, fields[j])
			}
			out[j] = append(out[j], v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func readFile(path string, cols int) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := Read(f, cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return data, nil
}

// ReadTrack reads a `t x y` file of normalised pitch positions.
func ReadTrack(path string) (*Track, error) {
	data, err := readFile(path, 3)
	if err != nil {
		return nil, err
	}
	return &Track{T: data[0], X: data[1], Y: data[2]}, nil
}

// ReadSpeed reads a `t v` file.
func ReadSpeed(path string) (t, v []float64, err error) {
	data, err := readFile(path, 2)
	if err != nil {
		return nil, nil, err
	}
	return data[0], data[1], nil
}

// WriteSpeed writes `t v` rows with six decimals.
func WriteSpeed(w io.Writer, t, v []float64) error {
	if len(t) != len(v) {
		return fmt.Errorf("speed series length mismatch: %d times, %d values", len(t), len(v))
	}
	bw := bufio.NewWriter(w)
	for i := range t {
		if _, err := fmt.Fprintf(bw, "%.6f %.6f\n", t[i], v[i]); err != nil {
			return err
		}
	}
	return bw.Flush()
}
