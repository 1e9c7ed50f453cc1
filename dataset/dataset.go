// SPDX-License-Identifier: MIT

// Package dataset reads labeled examples from the plain-text training format.
//
// Layout:
//
//	+1,-1,+1          <- first record: one label per example
//	2.0,1.0           <- one record per example, in label order
//	-1.0,-1.0
//	1.0,2.0
//
// Fields are comma separated and trimmed; blank lines are ignored.
package dataset

import (
	"encoding/csv"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrEmpty      = errors.New("dataset: no label record")
	ErrBadLabel   = errors.New("dataset: label must be -1 or +1")
	ErrBadFeature = errors.New("dataset: feature is not a finite number")
	ErrLabelCount = errors.New("dataset: number of vectors does not match number of labels")
	ErrRagged     = errors.New("dataset: vectors have different lengths")
)

// Set is a loaded example stream. X[i] is labeled Y[i].
type Set struct {
	X [][]float64
	Y []int
}

// Len returns the number of examples.
func (s *Set) Len() int { return len(s.Y) }

// Dim returns the feature dimension, or 0 for an empty set.
func (s *Set) Dim() int {
	if len(s.X) == 0 {
		return 0
	}

	return len(s.X[0])
}

// Load opens path and reads a Set from it.
func Load(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	s, err := Read(f)
	if err != nil {
		return nil, errors.WithMessage(err, path)
	}

	return s, nil
}

// Read parses a Set from r. Errors carry the offending line number and
// match the package sentinels through errors.Is.
func Read(r io.Reader) (*Set, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	rec, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmpty
	}
	if err != nil {
		return nil, errors.Wrap(err, "read labels")
	}
	line, _ := cr.FieldPos(0)
	labels, err := parseLabels(rec)
	if err != nil {
		return nil, errors.WithMessagef(err, "line %d", line)
	}

	s := &Set{Y: labels, X: make([][]float64, 0, len(labels))}
	for {
		rec, err = cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "read vector")
		}
		line, _ = cr.FieldPos(0)

		x, err := parseVector(rec)
		if err != nil {
			return nil, errors.WithMessagef(err, "line %d", line)
		}
		if len(s.X) > 0 && len(x) != len(s.X[0]) {
			return nil, errors.Wrapf(ErrRagged, "line %d: %d features, want %d", line, len(x), len(s.X[0]))
		}
		s.X = append(s.X, x)
	}

	if len(s.X) != len(s.Y) {
		return nil, errors.Wrapf(ErrLabelCount, "%d vectors, %d labels", len(s.X), len(s.Y))
	}

	return s, nil
}

func parseLabels(rec []string) ([]int, error) {
	out := make([]int, len(rec))
	for i, f := range rec {
		f = strings.TrimSpace(f)
		v, err := strconv.Atoi(f)
		if err != nil || (v != 1 && v != -1) {
			return nil, errors.Wrapf(ErrBadLabel, "field %d: %q", i+1, f)
		}
		out[i] = v
	}

	return out, nil
}

func parseVector(rec []string) ([]float64, error) {
	out := make([]float64, len(rec))
	for i, f := range rec {
		f = strings.TrimSpace(f)
		v, err := strconv.ParseFloat(f, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, errors.Wrapf(ErrBadFeature, "field %d: %q", i+1, f)
		}
		out[i] = v
	}

	return out, nil
}
