// SPDX-License-Identifier: MIT

// Package scw - the closed-form SCW update as a pure function.
//
// Purpose:
//   - Keep the algorithm free of hidden state: Step(params, state, x, y)
//     returns the next state and a record of what it computed.
//   - Express every formula through the matrix kernels so that shape bugs
//     surface as matrix.ErrDimensionMismatch instead of silent garbage.
//
// Formulas (g = 1 + phi²):
//
//	alpha_raw = (−m·vphi + √(m²·phi⁴/4 + v·phi²·g)) / (v·g)
//	alpha     = clamp(alpha_raw, 0, C)
//	t         = alpha·v·phi
//	u         = (−t + √(t² + 4v))² / 4
//	beta      = alpha·phi / (√u + v·alpha·phi)
//	mu'       = mu + (alpha·y)·(Sigma·x)
//	Sigma'    = Sigma − beta·(Sigma·(x·xᵀ)·Sigma)
//
// Degenerate policy:
//   - v ≤ 0 is treated as v = 0: loss = max(0, −m). A positive loss cannot be
//     acted on (alpha divides by v), so the step is skipped and reported with
//     Update.Degenerate = true.

package scw

import (
	"fmt"
	"math"

	"github.com/katalvlaran/scw/matrix"
)

// operation tags for error wrapping
const (
	opStep     = "Step"
	opNewState = "NewState"
	opPredict  = "Predict"
)

// NewState returns the prior belief for d features: mu = 0, Sigma = I.
//
// Errors:
//   - matrix.ErrInvalidDimensions when d ≤ 0.
func NewState(d int) (State, error) {
	if d <= 0 {
		return State{}, fmt.Errorf("%s(%d): %w", opNewState, d, matrix.ErrInvalidDimensions)
	}
	sigma, err := matrix.NewIdentity(d)
	if err != nil {
		return State{}, fmt.Errorf("%s(%d): %w", opNewState, d, err)
	}

	return State{Mu: make([]float64, d), Sigma: sigma}, nil
}

// Step applies one SCW update for example (x, y) and returns the next state.
//
// When no update is due (zero loss, or the degenerate case) the returned
// State is st itself, so mu and Sigma are bit-for-bit unchanged. When an
// update happens, st is not modified and fresh slices/matrices are returned.
//
// Errors:
//   - ErrInvalidLabel         y ∉ {-1,+1}
//   - ErrNotInitialized       st has no covariance
//   - matrix.ErrDimensionMismatch  len(x) differs from the state dimension
//   - ErrNonFinite            NaN/Inf in the quadratic form, coefficients or new state
func Step(p Params, st State, x []float64, y int) (State, Update, error) {
	var u Update
	if y != Positive && y != Negative {
		return st, u, fmt.Errorf("%s: y=%d: %w", opStep, y, ErrInvalidLabel)
	}
	if st.Sigma == nil {
		return st, u, fmt.Errorf("%s: %w", opStep, ErrNotInitialized)
	}
	if len(x) != st.Dim() {
		return st, u, fmt.Errorf("%s: len(x)=%d, dim=%d: %w", opStep, len(x), st.Dim(), matrix.ErrDimensionMismatch)
	}

	v, err := quadraticForm(st.Sigma, x)
	if err != nil {
		return st, u, fmt.Errorf("%s: %w", opStep, err)
	}
	score, err := matrix.Dot(st.Mu, x)
	if err != nil {
		return st, u, fmt.Errorf("%s: %w", opStep, err)
	}
	m := float64(y) * score
	u.Margin, u.Variance = m, v

	if math.IsNaN(v) || math.IsInf(v, 0) || math.IsNaN(m) || math.IsInf(m, 0) {
		return st, u, fmt.Errorf("%s: v=%v m=%v: %w", opStep, v, m, ErrNonFinite)
	}

	// v ≤ 0: no uncertainty left along x (or rounding below zero).
	if v <= 0 {
		u.Loss = math.Max(0, -m)
		u.Degenerate = u.Loss > 0

		return st, u, nil
	}

	raw := p.Phi*math.Sqrt(v) - m
	if raw <= 0 {
		return st, u, nil // zero loss: the common, well-fit case
	}
	u.Loss = raw

	u.Alpha = alpha(p, v, m)
	u.Beta = beta(p, v, u.Alpha)
	if !finite(u.Alpha) || !finite(u.Beta) {
		return st, u, fmt.Errorf("%s: alpha=%v beta=%v: %w", opStep, u.Alpha, u.Beta, ErrNonFinite)
	}

	next, err := apply(st, x, float64(y), u.Alpha, u.Beta)
	if err != nil {
		return st, u, fmt.Errorf("%s: %w", opStep, err)
	}
	u.Updated = true

	return next, u, nil
}

// Predict returns sign(mu·x) ∈ {-1, 0, +1} for the given state.
func Predict(st State, x []float64) (int, error) {
	if st.Sigma == nil {
		return 0, fmt.Errorf("%s: %w", opPredict, ErrNotInitialized)
	}
	score, err := matrix.Dot(st.Mu, x)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opPredict, err)
	}

	return sign(score), nil
}

// quadraticForm computes v = xᵀ·Sigma·x as (xᵀ·Sigma)·x.
func quadraticForm(sigma matrix.Matrix, x []float64) (float64, error) {
	row, err := matrix.VecMat(x, sigma)
	if err != nil {
		return 0, err
	}

	return matrix.Dot(row, x)
}

// alpha is the clipped closed-form step size. Requires v > 0.
func alpha(p Params, v, m float64) float64 {
	g := 1 + p.Phi*p.Phi
	phi2 := p.Phi * p.Phi
	raw := (-m*p.VPhi + math.Sqrt(m*m*phi2*phi2/4+v*phi2*g)) / (v * g)

	return math.Min(math.Max(raw, 0), p.C)
}

// beta is the covariance downdate coefficient for step size a. Requires v > 0.
func beta(p Params, v, a float64) float64 {
	t := a * v * p.Phi
	r := -t + math.Sqrt(t*t+4*v)
	u := r * r / 4

	return a * p.Phi / (math.Sqrt(u) + v*a*p.Phi)
}

// apply builds mu' = mu + (alpha·y)·(Sigma·x) and
// Sigma' = Sigma − beta·(Sigma·(x·xᵀ)·Sigma), keeping the operand order.
func apply(st State, x []float64, y, a, b float64) (State, error) {
	sx, err := matrix.MatVec(st.Sigma, x)
	if err != nil {
		return st, err
	}
	mu, err := matrix.AddVec(st.Mu, matrix.ScaleVec(sx, a*y))
	if err != nil {
		return st, err
	}

	left, err := matrix.Mul(st.Sigma, matrix.Outer(x, x))
	if err != nil {
		return st, err
	}
	sandwich, err := matrix.Mul(left, st.Sigma)
	if err != nil {
		return st, err
	}
	term, err := matrix.Scale(sandwich, b)
	if err != nil {
		return st, err
	}
	sigma, err := matrix.Sub(st.Sigma, term)
	if err != nil {
		return st, err
	}

	if !vecFinite(mu) || !matFinite(sigma) {
		return st, ErrNonFinite
	}

	return State{Mu: mu, Sigma: sigma}, nil
}

// sign maps a score to {-1, 0, +1}; an exact zero stays 0.
func sign(v float64) int {
	switch {
	case v > 0:
		return Positive
	case v < 0:
		return Negative
	default:
		return 0
	}
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func vecFinite(v []float64) bool {
	for _, e := range v {
		if !finite(e) {
			return false
		}
	}

	return true
}

func matFinite(m matrix.Matrix) bool {
	if d, ok := m.(*matrix.Dense); ok {
		return d.IsFinite()
	}
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if v, _ := m.At(i, j); !finite(v) {
				return false
			}
		}
	}

	return true
}
