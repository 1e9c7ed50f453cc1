// SPDX-License-Identifier: MIT

package scw

import (
	"fmt"

	"github.com/katalvlaran/scw/matrix"
)

// Label values accepted by the learner.
const (
	Positive = 1
	Negative = -1
)

// Params holds the hyperparameters and the constants derived from them.
// Phi and VPhi are computed once by NewParams and never recomputed.
type Params struct {
	C    float64 // upper clamp on the step size alpha; > 0
	Eta  float64 // target probability of correct classification; in (0,1)
	Phi  float64 // Φ⁻¹(Eta), inverse standard-normal CDF
	VPhi float64 // 1 + Phi²/2
}

// State is the Gaussian belief over the weight vector.
//
//   - Mu is the mean, a vector of length d.
//   - Sigma is the d×d covariance; symmetric positive semi-definite in exact
//     arithmetic (not separately enforced).
//
// Step never mutates a State; it returns a new one when an update happens.
type State struct {
	Mu    []float64
	Sigma matrix.Matrix
}

// Dim returns the feature dimension d of the belief.
func (s State) Dim() int { return len(s.Mu) }

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	out := State{Mu: matrix.CloneVec(s.Mu)}
	if s.Sigma != nil {
		out.Sigma = s.Sigma.Clone()
	}

	return out
}

// Update describes what a single training step computed.
type Update struct {
	Margin     float64 // m = y·(mu·x)
	Variance   float64 // v = xᵀ·Sigma·x
	Loss       float64 // max(0, phi·√v − m)
	Alpha      float64 // step size in [0, C]; 0 when no update happened
	Beta       float64 // covariance downdate coefficient; 0 when no update happened
	Updated    bool    // mu and Sigma were replaced
	Degenerate bool    // loss was positive but v ≤ 0; update skipped
}

// Observer is notified once per update-triggering step with the 0-based
// index of the step within the current run, the step record and a copy of
// the new mean.
type Observer func(step int, u Update, mean []float64)

// Result is the outcome of Evaluate.
type Result struct {
	Errors int // predictions that disagreed with the label (ties included)
	Total  int // examples evaluated
}

// Rate returns Errors/Total, or 0 for an empty evaluation.
func (r Result) Rate() float64 {
	if r.Total == 0 {
		return 0
	}

	return float64(r.Errors) / float64(r.Total)
}

// String renders "<errors> / <total>".
func (r Result) String() string {
	return fmt.Sprintf("%d / %d", r.Errors, r.Total)
}
