// SPDX-License-Identifier: MIT

package scw

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/katalvlaran/scw/matrix"
)

// Model owns an SCW belief and its hyperparameters.
//
// The whole belief (mu and Sigma together) sits behind one RWMutex, so a
// concurrent reader never observes a half-applied update. Training steps
// are serialized; predictions may run concurrently with each other.
//
// A Model has two states: uninitialized (after New) and trained (after
// Initialize). Every operation except Initialize requires the trained state
// and fails with ErrNotInitialized otherwise.
type Model struct {
	mu sync.RWMutex

	params      Params
	state       State
	initialized bool
	steps       int // steps taken since the last Initialize
	updates     int // update-triggering steps since the last Initialize

	observer Observer
	log      *zap.SugaredLogger
}

// New validates the hyperparameters and returns an uninitialized Model.
//
// Errors:
//   - ErrConfiguration for c ≤ 0 or eta outside (0,1).
func New(c, eta float64, opts ...Option) (*Model, error) {
	p, err := NewParams(c, eta)
	if err != nil {
		return nil, err
	}
	m := &Model{params: p, log: zap.NewNop().Sugar()}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}

	return m, nil
}

// Initialize resets the belief to mu = 0, Sigma = I for d features.
// Calling it again starts a fresh run and discards the previous belief.
func (m *Model) Initialize(d int) error {
	st, err := NewState(d)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.state = st
	m.initialized = true
	m.steps, m.updates = 0, 0
	m.mu.Unlock()

	m.log.Debugw("belief initialized", "dim", d, "c", m.params.C, "eta", m.params.Eta, "phi", m.params.Phi)

	return nil
}

// TrainOne applies a single SCW step for (x, y).
// The belief changes only when the step reports Updated.
func (m *Model) TrainOne(x []float64, y int) (Update, error) {
	m.mu.Lock()
	if !m.initialized {
		m.mu.Unlock()
		return Update{}, fmt.Errorf("TrainOne: %w", ErrNotInitialized)
	}
	next, u, err := Step(m.params, m.state, x, y)
	if err != nil {
		m.mu.Unlock()
		return u, fmt.Errorf("TrainOne: %w", err)
	}
	step := m.steps
	m.steps++
	var mean []float64
	if u.Updated {
		m.state = next
		m.updates++
		mean = matrix.CloneVec(next.Mu)
	}
	observer := m.observer
	m.mu.Unlock()

	if u.Degenerate {
		m.log.Debugw("degenerate step skipped", "step", step, "margin", u.Margin, "variance", u.Variance)
	}
	if u.Updated && observer != nil {
		observer(step, u, mean)
	}

	return u, nil
}

// TrainBatch initializes the model with the dimension of xs[0] and applies
// TrainOne to every (xs[i], ys[i]) pair in order.
func (m *Model) TrainBatch(xs [][]float64, ys []int) error {
	return m.Train(context.Background(), xs, ys, 1)
}

// Train initializes the model with the dimension of xs[0] and sweeps the
// examples in order passes times. ctx is checked before every step; on
// cancellation the belief reached so far is kept and ctx.Err() is returned.
//
// Errors:
//   - ErrConfiguration when passes < 1.
//   - ErrEmptyBatch, ErrLabelCount for malformed inputs.
//   - Any error from TrainOne, wrapped with the example index.
func (m *Model) Train(ctx context.Context, xs [][]float64, ys []int, passes int) error {
	if passes < 1 {
		return fmt.Errorf("Train: %w: passes must be >= 1, got %d", ErrConfiguration, passes)
	}
	if err := checkBatch(xs, ys); err != nil {
		return fmt.Errorf("Train: %w", err)
	}
	if err := m.Initialize(len(xs[0])); err != nil {
		return fmt.Errorf("Train: %w", err)
	}

	for pass := 0; pass < passes; pass++ {
		for i := range xs {
			if err := ctx.Err(); err != nil {
				return err
			}
			if _, err := m.TrainOne(xs[i], ys[i]); err != nil {
				return fmt.Errorf("Train: pass %d, example %d: %w", pass, i, err)
			}
		}
	}

	m.mu.RLock()
	steps, updates := m.steps, m.updates
	m.mu.RUnlock()
	m.log.Debugw("training finished", "passes", passes, "examples", len(xs), "steps", steps, "updates", updates)

	return nil
}

// Predict returns sign(mu·x) ∈ {-1, 0, +1}.
func (m *Model) Predict(x []float64) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.initialized {
		return 0, fmt.Errorf("%s: %w", opPredict, ErrNotInitialized)
	}

	return Predict(m.state, x)
}

// Evaluate predicts every example and counts disagreements with ys.
// A zero prediction (exact tie) always counts as an error.
func (m *Model) Evaluate(xs [][]float64, ys []int) (Result, error) {
	if len(xs) != len(ys) {
		return Result{}, fmt.Errorf("Evaluate: %d examples, %d labels: %w", len(xs), len(ys), ErrLabelCount)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.initialized {
		return Result{}, fmt.Errorf("Evaluate: %w", ErrNotInitialized)
	}

	res := Result{Total: len(xs)}
	for i := range xs {
		got, err := Predict(m.state, xs[i])
		if err != nil {
			return Result{}, fmt.Errorf("Evaluate: example %d: %w", i, err)
		}
		if got != ys[i] {
			res.Errors++
		}
	}

	return res, nil
}

// Params returns the hyperparameters.
func (m *Model) Params() Params { return m.params }

// Initialized reports whether Initialize has been called.
func (m *Model) Initialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.initialized
}

// Dim returns the feature dimension, or 0 before Initialize.
func (m *Model) Dim() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.state.Dim()
}

// Mean returns a copy of mu (nil before Initialize).
func (m *Model) Mean() []float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return matrix.CloneVec(m.state.Mu)
}

// Covariance returns a deep copy of Sigma (nil before Initialize).
func (m *Model) Covariance() matrix.Matrix {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.state.Sigma == nil {
		return nil
	}

	return m.state.Sigma.Clone()
}

// State returns a deep copy of the whole belief, taken atomically.
func (m *Model) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.state.Clone()
}

// Steps returns the number of steps taken since the last Initialize.
func (m *Model) Steps() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.steps
}

// Updates returns the number of update-triggering steps since the last Initialize.
func (m *Model) Updates() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.updates
}

// checkBatch validates batch shape before any state is touched.
func checkBatch(xs [][]float64, ys []int) error {
	if len(xs) == 0 {
		return ErrEmptyBatch
	}
	if len(xs) != len(ys) {
		return fmt.Errorf("%d examples, %d labels: %w", len(xs), len(ys), ErrLabelCount)
	}

	return nil
}
