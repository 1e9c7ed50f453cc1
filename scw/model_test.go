// SPDX-License-Identifier: MIT

package scw_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/scw/matrix"
	"github.com/katalvlaran/scw/scw"
)

var (
	toyX = [][]float64{{2, 1}, {-1, -1}, {1, 2}, {-2, -1}}
	toyY = []int{1, -1, 1, -1}
)

func mustModel(t *testing.T, c, eta float64, opts ...scw.Option) *scw.Model {
	t.Helper()
	m, err := scw.New(c, eta, opts...)
	require.NoError(t, err)

	return m
}

func TestModel_NotInitialized(t *testing.T) {
	m := mustModel(t, 1, 0.9)
	require.False(t, m.Initialized())
	require.Equal(t, 0, m.Dim())
	require.Nil(t, m.Mean())
	require.Nil(t, m.Covariance())

	_, err := m.TrainOne([]float64{1, 2}, 1)
	require.ErrorIs(t, err, scw.ErrNotInitialized)

	_, err = m.Predict([]float64{1, 2})
	require.ErrorIs(t, err, scw.ErrNotInitialized)

	_, err = m.Evaluate(toyX, toyY)
	require.ErrorIs(t, err, scw.ErrNotInitialized)
}

func TestModel_New_RejectsBadParams(t *testing.T) {
	_, err := scw.New(0, 0.9)
	require.ErrorIs(t, err, scw.ErrConfiguration)
	_, err = scw.New(1, 1)
	require.ErrorIs(t, err, scw.ErrConfiguration)
}

func TestModel_Initialize(t *testing.T) {
	m := mustModel(t, 1, 0.9)
	require.ErrorIs(t, m.Initialize(0), matrix.ErrInvalidDimensions)
	require.ErrorIs(t, m.Initialize(-3), matrix.ErrInvalidDimensions)
	require.False(t, m.Initialized())

	require.NoError(t, m.Initialize(3))
	require.True(t, m.Initialized())
	require.Equal(t, 3, m.Dim())
	require.Equal(t, []float64{0, 0, 0}, m.Mean())

	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	require.True(t, matrix.Equal(id, m.Covariance()))
}

func TestModel_TrainBatch_EndToEnd(t *testing.T) {
	m := mustModel(t, 1, 0.9)
	require.NoError(t, m.TrainBatch(toyX, toyY))

	require.Equal(t, 4, m.Steps())
	require.Equal(t, 3, m.Updates())
	mean := m.Mean()
	require.InDelta(t, 0.7237387007602527, mean[0], tol)
	require.InDelta(t, 0.5743999517832145, mean[1], tol)

	res, err := m.Evaluate(toyX, toyY)
	require.NoError(t, err)
	require.Equal(t, scw.Result{Errors: 0, Total: 4}, res)
	require.Equal(t, "0 / 4", res.String())
}

func TestModel_FirstStepMovesTowardLabel(t *testing.T) {
	m := mustModel(t, 1, 0.9)
	require.NoError(t, m.Initialize(2))

	u, err := m.TrainOne([]float64{2, 1}, 1)
	require.NoError(t, err)
	require.Equal(t, 0.0, u.Margin)
	require.Equal(t, 5.0, u.Variance)
	require.Greater(t, u.Loss, 0.0)
	require.True(t, u.Updated)

	got, err := m.Predict([]float64{2, 1})
	require.NoError(t, err)
	require.Equal(t, scw.Positive, got)
}

func TestModel_Deterministic(t *testing.T) {
	a := mustModel(t, 1, 0.9)
	b := mustModel(t, 1, 0.9)
	require.NoError(t, a.Train(context.Background(), toyX, toyY, 3))
	require.NoError(t, b.Train(context.Background(), toyX, toyY, 3))

	require.Equal(t, a.Mean(), b.Mean())
	require.True(t, matrix.Equal(a.Covariance(), b.Covariance()))
}

func TestModel_ReinitializeDiscardsBelief(t *testing.T) {
	m := mustModel(t, 1, 0.9)
	require.NoError(t, m.TrainBatch(toyX, toyY))
	require.NoError(t, m.Initialize(2))
	require.Equal(t, []float64{0, 0}, m.Mean())
	require.Equal(t, 0, m.Steps())
	require.Equal(t, 0, m.Updates())
}

func TestModel_AggressivenessChangesUpdateCount(t *testing.T) {
	// A tiny C caps every step, so the learner needs more updates to clear
	// the margin requirement than with an unconstrained step.
	small := mustModel(t, 0.01, 0.9)
	large := mustModel(t, 10, 0.9)
	require.NoError(t, small.Train(context.Background(), toyX, toyY, 3))
	require.NoError(t, large.Train(context.Background(), toyX, toyY, 3))

	require.Equal(t, 12, small.Updates())
	require.Equal(t, 4, large.Updates())

	for _, m := range []*scw.Model{small, large} {
		res, err := m.Evaluate(toyX, toyY)
		require.NoError(t, err)
		require.Equal(t, 0, res.Errors)
	}
}

func TestModel_Observer(t *testing.T) {
	var (
		steps []int
		means [][]float64
	)
	var m *scw.Model
	m = mustModel(t, 1, 0.9, scw.WithObserver(func(step int, u scw.Update, mean []float64) {
		require.True(t, u.Updated)
		require.LessOrEqual(t, u.Alpha, 1.0)
		steps = append(steps, step)
		means = append(means, mean)
		require.Equal(t, mean, m.Mean()) // lock is released
	}))
	require.NoError(t, m.TrainBatch(toyX, toyY))

	require.Len(t, steps, m.Updates())
	require.Equal(t, 0, steps[0])
	require.InDelta(t, 0.7051538820851219, means[0][0], tol)
	require.Equal(t, m.Mean(), means[len(means)-1])
}

func TestModel_Train_Errors(t *testing.T) {
	m := mustModel(t, 1, 0.9)

	require.ErrorIs(t, m.Train(context.Background(), toyX, toyY, 0), scw.ErrConfiguration)
	require.ErrorIs(t, m.TrainBatch(nil, nil), scw.ErrEmptyBatch)
	require.ErrorIs(t, m.TrainBatch(toyX, toyY[:2]), scw.ErrLabelCount)
	require.False(t, m.Initialized())

	err := m.TrainBatch([][]float64{{1, 2}, {1}}, []int{1, -1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	err = m.TrainBatch([][]float64{{1, 2}}, []int{3})
	require.ErrorIs(t, err, scw.ErrInvalidLabel)

	require.NoError(t, m.Initialize(2))
	_, err = m.Evaluate(toyX, toyY[:1])
	require.ErrorIs(t, err, scw.ErrLabelCount)
}

func TestModel_Train_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := mustModel(t, 1, 0.9)
	err := m.Train(ctx, toyX, toyY, 2)
	require.ErrorIs(t, err, context.Canceled)
	require.True(t, m.Initialized())
	require.Equal(t, 0, m.Steps())
}

func TestModel_Evaluate_TieCountsAsError(t *testing.T) {
	m := mustModel(t, 1, 0.9)
	require.NoError(t, m.Initialize(2))

	res, err := m.Evaluate([][]float64{{1, 1}, {-1, 3}}, []int{1, -1})
	require.NoError(t, err)
	require.Equal(t, scw.Result{Errors: 2, Total: 2}, res)
}

func TestModel_LogsRunSummary(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	m := mustModel(t, 1, 0.9, scw.WithLogger(zap.New(core).Sugar()))
	require.NoError(t, m.TrainBatch(toyX, toyY))

	require.Equal(t, 1, logs.FilterMessage("belief initialized").Len())
	done := logs.FilterMessage("training finished").All()
	require.Len(t, done, 1)
	require.EqualValues(t, 3, done[0].ContextMap()["updates"])
}

func TestModel_CopiesAreIndependent(t *testing.T) {
	m := mustModel(t, 1, 0.9)
	require.NoError(t, m.TrainBatch(toyX, toyY))

	mean := m.Mean()
	mean[0] = 100
	require.NotEqual(t, 100.0, m.Mean()[0])

	cov := m.Covariance()
	require.NoError(t, cov.Set(0, 0, 100))
	v, err := m.Covariance().At(0, 0)
	require.NoError(t, err)
	require.NotEqual(t, 100.0, v)

	st := m.State()
	require.Equal(t, m.Mean(), st.Mu)
}
