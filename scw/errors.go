// SPDX-License-Identifier: MIT
// Package scw: sentinel error set.
// Every message is prefixed with "scw: ...". Shape problems are reported with
// matrix.ErrDimensionMismatch so callers can match a single sentinel for
// dimension bugs across both packages.

package scw

import "errors"

var (
	// ErrConfiguration is returned for invalid hyperparameters
	// (c ≤ 0 or non-finite, eta outside (0,1), passes < 1).
	ErrConfiguration = errors.New("scw: invalid configuration")

	// ErrNotInitialized is returned when training or prediction is requested
	// before Initialize established the feature dimension.
	ErrNotInitialized = errors.New("scw: model not initialized")

	// ErrInvalidLabel is returned for labels other than -1 and +1.
	ErrInvalidLabel = errors.New("scw: label must be -1 or +1")

	// ErrNonFinite is returned when an update would produce NaN or ±Inf
	// coefficients or state. The belief is left unchanged.
	ErrNonFinite = errors.New("scw: non-finite update")

	// ErrEmptyBatch is returned by batch operations given no examples.
	ErrEmptyBatch = errors.New("scw: empty batch")

	// ErrLabelCount is returned when the number of labels differs from the
	// number of feature vectors.
	ErrLabelCount = errors.New("scw: label count does not match example count")
)
