// SPDX-License-Identifier: MIT

package scw

import "go.uber.org/zap"

// Option configures a Model at construction time.
type Option func(*Model)

// WithObserver registers fn to be called once per update-triggering step.
// The callback runs after the model lock is released, so it may call back
// into the model (Mean, Covariance, Predict).
func WithObserver(fn Observer) Option {
	return func(m *Model) { m.observer = fn }
}

// WithLogger attaches a structured logger. The model logs initialization,
// degenerate skips and run summaries at debug level. A nil logger is ignored.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(m *Model) {
		if l != nil {
			m.log = l
		}
	}
}
