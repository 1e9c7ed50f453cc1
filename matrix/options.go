// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy of
// constructors that ingest caller data (NewFromRows, NewColumn).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Options fields are unexported; public APIs consume ...Option.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon defines the non-negative tolerance used by structural checks
	// such as ValidateSymmetric when callers have no better bound.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options holds the resolved numeric policy.
type Options struct {
	validateNaNInf bool // reject NaN/±Inf on ingestion and Set
}

// WithValidateNaNInf enables the finite-only policy: NaN and ±Inf are rejected
// with ErrNaNInf when data enters a Dense.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables the finite-only policy. Useful for diagnostics
// where non-finite values must be preserved rather than rejected.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// ValidatesNaNInf reports whether the resolved policy rejects non-finite values.
func (o Options) ValidatesNaNInf() bool { return o.validateNaNInf }

// NewMatrixOptions resolves option setters against documented defaults.
// Setters are applied in order; last-writer-wins.
// Complexity: O(k) for k=len(opts).
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided Option setters on top of defaults.
// This is the canonical internal entry used by constructors.
func gatherOptions(user ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order; last-writer-wins semantics
		}
	}

	return o
}
