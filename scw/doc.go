// SPDX-License-Identifier: MIT

// Package scw implements Soft Confidence-Weighted learning (SCW), an online
// binary classifier that keeps a Gaussian belief N(mu, Sigma) over a linear
// decision boundary and updates it in closed form, one labeled example at a
// time.
//
// 🚀 What is SCW?
//
//	Each example (x, y) with y ∈ {-1,+1} is scored against the current belief:
//	  v    = xᵀ·Sigma·x          (uncertainty along x)
//	  m    = y·(mu·x)            (signed margin)
//	  loss = max(0, phi·√v − m)  (phi = Φ⁻¹(eta))
//	A zero loss leaves the belief untouched. Otherwise the mean moves toward
//	the label and the covariance shrinks along x, with the step size alpha
//	clipped into [0, C].
//
// ✨ Key features:
//   - Pure step function: Step(params, state, x, y) → (state', update).
//   - Model: a mutex-guarded owner of the belief for callers that prefer
//     an object (Initialize, TrainOne, TrainBatch, Train, Predict, Evaluate).
//   - Observer hook fired once per update-triggering step.
//   - Explicit degenerate policy: a non-positive quadratic form (zero
//     feature vector or collapsed covariance) skips the update instead of
//     dividing by zero.
//
// ⚙️ Usage:
//
//	model, err := scw.New(1.0, 0.9)
//	if err != nil {
//	  // ErrConfiguration: c must be > 0, eta in (0,1)
//	}
//	if err = model.TrainBatch(xs, ys); err != nil {
//	  // ErrLabelCount, ErrInvalidLabel, matrix.ErrDimensionMismatch ...
//	}
//	res, _ := model.Evaluate(xs, ys)
//	fmt.Println("error rate =", res)
//
// Performance:
//
//   - Time:   O(d³) per updating step (two d×d products), O(d²) per skipped step
//   - Memory: O(d²)
//
// Training is inherently sequential: every step reads and writes the whole
// belief, so examples are never processed concurrently.
package scw
