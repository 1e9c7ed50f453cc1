// SPDX-License-Identifier: MIT

// Package scw is an online binary linear classifier trained with
// Soft Confidence-Weighted (SCW-I) learning.
//
// 🚀 What is inside?
//
//	A small, deterministic learner and the pieces around it:
//		• Dense linear algebra: row-major matrices, products, transposes, vectors
//		• The SCW belief: a Gaussian over weights (mean mu, covariance Sigma)
//		• A pure closed-form update step plus a thread-safe Model wrapper
//		• A labeled text loader and a command line trainer/evaluator
//
// ✨ Why this layout?
//
//   - Deterministic – the same stream and hyperparameters give the same belief
//   - Pure primitives – matrix kernels and scw.Step never mutate their inputs
//   - Typed failures – sentinel errors, matched with errors.Is
//
// Packages:
//
//	matrix/           - Dense matrices, Add/Sub/Mul/Transpose/Scale, MatVec, Dot, Outer
//	scw/              - Params, State, Step, Model (train, predict, evaluate)
//	dataset/          - labels-then-vectors text format reader
//	internal/config/  - flags, SCW_* env vars and YAML config through viper
//	internal/logging/ - zap loggers with an optional rotating file sink
//	cmd/scw/          - scw <train-data> <C> <eta> [test-data]
//
// One update, in ASCII:
//
//	v = xᵀΣx    m = y·(μ·x)    loss = max(0, φ√v − m)
//	μ ← μ + αy·Σx
//	Σ ← Σ − β·Σxxᵀ Σ
//
//	go install github.com/katalvlaran/scw/cmd/scw@latest
package scw
