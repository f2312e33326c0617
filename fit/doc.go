// Package fit implements the curve-fitting strategies, the fitted-function
// types they return, and the registry/dispatcher that resolves strategies by
// fuzzy name.
//
// The fit package provides:
//
//   - Function, the caller-owned result of a fit: multivariate Polynomial,
//     Exponential (A·e^(B·x)), or an exact natural cubic Spline — each with
//     arity-checked Eval and a human-readable formula String.
//   - Eight strategies: linear fit, parabolic fit, weighted linear fit,
//     weighted parabolic fit, exponential fit, simple 3D fit,
//     multidimensional fit, cubic splines.
//   - Registry, an explicit (name, shape) → factory catalogue with
//     case/whitespace-insensitive unique-prefix resolution; an exact name
//     always beats other names sharing the prefix.
//   - Fitter, the dispatcher: construct from an arity-homogeneous batch,
//     optionally SortInX, then run one or more independent FitToData calls.
//   - Score, a diagnostic goodness-of-fit card (R², RMSE) for any Function.
//
// Strategies snapshot their input batch before any numeric work and fail fast
// on every degenerate condition; the single exception is the post-solve shape
// check, which signals a solver-internal inconsistency and is therefore only
// reported on the injected zap diagnostics logger.
//
// Concurrency: a Fitter's only mutable state is its batch ordering. Fits are
// side-effect-free and may run concurrently on one instance as long as no
// SortInX is in flight; callers serialize sorting against fitting.
package fit
