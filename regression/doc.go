// Package regression builds and solves the least-squares systems shared by
// the fitting strategies.
//
// The regression package provides:
//
//   - Design-matrix builders: polynomial (Vandermonde) rows [1, x, …, x^deg],
//     bilinear surface rows [1, x, y, xy], and first-order multivariate rows
//     [1, x₁, …, xₖ], always in input order.
//   - ObservedValues, the dependent-value column vector in matching row order.
//   - WeightMatrix, the diagonal 1/σ² weighting used by the weighted fits.
//   - PseudoInverse (XᵗX)⁻¹Xᵗ and WeightedPseudoInverse (XᵗWX)⁻¹XᵗW.
//
// All functions are stateless, allocate fresh gonum/mat values owned solely by
// the caller, and fail fast: singular normal equations surface as
// ErrSingularMatrix, a datum without an error bound as ErrMissingWeight —
// never as silent NaN garbage.
//
// Callers that need order-sensitive stability downstream (splines, rendering)
// must pre-sort their batch; least-squares coefficients are order-invariant.
package regression
