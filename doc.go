// Package tungsten is an in-memory curve-fitting engine — from coordinate
// primitives to least-squares strategies and exact spline interpolation.
//
// 🚀 What does it do?
//
//	A small, deterministic library that brings together:
//		• Coordinate primitives: arity-generic data points with optional error bounds
//		• Regression kernels: design/weight matrices and (weighted) pseudo-inverse solves
//		• Eight fitting strategies: linear, parabolic, their weighted variants,
//		  exponential, bilinear 3-D surfaces, first-order multivariate models,
//		  and exact natural cubic splines
//		• A strategy registry with case/whitespace-insensitive unique-prefix dispatch
//
// ✨ Why choose it?
//
//   - Fail-fast guarantees – every degenerate input surfaces as a typed sentinel error
//   - Deterministic – repeated fits on an unmodified batch yield identical coefficients
//   - Side-effect free – strategies snapshot their input; the caller's batch is never mutated
//
// Under the hood, everything is organized under three subpackages:
//
//	coords/     — coordinate data points, shapes, comparators & conversions
//	regression/ — design-matrix construction and (weighted) pseudo-inverse solving
//	fit/        — fitted functions, the eight strategies, registry & dispatcher
//
// Quick ASCII example:
//
//	    y
//	    │       ·
//	    │    ·
//	    │ ·
//	    └────────── x
//
//	three points on a line; fit.NewFitter + FitToData("lin") recovers it.
//
// Dive into each package's doc.go and example tests for usage patterns.
//
//	go get github.com/lionmage/tungsten-types-sub005
package tungsten
