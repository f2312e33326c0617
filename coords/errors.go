// Package coords: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the coords
// package. Constructors and accessors MUST return these sentinels and tests
// MUST check them via errors.Is. No function panics on user-triggered error
// conditions.

package coords

import "errors"

var (
	// ErrInvalidArgument is returned for malformed input: too few values at
	// construction, an ordinate index outside range, a non-positive sigma,
	// or an asymmetric bound whose signs are wrong.
	ErrInvalidArgument = errors.New("coords: invalid argument")

	// ErrMismatchedArity indicates heterogeneous arities inside a batch where
	// homogeneity is required (shape inference, multivariate design rows).
	ErrMismatchedArity = errors.New("coords: mismatched arity")
)
