// Package fit: sentinel error set.
// Argument problems reuse the coords sentinels (coords.ErrInvalidArgument,
// coords.ErrMismatchedArity); solver failures reuse the regression sentinels
// (regression.ErrSingularMatrix, regression.ErrMissingWeight). This file adds
// only the conditions born in this package.

package fit

import "errors"

var (
	// ErrDomain is returned when a model's linearization is undefined for the
	// input — the exponential fit meeting a non-positive dependent value.
	ErrDomain = errors.New("fit: value outside the model domain")

	// ErrStrategyNotFound indicates a name prefix matched zero registered
	// strategies for the active shape, or several without an exact-name tie
	// break.
	ErrStrategyNotFound = errors.New("fit: no unique strategy for prefix")

	// ErrDuplicateStrategy indicates a Register call for a (name, shape) pair
	// already present in the registry.
	ErrDuplicateStrategy = errors.New("fit: strategy already registered")
)
