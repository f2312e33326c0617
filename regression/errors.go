// Package regression: sentinel error set.
// All solver and builder failures map onto these sentinels (or onto the
// coords sentinels for argument problems) and are matched via errors.Is.

package regression

import "errors"

var (
	// ErrMissingWeight indicates a weighted operation met a datum without an
	// error bound. Weighted fits never downgrade to unweighted ones.
	ErrMissingWeight = errors.New("regression: datum lacks an error bound")

	// ErrSingularMatrix indicates the normal-equations matrix XᵗX (or XᵗWX)
	// is not invertible — collinear or otherwise degenerate data.
	ErrSingularMatrix = errors.New("regression: singular normal-equations matrix")
)
