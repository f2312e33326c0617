package regression

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/lionmage/tungsten-types-sub005/coords"
)

// PseudoInverse computes the Moore–Penrose left pseudo-inverse
// (XᵗX)⁻¹Xᵗ of an n×k design matrix, solving the over-determined system in
// the least-squares sense. A fresh k×n matrix is returned; x is not mutated.
//
// Returns ErrSingularMatrix when XᵗX is not invertible (collinear columns,
// fewer rows than columns).
func PseudoInverse(x mat.Matrix) (*mat.Dense, error) {
	if x == nil {
		return nil, fmt.Errorf("PseudoInverse: nil design matrix: %w", coords.ErrInvalidArgument)
	}

	var xtx mat.Dense
	xtx.Mul(x.T(), x)

	var inv mat.Dense
	if err := inv.Inverse(&xtx); err != nil {
		return nil, fmt.Errorf("PseudoInverse: %w: %v", ErrSingularMatrix, err)
	}

	var p mat.Dense
	p.Mul(&inv, x.T())

	return &p, nil
}

// WeightedPseudoInverse computes (XᵗWX)⁻¹XᵗW for an n×k design matrix and an
// n×n weight matrix, the weighted least-squares analog of PseudoInverse.
//
// Returns ErrSingularMatrix when XᵗWX is not invertible.
func WeightedPseudoInverse(x, w mat.Matrix) (*mat.Dense, error) {
	if x == nil || w == nil {
		return nil, fmt.Errorf("WeightedPseudoInverse: nil operand: %w", coords.ErrInvalidArgument)
	}

	var xtw mat.Dense
	xtw.Mul(x.T(), w)

	var xtwx mat.Dense
	xtwx.Mul(&xtw, x)

	var inv mat.Dense
	if err := inv.Inverse(&xtwx); err != nil {
		return nil, fmt.Errorf("WeightedPseudoInverse: %w: %v", ErrSingularMatrix, err)
	}

	var p mat.Dense
	p.Mul(&inv, &xtw)

	return &p, nil
}
