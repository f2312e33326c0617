package regression

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/lionmage/tungsten-types-sub005/coords"
)

// validateBatch is the shared guard for every builder: non-empty, no nil
// datums. Returns a plain wrapped coords sentinel so call sites stay uniform.
func validateBatch(op string, data []*coords.Datum) error {
	if len(data) == 0 {
		return fmt.Errorf("%s: empty batch: %w", op, coords.ErrInvalidArgument)
	}
	for i, d := range data {
		if d == nil {
			return fmt.Errorf("%s: nil datum at %d: %w", op, i, coords.ErrInvalidArgument)
		}
	}

	return nil
}

// DesignMatrix builds the polynomial (Vandermonde) design matrix over the
// first ordinate: one row [1, x, x², …, x^degree] per datum, in input order.
//
// Returns coords.ErrInvalidArgument for an empty batch or a negative degree.
func DesignMatrix(data []*coords.Datum, degree int) (*mat.Dense, error) {
	if err := validateBatch("DesignMatrix", data); err != nil {
		return nil, err
	}
	if degree < 0 {
		return nil, fmt.Errorf("DesignMatrix: negative degree %d: %w", degree, coords.ErrInvalidArgument)
	}

	x := mat.NewDense(len(data), degree+1, nil)
	for i, d := range data {
		v, err := d.Ordinate(0)
		if err != nil {
			return nil, fmt.Errorf("DesignMatrix: row %d: %w", i, err)
		}
		for j, p := 0, 1.0; j <= degree; j, p = j+1, p*v {
			x.Set(i, j, p)
		}
	}

	return x, nil
}

// DesignMatrix3D builds the bilinear-surface design matrix: one row
// [1, x, y, xy] per arity-2 datum, in input order.
//
// Returns coords.ErrInvalidArgument when any datum is not arity 2.
func DesignMatrix3D(data []*coords.Datum) (*mat.Dense, error) {
	if err := validateBatch("DesignMatrix3D", data); err != nil {
		return nil, err
	}

	x := mat.NewDense(len(data), 4, nil)
	for i, d := range data {
		if d.Arity() != 2 {
			return nil, fmt.Errorf("DesignMatrix3D: datum %d has arity %d, want 2: %w", i, d.Arity(), coords.ErrInvalidArgument)
		}
		ords := d.Ordinates()
		x.Set(i, 0, 1)
		x.Set(i, 1, ords[0])
		x.Set(i, 2, ords[1])
		x.Set(i, 3, ords[0]*ords[1])
	}

	return x, nil
}

// DesignMatrixMulti builds the first-order multivariate design matrix: one
// row [1, x₁, …, xₖ] per datum, directly from each datum's ordinates.
//
// Returns coords.ErrMismatchedArity when batch arities differ.
func DesignMatrixMulti(data []*coords.Datum) (*mat.Dense, error) {
	if err := validateBatch("DesignMatrixMulti", data); err != nil {
		return nil, err
	}

	arity := data[0].Arity()
	x := mat.NewDense(len(data), arity+1, nil)
	for i, d := range data {
		if d.Arity() != arity {
			return nil, fmt.Errorf("DesignMatrixMulti: datum %d has arity %d, want %d: %w", i, d.Arity(), arity, coords.ErrMismatchedArity)
		}
		x.Set(i, 0, 1)
		for j, v := range d.Ordinates() {
			x.Set(i, j+1, v)
		}
	}

	return x, nil
}

// ObservedValues builds the dependent-value column vector in the same row
// order as the design builders above.
func ObservedValues(data []*coords.Datum) (*mat.VecDense, error) {
	if err := validateBatch("ObservedValues", data); err != nil {
		return nil, err
	}

	y := mat.NewVecDense(len(data), nil)
	for i, d := range data {
		y.SetVec(i, d.Value())
	}

	return y, nil
}

// WeightMatrix builds the diagonal weight matrix with entries 1/σ² per datum.
//
// Returns ErrMissingWeight when any datum lacks an error bound; construction
// guarantees σ > 0 for every attached bound, so no zero denominator exists.
func WeightMatrix(data []*coords.Datum) (*mat.DiagDense, error) {
	if err := validateBatch("WeightMatrix", data); err != nil {
		return nil, err
	}

	w := mat.NewDiagDense(len(data), nil)
	for i, d := range data {
		sigma, ok := d.Sigma()
		if !ok {
			return nil, fmt.Errorf("WeightMatrix: datum %d: %w", i, ErrMissingWeight)
		}
		w.SetDiag(i, 1/(sigma*sigma))
	}

	return w, nil
}
