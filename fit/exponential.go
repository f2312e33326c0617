package fit

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/lionmage/tungsten-types-sub005/coords"
	"github.com/lionmage/tungsten-types-sub005/regression"
)

// ExponentialStrategy fits y = A·e^(Bx) by linearizing ln(y) = ln(A) + Bx.
//
// The least-squares sums are weighted by y itself, which compensates for the
// distortion the log transform puts on residuals. Five scalar sums are
// accumulated across the batch (Σy, Σxy, Σx²y, Σy·ln y, Σxy·ln y); the first
// three form a 2×2 normal-equations matrix solved by direct inversion — the
// system is already square, so no pseudo-inverse is involved. B falls out
// directly and A = e^a.
//
// Every dependent value must be strictly positive (ln is undefined
// otherwise); a violation fails with ErrDomain before any sum is formed.
type ExponentialStrategy struct {
	log *zap.Logger
}

// NewExponentialStrategy builds the strategy; log may be nil.
func NewExponentialStrategy(log *zap.Logger) Strategy {
	return &ExponentialStrategy{log: nopLogger(log)}
}

// Name implements Strategy.
func (s *ExponentialStrategy) Name() string { return NameExponential }

// SupportedShape implements Strategy.
func (s *ExponentialStrategy) SupportedShape() coords.Shape { return coords.Shape2D }

// Fit returns the composed function A·e^(B·x), never a polynomial.
func (s *ExponentialStrategy) Fit(data []*coords.Datum) (Function, error) {
	batch, err := prepare(NameExponential, data, 1)
	if err != nil {
		return nil, err
	}

	// Domain gate before any numeric work.
	for i, d := range batch {
		if d.Value() <= 0 {
			return nil, fmt.Errorf("%s: datum %d has dependent value %v, ln undefined: %w", NameExponential, i, d.Value(), ErrDomain)
		}
	}

	var sy, sxy, sx2y, sylny, sxylny float64
	for _, d := range batch {
		x, _ := d.Ordinate(0)
		y := d.Value()
		lny := math.Log(y)

		sy += y
		sxy += x * y
		sx2y += x * x * y
		sylny += y * lny
		sxylny += x * y * lny
	}

	// Direct inversion of [[Σy, Σxy], [Σxy, Σx²y]].
	det := sy*sx2y - sxy*sxy
	if det == 0 {
		return nil, fmt.Errorf("%s: %w", NameExponential, regression.ErrSingularMatrix)
	}

	a := (sx2y*sylny - sxy*sxylny) / det
	b := (sy*sxylny - sxy*sylny) / det

	return NewExponential(math.Exp(a), b), nil
}
