package fit

import (
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/lionmage/tungsten-types-sub005/coords"
	"github.com/lionmage/tungsten-types-sub005/regression"
)

// solveUnivariate runs the shared polynomial least-squares pipeline over the
// first ordinate: degree-d design matrix, (optionally weighted)
// pseudo-inverse, coefficient extraction in ascending-power order.
//
// Errors: regression.ErrMissingWeight (weighted, σ absent),
// regression.ErrSingularMatrix (degenerate normal equations).
func solveUnivariate(name string, data []*coords.Datum, degree int, weighted bool, log *zap.Logger) (*Polynomial, error) {
	x, err := regression.DesignMatrix(data, degree)
	if err != nil {
		return nil, err
	}
	y, err := regression.ObservedValues(data)
	if err != nil {
		return nil, err
	}

	var p *mat.Dense
	if weighted {
		w, werr := regression.WeightMatrix(data)
		if werr != nil {
			return nil, werr
		}
		p, err = regression.WeightedPseudoInverse(x, w)
	} else {
		p, err = regression.PseudoInverse(x)
	}
	if err != nil {
		return nil, err
	}

	var solved mat.Dense
	solved.Mul(p, y)
	warnShape(log, name, &solved, degree+1)

	coeffs := make([]float64, degree+1)
	for i := range coeffs {
		coeffs[i] = solved.At(i, 0)
	}

	return Poly1D(coeffs...), nil
}

// LinearStrategy fits y = c₀ + c₁x by unweighted least squares.
type LinearStrategy struct {
	log *zap.Logger
}

// NewLinear builds the strategy; log may be nil.
func NewLinear(log *zap.Logger) Strategy { return &LinearStrategy{log: nopLogger(log)} }

// Name implements Strategy.
func (s *LinearStrategy) Name() string { return NameLinear }

// SupportedShape implements Strategy.
func (s *LinearStrategy) SupportedShape() coords.Shape { return coords.Shape2D }

// Fit returns a 2-term polynomial (intercept, slope).
func (s *LinearStrategy) Fit(data []*coords.Datum) (Function, error) {
	batch, err := prepare(NameLinear, data, 1)
	if err != nil {
		return nil, err
	}

	return solveUnivariate(NameLinear, batch, 1, false, s.log)
}

// ParabolicStrategy fits y = c₀ + c₁x + c₂x² by unweighted least squares.
type ParabolicStrategy struct {
	log *zap.Logger
}

// NewParabolic builds the strategy; log may be nil.
func NewParabolic(log *zap.Logger) Strategy { return &ParabolicStrategy{log: nopLogger(log)} }

// Name implements Strategy.
func (s *ParabolicStrategy) Name() string { return NameParabolic }

// SupportedShape implements Strategy.
func (s *ParabolicStrategy) SupportedShape() coords.Shape { return coords.Shape2D }

// Fit returns a 3-term polynomial.
func (s *ParabolicStrategy) Fit(data []*coords.Datum) (Function, error) {
	batch, err := prepare(NameParabolic, data, 1)
	if err != nil {
		return nil, err
	}

	return solveUnivariate(NameParabolic, batch, 2, false, s.log)
}

// WeightedLinearStrategy is LinearStrategy with per-datum 1/σ² weighting.
// Every datum must carry an error bound; a missing σ is a hard contract
// violation, never a silent downgrade to the unweighted fit.
type WeightedLinearStrategy struct {
	log *zap.Logger
}

// NewWeightedLinear builds the strategy; log may be nil.
func NewWeightedLinear(log *zap.Logger) Strategy {
	return &WeightedLinearStrategy{log: nopLogger(log)}
}

// Name implements Strategy.
func (s *WeightedLinearStrategy) Name() string { return NameWeightedLinear }

// SupportedShape implements Strategy.
func (s *WeightedLinearStrategy) SupportedShape() coords.Shape { return coords.Shape2D }

// Fit returns a 2-term polynomial solved with the weighted pseudo-inverse.
func (s *WeightedLinearStrategy) Fit(data []*coords.Datum) (Function, error) {
	batch, err := prepare(NameWeightedLinear, data, 1)
	if err != nil {
		return nil, err
	}

	return solveUnivariate(NameWeightedLinear, batch, 1, true, s.log)
}

// WeightedParabolicStrategy is ParabolicStrategy with 1/σ² weighting under
// the same hard σ requirement.
type WeightedParabolicStrategy struct {
	log *zap.Logger
}

// NewWeightedParabolic builds the strategy; log may be nil.
func NewWeightedParabolic(log *zap.Logger) Strategy {
	return &WeightedParabolicStrategy{log: nopLogger(log)}
}

// Name implements Strategy.
func (s *WeightedParabolicStrategy) Name() string { return NameWeightedParabolic }

// SupportedShape implements Strategy.
func (s *WeightedParabolicStrategy) SupportedShape() coords.Shape { return coords.Shape2D }

// Fit returns a 3-term polynomial solved with the weighted pseudo-inverse.
func (s *WeightedParabolicStrategy) Fit(data []*coords.Datum) (Function, error) {
	batch, err := prepare(NameWeightedParabolic, data, 1)
	if err != nil {
		return nil, err
	}

	return solveUnivariate(NameWeightedParabolic, batch, 2, true, s.log)
}
