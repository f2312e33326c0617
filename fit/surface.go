package fit

import (
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/lionmage/tungsten-types-sub005/coords"
	"github.com/lionmage/tungsten-types-sub005/regression"
)

// Simple3DStrategy fits the bilinear surface z = A + Bx + Cy + Dxy by
// unweighted least squares over the 4-column design matrix [1, x, y, xy].
type Simple3DStrategy struct {
	log *zap.Logger
}

// NewSimple3D builds the strategy; log may be nil.
func NewSimple3D(log *zap.Logger) Strategy { return &Simple3DStrategy{log: nopLogger(log)} }

// Name implements Strategy.
func (s *Simple3DStrategy) Name() string { return NameSimple3D }

// SupportedShape implements Strategy.
func (s *Simple3DStrategy) SupportedShape() coords.Shape { return coords.Shape3D }

// Fit returns a 4-term arity-2 polynomial with powers 1, x, y, xy.
func (s *Simple3DStrategy) Fit(data []*coords.Datum) (Function, error) {
	batch, err := prepare(NameSimple3D, data, 2)
	if err != nil {
		return nil, err
	}

	x, err := regression.DesignMatrix3D(batch)
	if err != nil {
		return nil, err
	}
	y, err := regression.ObservedValues(batch)
	if err != nil {
		return nil, err
	}
	p, err := regression.PseudoInverse(x)
	if err != nil {
		return nil, err
	}

	var solved mat.Dense
	solved.Mul(p, y)
	warnShape(s.log, NameSimple3D, &solved, 4)

	// Term layout mirrors the design columns: 1, x, y, xy.
	powers := [][]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	terms := make([]Term, 4)
	for i := range terms {
		terms[i] = Term{Coefficient: solved.At(i, 0), Powers: powers[i]}
	}

	return NewPolynomial(2, terms)
}

// MultidimensionalStrategy fits a first-order model over every ordinate:
// one intercept plus one linear term per independent ordinate, no interaction
// or higher-order terms. Any uniform arity >= 1 is accepted.
type MultidimensionalStrategy struct {
	log *zap.Logger
}

// NewMultidimensional builds the strategy; log may be nil.
func NewMultidimensional(log *zap.Logger) Strategy {
	return &MultidimensionalStrategy{log: nopLogger(log)}
}

// Name implements Strategy.
func (s *MultidimensionalStrategy) Name() string { return NameMultidimensional }

// SupportedShape implements Strategy.
func (s *MultidimensionalStrategy) SupportedShape() coords.Shape { return coords.ShapeMulti }

// Fit returns a polynomial with exactly arity+1 terms.
func (s *MultidimensionalStrategy) Fit(data []*coords.Datum) (Function, error) {
	batch, err := prepare(NameMultidimensional, data, anyArity)
	if err != nil {
		return nil, err
	}
	arity := batch[0].Arity()

	x, err := regression.DesignMatrixMulti(batch)
	if err != nil {
		return nil, err
	}
	y, err := regression.ObservedValues(batch)
	if err != nil {
		return nil, err
	}
	p, err := regression.PseudoInverse(x)
	if err != nil {
		return nil, err
	}

	var solved mat.Dense
	solved.Mul(p, y)
	warnShape(s.log, NameMultidimensional, &solved, arity+1)

	terms := make([]Term, arity+1)
	terms[0] = Term{Coefficient: solved.At(0, 0), Powers: make([]int, arity)}
	for i := 1; i <= arity; i++ {
		powers := make([]int, arity)
		powers[i-1] = 1
		terms[i] = Term{Coefficient: solved.At(i, 0), Powers: powers}
	}

	return NewPolynomial(arity, terms)
}
