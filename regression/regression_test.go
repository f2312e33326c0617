package regression_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/lionmage/tungsten-types-sub005/coords"
	"github.com/lionmage/tungsten-types-sub005/regression"
)

// line builds a 2-D batch lying exactly on y = m*x + b.
func line(m, b float64, xs ...float64) []*coords.Datum {
	out := make([]*coords.Datum, len(xs))
	for i, x := range xs {
		out[i] = coords.New2D(x, m*x+b)
	}

	return out
}

// TestDesignMatrix_VandermondeRows verifies row layout [1, x, x², …] in
// input order.
func TestDesignMatrix_VandermondeRows(t *testing.T) {
	data := []*coords.Datum{coords.New2D(2, 0), coords.New2D(-1, 0)}

	x, err := regression.DesignMatrix(data, 2)
	require.NoError(t, err)

	r, c := x.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, []float64{1, 2, 4}, mat.Row(nil, 0, x))
	assert.Equal(t, []float64{1, -1, 1}, mat.Row(nil, 1, x))
}

// TestDesignMatrix_BadArguments covers the empty-batch and negative-degree guards.
func TestDesignMatrix_BadArguments(t *testing.T) {
	_, err := regression.DesignMatrix(nil, 1)
	assert.ErrorIs(t, err, coords.ErrInvalidArgument)

	_, err = regression.DesignMatrix(line(1, 0, 1, 2), -1)
	assert.ErrorIs(t, err, coords.ErrInvalidArgument)
}

// TestDesignMatrix3D_BilinearRows verifies the [1, x, y, xy] surface rows and
// the arity guard.
func TestDesignMatrix3D_BilinearRows(t *testing.T) {
	data := []*coords.Datum{coords.New3D(2, 3, 0)}

	x, err := regression.DesignMatrix3D(data)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 6}, mat.Row(nil, 0, x))

	_, err = regression.DesignMatrix3D([]*coords.Datum{coords.New2D(1, 2)})
	assert.ErrorIs(t, err, coords.ErrInvalidArgument, "arity-1 datum cannot form a surface row")
}

// TestDesignMatrixMulti_RowsAndArity verifies [1, x₁, …, xₖ] rows and the
// homogeneity contract.
func TestDesignMatrixMulti_RowsAndArity(t *testing.T) {
	d1, err := coords.New(1, 2, 3, 9)
	require.NoError(t, err)
	d2, err := coords.New(4, 5, 6, 9)
	require.NoError(t, err)

	x, err := regression.DesignMatrixMulti([]*coords.Datum{d1, d2})
	require.NoError(t, err)

	r, c := x.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 4, c, "intercept column plus one column per ordinate")
	assert.Equal(t, []float64{1, 1, 2, 3}, mat.Row(nil, 0, x))

	_, err = regression.DesignMatrixMulti([]*coords.Datum{d1, coords.New2D(1, 2)})
	assert.ErrorIs(t, err, coords.ErrMismatchedArity)
}

// TestObservedValues_Order checks the dependent column keeps input order.
func TestObservedValues_Order(t *testing.T) {
	data := []*coords.Datum{coords.New2D(0, 5), coords.New2D(0, -2), coords.New2D(0, 7)}

	y, err := regression.ObservedValues(data)
	require.NoError(t, err)

	assert.Equal(t, 3, y.Len())
	assert.Equal(t, 5.0, y.AtVec(0))
	assert.Equal(t, -2.0, y.AtVec(1))
	assert.Equal(t, 7.0, y.AtVec(2))
}

// TestWeightMatrix_InverseVariance verifies 1/σ² entries and the
// MissingWeight contract.
func TestWeightMatrix_InverseVariance(t *testing.T) {
	a := coords.New2D(0, 1)
	require.NoError(t, a.SetError(0.5))
	b := coords.New2D(1, 2)
	require.NoError(t, b.SetError(2))

	w, err := regression.WeightMatrix([]*coords.Datum{a, b})
	require.NoError(t, err)

	assert.InDelta(t, 4.0, w.At(0, 0), 1e-12)
	assert.InDelta(t, 0.25, w.At(1, 1), 1e-12)
	assert.Equal(t, 0.0, w.At(0, 1), "off-diagonal stays zero")

	_, err = regression.WeightMatrix([]*coords.Datum{a, coords.New2D(2, 3)})
	assert.ErrorIs(t, err, regression.ErrMissingWeight)
}

// TestPseudoInverse_RecoversLine solves an exact over-determined linear
// system: coefficients must match the generating line.
func TestPseudoInverse_RecoversLine(t *testing.T) {
	data := line(2, -1, 0, 1, 2, 3, 4)

	x, err := regression.DesignMatrix(data, 1)
	require.NoError(t, err)
	y, err := regression.ObservedValues(data)
	require.NoError(t, err)

	p, err := regression.PseudoInverse(x)
	require.NoError(t, err)

	var coef mat.Dense
	coef.Mul(p, y)

	r, c := coef.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 1, c)
	assert.InDelta(t, -1.0, coef.At(0, 0), 1e-9, "intercept")
	assert.InDelta(t, 2.0, coef.At(1, 0), 1e-9, "slope")
}

// TestPseudoInverse_SingularSystem verifies collinear columns fail with the
// typed sentinel rather than producing NaN coefficients.
func TestPseudoInverse_SingularSystem(t *testing.T) {
	// Two identical x values with degree 1 make XᵗX rank-deficient only when
	// all rows coincide; use a duplicated column instead for a hard failure.
	x := mat.NewDense(3, 2, []float64{
		1, 1,
		2, 2,
		3, 3,
	})

	_, err := regression.PseudoInverse(x)
	assert.ErrorIs(t, err, regression.ErrSingularMatrix)
}

// TestWeightedPseudoInverse_MatchesUnweighted confirms uniform weights give
// the unweighted solution on exact data.
func TestWeightedPseudoInverse_MatchesUnweighted(t *testing.T) {
	data := line(0.5, 3, 1, 2, 3, 4)
	for _, d := range data {
		require.NoError(t, d.SetError(1)) // uniform σ = 1 → identity weights
	}

	x, err := regression.DesignMatrix(data, 1)
	require.NoError(t, err)
	w, err := regression.WeightMatrix(data)
	require.NoError(t, err)
	y, err := regression.ObservedValues(data)
	require.NoError(t, err)

	p, err := regression.WeightedPseudoInverse(x, w)
	require.NoError(t, err)

	var coef mat.Dense
	coef.Mul(p, y)
	assert.InDelta(t, 3.0, coef.At(0, 0), 1e-9)
	assert.InDelta(t, 0.5, coef.At(1, 0), 1e-9)
}
