package fit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lionmage/tungsten-types-sub005/coords"
	"github.com/lionmage/tungsten-types-sub005/fit"
)

// TestScore_PerfectFit: a function through every point scores R² = 1 and a
// vanishing RMSE.
func TestScore_PerfectFit(t *testing.T) {
	data := []*coords.Datum{
		coords.New2D(0, 1), coords.New2D(1, 3), coords.New2D(2, 5), coords.New2D(3, 7),
	}
	f, err := fit.NewFitter(data)
	require.NoError(t, err)
	fn, err := f.FitToData("lin")
	require.NoError(t, err)

	card, err := fit.Score(fn, data)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, card.RSquared, 1e-9)
	assert.InDelta(t, 0.0, card.RMSE, 1e-9)
	assert.Contains(t, card.String(), "R²")
}

// TestScore_RanksNoisyFitLower: a line through scattered data scores below a
// perfect fit but stays well-defined.
func TestScore_RanksNoisyFitLower(t *testing.T) {
	data := []*coords.Datum{
		coords.New2D(0, 1.1), coords.New2D(1, 2.9), coords.New2D(2, 5.2), coords.New2D(3, 6.8),
	}
	f, err := fit.NewFitter(data)
	require.NoError(t, err)
	fn, err := f.FitToData()
	require.NoError(t, err)

	card, err := fit.Score(fn, data)
	require.NoError(t, err)
	assert.Greater(t, card.RSquared, 0.9, "near-linear data still fits well")
	assert.Less(t, card.RSquared, 1.0)
	assert.Greater(t, card.RMSE, 0.0)
}

// TestScore_Validation covers the argument guards.
func TestScore_Validation(t *testing.T) {
	_, err := fit.Score(nil, []*coords.Datum{coords.New2D(0, 0)})
	assert.ErrorIs(t, err, coords.ErrInvalidArgument)

	_, err = fit.Score(fit.Poly1D(1, 2), nil)
	assert.ErrorIs(t, err, coords.ErrInvalidArgument)

	// Arity mismatch between the function and the batch surfaces from Eval.
	_, err = fit.Score(fit.Poly1D(1, 2), []*coords.Datum{coords.New3D(1, 2, 3)})
	assert.ErrorIs(t, err, coords.ErrInvalidArgument)
}
