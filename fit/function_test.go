package fit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lionmage/tungsten-types-sub005/coords"
	"github.com/lionmage/tungsten-types-sub005/fit"
)

// TestPoly1D_EvalAndAccessors exercises the univariate polynomial surface.
func TestPoly1D_EvalAndAccessors(t *testing.T) {
	p := fit.Poly1D(1, -2, 3) // 1 - 2x + 3x²

	assert.Equal(t, 1, p.Arity())
	assert.Equal(t, 3, p.Terms())
	assert.Equal(t, []float64{1, -2, 3}, p.Coefficients())

	got, err := p.Eval(2)
	require.NoError(t, err)
	assert.Equal(t, 9.0, got)

	_, err = p.Eval(1, 2)
	assert.ErrorIs(t, err, coords.ErrInvalidArgument, "argument count must match arity")
}

// TestNewPolynomial_Validation covers the malformed-term guards.
func TestNewPolynomial_Validation(t *testing.T) {
	_, err := fit.NewPolynomial(0, []fit.Term{{Coefficient: 1, Powers: []int{}}})
	assert.ErrorIs(t, err, coords.ErrInvalidArgument, "arity must be >= 1")

	_, err = fit.NewPolynomial(2, nil)
	assert.ErrorIs(t, err, coords.ErrInvalidArgument, "at least one term required")

	_, err = fit.NewPolynomial(2, []fit.Term{{Coefficient: 1, Powers: []int{1}}})
	assert.ErrorIs(t, err, coords.ErrInvalidArgument, "powers must match arity")

	_, err = fit.NewPolynomial(1, []fit.Term{{Coefficient: 1, Powers: []int{-1}}})
	assert.ErrorIs(t, err, coords.ErrInvalidArgument, "negative powers rejected")
}

// TestPolynomial_Bivariate evaluates a bilinear term mix and its formula.
func TestPolynomial_Bivariate(t *testing.T) {
	p, err := fit.NewPolynomial(2, []fit.Term{
		{Coefficient: 1, Powers: []int{0, 0}},
		{Coefficient: 2, Powers: []int{1, 0}},
		{Coefficient: 3, Powers: []int{0, 1}},
		{Coefficient: 0.5, Powers: []int{1, 1}},
	})
	require.NoError(t, err)

	got, err := p.Eval(2, 4)
	require.NoError(t, err)
	assert.Equal(t, 1.0+4+12+4, got)

	assert.Equal(t, "y = 1 + 2*x + 3*y + 0.5*x*y", p.String())

	term, err := p.TermAt(3)
	require.NoError(t, err)
	assert.Equal(t, 0.5, term.Coefficient)
	assert.Equal(t, []int{1, 1}, term.Powers)

	_, err = p.TermAt(4)
	assert.ErrorIs(t, err, coords.ErrInvalidArgument)
}

// TestExponential_EvalAndString checks the composed A·e^(B·x) function.
func TestExponential_EvalAndString(t *testing.T) {
	e := fit.NewExponential(2, 0.5)

	assert.Equal(t, 2.0, e.A())
	assert.Equal(t, 0.5, e.B())
	assert.Equal(t, 1, e.Arity())
	assert.Equal(t, 2, e.Terms())

	got, err := e.Eval(0)
	require.NoError(t, err)
	assert.Equal(t, 2.0, got, "e^0 leaves only A")

	_, err = e.Eval()
	assert.ErrorIs(t, err, coords.ErrInvalidArgument)

	assert.Equal(t, "y = 2*e^(0.5*x)", e.String())
}
