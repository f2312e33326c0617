package fit

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/lionmage/tungsten-types-sub005/coords"
)

// Scorecard summarizes how well a fitted function tracks a batch.
// It is a diagnostic aid for callers; no strategy consults it — selecting a
// "best" strategy automatically stays out of scope.
type Scorecard struct {
	// RSquared is the coefficient of determination (1 is a perfect fit).
	RSquared float64
	// RMSE is the root mean square error of the residuals.
	RMSE float64
}

// String renders the card in a compact single line.
func (s Scorecard) String() string {
	return fmt.Sprintf("Scorecard{R²: %.4f, RMSE: %.4f}", s.RSquared, s.RMSE)
}

// Score evaluates fn over every datum and reports R² and RMSE against the
// dependent values.
//
// Returns coords.ErrInvalidArgument for a nil function, an empty batch, or a
// batch whose arity disagrees with the function.
func Score(fn Function, data []*coords.Datum) (Scorecard, error) {
	if fn == nil {
		return Scorecard{}, fmt.Errorf("Score: nil function: %w", coords.ErrInvalidArgument)
	}
	if len(data) == 0 {
		return Scorecard{}, fmt.Errorf("Score: empty batch: %w", coords.ErrInvalidArgument)
	}

	estimates := make([]float64, len(data))
	values := make([]float64, len(data))
	sq := 0.0
	for i, d := range data {
		if d == nil {
			return Scorecard{}, fmt.Errorf("Score: nil datum at %d: %w", i, coords.ErrInvalidArgument)
		}
		est, err := fn.Eval(d.Ordinates()...)
		if err != nil {
			return Scorecard{}, fmt.Errorf("Score: datum %d: %w", i, err)
		}
		estimates[i] = est
		values[i] = d.Value()
		r := d.Value() - est
		sq += r * r
	}

	return Scorecard{
		RSquared: stat.RSquaredFrom(estimates, values, nil),
		RMSE:     math.Sqrt(sq / float64(len(data))),
	}, nil
}
