package fit

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/lionmage/tungsten-types-sub005/coords"
)

// Spline is a piecewise natural cubic interpolant. It passes through every
// knot exactly and is C²-continuous at interior knots; outside the knot range
// the nearest end segment extends.
//
// Segment i covers [knot i, knot i+1) and evaluates
// a[i] + b[i]·t + c[i]·t² + d[i]·t³ with t = x − knot[i].
type Spline struct {
	xs         []float64
	a, b, c, d []float64
}

// Arity is always 1: splines interpolate planar data.
func (s *Spline) Arity() int { return 1 }

// Terms reports the number of cubic segments.
func (s *Spline) Terms() int { return len(s.a) }

// Knots returns a copy of the knot abscissae in ascending order.
func (s *Spline) Knots() []float64 {
	out := make([]float64, len(s.xs))
	copy(out, s.xs)

	return out
}

// Eval selects the segment containing x and evaluates its cubic. Arguments
// left of the first knot use the first segment, right of the last knot the
// last segment.
func (s *Spline) Eval(xs ...float64) (float64, error) {
	if len(xs) != 1 {
		return 0, fmt.Errorf("Spline.Eval: got %d arguments, want 1: %w", len(xs), coords.ErrInvalidArgument)
	}
	x := xs[0]

	// sort.SearchFloat64s yields the first knot >= x; the owning segment
	// starts one knot earlier. Clamp to the valid segment range.
	i := sort.SearchFloat64s(s.xs, x)
	if i > 0 {
		i--
	}
	if i > len(s.a)-1 {
		i = len(s.a) - 1
	}

	t := x - s.xs[i]

	return s.a[i] + t*(s.b[i]+t*(s.c[i]+t*s.d[i])), nil
}

// String identifies the interpolant and its knot count.
func (s *Spline) String() string {
	return fmt.Sprintf("natural cubic spline over %d knots", len(s.xs))
}

// CubicSplineStrategy builds an exact interpolant rather than a least-squares
// fit: the returned Spline passes through every data point.
//
// Boundary conditions are natural — the second derivative vanishes at both
// end knots. The batch must be strictly increasing in x in its current order;
// run Fitter.SortInX (or pre-sort) first. Duplicate abscissae cannot be
// interpolated and fail the same guard.
type CubicSplineStrategy struct {
	log *zap.Logger
}

// NewCubicSpline builds the strategy; log may be nil.
func NewCubicSpline(log *zap.Logger) Strategy { return &CubicSplineStrategy{log: nopLogger(log)} }

// Name implements Strategy.
func (s *CubicSplineStrategy) Name() string { return NameCubicSplines }

// SupportedShape implements Strategy.
func (s *CubicSplineStrategy) SupportedShape() coords.Shape { return coords.Shape2D }

// Fit solves the natural-spline tridiagonal system and returns the Spline.
//
// Returns coords.ErrInvalidArgument for fewer than two points or a batch that
// is not strictly increasing in x.
func (s *CubicSplineStrategy) Fit(data []*coords.Datum) (Function, error) {
	batch, err := prepare(NameCubicSplines, data, 1)
	if err != nil {
		return nil, err
	}
	n := len(batch)
	if n < 2 {
		return nil, fmt.Errorf("%s: need at least 2 points, got %d: %w", NameCubicSplines, n, coords.ErrInvalidArgument)
	}

	xs := make([]float64, n)
	ys := make([]float64, n)
	for i, d := range batch {
		xs[i], _ = d.Ordinate(0)
		ys[i] = d.Value()
	}
	for i := 1; i < n; i++ {
		if xs[i] <= xs[i-1] {
			return nil, fmt.Errorf("%s: first ordinates must be strictly increasing (index %d): %w", NameCubicSplines, i, coords.ErrInvalidArgument)
		}
	}

	h := make([]float64, n-1)
	for i := range h {
		h[i] = xs[i+1] - xs[i]
	}

	// Natural boundary: c[0] = c[n-1] = 0. Interior c solved by the Thomas
	// algorithm over the standard tridiagonal system.
	c := make([]float64, n)
	if n > 2 {
		diag := make([]float64, n-2)
		rhs := make([]float64, n-2)
		for i := 1; i < n-1; i++ {
			diag[i-1] = 2 * (h[i-1] + h[i])
			rhs[i-1] = 3 * ((ys[i+1]-ys[i])/h[i] - (ys[i]-ys[i-1])/h[i-1])
		}

		// Forward elimination; sub/super-diagonals are h[1..n-3].
		for i := 1; i < n-2; i++ {
			m := h[i] / diag[i-1]
			diag[i] -= m * h[i]
			rhs[i] -= m * rhs[i-1]
		}
		// Back substitution.
		c[n-2] = rhs[n-3] / diag[n-3]
		for i := n - 3; i >= 1; i-- {
			c[i] = (rhs[i-1] - h[i]*c[i+1]) / diag[i-1]
		}
	}

	a := make([]float64, n-1)
	b := make([]float64, n-1)
	d := make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		a[i] = ys[i]
		b[i] = (ys[i+1]-ys[i])/h[i] - h[i]*(2*c[i]+c[i+1])/3
		d[i] = (c[i+1] - c[i]) / (3 * h[i])
	}

	return &Spline{xs: xs, a: a, b: b, c: c[:n-1], d: d}, nil
}
