package coords

import "fmt"

// Datum is a single observation: an ordered sequence of independent ordinates
// plus one dependent value, with an optional error bound.
//
// Arity (the ordinate count) is fixed at construction and must be uniform
// across any batch handed to the fitting engine. The error bound is either
// symmetric (value ± sigma) or asymmetric (value+low .. value+high with
// low < 0 < high, both relative to the value).
//
// A Datum is effectively immutable once its bound is set; Clone/CloneBatch
// produce deep copies so downstream consumers never alias caller state.
type Datum struct {
	ordinates []float64
	value     float64

	// Error bound, relative to value. For a symmetric bound low == -high.
	low, high  float64
	hasBound   bool
	asymmetric bool
}

// New builds a Datum from an ordered sequence of values where all but the
// last are independent ordinates and the last is the dependent value.
// At least two values are required (one ordinate, one dependent value).
//
// Returns ErrInvalidArgument when fewer than two values are supplied.
func New(values ...float64) (*Datum, error) {
	if len(values) < 2 {
		return nil, fmt.Errorf("New: need at least one ordinate and a value, got %d: %w", len(values), ErrInvalidArgument)
	}
	n := len(values) - 1
	ords := make([]float64, n)
	copy(ords, values[:n])

	return &Datum{ordinates: ords, value: values[n]}, nil
}

// New2D builds a 2-D datum (one ordinate x, dependent value y).
func New2D(x, y float64) *Datum {
	return &Datum{ordinates: []float64{x}, value: y}
}

// New3D builds a 3-D datum (ordinates x and y, dependent value z).
func New3D(x, y, z float64) *Datum {
	return &Datum{ordinates: []float64{x, y}, value: z}
}

// Arity reports the count of independent ordinates.
func (d *Datum) Arity() int { return len(d.ordinates) }

// Value returns the dependent value.
func (d *Datum) Value() float64 { return d.value }

// Ordinate returns the i-th independent ordinate. Negative indices count from
// the end of the ordinate sequence: Ordinate(-1) is the last ordinate.
//
// Returns ErrInvalidArgument when i is outside [-Arity, Arity-1].
func (d *Datum) Ordinate(i int) (float64, error) {
	n := len(d.ordinates)
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return 0, fmt.Errorf("Ordinate: index %d outside arity %d: %w", i, n, ErrInvalidArgument)
	}

	return d.ordinates[i], nil
}

// Ordinates returns a copy of the independent ordinates in order.
func (d *Datum) Ordinates() []float64 {
	out := make([]float64, len(d.ordinates))
	copy(out, d.ordinates)

	return out
}

// SetError attaches a symmetric error bound sigma (value ± sigma).
//
// Returns ErrInvalidArgument unless sigma > 0.
func (d *Datum) SetError(sigma float64) error {
	if sigma <= 0 {
		return fmt.Errorf("SetError: sigma %v must be positive: %w", sigma, ErrInvalidArgument)
	}
	d.low, d.high = -sigma, sigma
	d.hasBound, d.asymmetric = true, false

	return nil
}

// SetAsymmetricError attaches an asymmetric bound. Both arguments are
// relative to the value and must satisfy low < 0 < high.
//
// Returns ErrInvalidArgument when the sign constraint is violated.
func (d *Datum) SetAsymmetricError(low, high float64) error {
	if low >= 0 || high <= 0 {
		return fmt.Errorf("SetAsymmetricError: need low < 0 < high, got (%v, %v): %w", low, high, ErrInvalidArgument)
	}
	d.low, d.high = low, high
	d.hasBound, d.asymmetric = true, true

	return nil
}

// ErrorBounds returns the absolute half-open range [lo, hi) implied by the
// attached bound: [value-high, value+high) for a symmetric bound,
// [value+low, value+high) for an asymmetric one. ok is false when no bound
// was ever set.
func (d *Datum) ErrorBounds() (lo, hi float64, ok bool) {
	if !d.hasBound {
		return 0, 0, false
	}

	return d.value + d.low, d.value + d.high, true
}

// Sigma returns the per-datum error estimate used by weighted strategies:
// the symmetric bound as-is, or half the width of an asymmetric range.
// ok is false when no bound was ever set.
func (d *Datum) Sigma() (sigma float64, ok bool) {
	if !d.hasBound {
		return 0, false
	}
	if !d.asymmetric {
		return d.high, true
	}

	return (d.high - d.low) / 2, true
}

// Clone returns a deep copy of the datum, error bound included.
func (d *Datum) Clone() *Datum {
	out := *d
	out.ordinates = make([]float64, len(d.ordinates))
	copy(out.ordinates, d.ordinates)

	return &out
}

// CloneBatch deep-copies a batch in order. Strategies snapshot their input
// through this helper so the caller's slice and datums stay untouched.
func CloneBatch(data []*Datum) []*Datum {
	out := make([]*Datum, len(data))
	for i, d := range data {
		out[i] = d.Clone()
	}

	return out
}

// String renders the datum as "(x1, …, xk) -> v" for debugging output.
func (d *Datum) String() string {
	return fmt.Sprintf("%v -> %v", d.ordinates, d.value)
}
