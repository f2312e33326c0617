package coords

import "fmt"

// Datum2D is a named-accessor view over an arity-1 datum. It borrows the
// underlying datum read-only; obtain one via As2D.
type Datum2D struct {
	d *Datum
}

// X returns the single independent ordinate.
func (p Datum2D) X() float64 { return p.d.ordinates[0] }

// Y returns the dependent value.
func (p Datum2D) Y() float64 { return p.d.value }

// Datum returns the underlying generic datum.
func (p Datum2D) Datum() *Datum { return p.d }

// Datum3D is a named-accessor view over an arity-2 datum; obtain one via As3D.
type Datum3D struct {
	d *Datum
}

// X returns the first independent ordinate.
func (p Datum3D) X() float64 { return p.d.ordinates[0] }

// Y returns the second independent ordinate.
func (p Datum3D) Y() float64 { return p.d.ordinates[1] }

// Z returns the dependent value.
func (p Datum3D) Z() float64 { return p.d.value }

// Datum returns the underlying generic datum.
func (p Datum3D) Datum() *Datum { return p.d }

// As2D converts the datum to its 2-D view. The conversion is a cheap,
// non-mutating reinterpretation; the datum must have arity 1.
//
// Returns ErrInvalidArgument on any other arity.
func (d *Datum) As2D() (Datum2D, error) {
	if d.Arity() != 1 {
		return Datum2D{}, fmt.Errorf("As2D: arity %d, want 1: %w", d.Arity(), ErrInvalidArgument)
	}

	return Datum2D{d: d}, nil
}

// As3D converts the datum to its 3-D view; the datum must have arity 2.
//
// Returns ErrInvalidArgument on any other arity.
func (d *Datum) As3D() (Datum3D, error) {
	if d.Arity() != 2 {
		return Datum3D{}, fmt.Errorf("As3D: arity %d, want 2: %w", d.Arity(), ErrInvalidArgument)
	}

	return Datum3D{d: d}, nil
}
