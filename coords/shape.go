package coords

import "fmt"

// Shape classifies the dimensionality of a coordinate batch. It constrains
// which fitting strategies are eligible and is always inferred from the data,
// never supplied by the caller.
type Shape int

const (
	// Shape2D — one independent ordinate per datum.
	Shape2D Shape = iota

	// Shape3D — two independent ordinates per datum.
	Shape3D

	// ShapeMulti — three or more independent ordinates per datum.
	ShapeMulti
)

// String returns the canonical shape label.
func (s Shape) String() string {
	switch s {
	case Shape2D:
		return "2D"
	case Shape3D:
		return "3D"
	case ShapeMulti:
		return "multi"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// ShapeOf maps an arity to its shape: 1 → Shape2D, 2 → Shape3D, else ShapeMulti.
func ShapeOf(arity int) Shape {
	switch arity {
	case 1:
		return Shape2D
	case 2:
		return Shape3D
	default:
		return ShapeMulti
	}
}

// BatchShape infers the shape of a batch from its first datum and verifies
// every datum shares that arity.
//
// Returns ErrInvalidArgument for an empty batch or a nil datum, and
// ErrMismatchedArity when arities differ.
func BatchShape(data []*Datum) (Shape, error) {
	if len(data) == 0 {
		return 0, fmt.Errorf("BatchShape: empty batch: %w", ErrInvalidArgument)
	}
	if data[0] == nil {
		return 0, fmt.Errorf("BatchShape: nil datum at 0: %w", ErrInvalidArgument)
	}
	arity := data[0].Arity()
	for i, d := range data[1:] {
		if d == nil {
			return 0, fmt.Errorf("BatchShape: nil datum at %d: %w", i+1, ErrInvalidArgument)
		}
		if d.Arity() != arity {
			return 0, fmt.Errorf("BatchShape: datum %d has arity %d, want %d: %w", i+1, d.Arity(), arity, ErrMismatchedArity)
		}
	}

	return ShapeOf(arity), nil
}
