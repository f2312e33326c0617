package coords

import "fmt"

// Axis names a comparison axis for ordering comparators.
type Axis int

const (
	// AxisX — first independent ordinate.
	AxisX Axis = iota

	// AxisY — second ordinate for Shape3D, the dependent value for Shape2D.
	AxisY

	// AxisZ — the dependent value for Shape3D.
	AxisZ
)

// String returns the axis label.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// compareFloat is the three-way comparison all comparators reduce to.
func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// CompareX orders two datums by their first independent ordinate.
// Suitable for slices.SortFunc / sort.SliceStable adapters.
func CompareX(a, b *Datum) int {
	return compareFloat(a.ordinates[0], b.ordinates[0])
}

// ByAxis returns a three-way comparator ordering datums along the given axis
// under the declared shape. The axis dispatches to the correct ordinate or to
// the dependent value:
//
//	Shape2D: AxisX → ordinate 0, AxisY → dependent value
//	Shape3D: AxisX → ordinate 0, AxisY → ordinate 1, AxisZ → dependent value
//
// The comparator assumes datums of the declared shape; batches are shape-
// checked at construction upstream. Returns ErrInvalidArgument for an axis
// the shape does not define (including any axis under ShapeMulti, where
// callers compare explicit ordinate indices instead).
func ByAxis(shape Shape, axis Axis) (func(a, b *Datum) int, error) {
	ordinate := func(i int) func(a, b *Datum) int {
		return func(a, b *Datum) int { return compareFloat(a.ordinates[i], b.ordinates[i]) }
	}
	value := func(a, b *Datum) int { return compareFloat(a.value, b.value) }

	switch shape {
	case Shape2D:
		switch axis {
		case AxisX:
			return ordinate(0), nil
		case AxisY:
			return value, nil
		}
	case Shape3D:
		switch axis {
		case AxisX:
			return ordinate(0), nil
		case AxisY:
			return ordinate(1), nil
		case AxisZ:
			return value, nil
		}
	}

	return nil, fmt.Errorf("ByAxis: axis %s undefined for shape %s: %w", axis, shape, ErrInvalidArgument)
}
