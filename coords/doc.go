// Package coords provides the coordinate primitives consumed by the fitting
// engine.
//
// The coords package provides:
//
//   - Datum, an arity-generic data point: an ordered sequence of independent
//     ordinates plus one dependent value and an optional error bound.
//   - Shape, the dimensionality classification (Shape2D, Shape3D, ShapeMulti)
//     inferred from a batch, never supplied by the caller.
//   - Explicit 2-D/3-D views (Datum2D, Datum3D) with named accessors, in place
//     of subclassing; conversions never mutate the source datum.
//   - Ordering comparators along a named axis, dispatching to the correct
//     ordinate or to the dependent value depending on the declared shape.
//
// All constructors and mutators validate eagerly and return package-level
// sentinel errors matched via errors.Is.
package coords
