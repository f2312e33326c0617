package fit

import (
	"fmt"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/lionmage/tungsten-types-sub005/coords"
)

// Canonical strategy names, as registered by DefaultRegistry. Lookup is by
// case/whitespace-insensitive unique prefix of these.
const (
	NameCubicSplines      = "cubic splines"
	NameExponential       = "exponential fit"
	NameLinear            = "linear fit"
	NameMultidimensional  = "multidimensional fit"
	NameParabolic         = "parabolic fit"
	NameSimple3D          = "simple 3D fit"
	NameWeightedLinear    = "weighted linear fit"
	NameWeightedParabolic = "weighted parabolic fit"
)

// Strategy consumes a coordinate batch and emits a fitted function.
//
// Implementations check preconditions (non-empty batch, expected arity)
// before any numeric work, snapshot the batch, and never mutate the caller's
// data. Fit calls are side-effect-free and safe to run concurrently on
// independent batches.
type Strategy interface {
	// Name returns the strategy's registered display name.
	Name() string

	// SupportedShape reports which batch shape the strategy accepts.
	SupportedShape() coords.Shape

	// Fit runs the algorithm against the batch in its current order.
	Fit(data []*coords.Datum) (Function, error)
}

// anyArity marks a strategy that accepts every uniform arity >= 1.
const anyArity = -1

// prepare is the shared precondition gate: non-empty batch, no nil datums,
// arity as expected (anyArity → uniform across the batch), then a deep
// snapshot so the caller's batch stays untouched.
func prepare(name string, data []*coords.Datum, wantArity int) ([]*coords.Datum, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%s: empty batch: %w", name, coords.ErrInvalidArgument)
	}
	for i, d := range data {
		if d == nil {
			return nil, fmt.Errorf("%s: nil datum at %d: %w", name, i, coords.ErrInvalidArgument)
		}
	}

	if wantArity == anyArity {
		arity := data[0].Arity()
		for i, d := range data[1:] {
			if d.Arity() != arity {
				return nil, fmt.Errorf("%s: datum %d has arity %d, want %d: %w", name, i+1, d.Arity(), arity, coords.ErrMismatchedArity)
			}
		}
	} else {
		for i, d := range data {
			if d.Arity() != wantArity {
				return nil, fmt.Errorf("%s: datum %d has arity %d, want %d: %w", name, i, d.Arity(), wantArity, coords.ErrInvalidArgument)
			}
		}
	}

	return coords.CloneBatch(data), nil
}

// warnShape reports a solved coefficient matrix whose dimensions disagree
// with the design. The condition signals an inconsistency inside the solving
// layer, not bad user input, so it is diagnostics-only and never fatal.
func warnShape(log *zap.Logger, strategy string, solved mat.Matrix, wantRows int) {
	r, c := solved.Dims()
	if r == wantRows && c == 1 {
		return
	}
	log.Warn("unexpected solution shape",
		zap.String("strategy", strategy),
		zap.Int("rows", r),
		zap.Int("cols", c),
		zap.Int("want_rows", wantRows),
	)
}

// nopLogger normalizes a possibly-nil injected logger.
func nopLogger(log *zap.Logger) *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}

	return log
}
