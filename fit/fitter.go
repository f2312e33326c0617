package fit

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/lionmage/tungsten-types-sub005/coords"
)

// Fitter dispatches fits over one coordinate batch. Its shape is inferred
// once at construction from the first datum's arity and cached; the batch is
// deep-copied, so later caller-side mutation never leaks in.
//
// Lifecycle: construct → optional SortInX → any number of independent,
// side-effect-free FitToData calls. The stored ordering is the only mutable
// state; callers must serialize SortInX against concurrent FitToData calls.
type Fitter struct {
	data  []*coords.Datum
	shape coords.Shape
	reg   *Registry
	log   *zap.Logger
}

// Option configures a Fitter at construction.
type Option func(*Fitter)

// WithLogger injects the structured diagnostics logger handed to every
// resolved strategy. Default: zap.NewNop() (the algorithm path stays silent).
func WithLogger(log *zap.Logger) Option {
	return func(f *Fitter) {
		if log != nil {
			f.log = log
		}
	}
}

// WithRegistry swaps the strategy catalogue. Default: DefaultRegistry().
func WithRegistry(r *Registry) Option {
	return func(f *Fitter) {
		if r != nil {
			f.reg = r
		}
	}
}

// NewFitter constructs a dispatcher from a non-empty, arity-homogeneous
// batch.
//
// Returns coords.ErrInvalidArgument for an empty batch and
// coords.ErrMismatchedArity when datums disagree on arity.
func NewFitter(data []*coords.Datum, opts ...Option) (*Fitter, error) {
	shape, err := coords.BatchShape(data)
	if err != nil {
		return nil, fmt.Errorf("NewFitter: %w", err)
	}

	f := &Fitter{
		data:  coords.CloneBatch(data),
		shape: shape,
		reg:   DefaultRegistry(),
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

// Shape reports the cached batch shape.
func (f *Fitter) Shape() coords.Shape { return f.shape }

// Len reports the batch size.
func (f *Fitter) Len() int { return len(f.data) }

// SortInX reorders the stored batch ascending by the first ordinate. It
// affects spline construction and output ordering only — least-squares
// coefficients are order-invariant.
func (f *Fitter) SortInX() {
	sort.SliceStable(f.data, func(i, j int) bool {
		return coords.CompareX(f.data[i], f.data[j]) < 0
	})
}

// defaultName is the shape-appropriate strategy used when FitToData gets no
// prefix.
func defaultName(shape coords.Shape) string {
	switch shape {
	case coords.Shape3D:
		return NameSimple3D
	case coords.ShapeMulti:
		return NameMultidimensional
	default:
		return NameLinear
	}
}

// FitToData resolves a strategy and runs it against the batch in its current
// order. With no argument the shape default applies (linear fit for 2-D,
// simple 3D fit for 3-D, multidimensional fit otherwise); with one argument
// the name is a case/whitespace-insensitive unique prefix of a registered
// strategy for the active shape.
//
// Returns ErrStrategyNotFound on ambiguous or unknown prefixes,
// coords.ErrInvalidArgument when more than one name is supplied, and
// whatever the resolved strategy fails with.
func (f *Fitter) FitToData(name ...string) (Function, error) {
	if len(name) > 1 {
		return nil, fmt.Errorf("FitToData: got %d names, want at most 1: %w", len(name), coords.ErrInvalidArgument)
	}

	prefix := defaultName(f.shape)
	if len(name) == 1 {
		prefix = name[0]
	}

	factory, err := f.reg.Resolve(prefix, f.shape)
	if err != nil {
		return nil, err
	}

	return factory(f.log).Fit(f.data)
}
