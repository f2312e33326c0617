package fit

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/lionmage/tungsten-types-sub005/coords"
)

// Factory builds a strategy instance around an injected diagnostics logger.
// Registries hold factories rather than instances so every resolved fit gets
// the dispatcher's logger.
type Factory func(log *zap.Logger) Strategy

// entry is one registered capability: display name, its normalized lookup
// key, the shape the strategy supports, and the factory.
type entry struct {
	name  string
	key   string
	shape coords.Shape
	make  Factory
}

// Registry is an explicit catalogue of fitting strategies tagged by
// (name, shape). It replaces any runtime discovery: strategies enter only
// through Register calls, typically once at startup, and remain openly
// extensible afterwards.
//
// Lookup is by case/whitespace-insensitive unique prefix, restricted to the
// active shape; an exact name always wins over other names sharing the
// prefix.
type Registry struct {
	entries []entry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry { return &Registry{} }

// DefaultRegistry returns a registry pre-loaded with the eight built-in
// strategies.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, reg := range []struct {
		name  string
		shape coords.Shape
		make  Factory
	}{
		{NameCubicSplines, coords.Shape2D, NewCubicSpline},
		{NameExponential, coords.Shape2D, NewExponentialStrategy},
		{NameLinear, coords.Shape2D, NewLinear},
		{NameMultidimensional, coords.ShapeMulti, NewMultidimensional},
		{NameParabolic, coords.Shape2D, NewParabolic},
		{NameSimple3D, coords.Shape3D, NewSimple3D},
		{NameWeightedLinear, coords.Shape2D, NewWeightedLinear},
		{NameWeightedParabolic, coords.Shape2D, NewWeightedParabolic},
	} {
		// Built-in names are distinct per shape; Register cannot fail here.
		_ = r.Register(reg.name, reg.shape, reg.make)
	}

	return r
}

// normalizeName lowercases and strips every whitespace rune, making lookup
// insensitive to case and spacing ("Weighted  Linear" → "weightedlinear").
func normalizeName(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}

		return unicode.ToLower(r)
	}, s)
}

// Register adds a strategy under its display name for the given shape.
//
// Returns coords.ErrInvalidArgument for an empty name or nil factory, and
// ErrDuplicateStrategy when the normalized (name, shape) pair already exists.
func (r *Registry) Register(name string, shape coords.Shape, f Factory) error {
	key := normalizeName(name)
	if key == "" {
		return fmt.Errorf("Register: empty strategy name: %w", coords.ErrInvalidArgument)
	}
	if f == nil {
		return fmt.Errorf("Register: nil factory for %q: %w", name, coords.ErrInvalidArgument)
	}
	for _, e := range r.entries {
		if e.key == key && e.shape == shape {
			return fmt.Errorf("Register: %q for shape %s: %w", name, shape, ErrDuplicateStrategy)
		}
	}
	r.entries = append(r.entries, entry{name: name, key: key, shape: shape, make: f})

	return nil
}

// Names lists the display names registered for a shape, sorted.
func (r *Registry) Names(shape coords.Shape) []string {
	var out []string
	for _, e := range r.entries {
		if e.shape == shape {
			out = append(out, e.name)
		}
	}
	sort.Strings(out)

	return out
}

// Resolve maps a name prefix to the factory of the single matching strategy
// registered for the shape.
//
// Resolution rule: normalize the prefix, collect every registered name for
// the shape that begins with it; an exact normalized match takes precedence
// over any longer name sharing the prefix; otherwise exactly one remaining
// candidate resolves. Zero candidates, or several without an exact tie-break,
// fail with ErrStrategyNotFound.
func (r *Registry) Resolve(prefix string, shape coords.Shape) (Factory, error) {
	key := normalizeName(prefix)

	var candidates []entry
	for _, e := range r.entries {
		if e.shape != shape || !strings.HasPrefix(e.key, key) {
			continue
		}
		if e.key == key {
			return e.make, nil
		}
		candidates = append(candidates, e)
	}

	switch len(candidates) {
	case 1:
		return candidates[0].make, nil
	case 0:
		return nil, fmt.Errorf("Resolve: %q matches no strategy for shape %s: %w", prefix, shape, ErrStrategyNotFound)
	default:
		names := make([]string, len(candidates))
		for i, e := range candidates {
			names[i] = e.name
		}

		return nil, fmt.Errorf("Resolve: %q is ambiguous for shape %s (%s): %w", prefix, shape, strings.Join(names, ", "), ErrStrategyNotFound)
	}
}
