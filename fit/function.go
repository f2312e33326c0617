package fit

import (
	"fmt"
	"math"
	"strings"

	"github.com/lionmage/tungsten-types-sub005/coords"
)

// Function is a fitted model returned to — and owned by — the caller.
//
// Eval takes one argument per independent ordinate of the batch the function
// was fitted against and returns coords.ErrInvalidArgument on an argument
// count mismatch. Terms reports the number of coefficient-bearing terms.
// String renders a human-readable formula.
type Function interface {
	Eval(xs ...float64) (float64, error)
	Arity() int
	Terms() int
	String() string
}

// Term is one polynomial term: a coefficient times a product of ordinate
// powers. len(Powers) equals the polynomial's arity; Powers[i] is the
// exponent of the i-th ordinate.
type Term struct {
	Coefficient float64
	Powers      []int
}

// Polynomial is a multivariate polynomial over k independent ordinates.
// The univariate fits, the bilinear surface and the first-order multivariate
// model are all special cases of this one representation.
type Polynomial struct {
	arity int
	terms []Term
}

// NewPolynomial assembles a polynomial from explicit terms. Every term must
// carry exactly arity powers, all non-negative.
//
// Returns coords.ErrInvalidArgument on arity < 1, no terms, or a malformed term.
func NewPolynomial(arity int, terms []Term) (*Polynomial, error) {
	if arity < 1 {
		return nil, fmt.Errorf("NewPolynomial: arity %d, want >= 1: %w", arity, coords.ErrInvalidArgument)
	}
	if len(terms) == 0 {
		return nil, fmt.Errorf("NewPolynomial: no terms: %w", coords.ErrInvalidArgument)
	}
	own := make([]Term, len(terms))
	for i, t := range terms {
		if len(t.Powers) != arity {
			return nil, fmt.Errorf("NewPolynomial: term %d has %d powers, want %d: %w", i, len(t.Powers), arity, coords.ErrInvalidArgument)
		}
		for _, p := range t.Powers {
			if p < 0 {
				return nil, fmt.Errorf("NewPolynomial: term %d has negative power: %w", i, coords.ErrInvalidArgument)
			}
		}
		own[i] = Term{Coefficient: t.Coefficient, Powers: append([]int(nil), t.Powers...)}
	}

	return &Polynomial{arity: arity, terms: own}, nil
}

// Poly1D builds a univariate polynomial c₀ + c₁x + … from its coefficients
// in ascending-power order.
func Poly1D(coeffs ...float64) *Polynomial {
	terms := make([]Term, len(coeffs))
	for i, c := range coeffs {
		terms[i] = Term{Coefficient: c, Powers: []int{i}}
	}

	return &Polynomial{arity: 1, terms: terms}
}

// Arity reports the number of independent ordinates the polynomial consumes.
func (p *Polynomial) Arity() int { return p.arity }

// Terms reports the term count (one per solved coefficient).
func (p *Polynomial) Terms() int { return len(p.terms) }

// Coefficients returns the term coefficients in term order.
func (p *Polynomial) Coefficients() []float64 {
	out := make([]float64, len(p.terms))
	for i, t := range p.terms {
		out[i] = t.Coefficient
	}

	return out
}

// TermAt returns a copy of the i-th term.
//
// Returns coords.ErrInvalidArgument when i is out of range.
func (p *Polynomial) TermAt(i int) (Term, error) {
	if i < 0 || i >= len(p.terms) {
		return Term{}, fmt.Errorf("TermAt: index %d outside %d terms: %w", i, len(p.terms), coords.ErrInvalidArgument)
	}
	t := p.terms[i]

	return Term{Coefficient: t.Coefficient, Powers: append([]int(nil), t.Powers...)}, nil
}

// Eval evaluates the polynomial at the given ordinates.
func (p *Polynomial) Eval(xs ...float64) (float64, error) {
	if len(xs) != p.arity {
		return 0, fmt.Errorf("Polynomial.Eval: got %d arguments, want %d: %w", len(xs), p.arity, coords.ErrInvalidArgument)
	}

	sum := 0.0
	for _, t := range p.terms {
		v := t.Coefficient
		for i, pw := range t.Powers {
			for k := 0; k < pw; k++ {
				v *= xs[i]
			}
		}
		sum += v
	}

	return sum, nil
}

// String renders the polynomial as "y = c0 + c1*x + …" with 4-digit
// coefficients, naming ordinates x for arity 1, x,y for arity 2 and
// x1..xk otherwise.
func (p *Polynomial) String() string {
	var b strings.Builder
	b.WriteString("y = ")
	for i, t := range p.terms {
		if i > 0 {
			b.WriteString(" + ")
		}
		b.WriteString(fmt.Sprintf("%.4g", t.Coefficient))
		b.WriteString(p.monomial(t.Powers))
	}

	return b.String()
}

// monomial renders the variable part of one term ("" for the constant term).
func (p *Polynomial) monomial(powers []int) string {
	var b strings.Builder
	for i, pw := range powers {
		if pw == 0 {
			continue
		}
		b.WriteString("*")
		b.WriteString(p.varName(i))
		if pw > 1 {
			b.WriteString(fmt.Sprintf("^%d", pw))
		}
	}

	return b.String()
}

func (p *Polynomial) varName(i int) string {
	switch {
	case p.arity == 1:
		return "x"
	case p.arity == 2 && i == 0:
		return "x"
	case p.arity == 2:
		return "y"
	default:
		return fmt.Sprintf("x%d", i+1)
	}
}

// Exponential is the composed fitted function A·e^(B·x), the result of the
// exponential strategy. It is not a polynomial: A scales a pure exponential.
type Exponential struct {
	a, b float64
}

// NewExponential builds A·e^(B·x) directly from its parameters.
func NewExponential(a, b float64) *Exponential {
	return &Exponential{a: a, b: b}
}

// A returns the multiplicative constant.
func (e *Exponential) A() float64 { return e.a }

// B returns the exponent rate.
func (e *Exponential) B() float64 { return e.b }

// Arity is always 1: the model is univariate.
func (e *Exponential) Arity() int { return 1 }

// Terms reports the two solved parameters (A and B).
func (e *Exponential) Terms() int { return 2 }

// Eval evaluates A·e^(B·x).
func (e *Exponential) Eval(xs ...float64) (float64, error) {
	if len(xs) != 1 {
		return 0, fmt.Errorf("Exponential.Eval: got %d arguments, want 1: %w", len(xs), coords.ErrInvalidArgument)
	}

	return e.a * math.Exp(e.b*xs[0]), nil
}

// String renders the formula "y = A*e^(B*x)".
func (e *Exponential) String() string {
	return fmt.Sprintf("y = %.4g*e^(%.4g*x)", e.a, e.b)
}
