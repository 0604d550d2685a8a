package calc

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// trigEpsilon is the magnitude below which trigonometric results are exactly
// zero, so that e.g. sin(180°) is 0 rather than 1.2e-16.
const trigEpsilon = 1e-10

// Func is a function from reals to reals.
type Func interface {
	// Call evaluates the function. It returns a *DomainError when x is
	// outside the function's domain; the evaluator fills in the function
	// name and position. Any other error is reported as a domain error
	// wrapping it.
	Call(x float64) (float64, error)

	// Angular reports whether the argument is an angle in radians, which
	// allows the argument to be annotated with DegreeMarker.
	Angular() bool
}

var globalfuncs = map[string]Func{
	"sin": Trig(math.Sin),
	"cos": Trig(math.Cos),
	"tan": Trig(math.Tan),
	"sqrt": Checked(math.Sqrt, func(x float64) bool {
		return x >= 0
	}),
	"log": Checked(math.Log10, func(x float64) bool {
		return x > 0
	}),
}

// DisableDefaultFuncs returns a functions map suitable for disabling all
// default functions when passed to Funcs.
func DisableDefaultFuncs() map[string]Func {
	m := make(map[string]Func, len(globalfuncs))
	for k := range globalfuncs {
		m[k] = nil
	}
	return m
}

type monadic struct {
	f  func(float64) float64
	ok func(float64) bool
}

func (m monadic) Call(x float64) (float64, error) {
	if m.ok != nil && !m.ok(x) {
		return 0, &DomainError{X: x}
	}
	return m.f(x), nil
}

func (monadic) Angular() bool {
	return false
}

// Monadic wraps a function of one variable into a Func. If f returns NaN, the
// call is reported as a domain error.
func Monadic(f func(float64) float64) Func {
	return monadic{f: f}
}

// Checked wraps a function of one variable into a Func that reports a domain
// error for any argument for which ok returns false.
func Checked(f func(float64) float64, ok func(float64) bool) Func {
	return monadic{f: f, ok: ok}
}

type trig struct {
	f func(float64) float64
}

func (t trig) Call(x float64) (float64, error) {
	r := t.f(x)
	if scalar.EqualWithinAbs(r, 0, trigEpsilon) {
		return 0, nil
	}
	return r, nil
}

func (trig) Angular() bool {
	return true
}

// Trig wraps a function of an angle in radians into a Func. Arguments may be
// given in degrees with DegreeMarker. Results with magnitude below 1e-10 are
// exactly zero.
func Trig(f func(float64) float64) Func {
	return trig{f}
}

// radians converts an angle in degrees to radians.
func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
