package calc

import (
	"strconv"

	"go.uber.org/zap"
)

// DefaultMaxDepth is the default limit on the combined nesting of function
// calls and brackets.
const DefaultMaxDepth = 64

// Option is an option for creating an Evaluator.
type Option interface {
	option(config) config
}

type (
	depthopt int
	logopt   struct {
		log *zap.Logger
	}
	funcopt struct {
		name string
		fn   Func
	}
	funcsopt map[string]Func
)

// config holds the settings of an Evaluator while options are applied.
type config struct {
	// funcs is the set of callable function names. A nil Func disables the
	// name.
	funcs map[string]Func
	// maxDepth bounds function call and bracket nesting.
	maxDepth int
	log      *zap.Logger
}

// MaxDepth sets the maximum nesting of function calls and brackets. Deeper
// input fails with a *RecursionError. Panics if n is not positive.
func MaxDepth(n int) Option {
	if n <= 0 {
		panic("calc: max depth must be positive, not " + strconv.Itoa(n))
	}
	return depthopt(n)
}

func (o depthopt) option(c config) config {
	c.maxDepth = int(o)
	return c
}

// Logger sets a logger to receive debug logs of each evaluation stage. The
// default discards logs.
func Logger(log *zap.Logger) Option {
	return logopt{log}
}

func (o logopt) option(c config) config {
	c.log = o.log
	return c
}

// SetFunc sets a function by name. To disable a function, pass nil for fn.
// Panics if name is not made of letters or is reserved for the constant pi.
func SetFunc(name string, fn Func) Option {
	checkname(name)
	return &funcopt{name, fn}
}

func (o *funcopt) option(c config) config {
	c.funcs = copyfuncs(c.funcs, 1)
	c.funcs[o.name] = o.fn
	return c
}

// Funcs sets a group of functions. To disable any function, set it to nil.
func Funcs(fns map[string]Func) Option {
	for k := range fns {
		checkname(k)
	}
	return funcsopt(fns)
}

func (o funcsopt) option(c config) config {
	c.funcs = copyfuncs(c.funcs, len(o))
	for k, v := range o {
		c.funcs[k] = v
	}
	return c
}

// copyfuncs copies a function set so that options never modify the defaults
// or a map the caller owns.
func copyfuncs(m map[string]Func, extra int) map[string]Func {
	r := make(map[string]Func, len(m)+extra)
	for k, v := range m {
		r[k] = v
	}
	return r
}

func checkname(name string) {
	if name == "" || name == "pi" {
		panic("calc: invalid function name " + strconv.Quote(name))
	}
	for _, r := range name {
		if !isLetter(r) {
			panic("calc: invalid function name " + strconv.Quote(name))
		}
	}
}
