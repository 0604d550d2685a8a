package calc

import "go.uber.org/zap"

// Evaluator evaluates expressions. An Evaluator is immutable, so it is safe to
// use concurrently.
type Evaluator struct {
	funcs    map[string]Func
	maxDepth int
	log      *zap.Logger
}

// New creates an evaluator. Options are applied in order. Without options,
// the evaluator knows sin, cos, tan, sqrt, and log and allows nesting up to
// DefaultMaxDepth.
func New(opts ...Option) *Evaluator {
	c := config{
		funcs:    globalfuncs,
		maxDepth: DefaultMaxDepth,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		c = opt.option(c)
	}
	if c.log == nil {
		c.log = zap.NewNop()
	}
	return &Evaluator{
		funcs:    c.funcs,
		maxDepth: c.maxDepth,
		log:      c.log,
	}
}

var defaultEvaluator = New()

// Eval evaluates an expression and returns its result. The result is finite
// whenever the error is nil. Every error is an EvalError.
func (e *Evaluator) Eval(expr string) (float64, error) {
	r, err := e.eval(prepare(expr), 0)
	if err != nil {
		e.log.Debug("evaluation failed",
			zap.String("expr", expr),
			zap.Stringer("kind", KindOf(err)),
			zap.Error(err),
		)
		return 0, err
	}
	e.log.Debug("result", zap.String("expr", expr), zap.Float64("result", r))
	return r, nil
}

// Compile converts an expression to a postfix program. Function calls are
// evaluated during compilation, so errors from them are returned here.
func (e *Evaluator) Compile(expr string) (Postfix, error) {
	return e.compile(prepare(expr), 0)
}

// compile runs every stage but evaluation on prepared source. depth is the
// number of function calls enclosing s.
func (e *Evaluator) compile(s source, depth int) (Postfix, error) {
	if depth == 0 {
		e.log.Debug("prepared", zap.Stringer("text", s))
	}
	segs, err := e.resolve(s, depth)
	if err != nil {
		return nil, err
	}
	for i := range segs {
		if !segs[i].value {
			segs[i].text = normalize(segs[i].text)
		}
	}
	toks, err := tokenize(segs, depth, e.maxDepth)
	if err != nil {
		return nil, err
	}
	p, err := toPostfix(toks)
	if err != nil {
		return nil, err
	}
	e.log.Debug("postfix", zap.Stringer("program", p), zap.Int("depth", depth))
	return p, nil
}

// eval evaluates prepared source. Preparation is idempotent, so function
// arguments sliced from prepared source need no further preparation.
func (e *Evaluator) eval(s source, depth int) (float64, error) {
	p, err := e.compile(s, depth)
	if err != nil {
		return 0, err
	}
	return p.Eval()
}

// Eval is a shortcut to evaluate an expression. Without options, it uses a
// shared evaluator with the default settings.
func Eval(expr string, opts ...Option) (float64, error) {
	if len(opts) == 0 {
		return defaultEvaluator.Eval(expr)
	}
	return New(opts...).Eval(expr)
}
