package calc

import (
	"math"

	"go.uber.org/zap"
)

// segment is a piece of a resolved expression: either text still to be
// tokenized or the value of a function call.
type segment struct {
	text  source
	val   float64
	col   int
	value bool
}

// Call = funcname '(' Expr ['°'] ')' | funcname literal ['°']

// resolve replaces each function call in s with its value. Arguments are
// evaluated through the whole pipeline at depth+1, so calls nested in an
// argument are resolved before the call containing them.
func (e *Evaluator) resolve(s source, depth int) ([]segment, error) {
	var segs []segment
	start := 0
	for i := 0; i < len(s.text); {
		if !isLetter(s.text[i]) {
			i++
			continue
		}
		j := i + 1
		for j < len(s.text) && isLetter(s.text[j]) {
			j++
		}
		name := string(s.text[i:j])
		fn := e.funcs[name]
		if fn == nil {
			// Leave it for the lexer to reject.
			i = j
			continue
		}
		if depth+1 > e.maxDepth {
			return nil, &RecursionError{Limit: e.maxDepth, Col: s.cols[i]}
		}
		arg, deg, end, err := callarg(s, name, i, j)
		if err != nil {
			return nil, err
		}
		if deg != 0 && !fn.Angular() {
			return nil, &SyntaxError{Col: deg, Text: string(DegreeMarker), Reason: "degrees given to non-angular function " + name}
		}
		x, err := e.eval(arg, depth+1)
		if err != nil {
			return nil, err
		}
		if deg != 0 {
			x = radians(x)
		}
		v, err := call(fn, name, x, s.cols[i])
		if err != nil {
			return nil, err
		}
		e.log.Debug("resolved call",
			zap.String("func", name),
			zap.Float64("arg", x),
			zap.Float64("result", v),
			zap.Int("depth", depth+1),
		)
		if start < i {
			segs = append(segs, segment{text: s.slice(start, i)})
		}
		segs = append(segs, segment{val: v, col: s.cols[i], value: true})
		i, start = end, end
	}
	if start < len(s.text) {
		segs = append(segs, segment{text: s.slice(start, len(s.text))})
	}
	return segs, nil
}

// callarg finds the argument of a call to the function named in s[i:j]. deg
// is the position of the degree marker, or 0 if there is none. end is the
// index following the call.
func callarg(s source, name string, i, j int) (arg source, deg, end int, err error) {
	switch {
	case j < len(s.text) && s.text[j] == '(':
		k := closing(s, j)
		if k < 0 {
			return source{}, 0, 0, &SyntaxError{Col: s.cols[j], Text: "(", Reason: "open bracket with no close bracket"}
		}
		end = k + 1
		if k > j+1 && s.text[k-1] == DegreeMarker {
			deg = s.cols[k-1]
			k--
		}
		return s.slice(j+1, k), deg, end, nil
	case j < len(s.text) && isLiteral(s.text[j]):
		// Bare argument: sqrt 16, sin 90°.
		k := j
		for k < len(s.text) && isLiteral(s.text[k]) {
			k++
		}
		end = k
		if k < len(s.text) && s.text[k] == DegreeMarker {
			deg = s.cols[k]
			end++
		}
		return s.slice(j, k), deg, end, nil
	default:
		return source{}, 0, 0, &SyntaxError{Col: s.cols[i], Text: name, Reason: "missing argument to function"}
	}
}

// closing finds the index of the bracket that closes the open bracket at i,
// or -1 if it is never closed.
func closing(s source, i int) int {
	n := 0
	for k := i; k < len(s.text); k++ {
		switch s.text[k] {
		case '(':
			n++
		case ')':
			n--
			if n == 0 {
				return k
			}
		}
	}
	return -1
}

// call applies a function and checks its result.
func call(fn Func, name string, x float64, col int) (float64, error) {
	v, err := fn.Call(x)
	if err != nil {
		if d, ok := err.(*DomainError); ok {
			// The function may return the same error to every caller.
			dd := *d
			if dd.Func == "" {
				dd.Func = name
			}
			if dd.Col == 0 {
				dd.Col = col
			}
			return 0, &dd
		}
		if KindOf(err) != KindNone {
			return 0, err
		}
		return 0, &DomainError{Func: name, X: x, Col: col, Err: err}
	}
	switch {
	case math.IsNaN(v):
		return 0, &DomainError{Func: name, X: x, Col: col}
	case math.IsInf(v, 0):
		return 0, &OverflowError{Op: name, Col: col}
	}
	return v, nil
}
