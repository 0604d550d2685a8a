package calc

import (
	"math"
	"strings"
)

// Postfix is an expression in postfix notation. Every function call in the
// source expression has already been replaced by its value, so a Postfix
// contains only numbers and operators.
type Postfix []Token

// toPostfix converts tokens in infix order to postfix using the shunting-yard
// algorithm. An operator pops every operator of at least its own precedence
// before it is pushed, so all operators associate to the left.
func toPostfix(toks []Token) (Postfix, error) {
	out := make(Postfix, 0, len(toks))
	ops := make([]Token, 0, len(toks)/2)
	for _, tok := range toks {
		switch tok.Kind {
		case TokenNum:
			out = append(out, tok)
		case TokenOpen:
			ops = append(ops, tok)
		case TokenClose:
			for {
				if len(ops) == 0 {
					return nil, &SyntaxError{Col: tok.Col, Text: ")", Reason: "close bracket with no open bracket"}
				}
				top := ops[len(ops)-1]
				ops = ops[:len(ops)-1]
				if top.Kind == TokenOpen {
					break
				}
				out = append(out, top)
			}
		case TokenOp:
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if top.Kind != TokenOp || top.Op.prec() < tok.Op.prec() {
					break
				}
				out = append(out, top)
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, tok)
		default:
			panic("calc: unknown token: " + tok.Kind.String())
		}
	}
	for i := len(ops) - 1; i >= 0; i-- {
		if ops[i].Kind == TokenOpen {
			return nil, &SyntaxError{Col: ops[i].Col, Text: "(", Reason: "open bracket with no close bracket"}
		}
		out = append(out, ops[i])
	}
	return out, nil
}

// Eval evaluates the program on a value stack. The result is always finite
// when the error is nil.
func (p Postfix) Eval() (float64, error) {
	stack := make([]float64, 0, len(p)/2+1)
	for _, tok := range p {
		switch tok.Kind {
		case TokenNum:
			stack = append(stack, tok.Num)
		case TokenOp:
			if len(stack) < 2 {
				return 0, &StackUnderflowError{Op: tok.Op, Have: len(stack), Col: tok.Col}
			}
			b := stack[len(stack)-1]
			a := stack[len(stack)-2]
			r, err := apply(tok, a, b)
			if err != nil {
				return 0, err
			}
			stack = stack[:len(stack)-1]
			stack[len(stack)-1] = r
		case TokenOpen, TokenClose:
			panic("calc: bracket in postfix program")
		default:
			panic("calc: unknown token: " + tok.Kind.String())
		}
	}
	if len(stack) != 1 {
		return 0, &StructuralError{Values: len(stack)}
	}
	return stack[0], nil
}

// apply evaluates a binary operator token.
func apply(tok Token, a, b float64) (float64, error) {
	var r float64
	switch tok.Op {
	case OpAdd:
		r = a + b
	case OpSub:
		r = a - b
	case OpMul:
		r = a * b
	case OpDiv:
		if b == 0 {
			return 0, &DivisionByZeroError{Dividend: a, Col: tok.Col}
		}
		r = a / b
	case OpPow:
		r = math.Pow(a, b)
	default:
		panic("calc: invalid operator " + tok.Op.String())
	}
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, &OverflowError{Op: tok.Op.String(), Col: tok.Col}
	}
	return r, nil
}

// String formats the program with tokens separated by spaces.
func (p Postfix) String() string {
	var b strings.Builder
	for i, tok := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok.String())
	}
	return b.String()
}
