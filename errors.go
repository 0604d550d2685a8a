package calc

import (
	"errors"
	"strconv"
)

// Kind classifies the errors returned by evaluation.
type Kind int8

const (
	// KindNone is the kind of nil and of errors that did not come from
	// evaluation.
	KindNone Kind = iota
	// KindSyntax is a malformed expression: an unrecognized character, an
	// unparsable literal, or unmatched brackets.
	KindSyntax
	// KindDomain is a function applied outside its domain.
	KindDomain
	// KindDivisionByZero is a division with a zero divisor.
	KindDivisionByZero
	// KindStructural is a program that does not reduce to exactly one value.
	KindStructural
	// KindStackUnderflow is an operator without enough operands.
	KindStackUnderflow
	// KindOverflow is a non-finite intermediate or final result.
	KindOverflow
	// KindRecursion is nesting deeper than the evaluator allows.
	KindRecursion
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=Kind -trimprefix=Kind
//go:generate go mod tidy

// EvalError is an error produced by evaluating an expression. Every error
// returned from Eval implements EvalError.
type EvalError interface {
	error
	// Kind returns the class of the error.
	Kind() Kind
}

// InputError is an EvalError with position information.
type InputError interface {
	EvalError
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the text that caused the error.
	Pos() int
}

// KindOf returns the kind of the first EvalError in err's chain, or KindNone
// if there is none.
func KindOf(err error) Kind {
	var e EvalError
	if errors.As(err, &e) {
		return e.Kind()
	}
	return KindNone
}

// SyntaxError indicates malformed input. It implements InputError.
type SyntaxError struct {
	// Col is the position of the offending text.
	Col int
	// Text is the offending text. It may be empty at the end of input.
	Text string
	// Reason describes what is wrong with Text.
	Reason string
}

func (err *SyntaxError) Error() string {
	if err.Text == "" {
		return errpos(err.Col, err.Reason)
	}
	return errpos(err.Col, err.Reason+" "+strconv.Quote(err.Text))
}

func (err *SyntaxError) Kind() Kind { return KindSyntax }
func (err *SyntaxError) Pos() int   { return err.Col }

// DomainError is an error returned when a function is called on an argument
// outside its domain. It implements InputError.
type DomainError struct {
	// Func is the name of the function.
	Func string
	// X is the out-of-domain argument.
	X float64
	// Col is the position of the function name.
	Col int
	// Err is the error a custom function returned, if any.
	Err error
}

func (err *DomainError) Error() string {
	r := strconv.FormatFloat(err.X, 'g', -1, 64) + " outside domain"
	if err.Func != "" {
		r += " of " + err.Func
	}
	if err.Err != nil {
		r += ": " + err.Err.Error()
	}
	if err.Col > 0 {
		return errpos(err.Col, r)
	}
	return r
}

func (err *DomainError) Kind() Kind    { return KindDomain }
func (err *DomainError) Pos() int      { return err.Col }
func (err *DomainError) Unwrap() error { return err.Err }

// DivisionByZeroError indicates a division whose divisor is exactly zero. It
// implements InputError.
type DivisionByZeroError struct {
	// Dividend is the left operand of the division.
	Dividend float64
	// Col is the position of the division operator.
	Col int
}

func (err *DivisionByZeroError) Error() string {
	return errpos(err.Col, "division by zero: "+strconv.FormatFloat(err.Dividend, 'g', -1, 64)+"/0")
}

func (err *DivisionByZeroError) Kind() Kind { return KindDivisionByZero }
func (err *DivisionByZeroError) Pos() int   { return err.Col }

// StructuralError indicates a postfix program that leaves other than exactly
// one value on the stack, e.g. an empty expression.
type StructuralError struct {
	// Values is the number of values left on the stack.
	Values int
}

func (err *StructuralError) Error() string {
	if err.Values == 0 {
		return "no expression"
	}
	return "malformed expression: " + strconv.Itoa(err.Values) + " values without operators"
}

func (err *StructuralError) Kind() Kind { return KindStructural }

// StackUnderflowError indicates an operator with fewer than two operands. It
// implements InputError.
type StackUnderflowError struct {
	// Op is the operator.
	Op Operator
	// Have is the number of operands that were available.
	Have int
	// Col is the position of the operator.
	Col int
}

func (err *StackUnderflowError) Error() string {
	return errpos(err.Col, "operator "+strconv.Quote(err.Op.String())+" needs 2 operands, have "+strconv.Itoa(err.Have))
}

func (err *StackUnderflowError) Kind() Kind { return KindStackUnderflow }
func (err *StackUnderflowError) Pos() int   { return err.Col }

// OverflowError indicates a result that is infinite or not a number. It
// implements InputError.
type OverflowError struct {
	// Op is the operator or function name that produced the result.
	Op string
	// Col is the position of the operator or function.
	Col int
}

func (err *OverflowError) Error() string {
	return errpos(err.Col, "non-finite result from "+strconv.Quote(err.Op))
}

func (err *OverflowError) Kind() Kind { return KindOverflow }
func (err *OverflowError) Pos() int   { return err.Col }

// RecursionError indicates function calls or brackets nested deeper than the
// evaluator's maximum depth. It implements InputError.
type RecursionError struct {
	// Limit is the maximum depth.
	Limit int
	// Col is the position of the bracket or call that exceeded the limit.
	Col int
}

func (err *RecursionError) Error() string {
	return errpos(err.Col, "nesting exceeds maximum depth "+strconv.Itoa(err.Limit))
}

func (err *RecursionError) Kind() Kind { return KindRecursion }
func (err *RecursionError) Pos() int   { return err.Col }

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

var (
	_ InputError = (*SyntaxError)(nil)
	_ InputError = (*DomainError)(nil)
	_ InputError = (*DivisionByZeroError)(nil)
	_ EvalError  = (*StructuralError)(nil)
	_ InputError = (*StackUnderflowError)(nil)
	_ InputError = (*OverflowError)(nil)
	_ InputError = (*RecursionError)(nil)
)
