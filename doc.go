// Package calc implements a floating-point calculator for arithmetic
// expressions.
//
// Expressions contain numbers, the binary operators + - * / and ^,
// parentheses, the constant π (also written pi), and calls to functions of
// one argument: sin, cos, and tan, which take radians or degrees marked with
// °, as in "sin(90°)"; sqrt; and log, the base-10 logarithm. A number or a
// bracketed term directly before a bracket multiplies it, so "2(3+4)" is 14.
//
// Evaluation runs in stages. The input is prepared by removing whitespace,
// expanding π, and making implicit multiplications explicit. Function calls
// are then resolved innermost first, each argument being evaluated as an
// expression of its own. Adjacent signs are folded, the remaining text is
// scanned into tokens, the tokens are converted to postfix order, and the
// postfix program is evaluated on a stack.
//
// All operators associate to the left, including exponentiation: "2^3^2" is
// (2^3)^2 = 64. A minus sign at the start of an operand negates only that
// operand, so "-2^2" is 4.
//
// Errors are typed and classified by Kind. Results are always finite; an
// infinite or NaN intermediate value is an *OverflowError.
package calc
