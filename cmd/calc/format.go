package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats/scalar"
)

// format renders a result. With an empty verb, integers print without a
// fraction, values of magnitude 1e21 or more print with an exponent, and
// other values are rounded to six decimal places.
func format(v float64, verb string) string {
	if v == 0 {
		// Drop the sign of -0.
		v = 0
	}
	switch {
	case verb != "":
		return fmt.Sprintf(verb, v)
	case math.Abs(v) >= 1e21:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case v == math.Trunc(v):
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(scalar.Round(v, 6), 'f', 6, 64)
}

// balance closes every bracket left open at the end of expr.
func balance(expr string) string {
	n := strings.Count(expr, "(") - strings.Count(expr, ")")
	if n <= 0 {
		return expr
	}
	return expr + strings.Repeat(")", n)
}
