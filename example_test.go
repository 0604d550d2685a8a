package calc_test

import (
	"fmt"

	"github.com/zephyrtronium/calc"
)

func ExampleEval() {
	fmt.Println(calc.Eval("3+4*2"))
	fmt.Println(calc.Eval("2(3+4)"))
	fmt.Println(calc.Eval("2^3^2"))
	fmt.Println(calc.Eval("sin(90°)"))
	_, err := calc.Eval("1/0")
	fmt.Println(err)
	_, err = calc.Eval("sqrt(-4)")
	fmt.Println(err)

	// Output:
	// 11 <nil>
	// 14 <nil>
	// 64 <nil>
	// 1 <nil>
	// 2: division by zero: 1/0
	// 1: -4 outside domain of sqrt
}

func ExampleEvaluator_Compile() {
	e := calc.New()
	p, err := e.Compile("2(3+sqrt(16))^2")
	fmt.Println(p, err)
	fmt.Println(p.Eval())

	// Output:
	// 2 3 4 + 2 ^ * <nil>
	// 98 <nil>
}

func ExampleSetFunc() {
	cube := calc.Monadic(func(x float64) float64 { return x * x * x })
	e := calc.New(calc.SetFunc("cube", cube))
	fmt.Println(e.Eval("cube(2)+1"))
	fmt.Println(e.Eval("cube 3"))

	// Output:
	// 9 <nil>
	// 27 <nil>
}

func ExampleKindOf() {
	for _, expr := range []string{"(2+3", "log(0)", "", "10^400"} {
		_, err := calc.Eval(expr)
		fmt.Println(calc.KindOf(err))
	}

	// Output:
	// Syntax
	// Domain
	// Structural
	// Overflow
}
