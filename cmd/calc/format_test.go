package main

import (
	"bufio"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/zephyrtronium/calc"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		name string
		v    float64
		verb string
		want string
	}{
		{"int", 14, "", "14"},
		{"negint", -3, "", "-3"},
		{"zero", 0, "", "0"},
		{"frac", 0.5, "", "0.500000"},
		{"third", 1.0 / 3, "", "0.333333"},
		{"round", 2.0 / 3, "", "0.666667"},
		{"noise", 0.1 + 0.2, "", "0.300000"},
		{"negzero", math.Copysign(0, -1), "", "0"},
		{"negzeroverb", math.Copysign(0, -1), "%g", "0"},
		{"bigint", 1e21, "", "1e+21"},
		{"huge", -1e300, "", "-1e+300"},
		{"belowbig", 1e20, "", "100000000000000000000"},
		{"verb", 0.5, "%.2f", "0.50"},
		{"verbg", 1e300, "%g", "1e+300"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, format(c.v, c.verb))
		})
	}
}

func TestBalance(t *testing.T) {
	cases := map[string]string{
		"":            "",
		"1+2":         "1+2",
		"(1+2":        "(1+2)",
		"sin(cos(0":   "sin(cos(0))",
		"(1))":        "(1))",
		"sqrt(4)*(2": "sqrt(4)*(2)",
	}
	for in, want := range cases {
		assert.Equal(t, want, balance(in), "balance(%q)", in)
	}
}

func TestRunner(t *testing.T) {
	var b strings.Builder
	out := bufio.NewWriter(&b)
	r := runner{ev: calc.New(), out: out, log: zap.NewNop()}
	r.lines(strings.NewReader("3+4*2\n\nsin(90°\n1/0\n"), false)
	out.Flush()
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	if assert.Len(t, lines, 3) {
		assert.Equal(t, "11", lines[0])
		assert.Equal(t, "1", lines[1])
		assert.True(t, strings.HasPrefix(lines[2], "Error: "), lines[2])
	}
	assert.True(t, r.failed)
}

func TestRunnerEchoCallsOnce(t *testing.T) {
	n := 0
	count := calc.Monadic(func(x float64) float64 {
		n++
		return x
	})
	var b strings.Builder
	out := bufio.NewWriter(&b)
	r := runner{ev: calc.New(calc.SetFunc("count", count)), out: out, log: zap.NewNop(), echo: true}
	r.run("1+count(2)")
	r.run("count(1)/0")
	out.Flush()
	assert.Equal(t, 2, n)
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	if assert.Len(t, lines, 2) {
		assert.Equal(t, "1 2 + : 3", lines[0])
		assert.Equal(t, "1 0 / : Error: 9: division by zero: 1/0", lines[1])
	}
	assert.True(t, r.failed)
}

func TestRunnerStrict(t *testing.T) {
	var b strings.Builder
	out := bufio.NewWriter(&b)
	r := runner{ev: calc.New(), out: out, log: zap.NewNop(), strict: true, echo: true}
	r.run("(2+3")
	r.run("2(3+4)")
	out.Flush()
	assert.Equal(t, "Error: 1: open bracket with no close bracket \"(\"\n2 3 4 + * : 14\n", b.String())
	assert.True(t, r.failed)
}
