package calc_test

import (
	"math"
	"math/big"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/Knetic/govaluate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zephyrtronium/bigfloat"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/zephyrtronium/calc"
)

// genexpr writes a random fully bracketed arithmetic expression, so that the
// result does not depend on precedence or associativity.
func genexpr(b *strings.Builder, rng *rand.Rand, depth int) {
	if depth == 0 || rng.Intn(4) == 0 {
		if rng.Intn(5) == 0 {
			b.WriteString("(-")
			b.WriteString(strconv.Itoa(rng.Intn(99) + 1))
			b.WriteString(")")
			return
		}
		b.WriteString(strconv.FormatFloat(float64(rng.Intn(400)+1)/4, 'f', -1, 64))
		return
	}
	b.WriteString("(")
	genexpr(b, rng, depth-1)
	b.WriteString(" ")
	b.WriteByte("+-*/"[rng.Intn(4)])
	b.WriteString(" ")
	genexpr(b, rng, depth-1)
	b.WriteString(")")
}

func TestArithmeticOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	e := calc.New()
	for i := 0; i < 2000; i++ {
		var b strings.Builder
		genexpr(&b, rng, 5)
		src := b.String()
		ge, err := govaluate.NewEvaluableExpression(src)
		require.NoError(t, err, src)
		v, err := ge.Evaluate(nil)
		require.NoError(t, err, src)
		want := v.(float64)

		r, err := e.Eval(src)
		if err != nil {
			// Ordinary float division yields infinities or NaN where the
			// evaluator refuses.
			assert.Equal(t, calc.KindDivisionByZero, calc.KindOf(err), "%s: %v", src, err)
			continue
		}
		assert.True(t, scalar.EqualWithinAbsOrRel(r, want, 1e-9, 1e-9), "%s: want %v, got %v", src, want, r)
	}
}

func TestArithmeticOracleFuncs(t *testing.T) {
	funcs := map[string]govaluate.ExpressionFunction{
		"sqrt": func(args ...interface{}) (interface{}, error) {
			return math.Sqrt(args[0].(float64)), nil
		},
	}
	cases := []string{
		"sqrt(16) + 1",
		"2 * sqrt(2 * 8)",
		"sqrt(sqrt(81)) - 3",
		"(1 + sqrt(5)) / 2",
		"sqrt(2) * sqrt(2)",
		"sqrt(3 * 3 + 4 * 4)",
	}
	for _, src := range cases {
		ge, err := govaluate.NewEvaluableExpressionWithFunctions(src, funcs)
		require.NoError(t, err, src)
		v, err := ge.Evaluate(nil)
		require.NoError(t, err, src)
		r, err := calc.Eval(src)
		require.NoError(t, err, src)
		assert.True(t, scalar.EqualWithinAbsOrRel(r, v.(float64), 1e-9, 1e-9), "%s: want %v, got %v", src, v, r)
	}
}

func bigf(x float64) *big.Float {
	return new(big.Float).SetPrec(256).SetFloat64(x)
}

func TestPowOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 500; i++ {
		x := float64(rng.Intn(190)+10) / 20
		y := float64(rng.Intn(161)-80) / 8
		src := strconv.FormatFloat(x, 'f', -1, 64) + "^" + strconv.FormatFloat(y, 'f', -1, 64)
		r, err := calc.Eval(src)
		require.NoError(t, err, src)
		want, _ := bigfloat.Pow(bigf(0), bigf(x), bigf(y)).Float64()
		assert.True(t, scalar.EqualWithinRel(r, want, 1e-12), "%s: want %v, got %v", src, want, r)
	}
}

func TestLogOracle(t *testing.T) {
	ln10 := bigfloat.Log(bigf(0), bigf(10))
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 500; i++ {
		x := float64(rng.Intn(100000)+1) / 16
		src := "log(" + strconv.FormatFloat(x, 'f', -1, 64) + ")"
		r, err := calc.Eval(src)
		require.NoError(t, err, src)
		l := bigfloat.Log(bigf(0), bigf(x))
		want, _ := l.Quo(l, ln10).Float64()
		assert.True(t, scalar.EqualWithinAbsOrRel(r, want, 1e-14, 1e-12), "%s: want %v, got %v", src, want, r)
	}
}
