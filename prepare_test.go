package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrepare(t *testing.T) {
	cases := []struct {
		name string
		in   string
		out  string
	}{
		{"empty", "", ""},
		{"space", " 1 +\t2\n", "1+2"},
		{"pi", "π", PiText},
		{"word", "pi", PiText},
		{"numpi", "2π", "2*" + PiText},
		{"piNum", "π2", PiText + "*2"},
		{"pipi", "ππ", PiText + "*" + PiText},
		{"numword", "2pi", "2*" + PiText},
		{"pibracket", "pi(1)", PiText + "*(1)"},
		{"bracketpi", "(1)π", "(1)*" + PiText},
		{"degpi", "sin(90°)π", "sin(90°)*" + PiText},
		{"pifunc", "πsin(0)", PiText + "*sin(0)"},
		{"numbracket", "2(3)", "2*(3)"},
		{"fracbracket", "1.5 (2)", "1.5*(2)"},
		{"call", "sqrt(2)", "sqrt(2)"},
		{"namedigits", "sqrt2(3)", "sqrt2(3)"},
		{"otherword", "spin", "spin"},
		{"bracketbracket", "(1)(2)", "(1)(2)"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := prepare(c.in)
			assert.Equal(t, c.out, s.String())
			assert.Len(t, s.cols, len(s.text))
			assert.Equal(t, c.out, prepare(s.String()).String(), "not idempotent")
		})
	}
}

func TestPrepareCols(t *testing.T) {
	s := prepare("2 (1)")
	assert.Equal(t, "2*(1)", s.String())
	assert.Equal(t, []int{1, 3, 3, 4, 5}, s.cols)

	s = prepare("1+ π")
	for i, c := range s.cols[2:] {
		assert.Equal(t, 4, c, "rune %d of π", i)
	}
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		in, out string
		cols    []int
	}{
		{"", "", []int{}},
		{"1-2", "1-2", []int{1, 2, 3}},
		{"1--2", "1+2", []int{1, 2, 4}},
		{"1+-2", "1-2", []int{1, 2, 4}},
		{"1-+2", "1-2", []int{1, 2, 4}},
		{"1---2", "1-2", []int{1, 2, 5}},
		{"--5", "+5", []int{1, 3}},
		{"3-+2", "3-2", []int{1, 2, 4}},
		{"+-+-1", "+1", []int{1, 5}},
		{"2*--3", "2*+3", []int{1, 2, 3, 5}},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			s := normalize(newSource(c.in))
			assert.Equal(t, c.out, s.String())
			assert.Equal(t, c.cols, s.cols)
		})
	}
}

func TestSourceCol(t *testing.T) {
	s := newSource("abc")
	assert.Equal(t, 1, s.col(0))
	assert.Equal(t, 3, s.col(2))
	assert.Equal(t, 4, s.col(3))
	assert.Equal(t, 1, source{}.col(0))
	assert.Equal(t, 'c', s.last())
	assert.Equal(t, rune(0), source{}.last())
}
