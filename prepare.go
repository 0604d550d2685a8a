package calc

import "unicode"

// PiText is the literal that replaces π and pi in expressions.
const PiText = "3.141592653589793"

// DegreeMarker annotates the argument of a trigonometric function as degrees.
const DegreeMarker = '°'

// source is expression text with the column in the original input of each
// rune. Runes inserted during preparation take the column of the rune they
// were inserted for.
type source struct {
	text []rune
	cols []int
}

func newSource(s string) source {
	text := []rune(s)
	cols := make([]int, len(text))
	for i := range cols {
		cols[i] = i + 1
	}
	return source{text: text, cols: cols}
}

func (s source) String() string {
	return string(s.text)
}

func (s *source) put(r rune, col int) {
	s.text = append(s.text, r)
	s.cols = append(s.cols, col)
}

func (s source) slice(i, j int) source {
	return source{text: s.text[i:j:j], cols: s.cols[i:j:j]}
}

// col gets the column of the rune at i. One past the end is the column after
// the last rune.
func (s source) col(i int) int {
	switch {
	case i < len(s.cols):
		return s.cols[i]
	case len(s.cols) == 0:
		return 1
	default:
		return s.cols[len(s.cols)-1] + 1
	}
}

// last gets the last rune, or 0 if s is empty.
func (s source) last() rune {
	if len(s.text) == 0 {
		return 0
	}
	return s.text[len(s.text)-1]
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isLiteral(r rune) bool {
	return isDigit(r) || r == '.'
}

func isLetter(r rune) bool {
	return r != 'π' && unicode.IsLetter(r)
}

// prepare removes whitespace, expands the constant π, and makes implicit
// multiplication by a bracket explicit. It is idempotent.
func prepare(expr string) source {
	in := []rune(expr)
	out := source{
		text: make([]rune, 0, len(in)),
		cols: make([]int, 0, len(in)),
	}
	// afterpi is set when the last thing written was the constant, so the
	// next operand needs an explicit multiplication.
	afterpi := false
	for i := 0; i < len(in); {
		r, col := in[i], i+1
		switch {
		case unicode.IsSpace(r):
			i++
			continue
		case r == 'π':
			putpi(&out, col)
			afterpi = true
			i++
			continue
		case isLetter(r):
			j := i + 1
			for j < len(in) && isLetter(in[j]) {
				j++
			}
			if string(in[i:j]) == "pi" {
				putpi(&out, col)
				afterpi = true
				i = j
				continue
			}
			if afterpi {
				out.put('*', col)
				afterpi = false
			}
			for k := i; k < j; k++ {
				out.put(in[k], k+1)
			}
			i = j
			continue
		}
		if afterpi {
			if isLiteral(r) || r == '(' {
				out.put('*', col)
			}
			afterpi = false
		} else if r == '(' && endsLiteral(out) {
			// 2(x) -> 2*(x)
			out.put('*', col)
		}
		out.put(r, col)
		i++
	}
	return out
}

// putpi writes the constant, multiplying by a preceding operand.
func putpi(out *source, col int) {
	switch r := out.last(); {
	case isLiteral(r), r == ')', r == DegreeMarker:
		out.put('*', col)
	}
	for _, r := range PiText {
		out.put(r, col)
	}
}

// endsLiteral reports whether s ends with a numeric literal that is not the
// tail of an identifier.
func endsLiteral(s source) bool {
	i := len(s.text)
	for i > 0 && isLiteral(s.text[i-1]) {
		i--
	}
	if i == len(s.text) {
		return false
	}
	return i == 0 || !isLetter(s.text[i-1])
}

// normalize folds adjacent signs until none remain: -- is +, and +- and -+
// are -.
func normalize(s source) source {
	for {
		out, changed := foldSigns(s)
		if !changed {
			return out
		}
		s = out
	}
}

func foldSigns(s source) (source, bool) {
	out := source{
		text: make([]rune, 0, len(s.text)),
		cols: make([]int, 0, len(s.cols)),
	}
	changed := false
	for i := 0; i < len(s.text); i++ {
		r := s.text[i]
		if i+1 < len(s.text) && (r == '+' || r == '-') {
			switch next := s.text[i+1]; {
			case r == '-' && next == '-':
				out.put('+', s.cols[i])
				i++
				changed = true
				continue
			case r == '+' && next == '-', r == '-' && next == '+':
				out.put('-', s.cols[i])
				i++
				changed = true
				continue
			}
		}
		out.put(r, s.cols[i])
	}
	return out, changed
}
