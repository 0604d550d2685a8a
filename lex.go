package calc

import "strconv"

// Token is a lexical token of an expression.
type Token struct {
	// Kind selects which of the other fields is meaningful.
	Kind TokenKind
	// Num is the value of a TokenNum.
	Num float64
	// Op is the operator of a TokenOp.
	Op Operator
	// Col is the position of the token in the input.
	Col int
}

func (t Token) String() string {
	switch t.Kind {
	case TokenNum:
		return strconv.FormatFloat(t.Num, 'g', -1, 64)
	case TokenOp:
		return t.Op.String()
	case TokenOpen:
		return "("
	case TokenClose:
		return ")"
	default:
		panic("calc: invalid token kind " + t.Kind.String())
	}
}

// TokenKind is the type of a token.
type TokenKind int8

const (
	// TokenNum is a signed number.
	TokenNum TokenKind = iota
	// TokenOp is a binary operator.
	TokenOp
	// TokenOpen is an open bracket.
	TokenOpen
	// TokenClose is a close bracket.
	TokenClose
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=TokenKind -trimprefix=Token
//go:generate go mod tidy

// Operator is a binary operator.
type Operator int8

const (
	OpAdd Operator = iota
	OpSub
	OpMul
	OpDiv
	OpPow
)

// Operators contains the runes which are considered to be operators, in the
// order of the Operator constants.
const Operators = "+-*/^"

func (op Operator) String() string {
	if op < 0 || int(op) >= len(Operators) {
		return "Operator(" + strconv.Itoa(int(op)) + ")"
	}
	return Operators[op : op+1]
}

// prec gets the precedence of the operator. Higher is more binding. All
// operators are left-associative, including ^.
func (op Operator) prec() int {
	switch op {
	case OpAdd, OpSub:
		return 1
	case OpMul, OpDiv:
		return 2
	case OpPow:
		return 3
	default:
		panic("calc: invalid operator " + op.String())
	}
}

// binop gets the operator for a rune. ok is false if r is no operator.
func binop(r rune) (op Operator, ok bool) {
	switch r {
	case '+':
		return OpAdd, true
	case '-':
		return OpSub, true
	case '*':
		return OpMul, true
	case '/':
		return OpDiv, true
	case '^':
		return OpPow, true
	default:
		return 0, false
	}
}

// lexer holds the state of tokenizing one expression.
type lexer struct {
	toks []Token
	// lit is the numeric literal being scanned, and litcol is its position.
	lit    []rune
	litcol int
	// neg is the accumulated sign for the next operand. signcol is the
	// position of the first sign, or 0 if there is no pending sign.
	neg     bool
	signcol int
	// open is the bracket nesting depth. depth is the nesting of the
	// expression being scanned, and max is the limit on depth+open.
	open  int
	depth int
	max   int
	// negs holds the values of open at each negated group still open.
	negs []int
}

// tokenize scans resolved segments into tokens. Signs that follow the start
// of input, an operator, or an open bracket fold into the next operand.
func tokenize(segs []segment, depth, max int) ([]Token, error) {
	l := lexer{depth: depth, max: max}
	for _, seg := range segs {
		if seg.value {
			if err := l.flush(); err != nil {
				return nil, err
			}
			l.operand(seg.col)
			l.number(seg.val, seg.col)
			continue
		}
		if err := l.scan(seg.text); err != nil {
			return nil, err
		}
	}
	if err := l.flush(); err != nil {
		return nil, err
	}
	if l.signcol != 0 {
		return nil, &SyntaxError{Col: l.signcol, Reason: "sign without operand"}
	}
	return l.toks, nil
}

func (l *lexer) scan(s source) error {
	for i := 0; i < len(s.text); i++ {
		r, col := s.text[i], s.cols[i]
		if isLiteral(r) {
			if len(l.lit) == 0 {
				l.operand(col)
				l.litcol = col
			}
			l.lit = append(l.lit, r)
			continue
		}
		if err := l.flush(); err != nil {
			return err
		}
		switch r {
		case '+', '-':
			if l.unary() {
				if l.signcol == 0 {
					l.signcol = col
				}
				if r == '-' {
					l.neg = !l.neg
				}
				continue
			}
			op, _ := binop(r)
			l.emit(Token{Kind: TokenOp, Op: op, Col: col})
		case '*', '/', '^':
			if l.signcol != 0 {
				return &SyntaxError{Col: l.signcol, Reason: "sign without operand"}
			}
			op, _ := binop(r)
			l.emit(Token{Kind: TokenOp, Op: op, Col: col})
		case '(':
			l.operand(col)
			neg, signcol := l.neg, l.signcol
			l.neg, l.signcol = false, 0
			l.open++
			if l.depth+l.open > l.max {
				return &RecursionError{Limit: l.max, Col: col}
			}
			if neg {
				// -(x) -> (-1*(x))
				l.emit(Token{Kind: TokenOpen, Col: signcol})
				l.emit(Token{Kind: TokenNum, Num: -1, Col: signcol})
				l.emit(Token{Kind: TokenOp, Op: OpMul, Col: col})
				l.negs = append(l.negs, l.open)
			}
			l.emit(Token{Kind: TokenOpen, Col: col})
		case ')':
			if l.signcol != 0 {
				return &SyntaxError{Col: l.signcol, Reason: "sign without operand"}
			}
			l.emit(Token{Kind: TokenClose, Col: col})
			if l.open > 0 {
				if n := len(l.negs); n > 0 && l.negs[n-1] == l.open {
					l.emit(Token{Kind: TokenClose, Col: col})
					l.negs = l.negs[:n-1]
				}
				l.open--
			}
		default:
			if isLetter(r) {
				j := i + 1
				for j < len(s.text) && isLetter(s.text[j]) {
					j++
				}
				return &SyntaxError{Col: col, Text: string(s.text[i:j]), Reason: "unknown name"}
			}
			return &SyntaxError{Col: col, Text: string(r), Reason: "unexpected character"}
		}
	}
	return nil
}

// unary reports whether a sign at the current position is unary.
func (l *lexer) unary() bool {
	if len(l.toks) == 0 {
		return true
	}
	switch l.toks[len(l.toks)-1].Kind {
	case TokenOp, TokenOpen:
		return true
	default:
		return false
	}
}

// operand inserts an implicit multiplication if an operand starting at col
// directly follows another operand.
func (l *lexer) operand(col int) {
	if len(l.toks) == 0 {
		return
	}
	switch l.toks[len(l.toks)-1].Kind {
	case TokenNum, TokenClose:
		l.emit(Token{Kind: TokenOp, Op: OpMul, Col: col})
	}
}

// flush emits the pending literal, if any.
func (l *lexer) flush() error {
	if len(l.lit) == 0 {
		return nil
	}
	text := string(l.lit)
	l.lit = l.lit[:0]
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		// Either malformed, like 1.2.3, or too large to be finite.
		return &SyntaxError{Col: l.litcol, Text: text, Reason: "invalid number"}
	}
	l.number(v, l.litcol)
	return nil
}

// number emits a number with the pending sign.
func (l *lexer) number(v float64, col int) {
	if l.neg {
		v = -v
	}
	l.neg, l.signcol = false, 0
	l.emit(Token{Kind: TokenNum, Num: v, Col: col})
}

func (l *lexer) emit(tok Token) {
	l.toks = append(l.toks, tok)
}
