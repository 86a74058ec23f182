package expr

import (
	"fmt"
	"math/big"
	"strconv"
	"unicode"
)

// Parse turns algebraic text into a normalized *Poly.
//
// Accepted syntax:
//
//	expr   := term (("+" | "-") term)*
//	term   := factor (("*" | "/") factor | factor)*   // juxtaposition multiplies
//	factor := "-" factor | primary ("^" integer)?
//	primary:= integer | variable | variable "[" integer "]" | "(" expr ")"
//
// Juxtaposition ("2 t", "4t^2") is multiplication; this matches the shape
// of the counting tool's output after multiplication tokens are stripped.
// Division is only defined by a numeric divisor ("1/2*t" is fine,
// "t/x" is not) so results stay inside the polynomial ring.
// Indexed variables like "x[0]" are treated as opaque variable names.
func Parse(s string) (*Poly, error) {
	toks, err := lex(s)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks, src: s}
	poly, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if !p.atEOF() {
		return nil, p.errorf("unexpected %q", p.peek().text)
	}
	return poly, nil
}

// MustParse is Parse for trusted inputs (tests, constants); it panics on
// error.
func MustParse(s string) *Poly {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

// ---------- lexer ----------

type tokKind int

const (
	tokEOF tokKind = iota
	tokNum
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokCaret
	tokLParen
	tokRParen
	tokLBracket
	tokRBracket
)

type token struct {
	kind tokKind
	text string
	pos  int // byte offset in the source
}

func lex(s string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(s) {
		c := rune(s[i])
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c >= '0' && c <= '9':
			j := i
			for j < len(s) && s[j] >= '0' && s[j] <= '9' {
				j++
			}
			toks = append(toks, token{tokNum, s[i:j], i})
			i = j
		case unicode.IsLetter(c) || c == '_':
			j := i
			for j < len(s) && (isIdentByte(s[j])) {
				j++
			}
			toks = append(toks, token{tokIdent, s[i:j], i})
			i = j
		default:
			kind, ok := opKind(c)
			if !ok {
				return nil, fmt.Errorf("offset %d: unexpected character %q: %w", i, c, ErrSyntax)
			}
			toks = append(toks, token{kind, string(c), i})
			i++
		}
	}
	toks = append(toks, token{tokEOF, "", len(s)})
	return toks, nil
}

func isIdentByte(b byte) bool {
	return b == '_' || (b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func opKind(c rune) (tokKind, bool) {
	switch c {
	case '+':
		return tokPlus, true
	case '-':
		return tokMinus, true
	case '*':
		return tokStar, true
	case '/':
		return tokSlash, true
	case '^':
		return tokCaret, true
	case '(':
		return tokLParen, true
	case ')':
		return tokRParen, true
	case '[':
		return tokLBracket, true
	case ']':
		return tokRBracket, true
	}
	return tokEOF, false
}

// ---------- parser ----------

type parser struct {
	toks []token
	src  string
	i    int
}

func (p *parser) peek() token { return p.toks[p.i] }
func (p *parser) next() token { t := p.toks[p.i]; p.i++; return t }
func (p *parser) atEOF() bool { return p.peek().kind == tokEOF }

func (p *parser) accept(k tokKind) bool {
	if p.peek().kind == k {
		p.i++
		return true
	}
	return false
}

func (p *parser) errorf(format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("offset %d: %s: %w", p.peek().pos, msg, ErrSyntax)
}

func (p *parser) parseExpr() (*Poly, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.accept(tokPlus):
			right, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			left = Add(left, right)
		case p.accept(tokMinus):
			right, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			left = Sub(left, right)
		default:
			return left, nil
		}
	}
}

// startsFactor reports whether the upcoming token can begin a factor;
// used to detect implicit multiplication by juxtaposition.
func (p *parser) startsFactor() bool {
	switch p.peek().kind {
	case tokNum, tokIdent, tokLParen:
		return true
	}
	return false
}

func (p *parser) parseTerm() (*Poly, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.accept(tokStar):
			right, err := p.parseFactor()
			if err != nil {
				return nil, err
			}
			left = Mul(left, right)
		case p.accept(tokSlash):
			right, err := p.parseFactor()
			if err != nil {
				return nil, err
			}
			div, ok := constValue(right)
			if !ok {
				return nil, fmt.Errorf("offset %d: %w", p.peek().pos, ErrNonNumericDivisor)
			}
			if div.IsZero() {
				return nil, fmt.Errorf("offset %d: %w", p.peek().pos, ErrDivisionByZero)
			}
			left = left.Scale(One().Div(div))
		case p.startsFactor():
			right, err := p.parseFactor()
			if err != nil {
				return nil, err
			}
			left = Mul(left, right)
		default:
			return left, nil
		}
	}
}

func (p *parser) parseFactor() (*Poly, error) {
	if p.accept(tokMinus) {
		f, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return f.Neg(), nil
	}
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if p.accept(tokCaret) {
		neg := p.accept(tokMinus)
		t := p.peek()
		if t.kind != tokNum || neg {
			return nil, fmt.Errorf("offset %d: %w", t.pos, ErrBadExponent)
		}
		p.next()
		n, convErr := strconv.Atoi(t.text)
		if convErr != nil {
			return nil, fmt.Errorf("offset %d: %w", t.pos, ErrBadExponent)
		}
		return PowInt(base, n), nil
	}
	return base, nil
}

func (p *parser) parsePrimary() (*Poly, error) {
	t := p.peek()
	switch t.kind {
	case tokNum:
		p.next()
		r, ok := new(big.Rat).SetString(t.text)
		if !ok {
			return nil, fmt.Errorf("offset %d: bad number %q: %w", t.pos, t.text, ErrSyntax)
		}
		return NewConst(FromBig(r)), nil

	case tokIdent:
		p.next()
		name := t.text
		// Indexed variable: "x[0]" is one opaque name.
		if p.peek().kind == tokLBracket {
			p.next()
			idx := p.peek()
			if idx.kind != tokNum {
				return nil, p.errorf("expected index after %q[", name)
			}
			p.next()
			if !p.accept(tokRBracket) {
				return nil, p.errorf("expected ] closing %q index", name)
			}
			name = name + "[" + idx.text + "]"
		}
		return NewVar(name), nil

	case tokLParen:
		p.next()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if !p.accept(tokRParen) {
			return nil, p.errorf("expected )")
		}
		return inner, nil
	}
	return nil, p.errorf("unexpected %q", t.text)
}

// constValue extracts the value of a constant polynomial.
func constValue(p *Poly) (Rational, bool) {
	if p.IsZero() {
		return Zero(), true
	}
	if len(p.terms) == 1 && len(p.terms[0].Exps) == 0 {
		return p.terms[0].Coeff, true
	}
	return Zero(), false
}
