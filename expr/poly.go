package expr

import (
	"sort"
	"strconv"
	"strings"
)

// Term is one monomial of a Poly: a rational coefficient times a product
// of variable powers. Exps maps variable name → positive exponent; the
// constant monomial has an empty Exps map.
type Term struct {
	Coeff Rational
	Exps  map[string]int
}

// degree returns the total degree of the monomial.
func (t Term) degree() int {
	d := 0
	for _, e := range t.Exps {
		d += e
	}
	return d
}

// key returns a canonical identity for the monomial (variables sorted
// lexicographically). Used only for merging; rendering order differs.
func (t Term) key() string {
	names := make([]string, 0, len(t.Exps))
	for v := range t.Exps {
		names = append(names, v)
	}
	sort.Strings(names)
	var b strings.Builder
	for i, v := range names {
		if i > 0 {
			b.WriteByte('*')
		}
		b.WriteString(v)
		b.WriteByte('^')
		b.WriteString(strconv.Itoa(t.Exps[v]))
	}
	return b.String()
}

// Poly is a normalized multivariate polynomial with rational
// coefficients: no zero terms, no duplicate monomials, and a recorded
// first-seen variable order. The zero value is the zero polynomial.
//
// Poly values are immutable; all operations return a fresh Poly.
type Poly struct {
	terms []Term
	vars  []string // first-seen order across construction
}

// NewConst returns the constant polynomial c.
func NewConst(c Rational) *Poly {
	if c.IsZero() {
		return &Poly{}
	}
	return &Poly{terms: []Term{{Coeff: c, Exps: map[string]int{}}}}
}

// NewVar returns the polynomial consisting of the single variable name.
func NewVar(name string) *Poly {
	return &Poly{
		terms: []Term{{Coeff: One(), Exps: map[string]int{name: 1}}},
		vars:  []string{name},
	}
}

// normalize merges duplicate monomials, drops zero terms and fixes a
// deterministic term order (total degree descending, then monomial key).
func normalize(terms []Term, vars []string) *Poly {
	merged := make(map[string]Term, len(terms))
	order := make([]string, 0, len(terms))
	for _, t := range terms {
		k := t.key()
		if prev, ok := merged[k]; ok {
			prev.Coeff = prev.Coeff.Add(t.Coeff)
			merged[k] = prev
			continue
		}
		exps := make(map[string]int, len(t.Exps))
		for v, e := range t.Exps {
			if e != 0 {
				exps[v] = e
			}
		}
		merged[k] = Term{Coeff: t.Coeff, Exps: exps}
		order = append(order, k)
	}

	out := make([]Term, 0, len(merged))
	for _, k := range order {
		if t := merged[k]; !t.Coeff.IsZero() {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		di, dj := out[i].degree(), out[j].degree()
		if di != dj {
			return di > dj
		}
		return out[i].key() < out[j].key()
	})

	// Keep only variables that actually survive normalization, in their
	// original first-seen order.
	used := make(map[string]bool)
	for _, t := range out {
		for v := range t.Exps {
			used[v] = true
		}
	}
	keptVars := make([]string, 0, len(vars))
	for _, v := range vars {
		if used[v] {
			keptVars = append(keptVars, v)
		}
	}

	return &Poly{terms: out, vars: keptVars}
}

// mergeVars appends b's variables to a's order, skipping duplicates.
func mergeVars(a, b []string) []string {
	out := make([]string, len(a))
	copy(out, a)
	seen := make(map[string]bool, len(a))
	for _, v := range a {
		seen[v] = true
	}
	for _, v := range b {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

// Add returns a + b.
func Add(a, b *Poly) *Poly {
	terms := make([]Term, 0, len(a.terms)+len(b.terms))
	terms = append(terms, a.terms...)
	terms = append(terms, b.terms...)
	return normalize(terms, mergeVars(a.vars, b.vars))
}

// Sub returns a - b. This is the workhorse of inequality rewriting:
// "L <= R" becomes Sub(L, R) constrained to be <= 0.
func Sub(a, b *Poly) *Poly { return Add(a, b.Neg()) }

// Neg returns -p.
func (p *Poly) Neg() *Poly {
	terms := make([]Term, len(p.terms))
	for i, t := range p.terms {
		terms[i] = Term{Coeff: t.Coeff.Neg(), Exps: t.Exps}
	}
	return normalize(terms, p.vars)
}

// Mul returns a * b.
func Mul(a, b *Poly) *Poly {
	var terms []Term
	for _, ta := range a.terms {
		for _, tb := range b.terms {
			exps := make(map[string]int, len(ta.Exps)+len(tb.Exps))
			for v, e := range ta.Exps {
				exps[v] = e
			}
			for v, e := range tb.Exps {
				exps[v] += e
			}
			terms = append(terms, Term{Coeff: ta.Coeff.Mul(tb.Coeff), Exps: exps})
		}
	}
	return normalize(terms, mergeVars(a.vars, b.vars))
}

// Scale returns c * p.
func (p *Poly) Scale(c Rational) *Poly { return Mul(NewConst(c), p) }

// PowInt returns p raised to the non-negative integer power n.
func PowInt(p *Poly, n int) *Poly {
	out := NewConst(One())
	for i := 0; i < n; i++ {
		out = Mul(out, p)
	}
	return out
}

// IsZero reports whether p is the zero polynomial.
func (p *Poly) IsZero() bool { return len(p.terms) == 0 }

// Degree returns the total degree of p; the zero polynomial has degree 0.
func (p *Poly) Degree() int {
	max := 0
	for _, t := range p.terms {
		if d := t.degree(); d > max {
			max = d
		}
	}
	return max
}

// DegreeIn returns the highest power of variable v appearing in p.
func (p *Poly) DegreeIn(v string) int {
	max := 0
	for _, t := range p.terms {
		if e := t.Exps[v]; e > max {
			max = e
		}
	}
	return max
}

// Vars returns the variables of p in first-seen order. The slice is a
// copy; mutating it does not affect p.
func (p *Poly) Vars() []string {
	out := make([]string, len(p.vars))
	copy(out, p.vars)
	return out
}

// Terms returns a copy of the normalized term list.
func (p *Poly) Terms() []Term {
	out := make([]Term, len(p.terms))
	copy(out, p.terms)
	return out
}

// Coeff returns the coefficient of the pure degree-1 monomial in v
// (that is, of the term "c*v"). Cross terms like x*y do not contribute;
// linearity must be checked separately via IsLinear.
func (p *Poly) Coeff(v string) Rational { return p.CoeffOf(v, 1) }

// CoeffOf returns the coefficient of the pure power monomial v^k.
// CoeffOf(v, 0) is the constant term.
func (p *Poly) CoeffOf(v string, k int) Rational {
	for _, t := range p.terms {
		if k == 0 {
			if len(t.Exps) == 0 {
				return t.Coeff
			}
			continue
		}
		if len(t.Exps) == 1 && t.Exps[v] == k {
			return t.Coeff
		}
	}
	return Zero()
}

// Constant returns the constant term of p.
func (p *Poly) Constant() Rational { return p.CoeffOf("", 0) }

// IsLinear reports whether every monomial of p has total degree <= 1.
func (p *Poly) IsLinear() bool {
	for _, t := range p.terms {
		if t.degree() > 1 {
			return false
		}
	}
	return true
}

// Equal reports structural equality of two normalized polynomials
// (variable order is not part of the identity).
func (p *Poly) Equal(o *Poly) bool {
	if len(p.terms) != len(o.terms) {
		return false
	}
	for i := range p.terms {
		if p.terms[i].key() != o.terms[i].key() {
			return false
		}
		if p.terms[i].Coeff.Cmp(o.terms[i].Coeff) != 0 {
			return false
		}
	}
	return true
}

// String renders p canonically: terms in normalized order joined with
// " + " / " - ", coefficients and variables joined with "*", powers with
// "^". The output parses back to an equal Poly.
func (p *Poly) String() string {
	if len(p.terms) == 0 {
		return "0"
	}
	var b strings.Builder
	for i, t := range p.terms {
		c := t.Coeff
		if i == 0 {
			if c.Sign() < 0 {
				b.WriteByte('-')
				c = c.Neg()
			}
		} else {
			if c.Sign() < 0 {
				b.WriteString(" - ")
				c = c.Neg()
			} else {
				b.WriteString(" + ")
			}
		}
		b.WriteString(renderTerm(c, t))
	}
	return b.String()
}

// renderTerm renders |coeff| * monomial, eliding unit coefficients.
func renderTerm(c Rational, t Term) string {
	if len(t.Exps) == 0 {
		return c.String()
	}

	names := make([]string, 0, len(t.Exps))
	for v := range t.Exps {
		names = append(names, v)
	}
	sort.Strings(names)

	var b strings.Builder
	if !c.IsOne() {
		b.WriteString(c.String())
		b.WriteByte('*')
	}
	for i, v := range names {
		if i > 0 {
			b.WriteByte('*')
		}
		b.WriteString(v)
		if e := t.Exps[v]; e > 1 {
			b.WriteByte('^')
			b.WriteString(strconv.Itoa(e))
		}
	}
	return b.String()
}
