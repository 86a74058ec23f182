package expr

import "math/big"

// Rational is an immutable exact rational number. The zero value is 0.
//
// It is a thin value wrapper over *big.Rat; arithmetic methods never
// mutate the receiver and always allocate the result.
type Rational struct{ rat *big.Rat }

// NewInt returns the rational n/1.
func NewInt(n int64) Rational { return Rational{rat: big.NewRat(n, 1)} }

// NewFrac returns the rational p/q. Panics if q == 0 (programmer error,
// mirroring big.NewRat).
func NewFrac(p, q int64) Rational { return Rational{rat: big.NewRat(p, q)} }

// FromBig wraps an existing *big.Rat, copying it so the Rational stays
// immutable even if the argument is later mutated.
func FromBig(r *big.Rat) Rational { return Rational{rat: new(big.Rat).Set(r)} }

// Zero returns the rational 0.
func Zero() Rational { return NewInt(0) }

// One returns the rational 1.
func One() Rational { return NewInt(1) }

// val returns the underlying *big.Rat, normalizing the zero value.
func (r Rational) val() *big.Rat {
	if r.rat == nil {
		return new(big.Rat)
	}
	return r.rat
}

// Add returns r + o.
func (r Rational) Add(o Rational) Rational {
	return Rational{rat: new(big.Rat).Add(r.val(), o.val())}
}

// Sub returns r - o.
func (r Rational) Sub(o Rational) Rational {
	return Rational{rat: new(big.Rat).Sub(r.val(), o.val())}
}

// Mul returns r * o.
func (r Rational) Mul(o Rational) Rational {
	return Rational{rat: new(big.Rat).Mul(r.val(), o.val())}
}

// Div returns r / o. The caller must ensure o is non-zero; the parser
// guards this with ErrDivisionByZero before calling.
func (r Rational) Div(o Rational) Rational {
	return Rational{rat: new(big.Rat).Quo(r.val(), o.val())}
}

// Neg returns -r.
func (r Rational) Neg() Rational {
	return Rational{rat: new(big.Rat).Neg(r.val())}
}

// IsZero reports whether r == 0.
func (r Rational) IsZero() bool { return r.val().Sign() == 0 }

// IsOne reports whether r == 1.
func (r Rational) IsOne() bool { return r.val().Cmp(big.NewRat(1, 1)) == 0 }

// IsInt reports whether r is an integer.
func (r Rational) IsInt() bool { return r.val().IsInt() }

// Sign returns -1, 0 or +1 according to the sign of r.
func (r Rational) Sign() int { return r.val().Sign() }

// Cmp compares r and o, returning -1, 0 or +1.
func (r Rational) Cmp(o Rational) int { return r.val().Cmp(o.val()) }

// Rat returns a copy of the underlying *big.Rat.
func (r Rational) Rat() *big.Rat { return new(big.Rat).Set(r.val()) }

// String renders r in minimal form: integers without a denominator
// ("3", "-7"), proper fractions as "p/q" ("1/2", "-3/4").
func (r Rational) String() string { return r.val().RatString() }
