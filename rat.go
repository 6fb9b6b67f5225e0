package radix

import (
	"fmt"
	"strconv"
)

// Rat type is an exact fraction of two integers written in the same base.
// The zero value is the fraction 0/1 in base [DefaultBase].
//
// Fractions are always reduced: the numerator and the denominator have no
// common divisor other than 1, the denominator is positive, and the sign
// is carried by the numerator.
type Rat struct {
	neg  bool // indicates whether the fraction is negative
	base byte // the radix, 0 means DefaultBase
	num  nat  // the absolute value of the numerator
	den  nat  // the denominator, nil means 1
}

// newRat returns a reduced fraction.
func newRat(neg bool, base int, num, den nat) (Rat, error) {
	if den.isZero() {
		return Rat{}, errDivisionByZero
	}
	r := Rat{neg: neg, base: byte(base), num: num.norm(), den: den.norm()}
	return r.reduce(), nil
}

// reduce divides the numerator and the denominator by their greatest
// common divisor, and turns 0 into 0/1.
func (r Rat) reduce() Rat {
	b := r.Base()
	num, den := r.numer(), r.denom()
	if num.isZero() {
		return Rat{base: r.base, num: nat{0}, den: natOne}
	}
	g := num.gcd(den, b)
	if g.cmp(natOne) != 0 {
		var err error
		if num, _, err = num.quoRem(g, b); err == nil {
			den, _, err = den.quoRem(g, b)
		}
		if err != nil {
			panic(fmt.Sprintf("reduce(%v, %v) failed: %v", num, den, err))
		}
	}
	r.num, r.den = num, den
	return r
}

// NewRat returns the reduced fraction num / den.
// The sign of den is moved to the numerator.
//
// NewRat returns an error wrapping [ErrDomain] if:
//   - num and den are written in different bases;
//   - num or den is not an integer;
//   - den is 0.
func NewRat(num, den Number) (Rat, error) {
	if err := checkIntegers(num, den); err != nil {
		return Rat{}, err
	}
	return newRat(num.IsNeg() != den.IsNeg(), num.Base(), num.mant().clone(), den.mant().clone())
}

// MustNewRat is like [NewRat] but panics if the fraction cannot be constructed.
func MustNewRat(num, den Number) Rat {
	r, err := NewRat(num, den)
	if err != nil {
		panic(fmt.Sprintf("MustNewRat(%v, %v) failed: %v", num, den, err))
	}
	return r
}

// Rat returns the fraction equal to d.
//
// A terminating number with n fractional digits in base b is the fraction
// of its digits read as an integer and b^n.
// A number with a repeating block is converted using the identity
//
//	I.Y(Z) = (IYZ - IY) / (b^|Y| * (b^|Z| - 1))
//
// where IYZ and IY are the digits with and without the repeating block read
// as integers, for example 1.(3) = (13 - 1) / 9 = 4/3.
func (d Number) Rat() (Rat, error) {
	if d.IsRepeating() {
		return ratFromRepeating(d)
	}
	return ratFromTerminating(d)
}

func ratFromTerminating(d Number) (Rat, error) {
	if d.IsRepeating() {
		return Rat{}, fmt.Errorf("%v: %w", d, errRepeatingOperand)
	}
	return newRat(d.IsNeg(), d.Base(), d.mant().clone(), pow(d.scale))
}

func ratFromRepeating(d Number) (Rat, error) {
	if !d.IsRepeating() {
		return Rat{}, fmt.Errorf("%v has no repeating block: %w", d, ErrDomain)
	}
	b := d.Base()
	m := d.mant()
	nonrep := d.scale - d.period
	whole := m.norm()                    // IYZ
	prefix := m[:len(m)-d.period].norm() // IY
	nines := make(nat, d.period)         // b^|Z| - 1
	for i := range nines {
		nines[i] = byte(b - 1)
	}
	num := whole.sub(prefix, b)
	den := nines.lsh(nonrep)
	return newRat(d.IsNeg(), b, num, den)
}

// Base returns the radix of r.
func (r Rat) Base() int {
	if r.base == 0 {
		return DefaultBase
	}
	return int(r.base)
}

func (r Rat) numer() nat {
	if len(r.num) == 0 {
		return nat{0}
	}
	return r.num
}

func (r Rat) denom() nat {
	if len(r.den) == 0 {
		return natOne
	}
	return r.den
}

// Num returns the numerator of r, which carries the sign of r.
func (r Rat) Num() Number {
	d, _ := newInteger(r.neg, r.Base(), r.numer().clone())
	return d
}

// Denom returns the denominator of r, which is always positive.
func (r Rat) Denom() Number {
	d, _ := newInteger(false, r.Base(), r.denom().clone())
	return d
}

// Sign returns:
//
//	-1 if r < 0
//	 0 if r = 0
//	+1 if r > 0
func (r Rat) Sign() int {
	switch {
	case r.IsZero():
		return 0
	case r.neg:
		return -1
	default:
		return 1
	}
}

// IsZero returns true if r = 0.
func (r Rat) IsZero() bool {
	return r.numer().isZero()
}

// IsInt returns true if the denominator of r is 1.
func (r Rat) IsInt() bool {
	return r.denom().cmp(natOne) == 0
}

// Neg returns a fraction with the opposite sign.
func (r Rat) Neg() Rat {
	if r.IsZero() {
		return r
	}
	r.neg = !r.neg
	return r
}

func checkRatBases(r, s Rat) error {
	if r.Base() != s.Base() {
		return fmt.Errorf("base %v and base %v: %w", r.Base(), s.Base(), errBaseMismatch)
	}
	return nil
}

// Add returns the exact sum of r and s.
// The numerators are scaled by the opposite denominators and added as
// signed integers with [Number.Add], the denominator is the product of
// the denominators.
//
// Add returns an error wrapping [ErrDomain] if r and s are written in
// different bases.
func (r Rat) Add(s Rat) (Rat, error) {
	if err := checkRatBases(r, s); err != nil {
		return Rat{}, err
	}
	b := r.Base()
	if err := checkLen(len(r.denom()) + len(s.denom()) + max(len(r.numer()), len(s.numer()))); err != nil {
		return Rat{}, err
	}
	den := r.denom().mul(s.denom(), b)
	n1, err := newInteger(r.neg, b, r.numer().mul(s.denom(), b))
	if err != nil {
		return Rat{}, err
	}
	n2, err := newInteger(s.neg, b, s.numer().mul(r.denom(), b))
	if err != nil {
		return Rat{}, err
	}
	num, err := n1.Add(n2)
	if err != nil {
		return Rat{}, err
	}
	return newRat(num.IsNeg(), b, num.mant(), den)
}

// Sub returns the exact difference of r and s.
// See [Rat.Add] for the list of errors.
func (r Rat) Sub(s Rat) (Rat, error) {
	return r.Add(s.Neg())
}

// Mul returns the exact product of r and s.
//
// Mul returns an error wrapping [ErrDomain] if r and s are written in
// different bases.
func (r Rat) Mul(s Rat) (Rat, error) {
	if err := checkRatBases(r, s); err != nil {
		return Rat{}, err
	}
	b := r.Base()
	if err := checkLen(len(r.numer()) + len(s.numer()) + len(r.denom()) + len(s.denom())); err != nil {
		return Rat{}, err
	}
	num := r.numer().mul(s.numer(), b)
	den := r.denom().mul(s.denom(), b)
	return newRat(r.neg != s.neg, b, num, den)
}

// Quo returns the exact quotient of r and s.
//
// Quo returns an error wrapping [ErrDomain] if r and s are written in
// different bases or s is 0.
func (r Rat) Quo(s Rat) (Rat, error) {
	if err := checkRatBases(r, s); err != nil {
		return Rat{}, err
	}
	if s.IsZero() {
		return Rat{}, errDivisionByZero
	}
	b := r.Base()
	if err := checkLen(len(r.numer()) + len(s.numer()) + len(r.denom()) + len(s.denom())); err != nil {
		return Rat{}, err
	}
	num := r.numer().mul(s.denom(), b)
	den := r.denom().mul(s.numer(), b)
	return newRat(r.neg != s.neg, b, num, den)
}

// Cmp compares r and s numerically and returns:
//
//	-1 if r < s
//	 0 if r = s
//	+1 if r > s
//
// Cmp returns an error wrapping [ErrDomain] if r and s are written in
// different bases.
func (r Rat) Cmp(s Rat) (int, error) {
	if err := checkRatBases(r, s); err != nil {
		return 0, err
	}
	switch {
	case r.Sign() < s.Sign():
		return -1, nil
	case r.Sign() > s.Sign():
		return 1, nil
	case r.Sign() == 0:
		return 0, nil
	}
	b := r.Base()
	c := r.numer().mul(s.denom(), b).cmp(s.numer().mul(r.denom(), b))
	if r.neg {
		c = -c
	}
	return c, nil
}

// Number returns the number equal to r.
// The fractional digits are produced by long division, and the first
// remainder that occurs twice marks the start of the repeating block,
// so the result has the shortest possible repeating block, for example
// 1/6 is 0.1(6).
//
// Number returns an error wrapping [ErrAllocation] if the result has more
// than [MaxDigits] digits.
func (r Rat) Number() (Number, error) {
	b := r.Base()
	num, den := r.numer(), r.denom()
	q, rem, err := num.quoRem(den, b)
	if err != nil {
		return Number{}, err
	}
	digs := q
	seen := make(map[string]int)
	scale, period := 0, 0
	for !rem.isZero() {
		if pos, ok := seen[string(rem)]; ok {
			period = scale - pos
			break
		}
		seen[string(rem)] = scale
		if err := checkLen(len(digs) + 1); err != nil {
			return Number{}, err
		}
		var d nat
		d, rem, _ = rem.lsh(1).quoRem(den, b)
		// rem < den, so the quotient is a single digit
		digs = append(digs, d[len(d)-1])
		scale++
	}
	return newNumber(r.neg, b, digs, scale, period)
}

// String method implements the [fmt.Stringer] interface and returns
// the fraction in the form [ base '#' ] [ '-' ] numerator '/' denominator.
// The base prefix is omitted for fractions in base [DefaultBase].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r Rat) String() string {
	var buf []byte
	if b := r.Base(); b != DefaultBase {
		buf = strconv.AppendInt(buf, int64(b), 10)
		buf = append(buf, '#')
	}
	if r.neg {
		buf = append(buf, '-')
	}
	for _, v := range r.numer() {
		buf = append(buf, glyphs[v])
	}
	buf = append(buf, '/')
	for _, v := range r.denom() {
		buf = append(buf, glyphs[v])
	}
	return string(buf)
}
