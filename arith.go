package radix

import (
	"fmt"
)

// checkBases returns an error if d and e are written in different bases.
func checkBases(d, e Number) error {
	if d.Base() != e.Base() {
		return fmt.Errorf("base %v and base %v: %w", d.Base(), e.Base(), errBaseMismatch)
	}
	return nil
}

// checkTerminating returns an error if d or e has a repeating block.
func checkTerminating(d, e Number) error {
	if err := checkBases(d, e); err != nil {
		return err
	}
	switch {
	case d.IsRepeating():
		return fmt.Errorf("%v: %w", d, errRepeatingOperand)
	case e.IsRepeating():
		return fmt.Errorf("%v: %w", e, errRepeatingOperand)
	}
	return nil
}

// checkIntegers returns an error if d or e has a fractional part.
func checkIntegers(d, e Number) error {
	if err := checkBases(d, e); err != nil {
		return err
	}
	switch {
	case !d.IsInt():
		return fmt.Errorf("%v: %w", d, errNotInteger)
	case !e.IsInt():
		return fmt.Errorf("%v: %w", e, errNotInteger)
	}
	return nil
}

// cmpAbs compares |d| and |e| and returns:
//
//	-1 if |d| < |e|
//	 0 if |d| = |e|
//	+1 if |d| > |e|
//
// The integer parts are compared first, then the fractional parts digit
// by digit, with the shorter fractional part padded with zeros.
// Neither d nor e may have a repeating block.
func cmpAbs(d, e Number) int {
	if c := d.intPart().cmp(e.intPart()); c != 0 {
		return c
	}
	df, ef := d.fracPart(), e.fracPart()
	for i := 0; i < len(df) || i < len(ef); i++ {
		var x, y byte
		if i < len(df) {
			x = df[i]
		}
		if i < len(ef) {
			y = ef[i]
		}
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
	}
	return 0
}

// align returns the digits of d and e as integers scaled to the same
// number of fractional digits.
func align(d, e Number) (dm, em nat, scale int) {
	dm, em = d.mant(), e.mant()
	switch {
	case d.scale < e.scale:
		dm = dm.lsh(e.scale - d.scale)
		scale = e.scale
	default:
		em = em.lsh(d.scale - e.scale)
		scale = d.scale
	}
	return dm, em, scale
}

// addAbs calculates |d| + |e| and gives the result the sign neg.
// The scale of the result is the larger of the scales of d and e.
func addAbs(d, e Number, neg bool) (Number, error) {
	dm, em, scale := align(d, e)
	if err := checkLen(max(len(dm), len(em)) + 1); err != nil {
		return Number{}, err
	}
	return newNumber(neg, d.Base(), dm.add(em, d.Base()), scale, 0)
}

// subAbs calculates |d| - |e| and gives the result the sign neg.
// If |d| is less than |e|, the result is unpredictable.
func subAbs(d, e Number, neg bool) (Number, error) {
	dm, em, scale := align(d, e)
	return newNumber(neg, d.Base(), dm.sub(em, d.Base()), scale, 0)
}

// Add returns the exact sum of d and e.
//
// Add returns an error wrapping [ErrDomain] if:
//   - d and e are written in different bases;
//   - d or e has a repeating block, use [Rat.Add] to add such numbers.
func (d Number) Add(e Number) (Number, error) {
	if err := checkTerminating(d, e); err != nil {
		return Number{}, err
	}
	if d.IsNeg() == e.IsNeg() {
		return addAbs(d, e, d.IsNeg())
	}
	switch cmpAbs(d, e) {
	case 1:
		return subAbs(d, e, d.IsNeg())
	case -1:
		return subAbs(e, d, e.IsNeg())
	}
	return Zero(d.Base()), nil
}

// Sub returns the exact difference of d and e.
// See [Number.Add] for the list of errors.
func (d Number) Sub(e Number) (Number, error) {
	return d.Add(e.Neg())
}

// Mul returns the exact product of d and e.
//
// Mul returns an error wrapping [ErrDomain] if:
//   - d and e are written in different bases;
//   - d or e has a repeating block, use [Rat.Mul] to multiply such numbers.
func (d Number) Mul(e Number) (Number, error) {
	if err := checkTerminating(d, e); err != nil {
		return Number{}, err
	}
	dm, em := d.mant(), e.mant()
	if err := checkLen(len(dm) + len(em)); err != nil {
		return Number{}, err
	}
	return newNumber(d.IsNeg() != e.IsNeg(), d.Base(), dm.mul(em, d.Base()), d.scale+e.scale, 0)
}

// QuoRem returns the quotient q and remainder r of integers d and e
// such that d = q * e + r, where q is truncated towards zero and
// r has the sign of d.
//
// QuoRem returns an error wrapping [ErrDomain] if:
//   - d and e are written in different bases;
//   - d or e is not an integer;
//   - e is 0.
func (d Number) QuoRem(e Number) (q, r Number, err error) {
	if err = checkIntegers(d, e); err != nil {
		return Number{}, Number{}, err
	}
	qm, rm, err := d.mant().quoRem(e.mant(), d.Base())
	if err != nil {
		return Number{}, Number{}, err
	}
	q, err = newInteger(d.IsNeg() != e.IsNeg(), d.Base(), qm)
	if err != nil {
		return Number{}, Number{}, err
	}
	r, err = newInteger(d.IsNeg(), d.Base(), rm)
	if err != nil {
		return Number{}, Number{}, err
	}
	return q, r, nil
}

// GCD returns the greatest common divisor of the absolute values of
// integers d and e.
// GCD(0, e) is |e| and GCD(0, 0) is 0.
//
// GCD returns an error wrapping [ErrDomain] if d and e are written in
// different bases or either of them is not an integer.
func GCD(d, e Number) (Number, error) {
	if err := checkIntegers(d, e); err != nil {
		return Number{}, err
	}
	return newInteger(false, d.Base(), d.mant().gcd(e.mant(), d.Base()))
}

// Quo returns the exact quotient of d and e.
// The quotient of two numbers is always a terminating or a repeating number,
// for example 1 / 3 is 0.(3).
//
// Quo returns an error wrapping [ErrDomain] if d and e are written in
// different bases or e is 0, and an error wrapping [ErrAllocation] if
// the repeating block of the quotient has more than [MaxDigits] digits.
func (d Number) Quo(e Number) (Number, error) {
	if err := checkBases(d, e); err != nil {
		return Number{}, err
	}
	x, err := d.Rat()
	if err != nil {
		return Number{}, err
	}
	y, err := e.Rat()
	if err != nil {
		return Number{}, err
	}
	z, err := x.Quo(y)
	if err != nil {
		return Number{}, err
	}
	return z.Number()
}

// Cmp compares d and e numerically and returns:
//
//	-1 if d < e
//	 0 if d = e
//	+1 if d > e
//
// Numbers with a repeating block are compared through their fractions,
// so 0.(9) and 1 are equal.
//
// Cmp returns an error wrapping [ErrDomain] if d and e are written in
// different bases.
func (d Number) Cmp(e Number) (int, error) {
	if err := checkBases(d, e); err != nil {
		return 0, err
	}
	if d.IsRepeating() || e.IsRepeating() {
		x, err := d.Rat()
		if err != nil {
			return 0, err
		}
		y, err := e.Rat()
		if err != nil {
			return 0, err
		}
		return x.Cmp(y)
	}
	switch {
	case d.Sign() < e.Sign():
		return -1, nil
	case d.Sign() > e.Sign():
		return 1, nil
	}
	c := cmpAbs(d, e)
	if d.IsNeg() {
		c = -c
	}
	return c, nil
}
