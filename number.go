package radix

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number type is an exact representation of a signed number written in
// a positional numeral system with a base between [MinBase] and [MaxBase].
// The zero value is the number 0 in base [DefaultBase].
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A number is a struct with five parameters:
//
//   - Sign: a boolean indicating whether the number is negative.
//   - Base: the radix of the numeral system.
//   - Digits: the digit values of the number without the radix point,
//     most significant digit first.
//   - Scale: the number of trailing digits that follow the radix point.
//   - Period: the number of trailing digits of the fractional part that
//     repeat infinitely.
//
// For example, the literal 16#1A.3(45) has the digits [1 10 3 4 5], a scale
// of 3 and a period of 2.
//
// Numbers are always normalized: the integer part has no leading zeros,
// the fractional part of a number without a repeating block has no trailing
// zeros, a repeating block never consists of zeros only, and 0 is never negative.
type Number struct {
	neg    bool // indicates whether the number is negative
	base   byte // the radix, 0 means DefaultBase
	scale  int  // the number of digits after the radix point
	period int  // the number of repeating digits at the end of the fractional part
	digs   nat  // the digits, most significant first
}

const (
	MinBase     = 2       // smallest supported base
	MaxBase     = 36      // largest supported base
	DefaultBase = 10      // base of literals without a base prefix
	MaxDigits   = 1 << 20 // maximum number of digits in a result
)

var (
	ErrMalformedLiteral = errors.New("malformed literal")
	ErrDomain           = errors.New("domain error")
	ErrAllocation       = errors.New("allocation failure")

	errBaseRange        = fmt.Errorf("base out of range: %w", ErrDomain)
	errBaseMismatch     = fmt.Errorf("mismatched bases: %w", ErrDomain)
	errDivisionByZero   = fmt.Errorf("division by zero: %w", ErrDomain)
	errRepeatingOperand = fmt.Errorf("repeating operand: %w", ErrDomain)
	errNotInteger       = fmt.Errorf("non-integer operand: %w", ErrDomain)
)

func checkBase(base int) error {
	if base < MinBase || base > MaxBase {
		return fmt.Errorf("base %v is not in [%v, %v]: %w", base, MinBase, MaxBase, errBaseRange)
	}
	return nil
}

// newNumber returns a normalized number.
// newNumber takes ownership of digs.
func newNumber(neg bool, base int, digs nat, scale, period int) (Number, error) {
	if err := checkLen(len(digs)); err != nil {
		return Number{}, err
	}
	d := Number{neg: neg, base: byte(base), digs: digs, scale: scale, period: period}
	return d.normalize(), nil
}

// newInteger returns a normalized integer.
func newInteger(neg bool, base int, digs nat) (Number, error) {
	return newNumber(neg, base, digs, 0, 0)
}

// New returns a number in the given base with the given digit values,
// most significant first.
// Scale is the number of trailing digits after the radix point, and period
// is the number of trailing digits of the fractional part that repeat.
// The result is normalized.
//
// New returns an error if:
//   - the base is not in [MinBase, MaxBase];
//   - digits is empty or contains a value greater than or equal to the base;
//   - scale is negative or greater than the number of digits;
//   - period is negative or greater than scale.
func New(base int, neg bool, digits []byte, scale, period int) (Number, error) {
	if err := checkBase(base); err != nil {
		return Number{}, err
	}
	switch {
	case len(digits) == 0:
		return Number{}, fmt.Errorf("no digits: %w", ErrDomain)
	case scale < 0 || scale > len(digits):
		return Number{}, fmt.Errorf("scale %v is not in [0, %v]: %w", scale, len(digits), ErrDomain)
	case period < 0 || period > scale:
		return Number{}, fmt.Errorf("period %v is not in [0, %v]: %w", period, scale, ErrDomain)
	}
	for i, v := range digits {
		if int(v) >= base {
			return Number{}, fmt.Errorf("digit %v at position %v is not valid in base %v: %w", v, i, base, ErrDomain)
		}
	}
	return newNumber(neg, base, nat(digits).clone(), scale, period)
}

// MustNew is like [New] but panics if the number cannot be constructed.
func MustNew(base int, neg bool, digits []byte, scale, period int) Number {
	d, err := New(base, neg, digits, scale, period)
	if err != nil {
		panic(fmt.Sprintf("MustNew(%v, %v, %v, %v, %v) failed: %v", base, neg, digits, scale, period, err))
	}
	return d
}

// NewFromInt returns an integer equal to v in the given base.
func NewFromInt[T constraints.Integer](v T, base int) (Number, error) {
	if err := checkBase(base); err != nil {
		return Number{}, err
	}
	neg := v < 0
	u := uint64(v)
	if neg {
		u = -u
	}
	return newInteger(neg, base, newNat(u, base))
}

// Zero returns the number 0 in the given base.
// Zero panics if the base is not in [MinBase, MaxBase].
func Zero(base int) Number {
	if err := checkBase(base); err != nil {
		panic(fmt.Sprintf("Zero(%v) failed: %v", base, err))
	}
	return Number{base: byte(base), digs: nat{0}}
}

// normalize canonicalizes d in place and returns it.
func (d Number) normalize() Number {
	if len(d.digs) == 0 {
		d.digs = nat{0}
		d.scale, d.period = 0, 0
	}

	// Repeating block of zeros
	if d.period > 0 && nat(d.digs[len(d.digs)-d.period:]).isZero() {
		d.digs = d.digs[:len(d.digs)-d.period]
		d.scale -= d.period
		d.period = 0
	}

	// Leading zeros of the integer part
	lead := 0
	for lead < len(d.digs)-d.scale-1 && d.digs[lead] == 0 {
		lead++
	}
	d.digs = d.digs[lead:]

	// Trailing zeros of the fractional part
	if d.period == 0 {
		trail := 0
		for trail < d.scale && trail < len(d.digs) && d.digs[len(d.digs)-1-trail] == 0 {
			trail++
		}
		d.digs = d.digs[:len(d.digs)-trail]
		d.scale -= trail
	}

	// Integer part must have at least one digit
	if n := d.scale + 1 - len(d.digs); n > 0 {
		d.digs = append(make(nat, n), d.digs...)
	}

	if d.digs.isZero() {
		d.digs = nat{0}
		d.scale, d.period = 0, 0
		d.neg = false
	}
	return d
}

// Base returns the radix of d.
func (d Number) Base() int {
	if d.base == 0 {
		return DefaultBase
	}
	return int(d.base)
}

// mant returns the digits of d without copying them.
func (d Number) mant() nat {
	if len(d.digs) == 0 {
		return nat{0}
	}
	return d.digs
}

// Digits returns a copy of the digit values of d, most significant first.
func (d Number) Digits() []byte {
	return []byte(d.mant().clone())
}

// Scale returns the number of digits after the radix point.
func (d Number) Scale() int {
	return d.scale
}

// Period returns the number of digits in the repeating block.
// Period returns 0 if d has no repeating block.
func (d Number) Period() int {
	return d.period
}

// intPart returns the digits before the radix point.
func (d Number) intPart() nat {
	m := d.mant()
	return m[:len(m)-d.scale]
}

// fracPart returns the digits after the radix point.
func (d Number) fracPart() nat {
	m := d.mant()
	return m[len(m)-d.scale:]
}

// Sign returns:
//
//	-1 if d < 0
//	 0 if d = 0
//	+1 if d > 0
func (d Number) Sign() int {
	switch {
	case d.IsZero():
		return 0
	case d.neg:
		return -1
	default:
		return 1
	}
}

// IsNeg returns true if d < 0.
func (d Number) IsNeg() bool {
	return d.neg
}

// IsZero returns true if d = 0.
func (d Number) IsZero() bool {
	return d.mant().isZero()
}

// IsInt returns true if d has no fractional part.
func (d Number) IsInt() bool {
	return d.scale == 0
}

// IsRepeating returns true if d has a repeating block.
func (d Number) IsRepeating() bool {
	return d.period > 0
}

// Neg returns a number with the opposite sign.
func (d Number) Neg() Number {
	if d.IsZero() {
		return d
	}
	d.neg = !d.neg
	return d
}

// Abs returns the absolute value of d.
func (d Number) Abs() Number {
	d.neg = false
	return d
}

// Int64 returns the integer value of d.
// ok is false if d has a fractional part or does not fit into int64.
func (d Number) Int64() (i int64, ok bool) {
	if !d.IsInt() {
		return 0, false
	}
	u, ok := d.mant().uint64(d.Base())
	if !ok {
		return 0, false
	}
	if d.neg {
		if u > 1<<63 {
			return 0, false
		}
		return -int64(u), true
	}
	if u > 1<<63-1 {
		return 0, false
	}
	return int64(u), true
}
