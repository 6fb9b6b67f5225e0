package radix

import (
	"fmt"
)

// nat (NATural number) is an unsigned integer stored as a sequence of digit
// values, most significant digit first.
// The base is not stored in nat, it is passed to every operation that needs it.
//
// A nat is normalized if it has no leading zero digits, except for the
// value 0, which is represented as a single zero digit.
// All operations return normalized values and never modify their operands.
type nat []byte

// natOne is a cache of the value 1, which has the same representation in every base.
var natOne = nat{1}

// newNat returns a nat equal to u in base b.
func newNat(u uint64, b int) nat {
	if u == 0 {
		return nat{0}
	}
	var buf [64]byte
	pos := len(buf)
	for u > 0 {
		pos--
		buf[pos] = byte(u % uint64(b))
		u /= uint64(b)
	}
	return nat(buf[pos:]).clone()
}

// uint64 converts x to uint64.
// ok is false if x cannot be represented as uint64.
func (x nat) uint64(b int) (u uint64, ok bool) {
	for _, d := range x {
		if u > (^uint64(0)-uint64(d))/uint64(b) {
			return 0, false
		}
		u = u*uint64(b) + uint64(d)
	}
	return u, true
}

func (x nat) clone() nat {
	z := make(nat, len(x))
	copy(z, x)
	return z
}

// norm strips leading zero digits, keeping a single zero for the value 0.
func (x nat) norm() nat {
	if len(x) == 0 {
		return nat{0}
	}
	i := 0
	for i < len(x)-1 && x[i] == 0 {
		i++
	}
	return x[i:]
}

func (x nat) isZero() bool {
	for _, d := range x {
		if d != 0 {
			return false
		}
	}
	return true
}

// cmp compares x and y and returns:
//
//	-1 if x < y
//	 0 if x == y
//	+1 if x > y
//
// Both x and y must be normalized.
func (x nat) cmp(y nat) int {
	switch {
	case len(x) < len(y):
		return -1
	case len(x) > len(y):
		return 1
	}
	for i := range x {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	return 0
}

// add calculates x + y.
func (x nat) add(y nat, b int) nat {
	if len(x) < len(y) {
		x, y = y, x
	}
	z := make(nat, len(x)+1)
	carry := 0
	for i, j := len(x)-1, len(y)-1; i >= 0; i, j = i-1, j-1 {
		s := int(x[i]) + carry
		if j >= 0 {
			s += int(y[j])
		}
		carry = 0
		if s >= b {
			s -= b
			carry = 1
		}
		z[i+1] = byte(s)
	}
	z[0] = byte(carry)
	return z.norm()
}

// sub calculates x - y.
// If x is less than y, the result is unpredictable.
func (x nat) sub(y nat, b int) nat {
	z := make(nat, len(x))
	borrow := 0
	for i, j := len(x)-1, len(y)-1; i >= 0; i, j = i-1, j-1 {
		s := int(x[i]) - borrow
		if j >= 0 {
			s -= int(y[j])
		}
		borrow = 0
		if s < 0 {
			s += b
			borrow = 1
		}
		z[i] = byte(s)
	}
	return z.norm()
}

// mul calculates x * y using schoolbook multiplication.
func (x nat) mul(y nat, b int) nat {
	if x.isZero() || y.isZero() {
		return nat{0}
	}
	// Products are accumulated least significant first without carrying,
	// each cell holds at most min(len(x), len(y)) * (b-1)^2.
	acc := make([]int, len(x)+len(y))
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] == 0 {
			continue
		}
		xi := int(x[i])
		for j := len(y) - 1; j >= 0; j-- {
			acc[len(x)-1-i+len(y)-1-j] += xi * int(y[j])
		}
	}
	z := make(nat, len(acc))
	carry := 0
	for k := range acc {
		s := acc[k] + carry
		z[len(z)-1-k] = byte(s % b)
		carry = s / b
	}
	return z.norm()
}

// mulDigit calculates x * d, where d is a single digit.
func (x nat) mulDigit(d byte, b int) nat {
	if d == 0 {
		return nat{0}
	}
	z := make(nat, len(x)+1)
	carry := 0
	for i := len(x) - 1; i >= 0; i-- {
		p := int(x[i])*int(d) + carry
		z[i+1] = byte(p % b)
		carry = p / b
	}
	z[0] = byte(carry)
	return z.norm()
}

// lsh (Left Shift) calculates x * b^shift.
func (x nat) lsh(shift int) nat {
	if x.isZero() || shift <= 0 {
		return x.clone()
	}
	z := make(nat, len(x)+shift)
	copy(z, x)
	return z
}

// pow calculates b^n, which is 1 followed by n zero digits.
func pow(n int) nat {
	return natOne.lsh(n)
}

// quoRem calculates q = ⌊x / y⌋, r = x - y * q using long division.
// Each quotient digit is the largest d in [0, b) with d * y <= r,
// located by binary search.
func (x nat) quoRem(y nat, b int) (q, r nat, err error) {
	x, y = x.norm(), y.norm()
	if y.isZero() {
		return nil, nil, errDivisionByZero
	}
	if x.cmp(y) < 0 {
		return nat{0}, x.clone(), nil
	}
	q = make(nat, 0, len(x))
	r = nat{0}
	for _, d := range x {
		// Bring down the next digit
		r = append(r.clone(), d).norm()
		lo, hi := 0, b-1
		for lo < hi {
			mid := (lo + hi + 1) / 2
			if y.mulDigit(byte(mid), b).cmp(r) <= 0 {
				lo = mid
			} else {
				hi = mid - 1
			}
		}
		if lo > 0 {
			r = r.sub(y.mulDigit(byte(lo), b), b)
		}
		q = append(q, byte(lo))
	}
	return q.norm(), r, nil
}

// gcd calculates the greatest common divisor of x and y using
// the Euclidean algorithm.
// gcd(0, y) = y, gcd(0, 0) = 0.
func (x nat) gcd(y nat, b int) nat {
	x, y = x.norm(), y.norm()
	for !y.isZero() {
		_, r, err := x.quoRem(y, b)
		if err != nil {
			panic(fmt.Sprintf("gcd(%v, %v) failed: %v", x, y, err))
		}
		x, y = y, r
	}
	return x.clone()
}

// checkLen returns an error if a nat of n digits cannot be allocated.
func checkLen(n int) error {
	if n > MaxDigits {
		return fmt.Errorf("result needs %v digits, at most %v are allowed: %w", n, MaxDigits, ErrAllocation)
	}
	return nil
}
