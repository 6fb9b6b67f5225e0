package radix

import "fmt"

// MustAdd is like [Number.Add] but panics if computing error.
func (d Number) MustAdd(e Number) Number {
	f, err := d.Add(e)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%v) failed: %v", d, err))
	}
	return f
}

// MustSub is like [Number.Sub] but panics if computing error.
func (d Number) MustSub(e Number) Number {
	f, err := d.Sub(e)
	if err != nil {
		panic(fmt.Sprintf("MustSub(%v) failed: %v", d, err))
	}
	return f
}

// MustMul is like [Number.Mul] but panics if computing error.
func (d Number) MustMul(e Number) Number {
	f, err := d.Mul(e)
	if err != nil {
		panic(fmt.Sprintf("MustMul(%v) failed: %v", d, err))
	}
	return f
}

// MustQuo is like [Number.Quo] but panics if computing error.
func (d Number) MustQuo(e Number) Number {
	f, err := d.Quo(e)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", d, err))
	}
	return f
}

// MustRat is like [Number.Rat] but panics if computing error.
func (d Number) MustRat() Rat {
	r, err := d.Rat()
	if err != nil {
		panic(fmt.Sprintf("MustRat(%v) failed: %v", d, err))
	}
	return r
}
