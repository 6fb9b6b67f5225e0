package radix

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNumber_ZeroValue(t *testing.T) {
	got := Number{}
	want := Zero(DefaultBase)
	if got.String() != want.String() {
		t.Errorf("Number{} = %q, want %q", got, want)
	}
	if !got.IsZero() || got.Sign() != 0 || got.Base() != DefaultBase {
		t.Errorf("Number{} is not 0 in base %v", DefaultBase)
	}
}

func TestNew(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			base          int
			neg           bool
			digits        []byte
			scale, period int
			want          string
		}{
			{10, false, []byte{1, 2, 3}, 0, 0, "123"},
			{10, true, []byte{1, 2, 3}, 2, 0, "-1.23"},
			{10, false, []byte{0, 0, 1}, 0, 0, "1"},
			{10, false, []byte{1, 3}, 1, 1, "1.(3)"},
			{10, false, []byte{5}, 1, 0, "0.5"},
			{10, false, []byte{3}, 1, 1, "0.(3)"},
			{10, true, []byte{0, 0}, 1, 0, "0"},
			{16, false, []byte{1, 10, 3, 4, 5}, 3, 2, "16#1A.3(45)"},
			{2, true, []byte{1, 0, 1, 1}, 1, 0, "2#-101.1"},
			{10, false, []byte{1, 2, 0, 0}, 3, 1, "1.2"},
		}
		for _, tt := range tests {
			got, err := New(tt.base, tt.neg, tt.digits, tt.scale, tt.period)
			if err != nil {
				t.Errorf("New(%v, %v, %v, %v, %v) failed: %v", tt.base, tt.neg, tt.digits, tt.scale, tt.period, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("New(%v, %v, %v, %v, %v) = %q, want %q", tt.base, tt.neg, tt.digits, tt.scale, tt.period, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			base          int
			digits        []byte
			scale, period int
		}{
			"base too small":    {1, []byte{0}, 0, 0},
			"base too large":    {37, []byte{0}, 0, 0},
			"no digits":         {10, nil, 0, 0},
			"negative scale":    {10, []byte{1}, -1, 0},
			"scale too large":   {10, []byte{1}, 2, 0},
			"negative period":   {10, []byte{1}, 1, -1},
			"period too large":  {10, []byte{1, 2}, 1, 2},
			"digit out of base": {2, []byte{1, 2}, 0, 0},
		}
		for name, tt := range tests {
			_, err := New(tt.base, false, tt.digits, tt.scale, tt.period)
			if !errors.Is(err, ErrDomain) {
				t.Errorf("New(%v, false, %v, %v, %v) [%v]: error = %v, want %v", tt.base, tt.digits, tt.scale, tt.period, name, err, ErrDomain)
			}
		}
	})

	t.Run("ownership", func(t *testing.T) {
		digits := []byte{1, 2, 3}
		d := MustNew(10, false, digits, 0, 0)
		digits[0] = 9
		if got := d.String(); got != "123" {
			t.Errorf("MustNew shares digits with the caller: got %q, want %q", got, "123")
		}
		got := d.Digits()
		got[0] = 9
		if d.String() != "123" {
			t.Errorf("Digits() shares digits with the number: got %q, want %q", d, "123")
		}
	})
}

func TestMustNew(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("MustNew(1, ...) did not panic")
		}
	}()
	MustNew(1, false, []byte{0}, 0, 0)
}

func TestNewFromInt(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			v    int64
			base int
			want string
		}{
			{0, 10, "0"},
			{-1, 10, "-1"},
			{255, 16, "16#FF"},
			{-5, 2, "2#-101"},
			{1295, 36, "36#ZZ"},
			{math.MaxInt64, 10, "9223372036854775807"},
			{math.MinInt64, 10, "-9223372036854775808"},
			{math.MinInt64, 16, "16#-8000000000000000"},
		}
		for _, tt := range tests {
			got, err := NewFromInt(tt.v, tt.base)
			if err != nil {
				t.Errorf("NewFromInt(%v, %v) failed: %v", tt.v, tt.base, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("NewFromInt(%v, %v) = %q, want %q", tt.v, tt.base, got, tt.want)
			}
		}
	})

	t.Run("unsigned", func(t *testing.T) {
		got, err := NewFromInt(uint64(math.MaxUint64), 10)
		if err != nil {
			t.Fatalf("NewFromInt(%v, 10) failed: %v", uint64(math.MaxUint64), err)
		}
		if want := "18446744073709551615"; got.String() != want {
			t.Errorf("NewFromInt(%v, 10) = %q, want %q", uint64(math.MaxUint64), got, want)
		}
		got, err = NewFromInt(uint8(7), 2)
		if err != nil {
			t.Fatalf("NewFromInt(7, 2) failed: %v", err)
		}
		if want := "2#111"; got.String() != want {
			t.Errorf("NewFromInt(7, 2) = %q, want %q", got, want)
		}
	})

	t.Run("error", func(t *testing.T) {
		_, err := NewFromInt(1, 40)
		if !errors.Is(err, ErrDomain) {
			t.Errorf("NewFromInt(1, 40) error = %v, want %v", err, ErrDomain)
		}
	})
}

func TestZero(t *testing.T) {
	for _, base := range []int{MinBase, DefaultBase, 16, MaxBase} {
		d := Zero(base)
		if !d.IsZero() || d.Base() != base {
			t.Errorf("Zero(%v) = %q, want 0 in base %v", base, d, base)
		}
	}
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Zero(0) did not panic")
		}
	}()
	Zero(0)
}

func TestNumber_Normalize(t *testing.T) {
	tests := []struct {
		d          Number
		wantDigits []byte
		wantScale  int
		wantPeriod int
	}{
		{Number{digs: nat{0, 0, 1, 2}}, []byte{1, 2}, 0, 0},
		{Number{digs: nat{0, 0, 1, 2, 0, 0}, scale: 2}, []byte{1, 2}, 0, 0},
		{Number{digs: nat{0, 5}, scale: 2}, []byte{0, 0, 5}, 2, 0},
		{Number{digs: nat{1, 3, 0, 0}, scale: 3, period: 2}, []byte{1, 3}, 1, 0},
		{Number{digs: nat{1, 3, 0}, scale: 2, period: 2}, []byte{1, 3, 0}, 2, 2},
		{Number{digs: nat{3}, scale: 1, period: 1}, []byte{0, 3}, 1, 1},
		{Number{neg: true, digs: nat{0, 0, 0}, scale: 2}, []byte{0}, 0, 0},
		{Number{}, []byte{0}, 0, 0},
		{Number{digs: nat{0}, scale: 3}, []byte{0}, 0, 0},
		{Number{neg: true, digs: nat{0, 0}, scale: 5}, []byte{0}, 0, 0},
		{Number{digs: nat{5}, scale: 3}, []byte{0, 0, 0, 5}, 3, 0},
	}
	for _, tt := range tests {
		got := tt.d.normalize()
		if diff := cmp.Diff(tt.wantDigits, got.Digits()); diff != "" {
			t.Errorf("%v.normalize() digits mismatch (-want +got):\n%s", tt.d.digs, diff)
		}
		if got.Scale() != tt.wantScale || got.Period() != tt.wantPeriod {
			t.Errorf("%v.normalize() scale, period = %v, %v, want %v, %v", tt.d.digs, got.Scale(), got.Period(), tt.wantScale, tt.wantPeriod)
		}
		if got.IsZero() && got.IsNeg() {
			t.Errorf("%v.normalize() is negative zero", tt.d.digs)
		}
		again := got.normalize()
		if diff := cmp.Diff(got.Digits(), again.Digits()); diff != "" || again.Scale() != got.Scale() || again.Period() != got.Period() {
			t.Errorf("%v.normalize() is not idempotent", tt.d.digs)
		}
	}
}

func TestNumber_Predicates(t *testing.T) {
	tests := []struct {
		s                          string
		wantSign                   int
		wantInt, wantRep, wantZero bool
	}{
		{"0", 0, true, false, true},
		{"-0.5", -1, false, false, false},
		{"12", 1, true, false, false},
		{"1.(3)", 1, false, true, false},
		{"16#-0.(F)", -1, false, true, false},
	}
	for _, tt := range tests {
		d := MustParse(tt.s)
		if got := d.Sign(); got != tt.wantSign {
			t.Errorf("%q.Sign() = %v, want %v", d, got, tt.wantSign)
		}
		if got := d.IsInt(); got != tt.wantInt {
			t.Errorf("%q.IsInt() = %v, want %v", d, got, tt.wantInt)
		}
		if got := d.IsRepeating(); got != tt.wantRep {
			t.Errorf("%q.IsRepeating() = %v, want %v", d, got, tt.wantRep)
		}
		if got := d.IsZero(); got != tt.wantZero {
			t.Errorf("%q.IsZero() = %v, want %v", d, got, tt.wantZero)
		}
	}
}

func TestNumber_Neg(t *testing.T) {
	tests := []struct {
		s, wantNeg, wantAbs string
	}{
		{"0", "0", "0"},
		{"1.5", "-1.5", "1.5"},
		{"-1.(3)", "1.(3)", "1.(3)"},
		{"16#-FF", "16#FF", "16#FF"},
	}
	for _, tt := range tests {
		d := MustParse(tt.s)
		if got := d.Neg(); got.String() != tt.wantNeg {
			t.Errorf("%q.Neg() = %q, want %q", d, got, tt.wantNeg)
		}
		if got := d.Abs(); got.String() != tt.wantAbs {
			t.Errorf("%q.Abs() = %q, want %q", d, got, tt.wantAbs)
		}
	}
}

func TestNumber_Int64(t *testing.T) {
	tests := []struct {
		s      string
		want   int64
		wantOk bool
	}{
		{"0", 0, true},
		{"-42", -42, true},
		{"16#FF", 255, true},
		{"9223372036854775807", math.MaxInt64, true},
		{"-9223372036854775808", math.MinInt64, true},
		{"9223372036854775808", 0, false},
		{"-9223372036854775809", 0, false},
		{"99999999999999999999", 0, false},
		{"1.5", 0, false},
		{"0.(3)", 0, false},
	}
	for _, tt := range tests {
		d := MustParse(tt.s)
		got, ok := d.Int64()
		if got != tt.want || ok != tt.wantOk {
			t.Errorf("%q.Int64() = %v, %v, want %v, %v", d, got, ok, tt.want, tt.wantOk)
		}
	}
}
