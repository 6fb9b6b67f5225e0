package radix

import (
	"fmt"
	"strconv"
	"strings"
)

// parseState is the state of the literal scanner.
type parseState byte

const (
	stateStart  parseState = iota // nothing consumed yet
	stateSign                     // '-' consumed
	stateInt                      // inside the integer part
	statePoint                    // '.' consumed, no fractional digit yet
	stateFrac                     // inside the non-repeating fractional part
	stateOpen                     // '(' consumed, no repeating digit yet
	stateRepeat                   // inside the repeating block
	stateClosed                   // ')' consumed
)

var stateNames = [...]string{
	stateStart:  "start",
	stateSign:   "sign",
	stateInt:    "integer part",
	statePoint:  "radix point",
	stateFrac:   "fractional part",
	stateOpen:   "opening parenthesis",
	stateRepeat: "repeating block",
	stateClosed: "closing parenthesis",
}

func (s parseState) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "state(" + strconv.Itoa(int(s)) + ")"
}

// digitValue converts a glyph into a digit value.
// Letters are case-insensitive, 'A' and 'a' both stand for 10.
func digitValue(ch byte) (byte, bool) {
	switch {
	case '0' <= ch && ch <= '9':
		return ch - '0', true
	case 'A' <= ch && ch <= 'Z':
		return ch - 'A' + 10, true
	case 'a' <= ch && ch <= 'z':
		return ch - 'a' + 10, true
	}
	return 0, false
}

// next returns the scanner state after consuming ch.
// Digits are reported as a class: the caller checks their value against the base.
func (s parseState) next(ch byte) (parseState, error) {
	if _, ok := digitValue(ch); ok {
		switch s {
		case stateStart, stateSign, stateInt:
			return stateInt, nil
		case statePoint, stateFrac:
			return stateFrac, nil
		case stateOpen, stateRepeat:
			return stateRepeat, nil
		}
		return s, fmt.Errorf("digit after %v", s)
	}
	switch ch {
	case '-':
		if s == stateStart {
			return stateSign, nil
		}
		return s, fmt.Errorf("misplaced sign after %v", s)
	case '.':
		switch s {
		case stateInt:
			return statePoint, nil
		case stateStart, stateSign:
			return s, fmt.Errorf("radix point before any digit")
		case stateClosed:
			return s, fmt.Errorf("radix point after %v", s)
		}
		return s, fmt.Errorf("duplicate radix point")
	case '(':
		switch s {
		case statePoint, stateFrac:
			return stateOpen, nil
		case stateOpen, stateRepeat:
			return s, fmt.Errorf("nested parenthesis")
		case stateClosed:
			return s, fmt.Errorf("duplicate repeating block")
		}
		return s, fmt.Errorf("repeating block before radix point")
	case ')':
		switch s {
		case stateRepeat:
			return stateClosed, nil
		case stateOpen:
			return s, fmt.Errorf("empty repeating block")
		}
		return s, fmt.Errorf("unbalanced parenthesis")
	}
	return s, fmt.Errorf("invalid character %q", ch)
}

// final checks that the scanner may stop in state s.
func (s parseState) final() error {
	switch s {
	case stateInt, stateFrac, stateClosed:
		return nil
	case stateStart:
		return fmt.Errorf("empty literal")
	case stateSign:
		return fmt.Errorf("no digits after sign")
	case statePoint:
		return fmt.Errorf("no digits after radix point")
	}
	return fmt.Errorf("unclosed parenthesis")
}

// Parse converts a literal to a number.
// The literal must conform to the following grammar:
//
//	literal    ::= [ base '#' ] number
//	number     ::= [ '-' ] intPart [ '.' fracPart [ '(' repPart ')' ] ]
//	intPart    ::= digit { digit }
//	fracPart   ::= { digit }
//	repPart    ::= digit { digit }
//	digit      ::= '0' ... '9' | 'A' ... 'Z' | 'a' ... 'z'
//	base       ::= decimal number between 2 and 36
//
// Digits are case-insensitive and each must be less than the base.
// Without a base prefix, the base is [DefaultBase].
// A radix point must be followed by at least one digit, either in the
// fractional part or in the repeating block.
// The result is normalized, so "007.50" and "7.5" represent the same number.
//
// Parse returns an error wrapping [ErrMalformedLiteral] if the literal is not valid.
func Parse(s string) (Number, error) {
	base := DefaultBase
	num := s
	if i := strings.IndexByte(s, '#'); i >= 0 {
		var err error
		base, err = parseBasePrefix(s[:i])
		if err != nil {
			return Number{}, err
		}
		num = s[i+1:]
	}
	return ParseBase(num, base)
}

func parseBasePrefix(prefix string) (int, error) {
	if prefix == "" {
		return 0, fmt.Errorf("empty base prefix: %w", ErrMalformedLiteral)
	}
	for i := 0; i < len(prefix); i++ {
		if prefix[i] < '0' || prefix[i] > '9' {
			return 0, fmt.Errorf("invalid character %q in base prefix %q: %w", prefix[i], prefix, ErrMalformedLiteral)
		}
	}
	base, err := strconv.Atoi(prefix)
	if err != nil || checkBase(base) != nil {
		return 0, fmt.Errorf("base prefix %q is not in [%v, %v]: %w", prefix, MinBase, MaxBase, ErrMalformedLiteral)
	}
	return base, nil
}

// ParseBase converts a literal without a base prefix to a number in the
// given base. See [Parse] for the grammar of the number part.
//
// ParseBase returns an error wrapping [ErrDomain] if the base is not in
// [MinBase, MaxBase], or an error wrapping [ErrMalformedLiteral] if
// the literal is not valid.
func ParseBase(s string, base int) (Number, error) {
	if err := checkBase(base); err != nil {
		return Number{}, err
	}
	var (
		state  parseState
		neg    bool
		scale  int
		period int
		err    error
	)
	digs := make(nat, 0, len(s))
	for pos := 0; pos < len(s); pos++ {
		ch := s[pos]
		state, err = state.next(ch)
		if err != nil {
			return Number{}, fmt.Errorf("%v at position %v in %q: %w", err, pos, s, ErrMalformedLiteral)
		}
		switch state {
		case stateSign:
			neg = true
		case stateInt, stateFrac, stateRepeat:
			v, _ := digitValue(ch)
			if int(v) >= base {
				return Number{}, fmt.Errorf("digit %q at position %v in %q is not valid in base %v: %w", ch, pos, s, base, ErrMalformedLiteral)
			}
			digs = append(digs, v)
			if state != stateInt {
				scale++
			}
			if state == stateRepeat {
				period++
			}
		}
	}
	if err = state.final(); err != nil {
		return Number{}, fmt.Errorf("%v in %q: %w", err, s, ErrMalformedLiteral)
	}
	return newNumber(neg, base, digs, scale, period)
}

// MustParse is like [Parse] but panics if the literal cannot be parsed.
// It simplifies safe initialization of global variables holding numbers.
func MustParse(s string) Number {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return d
}
