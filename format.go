package radix

import (
	"database/sql/driver"
	"fmt"
	"strconv"
)

// glyphs maps digit values to their canonical (upper case) glyphs.
const glyphs = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// String method implements the [fmt.Stringer] interface and returns
// a literal representing d, which [Parse] converts back to d.
// The base prefix is omitted for numbers in base [DefaultBase].
// The returned string is formatted according to the following grammar:
//
//	literal ::= [ base '#' ] [ '-' ] digits [ '.' [ digits ] [ '(' digits ')' ] ]
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Number) String() string {
	return string(d.append(nil))
}

func (d Number) append(buf []byte) []byte {
	if b := d.Base(); b != DefaultBase {
		buf = strconv.AppendInt(buf, int64(b), 10)
		buf = append(buf, '#')
	}
	if d.neg {
		buf = append(buf, '-')
	}
	m := d.mant()
	point := len(m) - d.scale
	open := len(m) - d.period
	for i, v := range m {
		if d.scale > 0 && i == point {
			buf = append(buf, '.')
		}
		if d.period > 0 && i == open {
			buf = append(buf, '(')
		}
		buf = append(buf, glyphs[v])
	}
	if d.period > 0 {
		buf = append(buf, ')')
	}
	return buf
}

// Format implements [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%s, %v: 16#-1A.3(45)
//	%q:    "16#-1A.3(45)"
//
// The '-' flag pads on the right, the '0' flag is ignored, and width
// counts all characters including the base prefix.
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (d Number) Format(state fmt.State, verb rune) {
	var buf []byte
	switch verb {
	case 'q', 'Q':
		buf = append(buf, '"')
		buf = d.append(buf)
		buf = append(buf, '"')
	case 's', 'S', 'v', 'V':
		buf = d.append(buf)
	default:
		buf = append(buf, "%!"...)
		buf = append(buf, byte(verb))
		buf = append(buf, "(radix.Number="...)
		buf = d.append(buf)
		buf = append(buf, ')')
		state.Write(buf)
		return
	}

	// Padding
	pad := 0
	if w, ok := state.Width(); ok && w > len(buf) {
		pad = w - len(buf)
	}
	if pad > 0 && !state.Flag('-') {
		state.Write(spaces(pad))
	}
	state.Write(buf)
	if pad > 0 && state.Flag('-') {
		state.Write(spaces(pad))
	}
}

func spaces(n int) []byte {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = ' '
	}
	return buf
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see method [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (d *Number) UnmarshalText(text []byte) error {
	var err error
	*d, err = Parse(string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Number.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d Number) MarshalText() ([]byte, error) {
	return d.append(nil), nil
}

// Scan implements the [sql.Scanner] interface.
// Strings and byte slices are parsed with [Parse],
// integers are converted to base [DefaultBase].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (d *Number) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*d, err = Parse(value)
	case []byte:
		*d, err = Parse(string(value))
	case int64:
		*d, err = NewFromInt(value, DefaultBase)
	case nil:
		err = fmt.Errorf("converting to %T: nil is not supported", d)
	default:
		err = fmt.Errorf("converting from %T to %T: type %T is not supported", value, d, value)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
// Numbers are stored as literals, see [Number.String].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (d Number) Value() (driver.Value, error) {
	return d.String(), nil
}

// NullNumber represents a [Number] that may be null.
// NullNumber implements the [sql.Scanner] interface so
// it can be used as a scan destination.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
type NullNumber struct {
	Number Number
	Valid  bool // Valid is true if Number is not NULL
}

// Scan implements the [sql.Scanner] interface.
// See also method [Number.Scan].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (n *NullNumber) Scan(value any) error {
	if value == nil {
		n.Number, n.Valid = Number{}, false
		return nil
	}
	err := n.Number.Scan(value)
	if err != nil {
		n.Valid = false
		return err
	}
	n.Valid = true
	return nil
}

// Value implements the [driver.Valuer] interface.
// See also method [Number.Value].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (n NullNumber) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Number.Value()
}
