package shell

import (
	"fmt"
	"io"
	"strings"

	"github.com/govalues/radix"
)

// demoLiterals are parsed and printed by Demo, each with its base.
var demoLiterals = []struct {
	lit  string
	base int
}{
	{"123", 10},
	{"1A3F", 16},
	{"-456", 10},
	{"12.34", 10},
	{"-9.8", 10},
	{"1.(3)", 10},
	{"1A.3(45)", 16},
	{"1011.01", 2},
	{"Z9A", 36},
	{"0", 10},
}

// demoSums are evaluated by Demo as shell commands.
var demoSums = []string{
	"+ 123 456",
	"+ 1.2 0.8",
	"+ 0.(3) 0.(6)",
	"+ 16#FF 2#1",
}

// Demo writes a tour of the digit glyphs, the literal grammar and
// the addition command to w.
func Demo(w io.Writer) error {
	var b strings.Builder

	b.WriteString("Base 36 glyphs:\n")
	for v := 0; v < radix.MaxBase; v++ {
		d := radix.MustNew(radix.MaxBase, false, []byte{byte(v)}, 0, 0)
		// Strip the "36#" prefix
		glyph := strings.TrimPrefix(d.String(), "36#")
		fmt.Fprintf(&b, "%2s ", glyph)
	}
	b.WriteString("\n")
	for v := 0; v < radix.MaxBase; v++ {
		fmt.Fprintf(&b, "%2d ", v)
	}
	b.WriteString("\n\nLiterals:\n")

	for i, tt := range demoLiterals {
		fmt.Fprintf(&b, "%2d: %q in base %v: ", i+1, tt.lit, tt.base)
		d, err := radix.ParseBase(tt.lit, tt.base)
		if err != nil {
			fmt.Fprintf(&b, "error: %v\n", err)
			continue
		}
		fmt.Fprintf(&b, "%v (digits %v, scale %v, period %v)\n", d, d.Digits(), d.Scale(), d.Period())
	}

	b.WriteString("\nSums:\n")
	s := New(DefaultConfig(), nil, nil, nil)
	for _, line := range demoSums {
		out, err := s.Eval(line)
		if err != nil {
			out = "error: " + err.Error()
		}
		fmt.Fprintf(&b, "%v => %v\n", line, out)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
