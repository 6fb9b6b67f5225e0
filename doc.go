/*
Package radix implements exact arithmetic on numbers written in any base
from 2 to 36, including numbers with an infinitely repeating fractional block.
It never rounds and never uses floating-point arithmetic.

# Representation

[Number] is a struct with five fields:

  - Sign: a boolean indicating whether the number is negative.
  - Base: the radix of the numeral system, between [MinBase] and [MaxBase].
  - Digits: the digit values of the number without the radix point,
    most significant digit first.
  - Scale: the number of trailing digits that follow the radix point.
  - Period: the number of trailing digits of the fractional part that repeat
    infinitely. The repeating block is always a suffix of the fractional part.

For example, the hexadecimal number 1A.3454545... is written as 16#1A.3(45)
and has the digits [1 10 3 4 5], a scale of 3 and a period of 2.

Numbers are always normalized, so every value has a single representation
for a given repeating block:

  - the integer part has no leading zeros, but at least one digit;
  - the fractional part of a terminating number has no trailing zeros;
  - a repeating block consisting of zeros only is removed;
  - 0 is never negative.

[Rat] is an exact fraction of two integers written in the same base.
Fractions are always reduced and have a positive denominator.

# Literals

Numbers are parsed by [Parse] and printed by [Number.String] using the
following grammar:

	literal    ::= [ base '#' ] number
	number     ::= [ '-' ] intPart [ '.' fracPart [ '(' repPart ')' ] ]
	digit      ::= '0' ... '9' | 'A' ... 'Z' | 'a' ... 'z'

The base is written in decimal, and the default base is 10.
Digits are case-insensitive, and [Number.String] prints them in upper case.

# Operations

Terminating numbers support [Number.Add], [Number.Sub], [Number.Mul] and
[Number.Cmp] directly on their digits.
Integers additionally support [Number.QuoRem] and [GCD].

Numbers with a repeating block go through fractions: [Number.Rat] converts
any number to a [Rat], and [Rat.Number] converts a fraction back, detecting
the repeating block by long division.
[Number.Quo] uses this bridge, so the quotient of two numbers is always exact:

	1 / 3 = 0.(3)
	16#1 / 16#3 = 16#0.(5)

Operands of a binary operation must be written in the same base.

# Errors

All methods are panic-free and pure, except for the Must helpers.
Errors wrap one of the following values and can be tested with [errors.Is]:

  - [ErrMalformedLiteral]: a literal does not conform to the grammar, or
    one of its digits is not valid in the base.
  - [ErrDomain]: operands are written in different bases, division by zero,
    a repeating number passed to an operation accepting only terminating
    numbers, or a fraction passed to an operation accepting only integers.
  - [ErrAllocation]: a result would have more than [MaxDigits] digits.
*/
package radix
