// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package exifwalk

import (
	"encoding"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Rat is a rational number as stored in a RATIONAL or SRATIONAL field.
// The raw numerator and denominator are kept as read.
type Rat[T int32 | uint32] interface {
	Num() T
	Den() T

	// Float64 returns num/den, or 0 if the denominator is 0.
	Float64() float64

	// Reduce returns the rational in lowest terms.
	Reduce() Rat[T]

	// String returns the reduced string representation of the rational number.
	// If the denominator is 1, the string will be the numerator only.
	String() string
}

var _ encoding.TextMarshaler = rat[int32]{}

// rat is a rational number.
// It's a lightweight version of math/big.rat.
type rat[T int32 | uint32] struct {
	num T
	den T
}

// NewRat returns a new Rat with the given numerator and denominator.
// No reduction is applied and a zero denominator is allowed.
func NewRat[T int32 | uint32](num, den T) Rat[T] {
	return &rat[T]{num: num, den: den}
}

// Num returns the numerator of the rational number.
func (r rat[T]) Num() T {
	return r.num
}

// Den returns the denominator of the rational number.
func (r rat[T]) Den() T {
	return r.den
}

// Float64 returns the float64 representation of the rational number.
func (r rat[T]) Float64() float64 {
	if r.den == 0 {
		return 0
	}
	return float64(r.num) / float64(r.den)
}

func (r rat[T]) Reduce() Rat[T] {
	num, den := r.reduced()
	return &rat[T]{num: T(num), den: T(den)}
}

// reduced returns the rational in lowest terms with a positive denominator.
func (r rat[T]) reduced() (int64, int64) {
	num, den := ReduceRational(int64(r.num), int64(r.den))
	if den < 0 {
		num, den = -num, -den
	}
	return num, den
}

func (r rat[T]) String() string {
	num, den := r.reduced()
	if den == 1 {
		return strconv.FormatInt(num, 10)
	}
	return fmt.Sprintf("%d/%d", num, den)
}

func (r rat[T]) MarshalText() (text []byte, err error) {
	return []byte(r.String()), nil
}

// maxPrintedValues is the number of values shown before a long list is cut.
const maxPrintedValues = 20

func formatValue(v any) string {
	switch vv := v.(type) {
	case string:
		return vv
	case int64:
		return strconv.FormatInt(vv, 10)
	case fmt.Stringer:
		return vv.String()
	default:
		return fmt.Sprintf("%v", vv)
	}
}

func formatValues(values []any) string {
	switch len(values) {
	case 0:
		return ""
	case 1:
		return formatValue(values[0])
	}

	var sb strings.Builder
	sb.WriteString("[")
	for i, v := range values {
		if i == maxPrintedValues {
			sb.WriteString(", ... ]")
			return sb.String()
		}
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(formatValue(v))
	}
	sb.WriteString("]")
	return sb.String()
}

// vc holds the display formatters referenced from the tag tables.
type vc struct{}

var converters = &vc{}

// makeString keeps the printable characters (32-255) of a byte sequence.
// If nothing printable is left, the values are formatted as is.
func (c vc) makeString(values []any) string {
	var sb strings.Builder
	for _, v := range values {
		switch vv := v.(type) {
		case int64:
			if vv >= 32 && vv < 256 {
				sb.WriteRune(rune(vv))
			}
		case string:
			for _, r := range vv {
				if r >= 32 {
					sb.WriteRune(r)
				}
			}
		}
	}
	if sb.Len() == 0 {
		return formatValues(values)
	}
	return sb.String()
}

// makeStringUC handles the user comment, whose first 8 bytes name the character code.
func (c vc) makeStringUC(values []any) string {
	if len(values) == 1 {
		if s, ok := values[0].(string); ok {
			if len(s) > 8 {
				s = s[8:]
			} else {
				s = ""
			}
			return printableString(s)
		}
	}
	if len(values) > 8 {
		values = values[8:]
	} else {
		values = nil
	}
	return printableString(c.makeString(values))
}

// nikonEVBias formats the 4 byte EV bias used in Nikon maker notes.
// The first byte is the bias in steps of 1/(third byte) EV.
func (c vc) nikonEVBias(values []any) string {
	if len(values) < 4 {
		return ""
	}
	a, ok1 := toInt64(values[0])
	b, ok2 := toInt64(values[2])
	if !ok1 || !ok2 || b == 0 {
		return formatValues(values)
	}
	if a == 0 {
		return "0 EV"
	}
	sign := "+"
	if a > 127 {
		a = 256 - a
		sign = "-"
	}
	s := sign
	whole := a / b
	a = a % b
	if whole != 0 {
		s += strconv.FormatInt(whole, 10) + " "
	}
	if a == 0 {
		return s + "EV"
	}
	num, den := ReduceRational(a, b)
	return s + fmt.Sprintf("%d/%d", num, den) + " EV"
}

func (c vc) olympusSpecialMode(values []any) string {
	modes := map[int64]string{0: "Normal", 1: "Unknown", 2: "Fast", 3: "Panorama"}
	directions := map[int64]string{0: "Non-panoramic", 1: "Left to right", 2: "Right to left", 3: "Bottom to top", 4: "Top to bottom"}
	if len(values) < 3 {
		return formatValues(values)
	}
	m, _ := toInt64(values[0])
	seq, _ := toInt64(values[1])
	d, _ := toInt64(values[2])
	mode, ok1 := modes[m]
	direction, ok2 := directions[d]
	if !ok1 || !ok2 {
		return formatValues(values)
	}
	return fmt.Sprintf("%s - sequence %d - %s", mode, seq, direction)
}

func printableString(s string) string {
	ss := strings.Map(func(r rune) rune {
		if unicode.IsGraphic(r) {
			return r
		}
		return -1
	}, s)

	return strings.TrimSpace(ss)
}

func toInt64(v any) (int64, bool) {
	switch vv := v.(type) {
	case int64:
		return vv, true
	case int:
		return int64(vv), true
	default:
		return 0, false
	}
}

// trimAtNull drops everything from the first NUL byte.
func trimAtNull(b []byte) []byte {
	for i, c := range b {
		if c == 0 {
			return b[:i]
		}
	}
	return b
}
