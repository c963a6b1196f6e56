package jv

import "math"

// Number returns a native float64-backed number in every build;
// NumberWithLiteral additionally preserves arbitrary-precision decimal
// values when built with the jv_decimal tag (see number_decimal.go /
// number_native.go).
func Number(x float64) Value {
	return Value{kind: KindNumber, number: x}
}

// NumberWithLiteral parses text as a JSON number literal and returns a
// Number that — when built with the jv_decimal tag — preserves the
// parsed value at full decimal precision, retrievable via
// NumberGetLiteral in a canonical (possibly scientific) format rather
// than text's original spelling. On a syntax error it returns a bare
// Invalid value. A "nan"/"-nan" literal returns a native NaN Number.
func NumberWithLiteral(text string) Value {
	return decimalFromLiteral(text)
}

func freeNumber(v Value) {
	if v.hasPayload {
		decimalFreePayload(v)
	}
}

// NumberAsDouble returns v's value as a float64, reducing a decimal
// literal's exact value to the nearest float64. The reduction is done on
// every call; the result is not cached. Peek: does not consume v.
func NumberAsDouble(v Value) float64 {
	if v.kind != KindNumber {
		kindError(KindNumber, v.kind)
	}
	if v.hasPayload {
		return decimalAsDouble(v)
	}
	return v.number
}

// IsInteger reports whether v is a number whose fractional part is
// smaller in magnitude than DBL_EPSILON. Peek: does not consume v.
func IsInteger(v Value) bool {
	if v.kind != KindNumber {
		return false
	}
	x := NumberAsDouble(v)
	_, frac := math.Modf(x)
	return math.Abs(frac) < dblEpsilon
}

// dblEpsilon matches C's DBL_EPSILON, the spacing between 1.0 and the
// next representable float64.
const dblEpsilon = 2.220446049250313e-16

// NumberIsNaN reports whether v's active representation is NaN. Peek:
// does not consume v.
func NumberIsNaN(v Value) bool {
	if v.kind != KindNumber {
		kindError(KindNumber, v.kind)
	}
	if v.hasPayload {
		return decimalIsNaN(v)
	}
	return math.IsNaN(v.number)
}

// NumberAbs returns the absolute value of v. NumberAbs consumes v.
func NumberAbs(v Value) Value {
	if v.kind != KindNumber {
		kindError(KindNumber, v.kind)
	}
	if v.hasPayload {
		return decimalAbs(v)
	}
	x := v.number
	return Number(math.Abs(x))
}

// NumberNegate returns the negation of v. NumberNegate consumes v.
func NumberNegate(v Value) Value {
	if v.kind != KindNumber {
		kindError(KindNumber, v.kind)
	}
	if v.hasPayload {
		return decimalNegate(v)
	}
	return Number(-v.number)
}

// NumberCompare returns -1, 0, or 1 as a compares less than, equal to,
// or greater than b. If both sides carry a decimal payload they compare
// at full decimal precision; otherwise they compare as float64, which
// loses precision when one side is a large decimal literal (see the
// design notes' open questions). Peek: does not consume a or b.
func NumberCompare(a, b Value) int {
	if a.kind != KindNumber {
		kindError(KindNumber, a.kind)
	}
	if b.kind != KindNumber {
		kindError(KindNumber, b.kind)
	}
	return numberComparePeek(a, b)
}

func numberComparePeek(a, b Value) int {
	if a.hasPayload && b.hasPayload {
		return decimalCompare(a, b)
	}
	da, db := NumberAsDouble(a), NumberAsDouble(b)
	switch {
	case da < db:
		return -1
	case da == db:
		return 0
	default:
		return 1
	}
}

// NumberHasLiteral reports whether v carries a decimal payload, which
// only NumberWithLiteral in a jv_decimal build produces. Peek: does not
// consume v.
func NumberHasLiteral(v Value) bool {
	if v.kind != KindNumber {
		kindError(KindNumber, v.kind)
	}
	return v.hasPayload
}

// NumberGetLiteral returns v's value formatted as a canonical decimal
// string and true, or ("", false) if v has no preserved decimal payload
// (a native number, including one built from a "nan"/"-nan" literal).
// Peek: does not consume v.
func NumberGetLiteral(v Value) (string, bool) {
	if v.kind != KindNumber {
		kindError(KindNumber, v.kind)
	}
	if !v.hasPayload {
		return "", false
	}
	return decimalLiteral(v)
}
