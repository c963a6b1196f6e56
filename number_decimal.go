//go:build jv_decimal

package jv

import (
	"math"
	"math/big"
	"strings"
)

// decimalPayload is a refcounted heap box around an arbitrary-precision
// decimal value, backed by math/big.Float since no decimal-arithmetic
// library appears anywhere in the retrieval pack (see DESIGN.md). A
// literal never reduces to a decimal payload holding NaN: decimalFromLiteral
// sends "nan"/"-nan" spellings straight to a native NaN Number instead,
// so value is never nil here.
type decimalPayload struct {
	refCounted
	value *big.Float
}

func newDecimalNumber(value *big.Float) Value {
	p := &decimalPayload{refCounted: newRefCounted(), value: value}
	return Value{kind: KindNumber, hasPayload: true, payload: p}
}

// decimalFromLiteral parses text as either the literal "nan" or a JSON
// numeric literal. A bare "nan"/"-nan" spelling carries no payload
// digits, so it reduces to a native NaN Number rather than allocating a
// decimal payload; only a NaN literal that carried actual payload digits
// would need one, and this package never constructs such a value.
func decimalFromLiteral(text string) Value {
	trimmed := strings.TrimSpace(text)
	if strings.EqualFold(trimmed, "nan") || strings.EqualFold(trimmed, "-nan") {
		return Number(math.NaN())
	}

	ctx := acquireDecimalContext()
	defer releaseDecimalContext(ctx)

	f, _, err := big.ParseFloat(trimmed, 10, ctx.precision, big.ToNearestEven)
	if err != nil {
		return Invalid()
	}
	return newDecimalNumber(f)
}

func decimalFreePayload(v Value) {
	p := v.payload.(*decimalPayload)
	p.decr()
}

func decimalAsDouble(v Value) float64 {
	x, _ := v.payload.(*decimalPayload).value.Float64()
	return x
}

func decimalIsNaN(v Value) bool { return false }

func decimalAbs(v Value) Value {
	p := v.payload.(*decimalPayload)
	ctx := acquireDecimalContext()
	defer releaseDecimalContext(ctx)

	result := new(big.Float).SetPrec(ctx.precision).Abs(p.value)
	Free(v)
	return newDecimalNumber(result)
}

func decimalNegate(v Value) Value {
	p := v.payload.(*decimalPayload)
	ctx := acquireDecimalContext()
	defer releaseDecimalContext(ctx)

	result := new(big.Float).SetPrec(ctx.precision).Neg(p.value)
	Free(v)
	return newDecimalNumber(result)
}

// decimalCompare compares two decimal-backed numbers at full precision.
// Per the design notes' open questions, comparing a decimal payload
// against a native float64 still goes through NumberAsDouble and loses
// precision; only this all-decimal path is exact.
func decimalCompare(a, b Value) int {
	pa := a.payload.(*decimalPayload)
	pb := b.payload.(*decimalPayload)
	return pa.value.Cmp(pb.value)
}

// decimalLiteral returns the canonical decimal-formatted string for v's
// value, not the original literal text — large or small magnitudes
// round-trip through scientific notation (e.g. "1E+20") the same way a
// decimal-formatting library would render them.
func decimalLiteral(v Value) (string, bool) {
	p := v.payload.(*decimalPayload)
	return formatDecimal(p.value), true
}

func formatDecimal(f *big.Float) string {
	return strings.Replace(f.Text('g', -1), "e", "E", 1)
}
