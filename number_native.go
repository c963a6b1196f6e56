//go:build !jv_decimal

package jv

import (
	"math"
	"strconv"
	"strings"
)

// decimalFromLiteral is the no-decimal-build fallback: it parses text as
// a float64 and discards the original text, so the resulting Number
// never carries a payload and NumberHasLiteral reports false for it.
func decimalFromLiteral(text string) Value {
	if strings.EqualFold(text, "nan") || strings.EqualFold(text, "-nan") {
		return Number(math.NaN())
	}
	x, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return Invalid()
	}
	return Number(x)
}

// The decimal* functions below are only reachable through a Value whose
// hasPayload is true, which decimalFromLiteral above never produces in
// this build. They stay as plain float64 fallbacks rather than panics so
// that a Value manufactured by reflection or a future code path still
// behaves sanely.

func decimalFreePayload(v Value) {}

func decimalAsDouble(v Value) float64 { return v.number }

func decimalIsNaN(v Value) bool { return math.IsNaN(v.number) }

func decimalAbs(v Value) Value { return Number(math.Abs(v.number)) }

func decimalNegate(v Value) Value { return Number(-v.number) }

func decimalCompare(a, b Value) int {
	switch {
	case a.number < b.number:
		return -1
	case a.number == b.number:
		return 0
	default:
		return 1
	}
}

func decimalLiteral(v Value) (string, bool) { return "", false }
