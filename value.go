package jv

import "math"

// Value is the fixed-size, trivially copyable handle every operation in
// this package passes by value. It is either an inline primitive (Null,
// True, False, or a native float64 Number) or a handle onto a
// refcounted heap payload (a decimal Number, a String, an Array, or an
// Object).
//
// The zero Value is KindInvalid with no payload — the same as Invalid().
type Value struct {
	kind       Kind
	hasPayload bool
	offset     uint32 // array slice window start
	size       uint32 // array slice window length, or object bucket count
	number     float64
	payload    payload
}

// Null returns the null value.
func Null() Value { return Value{kind: KindNull} }

// True returns the boolean value true.
func True() Value { return Value{kind: KindTrue} }

// False returns the boolean value false.
func False() Value { return Value{kind: KindFalse} }

// Bool returns True() or False() depending on b.
func Bool(b bool) Value {
	if b {
		return True()
	}
	return False()
}

// GetKind reports v's Kind. Peek: does not consume v.
func GetKind(v Value) Kind { return v.kind }

// IsValid reports whether v's Kind is anything other than KindInvalid.
// Peek: does not consume v.
func IsValid(v Value) bool { return v.kind != KindInvalid }

// GetRefcount reports the live refcount backing v, or 1 if v carries no
// heap payload. Peek: does not consume v.
func GetRefcount(v Value) int {
	if v.hasPayload {
		return int(v.payload.rc().count)
	}
	return 1
}

// Copy returns another owned reference to the same logical value,
// incrementing the backing payload's refcount if v has one. v itself
// remains valid and owned by the caller — Copy does not consume its
// argument, it duplicates ownership of it.
func Copy(v Value) Value {
	if v.hasPayload {
		v.payload.rc().incr()
	}
	return v
}

// Free releases the reference v represents. If v is the last owner of a
// heap payload, the payload — and everything it owns — is torn down.
// Free consumes v; using v after calling Free is a use-after-free.
func Free(v Value) {
	switch v.kind {
	case KindArray:
		freeArray(v)
	case KindString:
		freeString(v)
	case KindObject:
		freeObject(v)
	case KindInvalid:
		freeInvalid(v)
	case KindNumber:
		freeNumber(v)
	}
}

// Equal reports whether a and b hold the same JSON-equivalent value.
// Equal consumes both a and b.
func Equal(a, b Value) bool {
	r := equalPeek(a, b)
	Free(a)
	Free(b)
	return r
}

// equalPeek is Equal's logic without the consuming Free calls, so other
// operations (array/object element comparison, Contains) can reuse it
// without double-freeing their inputs.
func equalPeek(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	if a.hasPayload && b.hasPayload && a.offset == b.offset && a.size == b.size && a.payload == b.payload {
		return true
	}
	switch a.kind {
	case KindNumber:
		return numberComparePeek(a, b) == 0
	case KindArray:
		return arrayEqualPeek(a, b)
	case KindString:
		return stringEqualPeek(a, b)
	case KindObject:
		return objectEqualPeek(a, b)
	default:
		return true
	}
}

// Identical reports whether a and b are bit-for-bit the same descriptor:
// same kind, same slice window, and (for heap values) the same payload
// pointer. Unlike Equal, two equal-but-independently-allocated strings
// are not Identical, while two native NaN Numbers with the same bit
// pattern are Identical even though Equal reports them unequal.
// Identical consumes both a and b.
func Identical(a, b Value) bool {
	var r bool
	switch {
	case a.kind != b.kind || a.offset != b.offset || a.size != b.size || a.hasPayload != b.hasPayload:
		r = false
	case a.hasPayload:
		r = a.payload == b.payload
	default:
		r = math.Float64bits(a.number) == math.Float64bits(b.number)
	}
	Free(a)
	Free(b)
	return r
}

// Contains reports whether b is structurally contained in a: for
// objects, every key of b is present in a with a containing value; for
// arrays, every element of b is contained in some element of a; for
// strings, b is a substring of a (or b is empty); for every other kind,
// Contains is Equal. Contains consumes both a and b.
func Contains(a, b Value) bool {
	r := containsPeek(a, b)
	Free(a)
	Free(b)
	return r
}

func containsPeek(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindObject:
		return objectContainsPeek(a, b)
	case KindArray:
		return arrayContainsPeek(a, b)
	case KindString:
		return stringContainsPeek(a, b)
	default:
		return equalPeek(a, b)
	}
}
