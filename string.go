package jv

import (
	"fmt"
	"strings"
)

// stringPayload is a refcounted byte buffer with a lazily computed,
// cached hash. Mutating operations (the String* family that consumes
// and returns a grown string) follow a copy-on-write discipline: a
// payload with refcount 1 is extended in place, anything else is
// copied first.
type stringPayload struct {
	refCounted
	buf    []byte
	hash   uint32
	hashed bool
}

// String returns a value holding a copy of s, with any malformed UTF-8
// replaced by U+FFFD.
func String(s string) Value {
	return StringSized(s, len(s))
}

// StringSized returns a value holding a copy of the first length bytes
// of s (a negative length, or one past len(s), takes all of s), with
// malformed UTF-8 replaced.
func StringSized(s string, length int) Value {
	if length < 0 || length > len(s) {
		length = len(s)
	}
	data := s[:length]
	if !isValidUTF8(data) {
		data = replaceInvalidUTF8(data)
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	return newStringValue(buf)
}

// StringEmpty returns an empty string pre-sized to hold at least
// capacityHint bytes without reallocating.
func StringEmpty(capacityHint int) Value {
	if capacityHint < stringGrowthFloor {
		capacityHint = stringGrowthFloor
	}
	return newStringValue(make([]byte, 0, capacityHint))
}

func newStringValue(buf []byte) Value {
	p := &stringPayload{refCounted: newRefCounted(), buf: buf}
	return Value{kind: KindString, hasPayload: true, payload: p}
}

func freeString(v Value) {
	p := v.payload.(*stringPayload)
	p.decr()
}

// StringValue returns v's content as a Go string. Peek: does not
// consume v.
func StringValue(v Value) string {
	if v.kind != KindString {
		kindError(KindString, v.kind)
	}
	return string(v.payload.(*stringPayload).buf)
}

// StringLengthBytes returns the number of bytes in v. StringLengthBytes
// consumes v.
func StringLengthBytes(v Value) int {
	if v.kind != KindString {
		kindError(KindString, v.kind)
	}
	n := len(v.payload.(*stringPayload).buf)
	Free(v)
	return n
}

// StringLengthCodepoints returns the number of Unicode code points in v,
// counting each malformed byte as one code point. StringLengthCodepoints
// consumes v.
func StringLengthCodepoints(v Value) int {
	if v.kind != KindString {
		kindError(KindString, v.kind)
	}
	n := codepointCount(string(v.payload.(*stringPayload).buf))
	Free(v)
	return n
}

// StringHash returns v's cached 32-bit content hash, computing and
// caching it on first use. StringHash consumes v.
func StringHash(v Value) uint32 {
	if v.kind != KindString {
		kindError(KindString, v.kind)
	}
	h := stringHashPeek(v.payload.(*stringPayload))
	Free(v)
	return h
}

func stringHashPeek(p *stringPayload) uint32 {
	if !p.hashed {
		p.hash = stringHash32(p.buf)
		p.hashed = true
	}
	return p.hash
}

func stringEqualPeek(a, b Value) bool {
	pa := a.payload.(*stringPayload)
	pb := b.payload.(*stringPayload)
	if pa == pb {
		return true
	}
	if len(pa.buf) != len(pb.buf) {
		return false
	}
	if stringHashPeek(pa) != stringHashPeek(pb) {
		return false
	}
	return string(pa.buf) == string(pb.buf)
}

func stringContainsPeek(a, b Value) bool {
	pa := a.payload.(*stringPayload)
	pb := b.payload.(*stringPayload)
	return strings.Contains(string(pa.buf), string(pb.buf))
}

// growCapacity returns the next buffer capacity to use when n bytes no
// longer fit, following arrayPayload's 1.5x growth factor so strings and
// arrays grow at the same rate.
func growCapacity(n int) int {
	capacity := stringGrowthFloor
	for capacity < n {
		capacity = capacity*arraySizeNumerator/arraySizeDenominator + 1
	}
	return capacity
}

// stringAppendBytes implements the copy-on-write append every mutating
// String* operation goes through: extend v's buffer in place if v is
// the sole owner, otherwise allocate a fresh, larger buffer.
func stringAppendBytes(v Value, extra []byte) Value {
	p := v.payload.(*stringPayload)
	if p.unshared() {
		p.buf = append(p.buf, extra...)
		p.hashed = false
		return v
	}
	buf := make([]byte, len(p.buf), growCapacity(len(p.buf)+len(extra)))
	copy(buf, p.buf)
	buf = append(buf, extra...)
	Free(v)
	return newStringValue(buf)
}

// StringAppendBuf appends s to v, replacing malformed UTF-8 in s with
// U+FFFD. StringAppendBuf consumes v.
func StringAppendBuf(v Value, s string) Value {
	if v.kind != KindString {
		kindError(KindString, v.kind)
	}
	if !isValidUTF8(s) {
		s = replaceInvalidUTF8(s)
	}
	return stringAppendBytes(v, []byte(s))
}

// StringAppendCodepoint appends the UTF-8 encoding of cp to v.
// StringAppendCodepoint consumes v.
func StringAppendCodepoint(v Value, cp rune) Value {
	if v.kind != KindString {
		kindError(KindString, v.kind)
	}
	return stringAppendBytes(v, encodeRune(nil, cp))
}

// StringFmt returns a new string built from format and args using Go's
// fmt.Sprintf conventions.
func StringFmt(format string, args ...any) Value {
	return String(fmt.Sprintf(format, args...))
}

// StringAppendFmt appends fmt.Sprintf(format, args...) to v.
// StringAppendFmt consumes v.
func StringAppendFmt(v Value, format string, args ...any) Value {
	return StringAppendBuf(v, fmt.Sprintf(format, args...))
}

// StringConcat returns a and b joined, in that order. StringConcat
// consumes both a and b.
func StringConcat(a, b Value) Value {
	if a.kind != KindString {
		kindError(KindString, a.kind)
	}
	if b.kind != KindString {
		kindError(KindString, b.kind)
	}
	if len(a.payload.(*stringPayload).buf)+len(b.payload.(*stringPayload).buf) > maxInt32 {
		Free(a)
		Free(b)
		return allocFailure("String concatenation result too long")
	}
	extra := append([]byte(nil), b.payload.(*stringPayload).buf...)
	Free(b)
	return stringAppendBytes(a, extra)
}

// StringSlice returns the substring of v spanning code points
// [start, end). Out-of-range bounds clamp to v's length. StringSlice
// consumes v.
func StringSlice(v Value, start, end int) Value {
	if v.kind != KindString {
		kindError(KindString, v.kind)
	}
	data := string(v.payload.(*stringPayload).buf)
	total := codepointCount(data)
	if start < 0 {
		start = 0
	}
	if end > total {
		end = total
	}
	if start >= end {
		Free(v)
		return StringEmpty(0)
	}
	from := codepointToByteOffset(data, start)
	to := codepointToByteOffset(data, end)
	out := data[from:to]
	Free(v)
	return String(out)
}

// StringRepeat returns v concatenated with itself n times. A negative n
// returns Null; a zero n returns an empty string. StringRepeat consumes
// v.
func StringRepeat(v Value, n int) Value {
	if v.kind != KindString {
		kindError(KindString, v.kind)
	}
	if n < 0 {
		Free(v)
		return Null()
	}
	if n == 0 {
		Free(v)
		return StringEmpty(0)
	}
	data := v.payload.(*stringPayload).buf
	if len(data) != 0 && n > maxInt32/len(data) {
		Free(v)
		return allocFailure("Repeat string result too long")
	}
	out := make([]byte, 0, len(data)*n)
	for i := 0; i < n; i++ {
		out = append(out, data...)
	}
	Free(v)
	return newStringValue(out)
}

// StringSplit splits v on every occurrence of sep, returning an array of
// strings. An empty sep splits into individual code points. StringSplit
// consumes both v and sep.
func StringSplit(v, sep Value) Value {
	if v.kind != KindString {
		kindError(KindString, v.kind)
	}
	if sep.kind != KindString {
		kindError(KindString, sep.kind)
	}
	data := StringValue(v)
	delim := StringValue(sep)
	Free(sep)

	var parts []string
	if delim == "" {
		for i := 0; i < len(data); {
			cp, next := decodeNext(data, i)
			if cp == -1 {
				cp = 0xFFFD
			}
			parts = append(parts, string(cp))
			i = next
		}
	} else {
		parts = strings.Split(data, delim)
	}

	result := ArraySized(len(parts))
	Free(v)
	for _, part := range parts {
		result = ArrayAppend(result, String(part))
	}
	return result
}

// StringExplode returns v as an array of its code points, each a Number.
// StringExplode consumes v.
func StringExplode(v Value) Value {
	if v.kind != KindString {
		kindError(KindString, v.kind)
	}
	data := StringValue(v)
	result := ArraySized(codepointCount(data))
	Free(v)
	for i := 0; i < len(data); {
		cp, next := decodeNext(data, i)
		if cp == -1 {
			cp = 0xFFFD
		}
		result = ArrayAppend(result, Number(float64(cp)))
		i = next
	}
	return result
}

// StringImplode builds a string from an array of code-point Numbers.
// StringImplode consumes arr.
func StringImplode(arr Value) Value {
	if arr.kind != KindArray {
		kindError(KindArray, arr.kind)
	}
	n := ArrayLength(Copy(arr))
	buf := make([]byte, 0, n)
	for i := 0; i < n; i++ {
		elem := arrayPeek(arr, i)
		buf = encodeRune(buf, rune(int32(NumberAsDouble(elem))))
		Free(elem)
	}
	Free(arr)
	return newStringValue(buf)
}
