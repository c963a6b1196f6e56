// Package jv provides the core JSON-compatible value representation that a
// higher-level expression language (parser, VM, bytecode, built-ins) builds
// on. It is not a JSON encoder/decoder, an expression language, or an I/O
// library — those are external collaborators.
//
// A Value is a small, fixed-size, trivially copyable descriptor: either an
// inline primitive (null, a boolean, a native float64) or a handle onto a
// refcounted heap payload (a decimal number, a string, an array, or an
// object). Values are immutable from the outside; mutation only happens
// in place when a payload is observed to be uniquely held (copy-on-write).
//
// # Ownership
//
// Every exported mutator consumes the Values it's given and returns a new
// one — copy/free bookkeeping flows linearly through the API:
//
//	a := jv.Array()
//	a = jv.ArrayAppend(a, jv.Number(1))
//	a = jv.ArrayAppend(a, jv.Number(2))
//	defer jv.Free(a)
//
// Call Copy to keep a Value alive across a call that would otherwise
// consume it:
//
//	b := jv.ArrayAppend(jv.Copy(a), jv.Number(3)) // a is still valid
//
// Functions documented as "peek" do not consume their arguments; they leave
// ownership with the caller.
//
// # Build tags
//
// By default numbers are represented as native float64s. Building with the
// jv_decimal tag additionally enables NumberWithLiteral's arbitrary-precision
// decimal path, preserving the exact value of numbers too large or too
// precise for float64 (NumberGetLiteral reports it in a canonical format,
// not the original spelling), at the cost of pulling in math/big.
//
// # File organization
//
//   - kind.go: the Kind tag and its display names
//   - refcount.go: the shared refcounted payload header
//   - unicode.go: UTF-8 helpers
//   - hash.go: the string hash function
//   - value.go: the Value handle and top-level operations (copy, free,
//     equal, identical, contains)
//   - invalid.go: the error-carrying Invalid variant
//   - number.go, number_native.go, number_decimal.go: the Number kind
//   - decctx.go: the decimal arithmetic context (jv_decimal only)
//   - string.go: the String kind
//   - array.go: the Array kind
//   - object.go: the Object kind, a chained hash table
package jv
