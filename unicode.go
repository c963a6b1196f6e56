package jv

import "unicode/utf8"

// decodeNext's "cp == -1 means malformed" convention maps directly onto
// utf8.DecodeRuneInString's RuneError/size-1 signal, so this file stays
// a thin adapter over the standard decoder rather than a hand-rolled one.

// decodeNext reads the next code point starting at data[pos]. It returns
// the code point (or -1 if the byte at pos begins a malformed sequence)
// and the position immediately after the consumed bytes. Callers that
// see -1 should treat it as one malformed byte and substitute U+FFFD.
func decodeNext(data string, pos int) (cp rune, next int) {
	if pos >= len(data) {
		return 0, pos
	}
	r, size := utf8.DecodeRuneInString(data[pos:])
	if r == utf8.RuneError && size <= 1 {
		return -1, pos + 1
	}
	return r, pos + size
}

// encodeRune appends the UTF-8 encoding of cp to buf and returns the
// extended slice.
func encodeRune(buf []byte, cp rune) []byte {
	var tmp [utf8.UTFMax]byte
	n := utf8.EncodeRune(tmp[:], cp)
	return append(buf, tmp[:n]...)
}

// isValidUTF8 reports whether data is entirely well-formed UTF-8.
func isValidUTF8(data string) bool {
	return utf8.ValidString(data)
}

// replaceInvalidUTF8 copies data, replacing every malformed byte or
// sequence with U+FFFD.
func replaceInvalidUTF8(data string) string {
	out := make([]byte, 0, len(data)*3+1)
	for i := 0; i < len(data); {
		cp, next := decodeNext(data, i)
		if cp == -1 {
			cp = 0xFFFD
		}
		out = encodeRune(out, cp)
		i = next
	}
	return string(out)
}

// codepointCount walks data as UTF-8 and returns the number of code
// points, treating each malformed byte as one code point.
func codepointCount(data string) int {
	n := 0
	for i := 0; i < len(data); {
		_, next := decodeNext(data, i)
		n++
		i = next
	}
	return n
}

// codepointToByteOffset converts a code-point index within data to the
// byte offset at which that code point begins. If idx is past the last
// code point it returns len(data).
func codepointToByteOffset(data string, idx int) int {
	pos := 0
	for i := 0; i < idx && pos < len(data); i++ {
		_, pos = decodeNext(data, pos)
	}
	return pos
}
