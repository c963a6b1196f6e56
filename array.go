package jv

// arrayPayload is a refcounted, contiguous run of owned element Values.
// This package resolves the "slice aliasing optional" open question by
// not aliasing: ArraySlice always materializes a fresh payload rather
// than sharing a backing buffer through Value's offset/size window,
// trading the O(1) slice an aliased window would enable for never
// having to reason about a partially-dead shared backing array under
// refcounting. offset is always 0 and size always equals len(elements)
// for every array Value this package produces.
type arrayPayload struct {
	refCounted
	elements []Value
}

// Array returns an empty array.
func Array() Value { return ArraySized(0) }

// ArraySized returns an empty array pre-sized to hold at least n
// elements without reallocating.
func ArraySized(n int) Value {
	if n < 0 {
		n = 0
	}
	p := &arrayPayload{refCounted: newRefCounted(), elements: make([]Value, 0, arrayGrowCapacity(n))}
	return Value{kind: KindArray, hasPayload: true, size: 0, payload: p}
}

func arrayGrowCapacity(n int) int {
	capacity := DefaultArrayCapacity
	for capacity < n {
		capacity = capacity*arraySizeNumerator/arraySizeDenominator + 1
	}
	return capacity
}

func freeArray(v Value) {
	p := v.payload.(*arrayPayload)
	if p.decr() {
		for _, e := range p.elements {
			Free(e)
		}
	}
}

// ArrayLength returns the number of elements in v. ArrayLength consumes v.
func ArrayLength(v Value) int {
	if v.kind != KindArray {
		kindError(KindArray, v.kind)
	}
	n := len(v.payload.(*arrayPayload).elements)
	Free(v)
	return n
}

// arrayPeek returns a new owned reference to v's element at i, without
// consuming v. Panics if i is out of range; callers must bounds-check.
func arrayPeek(v Value, i int) Value {
	return Copy(v.payload.(*arrayPayload).elements[i])
}

// arrayUnshare returns a payload v's caller may mutate freely, copying
// the backing elements first if v's payload has any other owner.
// arrayUnshare consumes v and returns a replacement Value alongside the
// now-exclusive payload.
func arrayUnshare(v Value) (*arrayPayload, Value) {
	p := v.payload.(*arrayPayload)
	if p.unshared() {
		return p, v
	}
	elements := make([]Value, len(p.elements), arrayGrowCapacity(len(p.elements)))
	for i, e := range p.elements {
		elements[i] = Copy(e)
	}
	np := &arrayPayload{refCounted: newRefCounted(), elements: elements}
	nv := Value{kind: KindArray, hasPayload: true, size: v.size, payload: np}
	Free(v)
	return np, nv
}

// ArrayGet returns a copy of v's element at index i, or Null() if i is
// out of range. ArrayGet consumes v.
func ArrayGet(v Value, i int) Value {
	if v.kind != KindArray {
		kindError(KindArray, v.kind)
	}
	p := v.payload.(*arrayPayload)
	var result Value
	if i < 0 || i >= len(p.elements) {
		result = Null()
	} else {
		result = Copy(p.elements[i])
	}
	Free(v)
	return result
}

// ArraySetIndex replaces v's element at index i with elem, growing v
// (padding with Null()) as needed. A negative i frees both arguments and
// returns an Invalid value carrying "Out of bounds negative array
// index"; an i at or beyond MaxIndex returns one carrying "Array index
// too large". ArraySetIndex consumes both v and elem.
func ArraySetIndex(v Value, i int, elem Value) Value {
	if v.kind != KindArray {
		kindError(KindArray, v.kind)
	}
	if i < 0 {
		Free(v)
		Free(elem)
		return invalidf("Out of bounds negative array index")
	}
	if i >= MaxIndex {
		Free(v)
		Free(elem)
		return allocFailure("Array index too large")
	}
	p, v := arrayUnshare(v)
	for len(p.elements) <= i {
		if len(p.elements) == cap(p.elements) {
			grown := make([]Value, len(p.elements), arrayGrowCapacity(len(p.elements)+1))
			copy(grown, p.elements)
			p.elements = grown
		}
		p.elements = append(p.elements, Null())
	}
	Free(p.elements[i])
	p.elements[i] = elem
	v.size = uint32(len(p.elements))
	return v
}

// ArrayAppend appends elem to the end of v. ArrayAppend consumes both v
// and elem.
func ArrayAppend(v, elem Value) Value {
	if v.kind != KindArray {
		kindError(KindArray, v.kind)
	}
	p, v := arrayUnshare(v)
	if len(p.elements) == cap(p.elements) {
		grown := make([]Value, len(p.elements), arrayGrowCapacity(len(p.elements)+1))
		copy(grown, p.elements)
		p.elements = grown
	}
	p.elements = append(p.elements, elem)
	v.size = uint32(len(p.elements))
	return v
}

// ArrayConcat appends every element of b to a, in order. ArrayConcat
// consumes both a and b.
func ArrayConcat(a, b Value) Value {
	if a.kind != KindArray {
		kindError(KindArray, a.kind)
	}
	if b.kind != KindArray {
		kindError(KindArray, b.kind)
	}
	n := len(b.payload.(*arrayPayload).elements)
	for i := 0; i < n; i++ {
		a = ArrayAppend(a, arrayPeek(b, i))
	}
	Free(b)
	return a
}

// ArraySlice returns the elements of v in [start, end), clamped to v's
// bounds, as a new array. ArraySlice consumes v.
func ArraySlice(v Value, start, end int) Value {
	if v.kind != KindArray {
		kindError(KindArray, v.kind)
	}
	p := v.payload.(*arrayPayload)
	n := len(p.elements)
	if start < 0 {
		start = 0
	}
	if end > n {
		end = n
	}
	if start >= end {
		Free(v)
		return Array()
	}
	result := ArraySized(end - start)
	for i := start; i < end; i++ {
		result = ArrayAppend(result, Copy(p.elements[i]))
	}
	Free(v)
	return result
}

// ArrayIndexes returns an array of every start index ai in v at which
// the subarray v[ai:ai+len(elem)] equals elem elementwise, comparing
// with Equal. Note: the result array is built by repeatedly overwriting
// index 0, so any match beyond the first reuses (and thus clobbers)
// that slot's prior content rather than appending — see the design
// notes' open questions. ArrayIndexes consumes both v and elem.
func ArrayIndexes(v, elem Value) Value {
	if v.kind != KindArray {
		kindError(KindArray, v.kind)
	}
	if elem.kind != KindArray {
		kindError(KindArray, elem.kind)
	}
	pa := v.payload.(*arrayPayload)
	pb := elem.payload.(*arrayPayload)
	na, nb := len(pa.elements), len(pb.elements)
	result := Array()
	for ai := 0; ai+nb <= na; ai++ {
		match := true
		for j := 0; j < nb; j++ {
			if !equalPeek(pa.elements[ai+j], pb.elements[j]) {
				match = false
				break
			}
		}
		if match {
			result = ArraySetIndex(result, 0, Number(float64(ai)))
		}
	}
	Free(v)
	Free(elem)
	return result
}

func arrayEqualPeek(a, b Value) bool {
	pa := a.payload.(*arrayPayload)
	pb := b.payload.(*arrayPayload)
	if pa == pb {
		return true
	}
	if len(pa.elements) != len(pb.elements) {
		return false
	}
	for i := range pa.elements {
		if !equalPeek(pa.elements[i], pb.elements[i]) {
			return false
		}
	}
	return true
}

// arrayContainsPeek implements Contains for two arrays: every element of
// b must be contained in at least one element of a.
func arrayContainsPeek(a, b Value) bool {
	pa := a.payload.(*arrayPayload)
	pb := b.payload.(*arrayPayload)
	for _, eb := range pb.elements {
		found := false
		for _, ea := range pa.elements {
			if containsPeek(ea, eb) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
