package jv

import "testing"

func TestArrayAppendAndGet(t *testing.T) {
	a := Array()
	a = ArrayAppend(a, Number(1))
	a = ArrayAppend(a, Number(2))
	a = ArrayAppend(a, Number(3))
	if n := ArrayLength(Copy(a)); n != 3 {
		t.Fatalf("ArrayLength = %d, want 3", n)
	}
	if got := NumberAsDouble(ArrayGet(Copy(a), 1)); got != 2 {
		t.Fatalf("ArrayGet(1) = %v, want 2", got)
	}
	Free(a)
}

func TestArrayGetOutOfRangeIsNull(t *testing.T) {
	a := Array()
	a = ArrayAppend(a, Number(1))
	if got := ArrayGet(Copy(a), 5); GetKind(got) != KindNull {
		t.Fatalf("ArrayGet out of range = %v, want null", GetKind(got))
	}
	if got := ArrayGet(Copy(a), -1); GetKind(got) != KindNull {
		t.Fatalf("ArrayGet negative index = %v, want null", GetKind(got))
	}
	Free(a)
}

func TestArraySetGrowsWithNulls(t *testing.T) {
	a := ArraySized(0)
	a = ArraySetIndex(a, 3, String("x"))
	if n := ArrayLength(Copy(a)); n != 4 {
		t.Fatalf("ArrayLength after ArraySetIndex(3,...) = %d, want 4", n)
	}
	for i := 0; i < 3; i++ {
		if got := ArrayGet(Copy(a), i); GetKind(got) != KindNull {
			t.Errorf("element %d = %v, want null", i, GetKind(got))
		}
	}
	if got := StringValue(ArrayGet(Copy(a), 3)); got != "x" {
		t.Fatalf("element 3 = %q, want %q", got, "x")
	}
	Free(a)
}

func TestArraySetNegativeIndexInvalid(t *testing.T) {
	a := Array()
	a = ArraySetIndex(a, -1, Number(1))
	if IsValid(a) {
		t.Fatal("ArraySetIndex with negative index should be Invalid")
	}
	Free(a)
}

func TestArrayConcat(t *testing.T) {
	a := Array()
	a = ArrayAppend(a, Number(1))
	b := Array()
	b = ArrayAppend(b, Number(2))
	b = ArrayAppend(b, Number(3))
	c := ArrayConcat(a, b)
	if n := ArrayLength(Copy(c)); n != 3 {
		t.Fatalf("ArrayConcat length = %d, want 3", n)
	}
	Free(c)
}

func TestArraySlice(t *testing.T) {
	a := Array()
	for i := 0; i < 5; i++ {
		a = ArrayAppend(a, Number(float64(i)))
	}
	s := ArraySlice(a, 1, 3)
	if n := ArrayLength(Copy(s)); n != 2 {
		t.Fatalf("ArraySlice length = %d, want 2", n)
	}
	if got := NumberAsDouble(ArrayGet(Copy(s), 0)); got != 1 {
		t.Fatalf("ArraySlice[0] = %v, want 1", got)
	}
	Free(s)
}

func TestArrayCopyOnWrite(t *testing.T) {
	a := Array()
	a = ArrayAppend(a, Number(1))
	b := Copy(a)
	a = ArrayAppend(a, Number(2))
	if n := ArrayLength(Copy(b)); n != 1 {
		t.Fatalf("mutating a copy should not affect b: len(b) = %d, want 1", n)
	}
	if n := ArrayLength(Copy(a)); n != 2 {
		t.Fatalf("len(a) = %d, want 2", n)
	}
	Free(a)
	Free(b)
}

func TestArrayEqual(t *testing.T) {
	build := func() Value {
		a := Array()
		a = ArrayAppend(a, Number(1))
		a = ArrayAppend(a, String("x"))
		return a
	}
	if !Equal(build(), build()) {
		t.Fatal("structurally identical arrays should be Equal")
	}
}

func TestArrayIndexesSubarraySearch(t *testing.T) {
	a := Array()
	for _, x := range []float64{1, 2, 3, 1, 2} {
		a = ArrayAppend(a, Number(x))
	}
	needle := Array()
	needle = ArrayAppend(needle, Number(1))
	needle = ArrayAppend(needle, Number(2))
	idx := ArrayIndexes(a, needle)
	// Every match overwrites index 0 instead of appending, so only the
	// last match's start index survives.
	if n := ArrayLength(Copy(idx)); n != 1 {
		t.Fatalf("ArrayIndexes result length = %d, want 1 (clobbering quirk)", n)
	}
	if got := NumberAsDouble(ArrayGet(idx, 0)); got != 3 {
		t.Fatalf("ArrayIndexes surviving index = %v, want 3", got)
	}
}
