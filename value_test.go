package jv

import "testing"

func TestKindConstructors(t *testing.T) {
	cases := []struct {
		v    Value
		want Kind
	}{
		{Null(), KindNull},
		{True(), KindTrue},
		{False(), KindFalse},
		{Bool(true), KindTrue},
		{Bool(false), KindFalse},
		{Number(1), KindNumber},
		{String("x"), KindString},
		{Array(), KindArray},
		{Object(), KindObject},
		{Invalid(), KindInvalid},
	}
	for _, c := range cases {
		if got := GetKind(c.v); got != c.want {
			t.Errorf("GetKind = %v, want %v", got, c.want)
		}
		Free(c.v)
	}
}

func TestIsValid(t *testing.T) {
	if !IsValid(Null()) {
		t.Error("Null() should be valid")
	}
	if IsValid(Invalid()) {
		t.Error("Invalid() should not be valid")
	}
}

func TestCopyIncrementsRefcount(t *testing.T) {
	v := Array()
	if GetRefcount(v) != 1 {
		t.Fatalf("fresh array refcount = %d, want 1", GetRefcount(v))
	}
	c := Copy(v)
	if GetRefcount(v) != 2 {
		t.Fatalf("after Copy refcount = %d, want 2", GetRefcount(v))
	}
	Free(c)
	if GetRefcount(v) != 1 {
		t.Fatalf("after freeing copy refcount = %d, want 1", GetRefcount(v))
	}
	Free(v)
}

func TestEqualAcrossKinds(t *testing.T) {
	if !Equal(Null(), Null()) {
		t.Error("Null() should equal Null()")
	}
	if Equal(Null(), False()) {
		t.Error("Null() should not equal False()")
	}
	if !Equal(Number(1), Number(1)) {
		t.Error("Number(1) should equal Number(1)")
	}
	if !Equal(String("ab"), String("ab")) {
		t.Error("equal strings should compare equal")
	}
	if Equal(String("ab"), String("ac")) {
		t.Error("unequal strings should not compare equal")
	}
}

func TestIdenticalDistinctFromEqual(t *testing.T) {
	a := String("same")
	b := String("same")
	if !Equal(Copy(a), Copy(b)) {
		t.Fatal("two independently built equal strings should be Equal")
	}
	if Identical(a, b) {
		t.Fatal("two independently allocated strings should not be Identical")
	}
}

func TestIdenticalSameHandle(t *testing.T) {
	a := String("same")
	b := Copy(a)
	if !Identical(a, b) {
		t.Fatal("a Value and its Copy should be Identical")
	}
}

func TestContainsString(t *testing.T) {
	if !Contains(String("hello world"), String("world")) {
		t.Error("Contains should find substring")
	}
	if Contains(String("hello"), String("world")) {
		t.Error("Contains should not find absent substring")
	}
}

func TestWrongKindPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic for wrong-kind access")
		} else if _, ok := r.(*KindError); !ok {
			t.Fatalf("expected *KindError panic, got %T", r)
		}
	}()
	StringValue(Number(1))
}
