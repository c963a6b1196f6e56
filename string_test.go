package jv

import "testing"

func TestStringValueRoundTrip(t *testing.T) {
	if got := StringValue(String("hello")); got != "hello" {
		t.Fatalf("StringValue = %q, want %q", got, "hello")
	}
}

func TestStringLengthBytesAndCodepoints(t *testing.T) {
	if n := StringLengthBytes(String("日本語")); n != 9 {
		t.Fatalf("StringLengthBytes = %d, want 9", n)
	}
	if n := StringLengthCodepoints(String("日本語")); n != 3 {
		t.Fatalf("StringLengthCodepoints = %d, want 3", n)
	}
}

func TestStringMalformedUTF8Replaced(t *testing.T) {
	got := StringValue(String("a\xffb"))
	if got != "a�b" {
		t.Fatalf("String() with malformed UTF-8 = %q, want %q", got, "a�b")
	}
}

func TestStringConcat(t *testing.T) {
	got := StringValue(StringConcat(String("foo"), String("bar")))
	if got != "foobar" {
		t.Fatalf("StringConcat = %q, want %q", got, "foobar")
	}
}

func TestStringConcatCopyOnWrite(t *testing.T) {
	a := String("foo")
	b := Copy(a)
	a = StringConcat(a, String("bar"))
	if StringValue(b) != "foo" {
		t.Fatalf("mutating a copy should not affect b: got %q, want %q", StringValue(b), "foo")
	}
	if StringValue(a) != "foobar" {
		t.Fatalf("a = %q, want %q", StringValue(a), "foobar")
	}
	Free(a)
	Free(b)
}

func TestStringSlice(t *testing.T) {
	got := StringValue(StringSlice(String("日本語"), 1, 3))
	if got != "本語" {
		t.Fatalf("StringSlice(1,3) = %q, want %q", got, "本語")
	}
}

func TestStringRepeat(t *testing.T) {
	if got := StringValue(StringRepeat(String("ab"), 3)); got != "ababab" {
		t.Fatalf("StringRepeat = %q, want %q", got, "ababab")
	}
	if got := StringValue(StringRepeat(String("ab"), 0)); got != "" {
		t.Fatalf("StringRepeat(0) = %q, want empty", got)
	}
}

func TestStringRepeatNegativeIsNull(t *testing.T) {
	got := StringRepeat(String("ab"), -1)
	if GetKind(got) != KindNull {
		t.Fatalf("StringRepeat(-1) kind = %v, want null", GetKind(got))
	}
}

func TestStringRepeatOverflow(t *testing.T) {
	got := StringRepeat(String("ab"), 1<<30)
	if GetKind(got) != KindInvalid {
		t.Fatalf("StringRepeat overflow kind = %v, want invalid", GetKind(got))
	}
	if !InvalidHasMessage(got) {
		t.Fatal("StringRepeat overflow should carry a message")
	}
}

func TestStringSplitTrailingEmpty(t *testing.T) {
	parts := StringSplit(String("a,b,"), String(","))
	var got []string
	for i, n := 0, ArrayLength(Copy(parts)); i < n; i++ {
		got = append(got, StringValue(ArrayGet(Copy(parts), i)))
	}
	Free(parts)
	want := []string{"a", "b", ""}
	if len(got) != len(want) {
		t.Fatalf("StringSplit parts = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("StringSplit parts = %v, want %v", got, want)
		}
	}
}

func TestStringExplodeImplode(t *testing.T) {
	original := "héllo"
	exploded := StringExplode(String(original))
	imploded := StringImplode(exploded)
	if got := StringValue(imploded); got != original {
		t.Fatalf("explode/implode round trip = %q, want %q", got, original)
	}
}

func TestStringHashEqualForEqualContent(t *testing.T) {
	a := StringHash(String("same"))
	b := StringHash(String("same"))
	if a != b {
		t.Fatalf("StringHash not consistent for equal content: %d != %d", a, b)
	}
}

func TestStringContains(t *testing.T) {
	if !Contains(String("hello world"), String("lo wo")) {
		t.Error("Contains should find the substring")
	}
}

func TestStringFmt(t *testing.T) {
	got := StringValue(StringFmt("%s=%d", "x", 5))
	if got != "x=5" {
		t.Fatalf("StringFmt = %q, want %q", got, "x=5")
	}
}
