package jv

import "testing"

func TestDecodeNextMalformed(t *testing.T) {
	data := "a\xffb"
	cp, next := decodeNext(data, 1)
	if cp != -1 {
		t.Fatalf("decodeNext malformed byte: got cp=%d, want -1", cp)
	}
	if next != 2 {
		t.Fatalf("decodeNext malformed byte: got next=%d, want 2", next)
	}
}

func TestReplaceInvalidUTF8(t *testing.T) {
	got := replaceInvalidUTF8("a\xffb")
	want := "a�b"
	if got != want {
		t.Fatalf("replaceInvalidUTF8 = %q, want %q", got, want)
	}
}

func TestCodepointCount(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"héllo", 5},
		{"日本語", 3},
	}
	for _, c := range cases {
		if got := codepointCount(c.in); got != c.want {
			t.Errorf("codepointCount(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestCodepointToByteOffset(t *testing.T) {
	data := "日本語"
	off := codepointToByteOffset(data, 2)
	if data[off:] != "語" {
		t.Fatalf("codepointToByteOffset(2) landed at %q, want %q", data[off:], "語")
	}
	if got := codepointToByteOffset(data, 10); got != len(data) {
		t.Fatalf("codepointToByteOffset past end = %d, want %d", got, len(data))
	}
}
