package jv

import "testing"

// allocDelta runs fn and reports how LiveAllocations changed across the
// call, the way a C allocator shim would report bytes outstanding
// before and after a sequence of jv_free calls.
func allocDelta(fn func()) int64 {
	before := LiveAllocations()
	fn()
	return LiveAllocations() - before
}

func TestFreeReleasesExactlyOnce(t *testing.T) {
	delta := allocDelta(func() {
		v := Array()
		v = ArrayAppend(v, String("x"))
		v = ArrayAppend(v, Object())
		Free(v)
	})
	if delta != 0 {
		t.Fatalf("LiveAllocations changed by %d after a balanced build/free, want 0", delta)
	}
}

func TestCopyThenFreeBothLeavesNoLeak(t *testing.T) {
	delta := allocDelta(func() {
		v := String("shared")
		c := Copy(v)
		Free(c)
		Free(v)
	})
	if delta != 0 {
		t.Fatalf("LiveAllocations changed by %d after Copy+Free+Free, want 0", delta)
	}
}

func TestDoubleFreePanics(t *testing.T) {
	v := String("x")
	Free(v)
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic on double free")
		} else if _, ok := r.(*RefcountError); !ok {
			t.Fatalf("expected *RefcountError panic, got %T", r)
		}
	}()
	Free(v)
}

func TestNestedObjectTreeFullyReleased(t *testing.T) {
	delta := allocDelta(func() {
		inner := Object()
		inner = ObjectSet(inner, String("a"), Number(1))
		outer := Array()
		outer = ArrayAppend(outer, inner)
		outer = ArrayAppend(outer, String("tail"))
		Free(outer)
	})
	if delta != 0 {
		t.Fatalf("LiveAllocations changed by %d after freeing a nested tree, want 0", delta)
	}
}
