package jv

import "sync/atomic"

// liveAllocations counts heap payload headers that have been allocated
// via newRefCounted but not yet torn down to a refcount of zero. Tests
// use LiveAllocations to check that every Free matches an allocation.
var liveAllocations int64

// LiveAllocations reports the number of payload headers currently
// allocated and not yet freed. Exposed for tests only.
func LiveAllocations() int64 { return atomic.LoadInt64(&liveAllocations) }

// refCounted is the header every heap payload embeds. A single
// non-atomic counter backs it — payloads are not safe to mutate from
// more than one goroutine at a time; mutation in place is only safe
// once the mutating goroutine has observed a refcount of 1.
type refCounted struct {
	count int32
}

// payload is implemented by every heap-allocated Value representation
// (invalidPayload, decimalPayload, stringPayload, arrayPayload,
// objectPayload) so Copy and GetRefcount can reach the shared counter
// without a type switch on Kind.
type payload interface {
	rc() *refCounted
}

func (r *refCounted) rc() *refCounted { return r }

// incr bumps the refcount, as Copy does for any Value with a heap
// payload.
func (r *refCounted) incr() {
	r.count++
}

// decr drops the refcount and reports whether it reached zero, meaning
// the caller owns the last reference and must tear the payload down.
func (r *refCounted) decr() bool {
	if r.count <= 0 {
		refcountError()
	}
	r.count--
	if r.count == 0 {
		atomic.AddInt64(&liveAllocations, -1)
		return true
	}
	return false
}

// unshared reports whether this payload has exactly one owner, the
// precondition for mutating it in place instead of copying it first.
func (r *refCounted) unshared() bool {
	if r.count <= 0 {
		refcountError()
	}
	return r.count == 1
}

// newRefCounted returns a freshly allocated, uniquely-owned header.
func newRefCounted() refCounted {
	atomic.AddInt64(&liveAllocations, 1)
	return refCounted{count: 1}
}
