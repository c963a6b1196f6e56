package jv

import "errors"

// Sentinel errors for genuine programmer mistakes — calling an operation
// on a Value of the wrong Kind, or freeing a handle whose refcount has
// already hit zero. These panic rather than return: a kind mismatch is a
// bug in the caller, not a recoverable runtime condition.
//
// Value-level failures — a bad index, an oversized container, a
// malformed decimal literal — are never Go errors. They surface as a
// Value of KindInvalid: index and size failures carry a message, a
// malformed decimal literal yields a bare Invalid.
var (
	// ErrWrongKind is wrapped by KindError.
	ErrWrongKind = errors.New("jv: wrong kind")

	// ErrDoubleFree is wrapped by RefcountError.
	ErrDoubleFree = errors.New("jv: double free")

	// ErrAlloc is wrapped by AllocError.
	ErrAlloc = errors.New("jv: allocation bound exceeded")
)

// OnAllocFailure, if non-nil, is called with a human-readable reason
// whenever a deliberately bounded growth path (array index ceiling,
// object slot ceiling, string repeat/concat size) would exceed that
// bound. Go's own allocator already aborts the process on genuine OOM;
// this hook exists only for the bounds this package enforces itself
// before ever calling into the allocator, for the cases this library
// chooses not to let grow unbounded. The default is nil: growth
// ceilings silently surface as an Invalid value, exactly as they do
// without the hook.
var OnAllocFailure func(reason string)

// allocFailure runs OnAllocFailure (if set) and returns an Invalid value
// carrying reason, the construction every growth-ceiling error in this
// package goes through.
func allocFailure(reason string) Value {
	if OnAllocFailure != nil {
		OnAllocFailure(reason)
	}
	return invalidf(reason)
}

// AllocError reports that a bounded growth path exceeded its ceiling.
type AllocError struct {
	Reason string
}

func (e *AllocError) Error() string { return "jv: " + e.Reason }

func (e *AllocError) Unwrap() error { return ErrAlloc }

// kindError panics, naming the Kind an operation expected and the Kind
// it actually received.
func kindError(want, got Kind) {
	panic(&KindError{Want: want, Got: got})
}

// KindError reports that an operation expected a Value of Kind Want but
// was given one of Kind Got.
type KindError struct {
	Want Kind
	Got  Kind
}

func (e *KindError) Error() string {
	return "jv: expected " + e.Want.String() + ", got " + e.Got.String()
}

func (e *KindError) Unwrap() error { return ErrWrongKind }

// refcountError panics with a RefcountError.
func refcountError() {
	panic(&RefcountError{})
}

// RefcountError reports that Free observed a payload refcount that had
// already reached zero.
type RefcountError struct{}

func (e *RefcountError) Error() string { return "jv: refcount underflow" }

func (e *RefcountError) Unwrap() error { return ErrDoubleFree }
