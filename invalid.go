package jv

// invalidPayload backs an error-carrying Invalid value.
type invalidPayload struct {
	refCounted
	message Value
}

// Invalid returns a bare invalid value with no message.
func Invalid() Value { return Value{kind: KindInvalid} }

// InvalidWithMessage returns an invalid value carrying msg as its error
// message. InvalidWithMessage consumes msg.
func InvalidWithMessage(msg Value) Value {
	p := &invalidPayload{refCounted: newRefCounted(), message: msg}
	return Value{kind: KindInvalid, hasPayload: true, payload: p}
}

// invalidf builds an invalid value carrying a plain-text message, the
// construction every bounds/overflow error in this package goes through.
func invalidf(msg string) Value {
	return InvalidWithMessage(String(msg))
}

// InvalidHasMessage reports whether v carries an error message.
// InvalidHasMessage consumes v.
func InvalidHasMessage(v Value) bool {
	if v.kind != KindInvalid {
		kindError(KindInvalid, v.kind)
	}
	r := v.hasPayload
	Free(v)
	return r
}

// InvalidGetMessage returns v's error message, or Null() if v is bare.
// InvalidGetMessage consumes v.
func InvalidGetMessage(v Value) Value {
	if v.kind != KindInvalid {
		kindError(KindInvalid, v.kind)
	}
	var msg Value
	if v.hasPayload {
		msg = Copy(v.payload.(*invalidPayload).message)
	} else {
		msg = Null()
	}
	Free(v)
	return msg
}

func freeInvalid(v Value) {
	if !v.hasPayload {
		return
	}
	p := v.payload.(*invalidPayload)
	if p.decr() {
		Free(p.message)
	}
}
