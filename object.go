package jv

// objectSlot is one entry in objectPayload's flat slot array. Deleted
// slots are left zeroed with live set to false rather than compacted,
// avoiding a shift of everything after a deletion.
type objectSlot struct {
	key  Value
	val  Value
	hash uint32
	next int32 // index of the next slot chained into the same bucket, or -1
	live bool
}

// objectPayload is an open-chained hash table with a power-of-two
// bucket array, grown by doubling when the load factor crosses 3/4.
type objectPayload struct {
	refCounted
	slots   []objectSlot
	buckets []int32
	count   int
}

const objectLoadNumerator, objectLoadDenominator = 3, 4

// Object returns an empty object.
func Object() Value { return ObjectSized(DefaultObjectCapacity) }

// ObjectSized returns an empty object whose bucket array has n rounded up
// to a power of two buckets (at least DefaultObjectCapacity). The first
// rehash happens once an insert would take the entry count past 3/4 of
// that bucket count.
func ObjectSized(n int) Value {
	capacity := nextPowerOfTwo(n)
	if capacity < DefaultObjectCapacity {
		capacity = DefaultObjectCapacity
	}
	buckets := make([]int32, capacity)
	for i := range buckets {
		buckets[i] = -1
	}
	p := &objectPayload{refCounted: newRefCounted(), buckets: buckets}
	return Value{kind: KindObject, hasPayload: true, size: uint32(capacity), payload: p}
}

func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

func freeObject(v Value) {
	p := v.payload.(*objectPayload)
	if p.decr() {
		for _, s := range p.slots {
			if s.live {
				Free(s.key)
				Free(s.val)
			}
		}
	}
}

func objectUnshare(v Value) (*objectPayload, Value) {
	p := v.payload.(*objectPayload)
	if p.unshared() {
		return p, v
	}
	slots := make([]objectSlot, len(p.slots))
	for i, s := range p.slots {
		slots[i] = s
		if s.live {
			slots[i].key = Copy(s.key)
			slots[i].val = Copy(s.val)
		}
	}
	buckets := append([]int32(nil), p.buckets...)
	np := &objectPayload{refCounted: newRefCounted(), slots: slots, buckets: buckets, count: p.count}
	nv := Value{kind: KindObject, hasPayload: true, size: v.size, payload: np}
	Free(v)
	return np, nv
}

func objectFindPeek(p *objectPayload, key string, hash uint32) int {
	bucket := int(hash) & (len(p.buckets) - 1)
	for idx := p.buckets[bucket]; idx != -1; idx = p.slots[idx].next {
		s := &p.slots[idx]
		if s.live && s.hash == hash && StringValue(s.key) == key {
			return int(idx)
		}
	}
	return -1
}

func objectRehash(p *objectPayload, newCap int) {
	buckets := make([]int32, newCap)
	for i := range buckets {
		buckets[i] = -1
	}
	for i := range p.slots {
		s := &p.slots[i]
		if !s.live {
			continue
		}
		b := int(s.hash) & (newCap - 1)
		s.next = buckets[b]
		buckets[b] = int32(i)
	}
	p.buckets = buckets
}

// ObjectLength returns the number of key/value pairs in obj.
// ObjectLength consumes obj.
func ObjectLength(obj Value) int {
	if obj.kind != KindObject {
		kindError(KindObject, obj.kind)
	}
	n := obj.payload.(*objectPayload).count
	Free(obj)
	return n
}

// ObjectHas reports whether obj has key. ObjectHas consumes both obj and
// key.
func ObjectHas(obj, key Value) bool {
	if obj.kind != KindObject {
		kindError(KindObject, obj.kind)
	}
	if key.kind != KindString {
		kindError(KindString, key.kind)
	}
	p := obj.payload.(*objectPayload)
	h := stringHashPeek(key.payload.(*stringPayload))
	r := objectFindPeek(p, StringValue(key), h) != -1
	Free(obj)
	Free(key)
	return r
}

// ObjectGet returns a copy of obj's value for key, or a bare Invalid if
// obj has no such key. ObjectGet consumes both obj and key.
func ObjectGet(obj, key Value) Value {
	if obj.kind != KindObject {
		kindError(KindObject, obj.kind)
	}
	if key.kind != KindString {
		kindError(KindString, key.kind)
	}
	p := obj.payload.(*objectPayload)
	h := stringHashPeek(key.payload.(*stringPayload))
	idx := objectFindPeek(p, StringValue(key), h)
	var result Value
	if idx == -1 {
		result = Invalid()
	} else {
		result = Copy(p.slots[idx].val)
	}
	Free(obj)
	Free(key)
	return result
}

// ObjectSet stores val under key in obj, replacing any existing value.
// An object whose slot count would exceed MaxIndex returns an Invalid
// value carrying "Object too big" instead. ObjectSet consumes obj, key,
// and val.
func ObjectSet(obj, key, val Value) Value {
	if obj.kind != KindObject {
		kindError(KindObject, obj.kind)
	}
	if key.kind != KindString {
		kindError(KindString, key.kind)
	}
	p, obj := objectUnshare(obj)
	h := stringHashPeek(key.payload.(*stringPayload))
	ks := StringValue(key)
	if idx := objectFindPeek(p, ks, h); idx != -1 {
		Free(p.slots[idx].val)
		p.slots[idx].val = val
		Free(key)
		return obj
	}

	if len(p.slots) >= MaxIndex {
		Free(key)
		Free(val)
		Free(obj)
		return allocFailure("Object too big")
	}
	if (p.count+1)*objectLoadDenominator > len(p.buckets)*objectLoadNumerator {
		objectRehash(p, len(p.buckets)*2)
		obj.size = uint32(len(p.buckets))
	}

	slotIdx := len(p.slots)
	bucket := int(h) & (len(p.buckets) - 1)
	p.slots = append(p.slots, objectSlot{key: key, val: val, hash: h, next: p.buckets[bucket], live: true})
	p.buckets[bucket] = int32(slotIdx)
	p.count++
	return obj
}

// ObjectDelete removes key from obj, if present. ObjectDelete consumes
// both obj and key.
func ObjectDelete(obj, key Value) Value {
	if obj.kind != KindObject {
		kindError(KindObject, obj.kind)
	}
	if key.kind != KindString {
		kindError(KindString, key.kind)
	}
	p, obj := objectUnshare(obj)
	h := stringHashPeek(key.payload.(*stringPayload))
	ks := StringValue(key)
	idx := objectFindPeek(p, ks, h)
	if idx != -1 {
		bucket := int(h) & (len(p.buckets) - 1)
		prev := int32(-1)
		for cur := p.buckets[bucket]; cur != -1; cur = p.slots[cur].next {
			if int(cur) == idx {
				if prev == -1 {
					p.buckets[bucket] = p.slots[cur].next
				} else {
					p.slots[prev].next = p.slots[cur].next
				}
				break
			}
			prev = cur
		}
		Free(p.slots[idx].key)
		Free(p.slots[idx].val)
		p.slots[idx] = objectSlot{}
		p.count--
	}
	Free(key)
	return obj
}

// ObjectMerge overlays every key of b onto a, with b's value winning on
// conflict. ObjectMerge consumes both a and b.
func ObjectMerge(a, b Value) Value {
	if a.kind != KindObject {
		kindError(KindObject, a.kind)
	}
	if b.kind != KindObject {
		kindError(KindObject, b.kind)
	}
	pb := b.payload.(*objectPayload)
	for i := range pb.slots {
		s := &pb.slots[i]
		if !s.live {
			continue
		}
		a = ObjectSet(a, Copy(s.key), Copy(s.val))
	}
	Free(b)
	return a
}

// ObjectMergeRecursive is ObjectMerge, except that where both a and b
// hold an object under the same key, those two objects are merged
// recursively instead of b's replacing a's outright. ObjectMergeRecursive
// consumes both a and b.
func ObjectMergeRecursive(a, b Value) Value {
	if a.kind != KindObject {
		kindError(KindObject, a.kind)
	}
	if b.kind != KindObject {
		kindError(KindObject, b.kind)
	}
	pb := b.payload.(*objectPayload)
	for i := range pb.slots {
		s := &pb.slots[i]
		if !s.live {
			continue
		}
		key := Copy(s.key)
		bv := Copy(s.val)
		existing := ObjectGet(Copy(a), Copy(key))
		if GetKind(existing) == KindObject && GetKind(bv) == KindObject {
			a = ObjectSet(a, key, ObjectMergeRecursive(existing, bv))
		} else {
			Free(existing)
			a = ObjectSet(a, key, bv)
		}
	}
	Free(b)
	return a
}

// IterFinished is the iterator cursor value returned once an iteration
// has visited every entry.
const IterFinished = -2

// ObjectIter returns a cursor positioned at obj's first entry, or
// IterFinished if obj is empty. Peek: does not consume obj.
func ObjectIter(obj Value) int {
	if obj.kind != KindObject {
		kindError(KindObject, obj.kind)
	}
	return objectIterAdvance(obj.payload.(*objectPayload), 0)
}

// ObjectIterNext advances iter to obj's next entry, or IterFinished.
// Peek: does not consume obj.
func ObjectIterNext(obj Value, iter int) int {
	if obj.kind != KindObject {
		kindError(KindObject, obj.kind)
	}
	return objectIterAdvance(obj.payload.(*objectPayload), iter+1)
}

func objectIterAdvance(p *objectPayload, from int) int {
	for i := from; i < len(p.slots); i++ {
		if p.slots[i].live {
			return i
		}
	}
	return IterFinished
}

// ObjectIterValid reports whether iter still refers to a live entry.
func ObjectIterValid(iter int) bool { return iter != IterFinished }

// ObjectIterKey returns a copy of the key at iter. Peek: does not
// consume obj.
func ObjectIterKey(obj Value, iter int) Value {
	return Copy(obj.payload.(*objectPayload).slots[iter].key)
}

// ObjectIterValue returns a copy of the value at iter. Peek: does not
// consume obj.
func ObjectIterValue(obj Value, iter int) Value {
	return Copy(obj.payload.(*objectPayload).slots[iter].val)
}

func objectEqualPeek(a, b Value) bool {
	pa := a.payload.(*objectPayload)
	pb := b.payload.(*objectPayload)
	if pa == pb {
		return true
	}
	if pa.count != pb.count {
		return false
	}
	for i := range pa.slots {
		s := &pa.slots[i]
		if !s.live {
			continue
		}
		idx := objectFindPeek(pb, StringValue(s.key), s.hash)
		if idx == -1 || !equalPeek(s.val, pb.slots[idx].val) {
			return false
		}
	}
	return true
}

// objectContainsPeek implements Contains for two objects: every key of b
// must be present in a with a containing value.
func objectContainsPeek(a, b Value) bool {
	pa := a.payload.(*objectPayload)
	pb := b.payload.(*objectPayload)
	for i := range pb.slots {
		s := &pb.slots[i]
		if !s.live {
			continue
		}
		idx := objectFindPeek(pa, StringValue(s.key), s.hash)
		if idx == -1 || !containsPeek(pa.slots[idx].val, s.val) {
			return false
		}
	}
	return true
}
