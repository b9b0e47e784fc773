// Copyright (C) 2024 The flexjson Authors. All Rights Reserved.

package flexjson

// Object is an ordered mapping from string keys to Values that preserves
// first-insertion order. Setting an already-present key overwrites its
// value in place (last write wins) without moving it in iteration order.
//
// The zero Object is not ready for use; construct one with NewObject.
type Object struct {
	keys  []string
	index map[string]int
	vals  []Value
}

// NewObject returns an empty, ready-to-use Object.
func NewObject() *Object {
	return &Object{index: make(map[string]int)}
}

// Len reports the number of members in o.
func (o *Object) Len() int { return len(o.keys) }

// Keys returns the member keys of o in insertion order. The returned slice
// must not be mutated by the caller.
func (o *Object) Keys() []string { return o.keys }

// Get returns the value bound to key and whether it was present.
func (o *Object) Get(key string) (Value, bool) {
	i, ok := o.index[key]
	if !ok {
		return Value{}, false
	}
	return o.vals[i], true
}

// Set binds key to v. If key is already present its value is overwritten
// in place; otherwise the member is appended at the end.
func (o *Object) Set(key string, v Value) {
	if i, ok := o.index[key]; ok {
		o.vals[i] = v
		return
	}
	o.index[key] = len(o.keys)
	o.keys = append(o.keys, key)
	o.vals = append(o.vals, v)
}

// Range calls f for each member of o in insertion order, stopping early if
// f returns false.
func (o *Object) Range(f func(key string, v Value) bool) {
	for i, k := range o.keys {
		if !f(k, o.vals[i]) {
			return
		}
	}
}

// Equal reports whether o and other have the same members in the same
// order with equal values.
func (o *Object) Equal(other *Object) bool {
	if o == nil || other == nil {
		return o == other
	}
	if len(o.keys) != len(other.keys) {
		return false
	}
	for i, k := range o.keys {
		if other.keys[i] != k {
			return false
		}
		if !o.vals[i].Equal(other.vals[i]) {
			return false
		}
	}
	return true
}
