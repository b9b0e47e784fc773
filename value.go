// Copyright (C) 2024 The flexjson Authors. All Rights Reserved.

package flexjson

import "fmt"

// Kind identifies which case of Value is populated.
type Kind int

// The recognised Value kinds. kindAbsent is a package-private sentinel
// that must never escape into a returned tree; see Value.isAbsent.
const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject

	kindAbsent
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case kindAbsent:
		return "absent"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value is a JSON value: one of Null, Bool, Number, String, Array, or
// Object. The zero Value is Null.
//
// Value is a small tagged union rather than an interface so that the
// dispatcher and container readers in this package can construct and
// pattern-match on it without heap allocation for the scalar cases.
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    string
	arr  []Value
	obj  *Object
}

// Null is the JSON null value.
func Null() Value { return Value{kind: KindNull} }

// Bool constructs a JSON boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number constructs a JSON numeric value.
func Number(n float64) Value { return Value{kind: KindNumber, n: n} }

// String constructs a JSON string value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Array constructs a JSON array value from elems. The slice is retained,
// not copied.
func Array(elems ...Value) Value {
	if elems == nil {
		elems = []Value{}
	}
	return Value{kind: KindArray, arr: elems}
}

// ObjectValue constructs a JSON object value from obj. If obj is nil, a
// fresh empty Object is used.
func ObjectValue(obj *Object) Value {
	if obj == nil {
		obj = NewObject()
	}
	return Value{kind: KindObject, obj: obj}
}

// absent is the internal-only sentinel a value dispatch returns to tell an
// enclosing container reader "I refused to consume this byte, it belongs
// to you." It must never be stored into a returned tree; every call site
// that receives it from the dispatcher substitutes Null() or drops it.
func absent() Value { return Value{kind: kindAbsent} }

func (v Value) isAbsent() bool { return v.kind == kindAbsent }

// Kind reports which case of Value v holds.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is the null value.
func (v Value) IsNull() bool { return v.kind == KindNull }

// BoolValue returns v's boolean payload. It panics if v is not a KindBool.
func (v Value) BoolValue() bool {
	if v.kind != KindBool {
		panic(fmt.Sprintf("flexjson: BoolValue on %s", v.kind))
	}
	return v.b
}

// NumberValue returns v's numeric payload. It panics if v is not a
// KindNumber.
func (v Value) NumberValue() float64 {
	if v.kind != KindNumber {
		panic(fmt.Sprintf("flexjson: NumberValue on %s", v.kind))
	}
	return v.n
}

// StringValue returns v's string payload. It panics if v is not a
// KindString.
func (v Value) StringValue() string {
	if v.kind != KindString {
		panic(fmt.Sprintf("flexjson: StringValue on %s", v.kind))
	}
	return v.s
}

// ArrayValue returns v's element slice. It panics if v is not a KindArray.
// The returned slice aliases v's storage; callers must not mutate it.
func (v Value) ArrayValue() []Value {
	if v.kind != KindArray {
		panic(fmt.Sprintf("flexjson: ArrayValue on %s", v.kind))
	}
	return v.arr
}

// Object returns v's Object. It panics if v is not a KindObject.
func (v Value) Object() *Object {
	if v.kind != KindObject {
		panic(fmt.Sprintf("flexjson: Object on %s", v.kind))
	}
	return v.obj
}

// Equal reports whether v and o describe the same JSON value. It is used
// by github.com/google/go-cmp/cmp when comparing Value trees in tests
// (cmp prefers a type's own Equal method over reflecting into unexported
// fields).
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull, kindAbsent:
		return true
	case KindBool:
		return v.b == o.b
	case KindNumber:
		return v.n == o.n
	case KindString:
		return v.s == o.s
	case KindArray:
		if len(v.arr) != len(o.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(o.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		return v.obj.Equal(o.obj)
	default:
		return false
	}
}
