// Copyright (C) 2024 The flexjson Authors. All Rights Reserved.

package tree

import "github.com/flexjson/flexjson"

// StripNulls returns a copy of v with every object member whose value is
// (after recursive stripping) Null removed. Array elements are stripped
// the same way but never removed, since dropping an array element would
// change the meaning of the positions after it.
func StripNulls(v flexjson.Value) flexjson.Value {
	switch v.Kind() {
	case flexjson.KindObject:
		obj := v.Object()
		out := flexjson.NewObject()
		obj.Range(func(key string, val flexjson.Value) bool {
			sv := StripNulls(val)
			if sv.Kind() == flexjson.KindNull {
				return true
			}
			out.Set(key, sv)
			return true
		})
		return flexjson.ObjectValue(out)

	case flexjson.KindArray:
		elems := v.ArrayValue()
		out := make([]flexjson.Value, len(elems))
		for i, e := range elems {
			out[i] = StripNulls(e)
		}
		return flexjson.Array(out...)

	default:
		return v
	}
}
