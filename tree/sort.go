// Copyright (C) 2024 The flexjson Authors. All Rights Reserved.

package tree

import (
	"strings"

	"github.com/flexjson/flexjson"
	"golang.org/x/exp/slices"
)

// SortKeys returns a copy of v with every object's members reordered by
// key, recursively. Array element order is left untouched. Scalars are
// returned unchanged.
func SortKeys(v flexjson.Value) flexjson.Value {
	switch v.Kind() {
	case flexjson.KindArray:
		elems := v.ArrayValue()
		out := make([]flexjson.Value, len(elems))
		for i, e := range elems {
			out[i] = SortKeys(e)
		}
		return flexjson.Array(out...)

	case flexjson.KindObject:
		obj := v.Object()
		keys := append([]string(nil), obj.Keys()...)
		slices.SortFunc(keys, strings.Compare)

		sorted := flexjson.NewObject()
		for _, k := range keys {
			val, _ := obj.Get(k)
			sorted.Set(k, SortKeys(val))
		}
		return flexjson.ObjectValue(sorted)

	default:
		return v
	}
}
