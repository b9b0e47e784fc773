// Copyright (C) 2024 The flexjson Authors. All Rights Reserved.

package tree

import (
	"sort"

	"github.com/flexjson/flexjson"
)

// rootScalarKey is the map key Flatten assigns to a top-level scalar (a
// document whose root is not an object or array), and the key Unflatten
// recognises for the symmetric case.
const rootScalarKey = "$"

// Flatten reduces v to a flat map from dot/bracket paths (see pathSeg) to
// the leaf scalar or empty-container value found there. Empty objects and
// empty arrays are themselves treated as leaves, since they have no
// members to descend into.
func Flatten(v flexjson.Value) map[string]flexjson.Value {
	out := make(map[string]flexjson.Value)
	flattenInto(out, "", v)
	return out
}

func flattenInto(out map[string]flexjson.Value, prefix string, v flexjson.Value) {
	switch v.Kind() {
	case flexjson.KindObject:
		obj := v.Object()
		if obj.Len() == 0 {
			out[leafKey(prefix)] = v
			return
		}
		obj.Range(func(key string, val flexjson.Value) bool {
			flattenInto(out, joinPath(prefix, key), val)
			return true
		})
	case flexjson.KindArray:
		arr := v.ArrayValue()
		if len(arr) == 0 {
			out[leafKey(prefix)] = v
			return
		}
		for i, e := range arr {
			flattenInto(out, indexPath(prefix, i), e)
		}
	default:
		out[leafKey(prefix)] = v
	}
}

func leafKey(prefix string) string {
	if prefix == "" {
		return rootScalarKey
	}
	return prefix
}

// Unflatten is the inverse of Flatten: it rebuilds a tree from a map of
// paths to leaf values. Key iteration order is unspecified by Go, so
// Unflatten sorts paths lexically before insertion to make the resulting
// member order deterministic; this need not match the order an original
// document had before it was flattened.
func Unflatten(flat map[string]flexjson.Value) flexjson.Value {
	if v, ok := flat[rootScalarKey]; ok && len(flat) == 1 {
		return v
	}

	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	root := &node{}
	for _, k := range keys {
		insertPath(root, parsePath(k), flat[k])
	}
	return root.toValue()
}

// node is a mutable intermediate tree used to accumulate Unflatten's
// output before it is converted into an immutable flexjson.Value.
type node struct {
	isArray  bool
	isObject bool
	obj      map[string]*node
	objOrder []string
	arr      []*node
	leaf     flexjson.Value
}

func insertPath(n *node, segs []pathSeg, v flexjson.Value) {
	if len(segs) == 0 {
		n.leaf = v
		return
	}
	seg := segs[0]
	if seg.isIndex {
		n.isArray = true
		for len(n.arr) <= seg.idx {
			n.arr = append(n.arr, &node{})
		}
		insertPath(n.arr[seg.idx], segs[1:], v)
		return
	}
	n.isObject = true
	if n.obj == nil {
		n.obj = make(map[string]*node)
	}
	child, ok := n.obj[seg.key]
	if !ok {
		child = &node{}
		n.obj[seg.key] = child
		n.objOrder = append(n.objOrder, seg.key)
	}
	insertPath(child, segs[1:], v)
}

func (n *node) toValue() flexjson.Value {
	switch {
	case n.isObject:
		obj := flexjson.NewObject()
		for _, k := range n.objOrder {
			obj.Set(k, n.obj[k].toValue())
		}
		return flexjson.ObjectValue(obj)
	case n.isArray:
		elems := make([]flexjson.Value, len(n.arr))
		for i, c := range n.arr {
			elems[i] = c.toValue()
		}
		return flexjson.Array(elems...)
	default:
		return n.leaf
	}
}
