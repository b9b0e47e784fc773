// Copyright (C) 2024 The flexjson Authors. All Rights Reserved.

package tree

import (
	"fmt"

	"github.com/flexjson/flexjson"
)

// Query looks up the value at path, a restricted dot/bracket path such as
// "users[0].name" (see pathSeg). An empty path returns v itself.
func Query(v flexjson.Value, path string) (flexjson.Value, error) {
	cur := v
	for _, seg := range parsePath(path) {
		if seg.isIndex {
			if cur.Kind() != flexjson.KindArray {
				return flexjson.Value{}, fmt.Errorf("tree: index into %s at %q", cur.Kind(), path)
			}
			arr := cur.ArrayValue()
			idx := seg.idx
			if idx < 0 {
				idx += len(arr)
			}
			if idx < 0 || idx >= len(arr) {
				return flexjson.Value{}, fmt.Errorf("tree: index %d out of range (len %d) in %q", seg.idx, len(arr), path)
			}
			cur = arr[idx]
			continue
		}
		if cur.Kind() != flexjson.KindObject {
			return flexjson.Value{}, fmt.Errorf("tree: member %q on %s in %q", seg.key, cur.Kind(), path)
		}
		val, ok := cur.Object().Get(seg.key)
		if !ok {
			return flexjson.Value{}, fmt.Errorf("tree: no member %q in %q", seg.key, path)
		}
		cur = val
	}
	return cur, nil
}
