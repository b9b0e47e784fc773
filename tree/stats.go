// Copyright (C) 2024 The flexjson Authors. All Rights Reserved.

package tree

import "github.com/flexjson/flexjson"

// Statistics summarizes the shape of a parsed document: how many values
// of each kind it contains, its maximum nesting depth, and the total
// number of bytes held in string values.
type Statistics struct {
	Nulls   int
	Bools   int
	Numbers int
	Strings int
	Arrays  int
	Objects int

	MaxDepth    int
	StringBytes int
}

// Stats walks v and returns its Statistics. A bare scalar root has
// MaxDepth 1.
func Stats(v flexjson.Value) Statistics {
	var s Statistics
	walkStats(v, 1, &s)
	return s
}

func walkStats(v flexjson.Value, depth int, s *Statistics) {
	if depth > s.MaxDepth {
		s.MaxDepth = depth
	}
	switch v.Kind() {
	case flexjson.KindNull:
		s.Nulls++
	case flexjson.KindBool:
		s.Bools++
	case flexjson.KindNumber:
		s.Numbers++
	case flexjson.KindString:
		s.Strings++
		s.StringBytes += len(v.StringValue())
	case flexjson.KindArray:
		s.Arrays++
		for _, e := range v.ArrayValue() {
			walkStats(e, depth+1, s)
		}
	case flexjson.KindObject:
		s.Objects++
		v.Object().Range(func(_ string, val flexjson.Value) bool {
			walkStats(val, depth+1, s)
			return true
		})
	}
}
