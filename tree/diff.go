// Copyright (C) 2024 The flexjson Authors. All Rights Reserved.

package tree

import "github.com/flexjson/flexjson"

// ChangeKind classifies one entry of a Diff.
type ChangeKind int

const (
	// Changed means both a and b have a value at Path but they differ.
	Changed ChangeKind = iota
	// Added means only b has a value at Path.
	Added
	// Removed means only a has a value at Path.
	Removed
)

func (k ChangeKind) String() string {
	switch k {
	case Changed:
		return "changed"
	case Added:
		return "added"
	case Removed:
		return "removed"
	default:
		return "unknown"
	}
}

// Change describes a single difference found by Diff.
type Change struct {
	Path string
	Kind ChangeKind
	Old  flexjson.Value
	New  flexjson.Value
}

// Diff compares a and b structurally and reports every path at which they
// differ. Object members are compared by key regardless of order; array
// elements are compared positionally. A type change at a path (e.g.
// string on one side, object on the other) is reported once as Changed
// rather than descended into.
func Diff(a, b flexjson.Value) []Change {
	var out []Change
	diffAt("", a, b, &out)
	return out
}

func diffAt(path string, a, b flexjson.Value, out *[]Change) {
	if a.Kind() != b.Kind() {
		*out = append(*out, Change{Path: path, Kind: Changed, Old: a, New: b})
		return
	}

	switch a.Kind() {
	case flexjson.KindObject:
		ao, bo := a.Object(), b.Object()
		seen := make(map[string]bool, ao.Len())
		for _, k := range ao.Keys() {
			seen[k] = true
			av, _ := ao.Get(k)
			p := joinPath(path, k)
			if bv, ok := bo.Get(k); ok {
				diffAt(p, av, bv, out)
			} else {
				*out = append(*out, Change{Path: p, Kind: Removed, Old: av})
			}
		}
		for _, k := range bo.Keys() {
			if seen[k] {
				continue
			}
			bv, _ := bo.Get(k)
			*out = append(*out, Change{Path: joinPath(path, k), Kind: Added, New: bv})
		}

	case flexjson.KindArray:
		aa, bb := a.ArrayValue(), b.ArrayValue()
		n := len(aa)
		if len(bb) > n {
			n = len(bb)
		}
		for i := 0; i < n; i++ {
			p := indexPath(path, i)
			switch {
			case i >= len(aa):
				*out = append(*out, Change{Path: p, Kind: Added, New: bb[i]})
			case i >= len(bb):
				*out = append(*out, Change{Path: p, Kind: Removed, Old: aa[i]})
			default:
				diffAt(p, aa[i], bb[i], out)
			}
		}

	default:
		if !a.Equal(b) {
			*out = append(*out, Change{Path: path, Kind: Changed, Old: a, New: b})
		}
	}
}
