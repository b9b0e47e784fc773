// Copyright (C) 2024 The flexjson Authors. All Rights Reserved.

package tree

import (
	"fmt"
	"strconv"
	"strings"
)

// pathSeg is one step of a dot/bracket path such as "a.b[2].c", the
// restricted path grammar shared by Query, Flatten, and Unflatten: a
// bare member name, or a non-negative (or negative, counting from the
// end) bracketed array index.
type pathSeg struct {
	key     string
	idx     int
	isIndex bool
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

func indexPath(prefix string, i int) string {
	return fmt.Sprintf("%s[%d]", prefix, i)
}

// parsePath splits a path string into its segments. It never errors on
// malformed input; a stray '[' with no matching ']' is treated as running
// to the end of the string.
func parsePath(path string) []pathSeg {
	var segs []pathSeg
	i := 0
	for i < len(path) {
		if path[i] == '[' {
			end := strings.IndexByte(path[i:], ']')
			if end < 0 {
				end = len(path) - i
			}
			idx, _ := strconv.Atoi(path[i+1 : i+end])
			segs = append(segs, pathSeg{isIndex: true, idx: idx})
			i += end + 1
			if i < len(path) && path[i] == '.' {
				i++
			}
			continue
		}
		j := i
		for j < len(path) && path[j] != '.' && path[j] != '[' {
			j++
		}
		segs = append(segs, pathSeg{key: path[i:j]})
		i = j
		if i < len(path) && path[i] == '.' {
			i++
		}
	}
	return segs
}
