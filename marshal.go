// Copyright (C) 2024 The flexjson Authors. All Rights Reserved.

package flexjson

import (
	"encoding/json"
	"strconv"
)

// MarshalJSON lets a Value participate in encoding/json, for boundary
// code (such as an HTTP response envelope) that embeds a Value inside a
// struct handed to json.Marshal. It is a plain compact encoding; the
// tree package's Pretty and Minify cover indentation and JWCC-flavoured
// quoting for the reader's own output paths.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNull, kindAbsent:
		return []byte("null"), nil
	case KindBool:
		if v.b {
			return []byte("true"), nil
		}
		return []byte("false"), nil
	case KindNumber:
		return []byte(strconv.FormatFloat(v.n, 'g', -1, 64)), nil
	case KindString:
		return json.Marshal(v.s)
	case KindArray:
		buf := []byte{'['}
		for i, e := range v.arr {
			if i > 0 {
				buf = append(buf, ',')
			}
			eb, err := e.MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf = append(buf, eb...)
		}
		return append(buf, ']'), nil
	case KindObject:
		buf := []byte{'{'}
		first := true
		var err error
		v.obj.Range(func(k string, val Value) bool {
			if !first {
				buf = append(buf, ',')
			}
			first = false
			var kb []byte
			kb, err = json.Marshal(k)
			if err != nil {
				return false
			}
			buf = append(buf, kb...)
			buf = append(buf, ':')
			var vb []byte
			vb, err = val.MarshalJSON()
			if err != nil {
				return false
			}
			buf = append(buf, vb...)
			return true
		})
		if err != nil {
			return nil, err
		}
		return append(buf, '}'), nil
	default:
		return []byte("null"), nil
	}
}
