// Copyright (C) 2024 The flexjson Authors. All Rights Reserved.

package tree

import (
	"bytes"
	"math"
	"strconv"

	"github.com/flexjson/flexjson"
	"github.com/flexjson/flexjson/internal/escape"
	"go4.org/mem"
)

// Pretty renders v as indented JSON text, using indent as the per-level
// indentation unit. An empty indent produces the same compact rendering
// as Minify.
func Pretty(v flexjson.Value, indent string) []byte {
	var buf bytes.Buffer
	writeValue(&buf, v, indent, 0)
	return buf.Bytes()
}

// Minify renders v as compact JSON text with no insignificant whitespace.
func Minify(v flexjson.Value) []byte {
	return Pretty(v, "")
}

func writeValue(buf *bytes.Buffer, v flexjson.Value, indent string, depth int) {
	switch v.Kind() {
	case flexjson.KindNull:
		buf.WriteString("null")
	case flexjson.KindBool:
		if v.BoolValue() {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case flexjson.KindNumber:
		buf.WriteString(formatNumber(v.NumberValue()))
	case flexjson.KindString:
		writeQuoted(buf, v.StringValue())
	case flexjson.KindArray:
		writeArray(buf, v.ArrayValue(), indent, depth)
	case flexjson.KindObject:
		writeObject(buf, v.Object(), indent, depth)
	}
}

func writeArray(buf *bytes.Buffer, elems []flexjson.Value, indent string, depth int) {
	if len(elems) == 0 {
		buf.WriteString("[]")
		return
	}
	buf.WriteByte('[')
	for i, e := range elems {
		if i > 0 {
			buf.WriteByte(',')
		}
		writeNewlineIndent(buf, indent, depth+1)
		writeValue(buf, e, indent, depth+1)
	}
	writeNewlineIndent(buf, indent, depth)
	buf.WriteByte(']')
}

func writeObject(buf *bytes.Buffer, obj *flexjson.Object, indent string, depth int) {
	if obj.Len() == 0 {
		buf.WriteString("{}")
		return
	}
	buf.WriteByte('{')
	first := true
	obj.Range(func(key string, v flexjson.Value) bool {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		writeNewlineIndent(buf, indent, depth+1)
		writeQuoted(buf, key)
		buf.WriteByte(':')
		if indent != "" {
			buf.WriteByte(' ')
		}
		writeValue(buf, v, indent, depth+1)
		return true
	})
	writeNewlineIndent(buf, indent, depth)
	buf.WriteByte('}')
}

func writeNewlineIndent(buf *bytes.Buffer, indent string, depth int) {
	if indent == "" {
		return
	}
	buf.WriteByte('\n')
	for i := 0; i < depth; i++ {
		buf.WriteString(indent)
	}
}

func writeQuoted(buf *bytes.Buffer, s string) {
	buf.WriteByte('"')
	buf.Write(escape.Quote(mem.S(s)))
	buf.WriteByte('"')
}

func formatNumber(n float64) string {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return "null"
	}
	if n == math.Trunc(n) && math.Abs(n) < 1e15 {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	return strconv.FormatFloat(n, 'g', -1, 64)
}
