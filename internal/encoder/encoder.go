// Package encoder renders a value tree back to JSON text by structural
// recursion. Encoding a well-formed tree never fails, and the output
// decodes back to an observationally equal tree: strings are re-escaped on
// the way out, and Float values always carry a fraction or exponent so
// they do not collapse into Integers on re-decode. The one exception is
// non-finite floats, which JSON cannot express; a builder-made NaN or
// infinity renders as null.
package encoder

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mcncl/jsondom/internal/value"
)

// Encode renders v as compact JSON text with no layout whitespace.
func Encode(v value.Value) string {
	var b strings.Builder
	write(&b, v)
	return b.String()
}

// EncodeIndent renders v with one element per line. Every line starts with
// prefix, and each nesting level adds one copy of indent. Scalars and
// empty containers render exactly as Encode does.
func EncodeIndent(v value.Value, prefix, indent string) string {
	var b strings.Builder
	writeIndent(&b, v, prefix, indent)
	return b.String()
}

func write(b *strings.Builder, v value.Value) {
	switch t := v.(type) {
	case *value.Object:
		b.WriteByte('{')
		for i, key := range t.Keys() {
			if i > 0 {
				b.WriteByte(',')
			}
			writeString(b, key)
			b.WriteByte(':')
			member, _ := t.Get(key)
			write(b, member)
		}
		b.WriteByte('}')
	case *value.List:
		b.WriteByte('[')
		for i, item := range t.Items() {
			if i > 0 {
				b.WriteByte(',')
			}
			write(b, item)
		}
		b.WriteByte(']')
	case *value.String:
		s, _ := t.Str()
		writeString(b, s)
	case *value.Integer:
		n, _ := t.Int()
		b.WriteString(strconv.FormatInt(n, 10))
	case *value.Float:
		f, _ := t.Float()
		b.WriteString(formatFloat(f))
	case *value.Bool:
		bv, _ := t.Bool()
		b.WriteString(strconv.FormatBool(bv))
	case *value.Null:
		b.WriteString("null")
	}
}

func writeIndent(b *strings.Builder, v value.Value, prefix, indent string) {
	switch t := v.(type) {
	case *value.Object:
		if t.Len() == 0 {
			b.WriteString("{}")
			return
		}
		b.WriteString("{\n")
		inner := prefix + indent
		keys := t.Keys()
		for i, key := range keys {
			b.WriteString(inner)
			writeString(b, key)
			b.WriteString(": ")
			member, _ := t.Get(key)
			writeIndent(b, member, inner, indent)
			if i < len(keys)-1 {
				b.WriteByte(',')
			}
			b.WriteByte('\n')
		}
		b.WriteString(prefix)
		b.WriteByte('}')
	case *value.List:
		if t.Len() == 0 {
			b.WriteString("[]")
			return
		}
		b.WriteString("[\n")
		inner := prefix + indent
		items := t.Items()
		for i, item := range items {
			b.WriteString(inner)
			writeIndent(b, item, inner, indent)
			if i < len(items)-1 {
				b.WriteByte(',')
			}
			b.WriteByte('\n')
		}
		b.WriteString(prefix)
		b.WriteByte(']')
	default:
		write(b, v)
	}
}

// writeString renders s quoted, escaping quotes, backslashes and control
// characters so the output re-decodes to the same text.
func writeString(b *strings.Builder, s string) {
	b.WriteByte('"')
	for _, c := range s {
		switch c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if c < 0x20 {
				fmt.Fprintf(b, `\u%04x`, c)
			} else {
				b.WriteRune(c)
			}
		}
	}
	b.WriteByte('"')
}

// formatFloat renders f in the shortest form that parses back exactly,
// forcing a ".0" suffix when the result would otherwise look like an
// integer literal. JSON has no representation for non-finite numbers, so
// NaN and the infinities render as null.
func formatFloat(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "null"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
