package value

import (
	"strconv"
	"strings"

	"github.com/floydspeak/floyd/pkg/types"
)

// Format renders v the way the original interpreter's trace output does:
// int/float in decimal (float fixed at 6 fractional digits), bool as
// true/false, string verbatim, struct as "{name=value, ...}", vector as
// "[v1, v2, ...]".
func Format(v Value) string {
	switch v.kind {
	case types.KindNull:
		return "null"
	case types.KindBool:
		if v.b {
			return "true"
		}
		return "false"
	case types.KindInt:
		return strconv.FormatInt(v.i, 10)
	case types.KindFloat:
		return strconv.FormatFloat(float64(v.f), 'f', 6, 32)
	case types.KindString:
		return v.s
	case types.KindStruct:
		return formatStruct(v)
	case types.KindVector:
		return formatVector(v)
	case types.KindFunction:
		return "<function>"
	default:
		return "<invalid>"
	}
}

func formatStruct(v Value) string {
	var b strings.Builder
	b.WriteByte('{')
	for i, m := range v.strct.desc.Members {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(m.Name)
		b.WriteByte('=')
		b.WriteString(Format(v.strct.fields[i]))
	}
	b.WriteByte('}')
	return b.String()
}

func formatVector(v Value) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, item := range v.vec.items {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(Format(item))
	}
	b.WriteByte(']')
	return b.String()
}
