package forthic

import (
	"strconv"
	"strings"
)

// Render renders v as source text: integers as decimal digits, booleans
// as true/false, strings wrapped in double quotes, symbols bare, lists
// space-joined inside brackets, and var-sets space-joined inside parens.
// For any List Parse can produce, parsing Render's output with its
// outer brackets stripped yields an Equal tree; parsing it with the
// brackets kept yields a program whose single item is that List.
func Render(v *Value) string {
	var sb strings.Builder
	writeValue(&sb, v)
	return sb.String()
}

func writeValue(sb *strings.Builder, v *Value) {
	switch v.Kind() {
	case Integer:
		sb.WriteString(strconv.FormatInt(v.Int(), 10))
	case Boolean:
		if v.Bool() {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case String:
		sb.WriteByte('"')
		sb.Write(v.Bytes())
		sb.WriteByte('"')
	case Symbol:
		sb.Write(v.Bytes())
	case List:
		writeSeq(sb, '[', ']', v.Items())
	case VarSet:
		writeSeq(sb, '(', ')', v.Items())
	}
}

func writeSeq(sb *strings.Builder, open, close byte, items []*Value) {
	sb.WriteByte(open)
	for i, item := range items {
		if i > 0 {
			sb.WriteByte(' ')
		}
		writeValue(sb, item)
	}
	sb.WriteByte(close)
}
