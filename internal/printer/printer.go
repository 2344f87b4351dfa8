// Package printer converts runtime Values to text, in two modes:
// readable (string literals quoted and escaped, round-trippable
// through the reader) and raw (strings printed bare). It is the Go
// analogue of the original's printer.rs pr_str, following the
// teacher's pkg/printer naming and doc style.
package printer

import (
	"strconv"
	"strings"

	"github.com/jmcomets/mal/internal/runtime"
)

// PrStr renders v. When readably is true, strings come back quoted
// with escapes reinserted, suitable for feeding back through the
// reader; when false, strings are printed bare.
func PrStr(v runtime.Value, readably bool) string {
	var sb strings.Builder
	write(&sb, v, readably)
	return sb.String()
}

// Str concatenates the raw-mode rendering of each value with no
// separator — the built-in `str`.
func Str(vs []runtime.Value) string {
	var sb strings.Builder
	for _, v := range vs {
		write(&sb, v, false)
	}
	return sb.String()
}

// PrStrJoined renders each value readably and joins them with a
// single space — the built-in `pr-str`.
func PrStrJoined(vs []runtime.Value) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = PrStr(v, true)
	}
	return strings.Join(parts, " ")
}

// RawJoined renders each value in raw mode and joins them with a
// single space — used by `println`.
func RawJoined(vs []runtime.Value) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = PrStr(v, false)
	}
	return strings.Join(parts, " ")
}

func write(sb *strings.Builder, v runtime.Value, readably bool) {
	switch x := v.(type) {
	case runtime.Nil:
		sb.WriteString("nil")
	case runtime.Bool:
		if x {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case runtime.Int:
		sb.WriteString(strconv.FormatInt(int64(x), 10))
	case runtime.Float:
		sb.WriteString(formatFloat(float64(x)))
	case runtime.Str:
		if readably {
			sb.WriteString(quote(string(x)))
		} else {
			sb.WriteString(string(x))
		}
	case runtime.Symbol:
		sb.WriteString(string(x))
	case runtime.List:
		writeSeq(sb, x.ToSlice(), "(", ")", readably)
	case runtime.Vector:
		writeSeq(sb, x.Items, "[", "]", readably)
	case runtime.Dict:
		writeDict(sb, x, readably)
	case runtime.Native:
		sb.WriteString("#<function>")
	case *runtime.UserFn:
		sb.WriteString("#<function>")
	case *runtime.Atom:
		sb.WriteString("(atom ")
		write(sb, x.Deref(), readably)
		sb.WriteString(")")
	default:
		sb.WriteString("#<unknown>")
	}
}

func writeSeq(sb *strings.Builder, items []runtime.Value, open, close string, readably bool) {
	sb.WriteString(open)
	for i, item := range items {
		if i > 0 {
			sb.WriteString(" ")
		}
		write(sb, item, readably)
	}
	sb.WriteString(close)
}

func writeDict(sb *strings.Builder, d runtime.Dict, readably bool) {
	sb.WriteString("{")
	first := true
	d.Range(func(k, v runtime.Value) bool {
		if !first {
			sb.WriteString(" ")
		}
		first = false
		write(sb, k, readably)
		sb.WriteString(" ")
		write(sb, v, readably)
		return true
	})
	sb.WriteString("}")
}

// formatFloat prints in the shortest round-trip form.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// quote re-escapes a string for readable display: backslash, double
// quote and newline, the reverse of the reader's unescaping.
func quote(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case '\n':
			sb.WriteString(`\n`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
