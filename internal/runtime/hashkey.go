package runtime

import (
	"strconv"
	"strings"
)

// HashKey is the narrow, comparable projection of a Hashable Value.
// Converting both ways, rather than exposing a "try-hash" on the full
// Value union, keeps non-key uses of Value from paying for a variant
// check.
type HashKey struct {
	repr string
}

// NotHashableErr is returned when a Value cannot serve as a Dict key:
// Float, Vector, Dict, Function and Atom are excluded.
type NotHashableErr struct {
	Value Value
}

func (e *NotHashableErr) Error() string { return "value is not hashable" }

// ToHashKey converts a Value into its HashKey, or reports
// NotHashableErr if v (or one of its elements, for a List) is not
// Hashable. The encoding is length-prefixed per string/symbol and
// count-prefixed per list so that distinct values never collide on
// representation.
func ToHashKey(v Value) (HashKey, error) {
	r, err := hashRepr(v)
	if err != nil {
		return HashKey{}, err
	}
	return HashKey{repr: r}, nil
}

func hashRepr(v Value) (string, error) {
	switch x := v.(type) {
	case Nil:
		return "n", nil
	case Bool:
		if x {
			return "b1", nil
		}
		return "b0", nil
	case Int:
		return "i" + strconv.FormatInt(int64(x), 10), nil
	case Str:
		return lengthPrefixed("s", string(x)), nil
	case Symbol:
		return lengthPrefixed("y", string(x)), nil
	case List:
		var sb strings.Builder
		sb.WriteByte('l')
		sb.WriteString(strconv.Itoa(x.Len()))
		for _, elem := range x.ToSlice() {
			r, err := hashRepr(elem)
			if err != nil {
				return "", err
			}
			sb.WriteByte(0x1f) // unit separator, safe given length prefixes
			sb.WriteString(r)
		}
		return sb.String(), nil
	default:
		return "", &NotHashableErr{Value: v}
	}
}

func lengthPrefixed(tag, s string) string {
	return tag + strconv.Itoa(len(s)) + ":" + s
}
