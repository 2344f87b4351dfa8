package runtime

// Equal implements structural, cross-collection equality: Numbers
// compare by value across Int/Float, Lists compare elementwise,
// Functions are never equal to anything (including themselves), and
// List is never equal to Vector even when their elements match (they
// are distinct types).
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Nil:
		_, ok := b.(Nil)
		return ok
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case Int, Float:
		af, _, aok := AsNumber(a)
		bf, _, bok := AsNumber(b)
		return aok && bok && af == bf
	case Str:
		bv, ok := b.(Str)
		return ok && av == bv
	case Symbol:
		bv, ok := b.(Symbol)
		return ok && av == bv
	case List:
		bv, ok := b.(List)
		if !ok || av.Len() != bv.Len() {
			return false
		}
		return equalSlices(av.ToSlice(), bv.ToSlice())
	case Vector:
		bv, ok := b.(Vector)
		if !ok || av.Len() != bv.Len() {
			return false
		}
		return equalSlices(av.ToSlice(), bv.ToSlice())
	case Dict:
		bv, ok := b.(Dict)
		if !ok || av.Len() != bv.Len() {
			return false
		}
		equal := true
		av.Range(func(k, v Value) bool {
			other, found, err := bv.Get(k)
			if err != nil || !found || !Equal(v, other) {
				equal = false
				return false
			}
			return true
		})
		return equal
	case *Atom:
		bv, ok := b.(*Atom)
		return ok && av == bv
	default:
		// Functions (Native, *UserFn) are never equal to anything.
		return false
	}
}

func equalSlices(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
