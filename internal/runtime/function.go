package runtime

// Native is a built-in callable: a Go function taking the evaluated
// argument sequence and returning a result or an error.
type Native struct {
	Name string
	Fn   func(args []Value) (Value, error)
}

func (Native) Kind() Kind { return KindFunction }

// UserFn is a closure: an immutable body form, the environment
// captured at definition time, an ordered parameter list, and an
// optional variadic tail parameter, as built by `fn*`.
type UserFn struct {
	Params   []Symbol
	Variadic Symbol
	HasRest  bool
	Body     Value
	Env      *Environment
}

func (*UserFn) Kind() Kind { return KindFunction }

// Bind creates a child of fn's captured environment with Params (and,
// if HasRest, Variadic) bound positionally to args. It returns an
// error if the arity doesn't match.
func (fn *UserFn) Bind(args []Value) (*Environment, error) {
	if fn.HasRest {
		if len(args) < len(fn.Params) {
			return nil, &ArityError{Expected: len(fn.Params), Got: len(args), Variadic: true}
		}
	} else if len(args) != len(fn.Params) {
		return nil, &ArityError{Expected: len(fn.Params), Got: len(args)}
	}

	child := NewEnclosedEnvironment(fn.Env)
	for i, p := range fn.Params {
		child.Define(p, args[i])
	}
	if fn.HasRest {
		child.Define(fn.Variadic, NewList(args[len(fn.Params):]...))
	}
	return child, nil
}

// ArityError reports a call with the wrong number of arguments.
type ArityError struct {
	Expected int
	Got      int
	Variadic bool
}

func (e *ArityError) Error() string {
	if e.Variadic {
		return "arity error: expected at least the declared parameters, got fewer"
	}
	return "arity error"
}

// IsCallable reports whether v can be applied.
func IsCallable(v Value) bool {
	switch v.(type) {
	case Native, *UserFn:
		return true
	default:
		return false
	}
}
