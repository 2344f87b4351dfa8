package builtins

import (
	"github.com/jmcomets/mal/internal/eval"
	"github.com/jmcomets/mal/internal/runtime"
)

func atomBuiltins() map[string]runtime.Native {
	return map[string]runtime.Native{
		"atom": {Name: "atom", Fn: func(args []runtime.Value) (runtime.Value, error) {
			if err := checkArity("atom", args, 1); err != nil {
				return nil, err
			}
			return runtime.NewAtom(args[0]), nil
		}},
		"deref": {Name: "deref", Fn: func(args []runtime.Value) (runtime.Value, error) {
			if err := checkArity("deref", args, 1); err != nil {
				return nil, err
			}
			a, ok := args[0].(*runtime.Atom)
			if !ok {
				return nil, &runtime.TypeError{Context: "deref requires an atom"}
			}
			return a.Deref(), nil
		}},
		"reset!": {Name: "reset!", Fn: func(args []runtime.Value) (runtime.Value, error) {
			if err := checkArity("reset!", args, 2); err != nil {
				return nil, err
			}
			a, ok := args[0].(*runtime.Atom)
			if !ok {
				return nil, &runtime.TypeError{Context: "reset! requires an atom"}
			}
			return a.Reset(args[1]), nil
		}},
		"swap!": {Name: "swap!", Fn: func(args []runtime.Value) (runtime.Value, error) {
			if len(args) < 2 {
				return nil, &runtime.ArityError{Expected: 2, Got: len(args)}
			}
			a, ok := args[0].(*runtime.Atom)
			if !ok {
				return nil, &runtime.TypeError{Context: "swap! requires an atom"}
			}
			if !runtime.IsCallable(args[1]) {
				return nil, &runtime.TypeError{Context: "swap! requires a callable"}
			}
			callArgs := append([]runtime.Value{a.Deref()}, args[2:]...)
			result, err := Apply(args[1], callArgs)
			if err != nil {
				return nil, err
			}
			return a.Reset(result), nil
		}},
	}
}

// Apply invokes a Native or User callable with args, used wherever a
// built-in itself needs to call back into a value — `swap!` here, and
// the higher-order sequence builtins this namespace may grow later.
func Apply(fn runtime.Value, args []runtime.Value) (runtime.Value, error) {
	switch f := fn.(type) {
	case runtime.Native:
		return f.Fn(args)
	case *runtime.UserFn:
		child, err := f.Bind(args)
		if err != nil {
			return nil, err
		}
		return eval.Eval(f.Body, child)
	default:
		return nil, &runtime.TypeError{Context: "value is not callable"}
	}
}
