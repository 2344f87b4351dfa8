package builtins

import "github.com/jmcomets/mal/internal/runtime"

func equalityBuiltins() map[string]runtime.Native {
	return map[string]runtime.Native{
		"=": {Name: "=", Fn: func(args []runtime.Value) (runtime.Value, error) {
			if err := checkArity("=", args, 2); err != nil {
				return nil, err
			}
			return runtime.Bool(runtime.Equal(args[0], args[1])), nil
		}},
		"!=": {Name: "!=", Fn: func(args []runtime.Value) (runtime.Value, error) {
			if err := checkArity("!=", args, 2); err != nil {
				return nil, err
			}
			return runtime.Bool(!runtime.Equal(args[0], args[1])), nil
		}},
		"not": {Name: "not", Fn: func(args []runtime.Value) (runtime.Value, error) {
			if err := checkArity("not", args, 1); err != nil {
				return nil, err
			}
			return runtime.Bool(!runtime.IsTruthy(args[0])), nil
		}},
	}
}

func typePredicateBuiltins() map[string]runtime.Native {
	return map[string]runtime.Native{
		"nil?": {Name: "nil?", Fn: func(args []runtime.Value) (runtime.Value, error) {
			if err := checkArity("nil?", args, 1); err != nil {
				return nil, err
			}
			_, ok := args[0].(runtime.Nil)
			return runtime.Bool(ok), nil
		}},
		"list?": {Name: "list?", Fn: func(args []runtime.Value) (runtime.Value, error) {
			if err := checkArity("list?", args, 1); err != nil {
				return nil, err
			}
			_, ok := args[0].(runtime.List)
			return runtime.Bool(ok), nil
		}},
		"atom?": {Name: "atom?", Fn: func(args []runtime.Value) (runtime.Value, error) {
			if err := checkArity("atom?", args, 1); err != nil {
				return nil, err
			}
			_, ok := args[0].(*runtime.Atom)
			return runtime.Bool(ok), nil
		}},
	}
}
