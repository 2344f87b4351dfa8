package builtins

import "github.com/jmcomets/mal/internal/runtime"

func collectionBuiltins() map[string]runtime.Native {
	return map[string]runtime.Native{
		"list": {Name: "list", Fn: func(args []runtime.Value) (runtime.Value, error) {
			return runtime.NewList(args...), nil
		}},
		"count": {Name: "count", Fn: func(args []runtime.Value) (runtime.Value, error) {
			if err := checkArity("count", args, 1); err != nil {
				return nil, err
			}
			if _, ok := args[0].(runtime.Nil); ok {
				return runtime.Int(0), nil
			}
			items, ok := runtime.AsSequence(args[0])
			if !ok {
				return nil, &runtime.TypeError{Context: "count requires nil, a list or a vector"}
			}
			return runtime.Int(len(items)), nil
		}},
		"empty?": {Name: "empty?", Fn: func(args []runtime.Value) (runtime.Value, error) {
			if err := checkArity("empty?", args, 1); err != nil {
				return nil, err
			}
			if _, ok := args[0].(runtime.Nil); ok {
				return runtime.Bool(true), nil
			}
			items, ok := runtime.AsSequence(args[0])
			if !ok {
				return nil, &runtime.TypeError{Context: "empty? requires nil, a list or a vector"}
			}
			return runtime.Bool(len(items) == 0), nil
		}},
		"cons": {Name: "cons", Fn: func(args []runtime.Value) (runtime.Value, error) {
			if err := checkArity("cons", args, 2); err != nil {
				return nil, err
			}
			tail, ok := runtime.AsSequence(args[1])
			if !ok {
				return nil, &runtime.TypeError{Context: "cons requires a list or a vector as its tail"}
			}
			return runtime.NewList(tail...).Cons(args[0]), nil
		}},
		"concat": {Name: "concat", Fn: func(args []runtime.Value) (runtime.Value, error) {
			result := runtime.EmptyList
			for _, arg := range args {
				items, ok := runtime.AsSequence(arg)
				if !ok {
					return nil, &runtime.TypeError{Context: "concat requires lists or vectors"}
				}
				result = result.Concat(runtime.NewList(items...))
			}
			return result, nil
		}},
	}
}
