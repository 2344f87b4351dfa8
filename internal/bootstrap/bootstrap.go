// Package bootstrap assembles a ready-to-use root Environment: the
// native namespace, the `eval` built-in (closed over the root itself,
// so `eval` always runs in the root, not the caller's lexical scope),
// and the `load-file` prelude evaluated as ordinary source text.
package bootstrap

import (
	"github.com/jmcomets/mal/internal/builtins"
	"github.com/jmcomets/mal/internal/eval"
	"github.com/jmcomets/mal/internal/reader"
	"github.com/jmcomets/mal/internal/runtime"
)

const loadFilePrelude = `(def! load-file (fn* (f) (eval (read-string (str "(do " (slurp f) "\nnil)")))))`

// NewRootEnvironment builds the root environment a running
// interpreter evaluates every top-level form against.
func NewRootEnvironment() (*runtime.Environment, error) {
	root := runtime.NewEnvironment()
	builtins.Install(root)

	root.Define("eval", runtime.Native{Name: "eval", Fn: func(args []runtime.Value) (runtime.Value, error) {
		if len(args) != 1 {
			return nil, &runtime.ArityError{Expected: 1, Got: len(args)}
		}
		return eval.Eval(args[0], root)
	}})

	if err := evalSource(loadFilePrelude, root); err != nil {
		return nil, err
	}
	return root, nil
}

// evalSource reads every top-level form out of src and evaluates each
// in env, in order, discarding results (the prelude is installed for
// its side effect of defining `load-file`).
func evalSource(src string, env *runtime.Environment) error {
	r := reader.New()
	if err := r.Push(src); err != nil {
		return err
	}
	for {
		form, ok := r.Pop()
		if !ok {
			break
		}
		if _, err := eval.Eval(form, env); err != nil {
			return err
		}
	}
	return nil
}
