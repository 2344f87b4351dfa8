// Package mal is the public embedding facade over the interpreter
// core, mirroring the teacher's pkg/dwscript boundary: a small surface
// (New, Eval, EvalValue) that hides the reader/evaluator/bootstrap
// wiring from callers who just want to run mal source and get a
// result back.
package mal

import (
	"github.com/jmcomets/mal/internal/bootstrap"
	"github.com/jmcomets/mal/internal/eval"
	"github.com/jmcomets/mal/internal/printer"
	"github.com/jmcomets/mal/internal/reader"
	"github.com/jmcomets/mal/internal/runtime"
)

// Interpreter holds one root Environment: every call to Eval runs
// against it, so definitions and atom mutations persist across calls
// the same way they would across lines typed at a REPL.
type Interpreter struct {
	root *runtime.Environment
}

// New builds an Interpreter with the standard built-in namespace and
// prelude already installed.
func New() (*Interpreter, error) {
	root, err := bootstrap.NewRootEnvironment()
	if err != nil {
		return nil, err
	}
	return &Interpreter{root: root}, nil
}

// Eval reads every top-level form in src, evaluates each in order
// against the interpreter's root environment, and returns the
// readable (pr-str) rendering of the last form's result. Evaluating
// an empty or comment-only src returns "nil".
func (it *Interpreter) Eval(src string) (string, error) {
	v, err := it.EvalValue(src)
	if err != nil {
		return "", err
	}
	return printer.PrStr(v, true), nil
}

// EvalValue is Eval without the final printer step, for callers that
// want to inspect or further convert the resulting runtime.Value.
func (it *Interpreter) EvalValue(src string) (runtime.Value, error) {
	r := reader.New()
	if err := r.Push(src); err != nil {
		return nil, err
	}

	result := runtime.Value(runtime.NilValue)
	for {
		form, ok := r.Pop()
		if !ok {
			break
		}
		v, err := eval.Eval(form, it.root)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

// Root exposes the interpreter's root environment, for embedders that
// want to install additional native bindings before evaluating.
func (it *Interpreter) Root() *runtime.Environment {
	return it.root
}
