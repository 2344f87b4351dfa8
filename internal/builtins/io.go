package builtins

import (
	"fmt"
	"os"

	"github.com/jmcomets/mal/internal/printer"
	"github.com/jmcomets/mal/internal/reader"
	"github.com/jmcomets/mal/internal/runtime"
	"github.com/jmcomets/mal/internal/token"
)

// IOError wraps an underlying failure from `slurp`. Pos is filled in
// by the evaluator, which knows where the call form that triggered it
// came from.
type IOError struct {
	Path string
	Err  error
	Pos  token.Position
}

func (e *IOError) Error() string                { return fmt.Sprintf("io error: %s: %s", e.Path, e.Err) }
func (e *IOError) Unwrap() error                { return e.Err }
func (e *IOError) Position() token.Position     { return e.Pos }
func (e *IOError) SetPosition(p token.Position) { e.Pos = p }

func ioBuiltins() map[string]runtime.Native {
	return map[string]runtime.Native{
		"pr-str": {Name: "pr-str", Fn: func(args []runtime.Value) (runtime.Value, error) {
			return runtime.Str(printer.PrStrJoined(args)), nil
		}},
		"str": {Name: "str", Fn: func(args []runtime.Value) (runtime.Value, error) {
			return runtime.Str(printer.Str(args)), nil
		}},
		"prn": {Name: "prn", Fn: func(args []runtime.Value) (runtime.Value, error) {
			fmt.Println(printer.PrStrJoined(args))
			return runtime.NilValue, nil
		}},
		"println": {Name: "println", Fn: func(args []runtime.Value) (runtime.Value, error) {
			fmt.Println(printer.RawJoined(args))
			return runtime.NilValue, nil
		}},
		"read-string": {Name: "read-string", Fn: func(args []runtime.Value) (runtime.Value, error) {
			if err := checkArity("read-string", args, 1); err != nil {
				return nil, err
			}
			s, ok := args[0].(runtime.Str)
			if !ok {
				return nil, &runtime.TypeError{Context: "read-string requires a string"}
			}
			return reader.ReadStr(string(s))
		}},
		"slurp": {Name: "slurp", Fn: func(args []runtime.Value) (runtime.Value, error) {
			if err := checkArity("slurp", args, 1); err != nil {
				return nil, err
			}
			path, ok := args[0].(runtime.Str)
			if !ok {
				return nil, &runtime.TypeError{Context: "slurp requires a string path"}
			}
			data, err := os.ReadFile(string(path))
			if err != nil {
				return nil, &IOError{Path: string(path), Err: err}
			}
			return runtime.Str(data), nil
		}},
	}
}
