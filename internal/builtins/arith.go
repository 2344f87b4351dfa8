// Package builtins seeds a root Environment with the native bindings
// the language ships out of the box: arithmetic, comparisons,
// equality, type predicates, collection primitives, printing/IO and
// atom operations. Each binding is a runtime.Native wrapping a Go
// closure, grounded on the teacher's table-driven registration of its
// own standard library (internal/interp/stdlib in the teacher repo)
// generalized from DWScript's built-ins to mal's.
package builtins

import (
	"fmt"

	"github.com/jmcomets/mal/internal/runtime"
	"github.com/jmcomets/mal/internal/token"
)

// DivisionByZeroError is raised by Int `/` and kept distinct from the
// general TypeError so callers can tell "wrong operand types" apart
// from "arithmetically undefined". Pos is filled in by the evaluator,
// which knows where the call form that triggered it came from.
type DivisionByZeroError struct {
	Pos token.Position
}

func (e *DivisionByZeroError) Error() string                { return "division by zero" }
func (e *DivisionByZeroError) Position() token.Position     { return e.Pos }
func (e *DivisionByZeroError) SetPosition(p token.Position) { e.Pos = p }

func checkArity(name string, args []runtime.Value, n int) error {
	if len(args) != n {
		return &runtime.ArityError{Expected: n, Got: len(args)}
	}
	return nil
}

func numericOp(name string, intOp func(a, b int64) int64, floatOp func(a, b float64) float64) runtime.Native {
	return runtime.Native{Name: name, Fn: func(args []runtime.Value) (runtime.Value, error) {
		if err := checkArity(name, args, 2); err != nil {
			return nil, err
		}
		af, aIsInt, aOk := runtime.AsNumber(args[0])
		bf, bIsInt, bOk := runtime.AsNumber(args[1])
		if !aOk || !bOk {
			return nil, &runtime.TypeError{Context: fmt.Sprintf("%s requires numbers", name)}
		}
		if aIsInt && bIsInt && intOp != nil {
			return runtime.Int(intOp(int64(af), int64(bf))), nil
		}
		return runtime.Float(floatOp(af, bf)), nil
	}}
}

func add(a, b int64) int64 { return a + b }
func sub(a, b int64) int64 { return a - b }
func mul(a, b int64) int64 { return a * b }

func addF(a, b float64) float64 { return a + b }
func subF(a, b float64) float64 { return a - b }
func mulF(a, b float64) float64 { return a * b }

// divide is hand-written (not numericOp) because Int division by zero
// must fail with a distinct error rather than widen silently into a
// float divide.
var divide = runtime.Native{Name: "/", Fn: func(args []runtime.Value) (runtime.Value, error) {
	if err := checkArity("/", args, 2); err != nil {
		return nil, err
	}
	af, aIsInt, aOk := runtime.AsNumber(args[0])
	bf, bIsInt, bOk := runtime.AsNumber(args[1])
	if !aOk || !bOk {
		return nil, &runtime.TypeError{Context: "/ requires numbers"}
	}
	if aIsInt && bIsInt {
		if int64(bf) == 0 {
			return nil, &DivisionByZeroError{}
		}
		return runtime.Int(int64(af) / int64(bf)), nil
	}
	return runtime.Float(af / bf), nil
}}

func comparisonOp(name string, cmp func(a, b float64) bool) runtime.Native {
	return runtime.Native{Name: name, Fn: func(args []runtime.Value) (runtime.Value, error) {
		if err := checkArity(name, args, 2); err != nil {
			return nil, err
		}
		af, _, aOk := runtime.AsNumber(args[0])
		bf, _, bOk := runtime.AsNumber(args[1])
		if !aOk || !bOk {
			return nil, &runtime.TypeError{Context: fmt.Sprintf("%s requires numbers", name)}
		}
		return runtime.Bool(cmp(af, bf)), nil
	}}
}

func unaryNumericOp(name string, intOp func(a int64) int64, floatOp func(a float64) float64) runtime.Native {
	return runtime.Native{Name: name, Fn: func(args []runtime.Value) (runtime.Value, error) {
		if err := checkArity(name, args, 1); err != nil {
			return nil, err
		}
		f, isInt, ok := runtime.AsNumber(args[0])
		if !ok {
			return nil, &runtime.TypeError{Context: fmt.Sprintf("%s requires a number", name)}
		}
		if isInt {
			return runtime.Int(intOp(int64(f))), nil
		}
		return runtime.Float(floatOp(f)), nil
	}}
}

func arithmeticBuiltins() map[string]runtime.Native {
	return map[string]runtime.Native{
		"+": numericOp("+", add, addF),
		"-": numericOp("-", sub, subF),
		"*": numericOp("*", mul, mulF),
		"/": divide,

		"<":  comparisonOp("<", func(a, b float64) bool { return a < b }),
		"<=": comparisonOp("<=", func(a, b float64) bool { return a <= b }),
		">":  comparisonOp(">", func(a, b float64) bool { return a > b }),
		">=": comparisonOp(">=", func(a, b float64) bool { return a >= b }),

		"inc": unaryNumericOp("inc", func(a int64) int64 { return a + 1 }, func(a float64) float64 { return a + 1 }),
		"dec": unaryNumericOp("dec", func(a int64) int64 { return a - 1 }, func(a float64) float64 { return a - 1 }),
	}
}
