package eval

import (
	"fmt"

	"github.com/jmcomets/mal/internal/printer"
	"github.com/jmcomets/mal/internal/runtime"
	"github.com/jmcomets/mal/internal/token"
)

// SymbolNotFoundError is raised by symbol lookup and by apply when the
// evaluated head is still an unresolved symbol. Pos is the position of
// the top-level form being evaluated when the lookup failed.
type SymbolNotFoundError struct {
	Name runtime.Symbol
	Pos  token.Position
}

func (e *SymbolNotFoundError) Error() string {
	return fmt.Sprintf("symbol '%s' not found", e.Name)
}
func (e *SymbolNotFoundError) Position() token.Position { return e.Pos }

// CanOnlyDefineSymbolsError is raised when `def!`'s first argument is
// not a Symbol.
type CanOnlyDefineSymbolsError struct {
	Form runtime.Value
	Pos  token.Position
}

func (e *CanOnlyDefineSymbolsError) Error() string {
	return fmt.Sprintf("can only define symbols (not '%s')", printer.PrStr(e.Form, true))
}
func (e *CanOnlyDefineSymbolsError) Position() token.Position { return e.Pos }

// CannotBindArgumentsError is raised when a `let*` binding list or a
// `fn*` parameter list is malformed: odd-length bindings, a non-Symbol
// name, or a `&` not immediately followed by exactly one parameter.
type CannotBindArgumentsError struct {
	Reason string
	Pos    token.Position
}

func (e *CannotBindArgumentsError) Error() string {
	return fmt.Sprintf("cannot bind arguments: %s", e.Reason)
}
func (e *CannotBindArgumentsError) Position() token.Position { return e.Pos }

// NotEvaluableError is raised when a form's evaluated head is neither
// callable nor an unresolved symbol — e.g. calling an Int.
type NotEvaluableError struct {
	Form runtime.Value
	Pos  token.Position
}

func (e *NotEvaluableError) Error() string {
	return fmt.Sprintf("not evaluable: %s", printer.PrStr(e.Form, true))
}
func (e *NotEvaluableError) Position() token.Position { return e.Pos }

// IOErrorWrap pairs an underlying I/O failure with a source position.
// Nothing in this module constructs it: `slurp` (and so `load-file`)
// reports its failures as builtins.IOError.
type IOErrorWrap struct {
	Err error
	Pos token.Position
}

func (e *IOErrorWrap) Error() string            { return fmt.Sprintf("io error: %s", e.Err) }
func (e *IOErrorWrap) Unwrap() error            { return e.Err }
func (e *IOErrorWrap) Position() token.Position { return e.Pos }
