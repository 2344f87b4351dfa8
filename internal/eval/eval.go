// Package eval implements the tail-call-eliminating evaluator: a
// single loop that rebinds the working (form, env) pair for every tail
// position — special forms, the body of an applied User function —
// and recurses only for subexpressions that must reduce before the
// tail step. This is a Go `for` loop doing the job a call-stack-using
// recursive evaluator would otherwise do, so that deep tail recursion
// costs no Go stack.
package eval

import (
	"github.com/jmcomets/mal/internal/errors"
	"github.com/jmcomets/mal/internal/runtime"
	"github.com/jmcomets/mal/internal/token"
)

const (
	symDef       = runtime.Symbol("def!")
	symLet       = runtime.Symbol("let*")
	symDo        = runtime.Symbol("do")
	symIf        = runtime.Symbol("if")
	symFn        = runtime.Symbol("fn*")
	symAmpersand = runtime.Symbol("&")
)

// Eval evaluates form in env, looping in place for every tail position
// instead of recursing, so that self-tail-recursive mal functions run
// in constant Go stack space. Errors raised evaluating form carry no
// source position; callers that have one (the reader hands one back
// alongside every form it parses) should call EvalAt instead so errors
// can be reported with source context.
func Eval(form runtime.Value, env *runtime.Environment) (runtime.Value, error) {
	return EvalAt(form, env, token.Position{})
}

// EvalAt is Eval, additionally attaching pos — the position of the
// top-level form being evaluated — to any error it raises, so a CLI
// front end can report the failure against the original source.
func EvalAt(form runtime.Value, env *runtime.Environment, pos token.Position) (runtime.Value, error) {
	for {
		list, ok := form.(runtime.List)
		if !ok {
			return evalAst(form, env, pos)
		}
		if list.Empty() {
			return list, nil
		}

		head, _ := list.First()
		if sym, isSymbol := head.(runtime.Symbol); isSymbol {
			switch sym {
			case symDef:
				return evalDef(list, env, pos)
			case symLet:
				newForm, newEnv, err := evalLet(list, env, pos)
				if err != nil {
					return nil, err
				}
				form, env = newForm, newEnv
				continue
			case symDo:
				newForm, err := evalDo(list, env, pos)
				if err != nil {
					return nil, err
				}
				form = newForm
				continue
			case symIf:
				newForm, err := evalIf(list, env, pos)
				if err != nil {
					return nil, err
				}
				form = newForm
				continue
			case symFn:
				return evalFn(list, env, pos)
			}
		}

		evaluated, err := evalAst(list, env, pos)
		if err != nil {
			return nil, err
		}
		evaluatedList := evaluated.(runtime.List)
		items := evaluatedList.ToSlice()
		callee, args := items[0], items[1:]

		switch fn := callee.(type) {
		case runtime.Native:
			result, err := fn.Fn(args)
			if err != nil {
				attachPosition(err, pos)
				return nil, err
			}
			return result, nil
		case *runtime.UserFn:
			child, err := fn.Bind(args)
			if err != nil {
				return nil, err
			}
			form, env = fn.Body, child
			continue
		case runtime.Symbol:
			return nil, &SymbolNotFoundError{Name: fn, Pos: pos}
		default:
			return nil, &NotEvaluableError{Form: callee, Pos: pos}
		}
	}
}

// attachPosition fills in pos on err if err knows how to carry one
// (built-ins construct their errors with no position of their own,
// since they never see the call form that invoked them).
func attachPosition(err error, pos token.Position) {
	if ps, ok := err.(errors.PositionSetter); ok {
		ps.SetPosition(pos)
	}
}

// evalAst evaluates the non-special-form shapes: Symbol lookups, and
// recursive elementwise evaluation of List, Vector and Dict (Dict keys
// are carried through unevaluated). Any other value evaluates to
// itself.
func evalAst(form runtime.Value, env *runtime.Environment, pos token.Position) (runtime.Value, error) {
	switch x := form.(type) {
	case runtime.Symbol:
		v, ok := env.Get(x)
		if !ok {
			return nil, &SymbolNotFoundError{Name: x, Pos: pos}
		}
		return v, nil
	case runtime.List:
		items, err := evalEach(x.ToSlice(), env, pos)
		if err != nil {
			return nil, err
		}
		return runtime.NewList(items...), nil
	case runtime.Vector:
		items, err := evalEach(x.Items, env, pos)
		if err != nil {
			return nil, err
		}
		return runtime.NewVector(items...), nil
	case runtime.Dict:
		out := runtime.EmptyDict
		var assocErr error
		x.Range(func(k, v runtime.Value) bool {
			evaluatedVal, err := EvalAt(v, env, pos)
			if err != nil {
				assocErr = err
				return false
			}
			out, assocErr = out.Assoc(k, evaluatedVal)
			return assocErr == nil
		})
		if assocErr != nil {
			return nil, assocErr
		}
		return out, nil
	default:
		return form, nil
	}
}

func evalEach(forms []runtime.Value, env *runtime.Environment, pos token.Position) ([]runtime.Value, error) {
	out := make([]runtime.Value, len(forms))
	for i, f := range forms {
		v, err := EvalAt(f, env, pos)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// evalDef implements `def! name value_form`: arity 2, name must be a
// Symbol, installs in env (never walking outward) and returns the
// bound value.
func evalDef(list runtime.List, env *runtime.Environment, pos token.Position) (runtime.Value, error) {
	args := list.Rest().ToSlice()
	if len(args) != 2 {
		return nil, &runtime.ArityError{Expected: 2, Got: len(args)}
	}
	name, ok := args[0].(runtime.Symbol)
	if !ok {
		return nil, &CanOnlyDefineSymbolsError{Form: args[0], Pos: pos}
	}
	value, err := EvalAt(args[1], env, pos)
	if err != nil {
		return nil, err
	}
	env.Define(name, value)
	return value, nil
}

// evalLet implements `let* bindings body_form`: a child environment,
// bindings installed left-to-right so later bindings see earlier ones,
// and the body rewritten into tail position for the caller's loop to
// continue on.
func evalLet(list runtime.List, env *runtime.Environment, pos token.Position) (runtime.Value, *runtime.Environment, error) {
	args := list.Rest().ToSlice()
	if len(args) != 2 {
		return nil, nil, &runtime.ArityError{Expected: 2, Got: len(args)}
	}
	bindingForms, ok := runtime.AsSequence(args[0])
	if !ok {
		return nil, nil, &CannotBindArgumentsError{Reason: "let* bindings must be a list or vector", Pos: pos}
	}
	if len(bindingForms)%2 != 0 {
		return nil, nil, &CannotBindArgumentsError{Reason: "let* bindings must have an even number of elements", Pos: pos}
	}

	child := runtime.NewEnclosedEnvironment(env)
	for i := 0; i+1 < len(bindingForms); i += 2 {
		name, ok := bindingForms[i].(runtime.Symbol)
		if !ok {
			return nil, nil, &CannotBindArgumentsError{Reason: "let* binding name must be a symbol", Pos: pos}
		}
		value, err := EvalAt(bindingForms[i+1], child, pos)
		if err != nil {
			return nil, nil, err
		}
		child.Define(name, value)
	}

	return args[1], child, nil
}

// evalDo implements `do expr...`: every expression but the last is
// evaluated for its side effects; the last is returned unevaluated for
// the caller's loop to continue on in tail position. Empty `do`
// evaluates to Nil.
func evalDo(list runtime.List, env *runtime.Environment, pos token.Position) (runtime.Value, error) {
	exprs := list.Rest().ToSlice()
	if len(exprs) == 0 {
		return runtime.NilValue, nil
	}
	for _, e := range exprs[:len(exprs)-1] {
		if _, err := EvalAt(e, env, pos); err != nil {
			return nil, err
		}
	}
	return exprs[len(exprs)-1], nil
}

// evalIf implements `if cond then [else]`: arity 2 or 3, Nil/false
// takes the else branch (Nil if absent).
func evalIf(list runtime.List, env *runtime.Environment, pos token.Position) (runtime.Value, error) {
	args := list.Rest().ToSlice()
	if len(args) != 2 && len(args) != 3 {
		return nil, &runtime.ArityError{Expected: 3, Got: len(args)}
	}
	cond, err := EvalAt(args[0], env, pos)
	if err != nil {
		return nil, err
	}
	if runtime.IsTruthy(cond) {
		return args[1], nil
	}
	if len(args) == 3 {
		return args[2], nil
	}
	return runtime.NilValue, nil
}

// evalFn implements `fn* params body`: params is a List or Vector of
// Symbols, optionally ending in `&` followed by a single variadic-rest
// Symbol. Captures env by reference.
func evalFn(list runtime.List, env *runtime.Environment, pos token.Position) (runtime.Value, error) {
	args := list.Rest().ToSlice()
	if len(args) != 2 {
		return nil, &runtime.ArityError{Expected: 2, Got: len(args)}
	}
	paramForms, ok := runtime.AsSequence(args[0])
	if !ok {
		return nil, &CannotBindArgumentsError{Reason: "fn* parameters must be a list or vector", Pos: pos}
	}

	var params []runtime.Symbol
	var variadic runtime.Symbol
	hasRest := false
	for i := 0; i < len(paramForms); i++ {
		sym, ok := paramForms[i].(runtime.Symbol)
		if !ok {
			return nil, &CannotBindArgumentsError{Reason: "fn* parameter names must be symbols", Pos: pos}
		}
		if sym == symAmpersand {
			if i != len(paramForms)-2 {
				return nil, &CannotBindArgumentsError{Reason: "'&' must be followed by exactly one variadic parameter, last", Pos: pos}
			}
			rest, ok := paramForms[i+1].(runtime.Symbol)
			if !ok {
				return nil, &CannotBindArgumentsError{Reason: "variadic parameter name must be a symbol", Pos: pos}
			}
			variadic = rest
			hasRest = true
			break
		}
		params = append(params, sym)
	}

	return &runtime.UserFn{
		Params:   params,
		Variadic: variadic,
		HasRest:  hasRest,
		Body:     args[1],
		Env:      env,
	}, nil
}
