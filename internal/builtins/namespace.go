package builtins

import "github.com/jmcomets/mal/internal/runtime"

// Install binds every native built-in this package defines into env.
func Install(env *runtime.Environment) {
	groups := []map[string]runtime.Native{
		arithmeticBuiltins(),
		equalityBuiltins(),
		typePredicateBuiltins(),
		collectionBuiltins(),
		ioBuiltins(),
		atomBuiltins(),
	}
	for _, group := range groups {
		for name, fn := range group {
			env.Define(runtime.Symbol(name), fn)
		}
	}
}
