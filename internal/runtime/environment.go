package runtime

// Environment is a scope chain node with shared-ownership semantics:
// a child always holds a strong reference to its outer, and a User
// closure holds a strong reference to the Environment captured at
// definition time. Mutation of bindings in one Environment value is
// visible through every other reference to the same node, since
// Environment is always handled by pointer.
//
// This mirrors the teacher's runtime.Environment (store + outer link,
// Get walks outward, Set/Define write locally), adapted from
// DWScript's case-insensitive identifiers to mal's case-sensitive
// Symbols and from DWScript's Set-or-error/Define split to mal's
// single innermost-only `def!`: def! always installs into the
// innermost (current) environment, and nothing ever walks outward to
// mutate a binding in an enclosing scope.
type Environment struct {
	store map[Symbol]Value
	outer *Environment
}

// NewEnvironment creates a new root environment with no outer scope.
func NewEnvironment() *Environment {
	return &Environment{store: make(map[Symbol]Value)}
}

// NewEnclosedEnvironment creates a child scope of outer.
func NewEnclosedEnvironment(outer *Environment) *Environment {
	return &Environment{store: make(map[Symbol]Value), outer: outer}
}

// Get resolves name by walking outward from the receiver until found
// or the root is exhausted.
func (e *Environment) Get(name Symbol) (Value, bool) {
	for env := e; env != nil; env = env.outer {
		if v, ok := env.store[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Set installs name in the receiver's own bindings only — it never
// walks outward. This is the single mutating primitive: `def!`,
// `let*` bindings and parameter binding at apply time all go through
// it. There is no general "mutate a binding found in an outer scope"
// operation in this language; Atom cells are the only shared mutable
// state.
func (e *Environment) Set(name Symbol, v Value) {
	e.store[name] = v
}

// Define is an alias for Set, used at call sites that are binding a
// fresh name (parameters, `def!`) rather than re-assigning one, purely
// to read intent at the call site.
func (e *Environment) Define(name Symbol, v Value) {
	e.Set(name, v)
}

// Outer returns the parent environment, or nil at the root.
func (e *Environment) Outer() *Environment { return e.outer }
