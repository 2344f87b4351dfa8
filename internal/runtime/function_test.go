package runtime

import "testing"

func TestUserFnBindPositional(t *testing.T) {
	root := NewEnvironment()
	fn := &UserFn{Params: []Symbol{"x", "y"}, Env: root}

	env, err := fn.Bind([]Value{Int(1), Int(2)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	x, _ := env.Get("x")
	y, _ := env.Get("y")
	if x != Int(1) || y != Int(2) {
		t.Errorf("got x=%#v y=%#v", x, y)
	}
}

func TestUserFnBindVariadic(t *testing.T) {
	root := NewEnvironment()
	fn := &UserFn{Params: []Symbol{"x"}, Variadic: "rest", HasRest: true, Env: root}

	env, err := fn.Bind([]Value{Int(1), Int(2), Int(3)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rest, _ := env.Get("rest")
	restList, ok := rest.(List)
	if !ok || restList.Len() != 2 {
		t.Fatalf("got %#v, want a 2-element list", rest)
	}
}

func TestUserFnBindArityError(t *testing.T) {
	fn := &UserFn{Params: []Symbol{"x", "y"}, Env: NewEnvironment()}
	if _, err := fn.Bind([]Value{Int(1)}); err == nil {
		t.Error("expected an arity error for too few arguments")
	}
}

func TestIsCallable(t *testing.T) {
	if !IsCallable(Native{}) {
		t.Error("expected Native to be callable")
	}
	if !IsCallable(&UserFn{}) {
		t.Error("expected *UserFn to be callable")
	}
	if IsCallable(Int(1)) {
		t.Error("expected Int to not be callable")
	}
}
