package builtins

import (
	"testing"

	"github.com/jmcomets/mal/internal/runtime"
)

func TestAtomLifecycle(t *testing.T) {
	env := newRootEnv()
	a := call(t, env, "atom", runtime.Int(2))
	if _, ok := a.(*runtime.Atom); !ok {
		t.Fatalf("got %#v, want *runtime.Atom", a)
	}
	if got := call(t, env, "deref", a); got != runtime.Int(2) {
		t.Errorf("got %#v, want Int(2)", got)
	}
	if got := call(t, env, "reset!", a, runtime.Int(5)); got != runtime.Int(5) {
		t.Errorf("got %#v, want Int(5)", got)
	}
	if got := call(t, env, "deref", a); got != runtime.Int(5) {
		t.Errorf("got %#v, want Int(5) after reset!", got)
	}
}

func TestDerefRejectsNonAtom(t *testing.T) {
	env := newRootEnv()
	v, _ := env.Get("deref")
	fn := v.(runtime.Native)
	if _, err := fn.Fn([]runtime.Value{runtime.Int(1)}); err == nil {
		t.Error("expected an error deref-ing a non-atom")
	}
}

func TestSwapWithNative(t *testing.T) {
	env := newRootEnv()
	a := call(t, env, "atom", runtime.Int(2))
	plus, _ := env.Get("+")
	got := call(t, env, "swap!", a, plus, runtime.Int(3))
	if got != runtime.Int(5) {
		t.Errorf("got %#v, want Int(5)", got)
	}
	if got := call(t, env, "deref", a); got != runtime.Int(5) {
		t.Errorf("got %#v, want the atom updated in place", got)
	}
}

func TestSwapWithUserFn(t *testing.T) {
	env := newRootEnv()
	a := call(t, env, "atom", runtime.Int(10))
	fn := &runtime.UserFn{
		Params: []runtime.Symbol{"x"},
		Body:   runtime.Symbol("x"),
		Env:    env,
	}
	got := call(t, env, "swap!", a, fn)
	if got != runtime.Int(10) {
		t.Errorf("got %#v, want Int(10) (identity fn)", got)
	}
}

func TestSwapRejectsNonCallable(t *testing.T) {
	env := newRootEnv()
	a := call(t, env, "atom", runtime.Int(1))
	v, _ := env.Get("swap!")
	fn := v.(runtime.Native)
	if _, err := fn.Fn([]runtime.Value{a, runtime.Int(1)}); err == nil {
		t.Error("expected an error swapping with a non-callable")
	}
}
