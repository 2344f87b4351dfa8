package builtins

import (
	"testing"

	"github.com/jmcomets/mal/internal/runtime"
)

func TestEqualityBuiltins(t *testing.T) {
	env := newRootEnv()
	if got := call(t, env, "=", runtime.Int(1), runtime.Int(1)); got != runtime.Bool(true) {
		t.Errorf("got %#v, want true", got)
	}
	if got := call(t, env, "!=", runtime.Int(1), runtime.Int(2)); got != runtime.Bool(true) {
		t.Errorf("got %#v, want true", got)
	}
}

func TestNotIsStrict(t *testing.T) {
	env := newRootEnv()
	cases := []struct {
		v    runtime.Value
		want runtime.Bool
	}{
		{runtime.NilValue, true},
		{runtime.Bool(false), true},
		{runtime.Bool(true), false},
		{runtime.Int(0), false},
		{runtime.EmptyList, false},
		{runtime.Str(""), false},
	}
	for _, tc := range cases {
		if got := call(t, env, "not", tc.v); got != tc.want {
			t.Errorf("not(%#v) = %#v, want %v", tc.v, got, tc.want)
		}
	}
}

func TestTypePredicates(t *testing.T) {
	env := newRootEnv()
	if call(t, env, "nil?", runtime.NilValue) != runtime.Bool(true) {
		t.Error("expected nil? of Nil to be true")
	}
	if call(t, env, "nil?", runtime.Int(1)) != runtime.Bool(false) {
		t.Error("expected nil? of Int to be false")
	}
	if call(t, env, "list?", runtime.EmptyList) != runtime.Bool(true) {
		t.Error("expected list? of a List to be true")
	}
	if call(t, env, "list?", runtime.NewVector()) != runtime.Bool(false) {
		t.Error("expected list? of a Vector to be false")
	}
	if call(t, env, "atom?", runtime.NewAtom(runtime.Int(1))) != runtime.Bool(true) {
		t.Error("expected atom? of an Atom to be true")
	}
}
