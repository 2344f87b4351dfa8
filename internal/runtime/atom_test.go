package runtime

import "testing"

func TestAtomDerefAndReset(t *testing.T) {
	a := NewAtom(Int(1))
	if a.Deref() != Int(1) {
		t.Fatalf("got %#v, want Int(1)", a.Deref())
	}
	got := a.Reset(Int(2))
	if got != Int(2) || a.Deref() != Int(2) {
		t.Errorf("Reset should return and store the new value, got %#v / %#v", got, a.Deref())
	}
}

func TestAtomAliasingIsObservable(t *testing.T) {
	a := NewAtom(Int(1))
	var alias Value = a
	a.Reset(Int(5))
	if alias.(*Atom).Deref() != Int(5) {
		t.Error("expected mutation through one reference to be visible through an alias")
	}
}
