package runtime

import "testing"

func TestVectorLenAndToSlice(t *testing.T) {
	v := NewVector(Int(1), Int(2), Int(3))
	if v.Len() != 3 {
		t.Fatalf("got len %d, want 3", v.Len())
	}
	if len(v.ToSlice()) != 3 {
		t.Fatalf("got %d elements, want 3", len(v.ToSlice()))
	}
}

func TestNewVectorCopiesInput(t *testing.T) {
	items := []Value{Int(1), Int(2)}
	v := NewVector(items...)
	items[0] = Int(99)
	if v.Items[0] != Int(1) {
		t.Error("NewVector must copy its input, not alias it")
	}
}

func TestAsSequence(t *testing.T) {
	if items, ok := AsSequence(NewList(Int(1))); !ok || len(items) != 1 {
		t.Errorf("AsSequence(List) = %v, %v", items, ok)
	}
	if items, ok := AsSequence(NewVector(Int(1), Int(2))); !ok || len(items) != 2 {
		t.Errorf("AsSequence(Vector) = %v, %v", items, ok)
	}
	if _, ok := AsSequence(Int(1)); ok {
		t.Error("expected AsSequence to reject a non-sequence value")
	}
}
