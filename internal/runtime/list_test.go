package runtime

import "testing"

func TestListConsFirstRest(t *testing.T) {
	l := NewList(Int(1), Int(2), Int(3))
	if l.Len() != 3 {
		t.Fatalf("got len %d, want 3", l.Len())
	}
	head, ok := l.First()
	if !ok || head != Int(1) {
		t.Fatalf("got head %#v, want Int(1)", head)
	}
	rest := l.Rest()
	if rest.Len() != 2 {
		t.Fatalf("got rest len %d, want 2", rest.Len())
	}
}

func TestListConsSharesStructure(t *testing.T) {
	base := NewList(Int(2), Int(3))
	withHead := base.Cons(Int(1))

	if base.Len() != 2 {
		t.Fatalf("cons must not mutate the receiver, got len %d", base.Len())
	}
	if withHead.Len() != 3 {
		t.Fatalf("got len %d, want 3", withHead.Len())
	}
	if withHead.Rest().Len() != base.Len() {
		t.Fatalf("expected tail to share structure with base")
	}
}

func TestEmptyListFirstRest(t *testing.T) {
	if _, ok := EmptyList.First(); ok {
		t.Error("expected First on an empty list to report ok=false")
	}
	if !EmptyList.Rest().Empty() {
		t.Error("expected Rest of an empty list to remain empty")
	}
}

func TestListConcat(t *testing.T) {
	a := NewList(Int(1))
	b := NewList(Int(2), Int(3))
	got := a.Concat(b).ToSlice()
	want := []Value{Int(1), Int(2), Int(3)}
	if !equalSlices(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestListToSliceOrder(t *testing.T) {
	l := NewList(Int(1), Int(2), Int(3))
	got := l.ToSlice()
	want := []Value{Int(1), Int(2), Int(3)}
	if !equalSlices(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}
