package runtime

// listNode is one cell of a persistent, singly-linked list. Sharing
// nodes between List values is what makes List cheap to clone and
// gives Cons/First/Rest their O(1) cost.
type listNode struct {
	head Value
	tail *listNode
	len  int
}

// List is an immutable persistent sequence. The zero value is the
// empty list.
type List struct {
	node *listNode
}

func (List) Kind() Kind { return KindList }

// EmptyList is the canonical empty List.
var EmptyList = List{}

// NewList builds a List from the given items, in order.
func NewList(items ...Value) List {
	l := EmptyList
	for i := len(items) - 1; i >= 0; i-- {
		l = l.Cons(items[i])
	}
	return l
}

// Cons prepends v, returning a new List that shares the receiver's
// structure.
func (l List) Cons(v Value) List {
	n := 1
	if l.node != nil {
		n = l.node.len + 1
	}
	return List{node: &listNode{head: v, tail: l.node, len: n}}
}

// First returns the head element, or (Nil, false) for an empty list.
func (l List) First() (Value, bool) {
	if l.node == nil {
		return NilValue, false
	}
	return l.node.head, true
}

// Rest returns the tail of the list (sharing structure); the tail of
// an empty list is itself empty.
func (l List) Rest() List {
	if l.node == nil {
		return EmptyList
	}
	return List{node: l.node.tail}
}

// Len returns the number of elements, in O(1).
func (l List) Len() int {
	if l.node == nil {
		return 0
	}
	return l.node.len
}

// Empty reports whether the list has no elements.
func (l List) Empty() bool { return l.node == nil }

// ToSlice materializes the list into a freshly allocated slice, in
// order. Used by printing, iteration and conversion to Vector/Dict.
func (l List) ToSlice() []Value {
	out := make([]Value, l.Len())
	i := 0
	for n := l.node; n != nil; n = n.tail {
		out[i] = n.head
		i++
	}
	return out
}

// Concat returns a new List containing the elements of l followed by
// the elements of other.
func (l List) Concat(other List) List {
	combined := append(l.ToSlice(), other.ToSlice()...)
	return NewList(combined...)
}
