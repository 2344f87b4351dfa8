package runtime

// Atom is a mutable, shared cell holding exactly one Value. Every Atom
// Value sharing the same *Atom pointer observes the same mutations —
// that sharing, not the struct itself, is what makes Atom a reference
// type.
type Atom struct {
	value Value
}

func (*Atom) Kind() Kind { return KindAtom }

// NewAtom creates a fresh cell containing v.
func NewAtom(v Value) *Atom {
	return &Atom{value: v}
}

// Deref returns the cell's current contents.
func (a *Atom) Deref() Value { return a.value }

// Reset replaces the cell's contents and returns the new value. The
// interpreter is single-threaded, so no synchronization is needed: the
// replace is atomic from every observer's viewpoint simply because
// nothing else can run between the read and the write.
func (a *Atom) Reset(v Value) Value {
	a.value = v
	return v
}
