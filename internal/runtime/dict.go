package runtime

// dictEntry pairs the original key Value (for printing/iteration) with
// its bound value. The HashKey is only used for lookup.
type dictEntry struct {
	key Value
	val Value
}

// Dict is a persistent map from Hashable keys to Values. Every
// mutating operation (Assoc) returns a new Dict; the receiver is left
// untouched.
type Dict struct {
	order []HashKey
	data  map[HashKey]*dictEntry
}

func (Dict) Kind() Kind { return KindDict }

// EmptyDict is the canonical zero-entry Dict.
var EmptyDict = Dict{}

// NewDict builds a Dict from alternating key/value Values. An odd
// count, or a non-Hashable or duplicate key, is normally caught by the
// reader; NewDict itself just reports the same failure modes via error
// so other callers (e.g. assoc-style built-ins) can reuse it.
func NewDict(kvs []Value) (Dict, error) {
	d := Dict{data: make(map[HashKey]*dictEntry, len(kvs)/2)}
	for i := 0; i+1 < len(kvs); i += 2 {
		var err error
		d, err = d.Assoc(kvs[i], kvs[i+1])
		if err != nil {
			return Dict{}, err
		}
	}
	return d, nil
}

// Assoc returns a new Dict with key bound to val, cloning the
// receiver's entries.
func (d Dict) Assoc(key, val Value) (Dict, error) {
	hk, err := ToHashKey(key)
	if err != nil {
		return Dict{}, err
	}

	newData := make(map[HashKey]*dictEntry, len(d.data)+1)
	for k, v := range d.data {
		newData[k] = v
	}
	_, existed := newData[hk]
	newData[hk] = &dictEntry{key: key, val: val}

	newOrder := d.order
	if !existed {
		newOrder = make([]HashKey, len(d.order)+1)
		copy(newOrder, d.order)
		newOrder[len(d.order)] = hk
	}

	return Dict{order: newOrder, data: newData}, nil
}

// Get looks up key, reporting found=false if it is absent, and an
// error only if key itself is not Hashable.
func (d Dict) Get(key Value) (val Value, found bool, err error) {
	hk, err := ToHashKey(key)
	if err != nil {
		return nil, false, err
	}
	entry, ok := d.data[hk]
	if !ok {
		return nil, false, nil
	}
	return entry.val, true, nil
}

// Len returns the number of entries.
func (d Dict) Len() int { return len(d.data) }

// Range iterates entries in insertion order, calling f(key, val) for
// each. Iteration stops early if f returns false.
func (d Dict) Range(f func(key, val Value) bool) {
	for _, hk := range d.order {
		entry := d.data[hk]
		if entry == nil {
			continue
		}
		if !f(entry.key, entry.val) {
			return
		}
	}
}
