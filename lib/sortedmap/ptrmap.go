package sortedmap

import (
	"github.com/mlehner/strkit/lib/list"
	"github.com/mlehner/strkit/lib/str"
)

// --------------------------------------------------------------------------
// Generic Pointer Map (key -> owned pointer + destructor)
// --------------------------------------------------------------------------

// PtrMap is a sorted associative map from string keys to owned pointers
// of an arbitrary type, with a single destructor attached to the whole
// map. The destructor runs on every stored value exactly once: on
// overwrite, on Delete, and on Free.
//
// Insertion is transfer-only. A destructor-bearing map implies ownership
// transfer, so there is no duplicating insertion path: once Put returns,
// the map owns the pointer and the caller must not use it again.
//
// Thread-safety: not safe for concurrent mutation; serialize externally.
type PtrMap[V any] struct {
	entries []entry[*V]
	free    func(*V)
}

// NewPtrMap creates a new empty pointer map with the given destructor.
// A nil destructor is allowed and makes teardown a plain forget.
func NewPtrMap[V any](free func(*V)) *PtrMap[V] {
	return &PtrMap[V]{free: free}
}

// Len returns the number of entries.
func (m *PtrMap[V]) Len() int {
	return len(m.entries)
}

// IsEmpty reports whether the map is nil or has no entries.
func (m *PtrMap[V]) IsEmpty() bool {
	return m == nil || len(m.entries) == 0
}

// Index returns the position of key in the sorted key array, or -1.
func (m *PtrMap[V]) Index(key str.Str) int {
	return find(m.entries, key)
}

// InsertionPoint returns the lower bound for key.
func (m *PtrMap[V]) InsertionPoint(key str.Str) int {
	return findPos(m.entries, key)
}

// Contains reports whether key is present.
func (m *PtrMap[V]) Contains(key str.Str) bool {
	return find(m.entries, key) >= 0
}

// Get returns the pointer stored under key, or nil when the key is not
// present. The map retains ownership.
func (m *PtrMap[V]) Get(key str.Str) (*V, bool) {
	if pos := find(m.entries, key); pos >= 0 {
		return m.entries[pos].value, true
	}
	return nil, false
}

// Put inserts value under key, taking ownership of it. On a duplicate key
// the destructor runs on the old value and the new one is stored. A null
// key destroys the value and is otherwise a silent no-op; a nil value is
// discarded so the map never holds a nil entry.
func (m *PtrMap[V]) Put(key str.Str, value *V) {
	if key.IsNull() {
		m.destroy(value)
		discardNullKey()
		return
	}
	if value == nil {
		return
	}
	pos := findPos(m.entries, key)
	if pos < len(m.entries) && str.Cmp(m.entries[pos].key, key) == 0 {
		m.destroy(m.entries[pos].value)
		m.entries[pos].value = value
		return
	}
	m.entries = insertAt(m.entries, pos, key, value)
}

// Delete removes the entry for key and runs the destructor on its value.
// Deleting a missing key is a no-op.
func (m *PtrMap[V]) Delete(key str.Str) {
	if pos := find(m.entries, key); pos >= 0 {
		m.destroy(m.entries[pos].value)
		m.entries = removeAt(m.entries, pos)
	}
}

// Keys returns a new owned list of duplicated keys in sorted order.
func (m *PtrMap[V]) Keys() *list.List {
	return keysOf(m.entries)
}

// Range calls fn for each entry in sorted key order until fn returns
// false. The map must not be mutated from inside fn.
func (m *PtrMap[V]) Range(fn func(key str.Str, value *V) bool) {
	for i := range m.entries {
		if !fn(m.entries[i].key, m.entries[i].value) {
			return
		}
	}
}

// Free runs the destructor on every stored value and resets the map to
// empty. The destructor is kept, so the map can be reused; freeing twice
// is safe.
func (m *PtrMap[V]) Free() {
	for i := range m.entries {
		m.destroy(m.entries[i].value)
	}
	m.entries = nil
}

func (m *PtrMap[V]) destroy(value *V) {
	if value != nil && m.free != nil {
		m.free(value)
	}
}
