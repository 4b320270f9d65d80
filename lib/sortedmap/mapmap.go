package sortedmap

import (
	"github.com/mlehner/strkit/lib/list"
	"github.com/mlehner/strkit/lib/str"
)

// --------------------------------------------------------------------------
// Map of Maps (key -> ListMap)
// --------------------------------------------------------------------------

// MapMap is a sorted associative map from string keys to owned ListMaps.
// Its combine policy on duplicate keys is replace: the stored nested map
// is released wholesale and the incoming one stored in its place. This
// deliberately differs from the merge policy one level below it - callers
// depend on both behaviors, so the asymmetry is part of the contract.
//
// Thread-safety: not safe for concurrent mutation; serialize externally.
type MapMap struct {
	entries []entry[*ListMap]
}

// NewMapMap creates a new empty map of maps.
func NewMapMap() *MapMap {
	return &MapMap{}
}

// Len returns the number of keys.
func (m *MapMap) Len() int {
	return len(m.entries)
}

// IsEmpty reports whether the map is nil or has no entries.
func (m *MapMap) IsEmpty() bool {
	return m == nil || len(m.entries) == 0
}

// Index returns the position of key in the sorted key array, or -1.
func (m *MapMap) Index(key str.Str) int {
	return find(m.entries, key)
}

// InsertionPoint returns the lower bound for key.
func (m *MapMap) InsertionPoint(key str.Str) int {
	return findPos(m.entries, key)
}

// Contains reports whether key is present.
func (m *MapMap) Contains(key str.Str) bool {
	return find(m.entries, key) >= 0
}

// Get returns the nested map stored under key. The returned pointer
// refers to the owned value inside the map; do not hold it across
// mutations of the outer map.
func (m *MapMap) Get(key str.Str) (*ListMap, bool) {
	if pos := find(m.entries, key); pos >= 0 {
		return m.entries[pos].value, true
	}
	return nil, false
}

// PutOwned inserts the nested map under key, taking ownership of it. The
// source map is reset to empty. On a duplicate key the stored map is
// released and replaced wholesale. A null key releases the value and is
// otherwise a silent no-op.
func (m *MapMap) PutOwned(key str.Str, value *ListMap) {
	if key.IsNull() {
		if value != nil {
			value.Clear()
		}
		discardNullKey()
		return
	}
	if value == nil {
		value = NewListMap()
	}
	owned := NewListMap()
	owned.entries = value.entries
	value.entries = nil
	pos := findPos(m.entries, key)
	if pos < len(m.entries) && str.Cmp(m.entries[pos].key, key) == 0 {
		m.entries[pos].value.Clear()
		m.entries[pos].value = owned
		return
	}
	m.entries = insertAt(m.entries, pos, key, owned)
	checkOrder(m.entries, pos, "mapmap insert")
}

// Put inserts a deep copy of the nested map under key; the source is left
// untouched. Replace semantics on duplicate keys match PutOwned.
func (m *MapMap) Put(key str.Str, value *ListMap) {
	m.PutOwned(key, value.Dup())
}

// Delete removes the entry for key, releasing key and the nested map.
// Deleting a missing key is a no-op.
func (m *MapMap) Delete(key str.Str) {
	if pos := find(m.entries, key); pos >= 0 {
		m.entries[pos].value.Clear()
		m.entries = removeAt(m.entries, pos)
	}
}

// Keys returns a new owned list of duplicated keys in sorted order.
func (m *MapMap) Keys() *list.List {
	return keysOf(m.entries)
}

// Range calls fn for each entry in sorted key order until fn returns
// false. The map must not be mutated from inside fn.
func (m *MapMap) Range(fn func(key str.Str, value *ListMap) bool) {
	for i := range m.entries {
		if !fn(m.entries[i].key, m.entries[i].value) {
			return
		}
	}
}

// Dup returns a deep copy of the map and every nested map. A nil receiver
// duplicates to nil.
func (m *MapMap) Dup() *MapMap {
	if m == nil {
		return nil
	}
	res := NewMapMap()
	res.entries = make([]entry[*ListMap], len(m.entries))
	for i := range m.entries {
		res.entries[i] = entry[*ListMap]{
			key:   m.entries[i].key.Dup(),
			value: m.entries[i].value.Dup(),
		}
	}
	return res
}

// Equal reports whether both maps hold the same keys with equal nested
// maps, in the same order.
func (m *MapMap) Equal(other *MapMap) bool {
	if m.Len() != other.Len() {
		return false
	}
	for i := range m.entries {
		if str.Cmp(m.entries[i].key, other.entries[i].key) != 0 ||
			!m.entries[i].value.Equal(other.entries[i].value) {
			return false
		}
	}
	return true
}

// Clear releases every key and nested map recursively and resets the map
// to empty. Clearing twice is safe.
func (m *MapMap) Clear() {
	for i := range m.entries {
		m.entries[i].value.Clear()
	}
	m.entries = nil
}
