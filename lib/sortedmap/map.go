package sortedmap

import (
	"github.com/mlehner/strkit/lib/list"
	"github.com/mlehner/strkit/lib/str"
)

// --------------------------------------------------------------------------
// Flat Map (key -> scalar string)
// --------------------------------------------------------------------------

// Map is a sorted associative map from string keys to scalar string
// values. Keys are unique and kept sorted under str.Cmp, so lookup is
// O(log n) by binary search while insertion and deletion are O(n) due to
// array shifting. Iteration is always in sorted key order.
//
// Combine policy on duplicate keys: replace - the old value is released
// and the new one stored.
//
// Thread-safety: not safe for concurrent mutation; serialize externally.
type Map struct {
	entries []entry[str.Str]
}

// NewMap creates a new empty flat map.
func NewMap() *Map {
	return &Map{}
}

// Len returns the number of entries.
func (m *Map) Len() int {
	return len(m.entries)
}

// IsEmpty reports whether the map is nil or has no entries.
func (m *Map) IsEmpty() bool {
	return m == nil || len(m.entries) == 0
}

// Index returns the position of key in the sorted key array, or -1 when
// the key is not present.
func (m *Map) Index(key str.Str) int {
	return find(m.entries, key)
}

// InsertionPoint returns the lower bound for key: the index at which key
// would be inserted to keep the array sorted, equal to Len when key is
// greater than every existing key.
func (m *Map) InsertionPoint(key str.Str) int {
	return findPos(m.entries, key)
}

// Contains reports whether key is present.
func (m *Map) Contains(key str.Str) bool {
	return find(m.entries, key) >= 0
}

// Get returns the value stored under key. The boolean reports whether the
// key was found; a present key always has a present value.
func (m *Map) Get(key str.Str) (str.Str, bool) {
	if pos := find(m.entries, key); pos >= 0 {
		return m.entries[pos].value, true
	}
	return str.Null(), false
}

// Put inserts or updates the entry for key with a duplicate of value.
// A null key or a null value is a silent no-op: the map never contains an
// entry keyed or valued by the null marker, and the caller cannot
// distinguish "ignored" from "succeeded trivially" - that is the contract.
func (m *Map) Put(key, value str.Str) {
	if key.IsNull() {
		discardNullKey()
		return
	}
	if value.IsNull() {
		return
	}
	pos := findPos(m.entries, key)
	if pos < len(m.entries) && str.Cmp(m.entries[pos].key, key) == 0 {
		m.entries[pos].value.Set(value)
		return
	}
	m.entries = insertAt(m.entries, pos, key, value.Dup())
}

// Delete removes the entry for key, releasing key and value and shifting
// all subsequent entries left. Deleting a missing key is a no-op.
func (m *Map) Delete(key str.Str) {
	if pos := find(m.entries, key); pos >= 0 {
		m.entries = removeAt(m.entries, pos)
	}
}

// Keys returns a new owned list of duplicated keys in sorted order.
func (m *Map) Keys() *list.List {
	return keysOf(m.entries)
}

// Range calls fn for each entry in sorted key order until fn returns
// false. The map must not be mutated from inside fn.
func (m *Map) Range(fn func(key, value str.Str) bool) {
	for i := range m.entries {
		if !fn(m.entries[i].key, m.entries[i].value) {
			return
		}
	}
}

// Dup returns a deep copy of the map. A nil receiver duplicates to nil.
func (m *Map) Dup() *Map {
	if m == nil {
		return nil
	}
	res := NewMap()
	res.entries = make([]entry[str.Str], len(m.entries))
	for i := range m.entries {
		res.entries[i] = entry[str.Str]{
			key:   m.entries[i].key.Dup(),
			value: m.entries[i].value.Dup(),
		}
	}
	return res
}

// Equal reports whether both maps hold the same entries in the same order.
func (m *Map) Equal(other *Map) bool {
	if m.Len() != other.Len() {
		return false
	}
	for i := range m.entries {
		if str.Cmp(m.entries[i].key, other.entries[i].key) != 0 ||
			str.Cmp(m.entries[i].value, other.entries[i].value) != 0 {
			return false
		}
	}
	return true
}

// Clear releases every entry and resets the map to empty. Clearing twice
// is safe.
func (m *Map) Clear() {
	m.entries = nil
}
