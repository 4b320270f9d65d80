package sortedmap

import (
	"github.com/mlehner/strkit/lib/list"
	"github.com/mlehner/strkit/lib/str"
)

// --------------------------------------------------------------------------
// List Map (key -> list of strings)
// --------------------------------------------------------------------------

// ListMap is a sorted associative map from string keys to owned lists.
// It shares the sorted-array engine with Map but applies a different
// combine policy on duplicate keys: merge - the incoming list is appended
// onto the existing one instead of replacing it, so values accumulate
// by key in insertion order.
//
// Thread-safety: not safe for concurrent mutation; serialize externally.
type ListMap struct {
	entries []entry[*list.List]
}

// NewListMap creates a new empty list map.
func NewListMap() *ListMap {
	return &ListMap{}
}

// Len returns the number of keys.
func (m *ListMap) Len() int {
	return len(m.entries)
}

// IsEmpty reports whether the map is nil or has no entries.
func (m *ListMap) IsEmpty() bool {
	return m == nil || len(m.entries) == 0
}

// Index returns the position of key in the sorted key array, or -1.
func (m *ListMap) Index(key str.Str) int {
	return find(m.entries, key)
}

// InsertionPoint returns the lower bound for key.
func (m *ListMap) InsertionPoint(key str.Str) int {
	return findPos(m.entries, key)
}

// Contains reports whether key is present.
func (m *ListMap) Contains(key str.Str) bool {
	return find(m.entries, key) >= 0
}

// Get returns the list stored under key. The returned pointer refers to
// the owned value inside the map: callers may read and append through it
// but must not hold it across mutations of the map.
func (m *ListMap) Get(key str.Str) (*list.List, bool) {
	if pos := find(m.entries, key); pos >= 0 {
		return m.entries[pos].value, true
	}
	return nil, false
}

// PutOwned inserts the list under key, taking ownership of it. The source
// list is drained and reset to empty. On a duplicate key the contents are
// merged onto the existing list; otherwise a new entry is shift-inserted
// at the lower bound. A null key releases the list and is otherwise a
// silent no-op.
func (m *ListMap) PutOwned(key str.Str, value *list.List) {
	if key.IsNull() {
		if value != nil {
			value.Clear()
		}
		discardNullKey()
		return
	}
	if value == nil {
		value = list.New()
	}
	pos := findPos(m.entries, key)
	if pos < len(m.entries) && str.Cmp(m.entries[pos].key, key) == 0 {
		m.entries[pos].value.Drain(value)
		return
	}
	owned := list.New()
	owned.Drain(value)
	m.entries = insertAt(m.entries, pos, key, owned)
	checkOrder(m.entries, pos, "listmap insert")
}

// Put inserts a duplicate of the list under key; the source is left
// untouched. Merge semantics on duplicate keys match PutOwned.
func (m *ListMap) Put(key str.Str, value *list.List) {
	m.PutOwned(key, value.Dup())
}

// Append inserts a single duplicated value under key, merging with any
// existing list (a one-element Put).
func (m *ListMap) Append(key, value str.Str) {
	one := list.New()
	one.Append(value)
	m.PutOwned(key, one)
}

// AppendOwned inserts a single value under key, taking ownership of it.
func (m *ListMap) AppendOwned(key str.Str, value *str.Str) {
	one := list.New()
	one.AppendTake(value)
	m.PutOwned(key, one)
}

// Delete removes the entry for key, releasing key and list. Deleting a
// missing key is a no-op.
func (m *ListMap) Delete(key str.Str) {
	if pos := find(m.entries, key); pos >= 0 {
		m.entries[pos].value.Clear()
		m.entries = removeAt(m.entries, pos)
	}
}

// Keys returns a new owned list of duplicated keys in sorted order.
func (m *ListMap) Keys() *list.List {
	return keysOf(m.entries)
}

// Range calls fn for each entry in sorted key order until fn returns
// false. The map must not be mutated from inside fn.
func (m *ListMap) Range(fn func(key str.Str, value *list.List) bool) {
	for i := range m.entries {
		if !fn(m.entries[i].key, m.entries[i].value) {
			return
		}
	}
}

// Dup returns a deep copy: keys and every value list are duplicated.
// A nil receiver duplicates to nil.
func (m *ListMap) Dup() *ListMap {
	if m == nil {
		return nil
	}
	res := NewListMap()
	res.entries = make([]entry[*list.List], len(m.entries))
	for i := range m.entries {
		res.entries[i] = entry[*list.List]{
			key:   m.entries[i].key.Dup(),
			value: m.entries[i].value.Dup(),
		}
	}
	return res
}

// Equal reports whether both maps hold the same keys with element-wise
// equal lists, in the same order.
func (m *ListMap) Equal(other *ListMap) bool {
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

// Clear releases every key and list and resets the map to empty.
// Clearing twice is safe.
func (m *ListMap) Clear() {
	for i := range m.entries {
		m.entries[i].value.Clear()
	}
	m.entries = nil
}
