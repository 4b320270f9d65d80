package list

import (
	"github.com/mlehner/strkit/lib/str"
)

// --------------------------------------------------------------------------
// List-of-Lists
// --------------------------------------------------------------------------

// Lists is an append-only sequence of Lists with no keys and no ordering
// beyond insertion order. It is the row-oriented counterpart to the sorted
// maps: each appended list becomes one owned row.
//
// Thread-safety: same contract as List - not safe for concurrent mutation.
type Lists struct {
	rows []List
}

// NewLists creates a new empty sequence of lists.
func NewLists() *Lists {
	return &Lists{}
}

// Len returns the number of rows.
func (ll *Lists) Len() int {
	return len(ll.rows)
}

// IsEmpty reports whether the sequence is nil or has no rows.
func (ll *Lists) IsEmpty() bool {
	return ll == nil || len(ll.rows) == 0
}

// At returns the row at index i, or nil when i is out of range. The
// returned pointer refers into the backing storage and is invalidated by
// the next Append or Take; re-fetch after any mutating call.
func (ll *Lists) At(i int) *List {
	if i < 0 || i >= len(ll.rows) {
		return nil
	}
	return &ll.rows[i]
}

// Range calls fn for each row in order until fn returns false.
func (ll *Lists) Range(fn func(i int, row *List) bool) {
	for i := range ll.rows {
		if !fn(i, &ll.rows[i]) {
			return
		}
	}
}

// Append duplicates l and appends the copy as a new row.
func (ll *Lists) Append(l *List) {
	ll.rows = append(ll.rows, List{})
	row := &ll.rows[len(ll.rows)-1]
	row.Extend(l)
}

// Take moves the contents of l into a new row and resets l to the empty
// state. After the call l is safe to reuse or discard. Taking from a nil
// list appends an empty row.
func (ll *Lists) Take(l *List) {
	if l == nil {
		ll.rows = append(ll.rows, List{})
		return
	}
	ll.rows = append(ll.rows, List{items: l.items})
	l.items = nil
}

// AppendValues builds a new row from duplicates of the given values.
func (ll *Lists) AppendValues(values ...str.Str) {
	ll.rows = append(ll.rows, List{})
	row := &ll.rows[len(ll.rows)-1]
	for _, v := range values {
		row.Append(v)
	}
}

// Equal reports row-wise equality. Sequences of different lengths are
// never equal; a nil sequence counts as empty.
func (ll *Lists) Equal(other *Lists) bool {
	if other == nil {
		return ll.IsEmpty()
	}
	if ll.Len() != other.Len() {
		return false
	}
	for i := range ll.rows {
		if !ll.rows[i].Equal(&other.rows[i]) {
			return false
		}
	}
	return true
}

// Clear releases every row and resets the sequence to empty. Clearing
// twice is safe.
func (ll *Lists) Clear() {
	ll.rows = nil
}
