package list

import (
	"github.com/mlehner/strkit/lib/str"
)

// --------------------------------------------------------------------------
// Core List Type
// --------------------------------------------------------------------------

// List is a growable, owned sequence of optional strings. Insertion order
// is significant and duplicates are allowed. The list owns every element:
// Clear releases all of them and resets the list to the empty state.
//
// Thread-safety: a List is not safe for concurrent mutation. Callers that
// share one across goroutines must serialize with an external mutex.
type List struct {
	items []str.Str
}

// New creates a new empty list.
func New() *List {
	return &List{}
}

// Of creates a new list holding the given values, in order, each stored
// as a present string.
func Of(values ...string) *List {
	l := &List{items: make([]str.Str, 0, len(values))}
	for _, v := range values {
		l.items = append(l.items, str.Of(v))
	}
	return l
}

// Split breaks text at every occurrence of delim and returns the non-empty
// fields as a new list. Runs of the delimiter are collapsed, so no empty
// fields are produced. Splitting the null string yields an empty list.
func Split(text str.Str, delim byte) *List {
	res := New()
	raw, ok := text.Value()
	if !ok {
		return res
	}
	n := len(raw)
	for x := 0; x < n; x++ {
		for x < n && raw[x] == delim {
			x++
		}
		if x == n {
			break
		}
		a := x
		for x < n && raw[x] != delim {
			x++
		}
		res.items = append(res.items, text.Cut(a, x))
	}
	return res
}

// --------------------------------------------------------------------------
// Accessors
// --------------------------------------------------------------------------

// Len returns the number of elements.
func (l *List) Len() int {
	return len(l.items)
}

// IsEmpty reports whether the list is nil or has no elements.
func (l *List) IsEmpty() bool {
	return l == nil || len(l.items) == 0
}

// At returns the element at index i, or the null string when i is out of
// range.
func (l *List) At(i int) str.Str {
	if i < 0 || i >= len(l.items) {
		return str.Null()
	}
	return l.items[i]
}

// Range calls fn for each element in order until fn returns false.
func (l *List) Range(fn func(i int, v str.Str) bool) {
	for i, v := range l.items {
		if !fn(i, v) {
			return
		}
	}
}

// Strings returns the present elements as a plain string slice. Null
// elements are skipped. The slice is a copy and safe to keep.
func (l *List) Strings() []string {
	res := make([]string, 0, len(l.items))
	for _, v := range l.items {
		if raw, ok := v.Value(); ok {
			res = append(res, raw)
		}
	}
	return res
}

// --------------------------------------------------------------------------
// Mutation
// --------------------------------------------------------------------------

// Append duplicates v and appends the copy to the list.
func (l *List) Append(v str.Str) {
	l.items = append(l.items, v.Dup())
}

// AppendTake appends v without duplicating, taking ownership of it.
// The source is reset to null.
func (l *List) AppendTake(v *str.Str) {
	if v == nil {
		return
	}
	l.items = append(l.items, *v)
	v.Clear()
}

// Extend appends duplicates of all elements of other. The source is left
// untouched.
func (l *List) Extend(other *List) {
	if other.IsEmpty() {
		return
	}
	for _, v := range other.items {
		l.items = append(l.items, v.Dup())
	}
}

// Drain moves every element of other onto the end of l and resets other
// to the empty state. After the call other is safe to reuse or discard.
func (l *List) Drain(other *List) {
	if other.IsEmpty() {
		return
	}
	l.items = append(l.items, other.items...)
	other.items = nil
}

// Clear releases every element and the backing storage, resetting the
// list to empty. Clearing twice is safe.
func (l *List) Clear() {
	l.items = nil
}

// --------------------------------------------------------------------------
// Search and Equality
// --------------------------------------------------------------------------

// Find returns the index of the first element comparing equal to v, or -1
// if there is no match.
func (l *List) Find(v str.Str) int {
	for i := range l.items {
		if str.Cmp(l.items[i], v) == 0 {
			return i
		}
	}
	return -1
}

// Contains reports whether an element comparing equal to v exists.
func (l *List) Contains(v str.Str) bool {
	return l.Find(v) >= 0
}

// Equal reports element-wise equality under the string ordering. Lists of
// different lengths are never equal; a nil list counts as empty.
func (l *List) Equal(other *List) bool {
	if other == nil {
		return l.IsEmpty()
	}
	if l.Len() != other.Len() {
		return false
	}
	for i := range l.items {
		if str.Cmp(l.items[i], other.items[i]) != 0 {
			return false
		}
	}
	return true
}

// --------------------------------------------------------------------------
// Slicing, Copying, Joining
// --------------------------------------------------------------------------

// Cut returns a new owned list of duplicated elements in [a, b). The
// negative-index and clamp-to-empty rules match str.Cut: a fully
// out-of-range or inverted range yields an empty list, never an error.
func (l *List) Cut(a, b int) *List {
	res := New()
	size := len(l.items)
	if a < 0 {
		a = size + a
	}
	if b < 0 {
		b = size + b
	}
	if a < 0 || b < 0 || a >= size || b < a {
		return res
	}
	if b > size {
		b = size
	}
	res.items = make([]str.Str, 0, b-a)
	for i := a; i < b; i++ {
		res.items = append(res.items, l.items[i].Dup())
	}
	return res
}

// CutFrom returns Cut(a, str.End).
func (l *List) CutFrom(a int) *List {
	return l.Cut(a, str.End)
}

// Dup returns a new list holding duplicates of all elements. A nil
// receiver duplicates to nil.
func (l *List) Dup() *List {
	if l == nil {
		return nil
	}
	res := New()
	res.Extend(l)
	return res
}

// Join concatenates the present elements separated by delim. Null elements
// contribute neither content nor a delimiter. The result is a present
// string, empty for an empty list.
func (l *List) Join(delim str.Str) str.Str {
	parts := make([]str.Str, 0, 2*len(l.items))
	for _, v := range l.items {
		if v.IsNull() {
			continue
		}
		if len(parts) > 0 {
			parts = append(parts, delim)
		}
		parts = append(parts, v)
	}
	return str.Concat(parts...)
}
