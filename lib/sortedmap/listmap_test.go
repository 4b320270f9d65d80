package sortedmap

import (
	"testing"

	"github.com/mlehner/strkit/lib/list"
	"github.com/mlehner/strkit/lib/str"
)

func TestListMapMergesOnDuplicateKey(t *testing.T) {
	m := NewListMap()
	m.PutOwned(str.Of("colors"), list.Of("red"))
	m.PutOwned(str.Of("colors"), list.Of("blue"))

	if m.Len() != 1 {
		t.Fatalf("Len = %d, want 1", m.Len())
	}
	values, _ := m.Get(str.Of("colors"))
	want := list.Of("red", "blue")
	if !values.Equal(want) {
		t.Errorf("values = %v, want [red blue]", values.Strings())
	}
}

func TestListMapPutOwnedEmptiesSource(t *testing.T) {
	m := NewListMap()
	src := list.Of("a", "b")
	m.PutOwned(str.Of("k"), src)

	if !src.IsEmpty() {
		t.Error("PutOwned must leave the source list empty")
	}
}

func TestListMapPutCopies(t *testing.T) {
	m := NewListMap()
	src := list.Of("a")
	m.Put(str.Of("k"), src)

	if src.Len() != 1 {
		t.Error("Put must not consume the source list")
	}
	src.Append(str.Of("b"))
	values, _ := m.Get(str.Of("k"))
	if values.Len() != 1 {
		t.Error("Put must copy, later source edits leaked in")
	}
}

func TestListMapAppend(t *testing.T) {
	m := NewListMap()
	m.Append(str.Of("k"), str.Of("1"))
	m.Append(str.Of("k"), str.Of("2"))

	values, ok := m.Get(str.Of("k"))
	if !ok || !values.Equal(list.Of("1", "2")) {
		t.Errorf("values = %v, want [1 2]", values.Strings())
	}

	v := str.Of("three")
	m.AppendOwned(str.Of("k"), &v)
	if !v.IsNull() {
		t.Error("AppendOwned must reset the source value")
	}
	values, _ = m.Get(str.Of("k"))
	if values.Len() != 3 {
		t.Errorf("Len = %d after AppendOwned, want 3", values.Len())
	}
}

func TestListMapNullKeyDiscardsValue(t *testing.T) {
	m := NewListMap()
	src := list.Of("a", "b")
	m.PutOwned(str.Null(), src)

	if m.Len() != 0 {
		t.Error("a null-key insert must not create an entry")
	}
	if !src.IsEmpty() {
		t.Error("the discarded value must still be cleared")
	}
}

func TestListMapGetReturnsOwnedList(t *testing.T) {
	m := NewListMap()
	m.Append(str.Of("k"), str.Of("a"))

	values, _ := m.Get(str.Of("k"))
	values.Append(str.Of("b"))

	again, _ := m.Get(str.Of("k"))
	if again.Len() != 2 {
		t.Error("Get must expose the stored list, not a copy")
	}
}

func TestListMapDupIsDeep(t *testing.T) {
	m := NewListMap()
	m.Append(str.Of("k"), str.Of("a"))

	d := m.Dup()
	dv, _ := d.Get(str.Of("k"))
	dv.Append(str.Of("b"))

	ov, _ := m.Get(str.Of("k"))
	if ov.Len() != 1 {
		t.Error("Dup must deep-copy the value lists")
	}
	if !m.Equal(m.Dup()) {
		t.Error("a fresh copy must compare equal")
	}
}

func TestListMapClearIsRecursive(t *testing.T) {
	m := NewListMap()
	m.Append(str.Of("a"), str.Of("1"))
	m.Append(str.Of("b"), str.Of("2"))

	m.Clear()
	if !m.IsEmpty() {
		t.Error("Clear left entries behind")
	}
	m.Clear() // idempotent
}
