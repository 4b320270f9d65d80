package sortedmap

import (
	"testing"

	"github.com/mlehner/strkit/lib/list"
	"github.com/mlehner/strkit/lib/str"
)

func innerMap(pairs map[string]string) *ListMap {
	inner := NewListMap()
	for k, v := range pairs {
		inner.Append(str.Of(k), str.Of(v))
	}
	return inner
}

func TestMapMapReplacesOnDuplicateKey(t *testing.T) {
	m := NewMapMap()
	m.PutOwned(str.Of("section"), innerMap(map[string]string{"a": "1", "b": "2"}))
	m.PutOwned(str.Of("section"), innerMap(map[string]string{"c": "3"}))

	if m.Len() != 1 {
		t.Fatalf("Len = %d, want 1", m.Len())
	}

	// the second insert replaces the inner map wholesale, no merging
	inner, _ := m.Get(str.Of("section"))
	if inner.Contains(str.Of("a")) || inner.Contains(str.Of("b")) {
		t.Error("the replaced inner map must be gone entirely")
	}
	values, ok := inner.Get(str.Of("c"))
	if !ok || !values.Equal(list.Of("3")) {
		t.Error("the replacement inner map must survive intact")
	}
}

func TestMapMapPutOwnedEmptiesSource(t *testing.T) {
	m := NewMapMap()
	src := innerMap(map[string]string{"a": "1"})
	m.PutOwned(str.Of("k"), src)

	if !src.IsEmpty() {
		t.Error("PutOwned must leave the source map empty")
	}
}

func TestMapMapPutCopies(t *testing.T) {
	m := NewMapMap()
	src := innerMap(map[string]string{"a": "1"})
	m.Put(str.Of("k"), src)

	if src.Len() != 1 {
		t.Error("Put must not consume the source map")
	}
	src.Append(str.Of("b"), str.Of("2"))
	inner, _ := m.Get(str.Of("k"))
	if inner.Len() != 1 {
		t.Error("Put must copy, later source edits leaked in")
	}
}

func TestMapMapNullKeyDiscardsValue(t *testing.T) {
	m := NewMapMap()
	src := innerMap(map[string]string{"a": "1"})
	m.PutOwned(str.Null(), src)

	if m.Len() != 0 {
		t.Error("a null-key insert must not create an entry")
	}
	if !src.IsEmpty() {
		t.Error("the discarded value must still be cleared")
	}
}

func TestMapMapDupIsDeep(t *testing.T) {
	m := NewMapMap()
	m.PutOwned(str.Of("k"), innerMap(map[string]string{"a": "1"}))

	d := m.Dup()
	di, _ := d.Get(str.Of("k"))
	di.Append(str.Of("b"), str.Of("2"))

	oi, _ := m.Get(str.Of("k"))
	if oi.Len() != 1 {
		t.Error("Dup must deep-copy the inner maps")
	}
	if !m.Equal(m.Dup()) {
		t.Error("a fresh copy must compare equal")
	}
}

func TestMapMapClearIsRecursive(t *testing.T) {
	m := NewMapMap()
	m.PutOwned(str.Of("a"), innerMap(map[string]string{"x": "1"}))
	m.PutOwned(str.Of("b"), innerMap(map[string]string{"y": "2"}))

	m.Clear()
	if !m.IsEmpty() {
		t.Error("Clear left entries behind")
	}
	m.Clear() // idempotent
}
