package sortedmap

import (
	"sort"

	"github.com/VictoriaMetrics/metrics"
	"github.com/lni/dragonboat/v4/logger"
	"github.com/mlehner/strkit/lib/list"
	"github.com/mlehner/strkit/lib/str"
)

var log = logger.GetLogger("sortedmap")

// Diagnostic counters. Order warnings should never fire; a non-zero value
// means a comparator or insertion bug corrupted the sortedness invariant.
var (
	orderWarnings   = metrics.NewCounter("strkit_sortedmap_order_warnings_total")
	nullKeyDiscards = metrics.NewCounter("strkit_sortedmap_null_key_discards_total")
)

// --------------------------------------------------------------------------
// Shared Sorted-Array Engine
// --------------------------------------------------------------------------

// entry is one key-value pair of a sorted map. The key array is kept
// sorted under str.Cmp with unique keys; every map variant shares this
// representation and the search primitives below, differing only in the
// value type and the combine policy on duplicate keys.
type entry[V any] struct {
	key   str.Str
	value V
}

// findPos returns the lower bound for key: the smallest index whose key
// is not less than the search key, equal to len(entries) when the key is
// greater than every existing one. If an exact match exists, findPos and
// find agree on its index.
func findPos[V any](entries []entry[V], key str.Str) int {
	return sort.Search(len(entries), func(i int) bool {
		return str.Cmp(entries[i].key, key) >= 0
	})
}

// find returns the index holding an exact match for key, or -1.
func find[V any](entries []entry[V], key str.Str) int {
	pos := findPos(entries, key)
	if pos < len(entries) && str.Cmp(entries[pos].key, key) == 0 {
		return pos
	}
	return -1
}

// insertAt grows the array by one slot, shifts all entries at indices
// >= pos right, and stores a duplicate of key with the given value at pos.
func insertAt[V any](entries []entry[V], pos int, key str.Str, value V) []entry[V] {
	var zero entry[V]
	entries = append(entries, zero)
	copy(entries[pos+1:], entries[pos:])
	entries[pos] = entry[V]{key: key.Dup(), value: value}
	return entries
}

// removeAt shifts all entries after pos left by one and shrinks the array.
func removeAt[V any](entries []entry[V], pos int) []entry[V] {
	var zero entry[V]
	copy(entries[pos:], entries[pos+1:])
	entries[len(entries)-1] = zero
	return entries[:len(entries)-1]
}

// keysOf returns a new owned list of duplicated keys in sorted order.
func keysOf[V any](entries []entry[V]) *list.List {
	res := list.New()
	for i := range entries {
		res.Append(entries[i].key)
	}
	return res
}

// checkOrder verifies the freshly inserted entry at pos against both
// neighbors and reports a diagnostic warning when it is locally out of
// order. The map is left as-is; this is tracing, not recovery.
func checkOrder[V any](entries []entry[V], pos int, what string) {
	if pos > 0 && str.Cmp(entries[pos].key, entries[pos-1].key) < 0 {
		orderWarnings.Inc()
		log.Warningf("%s: key %q at [%d] is smaller than its predecessor %q",
			what, entries[pos].key.String(), pos, entries[pos-1].key.String())
	}
	if pos < len(entries)-1 && str.Cmp(entries[pos].key, entries[pos+1].key) > 0 {
		orderWarnings.Inc()
		log.Warningf("%s: key %q at [%d] is bigger than its successor %q",
			what, entries[pos].key.String(), pos, entries[pos+1].key.String())
	}
}

// discardNullKey accounts for an upsert that was dropped because the key
// was null. The caller has already released the value.
func discardNullKey() {
	nullKeyDiscards.Inc()
}
