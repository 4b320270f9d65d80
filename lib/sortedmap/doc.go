// Package sortedmap implements the sorted string-keyed associative maps
// of the library: Map (key -> string), ListMap (key -> list), MapMap
// (key -> ListMap), and the generic PtrMap (key -> owned pointer with a
// map-level destructor).
//
// All four variants share one engine: a kept-sorted array of entries with
// binary-search lookup (Index), lower-bound insertion-point computation
// (InsertionPoint), and shift-based insertion and deletion. This is a
// deliberate trade: lookup is O(log n) and iteration is cache-friendly
// and always in sorted key order, at the cost of O(n) mutation. It is not
// a hash table and is not meant to become one - consumers rely on the
// iteration order.
//
// The variants differ only in their combine policy when an upsert hits an
// existing key:
//
//   - Map: replace the scalar value
//   - ListMap: merge - append the incoming list onto the existing one
//   - MapMap: replace the nested map wholesale
//   - PtrMap: replace, running the destructor on the old value
//
// The merge-vs-replace asymmetry between ListMap and MapMap is observed,
// contractual behavior.
//
// Upserting under a null key never creates an entry: the owned argument
// is released and the call returns silently. Local order violations after
// an insert (which indicate a comparator bug, not a user error) are
// reported through the logging sink and a diagnostic counter; the library
// is fully usable without configuring either.
package sortedmap
