// Package rex is the pattern-matching boundary of the library. It wraps
// the Go regexp engine behind the flag convention of the original
// extended-regular-expression interface: "i" for case-insensitive and "m"
// for multiline matching.
//
// A malformed pattern is never a caller-visible error: it is reported
// once through the logging sink and every match against it reports
// no-match. Compiled patterns are cached in a concurrent map, so repeated
// matching with the same pattern and flags compiles only once.
//
// The containers in this library do not use package rex internally; it is
// provided for their callers.
package rex
