// Package str implements the owned optional string that underpins every
// container in this library. A Str is either null (no value) or present
// (possibly empty); the two states are distinct and the distinction is
// load-bearing for the sorted maps, which use the null state to express
// "no such key".
//
// The package focuses on:
//   - A total order over optional strings (null sorts before everything)
//   - Copy (Set, Dup) and transfer (Take) assignment with well-defined
//     ownership: after a transfer the source is reset to null
//   - Python-style slicing (Cut) with negative indices and a
//     clamp-to-empty policy instead of range errors
//   - Printf-style construction (Format) sized to the output
//
// All operations treat null inputs as a well-defined "nothing to do" and
// never fail. The zero value of Str is the null string.
package str
