package str

import (
	"fmt"
	"math"
	"strings"
)

// --------------------------------------------------------------------------
// Core Str Type
// --------------------------------------------------------------------------

// Str is an optional owned string. It has two "no content" states that are
// deliberately distinct: the null state (no value at all) and the present
// but empty state (""). The null state sorts before every present string
// and is how the sorted maps express "no such key" as opposed to "key
// present with empty value".
//
// The zero value of Str is the null string and ready to use.
type Str struct {
	val     string
	present bool
}

// End is the "until the end" marker for Cut and CutFrom.
const End = math.MaxInt

// Null returns the null string.
func Null() Str {
	return Str{}
}

// Of returns a present string holding s.
func Of(s string) Str {
	return Str{val: s, present: true}
}

// Format builds a new present string from a printf-style template.
// The result is sized exactly to the formatted output.
func Format(format string, args ...interface{}) Str {
	return Of(fmt.Sprintf(format, args...))
}

// --------------------------------------------------------------------------
// Accessors
// --------------------------------------------------------------------------

// IsNull reports whether the string is in the null state.
// An empty but present string is not null.
func (s Str) IsNull() bool {
	return !s.present
}

// IsEmpty reports whether the string is null or has zero length.
func (s Str) IsEmpty() bool {
	return !s.present || len(s.val) == 0
}

// Len returns the byte length, 0 for the null string.
func (s Str) Len() int {
	if !s.present {
		return 0
	}
	return len(s.val)
}

// Value returns the raw string and whether the string is present.
func (s Str) Value() (string, bool) {
	return s.val, s.present
}

// String returns the raw string, "" for the null string.
// Use Value or IsNull where the null/empty distinction matters.
func (s Str) String() string {
	return s.val
}

// --------------------------------------------------------------------------
// Ordering and Equality
// --------------------------------------------------------------------------

// Cmp imposes a total order on optional strings: the null string sorts
// strictly before every present string, two null strings compare equal,
// and two present strings compare bytewise.
func Cmp(a, b Str) int {
	if !a.present || !b.present {
		switch {
		case a.present:
			return 1
		case b.present:
			return -1
		default:
			return 0
		}
	}
	return strings.Compare(a.val, b.val)
}

// Cmp compares s against other under the package ordering.
func (s Str) Cmp(other Str) int {
	return Cmp(s, other)
}

// Equal reports whether both strings compare equal under Cmp.
func (s Str) Equal(other Str) bool {
	return Cmp(s, other) == 0
}

// --------------------------------------------------------------------------
// Duplication and Assignment
// --------------------------------------------------------------------------

// Dup returns an owned copy of the string. The copy compares equal to the
// original and is independent of it; the null string duplicates to null.
func (s Str) Dup() Str {
	if !s.present {
		return Str{}
	}
	// strings.Clone detaches the copy from any larger backing array the
	// original may alias (e.g. a substring of a big read buffer).
	return Str{val: strings.Clone(s.val), present: true}
}

// Set overwrites s with a copy of src. Any previous value is released.
func (s *Str) Set(src Str) {
	*s = src.Dup()
}

// Take overwrites s with src and resets src to null. After the call the
// caller must treat src as released.
func (s *Str) Take(src *Str) {
	if src == nil {
		return
	}
	*s = *src
	*src = Str{}
}

// Clear releases the value and resets the string to null. Safe to call on
// a string that is already null.
func (s *Str) Clear() {
	*s = Str{}
}

// --------------------------------------------------------------------------
// Concatenation
// --------------------------------------------------------------------------

// Concat builds a new present string by joining all non-null parts with no
// separator. Null parts contribute nothing; the result is present (possibly
// empty) even if every part is null.
func Concat(parts ...Str) Str {
	var b strings.Builder
	for _, p := range parts {
		if p.present {
			b.WriteString(p.val)
		}
	}
	return Of(b.String())
}

// JoinWith joins s and other with delim between them. A null other yields
// a plain copy of s without a trailing delimiter.
func (s Str) JoinWith(other, delim Str) Str {
	if !other.present {
		return s.Dup()
	}
	return Concat(s, delim, other)
}

// --------------------------------------------------------------------------
// Search
// --------------------------------------------------------------------------

// Index returns the byte offset of the first occurrence of sub in s,
// or -1 if either string is null or sub does not occur.
func (s Str) Index(sub Str) int {
	if !s.present || !sub.present {
		return -1
	}
	return strings.Index(s.val, sub.val)
}

// Contains reports whether sub occurs in s. Null inputs never match.
func (s Str) Contains(sub Str) bool {
	return s.Index(sub) >= 0
}

// HasPrefix reports whether s starts with prefix. Two null strings match;
// a null on exactly one side never matches.
func (s Str) HasPrefix(prefix Str) bool {
	if !s.present {
		return !prefix.present
	}
	if !prefix.present {
		return false
	}
	return strings.HasPrefix(s.val, prefix.val)
}

// HasSuffix reports whether s ends with suffix, with the same null rules
// as HasPrefix.
func (s Str) HasSuffix(suffix Str) bool {
	if !s.present {
		return !suffix.present
	}
	if !suffix.present {
		return false
	}
	return strings.HasSuffix(s.val, suffix.val)
}

// --------------------------------------------------------------------------
// Slicing
// --------------------------------------------------------------------------

// Cut returns a new string holding the bytes in [a, b). Negative indices
// count from the end. A range that is fully out of bounds or inverted
// yields a present empty string, never an error; b is clamped to the
// length. Cutting the null string yields null.
func (s Str) Cut(a, b int) Str {
	if !s.present {
		return Str{}
	}
	size := len(s.val)
	if a < 0 {
		a = size + a
	}
	if b < 0 {
		b = size + b
	}
	if a < 0 || b < 0 || a >= size || b < a {
		return Of("")
	}
	if b > size {
		b = size
	}
	return Of(strings.Clone(s.val[a:b]))
}

// CutFrom returns Cut(a, End).
func (s Str) CutFrom(a int) Str {
	return s.Cut(a, End)
}

// --------------------------------------------------------------------------
// Stripping
// --------------------------------------------------------------------------

// stripCutset is the whitespace set recognized by the Strip family.
const stripCutset = " \r\n\f\t"

// Strip returns a copy of s with leading and trailing whitespace removed.
// The null string strips to a present empty string.
func (s Str) Strip() Str {
	if !s.present {
		return Of("")
	}
	return Of(strings.Trim(s.val, stripCutset))
}

// StripLeft returns a copy of s with leading whitespace removed.
func (s Str) StripLeft() Str {
	if !s.present {
		return Of("")
	}
	return Of(strings.TrimLeft(s.val, stripCutset))
}

// StripRight returns a copy of s with trailing whitespace removed.
func (s Str) StripRight() Str {
	if !s.present {
		return Of("")
	}
	return Of(strings.TrimRight(s.val, stripCutset))
}
