// Package list implements the owned dynamic containers built on str.Str:
// List, a growable sequence of optional strings, and Lists, an ungrouped
// sequence of Lists for row-oriented data.
//
// The package follows the library-wide ownership contract: operations
// either duplicate their argument (Append, Extend) or take ownership of it
// (AppendTake, Drain, Take), and a transferred source is always reset to
// its empty state so it remains safely destructible. Destruction (Clear)
// is recursive and idempotent.
package list
