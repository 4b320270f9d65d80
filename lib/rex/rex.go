package rex

import (
	"regexp"
	"strings"

	"github.com/lni/dragonboat/v4/logger"
	"github.com/mlehner/strkit/lib/list"
	"github.com/mlehner/strkit/lib/str"
	"github.com/puzpuzpuz/xsync/v3"
)

var log = logger.GetLogger("rex")

// Compiled patterns are cached per pattern+flags combination. The cache is
// concurrent because matching, unlike the containers, has no single-owner
// contract: any goroutine may call Match at any time.
var cache = xsync.NewMapOf[string, *regexp.Regexp]()

// --------------------------------------------------------------------------
// Flags and Compilation
// --------------------------------------------------------------------------

// Supported flag characters. Unknown characters in a flags string are
// ignored.
const (
	FlagIgnoreCase = 'i' // case-insensitive matching
	FlagMultiline  = 'm' // ^ and $ match at line boundaries
)

// compile returns the compiled pattern for pattern+flags, reusing a cached
// compilation when available. A malformed pattern is reported through the
// logging sink and compile returns ok=false; it is never an error to the
// caller.
func compile(pattern, flags string) (*regexp.Regexp, bool) {
	key := flags + "\x00" + pattern
	if re, ok := cache.Load(key); ok {
		return re, true
	}
	expr := pattern
	var mode string
	if strings.ContainsRune(flags, FlagIgnoreCase) {
		mode += "i"
	}
	if strings.ContainsRune(flags, FlagMultiline) {
		mode += "m"
	}
	if mode != "" {
		expr = "(?" + mode + ")" + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		log.Warningf("bad regex %q: %v", pattern, err)
		return nil, false
	}
	cache.Store(key, re)
	return re, true
}

// --------------------------------------------------------------------------
// Matching
// --------------------------------------------------------------------------

// Match reports whether pattern matches anywhere in text. A malformed
// pattern is logged and reported as no-match.
func Match(pattern, text, flags string) bool {
	re, ok := compile(pattern, flags)
	if !ok {
		return false
	}
	return re.MatchString(text)
}

// SubmatchIndex returns the byte offsets of the leftmost match and its
// capture groups as successive (start, end) pairs, in the layout of
// regexp FindStringSubmatchIndex. Unmatched groups are (-1, -1). It
// returns nil when the pattern is malformed or does not match.
func SubmatchIndex(pattern, text, flags string) []int {
	re, ok := compile(pattern, flags)
	if !ok {
		return nil
	}
	return re.FindStringSubmatchIndex(text)
}

// Groups returns the text of the leftmost match followed by its capture
// groups as a new owned list. Groups that did not participate in the
// match are null elements. The boolean reports whether a match was found.
func Groups(pattern, text, flags string) (*list.List, bool) {
	idx := SubmatchIndex(pattern, text, flags)
	if idx == nil {
		return list.New(), false
	}
	res := list.New()
	for i := 0; i < len(idx); i += 2 {
		if idx[i] < 0 {
			null := str.Null()
			res.AppendTake(&null)
			continue
		}
		res.Append(str.Of(text[idx[i]:idx[i+1]]))
	}
	return res, true
}
