package rex

import (
	"testing"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		pattern, text, flags string
		want                 bool
	}{
		{"^abc$", "abc", "", true},
		{"^abc$", "xabc", "", false},
		{"abc", "xxabcxx", "", true},
		{"ABC", "abc", "", false},
		{"ABC", "abc", "i", true},
		{"^b$", "a\nb\nc", "", false},
		{"^b$", "a\nb\nc", "m", true},
		{"^B$", "a\nb\nc", "im", true},
		{`\d+`, "order 42", "", true},
	}
	for _, tt := range tests {
		if got := Match(tt.pattern, tt.text, tt.flags); got != tt.want {
			t.Errorf("Match(%q, %q, %q) = %v, want %v", tt.pattern, tt.text, tt.flags, got, tt.want)
		}
	}
}

func TestMatchBadPattern(t *testing.T) {
	// a malformed pattern is logged and treated as no-match
	if Match("(unclosed", "anything", "") {
		t.Error("a malformed pattern must never match")
	}
	if idx := SubmatchIndex("(unclosed", "anything", ""); idx != nil {
		t.Error("SubmatchIndex on a malformed pattern must return nil")
	}
	if _, ok := Groups("(unclosed", "anything", ""); ok {
		t.Error("Groups on a malformed pattern must report no match")
	}
}

func TestUnknownFlagsAreIgnored(t *testing.T) {
	if !Match("ABC", "abc", "xiz") {
		t.Error("unknown flag characters must not disable known ones")
	}
}

func TestSubmatchIndex(t *testing.T) {
	idx := SubmatchIndex(`(\w+)=(\w+)`, "key=value", "")
	want := []int{0, 9, 0, 3, 4, 9}
	if len(idx) != len(want) {
		t.Fatalf("idx = %v, want %v", idx, want)
	}
	for i := range want {
		if idx[i] != want[i] {
			t.Fatalf("idx = %v, want %v", idx, want)
		}
	}

	if idx := SubmatchIndex("xyz", "abc", ""); idx != nil {
		t.Error("SubmatchIndex on no match must return nil")
	}
}

func TestGroups(t *testing.T) {
	groups, ok := Groups(`(\w+)=(\w+)`, "key=value", "")
	if !ok {
		t.Fatal("expected a match")
	}
	if groups.Len() != 3 {
		t.Fatalf("Len = %d, want 3", groups.Len())
	}
	for i, want := range []string{"key=value", "key", "value"} {
		if got := groups.At(i).String(); got != want {
			t.Errorf("group %d = %q, want %q", i, got, want)
		}
	}
}

func TestGroupsUnmatchedGroupIsNull(t *testing.T) {
	groups, ok := Groups(`a(x)?(b)`, "ab", "")
	if !ok {
		t.Fatal("expected a match")
	}
	if groups.Len() != 3 {
		t.Fatalf("Len = %d, want 3", groups.Len())
	}
	if !groups.At(1).IsNull() {
		t.Error("a group that did not participate must be null")
	}
	if groups.At(2).String() != "b" {
		t.Errorf("group 2 = %q, want b", groups.At(2).String())
	}
}

func TestGroupsNoMatch(t *testing.T) {
	groups, ok := Groups("xyz", "abc", "")
	if ok {
		t.Error("expected no match")
	}
	if !groups.IsEmpty() {
		t.Error("no match must yield an empty list")
	}
}

func TestCompileCacheReuse(t *testing.T) {
	// the same pattern+flags pair must hit the cache; differing flags
	// must not collide
	if !Match("cached", "cached", "") {
		t.Fatal("first compilation failed")
	}
	if !Match("cached", "cached", "") {
		t.Fatal("cached compilation failed")
	}
	if Match("CACHED", "cached", "") {
		t.Error("case-sensitive lookup leaked an insensitive compilation")
	}
	if !Match("CACHED", "cached", "i") {
		t.Error("insensitive compilation missing")
	}
	if Match("CACHED", "cached", "") {
		t.Error("flagged compilation must not shadow the unflagged one")
	}
}
