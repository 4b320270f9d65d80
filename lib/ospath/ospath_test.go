package ospath

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mlehner/strkit/lib/str"
)

func TestJoin(t *testing.T) {
	tests := []struct {
		path, name str.Str
		want       string
	}{
		{str.Of("/etc"), str.Of("hosts"), "/etc/hosts"},
		{str.Of(""), str.Of("file"), "/file"},
		{str.Null(), str.Of("file"), "/file"},
		{str.Of("/tmp"), str.Null(), "/tmp/"},
	}
	for _, tt := range tests {
		got := Join(tt.path, tt.name)
		if got.IsNull() || got.String() != tt.want {
			t.Errorf("Join(%q, %q) = %q, want %q", tt.path.String(), tt.name.String(), got.String(), tt.want)
		}
	}
}

func TestBase(t *testing.T) {
	if got := Base(str.Of("/a/b/c.txt")); got.String() != "c.txt" {
		t.Errorf("Base = %q, want c.txt", got.String())
	}
	if got := Base(str.Of("plain")); got.String() != "plain" {
		t.Errorf("Base = %q, want plain", got.String())
	}
	if !Base(str.Null()).IsNull() {
		t.Error("Base of the null string must stay null")
	}
}

func TestIsDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if !IsDir(str.Of(dir)) {
		t.Error("an existing directory must report true")
	}
	if IsDir(str.Of(file)) {
		t.Error("a regular file must report false")
	}
	if IsDir(str.Of(filepath.Join(dir, "missing"))) {
		t.Error("a missing path must report false")
	}
	if IsDir(str.Null()) {
		t.Error("the null path must report false")
	}
}

func TestIsLink(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target")
	link := filepath.Join(dir, "link")
	if err := os.WriteFile(target, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	if !IsLink(str.Of(link)) {
		t.Error("a symlink must report true")
	}
	if IsLink(str.Of(target)) {
		t.Error("the link target must report false")
	}
	if IsLink(str.Null()) {
		t.Error("the null path must report false")
	}
}

func TestListDir(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b", "a", "c"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	names := ListDir(str.Of(dir))
	if names.Len() != 3 {
		t.Fatalf("Len = %d, want 3", names.Len())
	}
	seen := map[string]bool{}
	names.Range(func(_ int, v str.Str) bool {
		seen[v.String()] = true
		return true
	})
	for _, want := range []string{"a", "b", "c"} {
		if !seen[want] {
			t.Errorf("entry %q missing from listing", want)
		}
	}
}

func TestListDirErrorsYieldEmptyList(t *testing.T) {
	if !ListDir(str.Null()).IsEmpty() {
		t.Error("a null path must yield an empty list")
	}
	if !ListDir(str.Of("/definitely/not/a/dir")).IsEmpty() {
		t.Error("a missing directory must yield an empty list")
	}
}
