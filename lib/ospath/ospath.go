package ospath

import (
	"os"
	"path/filepath"

	"github.com/mlehner/strkit/lib/list"
	"github.com/mlehner/strkit/lib/str"
)

// --------------------------------------------------------------------------
// Path Helpers
// --------------------------------------------------------------------------

// Join joins a directory path and an entry name with a single separator.
// Null parts contribute nothing; the result is always present.
func Join(path, name str.Str) str.Str {
	return str.Concat(path, str.Of("/"), name)
}

// Base returns the last element of path. The null string stays null.
func Base(path str.Str) str.Str {
	raw, ok := path.Value()
	if !ok {
		return str.Null()
	}
	return str.Of(filepath.Base(raw))
}

// IsDir reports whether path names an existing directory.
func IsDir(path str.Str) bool {
	raw, ok := path.Value()
	if !ok {
		return false
	}
	st, err := os.Stat(raw)
	return err == nil && st.IsDir()
}

// IsLink reports whether path names a symbolic link.
func IsLink(path str.Str) bool {
	raw, ok := path.Value()
	if !ok {
		return false
	}
	st, err := os.Lstat(raw)
	return err == nil && st.Mode()&os.ModeSymlink != 0
}

// ListDir returns the entry names of the directory at path as a new owned
// list, in directory order (platform-defined, not sorted). A null path or
// a missing or unreadable directory yields an empty list, never an error.
func ListDir(path str.Str) *list.List {
	names := list.New()
	raw, ok := path.Value()
	if !ok {
		return names
	}
	dir, err := os.Open(raw)
	if err != nil {
		return names
	}
	defer dir.Close()
	// Readdirnames keeps the on-disk order; ReadDir would sort.
	entries, err := dir.Readdirnames(-1)
	if err != nil && len(entries) == 0 {
		return names
	}
	for _, name := range entries {
		names.Append(str.Of(name))
	}
	return names
}
