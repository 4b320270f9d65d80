// Package ospath provides the filesystem boundary helpers consumed by
// callers of the containers: path joining, directory and symlink tests,
// and unsorted directory listing into an owned list. Failures follow the
// library-wide policy of silent, well-defined recovery: a path that does
// not exist or cannot be read yields false or an empty list.
package ospath
