package fileutil

import (
	"os"
	"path/filepath"
	"strings"
)

// Resolve compiles expressions and returns every path under root that
// matches at least one of them. See ResolveWith for traversal details.
func Resolve(expressions []string, root string, recursive bool) ([]string, error) {
	gm, err := CompileGlobs(expressions)
	if err != nil {
		return nil, err
	}
	return ResolveWith(gm, root, recursive)
}

// ResolveWith lists root and returns the entries whose joined path matches gm,
// in listing order. When recursive is true every subdirectory is descended
// into with the same matcher, and its results follow the current level's
// entry in depth-first order.
func ResolveWith(gm *GlobMatcher, root string, recursive bool) ([]string, error) {
	paths := make([]string, 0)
	if err := walkDir(gm, root, recursive, &paths); err != nil {
		return nil, err
	}
	return paths, nil
}

// walkDir appends the matching entries of dir to paths, recursing as it goes.
func walkDir(gm *GlobMatcher, dir string, recursive bool, paths *[]string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return &DirectoryReadError{Path: dir, Err: err}
	}

	for _, entry := range entries {
		path := joinEntry(dir, entry.Name())
		if gm.IsMatch(path) {
			*paths = append(*paths, path)
		}

		if recursive && isDir(path, entry) {
			if err := walkDir(gm, path, recursive, paths); err != nil {
				return err
			}
		}
	}

	return nil
}

// isDir reports whether entry is a directory, following symlinks.
// A dangling symlink is not a directory.
func isDir(path string, entry os.DirEntry) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// joinEntry appends name to dir without cleaning dir, so "." stays "./".
func joinEntry(dir, name string) string {
	if dir == "" {
		return name
	}
	if strings.HasSuffix(dir, string(filepath.Separator)) || strings.HasSuffix(dir, "/") {
		return dir + name
	}
	return dir + string(filepath.Separator) + name
}
