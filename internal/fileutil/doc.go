// Package fileutil resolves glob expressions against a directory tree.
//
// Expressions are compiled once into a GlobMatcher, which matches a path when
// any of its expressions does. Resolve then lists the root directory, tests the
// path of every entry against the matcher and, when recursion is enabled,
// descends into every subdirectory with the same matcher whether or not the
// subdirectory itself matched.
//
// # Glob syntax
//
// Expressions use doublestar syntax with "/" as the separator:
//   - '*' matches any sequence of non-separator characters
//   - '?' matches any single non-separator character
//   - '**' matches zero or more path segments
//   - '[abc]', '[a-z]' and '[^abc]' match character classes
//   - '{foo,bar}' matches any of the comma-separated alternatives
//
// # Candidate paths
//
// A candidate path is the traversal root joined with the entry name exactly as
// typed: no cleaning is applied. With root "." the entry Cargo.toml is tested
// as "./Cargo.toml", so the expression "./Cargo.*" matches it while
// "Cargo.*" does not.
//
// # Ordering
//
// Results follow traversal order: directory listing order (os.ReadDir sorts
// by name) and, when recursive, each subdirectory's results are appended in
// depth-first order. Callers comparing result sets should sort.
//
// # Errors
//
// A malformed expression returns a *GlobCompileError before any filesystem
// access. A directory that cannot be listed, at any depth, returns a
// *DirectoryReadError and no partial results.
//
// Symlinks to directories are followed during recursion. Symlink cycles are
// not detected.
//
// # Usage
//
//	paths, err := fileutil.Resolve([]string{"**/*.go"}, ".", true)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, p := range paths {
//	    fmt.Println(p)
//	}
package fileutil
