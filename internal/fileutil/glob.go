package fileutil

import (
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// GlobMatcher is a compiled, read-only set of glob expressions.
// A path matches when it satisfies at least one expression.
type GlobMatcher struct {
	expressions []string
}

// CompileGlobs validates every expression and returns a GlobMatcher.
// The first malformed expression is reported as a *GlobCompileError.
func CompileGlobs(expressions []string) (*GlobMatcher, error) {
	compiled := make([]string, 0, len(expressions))
	for _, expr := range expressions {
		if !doublestar.ValidatePattern(expr) {
			return nil, &GlobCompileError{Expression: expr, Err: doublestar.ErrBadPattern}
		}
		compiled = append(compiled, expr)
	}
	return &GlobMatcher{expressions: compiled}, nil
}

// IsMatch reports whether path satisfies any of the expressions.
// OS separators in path are converted to "/" before matching.
func (g *GlobMatcher) IsMatch(path string) bool {
	candidate := filepath.ToSlash(path)
	for _, expr := range g.expressions {
		// Expressions were validated in CompileGlobs, so MatchUnvalidated
		// cannot fail on syntax.
		if doublestar.MatchUnvalidated(expr, candidate) {
			return true
		}
	}
	return false
}
