package fileutil

import (
	"fmt"
	"strings"
)

// GlobCompileError reports a malformed glob expression.
type GlobCompileError struct {
	Expression string // Offending expression
	Err        error  // Underlying error (doublestar.ErrBadPattern)
}

// Error implements the error interface for GlobCompileError.
func (e *GlobCompileError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("invalid glob %q", e.Expression))
	if e.Err != nil {
		sb.WriteString(fmt.Sprintf(": %v", e.Err))
	}
	return sb.String()
}

// Unwrap returns the underlying error.
func (e *GlobCompileError) Unwrap() error {
	return e.Err
}

// DirectoryReadError reports a directory that could not be listed.
type DirectoryReadError struct {
	Path string // Directory being listed
	Err  error  // Underlying filesystem error
}

// Error implements the error interface for DirectoryReadError.
func (e *DirectoryReadError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("read directory %s", e.Path))
	if e.Err != nil {
		sb.WriteString(fmt.Sprintf(": %v", e.Err))
	}
	return sb.String()
}

// Unwrap returns the underlying error.
func (e *DirectoryReadError) Unwrap() error {
	return e.Err
}
