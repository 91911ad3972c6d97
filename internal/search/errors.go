package search

import (
	"fmt"
	"strings"
)

// OpenError reports a resolved path that could not be opened for scanning.
type OpenError struct {
	Path string // Path returned by glob resolution
	Err  error  // Underlying filesystem error
}

// Error implements the error interface for OpenError.
func (e *OpenError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("open %s", e.Path))
	if e.Err != nil {
		sb.WriteString(fmt.Sprintf(": %v", e.Err))
	}
	return sb.String()
}

// Unwrap returns the underlying error.
func (e *OpenError) Unwrap() error {
	return e.Err
}
