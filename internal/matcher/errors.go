package matcher

import (
	"fmt"
	"strings"
)

// PatternCompileError is returned when a regular expression cannot be parsed.
type PatternCompileError struct {
	Pattern string // Pattern as given by the user
	Err     error  // Parser diagnostic
}

// Error implements the error interface for PatternCompileError.
func (e *PatternCompileError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("invalid pattern %q", e.Pattern))
	if e.Err != nil {
		sb.WriteString(fmt.Sprintf(": %v", e.Err))
	}
	return sb.String()
}

// Unwrap returns the underlying parser error.
func (e *PatternCompileError) Unwrap() error {
	return e.Err
}
