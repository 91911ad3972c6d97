package scanner

import (
	"fmt"
	"strings"
)

// StreamReadError is returned when a stream cannot be read to the end or
// contains bytes that are not valid in the expected encoding.
type StreamReadError struct {
	Source string // Stream label, empty for standard input
	Line   int    // 0-based index of the line being read when the error occurred
	Err    error  // Underlying I/O or decoding error
}

// Error implements the error interface for StreamReadError.
func (e *StreamReadError) Error() string {
	var sb strings.Builder
	source := e.Source
	if source == "" {
		source = "<stdin>"
	}
	sb.WriteString(fmt.Sprintf("read %s: line %d", source, e.Line))
	if e.Err != nil {
		sb.WriteString(fmt.Sprintf(": %v", e.Err))
	}
	return sb.String()
}

// Unwrap returns the underlying error.
func (e *StreamReadError) Unwrap() error {
	return e.Err
}
