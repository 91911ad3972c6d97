// Package matcher decides whether a line of text satisfies a search pattern.
//
// A Matcher is built once per search from the user pattern and a Mode, and is
// then shared by every scan in the run. Both implementations are immutable and
// safe to call from any goroutine without synchronization.
package matcher

import (
	"fmt"
	"strings"

	"github.com/grafana/regexp"
)

// Mode selects how a pattern is interpreted.
type Mode int

const (
	// ModeRegex interprets the pattern as an RE2 regular expression.
	ModeRegex Mode = iota
	// ModeLiteral interprets the pattern as a plain substring.
	ModeLiteral
)

// String returns the config-file spelling of the mode.
func (m Mode) String() string {
	switch m {
	case ModeRegex:
		return "regex"
	case ModeLiteral:
		return "literal"
	default:
		return "unknown"
	}
}

// ParseMode converts "regex" or "literal" (case-insensitive) into a Mode.
// An empty string yields ModeRegex.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "regex":
		return ModeRegex, nil
	case "literal":
		return ModeLiteral, nil
	default:
		return ModeRegex, fmt.Errorf("invalid mode %q, must be one of: regex, literal", s)
	}
}

// Matcher reports whether a line satisfies the search condition.
type Matcher interface {
	IsMatch(line string) bool
}

// Locator is implemented by matchers that can report where in a line they
// matched. Each element is a [start, end) byte offset pair.
type Locator interface {
	FindAllIndex(line string) [][]int
}

// Compile builds a Matcher for pattern in the given mode. Literal patterns
// always compile; an invalid regular expression returns a *PatternCompileError.
func Compile(pattern string, mode Mode) (Matcher, error) {
	switch mode {
	case ModeLiteral:
		return NewLiteral(pattern), nil
	case ModeRegex:
		return NewRegex(pattern)
	default:
		return nil, fmt.Errorf("unknown match mode %d", int(mode))
	}
}

// Literal matches lines containing a fixed substring.
type Literal struct {
	needle string
}

// NewLiteral returns a Literal matcher for needle. The empty needle matches
// every line.
func NewLiteral(needle string) *Literal {
	return &Literal{needle: needle}
}

// IsMatch reports whether line contains the needle.
func (l *Literal) IsMatch(line string) bool {
	return strings.Contains(line, l.needle)
}

// FindAllIndex returns the non-overlapping occurrences of the needle in line.
func (l *Literal) FindAllIndex(line string) [][]int {
	if l.needle == "" {
		return nil
	}

	var spans [][]int
	offset := 0
	for {
		i := strings.Index(line[offset:], l.needle)
		if i < 0 {
			break
		}
		start := offset + i
		end := start + len(l.needle)
		spans = append(spans, []int{start, end})
		offset = end
	}
	return spans
}

// String returns the needle.
func (l *Literal) String() string {
	return l.needle
}

// Regex matches lines containing a match for a compiled regular expression.
type Regex struct {
	re *regexp.Regexp
}

// NewRegex compiles expr. Syntax errors are returned as *PatternCompileError.
func NewRegex(expr string) (*Regex, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, &PatternCompileError{Pattern: expr, Err: err}
	}
	return &Regex{re: re}, nil
}

// IsMatch reports whether line contains any match of the expression.
func (r *Regex) IsMatch(line string) bool {
	return r.re.MatchString(line)
}

// FindAllIndex returns the non-empty match spans of the expression in line.
func (r *Regex) FindAllIndex(line string) [][]int {
	var spans [][]int
	for _, loc := range r.re.FindAllStringIndex(line, -1) {
		if loc[0] == loc[1] {
			continue
		}
		spans = append(spans, loc)
	}
	return spans
}

// String returns the source text of the expression.
func (r *Regex) String() string {
	return r.re.String()
}

var (
	_ Matcher = (*Literal)(nil)
	_ Matcher = (*Regex)(nil)
	_ Locator = (*Literal)(nil)
	_ Locator = (*Regex)(nil)
)
