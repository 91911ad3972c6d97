// Package scanner reads a byte stream line by line and collects the lines that
// satisfy a matcher.
//
// Scanning is all-or-nothing: if the stream cannot be read to the end, or a
// line is not valid text in the configured encoding, Scan returns a
// *StreamReadError and no matches. The scanner never closes the reader it is
// given.
package scanner

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/harrison/lgrep/internal/matcher"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// Match is one line that satisfied the matcher.
type Match struct {
	// Source labels the stream the line came from. Empty for standard input.
	Source string
	// Index is the 0-based position of the line in its stream.
	Index int
	// Text is the line without its terminator.
	Text string
}

// Options configures a Scanner.
type Options struct {
	// Encoding is the name of the input encoding. Empty means UTF-8.
	Encoding string
	// Source is copied into every Match and StreamReadError.
	Source string
}

// Scanner scans streams with a fixed encoding and source label.
type Scanner struct {
	enc    encoding.Encoding
	source string
}

// New creates a Scanner. An unknown encoding name returns an error wrapping
// ErrUnsupportedEncoding.
func New(opts Options) (*Scanner, error) {
	enc, err := LookupEncoding(opts.Encoding)
	if err != nil {
		return nil, err
	}
	return &Scanner{enc: enc, source: opts.Source}, nil
}

// WithSource returns a copy of s labelling its results with source.
func (s *Scanner) WithSource(source string) *Scanner {
	return &Scanner{enc: s.enc, source: source}
}

// Source returns the label attached to results.
func (s *Scanner) Source() string {
	return s.source
}

var defaultScanner = &Scanner{enc: encodingOverrides[""]}

// Scan reads r as UTF-8 and returns the lines for which m.IsMatch is true.
// Matches carry an empty Source, the label used for standard input; use New
// with Options.Source to label results from a named file.
func Scan(r io.Reader, m matcher.Matcher) ([]Match, error) {
	return defaultScanner.Scan(r, m)
}

// Scan reads r to the end and returns the matching lines in read order.
func (s *Scanner) Scan(r io.Reader, m matcher.Matcher) ([]Match, error) {
	br := bufio.NewReader(s.decode(r))

	var matches []Match
	for index := 0; ; index++ {
		raw, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, &StreamReadError{Source: s.source, Line: index, Err: err}
		}
		if raw == "" && err != nil {
			// Clean EOF on a line boundary.
			break
		}

		text := trimLineEnding(raw)
		if m.IsMatch(text) {
			matches = append(matches, Match{Source: s.source, Index: index, Text: text})
		}

		if err != nil {
			break
		}
	}

	return matches, nil
}

// decode wraps r so that invalid input surfaces as a read error. UTF-8 input
// is validated in place; other encodings are transcoded to UTF-8.
func (s *Scanner) decode(r io.Reader) io.Reader {
	if isUTF8(s.enc) {
		return transform.NewReader(r, encoding.UTF8Validator)
	}
	return transform.NewReader(r, s.enc.NewDecoder())
}

// trimLineEnding strips a trailing "\n" or "\r\n".
func trimLineEnding(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
