// Package search drives a complete lgrep run: it resolves globs into files,
// scans each file (or standard input) in order and forwards every match to a
// sink. The first error stops the run; results already delivered to the sink
// stay delivered.
package search

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/harrison/lgrep/internal/fileutil"
	"github.com/harrison/lgrep/internal/matcher"
	"github.com/harrison/lgrep/internal/scanner"
)

// Logger receives diagnostics about a run.
type Logger interface {
	LogTrace(message string)
	LogWarn(message string)
	LogFilesResolved(globs []string, root string, paths []string)
	LogFileScanned(source string, matches int, duration time.Duration)
}

// Sink consumes the matches of one stream, in line order.
type Sink interface {
	PrintAll(records []scanner.Match) error
}

// Request describes one search.
type Request struct {
	// Globs selects the files to search. Empty means read Stdin.
	Globs []string
	// Root is the directory globs are resolved from. Defaults to ".".
	Root string
	// Recursive enables recursive directory descent.
	Recursive bool
}

// Summary reports what a completed run did.
type Summary struct {
	Files   int // Streams scanned (1 for standard input)
	Matches int // Records delivered to the sink
}

// Searcher runs requests with a fixed matcher, scanner and sink.
type Searcher struct {
	Matcher matcher.Matcher
	Scanner *scanner.Scanner
	Sink    Sink
	Logger  Logger
	// Stdin is read when a request has no globs.
	Stdin io.Reader
	// OnNoFiles is called when globs resolve to zero paths.
	OnNoFiles func(req Request)
}

// Run executes req. It returns the first GlobCompileError,
// DirectoryReadError, OpenError, StreamReadError or sink error encountered.
func (s *Searcher) Run(req Request) (Summary, error) {
	if len(req.Globs) == 0 {
		return s.runStdin()
	}

	root := req.Root
	if root == "" {
		root = "."
	}

	paths, err := fileutil.Resolve(req.Globs, root, req.Recursive)
	if err != nil {
		return Summary{}, err
	}
	s.Logger.LogFilesResolved(req.Globs, root, paths)

	if len(paths) == 0 && s.OnNoFiles != nil {
		s.OnNoFiles(req)
	}

	var summary Summary
	for _, path := range paths {
		n, scanned, err := s.scanFile(path)
		if err != nil {
			return summary, err
		}
		if !scanned {
			continue
		}
		summary.Files++
		summary.Matches += n
	}

	return summary, nil
}

func (s *Searcher) runStdin() (Summary, error) {
	if s.Stdin == nil {
		return Summary{}, fmt.Errorf("no input: standard input is not available")
	}
	n, err := s.scanStream(s.Stdin, s.Scanner)
	if err != nil {
		return Summary{}, err
	}
	return Summary{Files: 1, Matches: n}, nil
}

// scanFile opens path, scans it and closes it on every exit path.
// scanned is false when path names a directory, which is skipped.
func (s *Searcher) scanFile(path string) (matches int, scanned bool, err error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, false, &OpenError{Path: path, Err: err}
	}
	if info.IsDir() {
		s.Logger.LogWarn(fmt.Sprintf("%s: is a directory, skipped", path))
		return 0, false, nil
	}

	s.Logger.LogTrace(fmt.Sprintf("opening %s", path))
	f, err := os.Open(path)
	if err != nil {
		return 0, false, &OpenError{Path: path, Err: err}
	}
	defer f.Close()

	matches, err = s.scanStream(f, s.Scanner.WithSource(path))
	if err != nil {
		return 0, false, err
	}
	return matches, true, nil
}

func (s *Searcher) scanStream(r io.Reader, sc *scanner.Scanner) (int, error) {
	start := time.Now()
	matches, err := sc.Scan(r, s.Matcher)
	if err != nil {
		return 0, err
	}

	if err := s.Sink.PrintAll(matches); err != nil {
		return 0, err
	}

	s.Logger.LogFileScanned(sc.Source(), len(matches), time.Since(start))
	return len(matches), nil
}
