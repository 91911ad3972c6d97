package display

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/harrison/lgrep/internal/matcher"
	"github.com/harrison/lgrep/internal/scanner"
	"github.com/mattn/go-isatty"
)

// ColorMode controls when output is colorized.
type ColorMode int

const (
	// ColorAuto colors output only when writing to a terminal and NO_COLOR is unset.
	ColorAuto ColorMode = iota
	// ColorAlways colors output unconditionally.
	ColorAlways
	// ColorNever disables colors.
	ColorNever
)

// String returns the flag spelling of the mode.
func (c ColorMode) String() string {
	switch c {
	case ColorAuto:
		return "auto"
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "unknown"
	}
}

// ParseColorMode converts "auto", "always" or "never" into a ColorMode.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return ColorAuto, fmt.Errorf("invalid color mode %q, must be one of: auto, always, never", s)
	}
}

// ShouldColor resolves mode against the writer that will receive output.
func ShouldColor(w io.Writer, mode ColorMode) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// colorScheme defines the colors used for result lines.
// Magenta: source path
// Green: line index
// Bold red: matched text
type colorScheme struct {
	path  *color.Color
	index *color.Color
	match *color.Color
}

// newColorScheme creates the result color scheme. Colors are forced on so
// that --color=always works when stdout is not a terminal.
func newColorScheme() *colorScheme {
	scheme := &colorScheme{
		path:  color.New(color.FgMagenta),
		index: color.New(color.FgGreen),
		match: color.New(color.FgRed, color.Bold),
	}
	scheme.path.EnableColor()
	scheme.index.EnableColor()
	scheme.match.EnableColor()
	return scheme
}

// Printer writes match records to an output sink.
type Printer struct {
	out     io.Writer
	scheme  *colorScheme
	locator matcher.Locator
}

// NewPrinter creates a Printer writing to out. Matched spans are highlighted
// when color is enabled and m implements matcher.Locator.
func NewPrinter(out io.Writer, mode ColorMode, m matcher.Matcher) *Printer {
	p := &Printer{out: out}
	if ShouldColor(out, mode) {
		p.scheme = newColorScheme()
		if loc, ok := m.(matcher.Locator); ok {
			p.locator = loc
		}
	}
	return p
}

// Colored reports whether the printer emits ANSI colors.
func (p *Printer) Colored() bool {
	return p.scheme != nil
}

// Print writes one record as "<path>:<index>:<text>".
func (p *Printer) Print(rec scanner.Match) error {
	var line string
	if p.scheme == nil {
		line = rec.Source + ":" + strconv.Itoa(rec.Index) + ":" + rec.Text + "\n"
	} else {
		source := rec.Source
		if source != "" {
			source = p.scheme.path.Sprint(source)
		}
		line = source + ":" +
			p.scheme.index.Sprint(strconv.Itoa(rec.Index)) + ":" +
			p.highlight(rec.Text) + "\n"
	}

	if _, err := io.WriteString(p.out, line); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}

// PrintAll writes records in order and stops at the first write error.
func (p *Printer) PrintAll(records []scanner.Match) error {
	for _, rec := range records {
		if err := p.Print(rec); err != nil {
			return err
		}
	}
	return nil
}

// highlight wraps each matched span of text in the match color.
func (p *Printer) highlight(text string) string {
	if p.locator == nil {
		return text
	}
	spans := p.locator.FindAllIndex(text)
	if len(spans) == 0 {
		return text
	}

	var b strings.Builder
	last := 0
	for _, span := range spans {
		b.WriteString(text[last:span[0]])
		b.WriteString(p.scheme.match.Sprint(text[span[0]:span[1]]))
		last = span[1]
	}
	b.WriteString(text[last:])
	return b.String()
}
