package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Warning represents a user-facing warning message
type Warning struct {
	Title      string   // Main warning title
	Message    string // Detailed explanation (optional)
	Suggestion string // Action to take (optional)
}

// Display writes the warning to out, in yellow when colored is true.
func (w Warning) Display(out io.Writer, colored bool) {
	var b strings.Builder

	b.WriteString("Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	if w.Suggestion != "" {
		b.WriteString("    Suggestion:\n")
		b.WriteString("    ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	if !colored {
		fmt.Fprint(out, b.String())
		return
	}

	// Sprint honours EnableColor for the closing reset; Fprint does not
	// when color.NoColor is set globally.
	yellow := color.New(color.FgYellow)
	yellow.EnableColor()
	fmt.Fprint(out, yellow.Sprint(b.String()))
}

// NoFilesMatched builds the warning shown when glob resolution returns nothing.
func NoFilesMatched(globs []string, root string, recursive bool) Warning {
	w := Warning{
		Title:   "no files matched",
		Message: fmt.Sprintf("Globs %s resolved under %s", strings.Join(globs, ", "), root),
	}
	if !recursive {
		w.Suggestion = "Use -r to search subdirectories"
	}
	return w
}
