// Package display renders search results and user-facing warnings.
//
// # Results
//
// Printer writes one line per match in the form
//
//	<path-or-empty>:<lineIndex>:<lineText>
//
// Standard input results have an empty path, so they start with ":".
// When color is enabled the path, index and matched spans are highlighted;
// the characters written are otherwise identical.
//
//	p := display.NewPrinter(os.Stdout, display.ColorAuto, m)
//	for _, rec := range matches {
//	    if err := p.Print(rec); err != nil {
//	        return err
//	    }
//	}
//
// # Warnings
//
// Warning renders a yellow, indented message on a diagnostic writer:
//
//	display.Warning{
//	    Title:      "No files matched",
//	    Message:    "Globs: ./*.txt",
//	    Suggestion: "Use -r to search subdirectories",
//	}.Display(os.Stderr, true)
package display
