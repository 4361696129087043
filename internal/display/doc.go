// Package display prints matching lines for minigrep.
//
// Printer writes matching lines to standard output, one per line, in the
// order they were found. Highlighting of the query is opt-in:
//
//	p := display.NewPrinter(os.Stdout, display.ColorAuto)
//	if err := p.Print(matches, query, caseSensitive); err != nil {
//	    return err
//	}
//
// With ColorNever (or without highlighting) output is byte-identical to the
// matching lines, which keeps minigrep usable in pipelines.
package display
