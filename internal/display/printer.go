package display

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ColorMode selects when matched text is highlighted
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Printer writes matching lines, one per line, optionally highlighting the query.
type Printer struct {
	out       io.Writer
	highlight *color.Color
}

// NewPrinter creates a Printer writing to out.
// With ColorAuto highlighting is used only when out is a terminal and
// NO_COLOR is not set.
func NewPrinter(out io.Writer, mode ColorMode) *Printer {
	p := &Printer{out: out}

	if shouldColor(out, mode) {
		p.highlight = color.New(color.FgRed, color.Bold)
		// color.NoColor reflects stdout only; the decision is already made here.
		p.highlight.EnableColor()
	}

	return p
}

// shouldColor resolves a ColorMode against the writer.
func shouldColor(out io.Writer, mode ColorMode) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorAuto:
		f, ok := out.(*os.File)
		if !ok || color.NoColor {
			return false
		}
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	default:
		return false
	}
}

// Colored reports whether the printer emits ANSI highlighting.
func (p *Printer) Colored() bool {
	return p.highlight != nil
}

// Print writes each line followed by a newline, in order.
func (p *Printer) Print(lines []string, query string, caseSensitive bool) error {
	for _, line := range lines {
		if p.highlight != nil {
			line = p.highlightLine(line, query, caseSensitive)
		}
		if _, err := fmt.Fprintln(p.out, line); err != nil {
			return fmt.Errorf("failed to write match: %w", err)
		}
	}
	return nil
}

// highlightLine wraps every non-overlapping occurrence of query in line.
// Case-insensitive offsets are taken from the lower-cased line, so a line with
// any rune whose lower-case form has a different encoded width is printed
// unhighlighted.
func (p *Printer) highlightLine(line, query string, caseSensitive bool) string {
	if query == "" {
		return line
	}

	haystack, needle := line, query
	if !caseSensitive {
		if !foldKeepsOffsets(line) {
			return line
		}
		haystack, needle = strings.ToLower(line), strings.ToLower(query)
	}

	var b strings.Builder
	pos := 0
	for {
		i := strings.Index(haystack[pos:], needle)
		if i < 0 {
			break
		}
		start := pos + i
		end := start + len(needle)
		b.WriteString(line[pos:start])
		b.WriteString(p.highlight.Sprint(line[start:end]))
		pos = end
	}
	b.WriteString(line[pos:])

	return b.String()
}

// foldKeepsOffsets reports whether every rune of s lower-cases to the same
// number of bytes, so byte offsets in strings.ToLower(s) are offsets in s.
// Invalid UTF-8 fails because ToLower replaces it with a 3-byte RuneError.
func foldKeepsOffsets(s string) bool {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if utf8.RuneLen(unicode.ToLower(r)) != size {
			return false
		}
		i += size
	}
	return true
}
