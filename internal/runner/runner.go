// Package runner executes a single search: read the file, select matching
// lines and print them.
package runner

import (
	"fmt"
	"io"
	"os"

	"github.com/harrison/minigrep/internal/config"
	"github.com/harrison/minigrep/internal/display"
	"github.com/harrison/minigrep/internal/logger"
	"github.com/harrison/minigrep/internal/search"
)

// IOError reports that the target file could not be read.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Options carries the collaborators of Run. Zero values fall back to
// os.Stdout, a plain printer and a no-op logger.
type Options struct {
	Out     io.Writer
	Printer *display.Printer
	Logger  logger.Logger
}

// Run reads cfg.Filename, searches it and prints matches in file order.
// Read failures are returned as *IOError.
func Run(cfg *config.Config, opts Options) error {
	log := opts.Logger
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	printer := opts.Printer
	if printer == nil {
		out := opts.Out
		if out == nil {
			out = os.Stdout
		}
		printer = display.NewPrinter(out, display.ColorNever)
	}

	data, err := os.ReadFile(cfg.Filename)
	if err != nil {
		// the caller reports the returned error
		log.LogDebug(fmt.Sprintf("cannot read %s: %v", cfg.Filename, err))
		return &IOError{Path: cfg.Filename, Err: err}
	}
	log.LogDebug(fmt.Sprintf("read %d bytes from %s", len(data), cfg.Filename))

	mode := "case-sensitive"
	if !cfg.CaseSensitive {
		mode = "case-insensitive"
	}
	log.LogDebug(fmt.Sprintf("searching for %q (%s)", cfg.Query, mode))

	matches := search.Search(cfg.Query, string(data), cfg.CaseSensitive)
	log.LogInfo(fmt.Sprintf("%d matching line(s) in %s", len(matches), cfg.Filename))

	return printer.Print(matches, cfg.Query, cfg.CaseSensitive)
}
