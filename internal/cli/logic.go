package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/idelchi/mediascan/internal/mediascan"
)

func logic(ctx context.Context, fsys mediascan.FS, options mediascan.Options, stdout, stderr io.Writer) error {
	enableProgress := options.Format == "table" &&
		!options.Debug &&
		isTerminal(stderr)

	options.DebugWriter = stderr

	// Simple progress callback that prints directly to stderr
	var progressHook func(matched, visited int64)

	if enableProgress {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(stderr, "\033[?25l")
		defer fmt.Fprint(stderr, "\033[?25h")

		progressHook = func(matched, visited int64) {
			msg := fmt.Sprintf("Scanning… %s matched, %s entries",
				humanize.Comma(matched), humanize.Comma(visited))
			fmt.Fprintf(stderr, "\r\033[2K%s\r", msg)
		}
	}

	stats, err := mediascan.Run(ctx, fsys, options, progressHook)

	// Clear the status line
	if enableProgress {
		fmt.Fprint(stderr, "\r\033[2K\r")
	}

	if err != nil {
		return err
	}

	if options.Debug {
		fmt.Fprintf(stderr, "[debug]: collected %d files, %s in %v\n",
			stats.FileCount, humanize.IBytes(uint64(stats.TotalBytes)), stats.Elapsed) //nolint:gosec // Sizes are never negative
	}

	report := Report{
		FS:          fsys,
		Output:      options.Output,
		SummaryOnly: options.SummaryOnly,
		Errors:      stderr,
	}

	switch options.Format {
	case "json":
		report.AppendRows(stats)

		return PrintJSON(stats, stdout, report.SummaryOnly)
	case "yaml":
		report.AppendRows(stats)

		return PrintYAML(stats, stdout, report.SummaryOnly)
	case "table":
		return report.PrintTable(stats, stdout)
	default:
		return fmt.Errorf("unknown output format: %s", options.Format)
	}
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && isatty.IsTerminal(f.Fd())
}
