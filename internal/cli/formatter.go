package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/idelchi/mediascan/internal/mediascan"
)

// SeparatorPadding is the separator length beyond the filename column.
const SeparatorPadding = 12

// Report controls where report rows go besides the console.
type Report struct {
	// FS opens the output file.
	FS mediascan.FS
	// Output is the file rows are appended to (empty = none).
	Output string
	// SummaryOnly suppresses the header and per-file rows.
	SummaryOnly bool
	// Errors receives non-fatal errors.
	Errors io.Writer
}

// PrintTable outputs the report in a fixed-width table.
//
// The filename column is as wide as the longest collected path, not the
// longest filename. Each row is also appended to the output file.
//
//nolint:forbidigo // This function prints output to the console.
func (r Report) PrintTable(stats *mediascan.Stats, writer io.Writer) error {
	width := stats.ColumnWidth

	if !r.SummaryOnly {
		// The leading newline counts towards the header padding.
		fmt.Fprintln(writer, padRight("\nFilename", width)+"Size (bytes)")
		fmt.Fprintln(writer, strings.Repeat("-", width+SeparatorPadding))

		for _, f := range stats.Files {
			line := row(f, width)

			fmt.Fprintln(writer, line)
			r.appendLine(line)
		}
	}

	_, err := fmt.Fprintln(writer, summary(stats))

	return err
}

// AppendRows appends every table row to the output file.
func (r Report) AppendRows(stats *mediascan.Stats) {
	if r.SummaryOnly {
		return
	}

	for _, f := range stats.Files {
		r.appendLine(row(f, stats.ColumnWidth))
	}
}

// appendLine opens the output file in append mode and writes line to it.
// Failures are reported and otherwise ignored.
func (r Report) appendLine(line string) {
	if r.Output == "" || r.FS == nil {
		return
	}

	f, err := r.FS.OpenAppend(r.Output)
	if err != nil {
		r.errorf("Error: %v %q: %v\n", mediascan.ErrFileOpen, r.Output, err)

		return
	}
	defer f.Close()

	if _, err := io.WriteString(f, line+"\n"); err != nil {
		r.errorf("Error: writing to %q: %v\n", r.Output, err)
	}
}

func (r Report) errorf(format string, args ...any) {
	if r.Errors != nil {
		fmt.Fprintf(r.Errors, format, args...)
	}
}

// PrintJSON outputs the report in JSON format.
func PrintJSON(stats *mediascan.Stats, writer io.Writer, summaryOnly bool) error {
	data, err := json.MarshalIndent(trim(stats, summaryOnly), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintYAML outputs the report in YAML format.
func PrintYAML(stats *mediascan.Stats, writer io.Writer, summaryOnly bool) error {
	enc := yaml.NewEncoder(writer)
	enc.SetIndent(2)

	if err := enc.Encode(trim(stats, summaryOnly)); err != nil {
		return fmt.Errorf("encoding YAML output: %w", err)
	}

	return enc.Close()
}

// trim drops the per-file entries in summary mode.
func trim(stats *mediascan.Stats, summaryOnly bool) *mediascan.Stats {
	if !summaryOnly {
		return stats
	}

	trimmed := *stats
	trimmed.Files = nil

	return &trimmed
}

func row(f mediascan.FileStat, width int) string {
	return padRight(f.Name, width) + mediascan.HumanSize(f.Size)
}

func summary(stats *mediascan.Stats) string {
	return fmt.Sprintf("\nFiles found: %d Total file size: %s", stats.FileCount, mediascan.HumanSize(stats.TotalBytes))
}

// padRight pads s with spaces to width bytes. Longer strings are kept whole.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}

	return s + strings.Repeat(" ", width-len(s))
}
