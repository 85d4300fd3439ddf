package mediascan

import (
	"fmt"
	"io"
	"path/filepath"
	"time"
)

// FileStat represents a single collected file.
type FileStat struct {
	// Path is the path as collected.
	Path string `json:"path" yaml:"path"`
	// Name is the last element of Path.
	Name string `json:"name" yaml:"name"`
	// Size is the size in bytes.
	Size int64 `json:"size" yaml:"size"`
}

// Stats holds the measured result of a scan.
type Stats struct {
	// Source is the resolved input.
	Source Source `json:"source" yaml:"source"`
	// Files lists every collected file in traversal order.
	Files []FileStat `json:"files,omitempty" yaml:"files,omitempty"`
	// FileCount is the number of collected files.
	FileCount int `json:"file_count" yaml:"file_count"`
	// TotalBytes is the cumulative size of all collected files.
	TotalBytes int64 `json:"total_bytes" yaml:"total_bytes"`
	// ColumnWidth is the length of the longest collected path.
	ColumnWidth int `json:"-" yaml:"-"`
	// Elapsed is the total time taken for the scan.
	Elapsed time.Duration `json:"elapsed" yaml:"elapsed"`
}

// Options configures a scan and how its report is written.
type Options struct {
	// Path is the directory or manifest file to scan.
	Path string
	// Output is a file every report row is appended to (empty = none).
	Output string
	// SummaryOnly suppresses the per-file rows.
	SummaryOnly bool
	// Format is the report format (table, json or yaml).
	Format string
	// FileTypes is the extension allowlist (zero value = DefaultFileTypes).
	FileTypes FileTypeSet
	// ProgressInterval controls progress callback cadence.
	ProgressInterval time.Duration
	// Debug indicates whether debug output is enabled.
	Debug bool
	// DebugWriter receives debug output (nil = stderr).
	DebugWriter io.Writer
}

// Measure queries the size of every file in files.
//
// Files are measured after collection, so a file removed in between fails
// the whole measurement with ErrSizeQuery.
func Measure(fsys FS, files []string) (*Stats, error) {
	stats := &Stats{
		Files: make([]FileStat, 0, len(files)),
	}

	for _, path := range files {
		if len(path) > stats.ColumnWidth {
			stats.ColumnWidth = len(path)
		}

		info, err := fsys.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrSizeQuery, path, err)
		}

		stats.Files = append(stats.Files, FileStat{
			Path: path,
			Name: filepath.Base(path),
			Size: info.Size(),
		})
		stats.TotalBytes += info.Size()
	}

	stats.FileCount = len(stats.Files)

	return stats, nil
}
