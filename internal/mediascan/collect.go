package mediascan

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"sync"
	"time"
)

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 500 * time.Millisecond

// Collector gathers the files of a source whose extension is in its FileTypeSet.
// Entries are kept in traversal order and never deduplicated.
type Collector struct {
	mu      sync.Mutex // Protect concurrent access from fastwalk callbacks
	fsys    FS
	types   FileTypeSet
	log     logger
	files   []string
	visited int64
}

// NewCollector creates a collector reading from fsys and matching against types.
func NewCollector(fsys FS, types FileTypeSet) *Collector {
	return &Collector{
		fsys:  fsys,
		types: types,
		files: make([]string, 0),
	}
}

// Progress returns the number of files matched and entries visited so far.
func (c *Collector) Progress() (matched, visited int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return int64(len(c.files)), c.visited
}

// Collect gathers the matching files of src.
//
// A directory is walked recursively. A manifest is read line by line: empty
// lines and paths that do not exist are skipped, a directory line contributes
// only its immediate children, and a file line contributes itself.
func (c *Collector) Collect(ctx context.Context, src Source) ([]string, error) {
	var err error

	switch src.Kind {
	case KindDirectory:
		err = c.walk(ctx, src.Path)
	case KindManifest:
		err = c.readManifest(ctx, src.Path)
	default:
		err = fmt.Errorf("%w: unknown source kind for %q", ErrInvalidInput, src.Path)
	}

	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]string(nil), c.files...), nil
}

func (c *Collector) add(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.files = append(c.files, path)
}

func (c *Collector) visit() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.visited++
}

// walk collects matching regular files anywhere below root.
//
//nolint:varnamelen // d is standard for DirEntry
func (c *Collector) walk(ctx context.Context, root string) error {
	return c.fsys.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			c.log.printf("[debug]: error accessing path %s: %v\n", path, err)

			return nil // Silently skip errors
		}

		// Check cancellation periodically
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		c.visit()

		if d == nil || d.IsDir() {
			return nil
		}

		c.consider(path, d)

		return nil
	})
}

// readManifest collects the files named by the lines of a manifest.
func (c *Collector) readManifest(ctx context.Context, manifest string) error {
	lines, err := readLines(c.fsys, manifest)
	if err != nil {
		return fmt.Errorf("reading manifest %q: %w", manifest, err)
	}

	for i, line := range lines {
		if err := ctx.Err(); err != nil {
			return err
		}

		if line == "" {
			continue
		}

		c.visit()

		info, err := c.fsys.Stat(line)
		if err != nil {
			c.log.printf("[debug]: skipping manifest line %d (%v)\n", i+1, err)

			continue
		}

		switch {
		case info.IsDir():
			c.scanDir(ctx, line)
		case info.Mode().IsRegular():
			if c.types.Matches(line) {
				c.add(line)
			} else {
				c.log.printf("[debug]: excluding file (extension filter): %s\n", line)
			}
		default:
			c.log.printf("[debug]: skipping manifest line %d (not a file or directory): %s\n", i+1, line)
		}
	}

	return nil
}

// scanDir collects the matching regular files directly inside dir.
func (c *Collector) scanDir(ctx context.Context, dir string) {
	entries, err := c.fsys.ReadDir(dir)
	if err != nil {
		c.log.printf("[debug]: error reading directory %s: %v\n", dir, err)

		return
	}

	for _, entry := range entries {
		if ctx.Err() != nil {
			return
		}

		c.visit()

		if entry.IsDir() {
			continue
		}

		c.consider(filepath.Join(dir, entry.Name()), entry)
	}
}

// consider appends path if it is a regular file with a matching extension.
func (c *Collector) consider(path string, d fs.DirEntry) {
	if !c.isRegular(path, d) {
		c.log.printf("[debug]: skipping non-regular file: %s\n", path)

		return
	}

	if !c.types.Matches(path) {
		c.log.printf("[debug]: excluding file (extension filter): %s\n", path)

		return
	}

	c.add(path)
}

// isRegular reports whether d is a regular file, resolving symlinks.
func (c *Collector) isRegular(path string, d fs.DirEntry) bool {
	mode := d.Type()

	if mode.IsRegular() {
		return true
	}

	if mode&fs.ModeSymlink == 0 {
		return false
	}

	info, err := c.fsys.Stat(path)

	return err == nil && info.Mode().IsRegular()
}

// startProgressReporter invokes hook(matched, visited) on each tick until the
// returned stop function is called. stop waits for the reporter to exit.
//
//nolint:varnamelen // c is idiomatic for collector
func startProgressReporter(ctx context.Context, c *Collector, hook func(int64, int64), interval time.Duration) (stop func()) {
	if hook == nil {
		return func() {}
	}

	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	ticker := time.NewTicker(interval)

	go func() {
		defer close(done)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				hook(c.Progress())
			case <-ctx.Done():
				return
			}
		}
	}()

	return func() {
		cancel()
		<-done
	}
}
