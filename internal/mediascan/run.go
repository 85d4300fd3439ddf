package mediascan

import (
	"context"
	"time"
)

// Run resolves opt.Path, collects the matching files and measures them.
//
// Progress updates are sent to progressHook, if provided, while files are
// collected. The collection can be cancelled via ctx.
func Run(ctx context.Context, fsys FS, opt Options, progressHook func(matched, visited int64)) (*Stats, error) {
	log := newLogger(opt.Debug, opt.DebugWriter)

	src, err := Resolve(fsys, opt.Path)
	if err != nil {
		return nil, err
	}

	types := opt.FileTypes
	if types.Empty() {
		types = DefaultFileTypes()
	}

	log.printf("[debug]: scanning %s %s\n", src.Kind, src.Path)
	log.printf("[debug]: include extensions:\n")

	for _, ext := range types.List() {
		log.printf("[debug]:   - %s\n", ext)
	}

	start := time.Now()

	collector := NewCollector(fsys, types)
	collector.log = log

	stop := startProgressReporter(ctx, collector, progressHook, opt.ProgressInterval)
	files, err := collector.Collect(ctx, src)

	stop()

	if err != nil {
		return nil, err
	}

	stats, err := Measure(fsys, files)
	if err != nil {
		return nil, err
	}

	stats.Source = src
	stats.Elapsed = time.Since(start)

	return stats, nil
}
