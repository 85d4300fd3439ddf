package mediascan

import (
	"fmt"
	"io"
	"os"
)

// logger provides conditional debug output.
type logger struct {
	enabled bool
	w       io.Writer
}

// newLogger returns a logger writing to w, or to stderr when w is nil.
func newLogger(enabled bool, w io.Writer) logger {
	if w == nil {
		w = os.Stderr
	}

	return logger{enabled: enabled, w: w}
}

// printf prints debug output if logging is enabled.
func (l logger) printf(format string, args ...any) {
	if l.enabled && l.w != nil {
		fmt.Fprintf(l.w, format, args...)
	}
}
