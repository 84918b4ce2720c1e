package finder

import (
	"fmt"
	"io"
	"os"
)

// logger provides conditional debug output.
type logger struct {
	enabled bool
	out     io.Writer
}

// newLogger returns a logger writing to out, or stderr when out is nil.
func newLogger(enabled bool, out io.Writer) logger {
	if out == nil {
		out = os.Stderr
	}

	return logger{enabled: enabled, out: out}
}

// printf prints debug output if logging is enabled.
func (l logger) printf(format string, args ...any) {
	if l.enabled {
		fmt.Fprintf(l.out, "[debug]: "+format+"\n", args...)
	}
}
