package logging

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/vvka-141/loadnames/pkg/loadnames"
)

// ConsoleLogger writes log messages to stderr.
// Safe for concurrent use by multiple goroutines.
type ConsoleLogger struct {
	verbose bool
	out     io.Writer // nil means os.Stderr at write time
	prefix  prefixes
	mu      sync.Mutex
}

// NewConsoleLogger creates a new ConsoleLogger writing to stderr.
// If verbose is true, Verbose() calls will produce output.
// If verbose is false, Verbose() calls are no-ops.
func NewConsoleLogger(verbose bool) *ConsoleLogger {
	p := plainPrefixes()
	if ColorEnabled(os.Stderr) {
		p = styledPrefixes(os.Stderr)
	}
	return &ConsoleLogger{
		verbose: verbose,
		prefix:  p,
	}
}

// NewWriterLogger creates a ConsoleLogger that writes unstyled output to w.
func NewWriterLogger(w io.Writer, verbose bool) *ConsoleLogger {
	return &ConsoleLogger{
		verbose: verbose,
		out:     w,
		prefix:  plainPrefixes(),
	}
}

func (l *ConsoleLogger) writer() io.Writer {
	if l.out != nil {
		return l.out
	}
	return os.Stderr
}

func (l *ConsoleLogger) write(prefix, format string, args []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if prefix != "" {
		format = prefix + " " + format
	}
	if len(args) > 0 {
		fmt.Fprintf(l.writer(), format+"\n", args...)
	} else {
		fmt.Fprint(l.writer(), format+"\n")
	}
}

// Verbose logs detailed diagnostic information if verbose mode is enabled.
func (l *ConsoleLogger) Verbose(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.write(l.prefix.verbose, format, args)
}

// Info logs informational messages about normal operations.
func (l *ConsoleLogger) Info(format string, args ...interface{}) {
	l.write("", format, args)
}

// Error logs error messages.
func (l *ConsoleLogger) Error(format string, args ...interface{}) {
	l.write(l.prefix.err, format, args)
}

var _ loadnames.Logger = (*ConsoleLogger)(nil)
