// Package logger provides prefixed charmbracelet/log loggers. They write to
// stderr so that the IPC stream on stdout stays clean.
package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New creates a logger with the given prefix that follows the global level.
func New(prefix string) *log.Logger {
	return NewWithWriter(os.Stderr, prefix)
}

// NewWithWriter is New with a custom destination, mainly for tests.
func NewWithWriter(w io.Writer, prefix string) *log.Logger {
	return NewWithConfig(w, prefix, log.GetLevel(), false)
}

// NewWithConfig builds a text logger at a fixed level. Timestamps are shown
// at debug level only.
func NewWithConfig(w io.Writer, prefix string, level log.Level, caller bool) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		Level:           level,
		ReportCaller:    caller,
		ReportTimestamp: level == log.DebugLevel,
		Formatter:       log.TextFormatter,
	})
}
