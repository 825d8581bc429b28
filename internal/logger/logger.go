// Package logger provides leveled logging for the Mafteah CLI.
// When verbose mode is enabled via the --verbose flag, debug and info
// messages are printed to stderr to help users follow the indexing and
// search pipeline. Warnings and errors are always printed.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
	std               = log.NewWithOptions(os.Stderr, log.Options{Level: log.WarnLevel})
)

// SetVerbose enables or disables verbose logging. Verbose mode lowers
// the log level to debug.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
	if v {
		std.SetLevel(log.DebugLevel)
	} else {
		std.SetLevel(log.WarnLevel)
	}
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	std.SetOutput(w)
}

// Debug logs a message with optional key/value pairs. Only printed in
// verbose mode.
func Debug(msg string, keyvals ...any) {
	std.Debug(msg, keyvals...)
}

// Info logs an informational message with optional key/value pairs.
// Only printed in verbose mode.
func Info(msg string, keyvals ...any) {
	std.Info(msg, keyvals...)
}

// Warn logs a warning message with optional key/value pairs.
func Warn(msg string, keyvals ...any) {
	std.Warn(msg, keyvals...)
}

// Error logs an error message with optional key/value pairs.
func Error(msg string, keyvals ...any) {
	std.Error(msg, keyvals...)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}
