// Package logger prints verbose diagnostics for the Canopy CLI.
//
// Logging is off by default. The --verbose flag switches it on, after
// which the indexing and search pipelines narrate their progress on
// stderr. All output goes through a single writer, so tests can swap
// in a buffer with SetOutput.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	enabled bool
	out     io.Writer = os.Stderr
)

// SetVerbose switches verbose logging on or off.
func SetVerbose(on bool) {
	mu.Lock()
	enabled = on
	mu.Unlock()
}

// IsVerbose reports whether verbose logging is on.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// SetOutput redirects log output. The default writer is os.Stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	out = w
	mu.Unlock()
}

// Debug logs fine-grained progress detail.
func Debug(format string, args ...any) { logf("DEBUG", format, args...) }

// Info logs pipeline milestones.
func Info(format string, args ...any) { logf("INFO", format, args...) }

// Warn logs recoverable problems, such as a file that failed to parse.
func Warn(format string, args ...any) { logf("WARN", format, args...) }

// Error logs failures that abort the current operation.
func Error(format string, args ...any) { logf("ERROR", format, args...) }

// Section marks the start of a pipeline phase with a banner line.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if enabled {
		fmt.Fprintf(out, "\n=== %s ===\n", name)
	}
}

func logf(level, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if !enabled {
		return
	}
	fmt.Fprintf(out, "["+level+"] "+format+"\n", args...)
}
