// Package diagnostics gates verbose parse/resolution logging behind a
// single package-level toggle rather than pulling in a structured
// logging library for a concern this small.
package diagnostics

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

var (
	mu      sync.Mutex
	out     io.Writer = os.Stderr
	enabled bool
)

// SetEnabled turns verbose diagnostics on or off. Disabled by default.
func SetEnabled(v bool) {
	mu.Lock()
	defer mu.Unlock()
	enabled = v
}

// SetOutput overrides the writer diagnostics are sent to. Tests use this
// to capture output without touching package state elsewhere.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
}

// Logf writes a timestamped diagnostic line when diagnostics are enabled.
// It is a no-op otherwise, so call sites never need their own guard.
func Logf(format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()
	if !enabled {
		return
	}
	fmt.Fprintf(out, "[%s] %s\n", time.Now().Format(time.RFC3339), fmt.Sprintf(format, args...))
}
