// Package debug provides the debug logger used across just-code.
// Output goes to stderr through zerolog and is silent unless enabled.
package debug

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu      sync.RWMutex
	enabled bool
	noColor bool
	out     io.Writer = os.Stderr
	logger            = zerolog.Nop()
)

// SetDebug enables or disables debug mode
func SetDebug(enable bool) {
	mu.Lock()
	defer mu.Unlock()
	enabled = enable
	rebuild()
}

// SetNoColor disables colored output when disable is true.
func SetNoColor(disable bool) {
	mu.Lock()
	defer mu.Unlock()
	noColor = disable
	rebuild()
}

// SetOutput redirects debug output. Tests use it to capture logs.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
	rebuild()
}

// rebuild must be called with mu held.
func rebuild() {
	if !enabled {
		logger = zerolog.Nop()
		return
	}
	console := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "15:04:05.000",
		NoColor:    noColor,
	}
	logger = zerolog.New(console).Level(zerolog.DebugLevel).With().Timestamp().Logger()
}

// Logger returns a logger tagged with component.
func Logger(component string) zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger.With().Str("component", component).Logger()
}

// Debug prints a debug message
func Debug(format string, args ...interface{}) {
	mu.RLock()
	l := logger
	mu.RUnlock()
	l.Debug().Msgf(format, args...)
}

// DebugSection prints a section header for debug output
func DebugSection(section string) {
	mu.RLock()
	l := logger
	mu.RUnlock()
	l.Debug().Msgf("=== %s ===", section)
}

// DebugValue prints key=value style debug info
func DebugValue(key string, value interface{}) {
	mu.RLock()
	l := logger
	mu.RUnlock()
	l.Debug().Interface(key, value).Send()
}

// LogDuration logs how long operation took since start.
func LogDuration(start time.Time, operation string) {
	mu.RLock()
	l := logger
	mu.RUnlock()
	l.Debug().Str("operation", operation).Dur("duration", time.Since(start)).Msg("operation completed")
}
