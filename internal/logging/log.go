// Package logging wraps log/slog with component identifiers for the uvcval
// packages. The library is silent by default: the default logger discards
// everything below slog.LevelWarn and nothing in the library logs above Debug.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"
)

// Component identifies a subsystem for log filtering.
type Component string

const (
	ComponentScanner  Component = "scanner"
	ComponentSnapshot Component = "snapshot"
	ComponentCatalog  Component = "catalog"
	ComponentCLI      Component = "cli"
)

// Format specifies the output format for logging.
type Format int

const (
	FormatText Format = iota // Text format (default)
	FormatJSON               // JSON format
)

var (
	logLevel = new(slog.LevelVar)

	mu            sync.RWMutex
	defaultLogger *slog.Logger
)

func init() {
	logLevel.Set(slog.LevelWarn)
	defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

// SetLevel sets the minimum level of the default logger.
func SetLevel(level slog.Level) {
	logLevel.Set(level)
}

// Level returns the minimum level of the default logger.
func Level() slog.Level {
	return logLevel.Level()
}

// SetLogger replaces the default logger.
func SetLogger(logger *slog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	defaultLogger = logger
}

// Default returns the default logger.
func Default() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()

	return defaultLogger
}

// New creates a logger writing to w in the given format at the shared level.
func New(w io.Writer, format Format) *slog.Logger {
	opts := &slog.HandlerOptions{Level: logLevel}
	if format == FormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

// For returns logger, or the default logger when logger is nil, tagged with component.
func For(logger *slog.Logger, component Component) *slog.Logger {
	if logger == nil {
		logger = Default()
	}

	return logger.With("component", string(component))
}

// Enabled reports whether logger would emit a record at level.
func Enabled(logger *slog.Logger, level slog.Level) bool {
	return logger != nil && logger.Enabled(context.Background(), level)
}
