// Package logger implements ports.Logger on top of log/slog.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/heatsweep/internal/core/domain"
	"go.trai.ch/zerr"
)

// Logger writes records to the console and, once a log file is opened, mirrors
// them into that file. While a file is open the console only shows warnings
// and errors.
type Logger struct {
	mu       sync.RWMutex
	logger   *slog.Logger
	console  io.Writer
	jsonMode bool
	file     *os.File
}

// New creates a Logger writing to os.Stderr.
func New() *Logger {
	l := &Logger{console: os.Stderr}
	l.rebuild()
	return l
}

// SetOutput replaces the console destination. A nil writer selects os.Stderr.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.console = w
	l.rebuild()
}

// SetJSON switches the console between JSON and pretty records.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable
	l.rebuild()
}

// OpenLogFile appends records to path, creating it if needed.
func (l *Logger) OpenLogFile(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
			return zerr.With(fmt.Errorf("%w: %w", domain.ErrLogFileOpenFailed, err), "path", path)
		}
	}
	//nolint:gosec // Path is supplied by the user on purpose.
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, domain.FilePerm)
	if err != nil {
		return zerr.With(fmt.Errorf("%w: %w", domain.ErrLogFileOpenFailed, err), "path", path)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	prev := l.file
	l.file = f
	l.rebuild()
	if prev != nil {
		_ = prev.Close()
	}
	return nil
}

// CloseLogFile stops mirroring records into the log file.
func (l *Logger) CloseLogFile() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	f := l.file
	l.file = nil
	l.rebuild()
	if err := f.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "closing log file"), "path", f.Name())
	}
	return nil
}

// rebuild must be called with mu held.
func (l *Logger) rebuild() {
	consoleLevel := slog.LevelInfo
	if l.file != nil {
		consoleLevel = slog.LevelWarn
	}

	opts := &slog.HandlerOptions{Level: consoleLevel}
	var handler slog.Handler
	if l.jsonMode {
		handler = slog.NewJSONHandler(l.console, opts)
	} else {
		handler = NewPrettyHandler(l.console, opts)
	}

	if l.file != nil {
		handler = fanout{
			handler,
			slog.NewTextHandler(l.file, &slog.HandlerOptions{Level: slog.LevelInfo}),
		}
	}
	l.logger = slog.New(handler)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs err with its cause chain and metadata.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.jsonMode {
		l.logger.Error("operation failed", "error", err)
		return
	}
	l.logger.Error(formatErrorEntries(collectErrorEntries(err)))
}
