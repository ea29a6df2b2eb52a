// Package logging provides debug logging for agent-browser clients.
// All logs are written to a run-specific file in ~/.agent-browser/logs/
// so subprocess traffic can be inspected after the fact without polluting
// the caller's stdout, which often carries the tool's own JSON.
package logging

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

// Logger writes component-tagged debug lines to the shared run log file.
type Logger struct {
	component string
	file      *os.File
	logger    *log.Logger
	logPath   string
	mu        sync.Mutex
	closeOnce sync.Once
}

var (
	// runID identifies this process's log file; every Logger in the
	// process appends to the same file.
	runID     string
	runIDOnce sync.Once

	logDir   string
	initOnce sync.Once
	initErr  error
)

func getRunID() string {
	runIDOnce.Do(func() {
		runID = uuid.New().String()
	})
	return runID
}

func initLogDirectory() error {
	initOnce.Do(func() {
		home, err := os.UserHomeDir()
		if err != nil {
			initErr = fmt.Errorf("failed to get home directory: %w", err)
			return
		}
		logDir = filepath.Join(home, ".agent-browser", "logs")
		if err := os.MkdirAll(logDir, 0750); err != nil {
			initErr = fmt.Errorf("failed to create log directory: %w", err)
		}
	})
	return initErr
}

// NewLogger creates a logger for one component. The logger appends to
// ~/.agent-browser/logs/<run-id>.log. When the directory or file cannot be
// opened it returns a stderr-backed logger together with the error, so
// callers can keep logging and still report the degradation.
func NewLogger(component string) (*Logger, error) {
	if err := initLogDirectory(); err != nil {
		return newFallbackLogger(component), err
	}

	logPath := filepath.Join(logDir, getRunID()+".log")
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return newFallbackLogger(component), fmt.Errorf("failed to open log file: %w", err)
	}

	return &Logger{
		component: component,
		file:      file,
		logger:    log.New(file, "", log.LstdFlags|log.Lmicroseconds),
		logPath:   logPath,
	}, nil
}

func newFallbackLogger(component string) *Logger {
	return &Logger{
		component: component,
		logger:    log.New(os.Stderr, "", log.LstdFlags|log.Lmicroseconds),
	}
}

// Path returns the log file path, or "" for a stderr fallback logger.
func (l *Logger) Path() string {
	return l.logPath
}

func (l *Logger) write(level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger.Printf("[%s] [%s] %s", level, l.component, fmt.Sprintf(format, args...))
}

// Debugf logs a debug-level message.
func (l *Logger) Debugf(format string, args ...any) {
	l.write("DEBUG", format, args...)
}

// Infof logs an info-level message.
func (l *Logger) Infof(format string, args ...any) {
	l.write("INFO", format, args...)
}

// Warnf logs a warning-level message.
func (l *Logger) Warnf(format string, args ...any) {
	l.write("WARN", format, args...)
}

// Errorf logs an error-level message.
func (l *Logger) Errorf(format string, args ...any) {
	l.write("ERROR", format, args...)
}

// Close releases the log file. Safe to call more than once.
func (l *Logger) Close() {
	l.closeOnce.Do(func() {
		if l.file != nil {
			l.file.Close()
		}
	})
}
