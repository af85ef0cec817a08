// Package log provides structured logging for vimcore.
// It wraps tea.LogToFile with structured fields (level, category, timestamp)
// and conditionally enables logging via --debug flag or VIMCORE_DEBUG env.
package log

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Category groups related log messages.
type Category string

const (
	CatEngine Category = "engine" // Motion resolution and operator execution
	CatHost   Category = "host"   // Buffer and caret operations
	CatConfig Category = "config" // Configuration loading/saving
	CatUI     Category = "ui"     // UI component updates
	CatKeys   Category = "keys"   // Key dispatch
)

// Logger provides structured logging.
type Logger struct {
	mu       sync.Mutex
	file     *os.File
	writer   io.Writer
	enabled  bool
	minLevel Level
}

var (
	defaultLogger *Logger
	once          sync.Once
)

// Init initializes the global logger, wrapping tea.LogToFile so bubbletea's
// log output lands in the same file. Returns a cleanup function to close the
// log file.
func Init(path string, prefix string) (func(), error) {
	var initErr error
	once.Do(func() {
		f, err := tea.LogToFile(path, prefix)
		if err != nil {
			initErr = err
			return
		}
		defaultLogger = &Logger{file: f, writer: f, enabled: true, minLevel: LevelDebug}
	})
	if initErr != nil {
		return nil, initErr
	}
	if defaultLogger == nil {
		return nil, fmt.Errorf("logger initialization failed or already attempted")
	}
	return func() {
		if defaultLogger != nil && defaultLogger.file != nil {
			_ = defaultLogger.file.Close()
		}
	}, nil
}

// Enabled reports whether logging should be on, from VIMCORE_DEBUG.
func Enabled() bool {
	return os.Getenv("VIMCORE_DEBUG") != ""
}

// SetMinLevel sets the minimum severity that gets written.
func SetMinLevel(l Level) {
	if defaultLogger == nil {
		return
	}
	defaultLogger.mu.Lock()
	defer defaultLogger.mu.Unlock()
	defaultLogger.minLevel = l
}

func (l *Logger) log(level Level, cat Category, format string, args ...any) {
	if l == nil || !l.enabled || level < l.minLevel {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	ts := time.Now().Format("15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(l.writer, "%s %-5s [%s] %s\n", ts, level, cat, msg)
}

// Debug logs a debug message in the given category.
func Debug(cat Category, format string, args ...any) {
	defaultLogger.log(LevelDebug, cat, format, args...)
}

// Info logs an info message in the given category.
func Info(cat Category, format string, args ...any) {
	defaultLogger.log(LevelInfo, cat, format, args...)
}

// Warn logs a warning in the given category.
func Warn(cat Category, format string, args ...any) {
	defaultLogger.log(LevelWarn, cat, format, args...)
}

// Error logs an error in the given category.
func Error(cat Category, format string, args ...any) {
	defaultLogger.log(LevelError, cat, format, args...)
}
