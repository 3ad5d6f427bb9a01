// Package logging defines the logger contract consumed from logging
// backends — a leveled Write plus an error-carrying variant — together
// with the zap-backed default and a locator lookup that never fails.
package logging

import (
	"fmt"
	"sync"

	"github.com/km-arc/go-locator/locator"
)

// ── Levels ───────────────────────────────────────────────────────────────────

// Level is the severity of a log write.
type Level int8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelFatal:
		return "fatal"
	default:
		return fmt.Sprintf("level(%d)", int8(l))
	}
}

// ParseLevel maps a config string to a Level, defaulting to Info.
func ParseLevel(s string) Level {
	switch s {
	case "debug":
		return LevelDebug
	case "info", "":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	case "fatal":
		return LevelFatal
	default:
		return LevelInfo
	}
}

// ── Logger contract ──────────────────────────────────────────────────────────

// Logger is the write contract consumed from logging backends. Backends do
// not gate by level — that is FullLogger's job.
type Logger interface {
	Write(level Level, message string)
	WriteError(level Level, message string, err error)
}

// NullLogger discards everything. It is the fallback when no logger has
// been registered, so logging call sites never have to nil-check.
type NullLogger struct{}

func (NullLogger) Write(Level, string)             {}
func (NullLogger) WriteError(Level, string, error) {}

// ── FullLogger ───────────────────────────────────────────────────────────────

// FullLogger layers a settable minimum level and printf-style helpers over a
// backend Logger. Writes below the minimum level are dropped before they
// reach the backend.
type FullLogger struct {
	mu    sync.RWMutex
	inner Logger
	min   Level
}

// NewFullLogger wraps inner with a minimum level of Info. Panics if inner
// is nil.
func NewFullLogger(inner Logger) *FullLogger {
	if inner == nil {
		panic("logging: NewFullLogger requires a non-nil backend")
	}
	return &FullLogger{inner: inner, min: LevelInfo}
}

// Level returns the current minimum level.
func (f *FullLogger) Level() Level {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.min
}

// SetLevel changes the minimum level.
func (f *FullLogger) SetLevel(l Level) {
	f.mu.Lock()
	f.min = l
	f.mu.Unlock()
}

// Write forwards to the backend when level clears the minimum.
func (f *FullLogger) Write(level Level, message string) {
	if level < f.Level() {
		return
	}
	f.inner.Write(level, message)
}

// WriteError forwards to the backend when level clears the minimum.
func (f *FullLogger) WriteError(level Level, message string, err error) {
	if level < f.Level() {
		return
	}
	f.inner.WriteError(level, message, err)
}

func (f *FullLogger) Debug(message string) { f.Write(LevelDebug, message) }
func (f *FullLogger) Info(message string)  { f.Write(LevelInfo, message) }
func (f *FullLogger) Warn(message string)  { f.Write(LevelWarn, message) }
func (f *FullLogger) Error(message string) { f.Write(LevelError, message) }
func (f *FullLogger) Fatal(message string) { f.Write(LevelFatal, message) }

func (f *FullLogger) Debugf(format string, args ...any) { f.Write(LevelDebug, fmt.Sprintf(format, args...)) }
func (f *FullLogger) Infof(format string, args ...any)  { f.Write(LevelInfo, fmt.Sprintf(format, args...)) }
func (f *FullLogger) Warnf(format string, args ...any)  { f.Write(LevelWarn, fmt.Sprintf(format, args...)) }
func (f *FullLogger) Errorf(format string, args ...any) { f.Write(LevelError, fmt.Sprintf(format, args...)) }

// ErrorErr writes message at error level with err attached.
func (f *FullLogger) ErrorErr(err error, message string) { f.WriteError(LevelError, message, err) }

// ── Locator integration ──────────────────────────────────────────────────────

// Current returns the Logger registered with the default locator, falling
// back to NullLogger when none is configured. Absence of a logger is never
// an error.
func Current() Logger {
	if log, ok := locator.GetService[Logger](); ok {
		return log
	}
	return NullLogger{}
}
