package logging

import (
	"io"
	"log"
	"os"
	"strings"
)

// Level represents logging verbosity.
type Level int

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
	LevelTrace
)

// ParseLevel maps ERROR/WARN/INFO/DEBUG/TRACE (any case) to a Level.
// Unknown values fall back to INFO.
func ParseLevel(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ERROR":
		return LevelError
	case "WARN":
		return LevelWarn
	case "DEBUG":
		return LevelDebug
	case "TRACE":
		return LevelTrace
	default:
		return LevelInfo
	}
}

// Logger provides leveled logging on top of the standard logger.
type Logger struct {
	level Level
	out   *log.Logger
}

func New(level Level, w io.Writer) *Logger {
	return &Logger{level: level, out: log.New(w, "", log.LstdFlags)}
}

// NewDefault writes to stderr at the LOG_LEVEL level.
func NewDefault() *Logger {
	return New(ParseLevel(os.Getenv("LOG_LEVEL")), os.Stderr)
}

// Discard drops everything; handy in tests.
func Discard() *Logger {
	return New(LevelError, io.Discard)
}

func (l *Logger) Error(format string, args ...any) { l.logf(LevelError, "[ERROR] ", format, args) }
func (l *Logger) Warn(format string, args ...any)  { l.logf(LevelWarn, "[WARN] ", format, args) }
func (l *Logger) Info(format string, args ...any)  { l.logf(LevelInfo, "[INFO] ", format, args) }
func (l *Logger) Debug(format string, args ...any) { l.logf(LevelDebug, "[DEBUG] ", format, args) }
func (l *Logger) Trace(format string, args ...any) { l.logf(LevelTrace, "[TRACE] ", format, args) }

func (l *Logger) Level() Level {
	return l.level
}

// Writer is the underlying destination, for sharing with access logs.
func (l *Logger) Writer() io.Writer {
	return l.out.Writer()
}

func (l *Logger) logf(level Level, prefix, format string, args []any) {
	if l == nil || l.level < level {
		return
	}
	l.out.Printf(prefix+format, args...)
}
