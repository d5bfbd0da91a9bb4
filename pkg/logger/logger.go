// Package logger provides structured logging on top of zerolog
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger wraps zerolog.Logger
type Logger struct {
	zlog zerolog.Logger
}

// Config holds logger configuration
type Config struct {
	// Level is the minimum log level (debug, info, warn, error, disabled)
	Level string

	// Output is where logs are written (default: os.Stderr so reports on stdout stay clean)
	Output io.Writer

	// Pretty enables human-readable console output
	Pretty bool

	// TimeFormat for timestamps (default: RFC3339)
	TimeFormat string

	// CallerEnabled adds file and line number to logs
	CallerEnabled bool
}

// DefaultConfig returns default logger configuration
func DefaultConfig() *Config {
	return &Config{
		Level:      "info",
		Output:     os.Stderr,
		TimeFormat: time.RFC3339,
	}
}

// New creates a new logger with the given configuration
func New(cfg *Config) *Logger {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	if cfg.Pretty {
		output = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: cfg.TimeFormat,
		}
	}

	zlog := zerolog.New(output).Level(ParseLevel(cfg.Level)).With().Timestamp().Logger()
	if cfg.CallerEnabled {
		zlog = zlog.With().Caller().Logger()
	}

	return &Logger{zlog: zlog}
}

// Nop returns a logger that discards everything
func Nop() *Logger {
	return &Logger{zlog: zerolog.Nop()}
}

// ParseLevel converts a level name to zerolog.Level, defaulting to info
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info", "":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// ValidLevel reports whether level names a known log level
func ValidLevel(level string) bool {
	switch strings.ToLower(level) {
	case "trace", "debug", "info", "", "warn", "error", "disabled", "off":
		return true
	}
	return false
}

// With creates a child logger with additional context
func (l *Logger) With() *Context {
	return &Context{zctx: l.zlog.With()}
}

// Debug returns a debug event
func (l *Logger) Debug() *Event {
	return &Event{zevent: l.zlog.Debug()}
}

// Info returns an info event
func (l *Logger) Info() *Event {
	return &Event{zevent: l.zlog.Info()}
}

// Warn returns a warn event
func (l *Logger) Warn() *Event {
	return &Event{zevent: l.zlog.Warn()}
}

// Error returns an error event
func (l *Logger) Error() *Event {
	return &Event{zevent: l.zlog.Error()}
}

// Context provides a fluent API for adding fields to a child logger
type Context struct {
	zctx zerolog.Context
}

// Str adds a string field
func (c *Context) Str(key, val string) *Context {
	c.zctx = c.zctx.Str(key, val)
	return c
}

// Stringer adds a field rendered with String()
func (c *Context) Stringer(key string, val fmt.Stringer) *Context {
	c.zctx = c.zctx.Stringer(key, val)
	return c
}

// Logger returns the configured logger
func (c *Context) Logger() *Logger {
	return &Logger{zlog: c.zctx.Logger()}
}

// Event represents a log event. Methods are safe to call on disabled levels.
type Event struct {
	zevent *zerolog.Event
}

// Str adds a string field to the event
func (e *Event) Str(key, val string) *Event {
	e.zevent.Str(key, val)
	return e
}

// Int adds an int field to the event
func (e *Event) Int(key string, val int) *Event {
	e.zevent.Int(key, val)
	return e
}

// Int64 adds an int64 field to the event
func (e *Event) Int64(key string, val int64) *Event {
	e.zevent.Int64(key, val)
	return e
}

// Bool adds a boolean field to the event
func (e *Event) Bool(key string, val bool) *Event {
	e.zevent.Bool(key, val)
	return e
}

// Stringer adds a field rendered with String(); big integers, field elements
// and points all satisfy fmt.Stringer
func (e *Event) Stringer(key string, val fmt.Stringer) *Event {
	e.zevent.Stringer(key, val)
	return e
}

// Err adds an error field to the event
func (e *Event) Err(err error) *Event {
	e.zevent.AnErr("error", err)
	return e
}

// Dur adds a duration field to the event
func (e *Event) Dur(key string, val time.Duration) *Event {
	e.zevent.Dur(key, val)
	return e
}

// Msg completes the event with a message
func (e *Event) Msg(msg string) {
	e.zevent.Msg(msg)
}

// Msgf completes the event with a formatted message
func (e *Event) Msgf(format string, args ...interface{}) {
	e.zevent.Msgf(format, args...)
}
