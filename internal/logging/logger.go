package logging

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/rs/zerolog"
)

// Field is a single structured key/value pair attached to a log entry.
type Field struct {
	Key   string
	Value any
}

// String builds a string-valued Field.
func String(key, value string) Field { return Field{Key: key, Value: value} }

// Int builds an int-valued Field.
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Uint64 builds a uint64-valued Field.
func Uint64(key string, value uint64) Field { return Field{Key: key, Value: value} }

// Float64 builds a float64-valued Field.
func Float64(key string, value float64) Field { return Field{Key: key, Value: value} }

// Err builds an error-valued Field under the conventional "error" key.
func Err(err error) Field { return Field{Key: "error", Value: err} }

// Logger is the backend-agnostic logging interface every component in this
// module depends on, never a concrete zerolog or stdlib logger directly.
type Logger interface {
	Info(msg string, fields ...Field)
	Debug(msg string, fields ...Field)
	Error(msg string, err error, fields ...Field)
	Printf(format string, args ...any)
	Println(args ...any)
}

// ZerologAdapter implements Logger over a github.com/rs/zerolog.Logger.
type ZerologAdapter struct {
	zl zerolog.Logger
}

// NewZerologAdapter wraps an already-configured zerolog.Logger.
func NewZerologAdapter(zl zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{zl: zl}
}

// NewLogger builds a component-scoped zerolog-backed Logger writing to w.
func NewLogger(w io.Writer, component string) Logger {
	zl := zerolog.New(w).With().Timestamp().Str("component", component).Logger()
	return NewZerologAdapter(zl)
}

// NewDefaultLogger builds a Logger writing to stderr with no component tag.
func NewDefaultLogger() Logger {
	zl := zerolog.New(os.Stderr).With().Timestamp().Logger()
	return NewZerologAdapter(zl)
}

func applyFields(e *zerolog.Event, fields []Field) *zerolog.Event {
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			e = e.Str(f.Key, v)
		case int:
			e = e.Int(f.Key, v)
		case int64:
			e = e.Int64(f.Key, v)
		case uint64:
			e = e.Uint64(f.Key, v)
		case float64:
			e = e.Float64(f.Key, v)
		case bool:
			e = e.Bool(f.Key, v)
		case error:
			e = e.AnErr(f.Key, v)
		default:
			e = e.Interface(f.Key, v)
		}
	}
	return e
}

// Info logs msg at info level with the given structured fields.
func (a *ZerologAdapter) Info(msg string, fields ...Field) {
	applyFields(a.zl.Info(), fields).Msg(msg)
}

// Debug logs msg at debug level with the given structured fields.
func (a *ZerologAdapter) Debug(msg string, fields ...Field) {
	applyFields(a.zl.Debug(), fields).Msg(msg)
}

// Error logs msg at error level, attaching err and any structured fields.
func (a *ZerologAdapter) Error(msg string, err error, fields ...Field) {
	e := a.zl.Error().Err(err)
	applyFields(e, fields).Msg(msg)
}

// Printf logs a fmt.Sprintf-formatted message at info level.
func (a *ZerologAdapter) Printf(format string, args ...any) {
	a.zl.Info().Msg(fmt.Sprintf(format, args...))
}

// Println logs its arguments space-joined at info level.
func (a *ZerologAdapter) Println(args ...any) {
	a.zl.Info().Msg(fmt.Sprintln(args...))
}

// StdLoggerAdapter implements Logger over a standard library *log.Logger,
// for callers that don't want the zerolog dependency in their output path
// (e.g. a minimal CLI invocation before config has chosen a backend).
type StdLoggerAdapter struct {
	l *log.Logger
}

// NewStdLoggerAdapter wraps an existing *log.Logger.
func NewStdLoggerAdapter(l *log.Logger) *StdLoggerAdapter {
	return &StdLoggerAdapter{l: l}
}

func formatFields(fields []Field) string {
	s := ""
	for _, f := range fields {
		s += fmt.Sprintf(" %s=%v", f.Key, f.Value)
	}
	return s
}

// Info logs msg at info level with the given structured fields.
func (a *StdLoggerAdapter) Info(msg string, fields ...Field) {
	a.l.Printf("[INFO] %s%s", msg, formatFields(fields))
}

// Debug logs msg at debug level with the given structured fields.
func (a *StdLoggerAdapter) Debug(msg string, fields ...Field) {
	a.l.Printf("[DEBUG] %s%s", msg, formatFields(fields))
}

// Error logs msg at error level, attaching err and any structured fields.
func (a *StdLoggerAdapter) Error(msg string, err error, fields ...Field) {
	a.l.Printf("[ERROR] %s: %v%s", msg, err, formatFields(fields))
}

// Printf logs a fmt.Sprintf-formatted message.
func (a *StdLoggerAdapter) Printf(format string, args ...any) {
	a.l.Printf(format, args...)
}

// Println logs its arguments space-joined.
func (a *StdLoggerAdapter) Println(args ...any) {
	a.l.Println(args...)
}
