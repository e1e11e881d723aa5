package logger

import (
	"fmt"
	"os"
	"reflect"
	"strings"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidArgument is returned when a Logger is constructed with a blank
// source name or without a file sink.
var ErrInvalidArgument = errors.New("invalid argument")

// FileSink receives every formatted line. It owns the log file: creating,
// locking and rotating it are its business, not the Logger's.
type FileSink interface {
	WriteLine(text string) error
}

// Exiter terminates the process on request.
type Exiter interface {
	RequestExit(source, reason string)
}

// ExitFunc adapts a function to the Exiter interface.
type ExitFunc func(source, reason string)

// RequestExit calls f(source, reason).
func (f ExitFunc) RequestExit(source, reason string) {
	f(source, reason)
}

// osExit is swapped out by tests.
var osExit = os.Exit

var defaultExiter = ExitFunc(func(string, string) { osExit(1) })

// timeFormat is HH:mm:ss on a 24-hour clock.
const timeFormat = "15:04:05"

// Logger formats messages for a single named source and writes them to the
// console and the file sink.
type Logger struct {
	source string
	sink   FileSink

	env     *Environment
	console *Console
	exiter  Exiter
	now     func() time.Time

	showTraceInConsole atomic.Bool
	writeToConsole     atomic.Bool
}

// Option configures a Logger during New.
type Option func(*Logger)

// WithEnvironment overrides the process-wide DefaultEnvironment.
func WithEnvironment(env *Environment) Option {
	return func(l *Logger) {
		if env != nil {
			l.env = env
		}
	}
}

// WithConsole overrides the standard output console.
func WithConsole(c *Console) Option {
	return func(l *Logger) {
		if c != nil {
			l.console = c
		}
	}
}

// WithExiter sets the collaborator used by ExitImmediately.
func WithExiter(e Exiter) Option {
	return func(l *Logger) {
		if e != nil {
			l.exiter = e
		}
	}
}

// WithClock sets the time source used for line timestamps.
func WithClock(now func() time.Time) Option {
	return func(l *Logger) {
		if now != nil {
			l.now = now
		}
	}
}

// WithConfig applies the runtime flags in cfg.
func WithConfig(cfg Config) Option {
	return func(l *Logger) {
		l.showTraceInConsole.Store(cfg.ShowTraceInConsole)
		l.writeToConsole.Store(!cfg.DisableConsole)
	}
}

// New returns a Logger for source that writes every line to sink.
//
// Both arguments are required: a blank source or a nil sink fails with an
// error wrapping ErrInvalidArgument.
func New(source string, sink FileSink, opts ...Option) (*Logger, error) {
	if strings.TrimSpace(source) == "" {
		return nil, errors.Wrap(ErrInvalidArgument, "source name can't be empty")
	}
	if isNil(sink) {
		return nil, errors.Wrap(ErrInvalidArgument, "file sink can't be nil")
	}

	l := &Logger{
		source: source,
		sink:   sink,
		exiter: defaultExiter,
		now:    time.Now,
	}
	l.writeToConsole.Store(true)

	for _, opt := range opts {
		opt(l)
	}

	if l.env == nil {
		l.env = DefaultEnvironment()
	}
	if l.console == nil {
		l.console = StdConsole()
	}
	return l, nil
}

func isNil(sink FileSink) bool {
	if sink == nil {
		return true
	}
	v := reflect.ValueOf(sink)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Func, reflect.Chan, reflect.Slice, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// Source returns the name shown in every line from this Logger.
func (l *Logger) Source() string {
	return l.source
}

// Console returns the console this Logger writes to.
func (l *Logger) Console() *Console {
	return l.console
}

// ShowTraceInConsole reports whether Trace messages reach the console.
func (l *Logger) ShowTraceInConsole() bool {
	return l.showTraceInConsole.Load()
}

// SetShowTraceInConsole toggles console output for Trace messages.
func (l *Logger) SetShowTraceInConsole(show bool) {
	l.showTraceInConsole.Store(show)
}

// WriteToConsole reports whether messages are written to the console.
func (l *Logger) WriteToConsole() bool {
	return l.writeToConsole.Load()
}

// SetWriteToConsole toggles console output. File output is unaffected.
func (l *Logger) SetWriteToConsole(write bool) {
	l.writeToConsole.Store(write)
}

// Log writes message at level. The returned error is the file sink's.
func (l *Logger) Log(message string, level LogLevel) error {
	return l.dispatch(l.source, message, l.env.Color(level), level)
}

// Logf formats according to a format specifier and logs at level.
func (l *Logger) Logf(level LogLevel, format string, args ...any) error {
	return l.Log(fmt.Sprintf(format, args...), level)
}

// Trace logs message at Trace level.
func (l *Logger) Trace(message string) error { return l.Log(message, Trace) }

// Debug logs message at Debug level, the default for messages of no
// particular severity.
func (l *Logger) Debug(message string) error { return l.Log(message, Debug) }

// Info logs message at Info level.
func (l *Logger) Info(message string) error { return l.Log(message, Info) }

// Warn logs message at Warn level.
func (l *Logger) Warn(message string) error { return l.Log(message, Warn) }

// Error logs message at Error level.
func (l *Logger) Error(message string) error { return l.Log(message, Error) }

// Alert logs message at Alert level.
func (l *Logger) Alert(message string) error { return l.Log(message, Alert) }

// LogFatal logs an unrecoverable error: white on red, labelled ERROR.
//
// The red background is left in place after the call and applies to later
// colored console lines too. Call Console().ResetBackground() to restore it.
func (l *Logger) LogFatal(message string) error {
	l.console.SetBackground(Red)
	return l.dispatch(l.source, message, White, Error)
}

// LegacyLog writes message under an arbitrary source name and color,
// bypassing the level color mapping. An empty source uses the Logger's own.
//
// Deprecated: use Log. LegacyLog exists for callers that predate levels.
func (l *Logger) LegacyLog(source, message string, c ConsoleColor, level LogLevel) error {
	if strings.TrimSpace(source) == "" {
		source = l.source
	}
	return l.dispatch(source, message, c, level)
}

// ExitImmediately logs reason as a fatal error and asks the Exiter to
// terminate the process. With the default Exiter it does not return.
func (l *Logger) ExitImmediately(reason string) {
	// the exit request goes out even if the log file is unwritable
	_ = l.LogFatal(fmt.Sprintf("%s requested an immediate shutdown: %s", l.source, reason))
	l.exiter.RequestExit(l.source, reason)
}

// Format returns the line for message as it would be written at time t.
func Format(t time.Time, source, message string, level LogLevel) string {
	var b strings.Builder
	b.Grow(len(timeFormat) + MaxLevelLength + len(source) + len(message) + 5)
	b.WriteByte('[')
	b.WriteString(t.Format(timeFormat))
	b.WriteByte(' ')
	b.WriteString(level.Label())
	b.WriteByte(' ')
	b.WriteString(source)
	b.WriteString("] ")
	b.WriteString(message)
	return b.String()
}

func (l *Logger) dispatch(source, message string, c ConsoleColor, level LogLevel) error {
	line := Format(l.now(), source, message, level)

	if l.WriteToConsole() && (level != Trace || l.ShowTraceInConsole()) {
		// console output is best effort, like fmt.Println
		_ = l.console.WriteLine(line, c, l.env.SupportsColor())
	}

	return l.sink.WriteLine(line)
}
