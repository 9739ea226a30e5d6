package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"

	"radialmenu/internal/errors"

	"github.com/sirupsen/logrus"
)

var (
	isDebug = false
	logger  = NewLogger()
)

// Field is a single structured key/value pair attached to a log line.
type Field struct {
	Key   string
	Value interface{}
}

// F builds a Field.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Option configures a Logger.
type Option func(*Logger)

// WithOutput sends log lines to w.
func WithOutput(w io.Writer) Option {
	return func(l *Logger) {
		l.base.SetOutput(w)
	}
}

// WithJSON switches the logger to one JSON object per line.
func WithJSON() Option {
	return func(l *Logger) {
		l.base.SetFormatter(&jsonFormatter{})
	}
}

// WithFile appends log lines to path in addition to stdout.
func WithFile(path string) Option {
	return func(l *Logger) {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "log: cannot open %s: %v\n", path, err)
			return
		}
		l.file = f
		l.base.SetOutput(io.MultiWriter(os.Stdout, f))
	}
}

// Logger is a leveled, structured logger backed by logrus.
type Logger struct {
	base   *logrus.Logger
	fields logrus.Fields
	file   *os.File
}

// NewLogger creates a logger writing text lines to stdout unless options
// say otherwise.
func NewLogger(opts ...Option) *Logger {
	base := logrus.New()
	base.SetOutput(os.Stdout)
	base.SetLevel(logrus.DebugLevel)
	base.SetFormatter(&textFormatter{})

	l := &Logger{
		base:   base,
		fields: logrus.Fields{},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Configure replaces the package-level logger.
func Configure(opts ...Option) {
	mu.Lock()
	defer mu.Unlock()
	logger = NewLogger(opts...)
}

// Close releases the log file opened by WithFile, if any.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if logger.file != nil {
		logger.file.Close()
		logger.file = nil
	}
}

var mu sync.Mutex

func current() *Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

func SetDebug(debug bool) {
	isDebug = debug
}

// With returns a child logger carrying the extra fields.
func (l *Logger) With(fields ...Field) *Logger {
	merged := make(logrus.Fields, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for _, f := range fields {
		merged[f.Key] = f.Value
	}
	return &Logger{base: l.base, fields: merged, file: l.file}
}

// WithContext is a hook for context-carried fields; nothing is extracted yet.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	return l
}

func (l *Logger) Info(msg string)  { l.log(logrus.InfoLevel, msg) }
func (l *Logger) Warn(msg string)  { l.log(logrus.WarnLevel, msg) }
func (l *Logger) Error(msg string) { l.log(logrus.ErrorLevel, msg) }

func (l *Logger) Debug(msg string) {
	if isDebug {
		l.log(logrus.DebugLevel, msg)
	}
}

func (l *Logger) Infof(format string, args ...interface{}) {
	l.log(logrus.InfoLevel, fmt.Sprintf(format, args...))
}

func (l *Logger) Warnf(format string, args ...interface{}) {
	l.log(logrus.WarnLevel, fmt.Sprintf(format, args...))
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	l.log(logrus.ErrorLevel, fmt.Sprintf(format, args...))
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	if isDebug {
		l.log(logrus.DebugLevel, fmt.Sprintf(format, args...))
	}
}

// log must be called directly from the exported entry point so the caller
// frame resolves to user code.
func (l *Logger) log(level logrus.Level, msg string) {
	fields := make(logrus.Fields, len(l.fields)+1)
	for k, v := range l.fields {
		fields[k] = v
	}
	if _, file, line, ok := runtime.Caller(2); ok {
		fields[callerKey] = fmt.Sprintf("%s:%d", shortFile(file), line)
	}
	l.base.WithFields(fields).Log(level, msg)
}

func Info(format string, args ...interface{}) {
	current().log(logrus.InfoLevel, fmt.Sprintf(format, args...))
}

// Debug logs a message with arguments
func Debug(msg string, args ...interface{}) {
	if isDebug {
		current().log(logrus.DebugLevel, withArgs(msg, args))
	}
}

// Debugf logs a formatted message
func Debugf(format string, args ...interface{}) {
	if isDebug {
		current().log(logrus.DebugLevel, fmt.Sprintf(format, args...))
	}
}

// Error logs an error message with arguments
func Error(msg string, args ...interface{}) {
	current().log(logrus.ErrorLevel, withArgs(msg, args))
}

// Errorf logs a formatted error message
func Errorf(format string, args ...interface{}) {
	current().log(logrus.ErrorLevel, fmt.Sprintf(format, args...))
}

// Warn logs a warning message with arguments
func Warn(msg string, args ...interface{}) {
	current().log(logrus.WarnLevel, withArgs(msg, args))
}

// Warnf logs a formatted warning message
func Warnf(format string, args ...interface{}) {
	current().log(logrus.WarnLevel, fmt.Sprintf(format, args...))
}

// withArgs appends args to msg after a colon. A bare message stays as is.
func withArgs(msg string, args []interface{}) string {
	if len(args) == 0 {
		return msg
	}
	return msg + ": " + strings.TrimSuffix(fmt.Sprintln(args...), "\n")
}

// LogWithFields returns the package logger with fields attached.
func LogWithFields(fields ...Field) *Logger {
	return current().With(fields...)
}

// LogWithError returns the package logger annotated with err, its kind and
// any context the error type carries.
func LogWithError(err error) *Logger {
	return current().With(errorFields(err)...)
}

// LogError logs err at error level with msg.
func LogError(err error, msg string) {
	current().With(errorFields(err)...).log(logrus.ErrorLevel, msg)
}

func errorFields(err error) []Field {
	if err == nil {
		return []Field{F("error", "<nil>")}
	}
	fields := []Field{
		F("error", err.Error()),
		F("error_kind", int(errors.KindOf(err))),
	}
	var contextual interface{ LogFields() map[string]interface{} }
	if errors.As(err, &contextual) {
		for k, v := range contextual.LogFields() {
			fields = append(fields, F(k, v))
		}
	}
	return fields
}
