package log

import (
	"context"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"smartrename/internal/errors"
)

var (
	isDebug = false
	logger  = NewLogger()
)

// Field is a single structured key/value pair
type Field struct {
	Key   string
	Value interface{}
}

// F creates a Field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Option configures a Logger
type Option func(*Logger)

// WithOutput sends log output to w
func WithOutput(w io.Writer) Option {
	return func(l *Logger) {
		l.out = w
	}
}

// WithJSON switches to JSON formatted entries
func WithJSON() Option {
	return func(l *Logger) {
		l.json = true
	}
}

// WithFile tees output to the given file in addition to the current writer.
// If the file cannot be opened the option is ignored.
func WithFile(path string) Option {
	return func(l *Logger) {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return
		}
		l.file = f
	}
}

// WithLevel sets the minimum level ("debug", "info", "warn", "error")
func WithLevel(level string) Option {
	return func(l *Logger) {
		if lvl, err := logrus.ParseLevel(level); err == nil {
			l.level = lvl
		}
	}
}

// Logger wraps a logrus entry so fields can be chained
type Logger struct {
	out   io.Writer
	file  *os.File
	json  bool
	level logrus.Level
	entry *logrus.Entry
}

// NewLogger creates a logger writing to stdout unless configured otherwise
func NewLogger(opts ...Option) *Logger {
	l := &Logger{
		out:   os.Stdout,
		level: logrus.InfoLevel,
	}
	for _, opt := range opts {
		opt(l)
	}

	base := logrus.New()
	if l.file != nil {
		base.SetOutput(io.MultiWriter(l.out, l.file))
	} else {
		base.SetOutput(l.out)
	}
	// Debug gating is done by SetDebug so toggling it affects existing loggers
	base.SetLevel(logrus.DebugLevel)
	if l.json {
		base.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05Z07:00",
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime: "timestamp",
				logrus.FieldKeyMsg:  "message",
			},
		})
	} else {
		base.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
			DisableColors:   true,
		})
	}
	l.entry = logrus.NewEntry(base)
	return l
}

// Configure replaces the package-level logger
func Configure(opts ...Option) {
	logger = NewLogger(opts...)
}

// Close releases the log file opened by WithFile, if any
func Close() {
	if logger.file != nil {
		logger.file.Close()
	}
}

// SetDebug toggles debug output for every logger
func SetDebug(debug bool) {
	isDebug = debug
}

// With returns a child logger carrying extra fields
func (l *Logger) With(fields ...Field) *Logger {
	child := *l
	data := logrus.Fields{}
	for _, f := range fields {
		data[f.Key] = f.Value
	}
	child.entry = l.entry.WithFields(data)
	return &child
}

// WithContext returns a logger bound to ctx
func (l *Logger) WithContext(ctx context.Context) *Logger {
	if ctx == nil {
		return l
	}
	child := *l
	child.entry = l.entry.WithContext(ctx)
	return &child
}

func (l *Logger) enabled(level logrus.Level) bool {
	if level == logrus.DebugLevel {
		return isDebug || l.level >= logrus.DebugLevel
	}
	return level <= l.level
}

func (l *Logger) logf(level logrus.Level, format string, args ...interface{}) {
	if !l.enabled(level) {
		return
	}
	l.entry.Logf(level, format, args...)
}

func (l *Logger) log(level logrus.Level, msg string) {
	if !l.enabled(level) {
		return
	}
	l.entry.Log(level, msg)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string) { l.log(logrus.DebugLevel, msg) }

// Debugf logs a formatted debug message
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.logf(logrus.DebugLevel, format, args...)
}

// Info logs an info message
func (l *Logger) Info(msg string) { l.log(logrus.InfoLevel, msg) }

// Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.logf(logrus.InfoLevel, format, args...)
}

// Warn logs a warning
func (l *Logger) Warn(msg string) { l.log(logrus.WarnLevel, msg) }

// Warnf logs a formatted warning
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.logf(logrus.WarnLevel, format, args...)
}

// Error logs an error message
func (l *Logger) Error(msg string) { l.log(logrus.ErrorLevel, msg) }

// Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.logf(logrus.ErrorLevel, format, args...)
}

// LogWithFields returns the package logger with fields attached
func LogWithFields(fields ...Field) *Logger {
	return logger.With(fields...)
}

// LogWithError attaches err and, for application errors, its kind and
// context (path, param or reason)
func LogWithError(err error) *Logger {
	if err == nil {
		return logger.With(F("error", "<nil>"))
	}
	fields := []Field{F("error", err.Error()), F("error_kind", int(errors.KindOf(err)))}

	var fileErr *errors.FileError
	if errors.As(err, &fileErr) && fileErr.Path() != "" {
		fields = append(fields, F("path", fileErr.Path()))
	}
	var configErr *errors.ConfigError
	if errors.As(err, &configErr) && configErr.Param() != "" {
		fields = append(fields, F("param", configErr.Param()))
	}
	if reason := errors.ReasonOf(err); reason != "" {
		fields = append(fields, F("reason", string(reason)))
	}
	return logger.With(fields...)
}

// LogError is shorthand for LogWithError(err).Error(msg)
func LogError(err error, msg string) {
	LogWithError(err).Error(msg)
}

// Debug logs a debug message with the package logger
func Debug(msg string) {
	logger.Debug(msg)
}

// Debugf logs a formatted debug message with the package logger
func Debugf(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

// Info logs with the package logger
func Info(msg string) {
	logger.Info(msg)
}

// Infof logs a formatted message with the package logger
func Infof(format string, args ...interface{}) {
	logger.Infof(format, args...)
}

// Warn logs a warning with the package logger
func Warn(msg string) {
	logger.Warn(msg)
}

// Warnf logs a formatted warning with the package logger
func Warnf(format string, args ...interface{}) {
	logger.Warnf(format, args...)
}

// Error logs an error with the package logger
func Error(msg string) {
	logger.Error(msg)
}

// Errorf logs a formatted error with the package logger
func Errorf(format string, args ...interface{}) {
	logger.Errorf(format, args...)
}
