package log

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"seqrename/internal/errors"

	"github.com/sirupsen/logrus"
)

const timestampFormat = "2006-01-02 15:04:05"

var (
	isDebug = false
	logger  = NewLogger()

	// thisFile is skipped when looking for the caller of a log line
	_, thisFile, _, _ = runtime.Caller(0)
)

// Field is a single structured key/value attached to a log line
type Field struct {
	Key   string
	Value interface{}
}

// F creates a Field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Logger wraps a logrus entry so fields can be chained with With
type Logger struct {
	entry *logrus.Entry
}

// Option configures the underlying logrus logger
type Option func(*logrus.Logger)

// WithOutput sends log lines to w
func WithOutput(w io.Writer) Option {
	return func(l *logrus.Logger) {
		l.SetOutput(w)
	}
}

// WithJSON switches to one JSON object per line with a "caller" key
// holding the file:line that produced it.
func WithJSON() Option {
	return func(l *logrus.Logger) {
		l.SetReportCaller(true)
		l.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat:  timestampFormat,
			CallerPrettyfier: callerLocation,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime: "timestamp",
				logrus.FieldKeyMsg:  "message",
				logrus.FieldKeyFunc: "caller",
			},
		})
	}
}

// callerLocation reports the first frame outside logrus and this wrapper.
// logrus only skips its own frames, so f alone would always point here.
func callerLocation(f *runtime.Frame) (string, string) {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(1, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if frame.File != thisFile && !strings.Contains(frame.Function, "github.com/sirupsen/logrus") {
			return fmt.Sprintf("%s:%d", filepath.Base(frame.File), frame.Line), ""
		}
		if !more {
			break
		}
	}
	return fmt.Sprintf("%s:%d", filepath.Base(f.File), f.Line), ""
}

// NewLogger creates a logger writing to stderr in text format.
// Stdout is left to the command's own output.
func NewLogger(opts ...Option) *Logger {
	base := logrus.New()
	base.SetOutput(os.Stderr)
	// Debug lines are gated by SetDebug, not by the logrus level.
	base.SetLevel(logrus.DebugLevel)
	base.SetFormatter(&textFormatter{})
	for _, opt := range opts {
		opt(base)
	}
	return &Logger{entry: logrus.NewEntry(base)}
}

// Configure replaces the package-level logger with one built from opts
func Configure(opts ...Option) {
	SetDefault(NewLogger(opts...))
}

// SetDefault replaces the package-level logger
func SetDefault(l *Logger) {
	logger = l
}

// Default returns the package-level logger
func Default() *Logger {
	return logger
}

// SetDebug enables or disables debug output for every logger
func SetDebug(debug bool) {
	isDebug = debug
}

// With returns a logger that adds fields to every line
func (l *Logger) With(fields ...Field) *Logger {
	data := make(logrus.Fields, len(fields))
	for _, f := range fields {
		data[f.Key] = f.Value
	}
	return &Logger{entry: l.entry.WithFields(data)}
}

func (l *Logger) Info(args ...interface{}) {
	l.entry.Info(args...)
}

func (l *Logger) Infof(format string, args ...interface{}) {
	l.entry.Infof(format, args...)
}

func (l *Logger) Warn(args ...interface{}) {
	l.entry.Warn(args...)
}

func (l *Logger) Warnf(format string, args ...interface{}) {
	l.entry.Warnf(format, args...)
}

func (l *Logger) Error(args ...interface{}) {
	l.entry.Error(args...)
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	l.entry.Errorf(format, args...)
}

// Debug logs only when debug output is enabled
func (l *Logger) Debug(args ...interface{}) {
	if isDebug {
		l.entry.Debug(args...)
	}
}

// Debugf logs a formatted message only when debug output is enabled
func (l *Logger) Debugf(format string, args ...interface{}) {
	if isDebug {
		l.entry.Debugf(format, args...)
	}
}

// LogWithFields returns the package-level logger with fields attached
func LogWithFields(fields ...Field) *Logger {
	return logger.With(fields...)
}

// LogWithError attaches err and, for typed errors, its kind and path or param.
func LogWithError(err error) *Logger {
	if err == nil {
		return logger.With(F("error", "<nil>"))
	}
	fields := []Field{
		F("error", err.Error()),
		F("error_kind", errors.KindOf(err).String()),
	}
	var fileErr *errors.FileError
	if errors.As(err, &fileErr) && fileErr.Path() != "" {
		fields = append(fields, F("path", fileErr.Path()))
	}
	var configErr *errors.ConfigError
	if errors.As(err, &configErr) && configErr.Param() != "" {
		fields = append(fields, F("param", configErr.Param()))
	}
	return logger.With(fields...)
}

// LogError logs err at error level with msg
func LogError(err error, msg string) {
	LogWithError(err).Error(msg)
}

// textFormatter renders "[timestamp] LEVEL: message key=value ..."
type textFormatter struct{}

func (f *textFormatter) Format(e *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer
	level := strings.ToUpper(e.Level.String())
	if e.Level == logrus.WarnLevel {
		level = "WARN"
	}
	fmt.Fprintf(&b, "[%s] %s: %s", e.Time.Format(timestampFormat), level, e.Message)

	keys := make([]string, 0, len(e.Data))
	for k := range e.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := fmt.Sprint(e.Data[k])
		if strings.ContainsAny(v, " \t\"") {
			v = fmt.Sprintf("%q", v)
		}
		fmt.Fprintf(&b, " %s=%s", k, v)
	}
	b.WriteByte('\n')
	return b.Bytes(), nil
}
