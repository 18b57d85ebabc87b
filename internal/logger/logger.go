package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger provides leveled logging with context prefixes
type Logger struct {
	prefix string
	sugar  *zap.SugaredLogger
}

// New creates a root logger writing to stderr, so stdout only carries results
func New(level string) (*Logger, error) {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter creates a root logger writing to w
func NewWithWriter(w io.Writer, level string) (*Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), zapcore.AddSync(w), lvl)

	return &Logger{
		prefix: "",
		sugar:  zap.New(core).Sugar(),
	}, nil
}

// WithPrefix creates a child logger with a custom prefix
func (l *Logger) WithPrefix(prefix string) *Logger {
	return &Logger{
		prefix: l.prefix + "[" + prefix + "]",
		sugar:  l.sugar,
	}
}

// Info logs an informational message
func (l *Logger) Info(msg string, args ...interface{}) {
	l.sugar.Infof(l.format(msg), args...)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, args ...interface{}) {
	l.sugar.Debugf(l.format(msg), args...)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, args ...interface{}) {
	l.sugar.Warnf(l.format(msg), args...)
}

// Error logs an error message
func (l *Logger) Error(msg string, args ...interface{}) {
	l.sugar.Errorf(l.format(msg), args...)
}

// Sync flushes buffered log entries
func (l *Logger) Sync() error {
	return l.sugar.Sync()
}

func (l *Logger) format(msg string) string {
	if l.prefix == "" {
		return msg
	}
	return l.prefix + " " + msg
}
