// Package logging is the structured logger of the survey tooling. Loggers are named, their levels
// can be set by name pattern, and every entry fans out to zap cores: the console, a rotating JSON
// file and, in tests, an observer.
package logging

import (
	"io"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// Logger is the logging interface used throughout the module.
type Logger interface {
	Debug(args ...interface{})
	Debugf(template string, args ...interface{})
	Debugw(msg string, keysAndValues ...interface{})
	Info(args ...interface{})
	Infof(template string, args ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warn(args ...interface{})
	Warnf(template string, args ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Error(args ...interface{})
	Errorf(template string, args ...interface{})
	Errorw(msg string, keysAndValues ...interface{})

	// Sublogger returns a registered logger named "<name>.<subname>" with the same outputs.
	Sublogger(subname string) Logger
	// With returns a logger that adds keysAndValues to every entry. It shares the level of its
	// parent and is not registered.
	With(keysAndValues ...interface{}) Logger
	AddAppender(appender Appender)
	SetLevel(level Level)
	GetLevel() Level
	Sync() error
}

// encoderConfig is shared by the console and file appenders; only the encoding differs.
func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

// newImpl builds a logger and registers it when it has a name.
func newImpl(name string, level Level, appenders ...Appender) *impl {
	logger := &impl{name: name, level: NewAtomicLevelAt(level), utc: true, appenders: appenders}
	if name != "" {
		globalRegistry.register(name, logger)
	}
	return logger
}

// NewBlankLogger returns a Debug+ logger with no outputs. Add some with AddAppender.
func NewBlankLogger(name string) Logger {
	return newImpl(name, DEBUG)
}

// NewWriterLogger returns a logger at the given level that writes console lines to w. w may be
// shared between goroutines.
func NewWriterLogger(name string, level Level, w io.Writer) Logger {
	return newImpl(name, level, NewConsoleAppender(w))
}

// NewTestLogger returns a Debug+ logger that writes to the test log in local time.
func NewTestLogger(tb testing.TB) Logger {
	logger, _ := NewObservedTestLogger(tb)
	return logger
}

// NewObservedTestLogger is like NewTestLogger but also records every entry for assertions.
func NewObservedTestLogger(tb testing.TB) (Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.LevelEnablerFunc(zapcore.DebugLevel.Enabled))
	logger := &impl{level: NewAtomicLevelAt(DEBUG), appenders: []Appender{NewTestAppender(tb), core}}
	return logger, logs
}
