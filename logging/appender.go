package logging

import (
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Appender is an output for log entries. It is the subset of zapcore.Core a logger needs, so any
// zap core can be added to a logger. Appenders are written from many goroutines at once.
type Appender interface {
	Write(zapcore.Entry, []zapcore.Field) error
	Sync() error
}

// ConsoleAppender writes tab separated lines to a writer. Writes are serialized, so the survey
// workers can share one appender over a plain io.Writer.
type ConsoleAppender struct {
	encoder zapcore.Encoder
	out     zapcore.WriteSyncer
}

// NewConsoleAppender returns an appender writing to w.
func NewConsoleAppender(w io.Writer) *ConsoleAppender {
	return &ConsoleAppender{
		encoder: zapcore.NewConsoleEncoder(encoderConfig()),
		out:     zapcore.Lock(zapcore.AddSync(w)),
	}
}

// Write encodes the entry and writes it as one line.
func (appender *ConsoleAppender) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	buf, err := appender.encoder.EncodeEntry(entry, fields)
	if err != nil {
		return err
	}
	defer buf.Free()

	_, err = appender.out.Write(buf.Bytes())
	return err
}

// Sync is a no-op. Lines are not buffered, and syncing a terminal or pipe fails on some systems.
func (appender *ConsoleAppender) Sync() error {
	return nil
}

// FileConfig holds rotating file output settings.
type FileConfig struct {
	Path       string `yaml:"path" json:"path"`
	MaxSizeMB  int    `yaml:"max_size_mb" json:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups" json:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days" json:"max_age_days"`
	Compress   bool   `yaml:"compress" json:"compress"`
}

// DefaultFileConfig returns default file logging settings.
func DefaultFileConfig(path string) FileConfig {
	return FileConfig{
		Path:       path,
		MaxSizeMB:  50,
		MaxBackups: 3,
		MaxAgeDays: 7,
		Compress:   true,
	}
}

// FileAppender writes JSON lines to a size-rotated file.
type FileAppender struct {
	encoder zapcore.Encoder
	out     *lumberjack.Logger
}

// NewFileAppender returns an appender for cfg. The file is opened on the first write.
func NewFileAppender(cfg FileConfig) (*FileAppender, error) {
	if cfg.Path == "" {
		return nil, errors.New("log file path is empty")
	}
	return &FileAppender{
		encoder: zapcore.NewJSONEncoder(encoderConfig()),
		out: &lumberjack.Logger{
			Filename:   cfg.Path,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
			LocalTime:  true,
		},
	}, nil
}

// Write appends the entry to the file. lumberjack serializes writes.
func (appender *FileAppender) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	buf, err := appender.encoder.EncodeEntry(entry, fields)
	if err != nil {
		return err
	}
	defer buf.Free()

	_, err = appender.out.Write(buf.Bytes())
	return err
}

// Sync is a no-op; lumberjack writes through.
func (appender *FileAppender) Sync() error {
	return nil
}

// Close closes the current log file.
func (appender *FileAppender) Close() error {
	return appender.out.Close()
}
