package logging

import (
	"encoding/json"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

// DefaultTimeFormatStr is the time format of log lines written to tests.
const DefaultTimeFormatStr = "2006-01-02T15:04:05.000Z0700"

// testAppender logs through tb.Log, so lines from parallel tests and from the survey workers are
// attributed to the test that started them.
type testAppender struct {
	tb testing.TB
}

// NewTestAppender returns an appender that writes to the test log.
func NewTestAppender(tb testing.TB) Appender {
	return &testAppender{tb}
}

// Write prints the entry as time, level, logger, caller and message, then the fields as a JSON
// object with sorted keys.
func (tapp *testAppender) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	// keep tb.Log from reporting this file as the origin of every line
	tapp.tb.Helper()

	parts := []string{entry.Time.Format(DefaultTimeFormatStr), entry.Level.CapitalString(), entry.LoggerName}
	if entry.Caller.Defined {
		parts = append(parts, entry.Caller.TrimmedPath())
	}
	parts = append(parts, entry.Message)
	if len(fields) == 0 {
		tapp.tb.Log(strings.Join(parts, "\t"))
		return nil
	}

	enc := zapcore.NewMapObjectEncoder()
	for _, f := range fields {
		f.AddTo(enc)
	}
	data, err := json.Marshal(enc.Fields)
	if err != nil {
		tapp.tb.Log(strings.Join(parts, "\t"))
		return err
	}
	tapp.tb.Log(strings.Join(append(parts, string(data)), "\t"))
	return nil
}

// Sync is a no-op.
func (tapp *testAppender) Sync() error {
	return nil
}
