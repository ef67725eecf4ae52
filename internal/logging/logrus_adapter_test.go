package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedAdapter(level logrus.Level) (Logger, *bytes.Buffer) {
	logrusLogger := logrus.New()
	var buf bytes.Buffer
	logrusLogger.SetOutput(&buf)
	logrusLogger.SetLevel(level)
	logrusLogger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	return NewLogrusAdapterFromLogger(logrusLogger), &buf
}

func TestNewLogrusAdapter(t *testing.T) {
	tests := []struct {
		name        string
		level       string
		format      string
		expectLevel logrus.Level
		expectJSON  bool
	}{
		{name: "debug text", level: "debug", format: "text", expectLevel: logrus.DebugLevel},
		{name: "info json", level: "info", format: "json", expectLevel: logrus.InfoLevel, expectJSON: true},
		{name: "upper case level", level: "WARN", format: "text", expectLevel: logrus.WarnLevel},
		{name: "invalid level falls back to info", level: "loud", format: "text", expectLevel: logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewLogrusAdapter(tt.level, tt.format)
			adapter, ok := logger.(*LogrusAdapter)
			require.True(t, ok, "logger should be a LogrusAdapter")
			assert.Equal(t, tt.expectLevel, adapter.logger.Level)

			_, isJSON := adapter.logger.Formatter.(*logrus.JSONFormatter)
			assert.Equal(t, tt.expectJSON, isJSON)
		})
	}
}

func TestNewLogrusAdapterFromLogger_Nil(t *testing.T) {
	logger := NewLogrusAdapterFromLogger(nil)
	adapter, ok := logger.(*LogrusAdapter)
	require.True(t, ok)
	assert.NotNil(t, adapter.logger)
}

func TestLogrusAdapter_LevelsAndFields(t *testing.T) {
	tests := []struct {
		name    string
		logFunc func(Logger)
		message string
	}{
		{name: "debug", logFunc: func(l Logger) { l.Debug("debug message", Field{Key: FieldLabel, Value: "A"}) }, message: "debug message"},
		{name: "info", logFunc: func(l Logger) { l.Info("info message", Field{Key: FieldLabel, Value: "A"}) }, message: "info message"},
		{name: "warn", logFunc: func(l Logger) { l.Warn("warn message", Field{Key: FieldLabel, Value: "A"}) }, message: "warn message"},
		{name: "error", logFunc: func(l Logger) { l.Error("error message", Field{Key: FieldLabel, Value: "A"}) }, message: "error message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferedAdapter(logrus.DebugLevel)
			tt.logFunc(logger)

			output := buf.String()
			assert.Contains(t, output, tt.message)
			assert.Contains(t, output, "label=A")
		})
	}
}

func TestLogrusAdapter_ChainedCalls(t *testing.T) {
	logger, buf := newBufferedAdapter(logrus.InfoLevel)

	logger.
		WithField(FieldComponent, "normalizer").
		WithFields(Field{Key: FieldSeries, Value: "Sales"}).
		WithError(errors.New("bad cell")).
		Error("value rejected")

	output := buf.String()
	assert.Contains(t, output, "value rejected")
	assert.Contains(t, output, "component=normalizer")
	assert.Contains(t, output, "series=Sales")
	assert.Contains(t, output, "bad cell")
}

func TestLogrusAdapter_SetOutput(t *testing.T) {
	logger := NewLogrusAdapter("info", "json")
	var buf bytes.Buffer
	logger.(*LogrusAdapter).SetOutput(&buf)

	logger.Info("redirected")
	assert.Contains(t, buf.String(), `"msg":"redirected"`)
}

func TestConvertFields(t *testing.T) {
	logrusFields := convertFields([]Field{
		{Key: "key1", Value: "value1"},
		{Key: "key2", Value: 42},
	})

	assert.Len(t, logrusFields, 2)
	assert.Equal(t, "value1", logrusFields["key1"])
	assert.Equal(t, 42, logrusFields["key2"])
	assert.Empty(t, convertFields(nil))
}

func TestOrDefault(t *testing.T) {
	assert.NotNil(t, OrDefault(nil))

	mock := NewMockLogger()
	assert.Same(t, mock, OrDefault(mock))
}

func TestLogrusAdapter_ImplementsInterface(t *testing.T) {
	var _ Logger = (*LogrusAdapter)(nil)
	var _ Logger = (*MockLogger)(nil)
}
