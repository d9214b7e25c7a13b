package logging

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevel(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		want     logrus.Level
	}{
		{name: "DEBUG", envValue: "DEBUG", want: logrus.DebugLevel},
		{name: "debug lowercase", envValue: "debug", want: logrus.DebugLevel},
		{name: "INFO", envValue: "INFO", want: logrus.InfoLevel},
		{name: "WARN", envValue: "WARN", want: logrus.WarnLevel},
		{name: "WARNING", envValue: "WARNING", want: logrus.WarnLevel},
		{name: "ERROR", envValue: "error", want: logrus.ErrorLevel},
		{name: "empty defaults to INFO", envValue: "", want: logrus.InfoLevel},
		{name: "invalid defaults to INFO", envValue: "LOUD", want: logrus.InfoLevel},
		{name: "surrounding whitespace", envValue: "  DEBUG  ", want: logrus.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", tt.envValue)
			assert.Equal(t, tt.want, Level())
		})
	}
}

func TestNewWithWriterEmitsJSON(t *testing.T) {
	t.Setenv("LOG_LEVEL", "INFO")
	var buf bytes.Buffer

	logger := NewWithWriter(&buf)
	logger.WithField("operation", "test").Info("hello")

	require.NotEmpty(t, buf.String())
	assert.Contains(t, buf.String(), `"operation":"test"`)
	assert.Contains(t, buf.String(), `"msg":"hello"`)
}

func TestDiscardWritesNothing(t *testing.T) {
	logger := Discard()
	logger.Error("ignored")
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
}
