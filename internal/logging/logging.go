package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Level reads LOG_LEVEL. Unset or unknown values fall back to info.
//
// Accepted values (case-insensitive): DEBUG, INFO, WARN, WARNING, ERROR.
func Level() logrus.Level {
	switch strings.ToUpper(strings.TrimSpace(os.Getenv("LOG_LEVEL"))) {
	case "DEBUG":
		return logrus.DebugLevel
	case "WARN", "WARNING":
		return logrus.WarnLevel
	case "ERROR":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// New returns a JSON logger writing to stderr, so `cdk synth` output on
// stdout stays a clean template.
func New() *logrus.Logger {
	return NewWithWriter(os.Stderr)
}

func NewWithWriter(w io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(Level())
	return logger
}

// Discard is used by tests and by callers that pass no logger.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
