package logging

import (
	"github.com/sirupsen/logrus"
)

// NewLogger builds the process logger. Production gets JSON output for log
// shipping; everything else gets readable text with timestamps.
func NewLogger(level string, isProd bool) *logrus.Logger {
	logger := logrus.New()

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)

	if isProd {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return logger
}
