// Package mozartlog initializes mozart's process-wide logger, mirroring
// original_source/src/log.rs's MOZART_LOG-driven tracing setup but built
// on logrus, the logging library the teacher's entrypoint command uses.
package mozartlog

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

const defaultLevel = logrus.InfoLevel

// New builds the process-wide logger from the MOZART_LOG environment
// variable: one of off|trace|debug|info|warn|error, defaulting to info
// on an unset or unrecognised value.
func New() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
	})

	level, discard := levelFromEnv()
	if discard {
		log.SetOutput(io.Discard)
	}
	log.SetLevel(level)
	return log
}

func levelFromEnv() (level logrus.Level, discard bool) {
	raw := os.Getenv("MOZART_LOG")
	if raw == "" {
		return defaultLevel, false
	}
	if raw == "off" {
		return logrus.PanicLevel, true
	}
	parsed, err := logrus.ParseLevel(raw)
	if err != nil {
		return defaultLevel, false
	}
	return parsed, false
}
