package utils

import (
	"strings"

	logger "github.com/sirupsen/logrus"
)

// SetupLogger configures the global logrus logger from LOG_LEVEL / LOG_FORMAT values.
func SetupLogger(levelStr, format string) {
	level, err := logger.ParseLevel(strings.ToLower(levelStr))
	if err != nil {
		level = logger.DebugLevel // safe fallback
	}
	logger.SetLevel(level)

	if strings.EqualFold(format, "json") {
		logger.SetFormatter(&logger.JSONFormatter{})
		return
	}
	logger.SetFormatter(&logger.TextFormatter{
		FullTimestamp: true,
	})
}
