// Package logging wraps github.com/charmbracelet/log the way the
// teacher's common/log does: a package-level logger, an Init that
// names the running component, and thin Info/Warn/Error/Debug/Fatal
// helpers.
package logging

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
)

var logger *log.Logger

// Init configures the package logger for one running component (e.g.
// "mahjongev-server"). Must be called once at process start before
// any of the level helpers below.
func Init(component string) {
	logger = log.New(os.Stderr)
	logger.SetPrefix(component)
	logger.SetReportTimestamp(true)
	logger.SetTimeFormat(time.DateTime)
	logger.SetLevel(log.InfoLevel)
}

// SetLevel raises or lowers verbosity, e.g. from loaded config.
func SetLevel(level string) {
	if logger == nil {
		return
	}
	switch level {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "warn":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}
}

func Fatal(format string, args ...any) {
	if len(args) == 0 {
		logger.Fatal(format)
	} else {
		logger.Fatal(format, args...)
	}
}

func Info(format string, args ...any) {
	if len(args) == 0 {
		logger.Info(format)
	} else {
		logger.Info(format, args...)
	}
}

func Warn(format string, args ...any) {
	if len(args) == 0 {
		logger.Warn(format)
	} else {
		logger.Warn(format, args...)
	}
}

func Error(format string, args ...any) {
	if len(args) == 0 {
		logger.Error(format)
	} else {
		logger.Error(format, args...)
	}
}

func Debug(format string, args ...any) {
	if len(args) == 0 {
		logger.Debug(format)
	} else {
		logger.Debug(format, args...)
	}
}
