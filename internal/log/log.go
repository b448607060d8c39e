// Package log provides centralized logging for Miles using charmbracelet/log.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Logger is the global logger instance.
var Logger *log.Logger

func init() {
	Logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: true,
		Level:           log.InfoLevel,
		Prefix:          "miles",
	})
}

// SetLevel sets the logging level.
func SetLevel(level log.Level) {
	Logger.SetLevel(level)
}

// SetOutput redirects log output, mostly for tests.
func SetOutput(w io.Writer) {
	Logger.SetOutput(w)
}

// ParseLevel converts a config level name (debug, info, warn, error) into a log.Level.
func ParseLevel(name string) (log.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return log.DebugLevel, nil
	case "", "info":
		return log.InfoLevel, nil
	case "warn", "warning":
		return log.WarnLevel, nil
	case "error":
		return log.ErrorLevel, nil
	default:
		return log.InfoLevel, fmt.Errorf("unknown log level: %s", name)
	}
}

// Debug logs a debug message.
func Debug(msg interface{}, keyvals ...interface{}) {
	Logger.Debug(msg, keyvals...)
}

// Warn logs a warning message.
func Warn(msg interface{}, keyvals ...interface{}) {
	Logger.Warn(msg, keyvals...)
}
