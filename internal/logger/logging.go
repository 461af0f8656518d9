// Package logger provides prefixed charmbracelet/log loggers for the packages
// that should not write through the global logger.
package logger

import (
	"os"

	"github.com/charmbracelet/log"
)

// New creates a prefixed logger on stderr that respects the global log level.
// Stdout is reserved for IPC responses.
func New(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          prefix,
		ReportCaller:    false,
		ReportTimestamp: log.GetLevel() == log.DebugLevel,
		Formatter:       log.TextFormatter,
		Level:           log.GetLevel(),
	})
}
