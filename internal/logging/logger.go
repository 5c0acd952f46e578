// Package logging configures the CLI logger. Runs log to stderr and, when a
// project directory is initialized, to .pollination/logs/pollination-dsl.log
// so failures stay inspectable after the run.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// New returns a logger writing to stderr. Verbose enables debug output.
func New(verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}
	return logger
}

// AttachFile tees the logger output into logDir/pollination-dsl.log. The
// returned closer releases the file handle.
func AttachFile(logger *logrus.Logger, logDir string) (func() error, error) {
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, fmt.Errorf("logging: ensure log dir: %w", err)
	}
	path := filepath.Join(logDir, "pollination-dsl.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logging: open log file: %w", err)
	}
	logger.SetOutput(io.MultiWriter(logger.Out, f))
	return f.Close, nil
}
