package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// newLogger opens the log destination. The terminal front-end owns stdout,
// so logs go to a file unless path is "-".
func newLogger(path string, debug bool) (*log.Logger, func() error, error) {
	var (
		w       io.Writer = os.Stderr
		closeFn         = func() error { return nil }
	)

	if path != "-" {
		if path == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, nil, fmt.Errorf("failed to resolve home dir: %w", err)
			}
			path = filepath.Join(home, ".invaders", "invaders.log")
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			return nil, nil, fmt.Errorf("failed to create log dir: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //#nosec G304 -- user-chosen log path
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w, closeFn = f, f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "invaders",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}
