package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// openLogger creates a logger writing to path. The terminal belongs to the
// game while it runs, so logs never go to stderr. An empty path discards logs.
// The returned close function is always safe to call.
func openLogger(path string) (*log.Logger, func() error, error) {
	noop := func() error { return nil }
	if path == "" {
		return log.New(io.Discard), noop, nil
	}

	path, err := expandHome(path)
	if err != nil {
		return nil, noop, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, noop, fmt.Errorf("cannot create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, noop, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "shooter",
		Level:           log.InfoLevel,
	})
	if os.Getenv("SHOOTER_DEBUG") != "" {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, f.Close, nil
}
