// Package logging builds the structured logger exhibit writes to its log
// file. The TUI owns the terminal, so nothing is ever logged to stdout or
// stderr while it runs.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

const defaultPrefix = "exhibit"

// New returns a logger writing logfmt lines to w at level.
func New(w io.Writer, level string) (*log.Logger, error) {
	lvl := log.InfoLevel
	if trimmed := strings.TrimSpace(level); trimmed != "" {
		parsed, err := log.ParseLevel(trimmed)
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		lvl = parsed
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          defaultPrefix,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Formatter:       log.LogfmtFormatter,
	}), nil
}

// Open appends to the log file at path, creating parent directories. The
// returned closer must be closed on exit.
func Open(path, level string) (*log.Logger, io.Closer, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, nil, fmt.Errorf("log path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(trimmed), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(trimmed, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger, err := New(file, level)
	if err != nil {
		_ = file.Close()
		return nil, nil, err
	}
	return logger, file, nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
