// Package logging opens the JSONL log under the suno state directory.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/rbright/suno/internal/config"
)

// LevelEnv overrides the log level (debug, info, warn, error).
const LevelEnv = "SUNO_LOG_LEVEL"

const fileName = "log.jsonl"

// Runtime is an open logger. Close releases the log file.
type Runtime struct {
	Logger *slog.Logger
	Path   string
	Level  slog.Level
	file   *os.File
}

type Options struct {
	// Mirror receives a copy of every record, e.g. stderr under a service
	// manager that captures it.
	Mirror io.Writer
}

func (r Runtime) Close() error {
	if r.file == nil {
		return nil
	}
	return r.file.Close()
}

// New appends to $XDG_STATE_HOME/suno/log.jsonl at the level named by
// SUNO_LOG_LEVEL.
func New(opts Options) (Runtime, error) {
	level, err := ParseLevel(os.Getenv(LevelEnv))
	if err != nil {
		return Runtime{}, err
	}
	path, err := logPath()
	if err != nil {
		return Runtime{}, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return Runtime{}, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return Runtime{}, fmt.Errorf("open log: %w", err)
	}

	sinks := []io.Writer{file}
	if opts.Mirror != nil {
		sinks = append(sinks, opts.Mirror)
	}
	handler := slog.NewJSONHandler(io.MultiWriter(sinks...), &slog.HandlerOptions{Level: level})
	return Runtime{
		Logger: slog.New(handler).With("app", "suno"),
		Path:   path,
		Level:  level,
		file:   file,
	}, nil
}

// ParseLevel accepts slog level names in any case plus "warning". Empty
// means info.
func ParseLevel(raw string) (slog.Level, error) {
	name := strings.TrimSpace(raw)
	switch strings.ToLower(name) {
	case "":
		return slog.LevelInfo, nil
	case "warning":
		return slog.LevelWarn, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid %s %q", LevelEnv, raw)
	}
	return level, nil
}

func logPath() (string, error) {
	dir, err := config.StateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}
