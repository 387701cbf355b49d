package ipc

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"time"
)

// ErrAlreadyRunning reports that another assistant owns the socket.
var ErrAlreadyRunning = errors.New("suno assistant already running")

// acquireAttempts bounds listen retries when a stale socket races with a
// starting assistant.
const acquireAttempts = 3

// RuntimeSocketPath places the socket under XDG_RUNTIME_DIR. Service managers
// on the device often leave it unset, so a per-user temp directory is used
// instead.
func RuntimeSocketPath() string {
	if runtimeDir := strings.TrimSpace(os.Getenv("XDG_RUNTIME_DIR")); runtimeDir != "" {
		return filepath.Join(runtimeDir, "suno.sock")
	}
	return filepath.Join(os.TempDir(), fmt.Sprintf("suno-%d", os.Getuid()), "suno.sock")
}

// Acquire listens on path as the single-instance lock. The assistant owns the
// microphone and GPIO lines, so a second one must not start. A leftover
// socket that nobody answers on is removed and the listen retried.
func Acquire(ctx context.Context, path string, probeTimeout time.Duration) (net.Listener, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("ensure runtime socket dir: %w", err)
	}

	var lastErr error
	for attempt := 1; attempt <= acquireAttempts; attempt++ {
		listener, err := net.Listen("unix", path)
		if err == nil {
			_ = os.Chmod(path, 0o600)
			return listener, nil
		}
		if !errors.Is(err, syscall.EADDRINUSE) {
			return nil, fmt.Errorf("listen unix %s: %w", path, err)
		}
		lastErr = err

		alive, err := Probe(ctx, path, probeTimeout)
		switch {
		case alive:
			return nil, ErrAlreadyRunning
		case err != nil:
			return nil, fmt.Errorf("probe existing socket %s: %w", path, err)
		}
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("remove stale socket %s: %w", path, err)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Duration(attempt) * 25 * time.Millisecond):
		}
	}
	return nil, fmt.Errorf("acquire socket %s: %w", path, lastErr)
}
