package ipc

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAcquireReplacesLeftoverFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "suno.sock")
	require.NoError(t, os.WriteFile(path, []byte("left over from a crash"), 0o600))

	listener, err := Acquire(context.Background(), path, 50*time.Millisecond)
	require.NoError(t, err)
	defer listener.Close()

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.NotZero(t, info.Mode()&os.ModeSocket, "mode = %v", info.Mode())
}

func TestAcquireRefusesWhileAssistantAnswers(t *testing.T) {
	t.Parallel()
	path, stop := serveAssistant(t, HandlerFunc(func(context.Context, Request) Response {
		return Response{OK: true, State: "awake"}
	}))

	_, err := Acquire(context.Background(), path, 80*time.Millisecond)
	require.ErrorIs(t, err, ErrAlreadyRunning)
	require.NoError(t, stop())
}

func TestAcquireTakesOverAfterAssistantExits(t *testing.T) {
	t.Parallel()
	path, stop := serveAssistant(t, HandlerFunc(func(context.Context, Request) Response {
		return Response{OK: true}
	}))
	require.NoError(t, stop())

	listener, err := Acquire(context.Background(), path, 50*time.Millisecond)
	require.NoError(t, err)
	require.NoError(t, listener.Close())
}

func TestAcquireKeepsSocketWhenProbeIsInconclusive(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "suno.sock")
	listener, err := net.Listen("unix", path)
	require.NoError(t, err)

	// accepts but never answers, like a wedged assistant
	accepted := make(chan struct{})
	go func() {
		defer close(accepted)
		for {
			conn, err := listener.Accept()
			if err != nil {
				return
			}
			go func() {
				defer conn.Close()
				time.Sleep(250 * time.Millisecond)
			}()
		}
	}()

	_, err = Acquire(context.Background(), path, 30*time.Millisecond)
	require.ErrorContains(t, err, "probe existing socket")
	require.NotErrorIs(t, err, ErrAlreadyRunning)

	_, err = os.Stat(path)
	require.NoError(t, err)
	require.NoError(t, listener.Close())
	<-accepted
}

func TestAcquireCreatesRuntimeDirAndRestrictsSocket(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run", "suno.sock")

	listener, err := Acquire(context.Background(), path, 50*time.Millisecond)
	require.NoError(t, err)
	defer listener.Close()

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestRuntimeSocketPath(t *testing.T) {
	runtimeDir := t.TempDir()
	t.Setenv("XDG_RUNTIME_DIR", runtimeDir)
	require.Equal(t, filepath.Join(runtimeDir, "suno.sock"), RuntimeSocketPath())

	t.Setenv("XDG_RUNTIME_DIR", "")
	path := RuntimeSocketPath()
	require.Equal(t, "suno.sock", filepath.Base(path))
	require.Equal(t, os.TempDir(), filepath.Dir(filepath.Dir(path)))
}
