//go:build integration

package audio

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Requires a running Pulse or PipeWire-Pulse server with a capture source.

func TestSelectDefaultDeviceIntegration(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	selection, err := SelectDevice(ctx, "default", "default")
	require.NoError(t, err)
	require.NotEmpty(t, selection.Device.ID)
}

func TestCaptureDeliversFramesIntegration(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	selection, err := SelectDevice(ctx, "default", "default")
	require.NoError(t, err)

	// 100 ms frames at the device rate keep the test short.
	queue := NewFrameQueue(4)
	capture, err := StartCapture(ctx, selection.Device, queue, CaptureOptions{SampleRate: 48000, FrameSamples: 4800})
	require.NoError(t, err)
	defer capture.Close()

	frame, ok, err := queue.Pop(ctx, 2*time.Second)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, frame, 4800)

	require.NoError(t, capture.Stop())
	require.Positive(t, capture.FramesCaptured())

	// Stop closes the queue; whatever was already captured is discarded here.
	queue.Flush()
	_, _, err = queue.Pop(ctx, 10*time.Millisecond)
	require.ErrorIs(t, err, ErrQueueClosed)
}
