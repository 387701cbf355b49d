package audio

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFrameQueueFIFO(t *testing.T) {
	q := NewFrameQueue(3)
	require.True(t, q.Push(Frame{1}))
	require.True(t, q.Push(Frame{2}))
	require.Equal(t, 2, q.Len())

	for _, want := range []Frame{{1}, {2}} {
		got, ok, err := q.Pop(context.Background(), 0)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, want, got)
	}

	_, ok, err := q.Pop(context.Background(), 0)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestFrameQueueDropsOldestWhenFull(t *testing.T) {
	q := NewFrameQueue(2)
	q.Push(Frame{1})
	q.Push(Frame{2})
	q.Push(Frame{3})

	require.Equal(t, 2, q.Len())
	require.Equal(t, uint64(1), q.Dropped())

	got, ok, err := q.Pop(context.Background(), 0)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, Frame{2}, got)
}

func TestFrameQueueFlush(t *testing.T) {
	q := NewFrameQueue(4)
	q.Push(Frame{1})
	q.Push(Frame{2})
	q.Push(Frame{3})

	require.Equal(t, 3, q.Flush())
	require.Equal(t, 0, q.Len())

	q.Push(Frame{4})
	got, ok, err := q.Pop(context.Background(), 0)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, Frame{4}, got)
}

func TestFrameQueuePopTimesOut(t *testing.T) {
	q := NewFrameQueue(1)
	start := time.Now()
	_, ok, err := q.Pop(context.Background(), 20*time.Millisecond)
	require.NoError(t, err)
	require.False(t, ok)
	require.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestFrameQueuePopWakesOnPush(t *testing.T) {
	q := NewFrameQueue(1)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		time.Sleep(10 * time.Millisecond)
		q.Push(Frame{7})
	}()

	got, ok, err := q.Pop(context.Background(), 2*time.Second)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, Frame{7}, got)
	wg.Wait()
}

func TestFrameQueuePopHonoursContext(t *testing.T) {
	q := NewFrameQueue(1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, ok, err := q.Pop(ctx, time.Second)
	require.False(t, ok)
	require.ErrorIs(t, err, context.Canceled)
}

func TestFrameQueueCloseDrainsThenFails(t *testing.T) {
	q := NewFrameQueue(2)
	q.Push(Frame{1})
	q.Close()
	require.False(t, q.Push(Frame{2}))

	got, ok, err := q.Pop(context.Background(), 0)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, Frame{1}, got)

	_, _, err = q.Pop(context.Background(), time.Second)
	require.ErrorIs(t, err, ErrQueueClosed)
}
