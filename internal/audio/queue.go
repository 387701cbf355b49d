package audio

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrQueueClosed is returned by Pop once the queue is closed and drained.
var ErrQueueClosed = errors.New("frame queue closed")

// Frame is one fixed-length block of mono signed 16-bit samples.
type Frame []int16

// FrameQueue is a bounded single-producer/single-consumer ring of frames.
// Push never blocks: when full, the oldest frame is overwritten.
type FrameQueue struct {
	mu      sync.Mutex
	buf     []Frame
	head    int
	size    int
	closed  bool
	dropped uint64

	notify chan struct{}
}

// NewFrameQueue allocates a ring holding up to capacity frames.
func NewFrameQueue(capacity int) *FrameQueue {
	if capacity < 1 {
		capacity = 1
	}
	return &FrameQueue{
		buf:    make([]Frame, capacity),
		notify: make(chan struct{}, 1),
	}
}

// Push enqueues a frame, evicting the oldest when full. It reports false
// when the queue is closed.
func (q *FrameQueue) Push(frame Frame) bool {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return false
	}
	tail := (q.head + q.size) % len(q.buf)
	if q.size == len(q.buf) {
		q.head = (q.head + 1) % len(q.buf)
		q.dropped++
	} else {
		q.size++
	}
	q.buf[tail] = frame
	q.mu.Unlock()

	select {
	case q.notify <- struct{}{}:
	default:
	}
	return true
}

// Pop waits up to wait for a frame. ok is false on timeout.
func (q *FrameQueue) Pop(ctx context.Context, wait time.Duration) (Frame, bool, error) {
	var timer *time.Timer
	for {
		q.mu.Lock()
		if q.size > 0 {
			frame := q.buf[q.head]
			q.buf[q.head] = nil
			q.head = (q.head + 1) % len(q.buf)
			q.size--
			q.mu.Unlock()
			return frame, true, nil
		}
		closed := q.closed
		q.mu.Unlock()

		if closed {
			return nil, false, ErrQueueClosed
		}
		if wait <= 0 {
			return nil, false, nil
		}
		if timer == nil {
			timer = time.NewTimer(wait)
			defer timer.Stop()
		}

		select {
		case <-ctx.Done():
			return nil, false, ctx.Err()
		case <-timer.C:
			return nil, false, nil
		case <-q.notify:
		}
	}
}

// Flush discards all queued frames and returns how many were dropped.
func (q *FrameQueue) Flush() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	n := q.size
	for i := 0; i < q.size; i++ {
		q.buf[(q.head+i)%len(q.buf)] = nil
	}
	q.head = 0
	q.size = 0
	return n
}

// Len returns the number of queued frames.
func (q *FrameQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.size
}

// Dropped returns how many frames were evicted by overflow.
func (q *FrameQueue) Dropped() uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.dropped
}

// Close stops accepting frames and wakes a waiting consumer.
func (q *FrameQueue) Close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()

	select {
	case q.notify <- struct{}{}:
	default:
	}
}
