package audio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/jfreymuth/pulse"
	pulseproto "github.com/jfreymuth/pulse/proto"
)

// CaptureOptions fixes the capture sample rate and frame length.
type CaptureOptions struct {
	SampleRate   int
	FrameSamples int
}

// Capture cuts a mono s16 Pulse record stream into fixed-length frames and
// pushes them into a FrameQueue. The record callback never waits on the
// consumer.
type Capture struct {
	device     Device
	queue      *FrameQueue
	frameBytes int

	client *pulse.Client
	stream *pulse.RecordStream

	mu       sync.Mutex
	pending  []byte
	stopped  bool
	inflight sync.WaitGroup

	bytes  atomic.Int64
	frames atomic.Int64
}

func newCapture(selected Device, queue *FrameQueue, opts CaptureOptions) (*Capture, error) {
	switch {
	case queue == nil:
		return nil, errors.New("capture requires a frame queue")
	case opts.SampleRate <= 0 || opts.FrameSamples <= 0:
		return nil, fmt.Errorf("invalid capture options: rate=%d frame=%d", opts.SampleRate, opts.FrameSamples)
	}
	return &Capture{device: selected, queue: queue, frameBytes: 2 * opts.FrameSamples}, nil
}

// StartCapture opens the record stream on selected and runs until Stop or
// until ctx is done. Either way the queue is closed afterwards.
func StartCapture(ctx context.Context, selected Device, queue *FrameQueue, opts CaptureOptions) (*Capture, error) {
	c, err := newCapture(selected, queue, opts)
	if err != nil {
		return nil, err
	}
	if c.client, err = newClient(); err != nil {
		return nil, err
	}

	source, err := c.client.SourceByID(selected.ID)
	if err != nil {
		c.client.Close()
		return nil, fmt.Errorf("resolve source %q: %w", selected.ID, err)
	}

	// 20 ms fragments keep each callback short whatever the frame length.
	fragment := uint32(opts.SampleRate / 50 * 2)
	c.stream, err = c.client.NewRecord(
		pulse.NewWriter(writerFunc(c.onPCM), pulseproto.FormatInt16LE),
		pulse.RecordSource(source),
		pulse.RecordMono,
		pulse.RecordSampleRate(opts.SampleRate),
		pulse.RecordBufferFragmentSize(fragment),
		pulse.RecordMediaName("suno microphone"),
	)
	if err != nil {
		_ = c.Stop()
		return nil, fmt.Errorf("create pulse record stream: %w", err)
	}
	c.stream.Start()

	context.AfterFunc(ctx, func() { _ = c.Stop() })
	return c, nil
}

func (c *Capture) Device() Device {
	return c.device
}

// BytesCaptured counts bytes accepted from Pulse.
func (c *Capture) BytesCaptured() int64 {
	return c.bytes.Load()
}

// FramesCaptured counts complete frames handed to the queue.
func (c *Capture) FramesCaptured() int64 {
	return c.frames.Load()
}

// Stop closes the stream, waits for an in-flight callback and then closes
// the queue. A trailing partial frame is discarded. Repeated calls are no-ops.
func (c *Capture) Stop() error {
	c.mu.Lock()
	already := c.stopped
	c.stopped = true
	c.mu.Unlock()
	if already {
		return nil
	}

	if c.stream != nil {
		c.stream.Stop()
		c.stream.Close()
	}
	if c.client != nil {
		c.client.Close()
	}
	c.inflight.Wait()

	c.mu.Lock()
	c.pending = nil
	c.mu.Unlock()
	c.queue.Close()
	return nil
}

func (c *Capture) Close() error {
	return c.Stop()
}

// onPCM is the record callback. Returning io.EOF ends the stream.
func (c *Capture) onPCM(buffer []byte) (int, error) {
	frames, ok := c.cut(buffer)
	if !ok {
		return 0, io.EOF
	}
	defer c.inflight.Done()

	c.bytes.Add(int64(len(buffer)))
	for _, frame := range frames {
		if c.queue.Push(frame) {
			c.frames.Add(1)
		}
	}
	return len(buffer), nil
}

// cut appends buffer to the partial frame and decodes every complete frame.
// On success the caller owns one inflight slot.
func (c *Capture) cut(buffer []byte) ([]Frame, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stopped {
		return nil, false
	}
	c.inflight.Add(1)

	c.pending = append(c.pending, buffer...)
	frames := make([]Frame, len(c.pending)/c.frameBytes)
	for i := range frames {
		frames[i] = DecodePCM16LE(c.pending[i*c.frameBytes : (i+1)*c.frameBytes])
	}
	c.pending = append(c.pending[:0], c.pending[len(frames)*c.frameBytes:]...)
	return frames, true
}

type writerFunc func([]byte) (int, error)

func (f writerFunc) Write(b []byte) (int, error) {
	return f(b)
}
