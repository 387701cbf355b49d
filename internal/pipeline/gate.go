package pipeline

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/rbright/suno/internal/audio"
	"github.com/rbright/suno/internal/session"
)

// Gate mutes the pipeline around every blocking speak call. It implements
// session.Speaker by wrapping the real synthesizer.
type Gate struct {
	open   atomic.Bool
	queue  *audio.FrameQueue
	inner  session.Speaker
	logger *slog.Logger
}

// NewGate returns an open gate that flushes queue after each speak.
func NewGate(queue *audio.FrameQueue, inner session.Speaker, logger *slog.Logger) *Gate {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	g := &Gate{queue: queue, inner: inner, logger: logger}
	g.open.Store(true)
	return g
}

// Open reports whether captured frames may reach the recognizer.
func (g *Gate) Open() bool {
	return g.open.Load()
}

// Speak closes the gate, runs the wrapped speaker, then reopens the gate and
// discards every frame captured in between, on every return path.
func (g *Gate) Speak(ctx context.Context, text string) error {
	g.open.Store(false)
	defer func() {
		g.open.Store(true)
		if g.queue == nil {
			return
		}
		if n := g.queue.Flush(); n > 0 {
			g.logger.Debug("flushed frames captured during speech", "frames", n)
		}
	}()

	if g.inner == nil {
		return nil
	}
	return g.inner.Speak(ctx, text)
}
