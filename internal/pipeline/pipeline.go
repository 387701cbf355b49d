// Package pipeline turns captured microphone frames into committed-ready
// utterances and gates capture while the assistant is speaking.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/rbright/suno/internal/audio"
	"github.com/rbright/suno/internal/session"
)

// Recognizer is the streaming speech recognizer contract.
type Recognizer interface {
	// Accept feeds one frame and reports whether a final result is ready.
	Accept(samples []int16) (bool, error)
	// Result returns the normalized text of the last final result.
	Result() (string, error)
	// Reset discards partially recognized audio.
	Reset()
}

// Options fixes the sample rates on both sides of the resampler.
type Options struct {
	CaptureRate    int
	RecognizerRate int
	// DumpAudio keeps recognizer-rate audio and writes it as a WAV file on
	// every Reset.
	DumpAudio bool
}

// Stats counts frames seen by the consumer.
type Stats struct {
	Frames      int64
	GateDropped int64
	Recognized  int64
	Errors      int64
}

// Pipeline is the single consumer of the frame queue. It implements
// session.Source.
type Pipeline struct {
	logger *slog.Logger
	queue  *audio.FrameQueue
	gate   *Gate
	rec    Recognizer
	opts   Options
	now    func() time.Time

	dump *dumpBuffer

	frames      atomic.Int64
	gateDropped atomic.Int64
	recognized  atomic.Int64
	errs        atomic.Int64
}

// New wires a pipeline over queue, dropping frames while gate is closed.
func New(logger *slog.Logger, queue *audio.FrameQueue, gate *Gate, rec Recognizer, opts Options) (*Pipeline, error) {
	if queue == nil || gate == nil || rec == nil {
		return nil, session.ErrPipelineUnavailable
	}
	if opts.CaptureRate <= 0 || opts.RecognizerRate <= 0 {
		return nil, fmt.Errorf("invalid pipeline rates: capture=%d recognizer=%d", opts.CaptureRate, opts.RecognizerRate)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	p := &Pipeline{
		logger: logger,
		queue:  queue,
		gate:   gate,
		rec:    rec,
		opts:   opts,
		now:    time.Now,
	}
	if opts.DumpAudio {
		p.dump = newDumpBuffer(opts.RecognizerRate)
	}
	return p, nil
}

// Next consumes at most one frame, waiting up to wait for it to arrive.
func (p *Pipeline) Next(ctx context.Context, wait time.Duration) (session.Utterance, bool, error) {
	frame, ok, err := p.queue.Pop(ctx, wait)
	if err != nil {
		if errors.Is(err, audio.ErrQueueClosed) {
			return session.Utterance{}, false, session.ErrSourceClosed
		}
		return session.Utterance{}, false, err
	}
	if !ok {
		return session.Utterance{}, false, nil
	}

	p.frames.Add(1)
	if !p.gate.Open() {
		p.gateDropped.Add(1)
		return session.Utterance{}, false, nil
	}

	samples := audio.Resample(frame, p.opts.CaptureRate, p.opts.RecognizerRate)
	if p.dump != nil {
		p.dump.append(samples)
	}

	final, err := p.rec.Accept(samples)
	if err != nil {
		p.errs.Add(1)
		p.logger.Warn("recognizer rejected frame", "error", err)
		return session.Utterance{}, false, nil
	}
	if !final {
		return session.Utterance{}, false, nil
	}

	text, err := p.rec.Result()
	if err != nil {
		p.errs.Add(1)
		p.logger.Warn("recognizer result failed", "error", err)
		return session.Utterance{}, false, nil
	}
	if text == "" {
		return session.Utterance{}, false, nil
	}

	p.recognized.Add(1)
	p.logger.Debug("utterance recognized", "text", text)
	return session.Utterance{Text: text, At: p.now()}, true, nil
}

// Reset clears recognizer state after a committed turn.
func (p *Pipeline) Reset() {
	p.rec.Reset()
	if p.dump == nil {
		return
	}
	path, err := p.dump.flush()
	if err != nil {
		p.logger.Warn("unable to write debug audio dump", "error", err)
		return
	}
	if path != "" {
		p.logger.Debug("debug audio dump written", "path", path)
	}
}

// Stats returns a snapshot of consumer counters.
func (p *Pipeline) Stats() Stats {
	return Stats{
		Frames:      p.frames.Load(),
		GateDropped: p.gateDropped.Load(),
		Recognized:  p.recognized.Load(),
		Errors:      p.errs.Load(),
	}
}
