// Package speech synthesizes replies with Piper and plays them back.
package speech

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Synthesizer renders text to mono 16-bit PCM.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]int16, error)
}

// Player plays mono 16-bit PCM at the given rate and blocks until done.
type Player interface {
	Play(ctx context.Context, samples []int16, sampleRate int) error
}

// Speaker chains synthesis and playback. It implements session.Speaker.
type Speaker struct {
	synth      Synthesizer
	player     Player
	sampleRate int
	logger     *slog.Logger
}

// NewSpeaker builds a blocking speaker for PCM at sampleRate.
func NewSpeaker(logger *slog.Logger, synth Synthesizer, player Player, sampleRate int) (*Speaker, error) {
	if synth == nil || player == nil {
		return nil, errors.New("speech requires a synthesizer and a player")
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("invalid speech sample rate %d", sampleRate)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Speaker{synth: synth, player: player, sampleRate: sampleRate, logger: logger}, nil
}

// Speak synthesizes text and plays it to completion.
func (s *Speaker) Speak(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	started := time.Now()
	samples, err := s.synth.Synthesize(ctx, text)
	if err != nil {
		return fmt.Errorf("synthesize: %w", err)
	}
	if len(samples) == 0 {
		return errors.New("synthesize: no audio produced")
	}
	synthesized := time.Since(started)

	if err := s.player.Play(ctx, samples, s.sampleRate); err != nil {
		return fmt.Errorf("play: %w", err)
	}

	s.logger.Debug("reply spoken",
		"text", text,
		"samples", len(samples),
		"synthesis_ms", synthesized.Milliseconds(),
		"total_ms", time.Since(started).Milliseconds(),
	)
	return nil
}
