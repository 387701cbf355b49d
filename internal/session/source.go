package session

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrPipelineUnavailable indicates no utterance source is wired.
	ErrPipelineUnavailable = errors.New("audio ingestion pipeline not configured")
	// ErrSourceClosed indicates the utterance source stopped producing.
	ErrSourceClosed = errors.New("utterance source closed")
)

// Utterance is one finalized, normalized recognizer result.
type Utterance struct {
	Text string
	At   time.Time
}

// Source yields finalized utterances.
type Source interface {
	// Next waits up to wait for an utterance. ok is false on timeout.
	Next(ctx context.Context, wait time.Duration) (u Utterance, ok bool, err error)
	// Reset clears recognizer state after a committed turn.
	Reset()
}

// Speaker synthesizes and plays one response, blocking until playback ends.
type Speaker interface {
	Speak(context.Context, string) error
}

// SpeakerFunc adapts a function to the Speaker interface.
type SpeakerFunc func(context.Context, string) error

func (f SpeakerFunc) Speak(ctx context.Context, text string) error {
	return f(ctx, text)
}

// IsPipelineUnavailable reports whether an error represents missing pipeline wiring.
func IsPipelineUnavailable(err error) bool {
	return errors.Is(err, ErrPipelineUnavailable)
}
