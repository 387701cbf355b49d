//go:build vosk

package asr

import (
	"errors"
	"fmt"
	"sync"

	vosk "github.com/alphacep/vosk-api/go"

	"github.com/rbright/suno/internal/audio"
	"github.com/rbright/suno/internal/transcript"
)

// Available reports whether this build links the recognizer.
const Available = true

// Vosk is a streaming recognizer over one loaded model.
type Vosk struct {
	mu     sync.Mutex
	model  *vosk.VoskModel
	rec    *vosk.VoskRecognizer
	closed bool
}

// Open loads the model directory and creates a recognizer at cfg.SampleRate.
func Open(cfg Config) (*Vosk, error) {
	if cfg.ModelPath == "" {
		return nil, errors.New("recognizer model path is empty")
	}
	if cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("invalid recognizer sample rate %d", cfg.SampleRate)
	}

	vosk.SetLogLevel(-1)
	model, err := vosk.NewModel(cfg.ModelPath)
	if err != nil {
		return nil, fmt.Errorf("load recognizer model %q: %w", cfg.ModelPath, err)
	}
	rec, err := vosk.NewRecognizer(model, float64(cfg.SampleRate))
	if err != nil {
		model.Free()
		return nil, fmt.Errorf("create recognizer: %w", err)
	}
	return &Vosk{model: model, rec: rec}, nil
}

// Accept feeds one frame and reports whether a final result is ready.
func (v *Vosk) Accept(samples []int16) (bool, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return false, errors.New("recognizer closed")
	}

	switch v.rec.AcceptWaveform(audio.PCM16LE(samples)) {
	case 1:
		return true, nil
	case 0:
		return false, nil
	default:
		return false, errors.New("recognizer rejected waveform")
	}
}

// Result returns the normalized text of the last final result.
func (v *Vosk) Result() (string, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return "", errors.New("recognizer closed")
	}
	return transcript.ParseResult(v.rec.Result())
}

// Reset discards any partially recognized audio.
func (v *Vosk) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.closed {
		v.rec.Reset()
	}
}

// Close releases the recognizer and model.
func (v *Vosk) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return
	}
	v.closed = true
	v.rec.Free()
	v.model.Free()
}
