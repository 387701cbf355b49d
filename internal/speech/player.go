package speech

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/jfreymuth/pulse"

	"github.com/rbright/suno/internal/audio"
)

// PulsePlayer plays PCM through the default Pulse sink.
type PulsePlayer struct{}

// Play streams samples and blocks until the sink drains.
func (PulsePlayer) Play(_ context.Context, samples []int16, sampleRate int) error {
	client, err := pulse.NewClient(
		pulse.ClientApplicationName("suno"),
		pulse.ClientApplicationIconName("audio-speakers"),
	)
	if err != nil {
		return fmt.Errorf("connect pulse server: %w", err)
	}
	defer client.Close()

	stream, err := client.NewPlayback(
		pcmReader(samples),
		pulse.PlaybackMono,
		pulse.PlaybackSampleRate(sampleRate),
		pulse.PlaybackLatency(0.1),
		pulse.PlaybackMediaName("suno reply"),
	)
	if err != nil {
		return fmt.Errorf("create pulse playback stream: %w", err)
	}
	defer stream.Close()

	stream.Start()
	stream.Drain()
	if err := stream.Error(); err != nil {
		return fmt.Errorf("play reply stream: %w", err)
	}
	return nil
}

// pcmReader feeds samples to Pulse and signals EndOfData after the last one.
func pcmReader(samples []int16) pulse.Reader {
	cursor := 0
	return pulse.Int16Reader(func(buf []int16) (int, error) {
		if cursor >= len(samples) {
			return 0, pulse.EndOfData
		}

		n := copy(buf, samples[cursor:])
		cursor += n
		if cursor >= len(samples) {
			return n, pulse.EndOfData
		}
		return n, nil
	})
}

// CommandPlayer writes a temporary WAV and hands its path to an external
// player such as `aplay -q`.
type CommandPlayer struct {
	argv []string
}

// NewCommandPlayer validates the player argv; the WAV path is appended.
func NewCommandPlayer(argv []string) (*CommandPlayer, error) {
	if len(argv) == 0 || strings.TrimSpace(argv[0]) == "" {
		return nil, errors.New("play command is empty")
	}
	return &CommandPlayer{argv: append([]string(nil), argv...)}, nil
}

// Play blocks until the external player exits.
func (p *CommandPlayer) Play(_ context.Context, samples []int16, sampleRate int) error {
	file, err := os.CreateTemp("", "suno-reply-*.wav")
	if err != nil {
		return fmt.Errorf("create reply wav: %w", err)
	}
	path := file.Name()
	defer os.Remove(path)

	if err := audio.WriteWAV(file, samples, sampleRate); err != nil {
		_ = file.Close()
		return fmt.Errorf("write reply wav: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close reply wav: %w", err)
	}

	args := append(append([]string(nil), p.argv[1:]...), path)
	output, err := exec.Command(p.argv[0], args...).CombinedOutput()
	if err != nil {
		detail := strings.TrimSpace(string(output))
		if detail != "" {
			return fmt.Errorf("run %s: %w: %s", p.argv[0], err, detail)
		}
		return fmt.Errorf("run %s: %w", p.argv[0], err)
	}
	return nil
}
