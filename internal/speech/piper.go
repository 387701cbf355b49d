package speech

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/rbright/suno/internal/audio"
)

// Piper runs the piper CLI with raw output: text on stdin, s16le PCM on stdout.
type Piper struct {
	argv []string
}

// NewPiper validates the command argv, e.g.
// ["piper", "--model", "hi_IN-voice.onnx", "--output_raw"].
func NewPiper(argv []string) (*Piper, error) {
	if len(argv) == 0 || strings.TrimSpace(argv[0]) == "" {
		return nil, errors.New("speech command is empty")
	}
	return &Piper{argv: append([]string(nil), argv...)}, nil
}

// Synthesize renders text. It runs to completion; replies are short and the
// device has no use for a half-spoken sentence.
func (p *Piper) Synthesize(_ context.Context, text string) ([]int16, error) {
	cmd := exec.Command(p.argv[0], p.argv[1:]...)
	cmd.Stdin = strings.NewReader(text + "\n")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail != "" {
			return nil, fmt.Errorf("run %s: %w: %s", p.argv[0], err, detail)
		}
		return nil, fmt.Errorf("run %s: %w", p.argv[0], err)
	}
	return audio.DecodePCM16LE(stdout.Bytes()), nil
}
