package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rbright/suno/internal/audio"
	"github.com/rbright/suno/internal/config"
)

const dumpSeconds = 60

// dumpBuffer keeps the most recent recognizer-rate audio for debugging.
type dumpBuffer struct {
	mu      sync.Mutex
	rate    int
	limit   int
	samples []int16
}

func newDumpBuffer(rate int) *dumpBuffer {
	return &dumpBuffer{rate: rate, limit: rate * dumpSeconds}
}

func (d *dumpBuffer) append(samples []int16) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.samples = append(d.samples, samples...)
	if over := len(d.samples) - d.limit; over > 0 {
		d.samples = append(d.samples[:0], d.samples[over:]...)
	}
}

// flush writes buffered audio to a timestamped WAV and clears the buffer.
func (d *dumpBuffer) flush() (string, error) {
	d.mu.Lock()
	samples := d.samples
	d.samples = nil
	d.mu.Unlock()

	if len(samples) == 0 {
		return "", nil
	}

	file, err := createDumpFile(time.Now())
	if err != nil {
		return "", err
	}
	defer file.Close()

	if err := audio.WriteWAV(file, samples, d.rate); err != nil {
		return "", fmt.Errorf("write debug audio %q: %w", file.Name(), err)
	}
	return file.Name(), nil
}

// createDumpFile opens a fresh audio-<timestamp>.wav in the debug dir under
// the suno state directory.
func createDumpFile(now time.Time) (*os.File, error) {
	state, err := config.StateDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(state, "debug")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create debug dir: %w", err)
	}
	name := "audio-" + now.Format("20060102-150405.000") + ".wav"
	file, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open debug audio: %w", err)
	}
	return file, nil
}
