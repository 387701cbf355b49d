//go:build !vosk

package asr

// Available reports whether this build links the recognizer.
const Available = false

// Vosk is unavailable in builds without the vosk tag.
type Vosk struct{}

// Open always fails with ErrUnavailable.
func Open(Config) (*Vosk, error) {
	return nil, ErrUnavailable
}

func (*Vosk) Accept([]int16) (bool, error) { return false, ErrUnavailable }
func (*Vosk) Result() (string, error) { return "", ErrUnavailable }
func (*Vosk) Reset() {}
func (*Vosk) Close() {}
