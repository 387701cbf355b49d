// Package asr adapts the offline speech recognizer to the ingestion pipeline.
package asr

import "errors"

// ErrUnavailable reports that the binary was built without recognizer support.
var ErrUnavailable = errors.New("speech recognizer unavailable: rebuild with -tags vosk")

// Config selects the recognizer model and its input sample rate.
type Config struct {
	ModelPath  string
	SampleRate int
}
