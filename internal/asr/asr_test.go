//go:build !vosk

package asr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenWithoutRecognizerSupport(t *testing.T) {
	require.False(t, Available)

	rec, err := Open(Config{ModelPath: "/opt/vosk-model-hi", SampleRate: 16000})
	require.Nil(t, rec)
	require.ErrorIs(t, err, ErrUnavailable)

	var stub Vosk
	_, err = stub.Accept([]int16{1})
	require.ErrorIs(t, err, ErrUnavailable)
	_, err = stub.Result()
	require.ErrorIs(t, err, ErrUnavailable)
	stub.Reset()
	stub.Close()
}
