package speech

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeSynth struct {
	samples []int16
	err     error
	texts   []string
}

func (f *fakeSynth) Synthesize(_ context.Context, text string) ([]int16, error) {
	f.texts = append(f.texts, text)
	return f.samples, f.err
}

type fakePlayer struct {
	played [][]int16
	rate   int
	err    error
}

func (f *fakePlayer) Play(_ context.Context, samples []int16, sampleRate int) error {
	f.played = append(f.played, samples)
	f.rate = sampleRate
	return f.err
}

func TestSpeakerSynthesizesThenPlays(t *testing.T) {
	synth := &fakeSynth{samples: []int16{1, 2, 3}}
	player := &fakePlayer{}
	speaker, err := NewSpeaker(nil, synth, player, 22050)
	require.NoError(t, err)

	require.NoError(t, speaker.Speak(context.Background(), "  नमस्ते  "))
	require.Equal(t, []string{"नमस्ते"}, synth.texts)
	require.Equal(t, [][]int16{{1, 2, 3}}, player.played)
	require.Equal(t, 22050, player.rate)
}

func TestSpeakerSkipsBlankText(t *testing.T) {
	synth := &fakeSynth{}
	speaker, err := NewSpeaker(nil, synth, &fakePlayer{}, 22050)
	require.NoError(t, err)
	require.NoError(t, speaker.Speak(context.Background(), " "))
	require.Empty(t, synth.texts)
}

func TestSpeakerReportsFailures(t *testing.T) {
	speaker, err := NewSpeaker(nil, &fakeSynth{err: errors.New("no voice")}, &fakePlayer{}, 22050)
	require.NoError(t, err)
	err = speaker.Speak(context.Background(), "hello")
	require.ErrorContains(t, err, "synthesize: no voice")

	speaker, err = NewSpeaker(nil, &fakeSynth{}, &fakePlayer{}, 22050)
	require.NoError(t, err)
	require.ErrorContains(t, speaker.Speak(context.Background(), "hello"), "no audio produced")

	player := &fakePlayer{err: errors.New("sink gone")}
	speaker, err = NewSpeaker(nil, &fakeSynth{samples: []int16{1}}, player, 22050)
	require.NoError(t, err)
	require.ErrorContains(t, speaker.Speak(context.Background(), "hello"), "play: sink gone")
}

func TestNewSpeakerValidates(t *testing.T) {
	_, err := NewSpeaker(nil, nil, &fakePlayer{}, 22050)
	require.Error(t, err)
	_, err = NewSpeaker(nil, &fakeSynth{}, &fakePlayer{}, 0)
	require.Error(t, err)
}

func TestPiperDecodesRawOutput(t *testing.T) {
	piper, err := NewPiper([]string{"sh", "-c", `read line; test "$line" = "hello" && printf '\001\000\377\377'`})
	require.NoError(t, err)

	samples, err := piper.Synthesize(context.Background(), "hello")
	require.NoError(t, err)
	require.Equal(t, []int16{1, -1}, samples)
}

func TestPiperReportsCommandFailure(t *testing.T) {
	piper, err := NewPiper([]string{"sh", "-c", "echo missing voice >&2; exit 3"})
	require.NoError(t, err)

	_, err = piper.Synthesize(context.Background(), "hello")
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing voice")
}

func TestNewPiperRejectsEmptyCommand(t *testing.T) {
	_, err := NewPiper(nil)
	require.Error(t, err)
	_, err = NewPiper([]string{" "})
	require.Error(t, err)
}

func TestCommandPlayerReceivesWAVPath(t *testing.T) {
	player, err := NewCommandPlayer([]string{"sh", "-c", `test "$(head -c 4 "$0")" = "RIFF"`})
	require.NoError(t, err)
	require.NoError(t, player.Play(context.Background(), []int16{1, 2, 3}, 22050))
}

func TestCommandPlayerReportsFailure(t *testing.T) {
	player, err := NewCommandPlayer([]string{"sh", "-c", "echo no device >&2; exit 1"})
	require.NoError(t, err)
	err = player.Play(context.Background(), []int16{1}, 22050)
	require.Error(t, err)
	require.Contains(t, err.Error(), "no device")

	_, err = NewCommandPlayer(nil)
	require.Error(t, err)
}

func TestPulsePlayerFailsWhenPulseUnavailable(t *testing.T) {
	t.Setenv("PULSE_SERVER", "unix:/tmp/definitely-missing-pulse-server")
	err := PulsePlayer{}.Play(context.Background(), []int16{1}, 22050)
	require.Error(t, err)
}
