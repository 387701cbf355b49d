package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseArgv(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr string
	}{
		{name: "blank", input: "  \t ", want: nil},
		{name: "comment", input: "# piper --output_raw", want: nil},
		{name: "player", input: "aplay -q", want: []string{"aplay", "-q"}},
		{
			name:  "piper with voice",
			input: "piper --model ~/.local/share/suno/voices/hi_IN-priyamvada-medium.onnx --output_raw",
			want:  []string{"piper", "--model", "~/.local/share/suno/voices/hi_IN-priyamvada-medium.onnx", "--output_raw"},
		},
		{name: "double quoted path", input: `piper --model "/srv/my voices/hi.onnx"`, want: []string{"piper", "--model", "/srv/my voices/hi.onnx"}},
		{name: "single quoted keeps double", input: `sh -c 'aplay -q "$1"'`, want: []string{"sh", "-c", `aplay -q "$1"`}},
		{name: "escaped space", input: `aplay /tmp/reply\ 1.wav`, want: []string{"aplay", "/tmp/reply 1.wav"}},
		{name: "adjacent quotes join", input: `pw-play --target="usb speaker"`, want: []string{"pw-play", "--target=usb speaker"}},
		{name: "empty quotes vanish", input: `aplay "" -q`, want: []string{"aplay", "-q"}},
		{name: "devanagari", input: "echo सुनो", want: []string{"echo", "सुनो"}},
		{name: "unterminated quote", input: `piper --model "voice`, wantErr: "unterminated quote"},
		{name: "unterminated escape", input: `aplay reply\`, wantErr: "unterminated escape"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseArgv(tc.input)
			if tc.wantErr != "" {
				require.Error(t, err)
				require.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestMustParseArgvPanicsOnInvalidInput(t *testing.T) {
	require.Panics(t, func() {
		_ = mustParseArgv(`piper "unterminated`)
	})
	require.Equal(t, []string{"aplay", "-q"}, mustParseArgv("aplay -q"))
}
