package config

// Default returns the canonical runtime configuration used when no file is present.
func Default() Config {
	speech := "piper --model ~/.local/share/suno/voices/hi_IN-priyamvada-medium.onnx --output_raw"

	return Config{
		Audio: AudioConfig{
			Input:        "default",
			Fallback:     "default",
			CaptureRate:  48000,
			FrameSamples: 19200,
			QueueFrames:  16,
		},
		Recognizer: RecognizerConfig{
			ModelPath:  "~/.local/share/suno/models/vosk-model-small-hi-0.22",
			SampleRate: 16000,
		},
		Speech: SpeechConfig{
			Command:    CommandConfig{Raw: speech, Argv: mustParseArgv(speech)},
			SampleRate: 22050,
		},
		Session: SessionConfig{
			SilenceMS:         1500,
			InactivityMS:      30000,
			PollMS:            100,
			MaxSpeechFailures: 3,
		},
		Assistant: AssistantConfig{
			Locale:   "hi",
			TeamName: "Idea Igniters",
		},
		Profile: ProfileConfig{
			Backend:     ProfileJSON,
			DefaultName: "Lakshman",
		},
		Light: LightConfig{
			Enable: true,
			Chip:   "gpiochip0",
			Line:   17,
		},
		RTC: RTCConfig{
			Backend: RTCDS1302,
			Chip:    "gpiochip0",
			CLK:     11,
			DAT:     10,
			RST:     8,
		},
	}
}
