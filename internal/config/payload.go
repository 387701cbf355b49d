package config

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk shape shared by the JSONC and YAML formats.
// Pointer fields distinguish "unset" from zero values.
type fileConfig struct {
	Audio      *fileAudio      `json:"audio" yaml:"audio"`
	Recognizer *fileRecognizer `json:"recognizer" yaml:"recognizer"`
	Speech     *fileSpeech     `json:"speech" yaml:"speech"`
	Session    *fileSession    `json:"session" yaml:"session"`
	Assistant  *fileAssistant  `json:"assistant" yaml:"assistant"`
	Profile    *fileProfile    `json:"profile" yaml:"profile"`
	Light      *fileLight      `json:"light" yaml:"light"`
	RTC        *fileRTC        `json:"rtc" yaml:"rtc"`
	Debug      *fileDebug      `json:"debug" yaml:"debug"`
}

type fileAudio struct {
	Input        *string `json:"input" yaml:"input"`
	Fallback     *string `json:"fallback" yaml:"fallback"`
	CaptureRate  *int    `json:"capture_rate" yaml:"capture_rate"`
	FrameSamples *int    `json:"frame_samples" yaml:"frame_samples"`
	QueueFrames  *int    `json:"queue_frames" yaml:"queue_frames"`
}

type fileRecognizer struct {
	ModelPath  *string `json:"model_path" yaml:"model_path"`
	SampleRate *int    `json:"sample_rate" yaml:"sample_rate"`
}

type fileSpeech struct {
	Command     *string `json:"command" yaml:"command"`
	SampleRate  *int    `json:"sample_rate" yaml:"sample_rate"`
	PlayCommand *string `json:"play_command" yaml:"play_command"`
}

type fileSession struct {
	WakeWords         *stringList `json:"wake_words" yaml:"wake_words"`
	SilenceMS         *int        `json:"silence_ms" yaml:"silence_ms"`
	InactivityMS      *int        `json:"inactivity_ms" yaml:"inactivity_ms"`
	PollMS            *int        `json:"poll_ms" yaml:"poll_ms"`
	MaxSpeechFailures *int        `json:"max_speech_failures" yaml:"max_speech_failures"`
}

type fileAssistant struct {
	Locale   *string `json:"locale" yaml:"locale"`
	TeamName *string `json:"team_name" yaml:"team_name"`
}

type fileProfile struct {
	Backend     *string `json:"backend" yaml:"backend"`
	Path        *string `json:"path" yaml:"path"`
	DefaultName *string `json:"default_name" yaml:"default_name"`
}

type fileLight struct {
	Enable *bool   `json:"enable" yaml:"enable"`
	Chip   *string `json:"chip" yaml:"chip"`
	Line   *int    `json:"line" yaml:"line"`
}

type fileRTC struct {
	Backend *string `json:"backend" yaml:"backend"`
	Chip    *string `json:"chip" yaml:"chip"`
	CLK     *int    `json:"clk" yaml:"clk"`
	DAT     *int    `json:"dat" yaml:"dat"`
	RST     *int    `json:"rst" yaml:"rst"`
}

type fileDebug struct {
	AudioDump *bool `json:"audio_dump" yaml:"audio_dump"`
}

// stringList accepts either a list or a comma-delimited string.
type stringList []string

func (l *stringList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*l = list
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*l = splitList(single)
		return nil
	}

	return fmt.Errorf("expected string array or comma-delimited string")
}

func (l *stringList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return err
		}
		*l = list
		return nil
	case yaml.ScalarNode:
		*l = splitList(node.Value)
		return nil
	default:
		return fmt.Errorf("line %d: expected string list or comma-delimited string", node.Line)
	}
}

func splitList(single string) []string {
	parts := strings.Split(single, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}

func (payload fileConfig) applyTo(cfg *Config) ([]Warning, error) {
	warnings := make([]Warning, 0)

	if a := payload.Audio; a != nil {
		setString(&cfg.Audio.Input, a.Input)
		setString(&cfg.Audio.Fallback, a.Fallback)
		setInt(&cfg.Audio.CaptureRate, a.CaptureRate)
		setInt(&cfg.Audio.FrameSamples, a.FrameSamples)
		setInt(&cfg.Audio.QueueFrames, a.QueueFrames)
	}

	if r := payload.Recognizer; r != nil {
		setString(&cfg.Recognizer.ModelPath, r.ModelPath)
		setInt(&cfg.Recognizer.SampleRate, r.SampleRate)
	}

	if s := payload.Speech; s != nil {
		if s.Command != nil {
			command, err := parseCommand(*s.Command)
			if err != nil {
				return nil, fmt.Errorf("invalid speech.command: %w", err)
			}
			cfg.Speech.Command = command
		}
		setInt(&cfg.Speech.SampleRate, s.SampleRate)
		if s.PlayCommand != nil {
			command, err := parseCommand(*s.PlayCommand)
			if err != nil {
				return nil, fmt.Errorf("invalid speech.play_command: %w", err)
			}
			cfg.Speech.Play = command
		}
	}

	if s := payload.Session; s != nil {
		if s.WakeWords != nil {
			cfg.Session.WakeWords = cfg.Session.WakeWords[:0]
			for _, word := range *s.WakeWords {
				word = strings.TrimSpace(word)
				if word == "" {
					continue
				}
				cfg.Session.WakeWords = append(cfg.Session.WakeWords, word)
			}
		}
		setInt(&cfg.Session.SilenceMS, s.SilenceMS)
		setInt(&cfg.Session.InactivityMS, s.InactivityMS)
		setInt(&cfg.Session.PollMS, s.PollMS)
		setInt(&cfg.Session.MaxSpeechFailures, s.MaxSpeechFailures)
	}

	if a := payload.Assistant; a != nil {
		if a.Locale != nil {
			cfg.Assistant.Locale = strings.ToLower(strings.TrimSpace(*a.Locale))
		}
		setString(&cfg.Assistant.TeamName, a.TeamName)
	}

	if p := payload.Profile; p != nil {
		if p.Backend != nil {
			cfg.Profile.Backend = strings.ToLower(strings.TrimSpace(*p.Backend))
		}
		setString(&cfg.Profile.Path, p.Path)
		setString(&cfg.Profile.DefaultName, p.DefaultName)
	}

	if l := payload.Light; l != nil {
		if l.Enable != nil {
			cfg.Light.Enable = *l.Enable
		}
		setString(&cfg.Light.Chip, l.Chip)
		setInt(&cfg.Light.Line, l.Line)
	}

	if r := payload.RTC; r != nil {
		if r.Backend != nil {
			cfg.RTC.Backend = strings.ToLower(strings.TrimSpace(*r.Backend))
		}
		setString(&cfg.RTC.Chip, r.Chip)
		setInt(&cfg.RTC.CLK, r.CLK)
		setInt(&cfg.RTC.DAT, r.DAT)
		setInt(&cfg.RTC.RST, r.RST)
	}

	if payload.Debug != nil && payload.Debug.AudioDump != nil {
		cfg.Debug.EnableAudioDump = *payload.Debug.AudioDump
	}

	return warnings, nil
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func parseCommand(raw string) (CommandConfig, error) {
	argv, err := parseArgv(raw)
	if err != nil {
		return CommandConfig{}, err
	}
	return CommandConfig{Raw: raw, Argv: argv}, nil
}
