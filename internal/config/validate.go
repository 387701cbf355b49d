package config

import (
	"fmt"
	"strings"
)

var supportedLocales = map[string]bool{"hi": true, "en": true}

// Validate enforces config invariants and returns non-fatal warnings.
func Validate(cfg Config) ([]Warning, error) {
	warnings := make([]Warning, 0)

	if cfg.Audio.CaptureRate <= 0 {
		return nil, fmt.Errorf("audio.capture_rate must be > 0")
	}
	if cfg.Audio.FrameSamples <= 0 {
		return nil, fmt.Errorf("audio.frame_samples must be > 0")
	}
	if cfg.Audio.QueueFrames <= 0 {
		return nil, fmt.Errorf("audio.queue_frames must be > 0")
	}
	if cfg.Recognizer.SampleRate <= 0 {
		return nil, fmt.Errorf("recognizer.sample_rate must be > 0")
	}
	if cfg.Recognizer.SampleRate > cfg.Audio.CaptureRate {
		warnings = append(warnings, Warning{Message: fmt.Sprintf(
			"recognizer.sample_rate %d exceeds audio.capture_rate %d; audio will be upsampled",
			cfg.Recognizer.SampleRate, cfg.Audio.CaptureRate)})
	}
	if strings.TrimSpace(cfg.Recognizer.ModelPath) == "" {
		return nil, fmt.Errorf("recognizer.model_path must not be empty")
	}
	if len(cfg.Speech.Command.Argv) == 0 {
		return nil, fmt.Errorf("speech.command must not be empty")
	}
	if cfg.Speech.SampleRate <= 0 {
		return nil, fmt.Errorf("speech.sample_rate must be > 0")
	}
	if cfg.Speech.Play.Raw != "" && len(cfg.Speech.Play.Argv) == 0 {
		return nil, fmt.Errorf("speech.play_command is configured but empty")
	}

	if cfg.Session.SilenceMS <= 0 {
		return nil, fmt.Errorf("session.silence_ms must be > 0")
	}
	if cfg.Session.InactivityMS <= cfg.Session.SilenceMS {
		return nil, fmt.Errorf("session.inactivity_ms must be greater than session.silence_ms")
	}
	if cfg.Session.PollMS <= 0 {
		return nil, fmt.Errorf("session.poll_ms must be > 0")
	}
	if cfg.Session.PollMS > cfg.Session.SilenceMS {
		warnings = append(warnings, Warning{Message: "session.poll_ms exceeds session.silence_ms; commits will lag"})
	}
	if cfg.Session.MaxSpeechFailures <= 0 {
		return nil, fmt.Errorf("session.max_speech_failures must be > 0")
	}

	if !supportedLocales[cfg.Assistant.Locale] {
		return nil, fmt.Errorf("assistant.locale must be one of: en, hi")
	}
	if strings.TrimSpace(cfg.Assistant.TeamName) == "" {
		return nil, fmt.Errorf("assistant.team_name must not be empty")
	}

	switch cfg.Profile.Backend {
	case ProfileJSON, ProfileSQLite:
	default:
		return nil, fmt.Errorf("profile.backend must be one of: json, sqlite")
	}
	if strings.TrimSpace(cfg.Profile.DefaultName) == "" {
		return nil, fmt.Errorf("profile.default_name must not be empty")
	}

	if cfg.Light.Enable {
		if strings.TrimSpace(cfg.Light.Chip) == "" {
			return nil, fmt.Errorf("light.chip must not be empty when light.enable=true")
		}
		if cfg.Light.Line < 0 {
			return nil, fmt.Errorf("light.line must be >= 0")
		}
	}

	switch cfg.RTC.Backend {
	case RTCSystem:
	case RTCDS1302:
		if strings.TrimSpace(cfg.RTC.Chip) == "" {
			return nil, fmt.Errorf("rtc.chip must not be empty when rtc.backend=ds1302")
		}
		if cfg.RTC.CLK < 0 || cfg.RTC.DAT < 0 || cfg.RTC.RST < 0 {
			return nil, fmt.Errorf("rtc.clk, rtc.dat, and rtc.rst must be >= 0")
		}
		if cfg.RTC.CLK == cfg.RTC.DAT || cfg.RTC.CLK == cfg.RTC.RST || cfg.RTC.DAT == cfg.RTC.RST {
			return nil, fmt.Errorf("rtc.clk, rtc.dat, and rtc.rst must be distinct lines")
		}
		if cfg.Light.Enable && cfg.Light.Chip == cfg.RTC.Chip &&
			(cfg.Light.Line == cfg.RTC.CLK || cfg.Light.Line == cfg.RTC.DAT || cfg.Light.Line == cfg.RTC.RST) {
			return nil, fmt.Errorf("light.line %d collides with an rtc line", cfg.Light.Line)
		}
	default:
		return nil, fmt.Errorf("rtc.backend must be one of: ds1302, system")
	}

	return warnings, nil
}
