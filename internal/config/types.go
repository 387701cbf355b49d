// Package config resolves, parses, validates, and defaults suno configuration.
package config

import "time"

// Config is the fully materialized runtime configuration used by suno.
type Config struct {
	Audio      AudioConfig
	Recognizer RecognizerConfig
	Speech     SpeechConfig
	Session    SessionConfig
	Assistant  AssistantConfig
	Profile    ProfileConfig
	Light      LightConfig
	RTC        RTCConfig
	Debug      DebugConfig
}

// AudioConfig controls input-source selection and capture framing.
type AudioConfig struct {
	Input        string
	Fallback     string
	CaptureRate  int
	FrameSamples int
	QueueFrames  int
}

// RecognizerConfig locates the offline recognizer model.
type RecognizerConfig struct {
	ModelPath  string
	SampleRate int
}

// SpeechConfig controls reply synthesis and playback.
type SpeechConfig struct {
	Command    CommandConfig
	SampleRate int
	Play       CommandConfig
}

// SessionConfig controls wake words and dialog timers.
type SessionConfig struct {
	WakeWords         []string
	SilenceMS         int
	InactivityMS      int
	PollMS            int
	MaxSpeechFailures int
}

// Silence is the pause after the last utterance that commits a turn.
func (s SessionConfig) Silence() time.Duration {
	return time.Duration(s.SilenceMS) * time.Millisecond
}

// Inactivity is the idle period after which an awake session sleeps.
func (s SessionConfig) Inactivity() time.Duration {
	return time.Duration(s.InactivityMS) * time.Millisecond
}

// Poll bounds how long the loop waits for a frame before checking timers.
func (s SessionConfig) Poll() time.Duration {
	return time.Duration(s.PollMS) * time.Millisecond
}

// AssistantConfig selects the language pack and persona details.
type AssistantConfig struct {
	Locale   string
	TeamName string
}

// ProfileConfig selects where the user's name is persisted.
type ProfileConfig struct {
	Backend     string
	Path        string
	DefaultName string
}

// LightConfig maps the light actuator to a GPIO line.
type LightConfig struct {
	Enable bool
	Chip   string
	Line   int
}

// RTCConfig selects the time source and DS1302 wiring.
type RTCConfig struct {
	Backend string
	Chip    string
	CLK     int
	DAT     int
	RST     int
}

// CommandConfig stores a raw command string and its parsed argv form.
type CommandConfig struct {
	Raw  string
	Argv []string
}

// DebugConfig controls optional debug artifact output.
type DebugConfig struct {
	EnableAudioDump bool
}

// Warning is a non-fatal parse/validation message.
type Warning struct {
	Line    int
	Message string
}

// Profile and time-source backends.
const (
	ProfileJSON   = "json"
	ProfileSQLite = "sqlite"

	RTCDS1302 = "ds1302"
	RTCSystem = "system"
)
