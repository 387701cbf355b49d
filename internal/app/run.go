package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/rbright/suno/internal/actuator"
	"github.com/rbright/suno/internal/asr"
	"github.com/rbright/suno/internal/audio"
	"github.com/rbright/suno/internal/config"
	"github.com/rbright/suno/internal/ipc"
	"github.com/rbright/suno/internal/locale"
	"github.com/rbright/suno/internal/pipeline"
	"github.com/rbright/suno/internal/profile"
	"github.com/rbright/suno/internal/rtc"
	"github.com/rbright/suno/internal/session"
	"github.com/rbright/suno/internal/speech"
	"github.com/rbright/suno/internal/sysinfo"
)

// assistant is the assembled runtime for one `run` invocation. closers run
// in reverse order on shutdown.
type assistant struct {
	controller *session.Controller
	pipeline   *pipeline.Pipeline
	capture    *audio.Capture
	queue      *audio.FrameQueue
	closers    []func() error
}

func (a *assistant) close(logger *slog.Logger) {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			logger.Warn("shutdown step failed", "error", err)
		}
	}
	a.closers = nil
}

func (r Runner) commandRun(ctx context.Context, cfg config.Config, logger *slog.Logger) int {
	socketPath := ipc.RuntimeSocketPath()
	listener, err := ipc.Acquire(ctx, socketPath, 180*time.Millisecond)
	if err != nil {
		return r.fail(exitError, "%v", err)
	}
	defer func() {
		_ = listener.Close()
		_ = os.Remove(socketPath)
	}()

	a := &assistant{}
	defer a.close(logger)
	if err := a.assemble(ctx, cfg, logger); err != nil {
		logger.Error("assistant startup failed", "error", err.Error())
		return r.fail(exitError, "%v", err)
	}

	serverCtx, serverCancel := context.WithCancel(ctx)
	defer serverCancel()

	serverErrCh := make(chan error, 1)
	go func() {
		serverErrCh <- ipc.Serve(serverCtx, listener, a.controller)
	}()

	runErr := a.controller.Run(ctx)
	serverCancel()
	serverErr := <-serverErrCh

	if err := a.capture.Stop(); err != nil {
		logger.Warn("stop capture failed", "error", err)
	}
	logRunStats(logger, a)

	if serverErr != nil {
		return r.fail(exitError, "ipc server failed: %v", serverErr)
	}
	if runErr != nil {
		logger.Error("assistant stopped", "error", runErr.Error())
		return r.fail(exitError, "%v", runErr)
	}
	logger.Info("assistant stopped")
	return exitOK
}

// assemble opens every collaborator. Startup stops at the first failure;
// whatever was already opened is released by close.
func (a *assistant) assemble(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	pack, err := locale.Lookup(cfg.Assistant.Locale)
	if err != nil {
		return err
	}

	store, err := openProfile(cfg.Profile)
	if err != nil {
		return err
	}
	if closer, ok := store.(interface{ Close() error }); ok {
		a.closers = append(a.closers, closer.Close)
	}
	userName, err := profile.LoadOrDefault(store, cfg.Profile.DefaultName)
	if err != nil {
		logger.Warn("load profile failed; using default name", "error", err, "name", userName)
	}

	light, err := openLight(cfg.Light)
	if err != nil {
		return err
	}
	if closer, ok := light.(interface{ Close() error }); ok {
		a.closers = append(a.closers, closer.Close)
	}

	clock, closeClock, err := openClock(cfg.RTC)
	if err != nil {
		return err
	}
	a.closers = append(a.closers, closeClock)

	rec, err := asr.Open(asr.Config{
		ModelPath:  config.ExpandUserPath(cfg.Recognizer.ModelPath),
		SampleRate: cfg.Recognizer.SampleRate,
	})
	if err != nil {
		return fmt.Errorf("open recognizer: %w", err)
	}
	a.closers = append(a.closers, func() error { rec.Close(); return nil })

	speaker, err := newSpeaker(cfg.Speech, logger)
	if err != nil {
		return err
	}

	selection, err := audio.SelectDevice(ctx, cfg.Audio.Input, cfg.Audio.Fallback)
	if err != nil {
		return fmt.Errorf("select input device: %w", err)
	}
	if selection.Warning != "" {
		logger.Warn("audio device fallback", "warning", selection.Warning)
	}

	a.queue = audio.NewFrameQueue(cfg.Audio.QueueFrames)
	gate := pipeline.NewGate(a.queue, speaker, logger)
	a.pipeline, err = pipeline.New(logger, a.queue, gate, rec, pipeline.Options{
		CaptureRate:    cfg.Audio.CaptureRate,
		RecognizerRate: cfg.Recognizer.SampleRate,
		DumpAudio:      cfg.Debug.EnableAudioDump,
	})
	if err != nil {
		return err
	}

	a.capture, err = audio.StartCapture(ctx, selection.Device, a.queue, audio.CaptureOptions{
		SampleRate:   cfg.Audio.CaptureRate,
		FrameSamples: cfg.Audio.FrameSamples,
	})
	if err != nil {
		return fmt.Errorf("start capture: %w", err)
	}
	a.closers = append(a.closers, a.capture.Close)
	logger.Info("capture started", "device", selection.Device.Label())

	a.controller = session.NewController(logger, session.Options{
		Pack:              pack,
		WakeWords:         cfg.Session.WakeWords,
		TeamName:          cfg.Assistant.TeamName,
		UserName:          userName,
		Silence:           cfg.Session.Silence(),
		Inactivity:        cfg.Session.Inactivity(),
		Poll:              cfg.Session.Poll(),
		MaxSpeechFailures: cfg.Session.MaxSpeechFailures,
	}, session.Dependencies{
		Source:  a.pipeline,
		Speaker: gate,
		Clock:   clock,
		Light:   light,
		Profile: store,
		Probe:   sysinfo.NewProbe(),
	})
	return nil
}

func openProfile(cfg config.ProfileConfig) (profile.Store, error) {
	path, err := cfg.ResolvedPath()
	if err != nil {
		return nil, err
	}
	switch cfg.Backend {
	case config.ProfileSQLite:
		store, err := profile.OpenSQLite(path)
		if err != nil {
			return nil, fmt.Errorf("open profile: %w", err)
		}
		return store, nil
	default:
		return profile.NewFileStore(path), nil
	}
}

func openLight(cfg config.LightConfig) (actuator.Light, error) {
	if !cfg.Enable {
		return &actuator.NopLight{}, nil
	}
	light, err := actuator.OpenGPIOLight(cfg.Chip, cfg.Line)
	if err != nil {
		return nil, fmt.Errorf("open light: %w", err)
	}
	return light, nil
}

// openClock returns the configured clock and its release func.
func openClock(cfg config.RTCConfig) (rtc.Clock, func() error, error) {
	if cfg.Backend != config.RTCDS1302 {
		return rtc.NewSystemClock(), func() error { return nil }, nil
	}
	chip, err := rtc.OpenDS1302(rtc.GPIOConfig{Chip: cfg.Chip, CLK: cfg.CLK, DAT: cfg.DAT, RST: cfg.RST})
	if err != nil {
		return nil, nil, fmt.Errorf("open rtc: %w", err)
	}
	return chip, chip.Close, nil
}

func newSpeaker(cfg config.SpeechConfig, logger *slog.Logger) (*speech.Speaker, error) {
	piper, err := speech.NewPiper(cfg.Command.ExpandedArgv())
	if err != nil {
		return nil, err
	}

	var player speech.Player = speech.PulsePlayer{}
	if len(cfg.Play.Argv) > 0 {
		cmd, err := speech.NewCommandPlayer(cfg.Play.ExpandedArgv())
		if err != nil {
			return nil, err
		}
		player = cmd
	}
	return speech.NewSpeaker(logger, piper, player, cfg.SampleRate)
}

func logRunStats(logger *slog.Logger, a *assistant) {
	if logger == nil || a.pipeline == nil {
		return
	}
	stats := a.pipeline.Stats()
	fields := []any{
		"frames", stats.Frames,
		"gate_dropped", stats.GateDropped,
		"recognized", stats.Recognized,
		"recognizer_errors", stats.Errors,
		"queue_dropped", a.queue.Dropped(),
	}
	if a.capture != nil {
		fields = append(fields,
			"frames_captured", a.capture.FramesCaptured(),
			"bytes_captured", a.capture.BytesCaptured(),
			"device", a.capture.Device().Label(),
		)
	}
	logger.Info("run stats", fields...)
}
