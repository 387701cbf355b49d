// Package session runs the wake/command dialog loop and its sub-dialogues.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/rbright/suno/internal/fsm"
	"github.com/rbright/suno/internal/intent"
	"github.com/rbright/suno/internal/ipc"
	"github.com/rbright/suno/internal/locale"
	"github.com/rbright/suno/internal/rtc"
	"github.com/rbright/suno/internal/sysinfo"
)

type action int

const (
	actionSleep action = iota + 1
)

// Light is the actuator switched by LIGHT_ON and LIGHT_OFF.
type Light interface {
	Set(on bool) error
}

// NameSaver persists the user name.
type NameSaver interface {
	SaveName(string) error
}

// Probe answers NETWORK_STATUS and SYSTEM_STATUS.
type Probe interface {
	Network() (sysinfo.Network, error)
	System() (sysinfo.System, error)
}

// Options are the dialog parameters.
type Options struct {
	Pack      locale.Pack
	WakeWords []string
	TeamName  string
	UserName  string

	Silence           time.Duration
	Inactivity        time.Duration
	Poll              time.Duration
	MaxSpeechFailures int
}

// Dependencies are the collaborators. Nil entries get no-op fallbacks.
type Dependencies struct {
	Source  Source
	Speaker Speaker
	Clock   rtc.Clock
	Light   Light
	Profile NameSaver
	Probe   Probe

	Now   func() time.Time
	Intn  func(n int) int
	NewID func() string
}

// Controller owns session state. All state mutation happens on the Run loop.
type Controller struct {
	logger     *slog.Logger
	opts       Options
	pack       locale.Pack
	classifier *intent.Classifier
	wakeWords  []string

	source  Source
	speaker Speaker
	clock   rtc.Clock
	light   Light
	profile NameSaver
	probe   Probe
	now     func() time.Time
	intn    func(int) int
	newID   func() string

	state    State
	userName string

	snapshot atomic.Pointer[Snapshot]
	actions  chan action
}

type noopSpeaker struct{}

func (noopSpeaker) Speak(context.Context, string) error { return nil }

type noopLight struct{}

func (noopLight) Set(bool) error { return nil }

type noopSaver struct{}

func (noopSaver) SaveName(string) error { return nil }

type noopProbe struct{}

func (noopProbe) Network() (sysinfo.Network, error) {
	return sysinfo.Network{}, errors.New("network probe not configured")
}

func (noopProbe) System() (sysinfo.System, error) {
	return sysinfo.System{}, errors.New("system probe not configured")
}

type noClock struct{}

func (noClock) Now() (rtc.Reading, error) {
	return rtc.Reading{}, errors.New("clock not configured")
}

// NewController constructs a controller with safe default fallbacks.
func NewController(logger *slog.Logger, opts Options, deps Dependencies) *Controller {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if deps.Speaker == nil {
		deps.Speaker = noopSpeaker{}
	}
	if deps.Clock == nil {
		deps.Clock = noClock{}
	}
	if deps.Light == nil {
		deps.Light = noopLight{}
	}
	if deps.Profile == nil {
		deps.Profile = noopSaver{}
	}
	if deps.Probe == nil {
		deps.Probe = noopProbe{}
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Intn == nil {
		deps.Intn = rand.IntN
	}
	if deps.NewID == nil {
		deps.NewID = func() string { return uuid.NewString() }
	}
	if opts.Poll <= 0 {
		opts.Poll = 100 * time.Millisecond
	}

	wake := opts.WakeWords
	if len(wake) == 0 {
		wake = opts.Pack.WakeWords
	}

	c := &Controller{
		logger:     logger,
		opts:       opts,
		pack:       opts.Pack,
		classifier: opts.Pack.Classifier(),
		wakeWords:  wake,
		source:     deps.Source,
		speaker:    deps.Speaker,
		clock:      deps.Clock,
		light:      deps.Light,
		profile:    deps.Profile,
		probe:      deps.Probe,
		now:        deps.Now,
		intn:       deps.Intn,
		newID:      deps.NewID,
		state:      newState(),
		userName:   opts.UserName,
		actions:    make(chan action, 1),
	}
	c.publish()
	return c
}

// Snapshot returns the most recently published state.
func (c *Controller) Snapshot() Snapshot {
	return *c.snapshot.Load()
}

// Run drives the dialog loop until ctx is cancelled or the source fails.
// It returns nil on cancellation.
func (c *Controller) Run(ctx context.Context) error {
	if c.source == nil {
		return ErrPipelineUnavailable
	}

	c.logger.Info("assistant listening", "locale", c.pack.Code, "wake_words", c.wakeWords)
	for {
		if ctx.Err() != nil {
			return nil
		}

		c.drainActions()

		utt, ok, err := c.source.Next(ctx, c.opts.Poll)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("next utterance: %w", err)
		}
		if ok {
			c.Hear(ctx, utt)
		}
		c.Tick(ctx)
		c.publish()
	}
}

// Hear applies one finalized utterance.
func (c *Controller) Hear(ctx context.Context, utt Utterance) {
	st := &c.state
	at := utt.At
	if at.IsZero() {
		at = c.now()
	}

	if !st.Awake() {
		if !intent.ContainsAny(utt.Text, c.wakeWords) {
			return
		}
		c.wake(ctx, st, at)
		return
	}

	st.Pending = utt.Text
	st.LastSpeech = at
	st.LastInteraction = at
	c.logger.Debug("utterance buffered", "session_id", st.SessionID, "mode", st.Mode, "text", utt.Text)
}

// Tick evaluates the silence, inactivity, and speech-failure conditions.
func (c *Controller) Tick(ctx context.Context) {
	st := &c.state
	if !st.Awake() {
		return
	}

	if !st.LastSpeech.IsZero() && c.now().Sub(st.LastSpeech) > c.opts.Silence {
		c.commit(ctx, st)
	}

	if st.Awake() && !st.LastInteraction.IsZero() && c.now().Sub(st.LastInteraction) > c.opts.Inactivity {
		c.sleep(st, fsm.EventInactivity, "inactivity")
	}

	if st.Awake() && c.opts.MaxSpeechFailures > 0 && st.SpeechFailures >= c.opts.MaxSpeechFailures {
		c.sleep(st, fsm.EventFailures, "speech_failures")
	}
}

func (c *Controller) wake(ctx context.Context, st *State, at time.Time) {
	next, err := fsm.Transition(st.Lifecycle, fsm.EventWake)
	if err != nil {
		c.logger.Error("wake transition failed", "error", err)
		return
	}
	st.Lifecycle = next
	st.SessionID = c.newID()
	st.LastInteraction = at
	st.SpeechFailures = 0
	c.logger.Info("session awake", "session_id", st.SessionID)

	greeting := c.pack.Phrases.GreetGeneric
	if reading, err := c.clock.Now(); err != nil {
		c.logger.Warn("clock read failed", "session_id", st.SessionID, "error", err)
	} else {
		greeting = c.pack.Greeting(reading.Hour)
	}
	c.speak(ctx, st, fmt.Sprintf(c.pack.Phrases.WakeFormat, greeting, c.userName))
}

func (c *Controller) sleep(st *State, event fsm.Event, reason string) {
	next, err := fsm.Transition(st.Lifecycle, event)
	if err != nil {
		c.logger.Error("sleep transition failed", "reason", reason, "error", err)
		return
	}
	c.logger.Info("session asleep", "session_id", st.SessionID, "reason", reason)

	st.Lifecycle = next
	st.resetDialog()
	st.Pending = ""
	st.LastSpeech = time.Time{}
	st.LastInteraction = time.Time{}
	st.SessionID = ""
	st.SpeechFailures = 0
}

// speak blocks for synthesis and playback. Failures are counted and logged;
// the turn continues.
func (c *Controller) speak(ctx context.Context, st *State, text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	if err := c.speaker.Speak(ctx, text); err != nil {
		st.SpeechFailures++
		c.logger.Warn("speech failed",
			"session_id", st.SessionID,
			"failures", st.SpeechFailures,
			"error", err,
		)
		return
	}
	st.SpeechFailures = 0
}

func (c *Controller) publish() {
	st := c.state
	c.snapshot.Store(&Snapshot{
		State:     st.Lifecycle,
		Mode:      st.Mode,
		SessionID: st.SessionID,
		UserName:  c.userName,
	})
}

func (c *Controller) drainActions() {
	select {
	case a := <-c.actions:
		if a == actionSleep && c.state.Awake() {
			c.sleep(&c.state, fsm.EventSleep, "remote")
			c.publish()
		}
	default:
	}
}

// Handle serves IPC commands against the published snapshot.
func (c *Controller) Handle(_ context.Context, req ipc.Request) ipc.Response {
	snap := c.Snapshot()
	resp := ipc.Response{State: snap.Describe(), SessionID: snap.SessionID, User: snap.UserName}
	switch req.Command {
	case ipc.CommandStatus:
		resp.OK = true
		resp.Message = "status"
	case ipc.CommandSleep:
		if snap.State != fsm.StateAwake {
			resp.Error = "already asleep"
			return resp
		}
		resp.OK = true
		select {
		case c.actions <- actionSleep:
			resp.Message = "sleep requested"
		default:
			resp.Message = "sleep already requested"
		}
	default:
		resp.Error = fmt.Sprintf("unknown command: %s", req.Command)
	}
	return resp
}
