package session

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rbright/suno/internal/fsm"
	"github.com/rbright/suno/internal/intent"
	"github.com/rbright/suno/internal/ipc"
	"github.com/rbright/suno/internal/locale"
)

func newRunController(t *testing.T, source Source, speaker *fakeSpeaker) *Controller {
	t.Helper()

	pack, err := locale.Lookup("en")
	require.NoError(t, err)
	return NewController(nil, Options{
		Pack:       pack,
		UserName:   "Lakshman",
		Silence:    20 * time.Millisecond,
		Inactivity: 10 * time.Second,
		Poll:       5 * time.Millisecond,
	}, Dependencies{Source: source, Speaker: speaker})
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	require.Eventually(t, cond, 2*time.Second, 5*time.Millisecond)
}

func TestRunWakesCommitsAndStopsOnCancel(t *testing.T) {
	source := newChanSource()
	speaker := &fakeSpeaker{}
	ctrl := newRunController(t, source, speaker)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- ctrl.Run(ctx) }()

	source.ch <- Utterance{Text: "suno"}
	waitFor(t, func() bool { return ctrl.Snapshot().State == fsm.StateAwake })

	source.ch <- Utterance{Text: "what is my name"}
	waitFor(t, func() bool { return len(speaker.said()) == 2 })
	require.Equal(t, "your name is Lakshman", speaker.last())
	require.Equal(t, int32(1), source.resets.Load())

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("run did not stop after cancel")
	}
}

func TestRunWithoutSource(t *testing.T) {
	ctrl := NewController(nil, Options{}, Dependencies{})
	err := ctrl.Run(context.Background())
	require.ErrorIs(t, err, ErrPipelineUnavailable)
	require.True(t, IsPipelineUnavailable(err))
	require.False(t, IsPipelineUnavailable(errors.New("different error")))
}

func TestRunReturnsSourceFailure(t *testing.T) {
	source := newChanSource()
	source.err = ErrSourceClosed
	ctrl := newRunController(t, source, &fakeSpeaker{})

	err := ctrl.Run(context.Background())
	require.ErrorIs(t, err, ErrSourceClosed)
}

func TestHandleStatusAndUnknownCommand(t *testing.T) {
	ctrl := newRunController(t, newChanSource(), &fakeSpeaker{})

	status := ctrl.Handle(context.Background(), ipc.Request{Command: "status"})
	require.True(t, status.OK)
	require.Equal(t, "asleep", status.State)
	require.Equal(t, "Lakshman", status.User)
	require.Empty(t, status.SessionID)

	unknown := ctrl.Handle(context.Background(), ipc.Request{Command: "definitely-unknown"})
	require.False(t, unknown.OK)
	require.Contains(t, unknown.Error, "unknown command")
}

func TestHandleSleepWhileAsleep(t *testing.T) {
	ctrl := newRunController(t, newChanSource(), &fakeSpeaker{})

	resp := ctrl.Handle(context.Background(), ipc.Request{Command: "sleep"})
	require.False(t, resp.OK)
	require.Equal(t, "already asleep", resp.Error)
}

func TestHandleSleepPutsRunningSessionToSleep(t *testing.T) {
	source := newChanSource()
	speaker := &fakeSpeaker{}
	ctrl := newRunController(t, source, speaker)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- ctrl.Run(ctx) }()

	source.ch <- Utterance{Text: "hey suno"}
	waitFor(t, func() bool { return ctrl.Snapshot().State == fsm.StateAwake })

	status := ctrl.Handle(ctx, ipc.Request{Command: "status"})
	require.Equal(t, "awake", status.State)
	require.NotEmpty(t, status.SessionID)

	resp := ctrl.Handle(ctx, ipc.Request{Command: "sleep"})
	require.True(t, resp.OK)
	require.Equal(t, "sleep requested", resp.Message)

	waitFor(t, func() bool { return ctrl.Snapshot().State == fsm.StateAsleep })
	require.Len(t, speaker.said(), 1)

	cancel()
	require.NoError(t, <-done)
}

func TestHandleSleepAlreadyRequested(t *testing.T) {
	h := newHarness(t, "en")
	h.wake()
	h.ctrl.publish()

	h.ctrl.actions <- actionSleep
	resp := h.ctrl.Handle(context.Background(), ipc.Request{Command: "sleep"})
	require.True(t, resp.OK)
	require.Equal(t, "sleep already requested", resp.Message)

	h.ctrl.drainActions()
	require.False(t, h.ctrl.state.Awake())
	require.Equal(t, fsm.StateAsleep, h.ctrl.Snapshot().State)
}

func TestSnapshotDescribe(t *testing.T) {
	require.Equal(t, "asleep", Snapshot{State: fsm.StateAsleep, Mode: ModeNormal}.Describe())
	require.Equal(t, "awake", Snapshot{State: fsm.StateAwake, Mode: ModeNormal}.Describe())
	require.Equal(t, "awake (calculating)", Snapshot{State: fsm.StateAwake, Mode: ModeCalculating}.Describe())
}

func TestSpeakerFuncDelegates(t *testing.T) {
	called := false
	speaker := SpeakerFunc(func(_ context.Context, text string) error {
		called = true
		require.Equal(t, "hello", text)
		return nil
	})

	require.NoError(t, speaker.Speak(context.Background(), "hello"))
	require.True(t, called)
}

func TestComputeSemantics(t *testing.T) {
	tests := []struct {
		a, b string
		op   string
		want string
		err  bool
	}{
		{a: "5", b: "3", op: "add", want: "8"},
		{a: "5", b: "8", op: "subtract", want: "-3"},
		{a: "6", b: "7", op: "multiply", want: "42"},
		{a: "9", b: "3", op: "divide", want: "3"},
		{a: "1", b: "3", op: "divide", want: "0.33"},
		{a: "2", b: "3", op: "divide", want: "0.67"},
		{a: "1", b: "8", op: "divide", want: "0.13"},
		{a: "1001", b: "1000", op: "divide", want: "1"},
		{a: "10", b: "4", op: "modulo", want: "2"},
		{a: "9999999999", b: "9999999999", op: "multiply", want: "99999999980000000001"},
		{a: "99999999999999999999", b: "1", op: "add", want: "100000000000000000000"},
		{a: "1", b: "99999999999999999999", op: "subtract", want: "-99999999999999999998"},
		{a: "100000000000000000000", b: "3", op: "divide", want: "33333333333333333333.33"},
		{a: "100000000000000000000", b: "7", op: "modulo", want: "2"},
		{a: "1", b: "0", op: "divide", err: true},
		{a: "1", b: "0", op: "modulo", err: true},
	}
	for _, tc := range tests {
		a, _ := new(big.Int).SetString(tc.a, 10)
		b, _ := new(big.Int).SetString(tc.b, 10)
		got, err := compute(a, b, intent.Operator(tc.op))
		if tc.err {
			require.ErrorIs(t, err, errDivideByZero)
			continue
		}
		require.NoError(t, err)
		require.Equal(t, tc.want, got, "%s %s %s", tc.a, tc.op, tc.b)
	}
}
