package session

import (
	"math/big"
	"time"

	"github.com/rbright/suno/internal/fsm"
	"github.com/rbright/suno/internal/locale"
)

// Mode selects how the next committed utterance is interpreted.
type Mode string

const (
	ModeNormal      Mode = "normal"
	ModeCalculating Mode = "calculating"
	ModeJokePending Mode = "joke_pending"
)

// Calc is the calculator sub-dialogue. Step 0 means inactive; steps 1 and 2
// await operands and step 3 awaits the operator.
type Calc struct {
	Step     int
	Operand1 *big.Int
	Operand2 *big.Int
}

// State is the single session value owned by the controller loop.
type State struct {
	Lifecycle       fsm.State
	LastSpeech      time.Time
	LastInteraction time.Time
	Mode            Mode
	Pending         string
	Calc            Calc
	Joke            *locale.Joke

	SessionID      string
	SpeechFailures int
}

func newState() State {
	return State{Lifecycle: fsm.StateAsleep, Mode: ModeNormal}
}

// Awake reports whether a session is active.
func (s *State) Awake() bool {
	return s.Lifecycle == fsm.StateAwake
}

// resetDialog returns to NORMAL and drops sub-dialogue state.
func (s *State) resetDialog() {
	s.Mode = ModeNormal
	s.Calc = Calc{}
	s.Joke = nil
}

// Snapshot is the read-only view published for status queries.
type Snapshot struct {
	State     fsm.State
	Mode      Mode
	SessionID string
	UserName  string
}

// Describe renders the snapshot for status output.
func (s Snapshot) Describe() string {
	if s.State != fsm.StateAwake || s.Mode == ModeNormal || s.Mode == "" {
		return string(s.State)
	}
	return string(s.State) + " (" + string(s.Mode) + ")"
}
