package session

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/rbright/suno/internal/fsm"
	"github.com/rbright/suno/internal/intent"
)

var errDivideByZero = errors.New("division by zero")

// commit interprets the pending text, speaks the reply, and closes the turn.
func (c *Controller) commit(ctx context.Context, st *State) {
	text := st.Pending
	resolved := intent.Unknown

	switch st.Mode {
	case ModeJokePending:
		answer := ""
		if st.Joke != nil {
			answer = st.Joke.Answer
		}
		st.resetDialog()
		c.logger.Info("turn committed", "session_id", st.SessionID, "mode", ModeJokePending)
		c.speak(ctx, st, c.pack.Phrases.JokeReveal)
		c.speak(ctx, st, answer)
	case ModeCalculating:
		if c.classifier.Classify(text) == intent.Exit {
			resolved = intent.Exit
			st.resetDialog()
			c.logger.Info("turn committed", "session_id", st.SessionID, "mode", ModeCalculating, "intent", resolved)
			c.speak(ctx, st, c.pack.Phrases.Goodbye)
			break
		}
		step := st.Calc.Step
		reply := c.calculate(st, text)
		c.logger.Info("turn committed", "session_id", st.SessionID, "mode", ModeCalculating, "step", step)
		c.speak(ctx, st, reply)
	default:
		resolved = c.classifier.Classify(text)
		reply := c.dispatch(ctx, st, resolved, text)
		c.logger.Info("turn committed", "session_id", st.SessionID, "intent", resolved)
		c.speak(ctx, st, reply)
	}

	if c.source != nil {
		c.source.Reset()
	}
	st.Pending = ""
	st.LastSpeech = time.Time{}
	st.LastInteraction = c.now()

	if resolved == intent.Exit {
		c.sleep(st, fsm.EventExit, "exit")
	}
}

// dispatch produces the response for a NORMAL-mode intent and applies its
// side effect.
func (c *Controller) dispatch(_ context.Context, st *State, in intent.Intent, text string) string {
	p := c.pack.Phrases

	switch in {
	case intent.GetName:
		return fmt.Sprintf(p.NameFormat, c.userName)
	case intent.SetName:
		return c.setName(st, text)
	case intent.TeamName:
		return fmt.Sprintf(p.TeamFormat, c.opts.TeamName)
	case intent.Calculate:
		st.Mode = ModeCalculating
		st.Calc = Calc{Step: 1}
		return p.CalcFirst
	case intent.Time:
		r, err := c.clock.Now()
		if err != nil {
			c.logger.Warn("clock read failed", "session_id", st.SessionID, "intent", in, "error", err)
			return p.TimeUnavailable
		}
		return fmt.Sprintf(p.TimeFormat, r.Hour, r.Minute, r.Second)
	case intent.Date:
		r, err := c.clock.Now()
		if err != nil {
			c.logger.Warn("clock read failed", "session_id", st.SessionID, "intent", in, "error", err)
			return p.DateUnavailable
		}
		return fmt.Sprintf(p.DateFormat, r.Day, r.Month, r.Year)
	case intent.Greeting:
		return fmt.Sprintf(p.HelloFormat, c.userName)
	case intent.Status:
		return p.Status
	case intent.About:
		return p.About
	case intent.Joke:
		if len(c.pack.Jokes) == 0 {
			return p.NotUnderstood
		}
		joke := c.pack.Jokes[c.intn(len(c.pack.Jokes))]
		st.Mode = ModeJokePending
		st.Joke = &joke
		return joke.Prompt
	case intent.Thanks:
		return p.Thanks
	case intent.Help:
		return p.Help
	case intent.LightOn, intent.LightOff:
		on := in == intent.LightOn
		if err := c.light.Set(on); err != nil {
			c.logger.Error("light switch failed", "session_id", st.SessionID, "intent", in, "error", err)
			return p.LightFailed
		}
		if on {
			return p.LightOn
		}
		return p.LightOff
	case intent.NetworkStatus:
		return c.networkReply(st)
	case intent.SystemStatus:
		return c.systemReply(st)
	case intent.Exit:
		return p.Goodbye
	default:
		return p.NotUnderstood
	}
}

func (c *Controller) setName(st *State, text string) string {
	p := c.pack.Phrases
	tokens := strings.Fields(text)
	if len(tokens) < c.pack.NameMinTokens || c.pack.NameIndex >= len(tokens) {
		return p.NameNotUnderstood
	}

	name := tokens[c.pack.NameIndex]
	c.userName = name
	if err := c.profile.SaveName(name); err != nil {
		c.logger.Error("profile save failed", "session_id", st.SessionID, "error", err)
		return fmt.Sprintf(p.NameSaveFailed, name)
	}
	return fmt.Sprintf(p.NameSetFormat, name)
}

// calculate advances the calculator by one committed utterance.
func (c *Controller) calculate(st *State, text string) string {
	p := c.pack.Phrases

	switch st.Calc.Step {
	case 1:
		n, ok := c.classifier.ParseNumber(text)
		if !ok {
			return p.CalcNeedNumber
		}
		st.Calc.Operand1 = n
		st.Calc.Step = 2
		return p.CalcSecond
	case 2:
		n, ok := c.classifier.ParseNumber(text)
		if !ok {
			return p.CalcNeedNumber
		}
		st.Calc.Operand2 = n
		st.Calc.Step = 3
		return p.CalcOperator
	case 3:
		op, ok := c.classifier.ParseOperator(text)
		if !ok {
			return p.CalcUnknownOp
		}
		result, err := compute(st.Calc.Operand1, st.Calc.Operand2, op)
		if err != nil && !errors.Is(err, errDivideByZero) {
			return p.CalcUnknownOp
		}
		st.resetDialog()
		if err != nil {
			return p.CalcDivideZero
		}
		return fmt.Sprintf(p.CalcAnswerFormat, result)
	default:
		st.resetDialog()
		return p.NotUnderstood
	}
}

// compute applies op with exact integer semantics, falling back to a decimal
// rounded to two places when division is inexact.
func compute(a, b *big.Int, op intent.Operator) (string, error) {
	switch op {
	case intent.OpAdd:
		return new(big.Int).Add(a, b).String(), nil
	case intent.OpSubtract:
		return new(big.Int).Sub(a, b).String(), nil
	case intent.OpMultiply:
		return new(big.Int).Mul(a, b).String(), nil
	case intent.OpDivide:
		if b.Sign() == 0 {
			return "", errDivideByZero
		}
		q, r := new(big.Int).QuoRem(a, b, new(big.Int))
		if r.Sign() == 0 {
			return q.String(), nil
		}
		return hundredths(new(big.Rat).SetFrac(a, b)), nil
	case intent.OpModulo:
		if b.Sign() == 0 {
			return "", errDivideByZero
		}
		return new(big.Int).Mod(a, b).String(), nil
	default:
		return "", fmt.Errorf("unsupported operator %q", op)
	}
}

// hundredths renders x rounded to two places, halves away from zero, without
// trailing zeros.
func hundredths(x *big.Rat) string {
	s := strings.TrimRight(x.FloatString(2), "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}

func (c *Controller) networkReply(st *State) string {
	p := c.pack.Phrases
	network, err := c.probe.Network()
	if err != nil {
		c.logger.Warn("network probe failed", "session_id", st.SessionID, "error", err)
		return p.NetworkFailed
	}
	if !network.Connected {
		return p.NetworkDown
	}
	return fmt.Sprintf(p.NetworkUpFormat, network.Interface)
}

func (c *Controller) systemReply(st *State) string {
	p := c.pack.Phrases
	sys, err := c.probe.System()
	if err != nil {
		c.logger.Warn("system probe failed", "session_id", st.SessionID, "error", err)
		return p.SystemFailed
	}
	minutes := int(sys.Uptime / time.Minute)
	if sys.HasTemp {
		return fmt.Sprintf(p.SystemTempFormat, minutes, sys.Load1, sys.TempC)
	}
	return fmt.Sprintf(p.SystemFormat, minutes, sys.Load1)
}
