package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rbright/suno/internal/ipc"
)

// forwardTimeout bounds one round trip to a running assistant.
const forwardTimeout = 220 * time.Millisecond

// commandStatus prints the assistant state, then the user and session when
// a conversation is open. No assistant is reported as "stopped".
func (r Runner) commandStatus(ctx context.Context) int {
	resp, handled, err := tryForward(ctx, ipc.RuntimeSocketPath(), ipc.CommandStatus)
	switch {
	case !handled:
		fmt.Fprintln(r.Stdout, "stopped")
		return exitOK
	case err != nil:
		return r.fail(exitError, "%v", err)
	}

	state := resp.State
	if state == "" {
		state = "stopped"
	}
	fmt.Fprintln(r.Stdout, state)
	for _, field := range [][2]string{{"user", resp.User}, {"session", resp.SessionID}} {
		if field[1] != "" {
			fmt.Fprintf(r.Stdout, "%s: %s\n", field[0], field[1])
		}
	}
	return exitOK
}

func (r Runner) forwardOrFail(ctx context.Context, command string) int {
	resp, handled, err := tryForward(ctx, ipc.RuntimeSocketPath(), command)
	switch {
	case !handled:
		return r.fail(exitError, "no running suno assistant")
	case err != nil:
		return r.fail(exitError, "%v", err)
	}
	if resp.Message != "" {
		fmt.Fprintln(r.Stdout, resp.Message)
	}
	return exitOK
}

// tryForward sends command to a running assistant. handled is false only
// when nothing is listening on socketPath.
func tryForward(ctx context.Context, socketPath string, command string) (resp ipc.Response, handled bool, err error) {
	resp, err = ipc.Send(ctx, socketPath, ipc.Request{Command: command}, forwardTimeout)
	switch {
	case ipc.Unreachable(err):
		return ipc.Response{}, false, nil
	case err != nil:
		return ipc.Response{}, true, fmt.Errorf("forward command %q: %w", command, err)
	case !resp.OK:
		return resp, true, errors.New(resp.Error)
	}
	return resp, true, nil
}
