// Package ipc is the local control socket of a running assistant: one JSON
// request line in, one JSON response line out.
package ipc

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Commands understood by a running assistant.
const (
	CommandStatus = "status"
	CommandSleep  = "sleep"
)

// maxLineBytes caps one protocol line. Real messages are well under 1 KiB.
const maxLineBytes = 4096

// Request is one JSON line sent by a client.
type Request struct {
	Command string `json:"command"`
}

// Response is the single JSON line answering a Request.
type Response struct {
	OK        bool   `json:"ok"`
	State     string `json:"state,omitempty"`
	SessionID string `json:"session_id,omitempty"`
	User      string `json:"user,omitempty"`
	Message   string `json:"message,omitempty"`
	Error     string `json:"error,omitempty"`
}

func failure(format string, args ...any) Response {
	return Response{Error: fmt.Sprintf(format, args...)}
}

// writeLine encodes v followed by a newline.
func writeLine(w io.Writer, v any) error {
	return json.NewEncoder(w).Encode(v)
}

// readLine reads one newline-terminated JSON value into v. what names the
// value in errors ("request", "response").
func readLine(r io.Reader, what string, v any) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 512), maxLineBytes)
	if !scanner.Scan() {
		err := scanner.Err()
		if err == nil {
			err = io.ErrUnexpectedEOF
		}
		if errors.Is(err, bufio.ErrTooLong) {
			err = fmt.Errorf("line exceeds %d bytes", maxLineBytes)
		}
		return fmt.Errorf("read %s: %w", what, err)
	}
	if err := json.Unmarshal(scanner.Bytes(), v); err != nil {
		return fmt.Errorf("decode %s: %w", what, err)
	}
	return nil
}
