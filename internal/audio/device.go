// Package audio handles device discovery, microphone capture into a bounded
// frame ring, and sample-rate conversion.
package audio

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jfreymuth/pulse"
	pulseproto "github.com/jfreymuth/pulse/proto"
)

// Device is one Pulse input source.
type Device struct {
	ID          string
	Description string
	State       string
	Available   bool
	Muted       bool
	Default     bool
}

// Label formats device metadata for logs and diagnostics.
func (d Device) Label() string {
	id, description := strings.TrimSpace(d.ID), strings.TrimSpace(d.Description)
	switch {
	case description == "":
		return id
	case id == "":
		return description
	}
	return description + " (" + id + ")"
}

// unusable names why the device cannot capture, or returns "".
func (d Device) unusable() string {
	if !d.Available {
		return "unavailable"
	}
	if d.Muted {
		return "muted"
	}
	return ""
}

// Selection is the chosen capture source. Warning is set when the
// configured input could not be used and audio.fallback was taken instead.
type Selection struct {
	Device   Device
	Warning  string
	Fallback bool
}

func newClient() (*pulse.Client, error) {
	client, err := pulse.NewClient(
		pulse.ClientApplicationName("suno"),
		pulse.ClientApplicationIconName("audio-input-microphone"),
	)
	if err != nil {
		return nil, fmt.Errorf("connect pulse server: %w", err)
	}
	return client, nil
}

// ListDevices queries the Pulse server for every input source.
func ListDevices(_ context.Context) ([]Device, error) {
	client, err := newClient()
	if err != nil {
		return nil, err
	}
	defer client.Close()

	def, err := client.DefaultSource()
	if err != nil {
		return nil, fmt.Errorf("read default source: %w", err)
	}

	var reply pulseproto.GetSourceInfoListReply
	if err := client.RawRequest(&pulseproto.GetSourceInfoList{}, &reply); err != nil {
		return nil, fmt.Errorf("list sources: %w", err)
	}
	return devicesFromReply(reply, def.ID()), nil
}

func devicesFromReply(reply pulseproto.GetSourceInfoListReply, defaultID string) []Device {
	devices := make([]Device, 0, len(reply))
	for _, info := range reply {
		if info == nil {
			continue
		}
		devices = append(devices, Device{
			ID:          info.SourceName,
			Description: info.Device,
			State:       sourceStateString(info.State),
			Available:   sourceAvailable(info),
			Muted:       info.Mute,
			Default:     info.SourceName == defaultID,
		})
	}
	return devices
}

// SelectDevice resolves the audio.input and audio.fallback preferences
// against the live device list.
func SelectDevice(ctx context.Context, input string, fallback string) (Selection, error) {
	devices, err := ListDevices(ctx)
	if err != nil {
		return Selection{}, err
	}
	return selectDeviceFromList(devices, input, fallback)
}

// selectDeviceFromList takes the configured input when it can capture and
// otherwise the fallback. "default" or "" names the server default source.
func selectDeviceFromList(devices []Device, input string, fallback string) (Selection, error) {
	if len(devices) == 0 {
		return Selection{}, errors.New("no audio input devices found")
	}
	input = strings.ToLower(strings.TrimSpace(input))
	fallback = strings.ToLower(strings.TrimSpace(fallback))

	primary, err := findDevice(devices, input, "audio.input")
	if err != nil {
		return Selection{}, err
	}
	reason := primary.unusable()
	if reason == "" {
		return Selection{Device: primary}, nil
	}

	alt, err := findDevice(devices, fallback, "audio.fallback")
	if err != nil {
		return Selection{}, fmt.Errorf("audio.input %q is %s: %w", primary.ID, reason, err)
	}
	if altReason := alt.unusable(); altReason != "" {
		return Selection{}, fmt.Errorf("audio.input %q is %s and fallback %q is %s", primary.ID, reason, alt.ID, altReason)
	}

	return Selection{
		Device:   alt,
		Warning:  fmt.Sprintf("audio.input %q is %s; falling back to %q", primary.ID, reason, alt.ID),
		Fallback: alt.ID != primary.ID,
	}, nil
}

func findDevice(devices []Device, term string, key string) (Device, error) {
	wantDefault := term == "" || term == "default"
	for _, d := range devices {
		if wantDefault && d.Default || !wantDefault && deviceMatches(d, term) {
			return d, nil
		}
	}
	if wantDefault {
		return Device{}, errors.New("default audio source is unavailable")
	}
	return Device{}, fmt.Errorf("%s %q did not match any device", key, term)
}

// deviceMatches is a case-insensitive substring match on id or description.
func deviceMatches(device Device, term string) bool {
	if term == "" {
		return false
	}
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(device.ID), term) ||
		strings.Contains(strings.ToLower(device.Description), term)
}

func sourceStateString(state uint32) string {
	names := [...]string{"running", "idle", "suspended"}
	if int(state) < len(names) {
		return names[state]
	}
	return fmt.Sprintf("unknown(%d)", state)
}

// sourceAvailable checks the active port. Pulse availability is
// 0 unknown, 1 no, 2 yes; sources without ports count as available.
func sourceAvailable(source *pulseproto.GetSourceInfoReply) bool {
	if source == nil {
		return false
	}
	for _, port := range source.Ports {
		if port.Name == source.ActivePortName {
			return port.Available != 1
		}
	}
	return true
}
