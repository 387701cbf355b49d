// Package actuator drives the indicator light wired to a GPIO line.
package actuator

import (
	"errors"
	"fmt"
	"sync"

	"github.com/warthog618/go-gpiocdev"
)

// Light switches a single on/off output.
type Light interface {
	Set(on bool) error
}

// Output is the line operation a GPIO light needs.
type Output interface {
	SetValue(int) error
	Close() error
}

// GPIOLight drives one output line. Set is idempotent.
type GPIOLight struct {
	mu     sync.Mutex
	line   Output
	on     bool
	closed bool
}

// OpenGPIOLight requests chip:offset as an output driven low.
func OpenGPIOLight(chip string, offset int) (*GPIOLight, error) {
	line, err := gpiocdev.RequestLine(chip, offset,
		gpiocdev.AsOutput(0),
		gpiocdev.WithConsumer("suno-light"),
	)
	if err != nil {
		return nil, fmt.Errorf("request light line %s:%d: %w", chip, offset, err)
	}
	return NewGPIOLight(line), nil
}

// NewGPIOLight wraps an already requested output line assumed to be low.
func NewGPIOLight(line Output) *GPIOLight {
	return &GPIOLight{line: line}
}

// Set drives the line high for on and low for off.
func (l *GPIOLight) Set(on bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return errors.New("light line is closed")
	}
	value := 0
	if on {
		value = 1
	}
	if err := l.line.SetValue(value); err != nil {
		return fmt.Errorf("set light %t: %w", on, err)
	}
	l.on = on
	return nil
}

// On reports the last state written.
func (l *GPIOLight) On() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.on
}

// Close switches the light off and releases the line.
func (l *GPIOLight) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil
	}
	l.closed = true
	offErr := l.line.SetValue(0)
	l.on = false
	if err := l.line.Close(); err != nil {
		return fmt.Errorf("release light line: %w", err)
	}
	if offErr != nil {
		return fmt.Errorf("switch light off: %w", offErr)
	}
	return nil
}

// NopLight records state without touching hardware.
type NopLight struct {
	mu sync.Mutex
	on bool
}

// Set records the requested state.
func (l *NopLight) Set(on bool) error {
	l.mu.Lock()
	l.on = on
	l.mu.Unlock()
	return nil
}

// On reports the last state set.
func (l *NopLight) On() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.on
}
