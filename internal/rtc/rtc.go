// Package rtc reads and sets wall-clock time from the device real-time clock.
package rtc

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidReading indicates the clock returned out-of-range fields,
// typically a disconnected or unpowered chip.
var ErrInvalidReading = errors.New("rtc returned an invalid reading")

// Reading is one calendar time sample.
type Reading struct {
	Hour   int
	Minute int
	Second int
	Day    int
	Month  int
	Year   int
}

// Clock is the time source consumed by the assistant.
type Clock interface {
	Now() (Reading, error)
}

// Setter is implemented by clocks that can be written.
type Setter interface {
	Set(Reading) error
}

// FromTime converts a time.Time into a Reading.
func FromTime(t time.Time) Reading {
	return Reading{
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: t.Second(),
		Day:    t.Day(),
		Month:  int(t.Month()),
		Year:   t.Year(),
	}
}

// Time converts the reading into a time.Time in loc.
func (r Reading) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(r.Year, time.Month(r.Month), r.Day, r.Hour, r.Minute, r.Second, 0, loc)
}

// Validate checks field ranges.
func (r Reading) Validate() error {
	switch {
	case r.Hour < 0 || r.Hour > 23,
		r.Minute < 0 || r.Minute > 59,
		r.Second < 0 || r.Second > 59,
		r.Day < 1 || r.Day > 31,
		r.Month < 1 || r.Month > 12:
		return fmt.Errorf("%w: %s", ErrInvalidReading, r)
	}
	return nil
}

// String renders the reading as DD-MM-YYYY  HH:MM:SS.
func (r Reading) String() string {
	return fmt.Sprintf("%02d-%02d-%04d  %02d:%02d:%02d", r.Day, r.Month, r.Year, r.Hour, r.Minute, r.Second)
}

// SystemClock reads the host clock.
type SystemClock struct {
	now func() time.Time
}

// NewSystemClock returns a clock backed by time.Now.
func NewSystemClock() SystemClock {
	return SystemClock{now: time.Now}
}

// Now returns the current host time.
func (c SystemClock) Now() (Reading, error) {
	now := c.now
	if now == nil {
		now = time.Now
	}
	return FromTime(now()), nil
}
